package analyTool

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/Hakuto4838/SkipDict.git/skiplist"
)

// Display 逐層印出 skip list 的結構，僅讀取 Nodelike 鏈結，不改動結構
func Display(w io.Writer, sl skiplist.Analyable) {
	head := sl.GetHead()
	if head == nil || head.GetNextAt(0) == nil {
		fmt.Fprintln(w, "[empty skip list]")
		return
	}

	_, maxLevel := sl.GetMaxStats()
	for h := maxLevel; h >= 0; h-- {
		fmt.Fprintf(w, "Level %d: ", h)
		for nd := head.GetNextAt(int32(h)); nd != nil; nd = nd.GetNextAt(int32(h)) {
			fmt.Fprintf(w, "[%d:%s] -> ", nd.GetKey(), nd.GetValue())
		}
		fmt.Fprintln(w, "None")
	}
}

// DisplayTower 以塔狀視圖印出結構，每個節點一欄，欄高即塔高
func DisplayTower(w io.Writer, sl skiplist.Analyable) {
	head := sl.GetHead()
	if head == nil || head.GetNextAt(0) == nil {
		fmt.Fprintln(w, "[empty skip list]")
		return
	}

	var nodes []skiplist.Nodelike
	top := int32(0)
	for nd := head.GetNextAt(0); nd != nil; nd = nd.GetNextAt(0) {
		nodes = append(nodes, nd)
		if nd.GetLevel() > top {
			top = nd.GetLevel()
		}
	}

	for h := top; h >= 0; h-- {
		fmt.Fprintf(w, "L%d: ", h)
		for _, nd := range nodes {
			if nd.GetLevel() >= h {
				fmt.Fprintf(w, "[%3d] ", nd.GetKey())
			} else {
				fmt.Fprint(w, "      ")
			}
		}
		fmt.Fprintln(w)
	}
}

// CheckStruct 檢查 skip list 的結構是否正確：
// level 0 的 key 嚴格遞增，且每一層的鏈結與節點塔高一致
func CheckStruct(sl skiplist.Analyable) bool {
	head := sl.GetHead()
	if head == nil {
		return true
	}

	_, maxLevel := sl.GetMaxStats()
	last := make([]skiplist.Nodelike, maxLevel+1)
	for i := range last {
		last[i] = head
	}

	prevKey := skiplist.K(0)
	first := true
	for nd := head.GetNextAt(0); nd != nil; nd = nd.GetNextAt(0) {
		if !first && nd.GetKey() <= prevKey {
			fmt.Printf("ordering violated at key %d (prev %d)\n", nd.GetKey(), prevKey)
			return false
		}
		prevKey = nd.GetKey()
		first = false

		lv := nd.GetLevel()
		if lv > int32(maxLevel) {
			fmt.Printf("node level %d exceeds list level %d\n", lv, maxLevel)
			return false
		}
		for h := int32(0); h <= lv; h++ {
			if last[h].GetNextAt(h) != nd {
				fmt.Printf("link broken at level %d, key %d\n", h, nd.GetKey())
				return false
			}
			last[h] = nd
		}
	}
	return true
}

// CountLevel 統計每一層的節點數，索引 0 為最底層
func CountLevel(sl skiplist.Analyable) []int {
	_, maxLevel := sl.GetMaxStats()
	counts := make([]int, maxLevel+1)

	head := sl.GetHead()
	if head == nil {
		return counts
	}
	for nd := head.GetNextAt(0); nd != nil; nd = nd.GetNextAt(0) {
		for h := int32(0); h <= nd.GetLevel(); h++ {
			if int(h) < len(counts) {
				counts[int(h)]++
			}
		}
	}
	return counts
}

// LevelRatios 回傳相鄰兩層節點數的比值 counts[h+1]/counts[h]，
// 理想情況下應接近升級機率 p
func LevelRatios(counts []int) []float64 {
	if len(counts) < 2 {
		return nil
	}
	ratios := make([]float64, len(counts)-1)
	for i := 0; i < len(counts)-1; i++ {
		if counts[i] == 0 {
			ratios[i] = 0
			continue
		}
		ratios[i] = float64(counts[i+1]) / float64(counts[i])
	}
	return ratios
}

// FindStep 計算找到指定 key 的總步數和各層步數
func FindStep(sl skiplist.Analyable, key skiplist.K) (step int, level []int) {
	cur := sl.GetHead()
	if cur == nil {
		return 0, []int{}
	}

	_, maxLevel := sl.GetMaxStats()
	stepsPerLevel := make([]int, maxLevel+1)
	totalSteps := 0

	for h := maxLevel; h >= 0; h-- {
		levelSteps := 0
		for {
			next := cur.GetNextAt(int32(h))
			if next == nil || next.GetKey() >= key {
				break
			}
			cur = next
			levelSteps++
		}

		if next := cur.GetNextAt(int32(h)); next != nil && next.GetKey() == key {
			levelSteps++ // 最後一步
			stepsPerLevel[h] = levelSteps
			totalSteps += levelSteps
			return totalSteps, stepsPerLevel
		}

		stepsPerLevel[h] = levelSteps
		totalSteps += levelSteps + 1 // 加上向下移動
	}
	return totalSteps, stepsPerLevel
}

// StructToCSV 將目前結構輸出為 CSV，每層一列、每個節點一欄
func StructToCSV(writer *csv.Writer, sl skiplist.Analyable) error {
	head := sl.GetHead()
	if head == nil {
		return nil
	}

	var nodes []skiplist.Nodelike
	top := int32(0)
	for nd := head.GetNextAt(0); nd != nil; nd = nd.GetNextAt(0) {
		nodes = append(nodes, nd)
		if nd.GetLevel() > top {
			top = nd.GetLevel()
		}
	}

	for h := top; h >= 0; h-- {
		row := make([]string, 0, len(nodes)+1)
		row = append(row, fmt.Sprintf("level %d", h))
		for _, nd := range nodes {
			if nd.GetLevel() >= h {
				row = append(row, fmt.Sprintf("%d", nd.GetKey()))
			} else {
				row = append(row, "")
			}
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
