package basic

import (
	"errors"
	"fmt"

	"github.com/Hakuto4838/SkipDict.git/skiplist"
)

const (
	DefaultMaxLevel    = 16
	DefaultProbability = 0.5
)

var (
	ErrInvalidMaxLevel    = errors.New("max level must be at least 1")
	ErrInvalidProbability = errors.New("probability must be in (0, 1)")
	ErrNilLevelGenerator  = errors.New("level generator must not be nil")
)

type basicNode struct {
	key   skiplist.K
	value skiplist.V
	next  []*basicNode
}

type BasicSkipList struct {
	head     *basicNode
	level    int32
	maxLevel int32
	gen      LevelGenerator
	size     int32
}

func newNode(key skiplist.K, value skiplist.V, level int32) *basicNode {
	return &basicNode{
		key:   key,
		value: value,
		next:  make([]*basicNode, level+1),
	}
}

// NewBasicSkipList 以預設參數 (maxLevel=16, p=0.5) 建立 skip list
func NewBasicSkipList(seed int64) *BasicSkipList {
	sl, err := NewWithConfig(DefaultMaxLevel, DefaultProbability, seed)
	if err != nil {
		// 預設參數必定合法
		panic(err)
	}
	return sl
}

// NewWithConfig 以指定的 maxLevel 與升級機率 p 建立 skip list，
// 參數不合法時回傳錯誤
func NewWithConfig(maxLevel int, p float64, seed int64) (*BasicSkipList, error) {
	gen, err := NewGeometricGenerator(maxLevel, p, seed)
	if err != nil {
		return nil, err
	}
	return NewWithGenerator(maxLevel, gen)
}

// NewWithGenerator 以自訂的層級產生器建立 skip list，供測試注入固定序列
func NewWithGenerator(maxLevel int, gen LevelGenerator) (*BasicSkipList, error) {
	if maxLevel < 1 {
		return nil, fmt.Errorf("max level %d: %w", maxLevel, ErrInvalidMaxLevel)
	}
	if gen == nil {
		return nil, ErrNilLevelGenerator
	}
	return &BasicSkipList{
		head:     newNode(-1, "", int32(maxLevel-1)),
		maxLevel: int32(maxLevel),
		gen:      gen,
	}, nil
}

// locate 回傳每一層的前驅節點，以及命中的節點（未命中為 nil）。
// update[h] 是第 h 層中 key 之前的最後一個節點，插入與刪除都以此接合。
func (sl *BasicSkipList) locate(key skiplist.K) ([]*basicNode, *basicNode) {
	update := make([]*basicNode, sl.maxLevel)
	cur := sl.head
	for h := sl.level; h >= 0; h-- {
		for cur.next[h] != nil && cur.next[h].key < key {
			cur = cur.next[h]
		}
		update[h] = cur
	}
	cand := cur.next[0]
	if cand != nil && cand.key == key {
		return update, cand
	}
	return update, nil
}

// Put 插入或更新 key 對應的 value，重複的 key 僅就地覆寫 value
func (sl *BasicSkipList) Put(key skiplist.K, value skiplist.V) {
	update, found := sl.locate(key)
	if found != nil {
		found.value = value
		return
	}

	lvl := sl.clampLevel(sl.gen.NextLevel())
	if lvl > sl.level {
		for h := sl.level + 1; h <= lvl; h++ {
			update[h] = sl.head
		}
		sl.level = lvl
	}

	nd := newNode(key, value, lvl)
	for h := int32(0); h <= lvl; h++ {
		nd.next[h] = update[h].next[h]
		update[h].next[h] = nd
	}
	sl.size++
}

// clampLevel 將產生器給出的層級限制在 [0, maxLevel-1]
func (sl *BasicSkipList) clampLevel(lvl int32) int32 {
	if lvl < 0 {
		return 0
	}
	if lvl > sl.maxLevel-1 {
		return sl.maxLevel - 1
	}
	return lvl
}

// Get 取得 key 對應的 value，不存在時回傳 false
func (sl *BasicSkipList) Get(key skiplist.K) (skiplist.V, bool) {
	_, found := sl.locate(key)
	if found != nil {
		return found.value, true
	}
	return "", false
}

// Contains 判斷 key 是否存在
func (sl *BasicSkipList) Contains(key skiplist.K) bool {
	_, found := sl.locate(key)
	return found != nil
}

// Delete 刪除 key，回傳是否確實刪除
func (sl *BasicSkipList) Delete(key skiplist.K) bool {
	update, found := sl.locate(key)
	if found == nil {
		return false
	}

	for h := int32(0); h <= sl.level; h++ {
		if update[h].next[h] != found {
			break
		}
		update[h].next[h] = found.next[h]
	}

	// 最高層清空時收縮 level
	for sl.level > 0 && sl.head.next[sl.level] == nil {
		sl.level--
	}
	sl.size--
	return true
}

// Len 回傳目前的節點數
func (sl *BasicSkipList) Len() int {
	return int(sl.size)
}

// Items 依 key 升冪回傳所有鍵值對的快照
func (sl *BasicSkipList) Items() []skiplist.Item {
	items := make([]skiplist.Item, 0, sl.size)
	for nd := sl.head.next[0]; nd != nil; nd = nd.next[0] {
		items = append(items, skiplist.Item{Key: nd.key, Value: nd.value})
	}
	return items
}

func (sl *BasicSkipList) GetHead() skiplist.Nodelike {
	return sl.head
}

func (sl *BasicSkipList) GetMaxStats() (int, int) {
	return int(sl.size), int(sl.level)
}

func (nd *basicNode) GetKey() skiplist.K {
	return nd.key
}

func (nd *basicNode) GetValue() skiplist.V {
	return nd.value
}

func (nd *basicNode) GetLevel() int32 {
	return int32(len(nd.next) - 1)
}

func (nd *basicNode) GetNextAt(level int32) skiplist.Nodelike {
	if level < 0 || level >= int32(len(nd.next)) {
		return nil
	}
	if nd.next[level] == nil {
		return nil
	}
	return nd.next[level]
}
