package analyTool

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hakuto4838/SkipDict.git/skiplist"
	"github.com/Hakuto4838/SkipDict.git/skiplist/basic"
)

// newFixedList 以固定層級序列建立 3(塔高1), 7(塔高0), 12(塔高2) 的結構
func newFixedList(t *testing.T) skiplist.Analyable {
	t.Helper()
	sl, err := basic.NewWithGenerator(3, basic.NewSequenceGenerator(1, 0, 2))
	require.NoError(t, err)
	sl.Put(3, "three")
	sl.Put(7, "seven")
	sl.Put(12, "twelve")
	return sl
}

func TestDisplay(t *testing.T) {
	sl := newFixedList(t)

	var buf bytes.Buffer
	Display(&buf, sl)

	want := "Level 2: [12:twelve] -> None\n" +
		"Level 1: [3:three] -> [12:twelve] -> None\n" +
		"Level 0: [3:three] -> [7:seven] -> [12:twelve] -> None\n"
	assert.Equal(t, want, buf.String())
}

func TestDisplayEmpty(t *testing.T) {
	sl := basic.NewBasicSkipList(42)

	var buf bytes.Buffer
	Display(&buf, sl)
	assert.Equal(t, "[empty skip list]\n", buf.String())

	buf.Reset()
	DisplayTower(&buf, sl)
	assert.Equal(t, "[empty skip list]\n", buf.String())
}

func TestDisplayTower(t *testing.T) {
	sl := newFixedList(t)

	var buf bytes.Buffer
	DisplayTower(&buf, sl)

	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[0]), "L2:")
	assert.Contains(t, string(lines[0]), "[ 12]")
	assert.NotContains(t, string(lines[0]), "[  3]")
	assert.Contains(t, string(lines[1]), "[  3]")
	assert.NotContains(t, string(lines[1]), "[  7]")
	assert.Contains(t, string(lines[2]), "[  7]")
}

func TestCheckStruct(t *testing.T) {
	sl := newFixedList(t)
	assert.True(t, CheckStruct(sl))

	empty := basic.NewBasicSkipList(42)
	assert.True(t, CheckStruct(empty))

	big := basic.NewBasicSkipList(7)
	for i := int64(0); i < 2000; i++ {
		big.Put(i*3%997, strconv.FormatInt(i, 10))
	}
	assert.True(t, CheckStruct(big))
}

func TestCountLevelAndRatios(t *testing.T) {
	sl := newFixedList(t)

	counts := CountLevel(sl)
	assert.Equal(t, []int{3, 2, 1}, counts)

	ratios := LevelRatios(counts)
	require.Len(t, ratios, 2)
	assert.InDelta(t, 2.0/3.0, ratios[0], 1e-9)
	assert.InDelta(t, 0.5, ratios[1], 1e-9)

	require.True(t, sl.Delete(12))
	assert.Equal(t, []int{2, 1}, CountLevel(sl))
}

func TestFindStep(t *testing.T) {
	sl := newFixedList(t)

	step, perLevel := FindStep(sl, 7)
	assert.Greater(t, step, 0)
	assert.Len(t, perLevel, 3)

	// 不存在的 key 也回傳完整搜尋成本
	stepMiss, _ := FindStep(sl, 100)
	assert.Greater(t, stepMiss, 0)
}

func TestStructToCSV(t *testing.T) {
	sl := newFixedList(t)

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	require.NoError(t, StructToCSV(writer, sl))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"level 2", "", "", "12"}, records[0])
	assert.Equal(t, []string{"level 1", "3", "", "12"}, records[1])
	assert.Equal(t, []string{"level 0", "3", "7", "12"}, records[2])
}
