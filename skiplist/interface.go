package skiplist

type K = int64
type V = string

// Item 表示依排序走訪取得的一組鍵值對
type Item struct {
	Key   K
	Value V
}

type SkipList interface {
	Contains(key K) bool
	Get(key K) (V, bool)
	Put(key K, value V)
	Delete(key K) bool
	Len() int
	Items() []Item
	GetHead() Nodelike
}

// Analyable 提供分析功能的介面
type Analyable interface {
	SkipList
	// GetMaxStats 獲取節點總數和當前最高層級
	GetMaxStats() (maxNodes int, maxLevel int)
}

type Nodelike interface {
	GetKey() K
	GetValue() V
	GetLevel() int32
	GetNextAt(level int32) Nodelike
}
