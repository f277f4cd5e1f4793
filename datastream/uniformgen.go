package datastream

import (
	"math"
	"math/rand"

	"github.com/Hakuto4838/SkipDict.git/skiplist"
)

// UniformDataGenerator 產生符合平均分布的查詢序列，
// 每個索引出現機率皆相同
type UniformDataGenerator struct {
	n   int
	rng *rand.Rand
}

func NewUniformDataGenerator(n int, seed int64) *UniformDataGenerator {
	return &UniformDataGenerator{
		n:   n,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Next 產生一筆查詢 (回傳索引 0~n-1)
func (u *UniformDataGenerator) Next() int {
	return u.rng.Intn(u.n)
}

// GenerateSequence 產生指定長度的查詢序列
func (u *UniformDataGenerator) GenerateSequence(seqLen int) []int {
	seq := make([]int, seqLen)
	for i := 0; i < seqLen; i++ {
		seq[i] = u.Next()
	}
	return seq
}

// GetKeyMap 回傳每個 key 的機率分布
func (u *UniformDataGenerator) GetKeyMap() map[skiplist.K]float64 {
	result := make(map[skiplist.K]float64, u.n)
	p := 1.0 / float64(u.n)
	for i := 0; i < u.n; i++ {
		result[skiplist.K(i)] = p
	}
	return result
}

func (u *UniformDataGenerator) Entropy() float64 {
	return math.Log2(float64(u.n))
}
