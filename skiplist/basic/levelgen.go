package basic

import (
	"fmt"
	"math/rand"
)

// LevelGenerator 決定新節點的塔高（0-indexed 頂層）
type LevelGenerator interface {
	NextLevel() int32
}

// GeometricGenerator 以機率 p 逐層升級，層級分布為幾何分布
type GeometricGenerator struct {
	p        float64
	maxLevel int32
	rng      *rand.Rand
}

func NewGeometricGenerator(maxLevel int, p float64, seed int64) (*GeometricGenerator, error) {
	if maxLevel < 1 {
		return nil, fmt.Errorf("max level %d: %w", maxLevel, ErrInvalidMaxLevel)
	}
	if p <= 0 || p >= 1 {
		return nil, fmt.Errorf("probability %g: %w", p, ErrInvalidProbability)
	}
	return &GeometricGenerator{
		p:        p,
		maxLevel: int32(maxLevel),
		rng:      rand.New(rand.NewSource(seed)),
	}, nil
}

func (g *GeometricGenerator) NextLevel() int32 {
	lvl := int32(0)
	for g.rng.Float64() < g.p && lvl < g.maxLevel-1 {
		lvl++
	}
	return lvl
}

// SequenceGenerator 依序回放固定的層級序列，供測試重現結構，
// 序列用盡後從頭循環
type SequenceGenerator struct {
	levels []int32
	pos    int
}

func NewSequenceGenerator(levels ...int32) *SequenceGenerator {
	cp := make([]int32, len(levels))
	copy(cp, levels)
	return &SequenceGenerator{levels: cp}
}

func (g *SequenceGenerator) NextLevel() int32 {
	if len(g.levels) == 0 {
		return 0
	}
	lvl := g.levels[g.pos%len(g.levels)]
	g.pos++
	return lvl
}
