package basic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeometricGeneratorValidation(t *testing.T) {
	_, err := NewGeometricGenerator(0, 0.5, 42)
	assert.ErrorIs(t, err, ErrInvalidMaxLevel)

	_, err = NewGeometricGenerator(16, 0, 42)
	assert.ErrorIs(t, err, ErrInvalidProbability)

	_, err = NewGeometricGenerator(16, 1, 42)
	assert.ErrorIs(t, err, ErrInvalidProbability)
}

func TestGeometricGeneratorRange(t *testing.T) {
	gen, err := NewGeometricGenerator(4, 0.9, 42)
	require.NoError(t, err)

	for i := 0; i < 10000; i++ {
		lvl := gen.NextLevel()
		assert.GreaterOrEqual(t, lvl, int32(0))
		assert.LessOrEqual(t, lvl, int32(3))
	}
}

func TestGeometricLevelDistribution(t *testing.T) {
	const samples = 200000
	const p = 0.5

	gen, err := NewGeometricGenerator(16, p, 42)
	require.NoError(t, err)

	counts := make([]int, 16)
	for i := 0; i < samples; i++ {
		counts[gen.NextLevel()]++
	}

	// 最底層應約佔 1-p
	assert.InDelta(t, (1-p)*samples, float64(counts[0]), 0.02*samples)

	// 相鄰層數量比應接近 p。升級次數服從 Binomial(counts[h], p)，
	// 比值的標準差為 sqrt(p(1-p)/counts[h])，容忍五個標準差
	for h := 0; h+1 < len(counts); h++ {
		if counts[h] < 1000 {
			break
		}
		ratio := float64(counts[h+1]) / float64(counts[h])
		tolerance := 5 * math.Sqrt(p*(1-p)/float64(counts[h]))
		assert.InDelta(t, p, ratio, tolerance, "level %d -> %d", h, h+1)
	}
}

func TestGeometricGeneratorReproducible(t *testing.T) {
	g1, err := NewGeometricGenerator(16, 0.5, 7)
	require.NoError(t, err)
	g2, err := NewGeometricGenerator(16, 0.5, 7)
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		require.Equal(t, g1.NextLevel(), g2.NextLevel())
	}
}

func TestSequenceGeneratorCycle(t *testing.T) {
	gen := NewSequenceGenerator(2, 0, 1)

	got := make([]int32, 6)
	for i := range got {
		got[i] = gen.NextLevel()
	}
	assert.Equal(t, []int32{2, 0, 1, 2, 0, 1}, got)

	empty := NewSequenceGenerator()
	assert.Equal(t, int32(0), empty.NextLevel())
}
