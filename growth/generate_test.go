package growth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/Johnnychien199108/2019MC/growth"
)

func refParams() growth.Params {
	return growth.Params{
		Clusters:     20,
		ClusterSize:  4,
		FixedEffects: [2]float64{0, 0.5},
		RandomCov:    mat.NewSymDense(2, []float64{0.25, 0, 0, 0.125}),
		ResidualVar:  1,
	}
}

// TestGenerate_Deterministic verifies that two invocations with the same
// seed produce byte-identical datasets, and a different seed does not.
func TestGenerate_Deterministic(t *testing.T) {
	p := refParams()

	a, err := growth.Generate(p, rand.NewSource(2208))
	require.NoError(t, err)
	b, err := growth.Generate(p, rand.NewSource(2208))
	require.NoError(t, err)

	assert.Equal(t, a.Y, b.Y, "outcomes must match for a fixed seed")
	assert.Equal(t, a.Time, b.Time)
	assert.Equal(t, a.Cluster, b.Cluster)

	c, err := growth.Generate(p, rand.NewSource(2209))
	require.NoError(t, err)
	assert.NotEqual(t, a.Y, c.Y, "different seeds must diverge")
}

// TestGenerate_NoNoiseExactLine checks the degenerate σ²=0, G=0 case:
// every outcome equals γ₀ + γ₁·time exactly.
func TestGenerate_NoNoiseExactLine(t *testing.T) {
	p := growth.Params{
		Clusters:     6,
		ClusterSize:  5,
		FixedEffects: [2]float64{1.5, -0.25},
		RandomCov:    mat.NewSymDense(2, nil),
		ResidualVar:  0,
	}

	ds, err := growth.Generate(p, rand.NewSource(1))
	require.NoError(t, err)
	require.Equal(t, p.Rows(), ds.Len())

	for i := 0; i < ds.Len(); i++ {
		assert.Equal(t, 1.5-0.25*ds.Time[i], ds.Y[i], "row %d must lie on the fixed-effect line", i)
	}
}

// TestGenerate_InvalidParams walks every validation sentinel.
func TestGenerate_InvalidParams(t *testing.T) {
	base := refParams()

	p := base
	p.Clusters = 0
	_, err := growth.Generate(p, rand.NewSource(1))
	assert.ErrorIs(t, err, growth.ErrInvalidClusterCount)

	p = base
	p.ClusterSize = -1
	_, err = growth.Generate(p, rand.NewSource(1))
	assert.ErrorIs(t, err, growth.ErrInvalidClusterSize)

	p = base
	p.RandomCov = nil
	_, err = growth.Generate(p, rand.NewSource(1))
	assert.ErrorIs(t, err, growth.ErrInvalidCovariance)

	p = base
	p.RandomCov = mat.NewSymDense(2, []float64{1, 3, 3, 1})
	_, err = growth.Generate(p, rand.NewSource(1))
	assert.ErrorIs(t, err, growth.ErrInvalidCovariance)

	p = base
	p.ResidualVar = -0.5
	_, err = growth.Generate(p, rand.NewSource(1))
	assert.ErrorIs(t, err, growth.ErrInvalidResidualVar)

	_, err = growth.Generate(base, nil)
	assert.ErrorIs(t, err, growth.ErrNilSource)
}

// TestGenerate_StructureMatchesDesign confirms the dataset columns mirror
// DesignMatrix output: same time grid, same contiguous cluster blocks.
func TestGenerate_StructureMatchesDesign(t *testing.T) {
	p := refParams()
	ds, err := growth.Generate(p, rand.NewSource(5))
	require.NoError(t, err)

	_, ids, err := growth.DesignMatrix(p.Clusters, p.ClusterSize)
	require.NoError(t, err)
	assert.Equal(t, ids, ds.Cluster)

	for i := 0; i < ds.Len(); i++ {
		assert.Equal(t, float64(i%p.ClusterSize), ds.Time[i], "time at row %d", i)
	}
}
