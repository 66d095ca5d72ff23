package lmm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/Johnnychien199108/2019MC/growth"
	"github.com/Johnnychien199108/2019MC/lmm"
)

// simulate builds one dataset from a large, well-behaved panel so the fitter
// has plenty of information to recover the truth.
func simulate(t *testing.T, p growth.Params, seed uint64) *growth.Dataset {
	t.Helper()
	ds, err := growth.Generate(p, rand.NewSource(seed))
	require.NoError(t, err)

	return ds
}

// TestFitModel_RecoversFixedEffects fits the correctly specified
// random-slope model to a large panel and checks the estimates land near
// the generating parameters.
func TestFitModel_RecoversFixedEffects(t *testing.T) {
	p := growth.Params{
		Clusters:     200,
		ClusterSize:  6,
		FixedEffects: [2]float64{1.0, 0.5},
		RandomCov:    mat.NewSymDense(2, []float64{0.25, 0.05, 0.05, 0.125}),
		ResidualVar:  0.25,
	}
	ds := simulate(t, p, 314)

	fit, err := lmm.FitModel(ds, lmm.RandomSlope)
	require.NoError(t, err)

	got := fit.FixedEffects()
	assert.InDelta(t, 1.0, got[0], 0.2, "intercept")
	assert.InDelta(t, 0.5, got[1], 0.15, "slope")
	assert.InDelta(t, 0.25, fit.ResidualVar(), 0.1, "residual variance")

	se, err := fit.StdErr(lmm.CoefTime)
	require.NoError(t, err)
	assert.Positive(t, se, "slope standard error")

	lo, hi, err := fit.ConfInt(lmm.CoefTime, 0.95)
	require.NoError(t, err)
	assert.Less(t, lo, got[1])
	assert.Greater(t, hi, got[1])
}

// TestFitModel_RandomInterceptVarianceComponents checks the moment estimate
// of the intercept variance on correctly specified random-intercept data.
func TestFitModel_RandomInterceptVarianceComponents(t *testing.T) {
	p := growth.Params{
		Clusters:     400,
		ClusterSize:  5,
		FixedEffects: [2]float64{0, 0.5},
		RandomCov:    mat.NewSymDense(2, []float64{0.5, 0, 0, 0}),
		ResidualVar:  1,
	}
	ds := simulate(t, p, 99)

	fit, err := lmm.FitModel(ds, lmm.RandomIntercept)
	require.NoError(t, err)

	g := fit.RandomEffectCov()
	assert.InDelta(t, 0.5, g.At(0, 0), 0.15, "intercept variance")
	assert.Zero(t, g.At(1, 1), "slope variance forced to zero under RandomIntercept")
	assert.InDelta(t, 1.0, fit.ResidualVar(), 0.15, "residual variance")
}

// TestFitModel_InputValidation walks the malformed-input sentinels.
func TestFitModel_InputValidation(t *testing.T) {
	_, err := lmm.FitModel(nil, lmm.RandomIntercept)
	assert.ErrorIs(t, err, lmm.ErrNilDataset)

	_, err = lmm.FitModel(&growth.Dataset{Y: []float64{1}, Time: []float64{0, 1}, Cluster: []int{1, 1}}, lmm.RandomIntercept)
	assert.ErrorIs(t, err, lmm.ErrRaggedDataset)

	_, err = lmm.FitModel(&growth.Dataset{}, lmm.ModelSpec(42))
	assert.ErrorIs(t, err, lmm.ErrBadSpec)
}

// TestFitModel_TooFewObservations covers the sample-size floor: too few
// clusters, clusters that are too small, and degenerate time grids.
func TestFitModel_TooFewObservations(t *testing.T) {
	// Two clusters only.
	two := simulate(t, growth.Params{
		Clusters:     2,
		ClusterSize:  5,
		FixedEffects: [2]float64{0, 0.5},
		RandomCov:    mat.NewSymDense(2, nil),
		ResidualVar:  1,
	}, 1)
	_, err := lmm.FitModel(two, lmm.RandomIntercept)
	assert.ErrorIs(t, err, lmm.ErrTooFewObservations)

	// Clusters of size two.
	small := simulate(t, growth.Params{
		Clusters:     10,
		ClusterSize:  2,
		FixedEffects: [2]float64{0, 0.5},
		RandomCov:    mat.NewSymDense(2, nil),
		ResidualVar:  1,
	}, 1)
	_, err = lmm.FitModel(small, lmm.RandomIntercept)
	assert.ErrorIs(t, err, lmm.ErrTooFewObservations)

	// Constant time within clusters: per-cluster OLS cannot identify a slope.
	flat := simulate(t, growth.Params{
		Clusters:     10,
		ClusterSize:  4,
		FixedEffects: [2]float64{0, 0.5},
		RandomCov:    mat.NewSymDense(2, nil),
		ResidualVar:  1,
	}, 1)
	for i := range flat.Time {
		flat.Time[i] = 1
	}
	_, err = lmm.FitModel(flat, lmm.RandomIntercept)
	assert.ErrorIs(t, err, lmm.ErrTooFewObservations)
}

// TestFit_ResultContract exercises the Result surface: name resolution,
// level defaults and bad-level rejection.
func TestFit_ResultContract(t *testing.T) {
	ds := simulate(t, growth.Params{
		Clusters:     30,
		ClusterSize:  4,
		FixedEffects: [2]float64{0, 0.5},
		RandomCov:    mat.NewSymDense(2, []float64{0.25, 0, 0, 0.125}),
		ResidualVar:  1,
	}, 2208)

	fit, err := lmm.FitModel(ds, lmm.RandomIntercept)
	require.NoError(t, err)

	var res lmm.Result = fit

	_, err = res.Coef("nope")
	assert.ErrorIs(t, err, lmm.ErrUnknownCoef)
	_, err = res.StdErr("nope")
	assert.ErrorIs(t, err, lmm.ErrUnknownCoef)
	_, _, err = res.ConfInt("nope", 0.95)
	assert.ErrorIs(t, err, lmm.ErrUnknownCoef)

	_, _, err = res.ConfInt(lmm.CoefTime, 1.5)
	assert.ErrorIs(t, err, lmm.ErrBadLevel)
	_, _, err = res.ConfInt(lmm.CoefTime, -0.1)
	assert.ErrorIs(t, err, lmm.ErrBadLevel)

	// level == 0 means the default 95% level.
	lo0, hi0, err := res.ConfInt(lmm.CoefTime, 0)
	require.NoError(t, err)
	lo95, hi95, err := res.ConfInt(lmm.CoefTime, lmm.DefaultCILevel)
	require.NoError(t, err)
	assert.Equal(t, lo95, lo0)
	assert.Equal(t, hi95, hi0)

	// A wider level must widen the interval.
	lo99, hi99, err := res.ConfInt(lmm.CoefTime, 0.99)
	require.NoError(t, err)
	assert.Less(t, lo99, lo95)
	assert.Greater(t, hi99, hi95)

	// VarCov is 2×2 with positive diagonal.
	vc := res.VarCov()
	assert.Equal(t, 2, vc.SymmetricDim())
	assert.Positive(t, vc.At(0, 0))
	assert.Positive(t, vc.At(1, 1))

	// FixedEffects returns a defensive copy.
	a := res.FixedEffects()
	a[0] = 12345
	b := res.FixedEffects()
	assert.NotEqual(t, a[0], b[0])
}

// TestModelSpec_String pins the human-readable spec names.
func TestModelSpec_String(t *testing.T) {
	assert.Equal(t, "random-intercept", lmm.RandomIntercept.String())
	assert.Equal(t, "random-intercept-and-slope", lmm.RandomSlope.String())
	assert.Equal(t, "unknown", lmm.ModelSpec(9).String())
}
