package lmm

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Fit is the concrete Result produced by FitModel.
//
// It stores the fixed-effect estimates, their covariance, the estimated
// variance components, and the degrees of freedom used for t-based
// confidence intervals. Immutable after FitModel returns.
type Fit struct {
	spec   ModelSpec
	coef   []float64     // (intercept, slope)
	vcov   *mat.SymDense // covariance of coef
	reCov  *mat.SymDense // Ĝ, estimated random-effect covariance
	sigma2 float64       // σ̂², residual variance
	df     float64       // t degrees of freedom (J − 2)
}

// Compile-time check: *Fit satisfies the Result contract.
var _ Result = (*Fit)(nil)

// coefIndex resolves a coefficient name to its position.
func coefIndex(name string) (int, error) {
	switch name {
	case CoefIntercept:
		return 0, nil
	case CoefTime:
		return 1, nil
	default:
		return 0, ErrUnknownCoef
	}
}

// Spec returns the model specification this fit assumed.
func (f *Fit) Spec() ModelSpec { return f.spec }

// FixedEffects returns a copy of the point estimates (intercept, slope).
func (f *Fit) FixedEffects() []float64 {
	out := make([]float64, len(f.coef))
	copy(out, f.coef)

	return out
}

// Coef returns the point estimate for a named coefficient.
func (f *Fit) Coef(name string) (float64, error) {
	i, err := coefIndex(name)
	if err != nil {
		return 0, err
	}

	return f.coef[i], nil
}

// VarCov returns the estimated covariance matrix of the fixed effects.
func (f *Fit) VarCov() mat.Symmetric { return f.vcov }

// StdErr returns the model-based standard error of a named coefficient:
// the square root of the matching VarCov diagonal entry.
func (f *Fit) StdErr(name string) (float64, error) {
	i, err := coefIndex(name)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(f.vcov.At(i, i)), nil
}

// ConfInt returns the two-sided confidence interval for a named coefficient
// using Student-t quantiles with J−2 degrees of freedom. level == 0 selects
// DefaultCILevel; any other value outside (0, 1) yields ErrBadLevel.
func (f *Fit) ConfInt(name string, level float64) (float64, float64, error) {
	i, err := coefIndex(name)
	if err != nil {
		return 0, 0, err
	}
	if level == 0 {
		level = DefaultCILevel
	}
	if level <= 0 || level >= 1 {
		return 0, 0, ErrBadLevel
	}

	se := math.Sqrt(f.vcov.At(i, i))
	q := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: f.df}.Quantile(0.5 + level/2)

	return f.coef[i] - q*se, f.coef[i] + q*se, nil
}

// ResidualVar returns σ̂², the pooled within-cluster residual variance.
func (f *Fit) ResidualVar() float64 { return f.sigma2 }

// RandomEffectCov returns Ĝ, the estimated covariance of the cluster random
// effects under the fitted specification (the slope components are zero for
// RandomIntercept).
func (f *Fit) RandomEffectCov() mat.Symmetric { return f.reCov }
