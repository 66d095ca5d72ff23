// Package lmm result contract, model specifications and sentinel errors.
//
// Error policy:
//   - Only package-level sentinels; callers branch with errors.Is.
//   - Fit errors are never recovered internally — a study driver decides
//     whether a failed fit aborts the whole run (it does, in mc).
package lmm

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for model fitting and result extraction.
var (
	// ErrNilDataset indicates a nil dataset was passed to FitModel.
	ErrNilDataset = errors.New("lmm: dataset must not be nil")

	// ErrRaggedDataset indicates the dataset columns differ in length.
	ErrRaggedDataset = errors.New("lmm: dataset columns must have equal length")

	// ErrTooFewObservations indicates fewer than 3 clusters, or a cluster
	// with fewer than 3 rows or fewer than 2 distinct time points.
	ErrTooFewObservations = errors.New("lmm: not enough observations to fit")

	// ErrSingularFit indicates a singular normal-equations or marginal
	// covariance matrix (degenerate design or variance estimate).
	ErrSingularFit = errors.New("lmm: singular fit")

	// ErrFitDiverged indicates an iterative optimizer failed to converge.
	// The closed-form fitter in this package never returns it; it is part
	// of the Result contract for external fitter implementations.
	ErrFitDiverged = errors.New("lmm: fit did not converge")

	// ErrUnknownCoef indicates a coefficient name not in the model.
	ErrUnknownCoef = errors.New("lmm: unknown coefficient name")

	// ErrBadLevel indicates a confidence level outside (0, 1).
	ErrBadLevel = errors.New("lmm: confidence level must be in (0, 1)")

	// ErrBadSpec indicates an unknown model specification value.
	ErrBadSpec = errors.New("lmm: unknown model specification")
)

// Coefficient names exposed by every Result.
const (
	// CoefIntercept names the fixed intercept γ₀.
	CoefIntercept = "(Intercept)"
	// CoefTime names the fixed slope γ₁ on the time predictor.
	CoefTime = "time"
)

// DefaultCILevel is the confidence level used when callers pass 0.
const DefaultCILevel = 0.95

// ModelSpec selects the assumed random-effect structure.
type ModelSpec int

const (
	// RandomIntercept assumes a cluster random intercept only.
	RandomIntercept ModelSpec = iota
	// RandomSlope assumes correlated random intercept and random slope.
	RandomSlope
)

// String returns the spec name.
func (s ModelSpec) String() string {
	switch s {
	case RandomIntercept:
		return "random-intercept"
	case RandomSlope:
		return "random-intercept-and-slope"
	default:
		return "unknown"
	}
}

// Result is the fixed-shape view of a fitted model: point estimates, their
// covariance, and a confidence-interval function — nothing more. Monte Carlo
// drivers depend on this interface, not on the concrete fitter.
type Result interface {
	// FixedEffects returns the point estimates in (intercept, slope) order.
	FixedEffects() []float64

	// Coef returns the point estimate for a named coefficient
	// (CoefIntercept or CoefTime). Unknown names yield ErrUnknownCoef.
	Coef(name string) (float64, error)

	// VarCov returns the estimated covariance matrix of the fixed effects;
	// standard errors are square roots of its diagonal.
	VarCov() mat.Symmetric

	// StdErr returns the standard error of a named coefficient.
	StdErr(name string) (float64, error)

	// ConfInt returns the (lower, upper) confidence bounds for a named
	// coefficient. level == 0 means DefaultCILevel; levels outside (0, 1)
	// yield ErrBadLevel.
	ConfInt(name string, level float64) (lower, upper float64, err error)
}
