// Package growth core types and sentinel errors.
//
// Error policy:
//   - Only package-level sentinel errors are exposed.
//   - Callers branch with errors.Is; messages carry the "growth:" prefix.
//   - Validation errors abort before any sampling consumes entropy.
package growth

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for simulation parameter validation.
var (
	// ErrInvalidClusterCount indicates Clusters < 1.
	ErrInvalidClusterCount = errors.New("growth: cluster count must be at least 1")

	// ErrInvalidClusterSize indicates ClusterSize < 1.
	ErrInvalidClusterSize = errors.New("growth: cluster size must be at least 1")

	// ErrInvalidCovariance indicates the random-effect covariance matrix is
	// nil, not 2×2, or not positive semi-definite.
	ErrInvalidCovariance = errors.New("growth: random-effect covariance must be a 2x2 positive semi-definite matrix")

	// ErrInvalidResidualVar indicates a negative residual variance.
	ErrInvalidResidualVar = errors.New("growth: residual variance must be non-negative")

	// ErrNilSource indicates a nil random source was supplied to a sampler.
	ErrNilSource = errors.New("growth: random source must not be nil")
)

// reDim is the number of random effects per cluster (intercept, slope).
const reDim = 2

// psdTol is the eigenvalue tolerance below which a covariance matrix is
// rejected as not positive semi-definite.
const psdTol = 1e-10

// Params is the immutable configuration of one simulated dataset.
//
// Fields:
//   - Clusters     — number of clusters J (≥ 1).
//   - ClusterSize  — observations per cluster cs (≥ 1, identical across
//     clusters: the design is balanced).
//   - FixedEffects — γ: population intercept and slope.
//   - RandomCov    — G: 2×2 covariance of the cluster random effects.
//     Must be positive semi-definite; the zero matrix disables random
//     effects entirely.
//   - ResidualVar  — σ²: variance of the observation-level noise (≥ 0;
//     zero disables noise).
//
// Params is passed by value everywhere; callers never observe mutation.
type Params struct {
	Clusters     int
	ClusterSize  int
	FixedEffects [2]float64
	RandomCov    *mat.SymDense
	ResidualVar  float64
}

// Validate checks all structural parameter constraints and returns the first
// violated sentinel, or nil. Decomposability of RandomCov is verified by the
// sampler itself, still before any draw is made.
//
// Complexity: O(1).
func (p Params) Validate() error {
	if p.Clusters < 1 {
		return ErrInvalidClusterCount
	}
	if p.ClusterSize < 1 {
		return ErrInvalidClusterSize
	}
	if p.RandomCov == nil || p.RandomCov.SymmetricDim() != reDim {
		return ErrInvalidCovariance
	}
	if p.ResidualVar < 0 {
		return ErrInvalidResidualVar
	}

	return nil
}

// Rows returns the number of observation rows a dataset generated from p
// will contain (J·cs).
func (p Params) Rows() int { return p.Clusters * p.ClusterSize }

// Dataset is one simulated sample: parallel columns of equal length J·cs.
// Row i carries outcome Y[i] observed at Time[i] for cluster Cluster[i]
// (ids are 1-based and occupy contiguous blocks of ClusterSize rows).
//
// A Dataset is created by Generate and never mutated afterward.
type Dataset struct {
	Y       []float64
	Time    []float64
	Cluster []int
}

// Len returns the number of observation rows.
func (d *Dataset) Len() int { return len(d.Y) }
