// Package mc core types, options and sentinel errors.
package mc

import (
	"errors"

	"golang.org/x/exp/rand"
)

// Sentinel errors for the replication and summary engines.
var (
	// ErrBadReplications indicates Options.Replications < 1.
	ErrBadReplications = errors.New("mc: replication count must be at least 1")

	// ErrBadWorkers indicates Options.Workers < 0.
	ErrBadWorkers = errors.New("mc: worker count must be non-negative")

	// ErrNilFunc indicates a nil generation or fit function.
	ErrNilFunc = errors.New("mc: generation and fit functions must not be nil")

	// ErrNoRecords indicates an empty replication table.
	ErrNoRecords = errors.New("mc: no replication records to summarize")

	// ErrTooFewRecords indicates a table with a single record, for which
	// the spread statistics (SD, relative efficiency) are undefined.
	ErrTooFewRecords = errors.New("mc: need at least two records to summarize")

	// ErrZeroTruth indicates relative bias is undefined because the true
	// parameter value is zero. The summary refuses to produce a silent NaN.
	ErrZeroTruth = errors.New("mc: true parameter is zero, relative bias undefined")

	// ErrZeroVariance indicates a degenerate (zero-variance) reference
	// estimator in a relative-efficiency comparison.
	ErrZeroVariance = errors.New("mc: reference estimator has zero variance")
)

// Record is one replication's yield for the parameter of interest: its
// point estimate, the model-based standard error, and the confidence-interval
// bounds. Records are appended in generation order and never mutated.
type Record struct {
	Estimate float64
	StdErr   float64
	Lower    float64
	Upper    float64
}

// GenerateFunc produces one fresh dataset per call, drawing all randomness
// from src. D is the dataset type — *growth.Dataset for panel studies,
// []float64 for plain iid sampling-distribution demos.
type GenerateFunc[D any] func(src rand.Source) (D, error)

// FitFunc fits one dataset and extracts the Record for the parameter of
// interest. Implementations surface lmm.ErrFitDiverged / lmm.ErrSingularFit
// unchanged; the engine aborts the run on any error.
type FitFunc[D any] func(data D) (Record, error)

// Options configures one replication run.
//
// Fields:
//   - Replications — N, number of generate→fit cycles (≥ 1).
//   - Seed         — random seed; 0 selects the fixed default seed, so the
//     zero value is still fully deterministic.
//   - Workers      — 0 or 1 runs strictly sequentially on one evolving
//     source; k > 1 runs up to k cycles concurrently on per-replication
//     derived sources (deterministic for a fixed seed in both modes).
type Options struct {
	Replications int
	Seed         uint64
	Workers      int
}

// DefaultOptions returns the canonical study configuration: 1000 sequential
// replications on the default seed.
func DefaultOptions() Options {
	return Options{
		Replications: defaultReplications,
		Seed:         defaultSeed,
		Workers:      1,
	}
}

// validate checks option constraints.
func (o Options) validate() error {
	if o.Replications < 1 {
		return ErrBadReplications
	}
	if o.Workers < 0 {
		return ErrBadWorkers
	}

	return nil
}

// defaultReplications is the stock N for DefaultOptions.
const defaultReplications = 1000
