package mc

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates a replication table against the known truth.
//
// Conventions (documented, deliberate):
//   - SDEstimate is the sample standard deviation of the point estimates —
//     the empirical sampling standard error.
//   - RMSE is Bias² + Var(estimates): the classical MSE decomposition. The
//     name follows the study convention this library reproduces, even though
//     no square root is taken.
//   - RelStdErrBias is StdErrBias / SDEstimate. When SDEstimate is zero the
//     ratio is reported explicitly as ±Inf (or 0 when StdErrBias is also
//     zero) — an unflagged NaN never leaves this package.
type Summary struct {
	Replications int

	MeanEstimate float64
	MeanStdErr   float64
	SDEstimate   float64

	Coverage float64

	Bias          float64
	RelBias       float64
	StdErrBias    float64
	RelStdErrBias float64
	RMSE          float64
}

// Summarize computes the Summary for records against the true parameter
// value. It is a pure function: same table and truth ⇒ identical Summary,
// with no hidden state between calls.
//
// Errors:
//   - ErrNoRecords     — records is empty.
//   - ErrTooFewRecords — a single record: spread statistics are undefined.
//   - ErrZeroTruth     — truth == 0, which leaves relative bias undefined;
//     the caller must handle the degenerate case explicitly rather than
//     receive a silent NaN.
//
// Complexity: O(N).
func Summarize(records []Record, truth float64) (Summary, error) {
	if len(records) == 0 {
		return Summary{}, ErrNoRecords
	}
	if len(records) < 2 {
		return Summary{}, ErrTooFewRecords
	}
	if truth == 0 {
		return Summary{}, ErrZeroTruth
	}

	n := len(records)
	est := make([]float64, n)
	ses := make([]float64, n)
	var covered int
	for i, r := range records {
		est[i] = r.Estimate
		ses[i] = r.StdErr
		if r.Lower <= truth && truth <= r.Upper {
			covered++
		}
	}

	meanEst := stat.Mean(est, nil)
	meanSE := stat.Mean(ses, nil)
	varEst := stat.Variance(est, nil)
	sdEst := math.Sqrt(varEst)

	bias := meanEst - truth
	seBias := meanSE - sdEst

	return Summary{
		Replications:  n,
		MeanEstimate:  meanEst,
		MeanStdErr:    meanSE,
		SDEstimate:    sdEst,
		Coverage:      float64(covered) / float64(n),
		Bias:          bias,
		RelBias:       bias / truth,
		StdErrBias:    seBias,
		RelStdErrBias: ratioOrInf(seBias, sdEst),
		RMSE:          bias*bias + varEst,
	}, nil
}

// Estimates projects the point estimates out of a replication table, for
// estimator-comparison studies and plotting collaborators.
func Estimates(records []Record) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.Estimate
	}

	return out
}

// RelEfficiency returns Var(a)/Var(b): the relative efficiency of estimator
// b with respect to estimator a over matched replication draws. Values above
// 1 mean b is the more precise estimator.
//
// Errors:
//   - ErrNoRecords     — either sample is empty.
//   - ErrTooFewRecords — either sample has fewer than two draws.
//   - ErrZeroVariance  — Var(b) == 0.
func RelEfficiency(a, b []float64) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, ErrNoRecords
	}
	if len(a) < 2 || len(b) < 2 {
		return 0, ErrTooFewRecords
	}
	vb := stat.Variance(b, nil)
	if vb == 0 {
		return 0, ErrZeroVariance
	}

	return stat.Variance(a, nil) / vb, nil
}

// ratioOrInf divides num by den, mapping a zero denominator to an explicit
// signed infinity (or 0 for 0/0) instead of NaN.
func ratioOrInf(num, den float64) float64 {
	if den == 0 {
		switch {
		case num > 0:
			return math.Inf(1)
		case num < 0:
			return math.Inf(-1)
		default:
			return 0
		}
	}

	return num / den
}
