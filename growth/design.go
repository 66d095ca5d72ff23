package growth

import "gonum.org/v1/gonum/mat"

// DesignMatrix builds the fixed predictor matrix and cluster index for a
// balanced linear-growth panel.
//
// Description:
//
//	Every cluster is measured at the same cs equally spaced time points
//	0, 1, ..., cs−1. The design matrix therefore consists of J identical
//	blocks of cs rows, each row [1, t].
//
// Returns:
//   - X: (J·cs)×2 matrix; column 0 is all ones (intercept), column 1 cycles
//     through 0..cs−1 once per cluster.
//   - ids: length J·cs; id k (1-based) occupies one contiguous block of cs
//     entries — blocks are never interleaved.
//
// Errors:
//   - ErrInvalidClusterCount — clusters < 1.
//   - ErrInvalidClusterSize  — clusterSize < 1.
//
// Pure function of (clusters, clusterSize); no randomness.
//
// Complexity: O(J·cs) time and memory.
func DesignMatrix(clusters, clusterSize int) (*mat.Dense, []int, error) {
	if clusters < 1 {
		return nil, nil, ErrInvalidClusterCount
	}
	if clusterSize < 1 {
		return nil, nil, ErrInvalidClusterSize
	}

	n := clusters * clusterSize
	x := mat.NewDense(n, reDim, nil)
	ids := make([]int, n)

	var row int
	for j := 0; j < clusters; j++ {
		for t := 0; t < clusterSize; t++ {
			x.Set(row, 0, 1)
			x.Set(row, 1, float64(t))
			ids[row] = j + 1
			row++
		}
	}

	return x, ids, nil
}
