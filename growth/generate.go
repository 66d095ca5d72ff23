package growth

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// Generate produces one simulated dataset from p using src for all draws.
//
// Algorithm:
//  1. Build the balanced design matrix X and cluster index (DesignMatrix).
//  2. Draw the J×2 random-effect matrix U (RandomEffects), then the J·cs
//     residual vector e (Residuals) — this draw order is part of the
//     contract: a fixed seed reproduces the dataset byte for byte.
//  3. Broadcast-and-add per-cluster coefficients: β_j = γ + u_j, elementwise
//     for every cluster j. The fixed effects are added to each cluster's
//     deviation, never multiplied.
//  4. Outcome row i: y_i = X[i,0]·β_{c(i),0} + X[i,1]·β_{c(i),1} + e_i,
//     where c(i) is row i's cluster.
//
// Errors: the Params sentinels from Validate, ErrInvalidCovariance from the
// sampler, or ErrNilSource. All validation happens before any draw.
//
// Complexity: O(J·cs) time and memory.
func Generate(p Params, src rand.Source) (*Dataset, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, ErrNilSource
	}

	x, ids, err := DesignMatrix(p.Clusters, p.ClusterSize)
	if err != nil {
		return nil, err
	}

	u, err := RandomEffects(p.Clusters, p.RandomCov, src)
	if err != nil {
		return nil, err
	}

	n := p.Rows()
	e, err := Residuals(n, p.ResidualVar, src)
	if err != nil {
		return nil, err
	}

	// β_j = γ + u_j (explicit elementwise broadcast over clusters).
	beta := mat.NewDense(p.Clusters, reDim, nil)
	for j := 0; j < p.Clusters; j++ {
		for c := 0; c < reDim; c++ {
			beta.Set(j, c, p.FixedEffects[c]+u.At(j, c))
		}
	}

	y := make([]float64, n)
	times := make([]float64, n)
	for i := 0; i < n; i++ {
		j := ids[i] - 1
		times[i] = x.At(i, 1)
		y[i] = x.At(i, 0)*beta.At(j, 0) + x.At(i, 1)*beta.At(j, 1) + e[i]
	}

	return &Dataset{Y: y, Time: times, Cluster: ids}, nil
}
