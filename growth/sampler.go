package growth

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
)

// RandomEffects draws one pair of cluster-level random effects per cluster:
// a clusters×2 matrix whose row j is an independent draw from N(0, cov).
// Rows are independent across clusters; within a row, intercept and slope
// deviations are correlated according to cov's off-diagonal.
//
// Sampling strategy:
//   - cov positive definite — gonum's multivariate normal (Cholesky-backed).
//   - cov all zero          — a zero matrix is returned and no entropy is
//     consumed (degenerate "no random effects" case).
//   - cov PSD but singular  — an eigen square root replaces the Cholesky
//     factor, so rank-deficient G (for example a pure random-intercept
//     diag(τ², 0)) is still sampled exactly.
//
// Errors:
//   - ErrInvalidClusterCount — clusters < 1.
//   - ErrInvalidCovariance   — cov nil, not 2×2, or has an eigenvalue below
//     −psdTol (not positive semi-definite).
//   - ErrNilSource           — src is nil.
//
// Complexity: O(clusters) draws after an O(1) 2×2 decomposition.
func RandomEffects(clusters int, cov *mat.SymDense, src rand.Source) (*mat.Dense, error) {
	if clusters < 1 {
		return nil, ErrInvalidClusterCount
	}
	if cov == nil || cov.SymmetricDim() != reDim {
		return nil, ErrInvalidCovariance
	}
	if src == nil {
		return nil, ErrNilSource
	}

	u := mat.NewDense(clusters, reDim, nil)
	if isZeroSym(cov) {
		return u, nil
	}

	// Fast path: positive definite covariance.
	if mvn, ok := distmv.NewNormal(make([]float64, reDim), cov, src); ok {
		buf := make([]float64, reDim)
		for j := 0; j < clusters; j++ {
			mvn.Rand(buf)
			u.SetRow(j, buf)
		}

		return u, nil
	}

	// Singular PSD path: u = F·z with F = V·diag(√λ₊) from the eigen
	// decomposition, z ~ N(0, I).
	f, err := psdSqrt(cov)
	if err != nil {
		return nil, err
	}
	std := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	for j := 0; j < clusters; j++ {
		z0, z1 := std.Rand(), std.Rand()
		u.Set(j, 0, f.At(0, 0)*z0+f.At(0, 1)*z1)
		u.Set(j, 1, f.At(1, 0)*z0+f.At(1, 1)*z1)
	}

	return u, nil
}

// Residuals draws n independent observation-level noise terms from
// Normal(0, sigma2). sigma2 == 0 yields exact zeros (still one draw per
// observation, keeping the source's advance uniform across parameters).
//
// Errors:
//   - ErrInvalidResidualVar — sigma2 < 0.
//   - ErrNilSource          — src is nil.
//
// Complexity: O(n).
func Residuals(n int, sigma2 float64, src rand.Source) ([]float64, error) {
	if sigma2 < 0 {
		return nil, ErrInvalidResidualVar
	}
	if src == nil {
		return nil, ErrNilSource
	}
	if n < 0 {
		n = 0
	}

	dist := distuv.Normal{Mu: 0, Sigma: math.Sqrt(sigma2), Src: src}
	e := make([]float64, n)
	for i := range e {
		e[i] = dist.Rand()
	}

	return e, nil
}

// isZeroSym reports whether every entry of a 2×2 symmetric matrix is zero.
func isZeroSym(s *mat.SymDense) bool {
	for i := 0; i < reDim; i++ {
		for j := i; j < reDim; j++ {
			if s.At(i, j) != 0 {
				return false
			}
		}
	}

	return true
}

// psdSqrt computes a square-root factor F of a symmetric PSD matrix via its
// eigen decomposition, clamping eigenvalues in [−psdTol, 0] to zero.
// Returns ErrInvalidCovariance when an eigenvalue falls below −psdTol.
func psdSqrt(s *mat.SymDense) (*mat.Dense, error) {
	var es mat.EigenSym
	if !es.Factorize(s, true) {
		return nil, ErrInvalidCovariance
	}
	vals := es.Values(nil)
	vecs := mat.NewDense(reDim, reDim, nil)
	es.VectorsTo(vecs)

	root := mat.NewDense(reDim, reDim, nil)
	for k, v := range vals {
		if v < -psdTol {
			return nil, ErrInvalidCovariance
		}
		if v < 0 {
			v = 0
		}
		sq := math.Sqrt(v)
		root.Set(0, k, vecs.At(0, k)*sq)
		root.Set(1, k, vecs.At(1, k)*sq)
	}

	return root, nil
}
