package lmm

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/Johnnychien199108/2019MC/growth"
)

// minClusters is the smallest number of clusters the moment estimator can
// work with (between-cluster covariance needs J−1 ≥ 2 degrees of freedom).
const minClusters = 3

// minClusterRows is the smallest per-cluster sample for the stage-1 OLS
// (two coefficients plus at least one residual degree of freedom).
const minClusterRows = 3

// cluster is one cluster's rows, gathered in dataset order.
type cluster struct {
	t []float64
	y []float64
}

// FitModel fits the two-level growth model to ds under spec.
//
// Algorithm (two-stage moment / GLS):
//  1. Per-cluster OLS of y on Z = [1, t]: coefficient pairs b_j, pooled
//     residual variance σ̂², and the mean sampling covariance σ̂²·mean((ZᵀZ)⁻¹).
//  2. Moment estimate of G: the between-cluster sample covariance of the b_j
//     minus the mean sampling covariance; restricted to the intercept
//     component (clamped at zero) for RandomIntercept, projected to the
//     nearest PSD matrix by eigenvalue clamping for RandomSlope.
//  3. GLS with per-cluster marginal covariance V_j = Z_j Ĝ Z_jᵀ + σ̂²·I:
//     γ̂ = A⁻¹·Σ Z_jᵀV_j⁻¹y_j with A = Σ Z_jᵀV_j⁻¹Z_j, VarCov(γ̂) = A⁻¹.
//
// Errors:
//   - ErrNilDataset / ErrRaggedDataset — malformed input.
//   - ErrTooFewObservations — fewer than 3 clusters, or any cluster with
//     fewer than 3 rows or fewer than 2 distinct time points.
//   - ErrSingularFit — a per-cluster ZᵀZ, a marginal V_j, or the GLS normal
//     matrix A is not positive definite.
//   - ErrBadSpec — unknown specification.
//
// Complexity: O(n + Σ cs_j³) time (cs_j is tiny in growth panels).
func FitModel(ds *growth.Dataset, spec ModelSpec) (*Fit, error) {
	if spec != RandomIntercept && spec != RandomSlope {
		return nil, ErrBadSpec
	}
	if ds == nil {
		return nil, ErrNilDataset
	}
	if len(ds.Y) != len(ds.Time) || len(ds.Y) != len(ds.Cluster) {
		return nil, ErrRaggedDataset
	}

	clusters := groupClusters(ds)
	j := len(clusters)
	if j < minClusters {
		return nil, ErrTooFewObservations
	}

	// Stage 1: per-cluster OLS.
	bMat := mat.NewDense(j, 2, nil)    // rows are b_j
	meanInv := mat.NewSymDense(2, nil) // mean of (ZᵀZ)⁻¹ across clusters
	var rss float64
	var dfResid int
	for idx, c := range clusters {
		b0, b1, clusterRSS, inv, err := olsCluster(c)
		if err != nil {
			return nil, err
		}
		bMat.Set(idx, 0, b0)
		bMat.Set(idx, 1, b1)
		rss += clusterRSS
		dfResid += len(c.y) - 2
		meanInv.AddSym(meanInv, inv)
	}
	if dfResid < 1 {
		return nil, ErrTooFewObservations
	}
	sigma2 := rss / float64(dfResid)
	scaleSym(meanInv, 1/float64(j))

	// Stage 2: moment estimate of G.
	between := mat.NewSymDense(2, nil)
	stat.CovarianceMatrix(between, bMat, nil)
	g, err := momentG(between, meanInv, sigma2, spec)
	if err != nil {
		return nil, err
	}

	// Stage 3: GLS for the fixed effects.
	coef, vcov, err := glsFixedEffects(clusters, g, sigma2)
	if err != nil {
		return nil, err
	}

	return &Fit{
		spec:   spec,
		coef:   coef,
		vcov:   vcov,
		reCov:  g,
		sigma2: sigma2,
		df:     float64(j - 2),
	}, nil
}

// groupClusters gathers rows per cluster id, preserving first-seen order.
func groupClusters(ds *growth.Dataset) []cluster {
	index := make(map[int]int)
	var out []cluster
	for i, id := range ds.Cluster {
		k, ok := index[id]
		if !ok {
			k = len(out)
			index[id] = k
			out = append(out, cluster{})
		}
		out[k].t = append(out[k].t, ds.Time[i])
		out[k].y = append(out[k].y, ds.Y[i])
	}

	return out
}

// olsCluster solves the per-cluster OLS of y on [1, t]. Returns the
// intercept, the slope, the residual sum of squares, and (ZᵀZ)⁻¹.
func olsCluster(c cluster) (b0, b1, rss float64, inv *mat.SymDense, err error) {
	n := len(c.y)
	if n < minClusterRows || distinct(c.t) < 2 {
		return 0, 0, 0, nil, ErrTooFewObservations
	}

	var st, stt, sy, sty float64
	for i := 0; i < n; i++ {
		st += c.t[i]
		stt += c.t[i] * c.t[i]
		sy += c.y[i]
		sty += c.t[i] * c.y[i]
	}
	ztz := mat.NewSymDense(2, []float64{float64(n), st, st, stt})

	var chol mat.Cholesky
	if !chol.Factorize(ztz) {
		return 0, 0, 0, nil, ErrSingularFit
	}

	var b mat.VecDense
	if err := chol.SolveVecTo(&b, mat.NewVecDense(2, []float64{sy, sty})); err != nil {
		return 0, 0, 0, nil, ErrSingularFit
	}
	b0, b1 = b.AtVec(0), b.AtVec(1)

	for i := 0; i < n; i++ {
		r := c.y[i] - b0 - b1*c.t[i]
		rss += r * r
	}

	inv = mat.NewSymDense(2, nil)
	if err := chol.InverseTo(inv); err != nil {
		return 0, 0, 0, nil, ErrSingularFit
	}

	return b0, b1, rss, inv, nil
}

// momentG turns the between-cluster coefficient covariance into Ĝ:
// D = between − σ̂²·meanInv, restricted per spec and projected to PSD.
func momentG(between, meanInv *mat.SymDense, sigma2 float64, spec ModelSpec) (*mat.SymDense, error) {
	d := mat.NewSymDense(2, nil)
	for i := 0; i < 2; i++ {
		for k := i; k < 2; k++ {
			d.SetSym(i, k, between.At(i, k)-sigma2*meanInv.At(i, k))
		}
	}

	if spec == RandomIntercept {
		tau2 := d.At(0, 0)
		if tau2 < 0 {
			tau2 = 0
		}

		return mat.NewSymDense(2, []float64{tau2, 0, 0, 0}), nil
	}

	return psdProject(d)
}

// psdProject clamps negative eigenvalues of a 2×2 symmetric matrix to zero,
// returning the nearest PSD matrix.
func psdProject(d *mat.SymDense) (*mat.SymDense, error) {
	var es mat.EigenSym
	if !es.Factorize(d, true) {
		return nil, ErrSingularFit
	}
	vals := es.Values(nil)
	vecs := mat.NewDense(2, 2, nil)
	es.VectorsTo(vecs)

	out := mat.NewSymDense(2, nil)
	for k, v := range vals {
		if v <= 0 {
			continue
		}
		for i := 0; i < 2; i++ {
			for l := i; l < 2; l++ {
				out.SetSym(i, l, out.At(i, l)+v*vecs.At(i, k)*vecs.At(l, k))
			}
		}
	}

	return out, nil
}

// glsFixedEffects accumulates the GLS normal equations over clusters and
// solves for γ̂ and its covariance.
func glsFixedEffects(clusters []cluster, g *mat.SymDense, sigma2 float64) ([]float64, *mat.SymDense, error) {
	g00, g01, g11 := g.At(0, 0), g.At(0, 1), g.At(1, 1)

	a := mat.NewDense(2, 2, nil)
	bv := mat.NewVecDense(2, nil)
	for _, c := range clusters {
		n := len(c.y)

		// V = Z G Zᵀ + σ̂² I, entrywise: v_ik = g00 + g01(t_i+t_k) + g11·t_i·t_k.
		v := mat.NewSymDense(n, nil)
		for i := 0; i < n; i++ {
			for k := i; k < n; k++ {
				val := g00 + g01*(c.t[i]+c.t[k]) + g11*c.t[i]*c.t[k]
				if i == k {
					val += sigma2
				}
				v.SetSym(i, k, val)
			}
		}

		var chol mat.Cholesky
		if !chol.Factorize(v) {
			return nil, nil, ErrSingularFit
		}

		z := mat.NewDense(n, 2, nil)
		yv := mat.NewVecDense(n, nil)
		for i := 0; i < n; i++ {
			z.Set(i, 0, 1)
			z.Set(i, 1, c.t[i])
			yv.SetVec(i, c.y[i])
		}

		var w mat.Dense // V⁻¹Z
		if err := chol.SolveTo(&w, z); err != nil {
			return nil, nil, ErrSingularFit
		}

		var ztw mat.Dense
		ztw.Mul(z.T(), &w)
		a.Add(a, &ztw)

		var wty mat.VecDense
		wty.MulVec(w.T(), yv)
		bv.AddVec(bv, &wty)
	}

	// Symmetrize A against floating-point drift before factorizing.
	aSym := mat.NewSymDense(2, []float64{
		a.At(0, 0), (a.At(0, 1) + a.At(1, 0)) / 2,
		(a.At(0, 1) + a.At(1, 0)) / 2, a.At(1, 1),
	})

	var chol mat.Cholesky
	if !chol.Factorize(aSym) {
		return nil, nil, ErrSingularFit
	}
	var gamma mat.VecDense
	if err := chol.SolveVecTo(&gamma, bv); err != nil {
		return nil, nil, ErrSingularFit
	}
	vcov := mat.NewSymDense(2, nil)
	if err := chol.InverseTo(vcov); err != nil {
		return nil, nil, ErrSingularFit
	}

	return []float64{gamma.AtVec(0), gamma.AtVec(1)}, vcov, nil
}

// distinct counts distinct values in a small slice.
func distinct(xs []float64) int {
	seen := make(map[float64]struct{}, len(xs))
	for _, x := range xs {
		seen[x] = struct{}{}
	}

	return len(seen)
}

// scaleSym multiplies every entry of a symmetric matrix by f, in place.
func scaleSym(s *mat.SymDense, f float64) {
	n := s.SymmetricDim()
	for i := 0; i < n; i++ {
		for k := i; k < n; k++ {
			s.SetSym(i, k, s.At(i, k)*f)
		}
	}
}
