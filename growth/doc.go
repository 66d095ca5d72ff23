// Package growth simulates data from a two-level linear growth model:
// repeated measurements nested in clusters, with cluster-specific random
// intercepts and slopes around population-average fixed effects.
//
// 🚀 The model
//
//	y_ij = (γ₀ + u_0j) + (γ₁ + u_1j)·t_i + e_ij
//
//	  γ = (γ₀, γ₁)     — fixed effects (intercept, slope)
//	  (u_0j, u_1j)     — cluster j's random effects, iid N(0, G)
//	  e_ij             — residual noise, iid N(0, σ²)
//	  t_i = 0..cs−1    — the shared, equally spaced time grid
//
// ✨ Key guarantees:
//   - Balanced design: every cluster is measured at the same cs time points.
//   - Determinism: all sampling flows through an explicit rand.Source with a
//     fixed draw order (random effects first, residuals second), so a fixed
//     seed reproduces a dataset byte for byte.
//   - Explicit broadcast: per-cluster coefficients are β_j = γ + u_j,
//     computed elementwise — fixed effects are added to every cluster's
//     deviation, never multiplied.
//   - Strict validation: invalid parameters abort before any entropy is
//     consumed (ErrInvalidClusterCount, ErrInvalidCovariance, ...).
//
// ⚙️ Usage:
//
//	p := growth.Params{
//	  Clusters:     20,
//	  ClusterSize:  4,
//	  FixedEffects: [2]float64{0, 0.5},
//	  RandomCov:    mat.NewSymDense(2, []float64{0.25, 0, 0, 0.125}),
//	  ResidualVar:  1,
//	}
//	ds, err := growth.Generate(p, rand.NewSource(2208))
//
// The returned Dataset (outcome, time, cluster id) feeds directly into the
// lmm fitter and the mc replication engine.
package growth
