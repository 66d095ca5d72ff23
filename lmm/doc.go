// Package lmm fits two-level linear mixed models to growth datasets and
// exposes a fixed-shape result contract for Monte Carlo studies.
//
// 🚀 What it does
//
//	Given a dataset (outcome, time, cluster id), lmm estimates the
//	population intercept and slope of
//
//	  y_ij = (γ₀ + u_0j) + (γ₁ + u_1j)·t_i + e_ij
//
//	under one of two specifications:
//	  • RandomIntercept — only u_0j is assumed present (u_1j ≡ 0)
//	  • RandomSlope     — both random intercept and random slope
//
//	Deliberately fitting RandomIntercept to data generated with a random
//	slope is the classic misspecification study: the point estimate stays
//	unbiased while its model-based standard error is too small.
//
// ⚙️ Estimator
//
//	A closed-form two-stage moment/GLS procedure:
//	  1. Per-cluster OLS of y on [1, t] gives coefficient pairs b_j and a
//	     pooled residual variance σ̂².
//	  2. The between-cluster sample covariance of the b_j, corrected by the
//	     mean OLS sampling covariance σ̂²·(ZᵀZ)⁻¹, estimates G (clamped to
//	     the chosen specification and projected to PSD).
//	  3. GLS with V_j = Z_j Ĝ Z_jᵀ + σ̂²·I yields γ̂ and its covariance;
//	     confidence intervals use Student-t quantiles with J−2 degrees of
//	     freedom.
//
// The fit is closed-form and cannot diverge; ErrFitDiverged exists for
// iterative implementations of the same Result contract (external
// optimizer-based fitters report non-convergence through it).
//
// Requirements: at least 3 clusters, and at least 3 observations with ≥ 2
// distinct time points per cluster (per-cluster OLS needs a residual degree
// of freedom).
package lmm
