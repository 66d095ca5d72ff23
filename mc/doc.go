// Package mc runs Monte Carlo replication studies — generate a dataset from
// a known model, fit an estimator, repeat N times, and summarize bias,
// efficiency and confidence-interval coverage against the ground truth.
//
// 🚀 The replication loop
//
//	for r = 1..N:
//	    data   ← gen(src)      // fresh dataset, explicit random source
//	    record ← fit(data)     // estimate, SE, CI bounds
//	summary ← Summarize(records, truth)
//
// ✨ Key guarantees:
//   - Sequential mode (Workers ≤ 1): one evolving random source drives every
//     cycle in order — bit-for-bit reproducible for a fixed seed.
//   - Parallel mode (Workers > 1): each replication gets an independent
//     source derived deterministically from (seed, replication index) via a
//     SplitMix64 finalizer, so a fixed seed still reproduces the whole run
//     while cycles execute concurrently. Record order is generation order
//     either way.
//   - Fail fast: any generation or fit error aborts the entire run, wrapped
//     with its replication index. Failed replications are never silently
//     dropped — dropping them would bias the summary.
//   - The engine is generic over the dataset type: growth panels, plain iid
//     samples for mean-vs-median studies, anything a GenerateFunc yields.
//
// ⚙️ Usage:
//
//	opts := mc.DefaultOptions()
//	opts.Replications = 100
//	opts.Seed = 2208
//
//	records, err := mc.Run(mc.DatasetFunc(p), mc.SlopeFitFunc(lmm.RandomIntercept, 0), opts)
//	if err != nil { ... }
//	sum, err := mc.Summarize(records, 0.5)
//
// The Summary reports mean estimate, mean SE, empirical SD, coverage, bias,
// relative bias, SE bias, relative SE bias, and RMSE (the documented
// bias² + variance decomposition).
package mc
