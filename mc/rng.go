// Package mc - RNG utilities for the replication engine.
//
// This file centralizes deterministic random generation for all study modes.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single source factory; no time-based sources hidden anywhere.
//   - Independence: per-replication substreams for the parallel engine are
//     derived with a SplitMix64-style avalanche mix, eliminating correlations
//     between consecutive replication indices.
//
// Concurrency:
//   - A rand.Source is NOT goroutine-safe. The sequential engine owns one
//     evolving source; the parallel engine derives one private source per
//     replication and never shares it.
package mc

import "golang.org/x/exp/rand"

// defaultSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed uint64 = 1

// sourceFromSeed returns a deterministic random source.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func sourceFromSeed(seed uint64) rand.Source {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.NewSource(seed)
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed via the canonical SplitMix64 finalizer (Vigna 2014). Small changes in
// either input produce large, well-distributed output changes, so
// per-replication substreams derived from consecutive indices are
// statistically independent.
//
// Complexity: O(1).
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// deriveSource creates the independent deterministic source for one
// replication of a parallel run.
//
// Complexity: O(1).
func deriveSource(seed uint64, replication int) rand.Source {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.NewSource(deriveSeed(seed, uint64(replication)))
}
