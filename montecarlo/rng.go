// SPDX-License-Identifier: MIT
// Package: percolate/montecarlo
//
// rng.go: deterministic base generator and per-trial stream derivation.
//
// math/rand.Rand is not goroutine-safe; each trial owns the stream derived
// for it and nothing else touches that stream.

package montecarlo

import "math/rand"

// defaultSeed is used when the caller passes no seed or seed 0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id with the SplitMix64
// finalizer, so neighbouring stream ids land far apart.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG consumes one Int63 from base and returns the generator for the
// given stream. A nil base behaves like rngFromSeed(0).
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultSeed
	if base != nil {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// TrialSource returns the random stream trial k of an Estimate seeded with
// seed would use. It lets callers replay or parallelize single trials.
func TrialSource(seed int64, k int) *rand.Rand {
	base := rngFromSeed(seed)
	for i := 0; i < k; i++ {
		base.Int63()
	}
	return deriveRNG(base, uint64(k))
}
