// SPDX-License-Identifier: MIT
// Package: percolate/montecarlo
//
// doc.go: package overview.

// Package montecarlo estimates the site-percolation threshold of an n×n grid
// by repeated randomized trials.
//
// What:
//
//   - RunTrial opens uniformly random closed sites of a fresh
//     percolation.Grid until it first percolates and reports how many sites
//     were opened.
//   - Estimate runs t independent trials and returns the mean fraction of
//     open sites, its sample standard deviation (Bessel-corrected) and a 95%
//     confidence interval mean ± 1.96·stddev/√t.
//
// Samplers:
//
//   - SamplerRejection (default): draw (i,j) uniformly, redraw if the site is
//     already open. Unbounded worst case, expected O(1) redraws early on.
//   - SamplerShrinking: keep the closed sites in a slice and swap-remove a
//     uniformly chosen one. O(1) per open, O(n²) extra memory.
//
// Both samplers pick each remaining closed site with equal probability.
//
// Randomness:
//
//	Every trial k of an Estimate draws from its own *rand.Rand derived from
//	the base generator and the stream id k (SplitMix64 mixing), so trials are
//	independent and a fixed seed reproduces the whole run. Without WithSeed
//	or WithRand a fixed default seed is used; callers wanting fresh numbers
//	on each run must pass their own seed.
//
// Observability:
//
//	Estimate logs the computed mean, stddev and interval through log/slog at
//	Info level, wraps the run in an OpenTelemetry span with one event per
//	trial and records per-trial opens in an Int64Histogram. With no
//	OpenTelemetry SDK installed the span and histogram are no-ops.
//
// Errors:
//
//   - ErrInvalidTrialCount: t < 2.
//   - percolation.ErrInvalidSize: n < 2 (wrapped).
//   - ErrNilSource: RunTrial called without a random source.
//   - ErrBadDraw: the random source returned a value outside [0, n).
//   - ErrOptionViolation: an invalid Option was supplied.
//   - ctx.Err() when the context passed via WithContext is cancelled.
package montecarlo
