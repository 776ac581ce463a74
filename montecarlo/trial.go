// SPDX-License-Identifier: MIT
// Package: percolate/montecarlo
//
// trial.go: a single randomized percolation trial.

package montecarlo

import (
	"fmt"

	"github.com/katalvlaran/percolate/percolation"
)

// RunTrial opens uniformly random closed sites of a fresh n×n grid until it
// percolates. It returns the finished grid and the number of sites opened,
// which always equals grid.OpenCount(): no site is opened twice.
//
// Only the Sampler option is consulted.
// Returns ErrNilSource, ErrOptionViolation, ErrBadDraw, or a wrapped
// percolation.ErrInvalidSize for n < 2.
// Terminates after at most n² opens: a fully open grid percolates.
func RunTrial(n int, src RandomSource, opts ...Option) (*percolation.Grid, int, error) {
	if src == nil {
		return nil, 0, ErrNilSource
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, 0, err
	}

	return runTrial(n, src, o.Sampler)
}

func runTrial(n int, src RandomSource, s Sampler) (*percolation.Grid, int, error) {
	g, err := percolation.New(n)
	if err != nil {
		return nil, 0, fmt.Errorf("RunTrial: %w", err)
	}

	var opened int
	switch s {
	case SamplerShrinking:
		opened, err = openShrinking(g, src)
	default:
		opened, err = openRejection(g, src)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("RunTrial: %w", err)
	}

	return g, opened, nil
}

// openRejection draws (i,j) pairs and redraws whenever the site is open.
func openRejection(g *percolation.Grid, src RandomSource) (int, error) {
	n := g.Size()
	opened := 0
	for !g.Percolates() {
		i, j := src.Intn(n), src.Intn(n)
		open, err := g.IsOpen(i, j)
		if err != nil {
			return opened, fmt.Errorf("%w: (%d,%d) for n=%d", ErrBadDraw, i, j, n)
		}
		if open {
			continue
		}
		if err := g.Open(i, j); err != nil {
			return opened, err
		}
		opened++
	}

	return opened, nil
}

// openShrinking keeps closed[0:len] as the closed sites and swap-removes a
// uniformly chosen entry on every step.
func openShrinking(g *percolation.Grid, src RandomSource) (int, error) {
	n := g.Size()
	closed := make([]int, n*n)
	for idx := range closed {
		closed[idx] = idx
	}

	opened := 0
	for !g.Percolates() {
		k := src.Intn(len(closed))
		if k < 0 || k >= len(closed) {
			return opened, fmt.Errorf("%w: %d for %d closed sites", ErrBadDraw, k, len(closed))
		}
		idx := closed[k]
		last := len(closed) - 1
		closed[k] = closed[last]
		closed = closed[:last]

		i, j := g.Coordinate(idx)
		if err := g.Open(i, j); err != nil {
			return opened, err
		}
		opened++
	}

	return opened, nil
}
