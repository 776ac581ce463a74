// SPDX-License-Identifier: MIT
// Package: percolate/unionfind
//
// types.go: sentinel errors and the DisjointSet type.

package unionfind

import (
	"errors"
	"fmt"
)

// Sentinel errors for disjoint-set operations.
var (
	// ErrInvalidSize indicates a non-positive number of elements.
	ErrInvalidSize = errors.New("unionfind: size must be positive")

	// ErrOutOfRange indicates an element index outside [0, n).
	ErrOutOfRange = errors.New("unionfind: element out of range")
)

// DisjointSet partitions the elements 0..n-1 into disjoint sets.
//
// parent[i] == i marks a root. rank and size are meaningful for roots only:
// rank is an upper bound on the height of the tree, size is the number of
// elements in it. count is the number of roots.
type DisjointSet struct {
	parent []int
	rank   []int
	size   []int
	count  int
}

// outOfRange builds an ErrOutOfRange carrying the offending index.
func outOfRange(i, n int) error {
	return fmt.Errorf("%w: %d is out of bounds [0..%d)", ErrOutOfRange, i, n)
}
