// SPDX-License-Identifier: MIT
// Package: percolate/unionfind
//
// unionfind.go: construction, Find with full path compression, Union by rank.

package unionfind

import "fmt"

// New returns a DisjointSet of n singleton sets, each element its own root
// with rank 0.
// Returns ErrInvalidSize if n ≤ 0.
// Complexity: O(n) time and memory.
func New(n int) (*DisjointSet, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: was %d", ErrInvalidSize, n)
	}
	ds := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range ds.parent {
		ds.parent[i] = i
		ds.size[i] = 1
	}

	return ds, nil
}

// Len returns the number of elements.
func (ds *DisjointSet) Len() int {
	return len(ds.parent)
}

// ComponentCount returns the number of disjoint sets, in [1, Len()].
func (ds *DisjointSet) ComponentCount() int {
	return ds.count
}

// Find returns the root of the set containing i.
//
// The path from i to its root is fully compressed: after the call every node
// visited on the way points directly at the root. The partition itself never
// changes.
// Returns ErrOutOfRange if i is not in [0, Len()).
// Complexity: O(α(n)) amortized.
func (ds *DisjointSet) Find(i int) (int, error) {
	if !ds.valid(i) {
		return 0, outOfRange(i, len(ds.parent))
	}

	return ds.find(i), nil
}

// find is Find without bounds checks.
// Pass 1 walks to the root, pass 2 re-walks the same path and re-parents.
func (ds *DisjointSet) find(i int) int {
	root := i
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	for ds.parent[i] != root {
		next := ds.parent[i]
		ds.parent[i] = root
		i = next
	}

	return root
}

// Union merges the sets containing i and j.
//
// The root with strictly smaller rank is linked under the other root. When the
// ranks are equal, the root of i survives and its rank grows by exactly one.
// ComponentCount drops by one iff i and j were in different sets.
// Returns ErrOutOfRange if either index is invalid; nothing is mutated then.
// Complexity: O(α(n)) amortized.
func (ds *DisjointSet) Union(i, j int) error {
	n := len(ds.parent)
	if !ds.valid(i) {
		return outOfRange(i, n)
	}
	if !ds.valid(j) {
		return outOfRange(j, n)
	}
	if i == j {
		return nil
	}

	ri, rj := ds.find(i), ds.find(j)
	if ri == rj {
		return nil
	}
	if ds.rank[ri] < ds.rank[rj] {
		ri, rj = rj, ri
	} else if ds.rank[ri] == ds.rank[rj] {
		ds.rank[ri]++
	}
	ds.parent[rj] = ri
	ds.size[ri] += ds.size[rj]
	ds.count--

	return nil
}

// Connected reports whether i and j belong to the same set.
// Returns ErrOutOfRange if either index is invalid.
func (ds *DisjointSet) Connected(i, j int) (bool, error) {
	n := len(ds.parent)
	if !ds.valid(i) {
		return false, outOfRange(i, n)
	}
	if !ds.valid(j) {
		return false, outOfRange(j, n)
	}

	return ds.find(i) == ds.find(j), nil
}

// SizeOf returns the number of elements in the set containing i.
// Returns ErrOutOfRange if i is invalid.
func (ds *DisjointSet) SizeOf(i int) (int, error) {
	if !ds.valid(i) {
		return 0, outOfRange(i, len(ds.parent))
	}

	return ds.size[ds.find(i)], nil
}

// String renders the internal state as "<count> components: <parents> -> <ranks>".
// Useful when debugging; the format is not stable.
func (ds *DisjointSet) String() string {
	return fmt.Sprintf("%d components: %v -> %v", ds.count, ds.parent, ds.rank)
}

func (ds *DisjointSet) valid(i int) bool {
	return i >= 0 && i < len(ds.parent)
}
