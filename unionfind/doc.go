// SPDX-License-Identifier: MIT
// Package: percolate/unionfind
//
// doc.go: package overview.

// Package unionfind provides a fixed-size disjoint-set (union-find) structure
// over the integer elements 0..n-1.
//
// What:
//
//   - Find returns the representative (root) of an element's set and fully
//     compresses the traversed path: every visited node is re-parented
//     directly to the root.
//   - Union merges two sets by rank: the root of smaller rank is linked under
//     the root of larger rank; on a tie the first argument's root survives and
//     its rank grows by one.
//   - ComponentCount tracks how many disjoint sets remain.
//
// Why:
//
//   - Dynamic connectivity for grids and graphs (percolation, Kruskal, offline
//     resilience) in amortized near-constant time per operation.
//
// Complexity:
//
//   - New:   O(n) time and memory.
//   - Find:  O(α(n)) amortized, iterative (no recursion depth limit).
//   - Union: O(α(n)) amortized.
//
// Errors:
//
//   - ErrInvalidSize: New called with n ≤ 0.
//   - ErrOutOfRange:  an element outside [0, n) passed to Find, Union,
//     Connected or SizeOf. Validation happens before any mutation.
//
// A DisjointSet is not safe for concurrent use.
package unionfind
