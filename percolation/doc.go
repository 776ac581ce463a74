// Package percolation models site percolation on an n×n grid.
//
// What:
//
//   - Grid holds an n×n openness matrix (all sites closed initially) and a
//     unionfind.DisjointSet of n²+2 elements: one per cell plus the virtual
//     Source (index n²) and Sink (index n²+1) terminals.
//   - Cell (i,j), row i and column j, maps to the linear index i*n+j.
//   - Opening a site joins it with its open 4-neighbors (up, down, left,
//     right); a top-row site joins Source, a bottom-row site joins Sink.
//   - A site is full when it is open and connected to Source; the grid
//     percolates when Source and Sink are connected.
//
// Why:
//
//   - Building block for Monte Carlo estimation of the percolation
//     threshold (see package montecarlo).
//
// Complexity:
//
//   - New:        O(n²) time and memory.
//   - Open:       O(α(n²)) amortized (at most 5 unions).
//   - IsFull:     O(α(n²)) amortized.
//   - Percolates: O(α(n²)) amortized.
//
// Errors:
//
//   - ErrInvalidSize: New called with n ≤ 1.
//   - ErrOutOfRange:  row or column outside [0, n).
package percolation
