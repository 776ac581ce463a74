package netgraph

import "fmt"

// Complete returns the complete directed graph on nodes 0..n-1: every
// ordered pair (u,v) with u≠v is an arc, no self-loops.
// n == 0 yields an empty graph. Returns ErrNegativeCount for n < 0.
// Complexity: O(n²).
func Complete(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("Complete: n=%d: %w", n, ErrNegativeCount)
	}
	g := NewGraph()
	for u := 0; u < n; u++ {
		g.AddNode(u)
	}
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			g.AddUndirectedEdge(u, v)
		}
	}
	return g, nil
}
