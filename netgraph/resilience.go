package netgraph

import (
	"fmt"

	"github.com/katalvlaran/percolate/unionfind"
)

// Resilience returns the largest connected component size of g before any
// removal (index 0) and after removing each node of order in turn (index
// k after k removals). Arcs are treated as undirected. g is not modified.
//
// Implementation:
//   - Stage 1: validate order (known nodes, no repeats) and index the nodes.
//   - Stage 2: join every surviving node with its surviving neighbors in a
//     unionfind.DisjointSet; that is the answer after all removals.
//   - Stage 3: re-add the attacked nodes from last to first, joining each
//     with its already active neighbors; the largest set only grows.
//
// Returns ErrNodeNotFound or ErrDuplicateNode for a bad order.
// Complexity: O((V + E)·α(V)).
func Resilience(g *Graph, order []int) ([]int, error) {
	removed := make(map[int]bool, len(order))
	for _, u := range order {
		if !g.HasNode(u) {
			return nil, fmt.Errorf("Resilience: %d: %w", u, ErrNodeNotFound)
		}
		if removed[u] {
			return nil, fmt.Errorf("Resilience: %d: %w", u, ErrDuplicateNode)
		}
		removed[u] = true
	}

	res := make([]int, len(order)+1)
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return res, nil
	}
	index := make(map[int]int, len(nodes))
	for i, u := range nodes {
		index[u] = i
	}
	view := g.symmetric()
	nbrs := make([][]int, len(nodes))
	for i, u := range nodes {
		for _, v := range view[u] {
			nbrs[i] = append(nbrs[i], index[v])
		}
	}

	ds, err := unionfind.New(len(nodes))
	if err != nil {
		return nil, fmt.Errorf("Resilience: %w", err)
	}
	active := make([]bool, len(nodes))
	largest := 0
	activate := func(i int) error {
		active[i] = true
		for _, j := range nbrs[i] {
			if !active[j] {
				continue
			}
			if err := ds.Union(i, j); err != nil {
				return err
			}
		}
		size, err := ds.SizeOf(i)
		if err != nil {
			return err
		}
		if size > largest {
			largest = size
		}
		return nil
	}

	for i, u := range nodes {
		if removed[u] {
			continue
		}
		if err := activate(i); err != nil {
			return nil, fmt.Errorf("Resilience: %w", err)
		}
	}
	res[len(order)] = largest
	for k := len(order) - 1; k >= 0; k-- {
		if err := activate(index[order[k]]); err != nil {
			return nil, fmt.Errorf("Resilience: %w", err)
		}
		res[k] = largest
	}

	return res, nil
}
