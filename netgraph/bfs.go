package netgraph

import (
	"fmt"
	"sort"
)

// BFSVisited returns every node reachable from start, in breadth-first visit
// order (start first, neighbors in ascending id order). Arcs are followed in
// both directions and arcs into ids that are not nodes are ignored.
// Returns ErrNodeNotFound if start is not a node.
// Complexity: O(V + E).
func BFSVisited(g *Graph, start int) ([]int, error) {
	if !g.HasNode(start) {
		return nil, fmt.Errorf("BFSVisited: %d: %w", start, ErrNodeNotFound)
	}
	seen := make(map[int]bool)
	return walk(g.symmetric(), start, seen), nil
}

// symmetric returns the undirected view of g: for every node, the sorted
// union of its successors and predecessors. Self-loops and arcs into ids
// that are not nodes are dropped.
func (g *Graph) symmetric() map[int][]int {
	sets := make(map[int]map[int]struct{}, len(g.adj))
	for u := range g.adj {
		sets[u] = make(map[int]struct{})
	}
	for u, succ := range g.adj {
		for v := range succ {
			if _, ok := sets[v]; !ok || v == u {
				continue
			}
			sets[u][v] = struct{}{}
			sets[v][u] = struct{}{}
		}
	}

	view := make(map[int][]int, len(sets))
	for u, set := range sets {
		nbrs := make([]int, 0, len(set))
		for v := range set {
			nbrs = append(nbrs, v)
		}
		sort.Ints(nbrs)
		view[u] = nbrs
	}
	return view
}

// walk runs BFS over view from start, marking into seen, and returns the
// visit order.
func walk(view map[int][]int, start int, seen map[int]bool) []int {
	queue := []int{start}
	seen[start] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, v := range view[queue[qi]] {
			if seen[v] {
				continue
			}
			seen[v] = true
			queue = append(queue, v)
		}
	}
	return queue
}

// ConnectedComponents partitions the nodes of g into connected components,
// treating every arc as undirected. Each component is sorted ascending and components
// are ordered by their smallest node.
// Complexity: O(V log V + E).
func ConnectedComponents(g *Graph) [][]int {
	view := g.symmetric()
	seen := make(map[int]bool, len(view))
	var comps [][]int
	for _, u := range g.Nodes() {
		if seen[u] {
			continue
		}
		comp := walk(view, u, seen)
		sort.Ints(comp)
		comps = append(comps, comp)
	}
	return comps
}

// LargestComponentSize returns the node count of the largest connected
// component, or 0 for an empty graph.
func LargestComponentSize(g *Graph) int {
	best := 0
	for _, c := range ConnectedComponents(g) {
		if len(c) > best {
			best = len(c)
		}
	}
	return best
}
