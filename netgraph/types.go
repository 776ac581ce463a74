package netgraph

import (
	"errors"
	"sort"
)

// Sentinel errors for graph utilities.
var (
	// ErrNegativeCount indicates a negative node count.
	ErrNegativeCount = errors.New("netgraph: node count must be non-negative")
	// ErrNodeNotFound indicates a referenced node does not exist.
	ErrNodeNotFound = errors.New("netgraph: node not found")
	// ErrDuplicateNode indicates a node listed twice in an attack order.
	ErrDuplicateNode = errors.New("netgraph: node repeated in attack order")
)

// Graph is a set of integer nodes with outgoing adjacency sets.
// The zero value is not usable; call NewGraph. Not safe for concurrent use.
type Graph struct {
	adj map[int]map[int]struct{}
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{adj: make(map[int]map[int]struct{})}
}

// FromAdjacency builds a graph from node → successors. Successors that are
// not keys are still recorded as arcs but do not become nodes, so in-degree
// statistics can see arcs into unknown nodes.
func FromAdjacency(adj map[int][]int) *Graph {
	g := NewGraph()
	for u, vs := range adj {
		g.AddNode(u)
		for _, v := range vs {
			g.adj[u][v] = struct{}{}
		}
	}
	return g
}

// AddNode inserts u if absent.
func (g *Graph) AddNode(u int) {
	if _, ok := g.adj[u]; !ok {
		g.adj[u] = make(map[int]struct{})
	}
}

// HasNode reports whether u is a node.
func (g *Graph) HasNode(u int) bool {
	_, ok := g.adj[u]
	return ok
}

// AddEdge adds the arc u→v, creating both endpoints as nodes.
func (g *Graph) AddEdge(u, v int) {
	g.AddNode(u)
	g.AddNode(v)
	g.adj[u][v] = struct{}{}
}

// AddUndirectedEdge adds u→v and v→u.
func (g *Graph) AddUndirectedEdge(u, v int) {
	g.AddEdge(u, v)
	g.AddEdge(v, u)
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.adj)
}

// Nodes returns all node ids in ascending order.
func (g *Graph) Nodes() []int {
	out := make([]int, 0, len(g.adj))
	for u := range g.adj {
		out = append(out, u)
	}
	sort.Ints(out)
	return out
}

// Neighbors returns the successors of u in ascending order, or
// ErrNodeNotFound.
func (g *Graph) Neighbors(u int) ([]int, error) {
	succ, ok := g.adj[u]
	if !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]int, 0, len(succ))
	for v := range succ {
		out = append(out, v)
	}
	sort.Ints(out)
	return out, nil
}

// RemoveNode deletes u and every arc pointing at it. Unknown u is ignored.
func (g *Graph) RemoveNode(u int) {
	if _, ok := g.adj[u]; !ok {
		return
	}
	delete(g.adj, u)
	for _, succ := range g.adj {
		delete(succ, u)
	}
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	c := &Graph{adj: make(map[int]map[int]struct{}, len(g.adj))}
	for u, succ := range g.adj {
		cs := make(map[int]struct{}, len(succ))
		for v := range succ {
			cs[v] = struct{}{}
		}
		c.adj[u] = cs
	}
	return c
}
