// Package netgraph holds small, self-contained utilities over integer-keyed
// graphs: complete-graph generation, in/out-degree distributions, BFS
// reachability, connected components and network resilience under a node
// attack order.
//
// A Graph stores arcs as adjacency sets. Directed utilities (degrees) read the
// arcs as given; undirected utilities (BFS, components, resilience) expect
// every arc u→v to be mirrored by v→u, which AddUndirectedEdge guarantees.
//
// Determinism:
//
//	Nodes and Neighbors return ascending ids, so BFS order, component order
//	and every other result is reproducible.
//
// Complexity (V = nodes, E = arcs):
//
//   - Complete(n):            O(n²).
//   - InDegrees/OutDegrees:   O(V + E).
//   - BFSVisited:             O(V + E).
//   - ConnectedComponents:    O(V + E).
//   - Resilience(g, order):   O((V + E)·α(V)), computed offline by re-adding
//     the attacked nodes in reverse order to a unionfind.DisjointSet.
//
// Errors:
//
//   - ErrNegativeCount: Complete called with n < 0.
//   - ErrNodeNotFound:  start node or attacked node absent from the graph.
//   - ErrDuplicateNode: a node appears twice in an attack order.
package netgraph
