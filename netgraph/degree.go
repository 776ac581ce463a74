package netgraph

// InDegrees counts, for every node and every arc target, how many arcs point
// at it. Nodes without incoming arcs map to 0; arc targets that are not
// nodes still get an entry.
func InDegrees(g *Graph) map[int]int {
	res := make(map[int]int, len(g.adj))
	for u := range g.adj {
		res[u] = 0
	}
	for _, succ := range g.adj {
		for v := range succ {
			res[v]++
		}
	}
	return res
}

// OutDegrees maps every node to its number of outgoing arcs.
func OutDegrees(g *Graph) map[int]int {
	res := make(map[int]int, len(g.adj))
	for u, succ := range g.adj {
		res[u] = len(succ)
	}
	return res
}

// InDegreeDistribution maps each in-degree to the number of nodes having it.
func InDegreeDistribution(g *Graph) map[int]int {
	return distribution(InDegrees(g))
}

// OutDegreeDistribution maps each out-degree to the number of nodes having it.
func OutDegreeDistribution(g *Graph) map[int]int {
	return distribution(OutDegrees(g))
}

// DegreeDistribution is InDegreeDistribution, the degree statistic used for
// directed citation-style graphs.
func DegreeDistribution(g *Graph) map[int]int {
	return InDegreeDistribution(g)
}

func distribution(degrees map[int]int) map[int]int {
	res := make(map[int]int)
	for _, d := range degrees {
		res[d]++
	}
	return res
}
