// Package percolate estimates the site-percolation threshold of square
// grids by Monte Carlo simulation.
//
// A grid of n×n sites starts fully blocked. Sites are opened uniformly at
// random until some open path joins the top row to the bottom row; the
// fraction of open sites at that moment is one sample of the threshold.
// Averaging many independent trials gives an estimate near 0.593 for
// large n.
//
// Packages:
//
//	unionfind      DisjointSet with path compression and union by rank
//	percolation    Grid with open sites, fullness and a virtual source/sink percolation test
//	montecarlo     RunTrial, Estimate, sample statistics and seeded random streams
//	netgraph       complete graphs, degree distributions, connected components and
//	               attack resilience
//	cmd/percolate  CLI front end (estimate, trial, graph complete)
//
// Quick start:
//
//	st, err := montecarlo.Estimate(200, 100, montecarlo.WithSeed(42))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%.4f [%.4f, %.4f]\n", st.Mean, st.Interval.Low, st.Interval.High)
package percolate
