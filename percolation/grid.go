package percolation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/percolate/unionfind"
)

// New returns an n×n grid with every site closed.
// Returns ErrInvalidSize if n < MinSize or n²+2 overflows int.
// Complexity: O(n²) time and memory.
func New(n int) (*Grid, error) {
	if n < MinSize {
		return nil, fmt.Errorf("%w: was %d", ErrInvalidSize, n)
	}
	if n > (math.MaxInt-2)/n {
		return nil, fmt.Errorf("%w: %d² sites overflow int", ErrInvalidSize, n)
	}
	sets, err := unionfind.New(n*n + 2)
	if err != nil {
		return nil, fmt.Errorf("percolation: %w", err)
	}

	return &Grid{
		n:    n,
		open: make([]bool, n*n),
		sets: sets,
	}, nil
}

// Size returns the grid dimension n.
func (g *Grid) Size() int {
	return g.n
}

// Source returns the index of the virtual top terminal, n².
func (g *Grid) Source() int {
	return g.n * g.n
}

// Sink returns the index of the virtual bottom terminal, n²+1.
func (g *Grid) Sink() int {
	return g.n*g.n + 1
}

// OpenCount returns how many sites are open.
func (g *Grid) OpenCount() int {
	return g.opened
}

// InBounds reports whether (i,j) lies inside the grid.
func (g *Grid) InBounds(i, j int) bool {
	return i >= 0 && i < g.n && j >= 0 && j < g.n
}

// Index maps (i,j) to its row-major linear index i*n+j.
// The result is only meaningful for in-bounds coordinates.
func (g *Grid) Index(i, j int) int {
	return i*g.n + j
}

// Coordinate converts a linear cell index back to (i,j).
func (g *Grid) Coordinate(idx int) (i, j int) {
	return idx / g.n, idx % g.n
}

// Open opens site (i,j) and joins it with every open orthogonal neighbor,
// with Source if i is the top row and with Sink if i is the bottom row.
// Opening an already open site is a no-op.
// Returns ErrOutOfRange if (i,j) is outside the grid.
func (g *Grid) Open(i, j int) error {
	if !g.InBounds(i, j) {
		return outOfRange(i, j, g.n)
	}
	p := g.Index(i, j)
	if g.open[p] {
		return nil
	}
	g.open[p] = true
	g.opened++

	var buf [len(conn4) + 2]int
	links := buf[:0]
	for _, d := range conn4 {
		ni, nj := i+d[0], j+d[1]
		if g.InBounds(ni, nj) && g.open[g.Index(ni, nj)] {
			links = append(links, g.Index(ni, nj))
		}
	}
	if i == 0 {
		links = append(links, g.Source())
	}
	if i == g.n-1 {
		links = append(links, g.Sink())
	}
	for _, q := range links {
		if err := g.sets.Union(p, q); err != nil {
			return fmt.Errorf("Open: %w", err)
		}
	}

	through, err := g.sets.Connected(g.Source(), g.Sink())
	if err != nil {
		return fmt.Errorf("Open: %w", err)
	}
	g.percolates = through

	return nil
}

// IsOpen reports whether site (i,j) is open.
// Returns ErrOutOfRange if (i,j) is outside the grid.
func (g *Grid) IsOpen(i, j int) (bool, error) {
	if !g.InBounds(i, j) {
		return false, outOfRange(i, j, g.n)
	}

	return g.open[g.Index(i, j)], nil
}

// IsFull reports whether site (i,j) is open and connected to Source.
// Returns ErrOutOfRange if (i,j) is outside the grid.
func (g *Grid) IsFull(i, j int) (bool, error) {
	if !g.InBounds(i, j) {
		return false, outOfRange(i, j, g.n)
	}
	p := g.Index(i, j)
	if !g.open[p] {
		return false, nil
	}

	full, err := g.sets.Connected(p, g.Source())
	if err != nil {
		return false, fmt.Errorf("IsFull: %w", err)
	}

	return full, nil
}

// Percolates reports whether Source and Sink are connected, i.e. some chain
// of open sites links the top row to the bottom row. The answer is settled
// by the last Open, so this is O(1).
func (g *Grid) Percolates() bool {
	return g.percolates
}
