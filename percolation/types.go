package percolation

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/percolate/unionfind"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidSize indicates a grid dimension below 2.
	ErrInvalidSize = errors.New("percolation: n must be at least 2")
	// ErrOutOfRange indicates a row or column outside [0, n).
	ErrOutOfRange = errors.New("percolation: site out of range")
)

// MinSize is the smallest supported grid dimension.
const MinSize = 2

// conn4 lists the orthogonal neighbor offsets as (di, dj): left, right, down, up.
var conn4 = [4][2]int{{0, -1}, {0, 1}, {1, 0}, {-1, 0}}

// Grid is an n×n percolation system. Open sites never close again.
// It is not safe for concurrent use.
type Grid struct {
	n      int
	open   []bool // row-major, len n*n
	opened int    // number of true entries in open
	sets   *unionfind.DisjointSet

	percolates bool // Source and Sink connected as of the last Open
}

func outOfRange(i, j, n int) error {
	return fmt.Errorf("%w: (%d,%d) is out of bounds [0..%d)", ErrOutOfRange, i, j, n)
}
