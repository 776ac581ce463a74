package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolate/unionfind"
)

// BenchmarkUnionFind runs n random unions followed by n finds on 1e6 elements.
// Complexity: O(n·α(n)).
func BenchmarkUnionFind(b *testing.B) {
	const n = 1_000_000
	r := rand.New(rand.NewSource(42))
	pairs := make([][2]int, n)
	for i := range pairs {
		pairs[i] = [2]int{r.Intn(n), r.Intn(n)}
	}

	b.ResetTimer()
	for k := 0; k < b.N; k++ {
		ds, err := unionfind.New(n)
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		for _, p := range pairs {
			_ = ds.Union(p[0], p[1])
		}
		for i := 0; i < n; i++ {
			_, _ = ds.Find(i)
		}
	}
}
