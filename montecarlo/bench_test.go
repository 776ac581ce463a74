package montecarlo_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/katalvlaran/percolate/montecarlo"
)

// BenchmarkRunTrial compares the two samplers on a 200×200 grid.
func BenchmarkRunTrial(b *testing.B) {
	for _, s := range []montecarlo.Sampler{montecarlo.SamplerRejection, montecarlo.SamplerShrinking} {
		b.Run(s.String(), func(b *testing.B) {
			for k := 0; k < b.N; k++ {
				if _, _, err := montecarlo.RunTrial(200, montecarlo.TrialSource(7, k), montecarlo.WithSampler(s)); err != nil {
					b.Fatalf("RunTrial failed: %v", err)
				}
			}
		})
	}
}

// BenchmarkEstimate runs 30 trials on 100×100 grids per iteration.
func BenchmarkEstimate(b *testing.B) {
	quiet := montecarlo.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	for k := 0; k < b.N; k++ {
		if _, err := montecarlo.Estimate(100, 30, montecarlo.WithSeed(int64(k+1)), quiet); err != nil {
			b.Fatalf("Estimate failed: %v", err)
		}
	}
}
