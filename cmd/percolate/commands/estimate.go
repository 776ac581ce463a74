package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolate/internal/config"
	"github.com/katalvlaran/percolate/internal/report"
	"github.com/katalvlaran/percolate/montecarlo"
)

func newEstimateCmd(a *app) *cobra.Command {
	d := config.Default()
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the percolation threshold over repeated trials",
		Example: `  percolate estimate --size 200 --trials 100
  percolate estimate --size 50 --trials 1000 --sampler shrinking --format json`,
		Args: cobra.NoArgs,
	}
	cmd.RunE = a.run(func(cmd *cobra.Command, _ []string) error {
		st, err := montecarlo.Estimate(a.cfg.Size, a.cfg.Trials,
			montecarlo.WithContext(cmd.Context()),
			montecarlo.WithSeed(a.seed),
			montecarlo.WithSampler(a.sampler),
			montecarlo.WithLogger(a.logger),
			montecarlo.WithTracerProvider(a.tp),
		)
		if err != nil {
			return err
		}
		return report.Render(cmd.OutOrStdout(), a.format, report.FromStats(st, a.seed))
	})

	f := cmd.Flags()
	f.Int("size", d.Size, "grid dimension n (n ≥ 2)")
	f.Int("trials", d.Trials, "number of independent trials (≥ 2)")
	f.Int64("seed", d.Seed, "base random seed; 0 seeds from the clock")
	f.String("sampler", d.Sampler, "closed-site sampler: rejection, shrinking")
	return cmd
}
