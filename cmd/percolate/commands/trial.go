package commands

import (
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolate/internal/config"
	"github.com/katalvlaran/percolate/internal/report"
	"github.com/katalvlaran/percolate/montecarlo"
)

func newTrialCmd(a *app) *cobra.Command {
	d := config.Default()
	cmd := &cobra.Command{
		Use:   "trial",
		Short: "Open random sites of one grid until it percolates",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = a.run(func(cmd *cobra.Command, _ []string) error {
		n := a.cfg.Size
		g, opened, err := montecarlo.RunTrial(n, rand.New(rand.NewSource(a.seed)), montecarlo.WithSampler(a.sampler))
		if err != nil {
			return err
		}
		fraction := float64(opened) / float64(n*n)
		a.logger.Info("trial finished", "size", n, "sites_opened", opened, "percolates", g.Percolates())

		return report.Render(cmd.OutOrStdout(), a.format, report.Trial{
			Size:        n,
			Sampler:     a.sampler.String(),
			Seed:        a.seed,
			SitesOpened: opened,
			Fraction:    fraction,
		})
	})

	f := cmd.Flags()
	f.Int("size", d.Size, "grid dimension n (n ≥ 2)")
	f.Int64("seed", d.Seed, "random seed; 0 seeds from the clock")
	f.String("sampler", d.Sampler, "closed-site sampler: rejection, shrinking")
	return cmd
}
