// Package commands wires the percolate CLI: cobra commands, viper-backed
// configuration, slog logging and optional span export.
package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/percolate/internal/config"
	"github.com/katalvlaran/percolate/internal/report"
	"github.com/katalvlaran/percolate/montecarlo"
)

// app carries state resolved once per invocation in setup.
type app struct {
	v       *viper.Viper
	cfgFile string

	cfg     config.Config
	format  report.Format
	sampler montecarlo.Sampler
	seed    int64
	logger  *slog.Logger
	tp      trace.TracerProvider
	flush   func(context.Context) error
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// NewRootCmd builds a fresh command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	d := config.Default()

	root := &cobra.Command{
		Use:   "percolate",
		Short: "Estimate site-percolation thresholds and inspect small graphs",
		Long: `percolate runs Monte Carlo percolation experiments on n×n grids backed by
a union-find structure, and ships a few standalone graph utilities.

Settings come from flags, PERCOLATE_* environment variables and an optional
YAML file (--config), in that order of precedence.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML config file")
	pf.String("log-level", d.LogLevel, "log level: debug, info, warn, error")
	pf.String("format", d.Format, "output format: text, json, yaml")
	pf.Bool("trace", d.Trace, "print OpenTelemetry spans to stderr")

	root.AddCommand(newEstimateCmd(a), newTrialCmd(a), newGraphCmd(a))
	return root
}

// setup binds the executing command's flags, loads and validates the
// configuration, then builds the logger and tracer provider.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.bindFlags(cmd); err != nil {
		return err
	}
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	if a.format, err = report.ParseFormat(cfg.Format); err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}
	if a.sampler, err = montecarlo.ParseSampler(cfg.Sampler); err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}

	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(a.logger)

	a.seed = cfg.Seed
	if a.seed == 0 {
		a.seed = time.Now().UnixNano()
		a.logger.Debug("seeded from clock", "seed", a.seed)
	}

	if cfg.Trace {
		exp, err := stdouttrace.New(stdouttrace.WithWriter(cmd.ErrOrStderr()), stdouttrace.WithPrettyPrint())
		if err != nil {
			return fmt.Errorf("trace exporter: %w", err)
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
		otel.SetTracerProvider(tp)
		a.tp, a.flush = tp, tp.Shutdown
	}
	return nil
}

// bindFlags maps every visible flag onto the viper key of the same name with
// dashes turned into underscores, so --log-level feeds log_level.
func (a *app) bindFlags(cmd *cobra.Command) error {
	var err error
	bind := func(f *pflag.Flag) {
		if err != nil || f.Name == "config" || f.Name == "help" {
			return
		}
		err = a.v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	}
	cmd.InheritedFlags().VisitAll(bind)
	cmd.LocalFlags().VisitAll(bind)
	return err
}

// run wraps a command body so spans are flushed whatever the outcome.
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if a.flush != nil {
			err = errors.Join(err, a.flush(context.WithoutCancel(cmd.Context())))
		}
		return err
	}
}
