// SPDX-License-Identifier: MIT
// Package: percolate/montecarlo
//
// types.go: sentinel errors, the RandomSource contract, samplers and options.

package montecarlo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Sentinel errors for simulation and estimation.
var (
	// ErrInvalidTrialCount is returned when fewer than MinTrials trials are requested.
	ErrInvalidTrialCount = errors.New("montecarlo: at least 2 trials are required")

	// ErrNilSource is returned when RunTrial receives a nil RandomSource.
	ErrNilSource = errors.New("montecarlo: random source is nil")

	// ErrBadDraw is returned when a RandomSource breaks its [0, n) contract.
	ErrBadDraw = errors.New("montecarlo: random source returned an out-of-range value")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("montecarlo: invalid option supplied")
)

const (
	// MinTrials is the smallest trial count for which a sample standard
	// deviation exists.
	MinTrials = 2

	// Z95 is the two-sided 95% quantile of the standard normal distribution.
	Z95 = 1.96

	instrumentationName = "github.com/katalvlaran/percolate/montecarlo"
)

// RandomSource yields uniform integers: Intn(n) must return a value in [0, n)
// for every n > 0. *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// Sampler selects how RunTrial picks the next closed site.
type Sampler int

const (
	// SamplerRejection draws uniform (i,j) pairs and discards open sites.
	SamplerRejection Sampler = iota
	// SamplerShrinking draws from an explicit, shrinking list of closed sites.
	SamplerShrinking
)

// String returns the lowercase sampler name.
func (s Sampler) String() string {
	switch s {
	case SamplerRejection:
		return "rejection"
	case SamplerShrinking:
		return "shrinking"
	default:
		return fmt.Sprintf("sampler(%d)", int(s))
	}
}

// ParseSampler maps "rejection" or "shrinking" (case-insensitive) to a Sampler.
func ParseSampler(name string) (Sampler, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rejection", "":
		return SamplerRejection, nil
	case "shrinking":
		return SamplerShrinking, nil
	default:
		return 0, fmt.Errorf("%w: unknown sampler %q", ErrOptionViolation, name)
	}
}

func (s Sampler) valid() bool {
	return s == SamplerRejection || s == SamplerShrinking
}

// Option configures RunTrial and Estimate via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// operation runs.
type Option func(*Options)

// Options holds the tunables of a simulation run.
type Options struct {
	// Ctx is checked between trials of Estimate.
	Ctx context.Context

	// Seed feeds the base generator when Rand is nil.
	Seed int64

	// Rand, if set, is the base generator trial streams are derived from.
	// Seed is ignored then.
	Rand *rand.Rand

	// Sampler picks the closed-site selection strategy.
	Sampler Sampler

	// Logger receives the estimate summary (Info) and per-trial lines (Debug).
	Logger *slog.Logger

	// TracerProvider and MeterProvider default to the otel globals.
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - the fixed default seed
//   - SamplerRejection
//   - slog.Default()
//   - the global OpenTelemetry tracer and meter providers.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Seed:           defaultSeed,
		Sampler:        SamplerRejection,
		Logger:         slog.Default(),
		TracerProvider: otel.GetTracerProvider(),
		MeterProvider:  otel.GetMeterProvider(),
	}
}

// WithContext sets the context checked between trials.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSeed seeds the base generator. Seed 0 selects the default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		if seed == 0 {
			seed = defaultSeed
		}
		o.Seed = seed
	}
}

// WithRand supplies the base generator. A nil r is an ErrOptionViolation.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: nil *rand.Rand", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// WithSampler selects the closed-site sampler.
func WithSampler(s Sampler) Option {
	return func(o *Options) {
		if !s.valid() {
			o.err = fmt.Errorf("%w: unknown sampler %d", ErrOptionViolation, int(s))
			return
		}
		o.Sampler = s
	}
}

// WithLogger sets the logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		if tp != nil {
			o.TracerProvider = tp
		}
	}
}

// WithMeterProvider overrides the global meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *Options) {
		if mp != nil {
			o.MeterProvider = mp
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Interval is a closed range [Low, High].
type Interval struct {
	Low  float64
	High float64
}

// Width returns High - Low.
func (iv Interval) Width() float64 {
	return iv.High - iv.Low
}

// Contains reports whether Low ≤ x ≤ High.
func (iv Interval) Contains(x float64) bool {
	return iv.Low <= x && x <= iv.High
}

// Stats is the outcome of Estimate.
//   - Fractions[k] is sitesOpened/n² of trial k, in trial order.
//   - Seed is the base seed, or 0 when the caller supplied the generator.
type Stats struct {
	Size      int
	Trials    int
	Sampler   Sampler
	Seed      int64
	Mean      float64
	StdDev    float64
	Interval  Interval
	Fractions []float64
}
