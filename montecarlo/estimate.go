// SPDX-License-Identifier: MIT
// Package: percolate/montecarlo
//
// estimate.go: Monte Carlo estimation of the percolation threshold.

package montecarlo

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/percolate/percolation"
)

const (
	spanEstimate   = "montecarlo.Estimate"
	eventTrial     = "trial"
	histSitesOpen  = "percolate.trial.sites_opened"
	attrSize       = "percolate.size"
	attrTrials     = "percolate.trials"
	attrSampler    = "percolate.sampler"
	attrTrial      = "percolate.trial"
	attrSitesOpen  = "percolate.sites_opened"
	attrMean       = "percolate.mean"
	attrStdDev     = "percolate.stddev"
	attrIntervalLo = "percolate.interval.low"
	attrIntervalHi = "percolate.interval.high"
)

// Estimate runs t independent trials on n×n grids and summarizes the
// fraction of sites open at first percolation.
//
// Implementation:
//   - Stage 1: validate t ≥ 2 and n ≥ 2 before any trial runs.
//   - Stage 2: for trial k, derive an independent stream from the base
//     generator and run RunTrial; record sitesOpened/n².
//   - Stage 3: mean, Bessel-corrected stddev, 95% normal interval.
//   - Stage 4: log the three values at Info and close the span.
//
// Returns ErrInvalidTrialCount, a wrapped percolation.ErrInvalidSize,
// ErrOptionViolation, or the context error if cancelled between trials.
// Complexity: O(t·n²·α(n²)) expected.
func Estimate(n, t int, opts ...Option) (*Stats, error) {
	if t < MinTrials {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTrialCount, t)
	}
	if n < percolation.MinSize {
		return nil, fmt.Errorf("Estimate: %w: was %d", percolation.ErrInvalidSize, n)
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	hist, err := o.MeterProvider.Meter(instrumentationName).Int64Histogram(
		histSitesOpen,
		metric.WithDescription("Sites opened before the grid first percolated."),
		metric.WithUnit("{site}"),
	)
	if err != nil {
		return nil, fmt.Errorf("Estimate: %w", err)
	}
	ctx, span := o.TracerProvider.Tracer(instrumentationName).Start(o.Ctx, spanEstimate,
		trace.WithAttributes(
			attribute.Int(attrSize, n),
			attribute.Int(attrTrials, t),
			attribute.String(attrSampler, o.Sampler.String()),
		),
	)
	defer span.End()

	base, seed := o.Rand, int64(0)
	if base == nil {
		base, seed = rngFromSeed(o.Seed), o.Seed
	}
	area := float64(n * n)
	sizeAttr := metric.WithAttributes(attribute.Int(attrSize, n))

	fractions := make([]float64, t)
	for k := 0; k < t; k++ {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		_, opened, err := runTrial(n, deriveRNG(base, uint64(k)), o.Sampler)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, fmt.Errorf("Estimate: trial %d: %w", k, err)
		}
		fractions[k] = float64(opened) / area

		hist.Record(ctx, int64(opened), sizeAttr)
		span.AddEvent(eventTrial, trace.WithAttributes(
			attribute.Int(attrTrial, k),
			attribute.Int(attrSitesOpen, opened),
		))
		o.Logger.DebugContext(ctx, "trial finished", "trial", k, "sites_opened", opened, "fraction", fractions[k])
	}

	mean := Mean(fractions)
	stddev, err := SampleStdDev(fractions, mean)
	if err != nil {
		return nil, fmt.Errorf("Estimate: %w", err)
	}
	ci := ConfidenceInterval95(mean, stddev, t)

	o.Logger.InfoContext(ctx, "percolation estimate",
		"size", n,
		"trials", t,
		"mean", mean,
		"stddev", stddev,
		"low", ci.Low,
		"high", ci.High,
	)
	span.SetAttributes(
		attribute.Float64(attrMean, mean),
		attribute.Float64(attrStdDev, stddev),
		attribute.Float64(attrIntervalLo, ci.Low),
		attribute.Float64(attrIntervalHi, ci.High),
	)

	return &Stats{
		Size:      n,
		Trials:    t,
		Sampler:   o.Sampler,
		Seed:      seed,
		Mean:      mean,
		StdDev:    stddev,
		Interval:  ci,
		Fractions: fractions,
	}, nil
}
