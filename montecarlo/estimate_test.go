package montecarlo

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/percolate/percolation"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestEstimate_Validation(t *testing.T) {
	for _, trials := range []int{1, 0, -4} {
		_, err := Estimate(5, trials)
		assert.ErrorIs(t, err, ErrInvalidTrialCount, "t=%d", trials)
	}
	_, err := Estimate(1, 10)
	assert.ErrorIs(t, err, percolation.ErrInvalidSize)

	_, err = Estimate(5, 10, WithRand(nil))
	assert.ErrorIs(t, err, ErrOptionViolation)
}

func TestEstimate_Properties(t *testing.T) {
	st, err := Estimate(10, 30, WithSeed(7), WithLogger(quietLogger()))
	require.NoError(t, err)

	assert.Equal(t, 10, st.Size)
	assert.Equal(t, 30, st.Trials)
	assert.Equal(t, int64(7), st.Seed)
	require.Len(t, st.Fractions, 30)
	for k, f := range st.Fractions {
		assert.Greater(t, f, 0.0, "trial %d", k)
		assert.LessOrEqual(t, f, 1.0, "trial %d", k)
	}
	assert.Greater(t, st.Mean, 0.0)
	assert.LessOrEqual(t, st.Mean, 1.0)
	assert.True(t, st.Interval.Contains(st.Mean))
	assert.LessOrEqual(t, st.Interval.Low, st.Mean)
	assert.GreaterOrEqual(t, st.Interval.High, st.Mean)

	// recompute from the raw fractions
	var sum float64
	for _, f := range st.Fractions {
		sum += f
	}
	mean := sum / 30
	var ss float64
	for _, f := range st.Fractions {
		ss += (f - mean) * (f - mean)
	}
	sd := math.Sqrt(ss / 29)
	assert.InDelta(t, mean, st.Mean, 1e-12)
	assert.InDelta(t, sd, st.StdDev, 1e-12)
	assert.InDelta(t, 2*1.96*sd/math.Sqrt(30), st.Interval.Width(), 1e-12)
}

func TestEstimate_SameSeedSameResult(t *testing.T) {
	a, err := Estimate(8, 12, WithSeed(2024), WithLogger(quietLogger()))
	require.NoError(t, err)
	b, err := Estimate(8, 12, WithSeed(2024), WithLogger(quietLogger()))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := Estimate(8, 12, WithRand(rand.New(rand.NewSource(2024))), WithLogger(quietLogger()))
	require.NoError(t, err)
	assert.Equal(t, a.Fractions, c.Fractions)
	assert.Equal(t, int64(0), c.Seed)
}

func TestEstimate_TrialsUseIndependentStreams(t *testing.T) {
	st, err := Estimate(12, 20, WithSeed(5), WithLogger(quietLogger()))
	require.NoError(t, err)

	distinct := map[float64]struct{}{}
	for k, f := range st.Fractions {
		distinct[f] = struct{}{}
		// each trial can be replayed from its own stream
		_, opened, err := RunTrial(12, TrialSource(5, k))
		require.NoError(t, err)
		assert.Equal(t, f, float64(opened)/144, "trial %d", k)
	}
	assert.Greater(t, len(distinct), 1)
}

func TestEstimate_IntervalNarrowsWithTrials(t *testing.T) {
	few, err := Estimate(20, 10, WithSeed(11), WithLogger(quietLogger()))
	require.NoError(t, err)
	many, err := Estimate(20, 400, WithSeed(11), WithLogger(quietLogger()))
	require.NoError(t, err)
	assert.Less(t, many.Interval.Width(), few.Interval.Width())
}

func TestEstimate_NearKnownThreshold(t *testing.T) {
	if testing.Short() {
		t.Skip("long Monte Carlo run")
	}
	st, err := Estimate(50, 100, WithSeed(3), WithSampler(SamplerShrinking), WithLogger(quietLogger()))
	require.NoError(t, err)
	// site percolation threshold on the square lattice is ≈ 0.5927
	assert.InDelta(t, 0.5927, st.Mean, 0.04)
	assert.Equal(t, SamplerShrinking, st.Sampler)
}

func TestEstimate_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Estimate(5, 10, WithContext(ctx), WithLogger(quietLogger()))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEstimate_LogsSummary(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	st, err := Estimate(6, 5, WithSeed(9), WithLogger(logger))
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec), "exactly one Info record expected: %s", buf.String())
	assert.Equal(t, "percolation estimate", rec["msg"])
	assert.InDelta(t, st.Mean, rec["mean"], 1e-12)
	assert.InDelta(t, st.StdDev, rec["stddev"], 1e-12)
	assert.InDelta(t, st.Interval.Low, rec["low"], 1e-12)
	assert.InDelta(t, st.Interval.High, rec["high"], 1e-12)
}

func TestEstimate_Span(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, err := Estimate(4, 3,
		WithSeed(1),
		WithLogger(quietLogger()),
		WithTracerProvider(tp),
		WithMeterProvider(noop.NewMeterProvider()),
	)
	require.NoError(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, spanEstimate, spans[0].Name())
	assert.Len(t, spans[0].Events(), 3)

	attrs := map[string]bool{}
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = true
	}
	for _, key := range []string{attrSize, attrTrials, attrSampler, attrMean, attrStdDev, attrIntervalLo, attrIntervalHi} {
		assert.True(t, attrs[key], "missing attribute %s", key)
	}
}

func TestStatsHelpers(t *testing.T) {
	xs := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	m := Mean(xs)
	assert.Equal(t, 5.0, m)
	sd, err := SampleStdDev(xs, m)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(32.0/7.0), sd, 1e-12)

	_, err = SampleStdDev([]float64{1}, 1)
	assert.ErrorIs(t, err, ErrInvalidTrialCount)
	assert.Equal(t, 0.0, Mean(nil))

	iv := ConfidenceInterval95(0.5, 0.1, 4)
	assert.InDelta(t, 0.5-0.098, iv.Low, 1e-12)
	assert.InDelta(t, 0.5+0.098, iv.High, 1e-12)
}
