package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolate/internal/config"
	"github.com/katalvlaran/percolate/internal/report"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestEstimateJSON(t *testing.T) {
	out, _, err := execute(t, "estimate", "--size", "6", "--trials", "10", "--seed", "3", "--format", "json")
	require.NoError(t, err)

	var got report.Estimate
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 6, got.Size)
	assert.Equal(t, 10, got.Trials)
	assert.Equal(t, int64(3), got.Seed)
	assert.Equal(t, "rejection", got.Sampler)
	assert.Greater(t, got.Mean, 0.0)
	assert.LessOrEqual(t, got.Mean, 1.0)
	assert.LessOrEqual(t, got.Interval.Low, got.Mean)
	assert.GreaterOrEqual(t, got.Interval.High, got.Mean)
}

func TestEstimateDeterministicForSeed(t *testing.T) {
	args := []string{"estimate", "--size", "5", "--trials", "8", "--seed", "11", "--sampler", "shrinking", "--format", "yaml"}
	first, _, err := execute(t, args...)
	require.NoError(t, err)
	second, _, err := execute(t, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "sampler: shrinking")
}

func TestEstimateRejectsTooFewTrials(t *testing.T) {
	_, _, err := execute(t, "estimate", "--trials", "1")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestUnknownSampler(t *testing.T) {
	_, _, err := execute(t, "trial", "--sampler", "greedy")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestUnknownFormat(t *testing.T) {
	_, _, err := execute(t, "trial", "--format", "xml")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestFormatIsCaseInsensitive(t *testing.T) {
	out, _, err := execute(t, "trial", "--size", "3", "--seed", "2", "--format", "YAML")
	require.NoError(t, err)
	assert.Contains(t, out, "size: 3")
}

func TestTrialText(t *testing.T) {
	out, stderr, err := execute(t, "trial", "--size", "4", "--seed", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "grid size:")
	assert.Contains(t, out, "4x4")
	assert.Contains(t, stderr, "trial finished")
	assert.Contains(t, stderr, "percolates=true")
}

func TestGraphComplete(t *testing.T) {
	out, _, err := execute(t, "graph", "complete", "--nodes", "4", "--attack-order", "3,1", "--format", "json")
	require.NoError(t, err)

	var got report.Graph
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 4, got.Nodes)
	assert.Equal(t, map[int]int{3: 4}, got.InDegreeDistribution)
	assert.Equal(t, []int{3, 1}, got.AttackOrder)
	assert.Equal(t, []int{4, 3, 2}, got.Resilience)
}

func TestGraphCompleteDefaultOrder(t *testing.T) {
	out, _, err := execute(t, "graph", "complete", "--nodes", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "0 1 2")
	assert.Contains(t, out, "3 2 1 0")
}

func TestGraphUnknownAttackNode(t *testing.T) {
	_, _, err := execute(t, "graph", "complete", "--nodes", "3", "--attack-order", "9")
	assert.Error(t, err)
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "percolate.yaml")
	require.NoError(t, os.WriteFile(path, []byte("size: 7\ntrials: 4\nseed: 2\nformat: json\n"), 0o600))

	out, _, err := execute(t, "--config", path, "estimate", "--trials", "6")
	require.NoError(t, err)

	var got report.Estimate
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 7, got.Size)
	assert.Equal(t, 6, got.Trials)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("PERCOLATE_SIZE", "3")
	out, _, err := execute(t, "trial", "--seed", "1", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "size: 3")
}

func TestTraceExport(t *testing.T) {
	_, stderr, err := execute(t, "estimate", "--size", "3", "--trials", "2", "--seed", "1", "--trace")
	require.NoError(t, err)
	assert.True(t, strings.Contains(stderr, "montecarlo.Estimate"), "span name missing from exported output")
}
