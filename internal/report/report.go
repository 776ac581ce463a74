// Package report renders simulation and graph results for the CLI as
// human-readable text, JSON or YAML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/percolate/montecarlo"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects the output encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// textWriter is implemented by every report type.
type textWriter interface {
	writeText(w io.Writer) error
}

// Interval mirrors montecarlo.Interval with serialization tags.
type Interval struct {
	Low  float64 `json:"low" yaml:"low"`
	High float64 `json:"high" yaml:"high"`
}

// Estimate is the serializable form of montecarlo.Stats without the raw
// per-trial fractions.
type Estimate struct {
	Size     int      `json:"size" yaml:"size"`
	Trials   int      `json:"trials" yaml:"trials"`
	Sampler  string   `json:"sampler" yaml:"sampler"`
	Seed     int64    `json:"seed" yaml:"seed"`
	Mean     float64  `json:"mean" yaml:"mean"`
	StdDev   float64  `json:"stddev" yaml:"stddev"`
	Interval Interval `json:"confidence_interval" yaml:"confidence_interval"`
}

// FromStats converts st. seed is the seed the caller handed to Estimate.
func FromStats(st *montecarlo.Stats, seed int64) Estimate {
	return Estimate{
		Size:     st.Size,
		Trials:   st.Trials,
		Sampler:  st.Sampler.String(),
		Seed:     seed,
		Mean:     st.Mean,
		StdDev:   st.StdDev,
		Interval: Interval{Low: st.Interval.Low, High: st.Interval.High},
	}
}

func (e Estimate) writeText(w io.Writer) error {
	lw := &lineWriter{w: w}
	lw.line("grid size:", fmt.Sprintf("%dx%d", e.Size, e.Size))
	lw.line("trials:", fmt.Sprint(e.Trials))
	lw.line("sampler:", e.Sampler)
	lw.line("seed:", fmt.Sprint(e.Seed))
	lw.line("mean:", fmt.Sprintf("%.6f", e.Mean))
	lw.line("stddev:", fmt.Sprintf("%.6f", e.StdDev))
	lw.line("95% confidence interval:", fmt.Sprintf("[%.6f, %.6f]", e.Interval.Low, e.Interval.High))
	return lw.err
}

// Trial reports a single RunTrial.
type Trial struct {
	Size        int     `json:"size" yaml:"size"`
	Sampler     string  `json:"sampler" yaml:"sampler"`
	Seed        int64   `json:"seed" yaml:"seed"`
	SitesOpened int     `json:"sites_opened" yaml:"sites_opened"`
	Fraction    float64 `json:"fraction" yaml:"fraction"`
}

func (tr Trial) writeText(w io.Writer) error {
	lw := &lineWriter{w: w}
	lw.line("grid size:", fmt.Sprintf("%dx%d", tr.Size, tr.Size))
	lw.line("sampler:", tr.Sampler)
	lw.line("seed:", fmt.Sprint(tr.Seed))
	lw.line("sites opened:", fmt.Sprint(tr.SitesOpened))
	lw.line("open fraction:", fmt.Sprintf("%.6f", tr.Fraction))
	return lw.err
}

// Graph reports degree and resilience statistics of a generated graph.
type Graph struct {
	Nodes                int         `json:"nodes" yaml:"nodes"`
	InDegreeDistribution map[int]int `json:"in_degree_distribution" yaml:"in_degree_distribution"`
	AttackOrder          []int       `json:"attack_order" yaml:"attack_order"`
	Resilience           []int       `json:"resilience" yaml:"resilience"`
}

func (g Graph) writeText(w io.Writer) error {
	degrees := make([]int, 0, len(g.InDegreeDistribution))
	for d := range g.InDegreeDistribution {
		degrees = append(degrees, d)
	}
	sort.Ints(degrees)
	pairs := make([]string, len(degrees))
	for i, d := range degrees {
		pairs[i] = fmt.Sprintf("%d:%d", d, g.InDegreeDistribution[d])
	}

	lw := &lineWriter{w: w}
	lw.line("nodes:", fmt.Sprint(g.Nodes))
	lw.line("in-degree distribution:", strings.Join(pairs, " "))
	lw.line("attack order:", joinInts(g.AttackOrder))
	lw.line("largest component:", joinInts(g.Resilience))
	return lw.err
}

// Render writes v in the given format. v must be one of Estimate, Trial or Graph.
func Render(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatText:
		tw, ok := v.(textWriter)
		if !ok {
			return fmt.Errorf("report: %T has no text form", v)
		}
		return tw.writeText(w)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// lineWriter writes "label value" lines with the label padded to a fixed
// column and keeps the first error.
type lineWriter struct {
	w   io.Writer
	err error
}

const labelWidth = 25

func (lw *lineWriter) line(label, value string) {
	if lw.err != nil {
		return
	}
	_, lw.err = fmt.Fprintf(lw.w, "%-*s%s\n", labelWidth, label, value)
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, " ")
}
