// Package report renders analysis results for people: compact markdown,
// terminal tables, and a standalone HTML page. It consumes the immutable
// dataset plus the derived connection and outlier values and never feeds
// anything back into the analysis core.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/d0b3-xyz/autocsv/internal/analysis"
	"github.com/d0b3-xyz/autocsv/internal/dataset"
)

// HistBin is one bucket of a column histogram.
type HistBin struct {
	Label string  `json:"label"`
	Count int     `json:"count"`
	Frac  float64 `json:"frac"` // count relative to the fullest bin, in [0,1]
}

// Report bundles everything one analysis run produced. It holds derived
// values only; the dataset itself is not retained.
type Report struct {
	ID          string                        `json:"id"`
	Source      string                        `json:"source"`
	GeneratedAt time.Time                     `json:"generated_at"`
	Summary     dataset.Summary               `json:"summary"`
	Samples     [][]string                    `json:"samples,omitempty"`
	Connections []analysis.Connection         `json:"connections"`
	Outliers    map[string][]analysis.Outlier `json:"outliers,omitempty"`
	Histograms  map[string][]HistBin          `json:"histograms,omitempty"`
}

// Build assembles a full report for ds: summary, sample rows, ranked
// connections, per-numeric-column outliers (default method), and histogram
// buckets for the HTML rendering.
func Build(source string, ds *dataset.Dataset, sampleRows int) *Report {
	if sampleRows <= 0 {
		sampleRows = 5
	}
	r := &Report{
		ID:          uuid.NewString(),
		Source:      source,
		GeneratedAt: time.Now().UTC(),
		Summary:     ds.Summary(),
		Connections: analysis.FindConnections(ds),
		Outliers:    make(map[string][]analysis.Outlier),
		Histograms:  make(map[string][]HistBin),
	}
	r.Samples = sampleRowsOf(ds, sampleRows)
	for _, name := range ds.NumericColumns() {
		outs, err := analysis.Outliers(ds, name, analysis.DefaultMethod)
		if err == nil && len(outs) > 0 {
			r.Outliers[name] = outs
		}
		col, err := ds.Column(name)
		if err != nil {
			continue
		}
		if bins := histogram(col.Floats(), 10); len(bins) > 0 {
			r.Histograms[name] = bins
		}
	}
	return r
}

func sampleRowsOf(ds *dataset.Dataset, n int) [][]string {
	if ds.Rows() < n {
		n = ds.Rows()
	}
	names := ds.Columns()
	out := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		row := make([]string, len(names))
		for j, name := range names {
			col, err := ds.Column(name)
			if err != nil {
				continue
			}
			if v, ok := col.Value(i); ok {
				row[j] = v
			}
		}
		out = append(out, row)
	}
	return out
}

// histogram buckets vals into equal-width bins. A constant column collapses
// into a single bin.
func histogram(vals []float64, bins int) []HistBin {
	if len(vals) == 0 || bins <= 0 {
		return nil
	}
	lo, hi := vals[0], vals[0]
	for _, v := range vals {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		return []HistBin{{Label: fmt.Sprintf("%.4g", lo), Count: len(vals), Frac: 1}}
	}
	width := (hi - lo) / float64(bins)
	counts := make([]int, bins)
	for _, v := range vals {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}
	out := make([]HistBin, bins)
	for i, c := range counts {
		out[i] = HistBin{
			Label: fmt.Sprintf("%.4g – %.4g", lo+float64(i)*width, lo+float64(i+1)*width),
			Count: c,
			Frac:  float64(c) / float64(maxCount),
		}
	}
	return out
}

// Markdown renders a compact report suitable for terminals or standalone docs.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if r.Source != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", r.Source))
	}
	b.WriteString(fmt.Sprintf("Rows: %d\n", r.Summary.Rows))
	b.WriteString(fmt.Sprintf("Columns: %d (%d numeric, %d categorical)\n\n",
		r.Summary.Cols, len(r.Summary.NumericColumns), len(r.Summary.CategoricalColumns)))

	b.WriteString("[SCHEMA]\n")
	for _, name := range r.Summary.Columns {
		miss := r.Summary.Missing[name]
		if st, ok := r.Summary.Stats[name]; ok {
			b.WriteString(fmt.Sprintf("- %s: numeric (count %d, missing %d) — mean %.4g, std %.4g, min %.4g, q1 %.4g, median %.4g, q3 %.4g, max %.4g\n",
				safeName(name), st.Count, miss, st.Mean, st.Std, st.Min, st.Q1, st.Median, st.Q3, st.Max))
		} else {
			b.WriteString(fmt.Sprintf("- %s: categorical (missing %d)\n", safeName(name), miss))
		}
	}

	if len(r.Connections) > 0 {
		b.WriteString("\n[CONNECTIONS]\n")
		for _, c := range r.Connections {
			b.WriteString("- ")
			b.WriteString(describeConnection(c))
			b.WriteString("\n")
		}
	}

	if len(r.Outliers) > 0 {
		b.WriteString("\n[OUTLIERS]\n")
		names := make([]string, 0, len(r.Outliers))
		for name := range r.Outliers {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			outs := r.Outliers[name]
			parts := make([]string, 0, len(outs))
			for _, o := range outs {
				parts = append(parts, fmt.Sprintf("%.4g (row %d)", o.Value, o.Row+1))
			}
			b.WriteString(fmt.Sprintf("- %s: %s\n", safeName(name), strings.Join(parts, ", ")))
		}
	}

	if len(r.Samples) > 0 {
		b.WriteString("\n[SAMPLE ROWS]\n")
		b.WriteString("| ")
		for i, name := range r.Summary.Columns {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(safeName(name))
		}
		b.WriteString(" |\n| ")
		for i := range r.Summary.Columns {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString("---")
		}
		b.WriteString(" |\n")
		for _, row := range r.Samples {
			b.WriteString("| ")
			for i := range r.Summary.Columns {
				if i > 0 {
					b.WriteString(" | ")
				}
				val := ""
				if i < len(row) {
					val = row[i]
				}
				if len(val) > 80 {
					val = val[:77] + "..."
				}
				b.WriteString(safeVal(val))
			}
			b.WriteString(" |\n")
		}
	}
	return b.String()
}

func describeConnection(c analysis.Connection) string {
	switch c.Type {
	case analysis.Correlation:
		return fmt.Sprintf("%s ~ %s: %s correlation, r=%.3f (strength %.2f)",
			safeName(c.ColumnA), safeName(c.ColumnB), c.Direction, c.Value, c.Strength)
	case analysis.CategoricalInfluence:
		return fmt.Sprintf("%s → %s: categorical influence across %d groups (strength %.2f)",
			safeName(c.CategoricalColumn), safeName(c.NumericColumn), len(c.Groups), c.Strength)
	default:
		return string(c.Type)
	}
}

func safeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "(unnamed)"
	}
	return s
}

func safeVal(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/")
}
