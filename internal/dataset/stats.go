package dataset

import (
	"math"
	"sort"
)

// Stats holds descriptive statistics for one numeric column.
type Stats struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Summary is the descriptive view of a Dataset handed to presentation
// layers: shape, column names by kind, missing counts, and per-numeric-column
// statistics.
type Summary struct {
	Rows               int
	Cols               int
	Columns            []string
	NumericColumns     []string
	CategoricalColumns []string
	Missing            map[string]int
	Stats              map[string]Stats
}

// Summary computes the descriptive summary. An empty dataset yields a
// zeroed summary rather than an error.
func (d *Dataset) Summary() Summary {
	s := Summary{
		Rows:               d.rows,
		Cols:               len(d.cols),
		Columns:            d.Columns(),
		NumericColumns:     d.NumericColumns(),
		CategoricalColumns: d.CategoricalColumns(),
		Missing:            make(map[string]int, len(d.cols)),
		Stats:              make(map[string]Stats),
	}
	for _, c := range d.cols {
		s.Missing[c.name] = c.MissingCount()
		if c.kind == Numeric {
			s.Stats[c.name] = Describe(c.Floats())
		}
	}
	return s
}

// Describe computes count, mean, sample std, min, quartiles, and max over
// the given values. An empty input yields a zero Stats.
func Describe(vals []float64) Stats {
	st := Stats{Count: len(vals)}
	if len(vals) == 0 {
		return st
	}
	st.Mean, st.Std = MeanStd(vals)
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	st.Min = sorted[0]
	st.Max = sorted[len(sorted)-1]
	st.Q1 = Quantile(sorted, 0.25)
	st.Median = Quantile(sorted, 0.5)
	st.Q3 = Quantile(sorted, 0.75)
	return st
}

// MeanStd returns the mean and sample standard deviation of vals. With fewer
// than two values the std is 0; this is also the convention used for
// single-member category groups.
func MeanStd(vals []float64) (mean, std float64) {
	n := len(vals)
	if n == 0 {
		return 0, 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	mean = sum / float64(n)
	if n < 2 {
		return mean, 0
	}
	var m2 float64
	for _, v := range vals {
		d := v - mean
		m2 += d * d
	}
	return mean, math.Sqrt(m2 / float64(n-1))
}

// Quantile returns the q-th quantile of an ascending-sorted slice using
// linear interpolation between the two nearest ranks.
func Quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}
