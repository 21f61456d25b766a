// Package analysis discovers statistical connections between the columns of
// a dataset and flags anomalous values within single columns. Both operations
// are pure functions of an immutable dataset: numerically degenerate input
// (zero-variance pairs, single-member groups) is skipped, never reported.
package analysis

import (
	"math"
	"sort"

	"github.com/d0b3-xyz/autocsv/internal/dataset"
)

// ConnectionType tags the two connection variants.
type ConnectionType string

const (
	Correlation          ConnectionType = "correlation"
	CategoricalInfluence ConnectionType = "categorical_influence"
)

const (
	// corrThreshold is the minimum |r| for a correlation to be reported.
	corrThreshold = 0.3
	// ratioThreshold is the minimum max/min group-std ratio for a
	// categorical column to count as influencing a numeric one.
	ratioThreshold = 2.0
	// ratioEpsilon guards the ratio against a zero-variance group.
	ratioEpsilon = 1e-10
)

// GroupStat summarizes one category group of a numeric column.
type GroupStat struct {
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"`
	Count int     `json:"count"`
}

// Connection is a discovered relationship between two columns. Type selects
// which field group is populated: ColumnA/ColumnB/Direction/Value for a
// correlation, CategoricalColumn/NumericColumn/Groups for a categorical
// influence. Strength is always in [0,1].
type Connection struct {
	Type     ConnectionType `json:"type"`
	Strength float64        `json:"strength"`

	ColumnA   string  `json:"column_a,omitempty"`
	ColumnB   string  `json:"column_b,omitempty"`
	Direction string  `json:"direction,omitempty"`
	Value     float64 `json:"value,omitempty"`

	CategoricalColumn string               `json:"categorical_column,omitempty"`
	NumericColumn     string               `json:"numeric_column,omitempty"`
	Groups            map[string]GroupStat `json:"groups,omitempty"`
}

// FindConnections computes all numeric-numeric correlations and
// categorical-numeric influence relationships over ds and returns them
// sorted by strength, strongest first. The sort is stable, so equally
// strong connections keep discovery order: correlations in numeric column
// pair order, then influences in categorical x numeric pair order.
func FindConnections(ds *dataset.Dataset) []Connection {
	conns := computeCorrelations(ds)
	conns = append(conns, computeCategoricalInfluence(ds)...)
	sort.SliceStable(conns, func(i, j int) bool {
		return conns[i].Strength > conns[j].Strength
	})
	return conns
}

// computeCorrelations evaluates every unordered pair of numeric columns once,
// in source column order. Pairs with fewer than two jointly non-missing rows
// or with zero variance on either side are skipped so no undefined
// coefficient ever reaches a caller.
func computeCorrelations(ds *dataset.Dataset) []Connection {
	numeric := ds.NumericColumns()
	if len(numeric) < 2 {
		return nil
	}
	var conns []Connection
	for i := 0; i < len(numeric); i++ {
		a, _ := ds.Column(numeric[i])
		for j := i + 1; j < len(numeric); j++ {
			b, _ := ds.Column(numeric[j])
			r, ok := pearson(a, b)
			if !ok || math.Abs(r) <= corrThreshold {
				continue
			}
			dir := "negative"
			if r > 0 {
				dir = "positive"
			}
			conns = append(conns, Connection{
				Type:      Correlation,
				Strength:  math.Abs(r),
				ColumnA:   a.Name(),
				ColumnB:   b.Name(),
				Direction: dir,
				Value:     r,
			})
		}
	}
	return conns
}

// pearson computes the Pearson coefficient over rows where both columns have
// a value. The second result is false when the coefficient is undefined.
func pearson(a, b *dataset.Column) (float64, bool) {
	var n, sumX, sumY, sumXX, sumYY, sumXY float64
	rows := a.Len()
	if b.Len() < rows {
		rows = b.Len()
	}
	for i := 0; i < rows; i++ {
		x, okA := a.Float(i)
		y, okB := b.Float(i)
		if !okA || !okB {
			continue
		}
		n++
		sumX += x
		sumY += y
		sumXX += x * x
		sumYY += y * y
		sumXY += x * y
	}
	if n < 2 {
		return 0, false
	}
	denom := math.Sqrt((n*sumXX - sumX*sumX) * (n*sumYY - sumY*sumY))
	if denom == 0 {
		return 0, false
	}
	r := (n*sumXY - sumX*sumY) / denom
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r, true
}

// computeCategoricalInfluence checks, for each (categorical, numeric) column
// pair, whether per-category spreads of the numeric values differ enough to
// signal an influence. Rows where either cell is missing are excluded; a
// single-member group has std 0 by convention. Pairs with fewer than two
// non-empty groups are skipped.
func computeCategoricalInfluence(ds *dataset.Dataset) []Connection {
	var conns []Connection
	for _, catName := range ds.CategoricalColumns() {
		cat, _ := ds.Column(catName)
		for _, numName := range ds.NumericColumns() {
			num, _ := ds.Column(numName)
			groups := groupValues(cat, num)
			if len(groups.order) < 2 {
				continue
			}
			stats := make(map[string]GroupStat, len(groups.order))
			minStd := math.Inf(1)
			maxStd := math.Inf(-1)
			for _, label := range groups.order {
				vals := groups.byLabel[label]
				mean, std := dataset.MeanStd(vals)
				stats[label] = GroupStat{Mean: mean, Std: std, Count: len(vals)}
				if std < minStd {
					minStd = std
				}
				if std > maxStd {
					maxStd = std
				}
			}
			ratio := maxStd / (minStd + ratioEpsilon)
			if ratio <= ratioThreshold {
				continue
			}
			conns = append(conns, Connection{
				Type:              CategoricalInfluence,
				Strength:          math.Min(ratio/10, 1.0),
				CategoricalColumn: cat.Name(),
				NumericColumn:     num.Name(),
				Groups:            stats,
			})
		}
	}
	return conns
}

type grouped struct {
	order   []string
	byLabel map[string][]float64
}

// groupValues buckets num's values by cat's labels over rows where both are
// present. Label order is first-appearance order, kept for deterministic
// iteration.
func groupValues(cat, num *dataset.Column) grouped {
	g := grouped{byLabel: make(map[string][]float64)}
	rows := cat.Len()
	if num.Len() < rows {
		rows = num.Len()
	}
	for i := 0; i < rows; i++ {
		label, okL := cat.Value(i)
		x, okX := num.Float(i)
		if !okL || !okX {
			continue
		}
		if _, seen := g.byLabel[label]; !seen {
			g.order = append(g.order, label)
		}
		g.byLabel[label] = append(g.byLabel[label], x)
	}
	return g
}
