package analysis

import (
	"math"
	"sort"

	"github.com/d0b3-xyz/autocsv/internal/dataset"
)

// Method selects the outlier detection strategy.
type Method string

const (
	MethodIQR    Method = "iqr"
	MethodZScore Method = "zscore"

	// zScoreThreshold marks values more than this many sample standard
	// deviations from the mean.
	zScoreThreshold = 3.0
	// iqrFence scales the interquartile range to set the outlier bounds.
	iqrFence = 1.5
)

// DefaultMethod is used when no method is given.
const DefaultMethod = MethodIQR

// Outlier is one anomalous value together with its original row index.
type Outlier struct {
	Row   int     `json:"row"`
	Value float64 `json:"value"`
}

// Outliers returns the anomalous values of a numeric column in original row
// order. The column must exist and be Numeric, otherwise
// dataset.ErrInvalidColumn is returned. An empty method defaults to IQR; an
// unrecognized method yields an empty result rather than an error, matching
// the permissive behavior callers of this analyzer have come to rely on.
func Outliers(ds *dataset.Dataset, column string, method Method) ([]Outlier, error) {
	col, err := ds.NumericColumn(column)
	if err != nil {
		return nil, err
	}
	present := make([]Outlier, 0, col.Len())
	for i := 0; i < col.Len(); i++ {
		if v, ok := col.Float(i); ok {
			present = append(present, Outlier{Row: i, Value: v})
		}
	}
	if method == "" {
		method = DefaultMethod
	}
	switch method {
	case MethodIQR:
		return iqrOutliers(present), nil
	case MethodZScore:
		return zScoreOutliers(present), nil
	default:
		return nil, nil
	}
}

// iqrOutliers keeps values strictly outside [Q1-1.5*IQR, Q3+1.5*IQR].
func iqrOutliers(present []Outlier) []Outlier {
	if len(present) == 0 {
		return nil
	}
	sorted := make([]float64, len(present))
	for i, o := range present {
		sorted[i] = o.Value
	}
	sort.Float64s(sorted)
	q1 := dataset.Quantile(sorted, 0.25)
	q3 := dataset.Quantile(sorted, 0.75)
	iqr := q3 - q1
	lo := q1 - iqrFence*iqr
	hi := q3 + iqrFence*iqr
	var out []Outlier
	for _, o := range present {
		if o.Value < lo || o.Value > hi {
			out = append(out, o)
		}
	}
	return out
}

// zScoreOutliers keeps values with |z| above the threshold. A zero standard
// deviation defines no outliers instead of dividing by zero.
func zScoreOutliers(present []Outlier) []Outlier {
	vals := make([]float64, len(present))
	for i, o := range present {
		vals[i] = o.Value
	}
	mean, std := dataset.MeanStd(vals)
	if std == 0 {
		return nil
	}
	var out []Outlier
	for _, o := range present {
		if math.Abs((o.Value-mean)/std) > zScoreThreshold {
			out = append(out, o)
		}
	}
	return out
}
