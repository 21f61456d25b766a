package dataset

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestNewClassifiesColumns(t *testing.T) {
	ds := New(
		[]string{"region", "yield", "grade"},
		[][]string{
			{"north", "12.5", "A"},
			{"south", "11.8", "B"},
			{"north", "10.2", "A"},
		},
	)
	if got := ds.Rows(); got != 3 {
		t.Fatalf("Rows() = %d, want 3", got)
	}
	num := ds.NumericColumns()
	if len(num) != 1 || num[0] != "yield" {
		t.Fatalf("NumericColumns() = %v, want [yield]", num)
	}
	cat := ds.CategoricalColumns()
	if len(cat) != 2 || cat[0] != "region" || cat[1] != "grade" {
		t.Fatalf("CategoricalColumns() = %v, want [region grade]", cat)
	}
	if len(num)+len(cat) != ds.Cols() {
		t.Fatalf("kinds do not partition the column set")
	}
}

func TestNewMixedValuesAreCategorical(t *testing.T) {
	// One non-numeric token makes the whole column categorical.
	ds := New(
		[]string{"code"},
		[][]string{{"1"}, {"2"}, {"n/a"}},
	)
	col, err := ds.Column("code")
	if err != nil {
		t.Fatalf("Column: %v", err)
	}
	if col.Kind() != Categorical {
		t.Fatalf("Kind() = %v, want categorical", col.Kind())
	}
}

func TestMissingValuesTracked(t *testing.T) {
	ds := New(
		[]string{"score"},
		[][]string{{"1"}, {""}, {"  "}, {"4"}},
	)
	col, err := ds.Column("score")
	if err != nil {
		t.Fatalf("Column: %v", err)
	}
	if col.Kind() != Numeric {
		t.Fatalf("blank cells must not affect numeric classification")
	}
	if got := col.MissingCount(); got != 2 {
		t.Fatalf("MissingCount() = %d, want 2", got)
	}
	vals := col.Floats()
	if len(vals) != 2 || vals[0] != 1 || vals[1] != 4 {
		t.Fatalf("Floats() = %v, want [1 4]", vals)
	}
	if _, ok := col.Float(1); ok {
		t.Fatalf("Float on a missing row must report absence")
	}
}

func TestShortRowsPadded(t *testing.T) {
	ds := New(
		[]string{"a", "b"},
		[][]string{{"1", "2"}, {"3"}},
	)
	col, err := ds.Column("b")
	if err != nil {
		t.Fatalf("Column: %v", err)
	}
	if got := col.MissingCount(); got != 1 {
		t.Fatalf("MissingCount() = %d, want 1", got)
	}
}

func TestDuplicateHeaderNames(t *testing.T) {
	ds := New(
		[]string{"x", "x"},
		[][]string{{"1", "2"}},
	)
	cols := ds.Columns()
	if cols[0] == cols[1] {
		t.Fatalf("duplicate headers must be made unique, got %v", cols)
	}
	if _, err := ds.Column(cols[1]); err != nil {
		t.Fatalf("renamed column not addressable: %v", err)
	}
}

func TestColumnLookupErrors(t *testing.T) {
	ds := New([]string{"region"}, [][]string{{"north"}})
	if _, err := ds.Column("nope"); !errors.Is(err, ErrInvalidColumn) {
		t.Fatalf("missing column: err = %v, want ErrInvalidColumn", err)
	}
	if _, err := ds.NumericColumn("region"); !errors.Is(err, ErrInvalidColumn) {
		t.Fatalf("categorical column: err = %v, want ErrInvalidColumn", err)
	}
}

func TestSummaryEmptyDataset(t *testing.T) {
	s := New(nil, nil).Summary()
	if s.Rows != 0 || s.Cols != 0 {
		t.Fatalf("empty dataset summary = %+v, want zeroed", s)
	}
	if len(s.Stats) != 0 {
		t.Fatalf("empty dataset must carry no stats")
	}
}

func TestSummaryStats(t *testing.T) {
	ds := New(
		[]string{"v"},
		[][]string{{"1"}, {"2"}, {"3"}, {"4"}, {"100"}},
	)
	st := ds.Summary().Stats["v"]
	if st.Count != 5 {
		t.Fatalf("Count = %d, want 5", st.Count)
	}
	if !almostEqual(st.Mean, 22, 1e-9) {
		t.Fatalf("Mean = %v, want 22", st.Mean)
	}
	if !almostEqual(st.Q1, 2, 1e-9) || !almostEqual(st.Median, 3, 1e-9) || !almostEqual(st.Q3, 4, 1e-9) {
		t.Fatalf("quartiles = %v/%v/%v, want 2/3/4", st.Q1, st.Median, st.Q3)
	}
	if st.Min != 1 || st.Max != 100 {
		t.Fatalf("min/max = %v/%v, want 1/100", st.Min, st.Max)
	}
}

func TestQuantileInterpolates(t *testing.T) {
	sorted := []float64{10, 20, 30, 40}
	cases := []struct {
		q    float64
		want float64
	}{
		{0, 10},
		{0.25, 17.5},
		{0.5, 25},
		{0.75, 32.5},
		{1, 40},
	}
	for _, tc := range cases {
		if got := Quantile(sorted, tc.q); !almostEqual(got, tc.want, 1e-9) {
			t.Errorf("Quantile(%v) = %v, want %v", tc.q, got, tc.want)
		}
	}
	if got := Quantile(nil, 0.5); got != 0 {
		t.Errorf("Quantile(empty) = %v, want 0", got)
	}
}

func TestMeanStd(t *testing.T) {
	mean, std := MeanStd([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if !almostEqual(mean, 5, 1e-9) {
		t.Fatalf("mean = %v, want 5", mean)
	}
	// sample std of the classic example set
	if !almostEqual(std, math.Sqrt(32.0/7.0), 1e-9) {
		t.Fatalf("std = %v, want %v", std, math.Sqrt(32.0/7.0))
	}
	if _, std := MeanStd([]float64{42}); std != 0 {
		t.Fatalf("singleton std = %v, want 0", std)
	}
	if mean, std := MeanStd(nil); mean != 0 || std != 0 {
		t.Fatalf("empty MeanStd = %v/%v, want 0/0", mean, std)
	}
}
