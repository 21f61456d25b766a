package dataset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColumn reports a column lookup that cannot be satisfied: the
// column does not exist, or it does not have the required kind.
var ErrInvalidColumn = errors.New("invalid column")

// Kind classifies a column's values. It is computed once when the Dataset is
// built and never changes afterwards.
type Kind int

const (
	Numeric Kind = iota
	Categorical
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	default:
		return "unknown"
	}
}

// Column is an immutable, row-aligned view of one column of a dataset.
// Cells that were empty in the source are tracked as missing and excluded
// from every numeric computation.
type Column struct {
	name    string
	kind    Kind
	raw     []string
	nums    []float64 // aligned to raw; valid only where kind==Numeric and not missing
	missing []bool
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Kind returns the column's classification.
func (c *Column) Kind() Kind { return c.kind }

// Len returns the number of rows, missing entries included.
func (c *Column) Len() int { return len(c.raw) }

// MissingCount returns how many rows have no value in this column.
func (c *Column) MissingCount() int {
	n := 0
	for _, m := range c.missing {
		if m {
			n++
		}
	}
	return n
}

// IsMissing reports whether row i has no value.
func (c *Column) IsMissing(i int) bool { return c.missing[i] }

// Value returns the raw cell text at row i and whether it is present.
func (c *Column) Value(i int) (string, bool) {
	if c.missing[i] {
		return "", false
	}
	return c.raw[i], true
}

// Float returns the parsed numeric value at row i. The second result is
// false when the row is missing or the column is not Numeric.
func (c *Column) Float(i int) (float64, bool) {
	if c.kind != Numeric || c.missing[i] {
		return 0, false
	}
	return c.nums[i], true
}

// Floats returns the column's non-missing numeric values in row order.
// The slice is a copy; callers may sort or mutate it freely.
func (c *Column) Floats() []float64 {
	if c.kind != Numeric {
		return nil
	}
	out := make([]float64, 0, len(c.nums))
	for i, v := range c.nums {
		if !c.missing[i] {
			out = append(out, v)
		}
	}
	return out
}

// Dataset is a typed, read-only view of a loaded table. Column order follows
// the source header; every column is classified exactly once as Numeric or
// Categorical.
type Dataset struct {
	cols   []*Column
	byName map[string]*Column
	rows   int
}

// New builds a Dataset from a header and row-major records. Rows shorter than
// the header are padded with missing cells; duplicate header names get a
// numeric suffix so names stay unique. A column is Numeric when every present
// value parses as a real number, otherwise Categorical.
func New(header []string, rows [][]string) *Dataset {
	ncol := len(header)
	d := &Dataset{
		cols:   make([]*Column, 0, ncol),
		byName: make(map[string]*Column, ncol),
		rows:   len(rows),
	}
	for j := 0; j < ncol; j++ {
		name := strings.TrimSpace(header[j])
		if name == "" {
			name = fmt.Sprintf("column_%d", j+1)
		}
		if _, taken := d.byName[name]; taken {
			for k := 2; ; k++ {
				cand := fmt.Sprintf("%s_%d", name, k)
				if _, dup := d.byName[cand]; !dup {
					name = cand
					break
				}
			}
		}
		col := buildColumn(name, j, rows)
		d.cols = append(d.cols, col)
		d.byName[name] = col
	}
	return d
}

func buildColumn(name string, idx int, rows [][]string) *Column {
	n := len(rows)
	c := &Column{
		name:    name,
		raw:     make([]string, n),
		nums:    make([]float64, n),
		missing: make([]bool, n),
	}
	numeric := true
	for i, rec := range rows {
		var v string
		if idx < len(rec) {
			v = strings.TrimSpace(rec[idx])
		}
		if v == "" {
			c.missing[i] = true
			continue
		}
		c.raw[i] = v
		if numeric {
			x, err := strconv.ParseFloat(v, 64)
			if err != nil {
				numeric = false
			} else {
				c.nums[i] = x
			}
		}
	}
	if numeric {
		c.kind = Numeric
	} else {
		c.kind = Categorical
		c.nums = nil
	}
	return c
}

// Rows returns the row count.
func (d *Dataset) Rows() int { return d.rows }

// Cols returns the column count.
func (d *Dataset) Cols() int { return len(d.cols) }

// Columns returns all column names in source order.
func (d *Dataset) Columns() []string {
	out := make([]string, len(d.cols))
	for i, c := range d.cols {
		out[i] = c.name
	}
	return out
}

// NumericColumns returns the Numeric column names in source order.
func (d *Dataset) NumericColumns() []string {
	return d.namesOfKind(Numeric)
}

// CategoricalColumns returns the Categorical column names in source order.
func (d *Dataset) CategoricalColumns() []string {
	return d.namesOfKind(Categorical)
}

func (d *Dataset) namesOfKind(k Kind) []string {
	var out []string
	for _, c := range d.cols {
		if c.kind == k {
			out = append(out, c.name)
		}
	}
	return out
}

// Column looks up a column by name.
func (d *Dataset) Column(name string) (*Column, error) {
	c, ok := d.byName[name]
	if !ok {
		return nil, fmt.Errorf("column %q: %w", name, ErrInvalidColumn)
	}
	return c, nil
}

// NumericColumn looks up a column by name and requires it to be Numeric.
func (d *Dataset) NumericColumn(name string) (*Column, error) {
	c, ok := d.byName[name]
	if !ok {
		return nil, fmt.Errorf("column %q: %w", name, ErrInvalidColumn)
	}
	if c.kind != Numeric {
		return nil, fmt.Errorf("column %q is not numeric: %w", name, ErrInvalidColumn)
	}
	return c, nil
}
