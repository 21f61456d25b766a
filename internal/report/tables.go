package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/d0b3-xyz/autocsv/internal/analysis"
	"github.com/d0b3-xyz/autocsv/internal/dataset"
)

// RenderSummaryTable writes the per-column summary as a terminal table.
func RenderSummaryTable(w io.Writer, s dataset.Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Column", "Kind", "Missing", "Count", "Mean", "Std", "Min", "Q1", "Median", "Q3", "Max"})
	for _, name := range s.Columns {
		miss := s.Missing[name]
		if st, ok := s.Stats[name]; ok {
			t.AppendRow(table.Row{
				name, "numeric", miss, st.Count,
				fmtNum(st.Mean), fmtNum(st.Std), fmtNum(st.Min),
				fmtNum(st.Q1), fmtNum(st.Median), fmtNum(st.Q3), fmtNum(st.Max),
			})
		} else {
			t.AppendRow(table.Row{name, "categorical", miss, "", "", "", "", "", "", "", ""})
		}
	}
	t.Render()
}

// RenderConnectionsTable writes the ranked connection list as a terminal
// table. top limits the number of rows; 0 means all.
func RenderConnectionsTable(w io.Writer, conns []analysis.Connection, top int) {
	if len(conns) == 0 {
		fmt.Fprintln(w, "(no connections found)")
		return
	}
	if top > 0 && len(conns) > top {
		conns = conns[:top]
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Type", "Columns", "Strength", "Detail"})
	for i, c := range conns {
		switch c.Type {
		case analysis.Correlation:
			t.AppendRow(table.Row{
				i + 1, "correlation",
				fmt.Sprintf("%s ~ %s", c.ColumnA, c.ColumnB),
				fmt.Sprintf("%.3f", c.Strength),
				fmt.Sprintf("%s, r=%.3f", c.Direction, c.Value),
			})
		case analysis.CategoricalInfluence:
			t.AppendRow(table.Row{
				i + 1, "influence",
				fmt.Sprintf("%s → %s", c.CategoricalColumn, c.NumericColumn),
				fmt.Sprintf("%.3f", c.Strength),
				fmt.Sprintf("%d groups", len(c.Groups)),
			})
		}
	}
	t.Render()
}

// RenderOutliersTable writes the outliers of one column as a terminal table.
func RenderOutliersTable(w io.Writer, column string, outs []analysis.Outlier) {
	if len(outs) == 0 {
		fmt.Fprintf(w, "(no outliers in %s)\n", column)
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Row", column})
	for _, o := range outs {
		t.AppendRow(table.Row{o.Row + 1, fmtNum(o.Value)})
	}
	t.Render()
}

func fmtNum(v float64) string {
	return fmt.Sprintf("%.4g", v)
}
