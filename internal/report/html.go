package report

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/d0b3-xyz/autocsv/internal/dataset"
)

// HTML renders the report as a self-contained page: summary, ranked
// connections with strength bars, per-group statistics, and CSS-bar
// histograms for every numeric column. No external assets or scripts.
func (r *Report) HTML() ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTpl.Execute(&buf, r); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return buf.Bytes(), nil
}

var htmlTpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"pct": func(f float64) string { return fmt.Sprintf("%.0f%%", f*100) },
	"num": func(f float64) string { return fmt.Sprintf("%.4g", f) },
	// stats returns nil for non-numeric columns so templates can branch on it.
	"stats": func(s dataset.Summary, name string) *dataset.Stats {
		if st, ok := s.Stats[name]; ok {
			return &st
		}
		return nil
	},
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>AutoCSV report — {{.Source}}</title>
<style>
body { font-family: system-ui, sans-serif; margin: 2rem auto; max-width: 60rem; color: #222; }
h1 { font-size: 1.4rem; } h2 { font-size: 1.1rem; margin-top: 2rem; }
table { border-collapse: collapse; width: 100%; font-size: 0.9rem; }
th, td { border: 1px solid #ddd; padding: 0.3rem 0.5rem; text-align: left; }
th { background: #f5f5f5; }
.bar { background: #4a78c2; height: 0.8rem; display: inline-block; min-width: 1px; }
.bar.neg { background: #c2564a; }
.hist td.count { text-align: right; width: 4rem; }
footer { margin-top: 3rem; font-size: 0.75rem; color: #888; }
</style>
</head>
<body>
<h1>AutoCSV report — {{.Source}}</h1>
<p>{{.Summary.Rows}} rows, {{.Summary.Cols}} columns
({{len .Summary.NumericColumns}} numeric, {{len .Summary.CategoricalColumns}} categorical)</p>

<h2>Columns</h2>
<table>
<tr><th>Column</th><th>Kind</th><th>Missing</th><th>Mean</th><th>Std</th><th>Min</th><th>Median</th><th>Max</th></tr>
{{- range $name := .Summary.Columns}}
{{- with stats $.Summary $name}}
<tr><td>{{$name}}</td><td>numeric</td><td>{{index $.Summary.Missing $name}}</td>
<td>{{num .Mean}}</td><td>{{num .Std}}</td><td>{{num .Min}}</td><td>{{num .Median}}</td><td>{{num .Max}}</td></tr>
{{- else}}
<tr><td>{{$name}}</td><td>categorical</td><td>{{index $.Summary.Missing $name}}</td><td></td><td></td><td></td><td></td><td></td></tr>
{{- end}}
{{- end}}
</table>

<h2>Connections</h2>
{{- if .Connections}}
<table>
<tr><th>Type</th><th>Columns</th><th>Strength</th><th>Detail</th></tr>
{{- range .Connections}}
{{- if eq .Type "correlation"}}
<tr><td>correlation</td><td>{{.ColumnA}} ~ {{.ColumnB}}</td>
<td><span class="bar{{if eq .Direction "negative"}} neg{{end}}" style="width: {{pct .Strength}}"></span> {{num .Strength}}</td>
<td>{{.Direction}}, r={{num .Value}}</td></tr>
{{- else}}
<tr><td>influence</td><td>{{.CategoricalColumn}} → {{.NumericColumn}}</td>
<td><span class="bar" style="width: {{pct .Strength}}"></span> {{num .Strength}}</td>
<td>
{{- range $label, $g := .Groups}}{{$label}}: mean {{num $g.Mean}}, std {{num $g.Std}}, n={{$g.Count}}; {{end -}}
</td></tr>
{{- end}}
{{- end}}
</table>
{{- else}}
<p>No connections found above the reporting thresholds.</p>
{{- end}}

{{- if .Histograms}}
<h2>Distributions</h2>
{{- range $name := .Summary.NumericColumns}}
{{- with index $.Histograms $name}}
<h3>{{$name}}</h3>
<table class="hist">
{{- range .}}
<tr><td>{{.Label}}</td><td class="count">{{.Count}}</td>
<td><span class="bar" style="width: {{pct .Frac}}"></span></td></tr>
{{- end}}
</table>
{{- end}}
{{- end}}
{{- end}}

<footer>run {{.ID}} · generated {{.GeneratedAt.Format "2006-01-02 15:04:05 MST"}}</footer>
</body>
</html>
`))
