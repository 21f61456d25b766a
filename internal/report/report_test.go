package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/d0b3-xyz/autocsv/internal/dataset"
)

func fixtureDataset() *dataset.Dataset {
	return dataset.New(
		[]string{"group", "x", "y"},
		[][]string{
			{"A", "1", "2"},
			{"A", "2", "4"},
			{"A", "3", "6"},
			{"B", "4", "8"},
			{"B", "5", "10"},
			{"B", "6", "100"},
		},
	)
}

func TestBuildReport(t *testing.T) {
	rep := Build("fixture.csv", fixtureDataset(), 3)
	if rep.ID == "" {
		t.Fatalf("report must carry a run ID")
	}
	if rep.Summary.Rows != 6 || rep.Summary.Cols != 3 {
		t.Fatalf("summary shape = %dx%d, want 6x3", rep.Summary.Rows, rep.Summary.Cols)
	}
	if len(rep.Samples) != 3 {
		t.Fatalf("samples = %d rows, want 3", len(rep.Samples))
	}
	if len(rep.Connections) == 0 {
		t.Fatalf("fixture should produce connections")
	}
	if len(rep.Histograms["x"]) == 0 {
		t.Fatalf("numeric column should get a histogram")
	}
}

func TestMarkdownSections(t *testing.T) {
	md := Build("fixture.csv", fixtureDataset(), 2).Markdown()
	for _, want := range []string{"[DATASET SUMMARY]", "[SCHEMA]", "[CONNECTIONS]", "[SAMPLE ROWS]", "fixture.csv"} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q:\n%s", want, md)
		}
	}
	if !strings.Contains(md, "x: numeric") {
		t.Fatalf("markdown missing numeric schema line:\n%s", md)
	}
	if !strings.Contains(md, "group: categorical") {
		t.Fatalf("markdown missing categorical schema line:\n%s", md)
	}
}

func TestRenderTables(t *testing.T) {
	rep := Build("fixture.csv", fixtureDataset(), 2)
	var b strings.Builder
	RenderSummaryTable(&b, rep.Summary)
	if !strings.Contains(b.String(), "group") || !strings.Contains(b.String(), "categorical") {
		t.Fatalf("summary table missing columns:\n%s", b.String())
	}
	b.Reset()
	RenderConnectionsTable(&b, rep.Connections, 1)
	if !strings.Contains(b.String(), "1") {
		t.Fatalf("connections table empty:\n%s", b.String())
	}
	b.Reset()
	RenderConnectionsTable(&b, nil, 0)
	if !strings.Contains(b.String(), "no connections") {
		t.Fatalf("empty connection list should say so:\n%s", b.String())
	}
}

func TestHTMLRendering(t *testing.T) {
	rep := Build("fixture.csv", fixtureDataset(), 2)
	out, err := rep.HTML()
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	html := string(out)
	for _, want := range []string{"<!DOCTYPE html>", "fixture.csv", "Connections", "Distributions", rep.ID} {
		if !strings.Contains(html, want) {
			t.Fatalf("html missing %q", want)
		}
	}
	// categorical column must not pick up numeric stats cells
	if !strings.Contains(html, "<td>group</td><td>categorical</td>") {
		t.Fatalf("html missing categorical row:\n%s", html)
	}
}

func TestWriteBundle(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	rep := Build("fixture.csv", fixtureDataset(), 2)
	run, err := rep.Write(dir)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if run.ID != rep.ID {
		t.Fatalf("run ID %q != report ID %q", run.ID, rep.ID)
	}
	for _, name := range []string{"report.md", "report.html", "report.json", "run.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("missing artifact %s: %v", name, err)
		}
	}
	b, err := os.ReadFile(filepath.Join(dir, "run.json"))
	if err != nil {
		t.Fatalf("read run.json: %v", err)
	}
	var got Run
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal run.json: %v", err)
	}
	if got.Source != "fixture.csv" || len(got.Files) != 3 {
		t.Fatalf("run manifest = %+v", got)
	}
}

func TestHistogramConstantColumn(t *testing.T) {
	bins := histogram([]float64{3, 3, 3}, 10)
	if len(bins) != 1 || bins[0].Count != 3 {
		t.Fatalf("constant column histogram = %+v, want single full bin", bins)
	}
}
