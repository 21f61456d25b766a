package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fixtureCSV = "group,x,y\n" +
	"A,1,2\n" +
	"A,2,4\n" +
	"A,3,6\n" +
	"B,4,8\n" +
	"B,5,10\n" +
	"B,6,100\n"

// runCmd executes the root command with args, resetting sticky flag state
// that persists between invocations in the same process.
func runCmd(t *testing.T, args ...string) {
	t.Helper()
	if err := execCmd(args...); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
}

func execCmd(args ...string) error {
	resetFlags()
	loadConfig()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func resetFlags() {
	anaDelimiter, anaFormat, anaOutputPath, anaSheetName = "", "", "", ""
	anaMaxRows, anaSampleRows, anaSheetIndex = 0, 0, 0
	anaConnections = false
	connDelimiter, connFormat, connSheetName = "", "", ""
	connMaxRows, connSheetIndex, connTop = 0, 0, 0
	outDelimiter, outFormat, outSheetName, outColumn, outMethod = "", "", "", "", ""
	outMaxRows, outSheetIndex = 0, 0
	repDelimiter, repSheetName, repOutputDir = "", "", ""
	repMaxRows, repSampleRows, repSheetIndex = 0, 0, 0
	abDelimiter, abOutputDir = "", ""
	abMaxRows, abSampleRows = 0, 0
	abQuiet = false
}

func writeFixture(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(fixtureCSV), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return p
}

func TestCLIAnalyzeMarkdownToFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	csvPath := writeFixture(t, home, "data.csv")
	outPath := filepath.Join(home, "analysis.md")

	runCmd(t, "analyze", csvPath, "--format", "markdown", "-o", outPath)

	b, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	md := string(b)
	for _, want := range []string{"[DATASET SUMMARY]", "[SCHEMA]", "x: numeric", "group: categorical"} {
		if !strings.Contains(md, want) {
			t.Fatalf("analysis missing %q:\n%s", want, md)
		}
	}
}

func TestCLIAnalyzeUnsupportedFormat(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	csvPath := writeFixture(t, home, "data.csv")
	if err := execCmd("analyze", csvPath, "--format", "xml"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestCLIOutliersInvalidColumn(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	csvPath := writeFixture(t, home, "data.csv")
	if err := execCmd("outliers", csvPath, "--column", "group"); err == nil {
		t.Fatalf("expected error for categorical column")
	}
	if err := execCmd("outliers", csvPath, "--column", "nope"); err == nil {
		t.Fatalf("expected error for unknown column")
	}
}

func TestCLIOutliersInvalidMethod(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	csvPath := writeFixture(t, home, "data.csv")
	if err := execCmd("outliers", csvPath, "--column", "y", "--method", "mad"); err == nil {
		t.Fatalf("expected error for unknown method")
	}
}

func TestCLIReportBundle(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	csvPath := writeFixture(t, home, "data.csv")
	outDir := filepath.Join(home, "reports")

	runCmd(t, "report", csvPath, "-o", outDir)

	for _, name := range []string{"report.md", "report.html", "report.json", "run.json"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Fatalf("missing artifact %s: %v", name, err)
		}
	}
}

func TestCLIAnalyzeBatch(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFixture(t, home, "one.csv")
	writeFixture(t, home, "two.csv")
	outDir := filepath.Join(home, "batch")

	runCmd(t, "analyze-batch", filepath.Join(home, "*.csv"), "-o", outDir, "-q")

	for _, sub := range []string{"one", "two"} {
		if _, err := os.Stat(filepath.Join(outDir, sub, "report.html")); err != nil {
			t.Fatalf("missing batch report for %s: %v", sub, err)
		}
	}
}

func TestCLIConfigSet(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	runCmd(t, "config", "set", "outlier_method", "zscore")

	b, err := os.ReadFile(filepath.Join(home, ".autocsv", "config.yaml"))
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(b), "outlier_method: zscore") {
		t.Fatalf("config not persisted:\n%s", b)
	}
	if err := execCmd("config", "set", "outlier_method", "mad"); err == nil {
		t.Fatalf("expected error for invalid outlier_method")
	}
}
