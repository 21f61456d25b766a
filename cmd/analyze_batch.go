package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/d0b3-xyz/autocsv/internal/loader"
	"github.com/d0b3-xyz/autocsv/internal/report"
)

var (
	abDelimiter  string
	abMaxRows    int
	abSampleRows int
	abOutputDir  string
	abQuiet      bool
)

var analyzeBatchCmd = &cobra.Command{
	Use:   "analyze-batch <files...>",
	Short: "Analyze multiple CSV/TSV/XLSX files with progress",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var files []string
		seen := map[string]struct{}{}
		for _, arg := range args {
			matches, _ := filepath.Glob(arg)
			if len(matches) == 0 {
				// treat as literal path if exists
				if _, err := os.Stat(arg); err == nil {
					matches = []string{arg}
				}
			}
			for _, m := range matches {
				if _, ok := seen[m]; ok {
					continue
				}
				seen[m] = struct{}{}
				if loader.Supported(m) {
					files = append(files, m)
				}
			}
		}
		if len(files) == 0 {
			return fmt.Errorf("no input files matched")
		}
		sort.Strings(files)

		opt, err := buildLoadOptions(abDelimiter, abMaxRows, "", 0)
		if err != nil {
			return err
		}
		outDir := abOutputDir
		if outDir == "" {
			if cfg != nil && cfg.OutputDir != "" {
				outDir = cfg.OutputDir
			} else {
				outDir = "output"
			}
		}

		total := len(files)
		var failed int
		for i, path := range files {
			if !abQuiet {
				fmt.Printf("[%d/%d] Processing %s...\n", i+1, total, filepath.Base(path))
			}
			ds, err := loader.LoadFile(path, opt)
			if err != nil {
				failed++
				fmt.Fprintf(os.Stderr, "⚠ Skipping %s: %v\n", path, err)
				continue
			}
			rep := report.Build(path, ds, sampleRowsOrDefault(abSampleRows))
			base := filepath.Base(path)
			dir := filepath.Join(outDir, strings.TrimSuffix(base, filepath.Ext(base)))
			run, err := rep.Write(dir)
			if err != nil {
				failed++
				fmt.Fprintf(os.Stderr, "⚠ Skipping %s: %v\n", path, err)
				continue
			}
			if !abQuiet {
				fmt.Printf("✓ %s → %s (run %s, %d connections)\n",
					base, dir, run.ID, len(rep.Connections))
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed", failed, total)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeBatchCmd)
	analyzeBatchCmd.Flags().StringVarP(&abOutputDir, "output-dir", "o", "", "base directory for report bundles")
	analyzeBatchCmd.Flags().StringVar(&abDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' (auto-detect if omitted)")
	analyzeBatchCmd.Flags().IntVar(&abSampleRows, "sample-rows", 0, "number of sample rows to include")
	analyzeBatchCmd.Flags().IntVar(&abMaxRows, "max-rows", 0, "maximum rows to process per file (0 = config default)")
	analyzeBatchCmd.Flags().BoolVarP(&abQuiet, "quiet", "q", false, "suppress per-file progress output")
}
