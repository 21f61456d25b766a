package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/d0b3-xyz/autocsv/internal/loader"
	"github.com/d0b3-xyz/autocsv/internal/report"
)

var (
	repDelimiter  string
	repMaxRows    int
	repSampleRows int
	repSheetName  string
	repSheetIndex int
	repOutputDir  string
)

var reportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Write a full report bundle (markdown, HTML, JSON) for a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		opt, err := buildLoadOptions(repDelimiter, repMaxRows, repSheetName, repSheetIndex)
		if err != nil {
			return err
		}
		ds, err := loader.LoadFile(path, opt)
		if err != nil {
			return err
		}
		rep := report.Build(path, ds, sampleRowsOrDefault(repSampleRows))

		dir := repOutputDir
		if dir == "" {
			if cfg != nil && cfg.OutputDir != "" {
				dir = cfg.OutputDir
			} else {
				dir = "output"
			}
			base := filepath.Base(path)
			dir = filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base)))
		}
		run, err := rep.Write(dir)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Wrote %s to %s (run %s)\n", strings.Join(run.Files, ", "), dir, run.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&repOutputDir, "output-dir", "o", "", "directory for the report bundle")
	reportCmd.Flags().StringVar(&repDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' (auto-detect if omitted)")
	reportCmd.Flags().IntVar(&repSampleRows, "sample-rows", 0, "number of sample rows to include")
	reportCmd.Flags().IntVar(&repMaxRows, "max-rows", 0, "maximum rows to process (0 = config default)")
	reportCmd.Flags().StringVar(&repSheetName, "sheet-name", "", "XLSX: sheet name to analyze")
	reportCmd.Flags().IntVar(&repSheetIndex, "sheet-index", 0, "XLSX: 1-based sheet index")
}
