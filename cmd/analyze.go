package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/d0b3-xyz/autocsv/internal/loader"
	"github.com/d0b3-xyz/autocsv/internal/report"
	"github.com/d0b3-xyz/autocsv/internal/utils"
)

var (
	anaDelimiter   string
	anaMaxRows     int
	anaSampleRows  int
	anaSheetName   string
	anaSheetIndex  int
	anaFormat      string
	anaOutputPath  string
	anaConnections bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Summarize a CSV/TSV/XLSX file, optionally with connections",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		opt, err := buildLoadOptions(anaDelimiter, anaMaxRows, anaSheetName, anaSheetIndex)
		if err != nil {
			return err
		}
		ds, err := loader.LoadFile(path, opt)
		if err != nil {
			return err
		}
		debugf("loaded %d rows, %d columns from %s\n", ds.Rows(), ds.Cols(), path)
		rep := report.Build(path, ds, sampleRowsOrDefault(anaSampleRows))

		format := anaFormat
		if format == "" && cfg != nil {
			format = cfg.DefaultFormat
		}
		var out strings.Builder
		switch format {
		case "table", "":
			report.RenderSummaryTable(&out, rep.Summary)
			if anaConnections {
				out.WriteString("\n")
				report.RenderConnectionsTable(&out, rep.Connections, 0)
			}
		case "markdown", "md":
			out.WriteString(rep.Markdown())
		case "json":
			b, err := utils.PrettyJSON(rep)
			if err != nil {
				return err
			}
			out.Write(b)
			out.WriteString("\n")
		default:
			return fmt.Errorf("unsupported --format: %s (use table|markdown|json)", format)
		}

		if anaOutputPath != "" {
			if err := utils.SafeWriteFile(anaOutputPath, []byte(out.String())); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("✓ Wrote analysis to %s\n", anaOutputPath)
			return nil
		}
		fmt.Fprint(os.Stdout, out.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&anaOutputPath, "output", "o", "", "optional path to write the rendered analysis")
	analyzeCmd.Flags().StringVarP(&anaFormat, "format", "f", "", "output format: table|markdown|json")
	analyzeCmd.Flags().BoolVarP(&anaConnections, "connections", "c", false, "include discovered connections (table format)")
	analyzeCmd.Flags().StringVar(&anaDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' (auto-detect if omitted)")
	analyzeCmd.Flags().IntVar(&anaSampleRows, "sample-rows", 0, "number of sample rows to include")
	analyzeCmd.Flags().IntVar(&anaMaxRows, "max-rows", 0, "maximum rows to process (0 = config default)")
	analyzeCmd.Flags().StringVar(&anaSheetName, "sheet-name", "", "XLSX: sheet name to analyze")
	analyzeCmd.Flags().IntVar(&anaSheetIndex, "sheet-index", 0, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
}
