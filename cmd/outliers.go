package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/d0b3-xyz/autocsv/internal/analysis"
	"github.com/d0b3-xyz/autocsv/internal/loader"
	"github.com/d0b3-xyz/autocsv/internal/report"
	"github.com/d0b3-xyz/autocsv/internal/utils"
)

var (
	outDelimiter  string
	outMaxRows    int
	outSheetName  string
	outSheetIndex int
	outColumn     string
	outMethod     string
	outFormat     string
)

var outliersCmd = &cobra.Command{
	Use:   "outliers <file>",
	Short: "Flag anomalous values in one numeric column",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		method := outMethod
		if method == "" && cfg != nil {
			method = cfg.OutlierMethod
		}
		// The analyzer itself is permissive about unknown methods; validate
		// here so a typo gets feedback instead of an empty result.
		switch analysis.Method(method) {
		case "", analysis.MethodIQR, analysis.MethodZScore:
		default:
			return fmt.Errorf("unsupported --method: %s (use iqr|zscore)", method)
		}
		opt, err := buildLoadOptions(outDelimiter, outMaxRows, outSheetName, outSheetIndex)
		if err != nil {
			return err
		}
		ds, err := loader.LoadFile(path, opt)
		if err != nil {
			return err
		}
		outs, err := analysis.Outliers(ds, outColumn, analysis.Method(method))
		if err != nil {
			return err
		}
		switch outFormat {
		case "table", "":
			report.RenderOutliersTable(os.Stdout, outColumn, outs)
		case "json":
			b, err := utils.PrettyJSON(outs)
			if err != nil {
				return err
			}
			fmt.Println(string(b))
		default:
			return fmt.Errorf("unsupported --format: %s (use table|json)", outFormat)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(outliersCmd)
	outliersCmd.Flags().StringVarP(&outColumn, "column", "C", "", "numeric column to inspect (required)")
	_ = outliersCmd.MarkFlagRequired("column")
	outliersCmd.Flags().StringVarP(&outMethod, "method", "m", "", "detection method: iqr|zscore (default from config)")
	outliersCmd.Flags().StringVarP(&outFormat, "format", "f", "", "output format: table|json")
	outliersCmd.Flags().StringVar(&outDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' (auto-detect if omitted)")
	outliersCmd.Flags().IntVar(&outMaxRows, "max-rows", 0, "maximum rows to process (0 = config default)")
	outliersCmd.Flags().StringVar(&outSheetName, "sheet-name", "", "XLSX: sheet name to analyze")
	outliersCmd.Flags().IntVar(&outSheetIndex, "sheet-index", 0, "XLSX: 1-based sheet index")
}
