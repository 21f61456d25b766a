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
	connDelimiter  string
	connMaxRows    int
	connSheetName  string
	connSheetIndex int
	connTop        int
	connFormat     string
)

var connectionsCmd = &cobra.Command{
	Use:   "connections <file>",
	Short: "Discover and rank statistical connections between columns",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		opt, err := buildLoadOptions(connDelimiter, connMaxRows, connSheetName, connSheetIndex)
		if err != nil {
			return err
		}
		ds, err := loader.LoadFile(path, opt)
		if err != nil {
			return err
		}
		conns := analysis.FindConnections(ds)
		debugf("discovered %d connections in %s\n", len(conns), path)

		top := connTop
		if top == 0 && cfg != nil {
			top = cfg.TopConnections
		}
		switch connFormat {
		case "table", "":
			fmt.Printf("✓ Found %d potential connections\n", len(conns))
			report.RenderConnectionsTable(os.Stdout, conns, top)
		case "json":
			if top > 0 && len(conns) > top {
				conns = conns[:top]
			}
			b, err := utils.PrettyJSON(conns)
			if err != nil {
				return err
			}
			fmt.Println(string(b))
		default:
			return fmt.Errorf("unsupported --format: %s (use table|json)", connFormat)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(connectionsCmd)
	connectionsCmd.Flags().IntVarP(&connTop, "top", "t", 0, "show only the strongest N connections (0 = config default)")
	connectionsCmd.Flags().StringVarP(&connFormat, "format", "f", "", "output format: table|json")
	connectionsCmd.Flags().StringVar(&connDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' (auto-detect if omitted)")
	connectionsCmd.Flags().IntVar(&connMaxRows, "max-rows", 0, "maximum rows to process (0 = config default)")
	connectionsCmd.Flags().StringVar(&connSheetName, "sheet-name", "", "XLSX: sheet name to analyze")
	connectionsCmd.Flags().IntVar(&connSheetIndex, "sheet-index", 0, "XLSX: 1-based sheet index")
}
