package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/d0b3-xyz/autocsv/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set AutoCSV configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("output_dir: %s\n", cfg.OutputDir)
		fmt.Printf("default_format: %s\n", cfg.DefaultFormat)
		fmt.Printf("outlier_method: %s\n", cfg.OutlierMethod)
		fmt.Printf("max_rows: %d\n", cfg.MaxRows)
		fmt.Printf("sample_rows: %d\n", cfg.SampleRows)
		fmt.Printf("top_connections: %d\n", cfg.TopConnections)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "output_dir":
			cfg.OutputDir = val
		case "default_format":
			switch val {
			case "table", "markdown", "json":
				cfg.DefaultFormat = val
			default:
				return fmt.Errorf("invalid default_format: %s (use table, markdown or json)", val)
			}
		case "outlier_method":
			switch val {
			case "iqr", "zscore":
				cfg.OutlierMethod = val
			default:
				return fmt.Errorf("invalid outlier_method: %s (use iqr or zscore)", val)
			}
		case "max_rows":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for max_rows: %v", val)
			}
			cfg.MaxRows = i
		case "sample_rows":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for sample_rows: %v", val)
			}
			cfg.SampleRows = i
		case "top_connections":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for top_connections: %v", val)
			}
			cfg.TopConnections = i
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
