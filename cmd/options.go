package cmd

import (
	"fmt"

	"github.com/d0b3-xyz/autocsv/internal/loader"
)

// parseDelimiter maps a CLI delimiter spelling to the rune the loader expects.
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case ",":
		return ',', nil
	case ";":
		return ';', nil
	case "\t", "tab":
		return '\t', nil
	default:
		return 0, fmt.Errorf("unsupported --delimiter: %s", s)
	}
}

// buildLoadOptions merges config defaults with per-command flags.
func buildLoadOptions(delim string, maxRows int, sheetName string, sheetIndex int) (loader.Options, error) {
	opt := loader.DefaultOptions()
	if cfg != nil && cfg.MaxRows > 0 {
		opt.MaxRows = cfg.MaxRows
	}
	if maxRows > 0 {
		opt.MaxRows = maxRows
	}
	d, err := parseDelimiter(delim)
	if err != nil {
		return opt, err
	}
	opt.Delimiter = d
	opt.SheetName = sheetName
	opt.SheetIndex = sheetIndex
	return opt, nil
}

func sampleRowsOrDefault(n int) int {
	if n > 0 {
		return n
	}
	if cfg != nil && cfg.SampleRows > 0 {
		return cfg.SampleRows
	}
	return 5
}
