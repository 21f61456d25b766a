// Package loader reads tabular files from disk and builds immutable datasets.
// Reading, text-encoding resolution, and format dispatch all live here so the
// analysis core never touches I/O.
package loader

import (
	"fmt"
	"strings"

	"github.com/d0b3-xyz/autocsv/internal/dataset"
)

// Options controls loading behavior.
type Options struct {
	// Delimiter for CSV. If 0, auto-detects among ',', ';', '\t'.
	Delimiter rune
	// MaxRows limits data rows read; 0 means unlimited.
	MaxRows int
	// SheetName selects an XLSX sheet by name; empty picks by SheetIndex.
	SheetName string
	// SheetIndex is the 1-based XLSX sheet index; <=0 means the first sheet.
	SheetIndex int
}

// DefaultOptions returns reasonable defaults for interactive use.
func DefaultOptions() Options {
	return Options{MaxRows: 100000}
}

// Loader reads one file format into a dataset.
type Loader interface {
	CanLoad(filename string) bool
	Load(path string, opt Options) (*dataset.Dataset, error)
}

var registry []Loader

// Register adds a loader implementation to the registry.
func Register(l Loader) {
	registry = append(registry, l)
}

// LoadFile selects a loader by filename and reads the dataset.
func LoadFile(path string, opt Options) (*dataset.Dataset, error) {
	for _, l := range registry {
		if l.CanLoad(path) {
			return l.Load(path, opt)
		}
	}
	return nil, fmt.Errorf("unsupported file type: %s", path)
}

// Supported reports whether any registered loader handles the filename.
func Supported(filename string) bool {
	for _, l := range registry {
		if l.CanLoad(filename) {
			return true
		}
	}
	return false
}

func hasSuffixFold(name string, suffixes ...string) bool {
	lower := strings.ToLower(name)
	for _, s := range suffixes {
		if strings.HasSuffix(lower, s) {
			return true
		}
	}
	return false
}

func init() {
	Register(csvLoader{})
	Register(xlsxLoader{})
}
