package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/d0b3-xyz/autocsv/internal/dataset"
)

type csvLoader struct{}

func (csvLoader) CanLoad(filename string) bool {
	return hasSuffixFold(filename, ".csv", ".tsv")
}

func (csvLoader) Load(path string, opt Options) (*dataset.Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	text, err := decodeText(raw)
	if err != nil {
		return nil, fmt.Errorf("decode csv: %w", err)
	}
	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(path, text)
	}
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return dataset.New(nil, nil), nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	maxRows := opt.MaxRows
	var rows [][]string
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}
		if maxRows > 0 && len(rows) >= maxRows {
			break
		}
		row := make([]string, len(rec))
		copy(row, rec)
		rows = append(rows, row)
	}
	return dataset.New(header, rows), nil
}

// decodeText returns the file content as UTF-8. Valid UTF-8 passes through;
// anything else is decoded as Windows-1252, which covers the Latin-1 byte
// range these files typically carry.
func decodeText(raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	out, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err == nil {
		return string(out), nil
	}
	out, err = charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", errors.New("unable to decode file with any supported encoding")
	}
	return string(out), nil
}

// sniffDelimiter picks the delimiter from the filename or the first line:
// .tsv means tab, otherwise the most frequent candidate outside quotes wins,
// defaulting to comma.
func sniffDelimiter(path, text string) rune {
	if hasSuffixFold(path, ".tsv") {
		return '\t'
	}
	line := text
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	counts := map[rune]int{',': 0, ';': 0, '\t': 0}
	inQuotes := false
	for _, r := range line {
		if r == '"' {
			inQuotes = !inQuotes
			continue
		}
		if inQuotes {
			continue
		}
		if _, ok := counts[r]; ok {
			counts[r]++
		}
	}
	best := ','
	for _, cand := range []rune{';', '\t'} {
		if counts[cand] > counts[best] {
			best = cand
		}
	}
	return best
}
