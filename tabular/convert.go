// Package tabular converts delimited tabular text into JSON records.
package tabular

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Row is one source row keyed by column header, in source column order.
type Row = orderedmap.OrderedMap[string, any]

// DefaultOutputPath is the source path with its extension replaced by .json.
func DefaultOutputPath(src string) string {
	ext := filepath.Ext(src)
	return strings.TrimSuffix(src, ext) + ".json"
}

// ReadRecords parses delimited text: the first row is the header, every
// following row becomes an ordered map keyed by header in column order.
// Cell values get numeric inference via InferValue.
func ReadRecords(r io.Reader) ([]*Row, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("tabular: no header row")
		}
		return nil, fmt.Errorf("tabular: read header: %w", err)
	}

	rows := make([]*Row, 0, 64)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("tabular: read row %d: %w", len(rows)+2, err)
		}

		row := orderedmap.New[string, any]()
		for i, col := range header {
			row.Set(col, InferValue(record[i]))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// InferValue maps a cell to its JSON value: empty cells become null, integers
// and floats become numbers, true/false become booleans, everything else stays
// a string.
func InferValue(cell string) any {
	if cell == "" {
		return nil
	}
	if n, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return f
	}
	switch strings.ToLower(cell) {
	case "true":
		return true
	case "false":
		return false
	}
	return cell
}

// Convert reads a delimited source file and writes its rows as a single JSON
// array to dst, pretty-printed with 4-space indentation. A missing source
// surfaces as a not-found error before any parsing. There is no partial-write
// recovery: a failure mid-write leaves dst in an undefined state, acceptable
// for a single-shot batch tool. Returns the number of rows written.
func Convert(src, dst string) (int, error) {
	f, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("tabular: open source: %w", err)
	}
	defer f.Close()

	rows, err := ReadRecords(f)
	if err != nil {
		return 0, err
	}

	b, err := json.MarshalIndent(rows, "", "    ")
	if err != nil {
		return 0, fmt.Errorf("tabular: marshal rows: %w", err)
	}

	if err := os.WriteFile(dst, b, 0o644); err != nil {
		return 0, fmt.Errorf("tabular: write output: %w", err)
	}
	return len(rows), nil
}
