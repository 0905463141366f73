package dataframe

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// CSVOption configures CSV parsing.
type CSVOption func(*csvConfig)

type csvConfig struct {
	delimiter rune
	infer     bool
}

// WithDelimiter sets the field delimiter (default comma).
func WithDelimiter(d rune) CSVOption {
	return func(c *csvConfig) {
		c.delimiter = d
	}
}

// WithoutInference disables cell type inference; every cell stays a string.
func WithoutInference() CSVOption {
	return func(c *csvConfig) {
		c.infer = false
	}
}

// FromCSV reads CSV data into a frame. The first record is the header
// row naming the columns. By default each cell is inferred to the
// narrowest matching type: bool, int64, float64, timestamp (RFC 3339 or
// 2006-01-02), falling back to string. Empty cells become nil.
func FromCSV(r io.Reader, opts ...CSVOption) (*Frame, error) {
	cfg := csvConfig{delimiter: ',', infer: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	reader := csv.NewReader(r)
	reader.Comma = cfg.delimiter
	reader.FieldsPerRecord = 0

	header, err := reader.Read()
	if err == io.EOF {
		return &Frame{cols: make(map[string][]any)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	f := &Frame{
		order: append([]string(nil), header...),
		cols:  make(map[string][]any, len(header)),
	}
	for _, name := range header {
		f.cols[name] = []any{}
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv record: %w", err)
		}
		for i, cell := range record {
			name := header[i]
			if cfg.infer {
				f.cols[name] = append(f.cols[name], inferCell(cell))
			} else {
				f.cols[name] = append(f.cols[name], cell)
			}
		}
	}

	return f, nil
}

// inferCell converts a raw CSV cell to its narrowest matching Go type.
func inferCell(cell string) any {
	if cell == "" {
		return nil
	}
	switch cell {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return i
	}
	if fl, err := strconv.ParseFloat(cell, 64); err == nil {
		return fl
	}
	if ts, err := time.Parse(time.RFC3339, cell); err == nil {
		return ts
	}
	if ts, err := time.Parse("2006-01-02", cell); err == nil {
		return ts
	}
	return cell
}
