package dataframe

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// FromJSON reads JSON data into a frame. Two shapes are accepted:
//
//	{"age": [5, -1], "name": ["a", "b"]}      (object of column arrays)
//	[{"age": 5, "name": "a"}, {"age": -1}]    (array of row objects)
//
// Whole JSON numbers decode as int64, fractional ones as float64, so
// integer columns survive the trip through JSON.
func FromJSON(r io.Reader) (*Frame, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding json table: %w", err)
	}

	switch doc := raw.(type) {
	case map[string]any:
		cols := make(map[string][]any, len(doc))
		for name, v := range doc {
			arr, ok := v.([]any)
			if !ok {
				return nil, fmt.Errorf("column %q: expected array, got %T", name, v)
			}
			values := make([]any, len(arr))
			for i, cell := range arr {
				values[i] = normalizeJSON(cell)
			}
			cols[name] = values
		}
		return FromColumns(cols), nil
	case []any:
		records := make([]map[string]any, len(doc))
		for i, v := range doc {
			obj, ok := v.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("row %d: expected object, got %T", i, v)
			}
			record := make(map[string]any, len(obj))
			for name, cell := range obj {
				record[name] = normalizeJSON(cell)
			}
			records[i] = record
		}
		return FromRecords(records), nil
	default:
		return nil, fmt.Errorf("expected object or array at top level, got %T", raw)
	}
}

// UnmarshalJSONTable is FromJSON over a byte slice.
func UnmarshalJSONTable(data []byte) (*Frame, error) {
	return FromJSON(bytes.NewReader(data))
}

func normalizeJSON(v any) any {
	num, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := num.Int64(); err == nil {
		return i
	}
	if fl, err := num.Float64(); err == nil {
		return fl
	}
	return num.String()
}
