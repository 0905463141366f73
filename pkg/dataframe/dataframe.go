// Package dataframe provides the column-oriented data contract consumed
// by schema validation, plus constructors for building frames from Go
// values, CSV and JSON.
//
// A frame is a set of named columns, each an ordered sequence of values.
// Validation only ever reads a frame: it iterates column names, tests
// column presence and walks a column's distinct values.
package dataframe

import (
	"fmt"
	"reflect"
	"sort"
)

// DataFrame is read-only, column-oriented data.
type DataFrame interface {
	// Columns returns the column names in the frame's canonical order.
	Columns() []string
	// HasColumn reports whether the named column exists.
	HasColumn(name string) bool
	// Distinct returns the unique values of a column in order of first
	// appearance. It returns nil for an unknown column.
	Distinct(name string) []any
}

// Frame is the built-in DataFrame implementation.
type Frame struct {
	order []string
	cols  map[string][]any
}

var _ DataFrame = (*Frame)(nil)

// FromColumns builds a frame from a map of column name to values.
// Map iteration order is not stable, so the column order is fixed by
// sorting the names.
func FromColumns(cols map[string][]any) *Frame {
	order := make([]string, 0, len(cols))
	for name := range cols {
		order = append(order, name)
	}
	sort.Strings(order)

	copied := make(map[string][]any, len(cols))
	for name, values := range cols {
		copied[name] = append([]any(nil), values...)
	}

	return &Frame{order: order, cols: copied}
}

// FromRecords builds a frame from row-oriented records. The column order
// is the order in which names are first seen across records (record keys
// are visited in sorted order so the result is stable). A record missing
// a column contributes a nil cell.
func FromRecords(records []map[string]any) *Frame {
	f := &Frame{cols: make(map[string][]any)}

	for i, record := range records {
		keys := make([]string, 0, len(record))
		for name := range record {
			keys = append(keys, name)
		}
		sort.Strings(keys)

		for _, name := range keys {
			if _, ok := f.cols[name]; !ok {
				f.order = append(f.order, name)
				// Backfill nil cells for rows seen before this column.
				f.cols[name] = make([]any, i)
			}
		}
		for _, name := range f.order {
			value, ok := record[name]
			if !ok {
				value = nil
			}
			f.cols[name] = append(f.cols[name], value)
		}
	}

	return f
}

// Columns returns the column names in canonical order.
func (f *Frame) Columns() []string {
	return append([]string(nil), f.order...)
}

// HasColumn reports whether the named column exists.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.cols[name]
	return ok
}

// Column returns the raw values of a column, or nil if it is unknown.
func (f *Frame) Column(name string) []any {
	values, ok := f.cols[name]
	if !ok {
		return nil
	}
	return append([]any(nil), values...)
}

// Distinct returns the unique values of a column in first-appearance
// order. Values that are not comparable (slices, maps) are passed
// through without deduplication.
func (f *Frame) Distinct(name string) []any {
	values, ok := f.cols[name]
	if !ok {
		return nil
	}

	seen := make(map[any]struct{}, len(values))
	distinct := make([]any, 0, len(values))
	for _, v := range values {
		if v != nil && !reflect.TypeOf(v).Comparable() {
			distinct = append(distinct, v)
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		distinct = append(distinct, v)
	}
	return distinct
}

// NumRows returns the length of the longest column.
func (f *Frame) NumRows() int {
	max := 0
	for _, values := range f.cols {
		if len(values) > max {
			max = len(values)
		}
	}
	return max
}

func (f *Frame) String() string {
	return fmt.Sprintf("Frame(%d columns, %d rows)", len(f.order), f.NumRows())
}
