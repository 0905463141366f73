// Package guard wraps functions that consume and produce frames so
// their inputs and output are validated against schemas. A guarded
// function never runs on invalid input and never surfaces an invalid
// result.
package guard

import (
	"errors"
	"fmt"

	"github.com/aretw0/skooma"
	"github.com/aretw0/skooma/pkg/dataframe"
)

// ErrInputRejected is returned when an input frame fails validation;
// the wrapped function is not invoked.
var ErrInputRejected = errors.New("input rejected by schema")

// ErrOutputRejected is returned when the result frame fails validation;
// the result is suppressed.
var ErrOutputRejected = errors.New("output rejected by schema")

// RejectionError carries the failing position and the full validation
// report. It wraps ErrInputRejected or ErrOutputRejected. Report is nil
// when the wrapped function produced no result at all.
type RejectionError struct {
	sentinel error
	// Index is the argument position for input rejections, -1 for
	// output rejections.
	Index  int
	Report *skooma.Report
}

func (e *RejectionError) Error() string {
	if e.Report == nil {
		return fmt.Sprintf("%v: no result produced", e.sentinel)
	}
	if e.Index < 0 {
		return fmt.Sprintf("%v:\n%v", e.sentinel, e.Report)
	}
	return fmt.Sprintf("%v (argument %d):\n%v", e.sentinel, e.Index, e.Report)
}

func (e *RejectionError) Unwrap() error { return e.sentinel }

// Guard pairs positional input schemas and an output schema with the
// functions it wraps. Immutable after construction.
type Guard struct {
	inputs []*skooma.Schema
	output *skooma.Schema
}

// Option configures a Guard.
type Option func(*Guard)

// WithInputs sets the schemas matched positionally to the wrapped
// function's arguments. A nil entry leaves that position unchecked.
func WithInputs(schemas ...*skooma.Schema) Option {
	return func(g *Guard) {
		g.inputs = schemas
	}
}

// WithOutput sets the schema for the wrapped function's result.
func WithOutput(schema *skooma.Schema) Option {
	return func(g *Guard) {
		g.output = schema
	}
}

// New creates a Guard.
func New(opts ...Option) *Guard {
	g := &Guard{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Validate checks the given frames against the guard's input schemas.
// Every schema-bearing position is checked, and the first failing
// position is reported with its full violation list. Supplying fewer
// frames than schemas is a wiring mistake and fails outright.
func (g *Guard) Validate(dfs ...dataframe.DataFrame) error {
	if len(g.inputs) > len(dfs) {
		return fmt.Errorf("guard: %d input schemas but only %d arguments", len(g.inputs), len(dfs))
	}
	for i, schema := range g.inputs {
		if schema == nil {
			continue
		}
		if report := schema.Validate(dfs[i]); !report.Valid() {
			return &RejectionError{sentinel: ErrInputRejected, Index: i, Report: report}
		}
	}
	return nil
}

// Wrap returns a function that validates every schema-bearing argument,
// runs fn only when all inputs pass, then validates the result before
// returning it. On rejection the returned frame is nil and the error
// wraps ErrInputRejected or ErrOutputRejected.
func (g *Guard) Wrap(fn func(...dataframe.DataFrame) dataframe.DataFrame) func(...dataframe.DataFrame) (dataframe.DataFrame, error) {
	return func(dfs ...dataframe.DataFrame) (dataframe.DataFrame, error) {
		if err := g.Validate(dfs...); err != nil {
			return nil, err
		}

		out := fn(dfs...)

		if g.output != nil {
			// A nil result can never satisfy an output schema.
			if out == nil {
				return nil, &RejectionError{sentinel: ErrOutputRejected, Index: -1}
			}
			if report := g.output.Validate(out); !report.Valid() {
				return nil, &RejectionError{sentinel: ErrOutputRejected, Index: -1, Report: report}
			}
		}
		return out, nil
	}
}
