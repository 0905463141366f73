package skooma

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/aretw0/skooma/pkg/dataframe"
)

// Schema maps column names to rules and validates frames against them.
// A nil rule means the column must exist but any value is accepted.
// Immutable after construction; safe for concurrent use.
type Schema struct {
	rules    map[string]*Rule
	order    []string
	strict   bool
	logger   *slog.Logger
	observer func(string)
}

// Option configures a Schema.
type Option func(*Schema)

// WithStrict controls whether columns absent from the schema are
// violations. Schemas are strict by default.
func WithStrict(strict bool) Option {
	return func(s *Schema) {
		s.strict = strict
	}
}

// WithLogger sets the logger each violation is emitted to as it is
// found. The default logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Schema) {
		s.logger = logger
	}
}

// WithObserver registers a callback invoked with each violation message
// as it is produced. This replaces printing from inside validation:
// wire the observer to whatever sink the host application uses.
func WithObserver(fn func(message string)) Option {
	return func(s *Schema) {
		s.observer = fn
	}
}

// New creates a Schema from a rule map. Configuration errors (nil map,
// empty column name) fail here, never at Validate time.
func New(rules map[string]*Rule, opts ...Option) (*Schema, error) {
	if rules == nil {
		return nil, fmt.Errorf("%w: rule map is nil", ErrInvalidSchema)
	}

	order := make([]string, 0, len(rules))
	for column := range rules {
		if column == "" {
			return nil, fmt.Errorf("%w: empty column name", ErrInvalidSchema)
		}
		order = append(order, column)
	}
	// The rule map has no iteration order of its own; fixing one at
	// construction keeps the message list identical across calls.
	sort.Strings(order)

	copied := make(map[string]*Rule, len(rules))
	for column, rule := range rules {
		copied[column] = rule
	}

	s := &Schema{
		rules:  copied,
		order:  order,
		strict: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// MustNew is New but panics on configuration errors. Intended for
// schemas defined at program start.
func MustNew(rules map[string]*Rule, opts ...Option) *Schema {
	s, err := New(rules, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Strict reports whether the schema rejects unexpected columns.
func (s *Schema) Strict() bool { return s.strict }

// Columns returns the schema's column names in validation order.
func (s *Schema) Columns() []string {
	return append([]string(nil), s.order...)
}

// Rule returns the rule for a column, which may be nil for a
// presence-only column. The second result reports whether the column is
// part of the schema.
func (s *Schema) Rule(column string) (*Rule, bool) {
	rule, ok := s.rules[column]
	return rule, ok
}

// Validate checks a frame against the schema and returns a report of
// every violation found. All checks run even after earlier ones fail:
// strict-mode extra-column detection over the frame's columns, then for
// each schema column a presence check followed by per-value rule checks
// on the column's distinct values.
func (s *Schema) Validate(df dataframe.DataFrame) *Report {
	report := &Report{}

	if s.strict {
		for _, column := range df.Columns() {
			if _, ok := s.rules[column]; !ok {
				s.record(report, fmt.Sprintf("Column '%s' not found in Schema", column))
			}
		}
	}

	for _, column := range s.order {
		if !df.HasColumn(column) {
			// No rule checks on a missing column.
			s.record(report, fmt.Sprintf("Column '%s' not found in DataFrame", column))
			continue
		}
		rule := s.rules[column]
		if rule == nil {
			continue
		}
		for _, message := range rule.ValidateColumn(df.Distinct(column), column) {
			s.record(report, message)
		}
	}

	return report
}

// Valid is shorthand for Validate(df).Valid().
func (s *Schema) Valid(df dataframe.DataFrame) bool {
	return s.Validate(df).Valid()
}

func (s *Schema) record(report *Report, message string) {
	report.messages = append(report.messages, message)
	if s.logger != nil {
		s.logger.Warn("schema violation", "message", message)
	}
	if s.observer != nil {
		s.observer(message)
	}
}
