/*
Package skooma validates column-oriented data against declarative schemas.

A Schema maps column names to rules. A rule constrains a column to a
kind family (integers, floats, booleans, strings, timestamps) and may
carry extra predicates; a nil rule only requires the column to exist.
Validation walks every check and accumulates every violation found
instead of stopping at the first, so a single report describes the whole
table.

# Basic usage

	nonNegative := func(v any) (bool, error) {
		i, ok := v.(int)
		if !ok {
			return false, fmt.Errorf("expected int, got %T", v)
		}
		return i >= 0, nil
	}

	schema, err := skooma.New(map[string]*skooma.Rule{
		"age":  skooma.Integer(nonNegative),
		"name": skooma.String(),
	})
	if err != nil {
		log.Fatal(err)
	}

	df := dataframe.FromColumns(map[string][]any{
		"age":  {5, -1, 5},
		"name": {"ana", "bo", "ana"},
	})

	report := schema.Validate(df)
	if !report.Valid() {
		for _, msg := range report.Messages() {
			fmt.Println(msg)
		}
	}

By default a schema is strict: columns in the data that have no rule are
reported as violations. Build with WithStrict(false) to allow extra
columns.

# Architecture

The core is the root package plus pkg/kind (runtime type tags) and
pkg/dataframe (the column-oriented data contract). Around it sit
adapters in the style of the other aretw0 projects: pkg/guard wraps
functions so their frame inputs and output are validated before results
propagate, pkg/schemafile loads schema definitions from YAML, and
pkg/adapters exposes validation over HTTP, MCP and schema storage on
memory or Redis. The cmd/skooma CLI ties these together.

Schemas and rules are immutable after construction and Validate never
mutates shared state, so a single Schema is safe for concurrent use.
*/
package skooma
