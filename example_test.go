package skooma_test

import (
	"fmt"

	"github.com/aretw0/skooma"
	"github.com/aretw0/skooma/pkg/dataframe"
)

// Example demonstrates validating a small frame against a strict schema
// with a predicate-carrying integer rule.
func Example() {
	schema := skooma.MustNew(map[string]*skooma.Rule{
		"age":  skooma.Integer(skooma.NonNegative),
		"name": skooma.String(),
	})

	df := dataframe.FromColumns(map[string][]any{
		"age":  {5, -1, 5},
		"name": {"ana", "bo"},
	})

	report := schema.Validate(df)
	fmt.Println(report.Valid())
	for _, msg := range report.Messages() {
		fmt.Println(msg)
	}
	// Output:
	// false
	// Invalid value in column 'age': -1
}

// ExampleSchema_Validate_lenient shows that a non-strict schema ignores
// columns it has no rules for.
func ExampleSchema_Validate_lenient() {
	schema := skooma.MustNew(map[string]*skooma.Rule{
		"age": skooma.Integer(),
	}, skooma.WithStrict(false))

	df := dataframe.FromColumns(map[string][]any{
		"age":   {1, 2},
		"extra": {0, 0},
	})

	fmt.Println(schema.Validate(df).Valid())
	// Output:
	// true
}
