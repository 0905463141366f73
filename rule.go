package skooma

import (
	"fmt"

	"github.com/aretw0/skooma/pkg/kind"
)

// Predicate is an extra per-value constraint attached to a rule. It
// returns whether the value is acceptable; a non-nil error marks the
// predicate itself as having faulted on that value, which is reported
// as a violation rather than propagated.
type Predicate func(value any) (bool, error)

// Status classifies the outcome of checking one value against a rule.
type Status int

const (
	// StatusValid means the value passed the kind check and every predicate.
	StatusValid Status = iota
	// StatusInvalidValue means the value failed the kind check or a
	// predicate returned false.
	StatusInvalidValue
	// StatusPredicateFault means a predicate itself failed while
	// evaluating the value.
	StatusPredicateFault
)

// Outcome is the result of checking a single value.
type Outcome struct {
	Status Status
	// Fault carries the predicate failure text when Status is
	// StatusPredicateFault.
	Fault string
}

// Rule constrains the values of a single column: the value's runtime
// kind must belong to the rule's kind set (unless the set is empty) and
// every predicate must hold. Rules are immutable after construction.
type Rule struct {
	name       string
	kinds      kind.Set
	predicates []Predicate
}

// NewRule creates a rule with an arbitrary kind set. An empty set means
// no kind restriction; with no predicates either, every value passes.
func NewRule(kinds kind.Set, preds ...Predicate) *Rule {
	name := "custom"
	if kinds.IsEmpty() {
		name = "any"
	}
	return &Rule{name: name, kinds: kinds, predicates: preds}
}

// Integer accepts all signed and unsigned fixed-width integer values.
func Integer(preds ...Predicate) *Rule {
	return &Rule{name: "int", kinds: kind.Integers, predicates: preds}
}

// Float accepts float32 and float64 values.
func Float(preds ...Predicate) *Rule {
	return &Rule{name: "float", kinds: kind.Floats, predicates: preds}
}

// Boolean accepts boolean values.
func Boolean(preds ...Predicate) *Rule {
	return &Rule{name: "bool", kinds: kind.Booleans, predicates: preds}
}

// String accepts string values.
func String(preds ...Predicate) *Rule {
	return &Rule{name: "string", kinds: kind.Strings, predicates: preds}
}

// DateTime accepts time.Time values.
func DateTime(preds ...Predicate) *Rule {
	return &Rule{name: "datetime", kinds: kind.Timestamps, predicates: preds}
}

// Name returns the rule's family name ("int", "float", ..., "custom").
func (r *Rule) Name() string { return r.name }

// Kinds returns the rule's accepted kind set.
func (r *Rule) Kinds() kind.Set { return r.kinds }

// Check tests a single value. The kind check runs first; predicates are
// only consulted for values of an accepted kind, so a predicate never
// sees a value outside the rule's family.
func (r *Rule) Check(value any) Outcome {
	if !r.kinds.IsEmpty() && !r.kinds.Has(kind.Of(value)) {
		return Outcome{Status: StatusInvalidValue}
	}
	for _, pred := range r.predicates {
		ok, err := runPredicate(pred, value)
		if err != nil {
			return Outcome{Status: StatusPredicateFault, Fault: err.Error()}
		}
		if !ok {
			return Outcome{Status: StatusInvalidValue}
		}
	}
	return Outcome{Status: StatusValid}
}

// runPredicate isolates predicate faults: a panicking predicate is
// converted into an error so one bad predicate cannot abort validation
// of the rest of the table.
func runPredicate(pred Predicate, value any) (ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			ok = false
			err = fmt.Errorf("%v", rec)
		}
	}()
	return pred(value)
}

// ValidateColumn checks a column's distinct values and returns one
// formatted message per violating value, in input order.
func (r *Rule) ValidateColumn(distinct []any, column string) []string {
	var messages []string
	for _, value := range distinct {
		switch out := r.Check(value); out.Status {
		case StatusInvalidValue:
			messages = append(messages, fmt.Sprintf("Invalid value in column '%s': %v", column, value))
		case StatusPredicateFault:
			messages = append(messages, fmt.Sprintf("Invalid value in column '%s': %v (%s)", column, value, out.Fault))
		}
	}
	return messages
}
