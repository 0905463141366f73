package skooma

import (
	"fmt"
	"math"
	"reflect"
	"sync"
)

// predicateRegistry maps names to predicates so schema definition files
// can reference predicates declaratively.
type predicateRegistry struct {
	mu    sync.RWMutex
	preds map[string]Predicate
}

var registry = &predicateRegistry{preds: make(map[string]Predicate)}

// RegisterPredicate makes a predicate available to schema definitions
// under the given name. An existing predicate with the same name is
// overwritten.
func RegisterPredicate(name string, pred Predicate) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.preds[name] = pred
}

// LookupPredicate resolves a named predicate. It returns
// ErrUnknownPredicate if the name was never registered.
func LookupPredicate(name string) (Predicate, error) {
	registry.mu.RLock()
	pred, ok := registry.preds[name]
	registry.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPredicate, name)
	}
	return pred, nil
}

func init() {
	RegisterPredicate("non_negative", NonNegative)
	RegisterPredicate("positive", Positive)
	RegisterPredicate("non_empty", NonEmpty)
	RegisterPredicate("finite", Finite)
}

// NonNegative holds for numeric values >= 0.
func NonNegative(value any) (bool, error) {
	f, err := toFloat(value)
	if err != nil {
		return false, err
	}
	return f >= 0, nil
}

// Positive holds for numeric values > 0.
func Positive(value any) (bool, error) {
	f, err := toFloat(value)
	if err != nil {
		return false, err
	}
	return f > 0, nil
}

// NonEmpty holds for non-empty strings.
func NonEmpty(value any) (bool, error) {
	s, ok := value.(string)
	if !ok {
		return false, fmt.Errorf("expected string, got %T", value)
	}
	return s != "", nil
}

// Finite holds for floats that are neither NaN nor infinite.
func Finite(value any) (bool, error) {
	f, err := toFloat(value)
	if err != nil {
		return false, err
	}
	return !math.IsNaN(f) && !math.IsInf(f, 0), nil
}

// toFloat widens any numeric value to float64 for comparison.
func toFloat(value any) (float64, error) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	default:
		return 0, fmt.Errorf("expected numeric value, got %T", value)
	}
}
