// Package kind classifies runtime values into a small set of type tags
// used by validation rules. Tags cover the concrete scalar types a
// column-oriented dataset is expected to hold: fixed-width integers,
// floats, booleans, strings and timestamps.
package kind

import (
	"reflect"
	"strings"
	"time"
)

// Kind is a runtime type tag for a single value.
type Kind uint8

const (
	// Invalid tags values outside the supported scalar types, including nil.
	Invalid Kind = iota
	Bool
	Int
	Int8
	Int16
	Int32
	Int64
	Uint
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	String
	Time

	numKinds
)

var kindNames = [...]string{
	Invalid: "invalid",
	Bool:    "bool",
	Int:     "int",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint:    "uint",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
	String:  "string",
	Time:    "time",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Of returns the Kind of a value. Named types classify into their
// underlying kind (e.g. a "type Age int" value is Int). time.Time is
// recognized as Time; everything else, including nil, is Invalid.
func Of(v any) Kind {
	switch v.(type) {
	case nil:
		return Invalid
	case bool:
		return Bool
	case int:
		return Int
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint:
		return Uint
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case float32:
		return Float32
	case float64:
		return Float64
	case string:
		return String
	case time.Time:
		return Time
	}

	// Fallback for named types. reflect.Kind values for the scalar kinds
	// line up with a simple switch; time.Time aliases are caught above.
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool:
		return Bool
	case reflect.Int:
		return Int
	case reflect.Int8:
		return Int8
	case reflect.Int16:
		return Int16
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Uint:
		return Uint
	case reflect.Uint8:
		return Uint8
	case reflect.Uint16:
		return Uint16
	case reflect.Uint32:
		return Uint32
	case reflect.Uint64:
		return Uint64
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	case reflect.String:
		return String
	default:
		return Invalid
	}
}

// Set is a bitmask of Kinds.
type Set uint32

// NewSet builds a Set from individual kinds.
func NewSet(kinds ...Kind) Set {
	var s Set
	for _, k := range kinds {
		s |= 1 << k
	}
	return s
}

// Has reports whether k is a member of the set.
func (s Set) Has(k Kind) bool {
	return s&(1<<k) != 0
}

// IsEmpty reports whether the set contains no kinds.
func (s Set) IsEmpty() bool {
	return s == 0
}

func (s Set) String() string {
	if s.IsEmpty() {
		return "any"
	}
	var names []string
	for k := Kind(0); k < numKinds; k++ {
		if s.Has(k) {
			names = append(names, k.String())
		}
	}
	return strings.Join(names, "|")
}

// Built-in kind families. Each family is the full set of concrete widths
// a rule of that family accepts.
var (
	Integers   = NewSet(Int, Int8, Int16, Int32, Int64, Uint, Uint8, Uint16, Uint32, Uint64)
	Floats     = NewSet(Float32, Float64)
	Booleans   = NewSet(Bool)
	Strings    = NewSet(String)
	Timestamps = NewSet(Time)
)
