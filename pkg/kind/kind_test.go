package kind

import (
	"testing"
	"time"
)

type age int

func TestOf(t *testing.T) {
	tests := []struct {
		value any
		want  Kind
	}{
		{true, Bool},
		{42, Int},
		{int8(1), Int8},
		{int16(1), Int16},
		{int32(1), Int32},
		{int64(1), Int64},
		{uint(1), Uint},
		{uint8(1), Uint8},
		{uint16(1), Uint16},
		{uint32(1), Uint32},
		{uint64(1), Uint64},
		{float32(1.5), Float32},
		{1.5, Float64},
		{"hello", String},
		{time.Now(), Time},
		{age(30), Int},
		{nil, Invalid},
		{[]int{1}, Invalid},
		{map[string]int{}, Invalid},
	}

	for _, tt := range tests {
		if got := Of(tt.value); got != tt.want {
			t.Errorf("Of(%#v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestSet(t *testing.T) {
	s := NewSet(Int, String)

	if !s.Has(Int) || !s.Has(String) {
		t.Error("set should contain Int and String")
	}
	if s.Has(Bool) {
		t.Error("set should not contain Bool")
	}
	if s.IsEmpty() {
		t.Error("set should not be empty")
	}
	if !NewSet().IsEmpty() {
		t.Error("empty set should report empty")
	}
}

func TestFamilies(t *testing.T) {
	for _, k := range []Kind{Int, Int8, Int16, Int32, Int64, Uint, Uint8, Uint16, Uint32, Uint64} {
		if !Integers.Has(k) {
			t.Errorf("Integers should contain %v", k)
		}
	}
	if Integers.Has(Float64) {
		t.Error("Integers should not contain Float64")
	}
	if !Floats.Has(Float32) || !Floats.Has(Float64) {
		t.Error("Floats should contain both widths")
	}
	if !Booleans.Has(Bool) || !Strings.Has(String) || !Timestamps.Has(Time) {
		t.Error("single-kind families misconfigured")
	}
}

func TestSetString(t *testing.T) {
	if got := NewSet().String(); got != "any" {
		t.Errorf("empty set String() = %q, want %q", got, "any")
	}
	if got := NewSet(Bool).String(); got != "bool" {
		t.Errorf("String() = %q, want %q", got, "bool")
	}
}
