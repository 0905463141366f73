package dataframe

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestFromColumns_OrderSorted(t *testing.T) {
	f := FromColumns(map[string][]any{
		"zeta":  {1},
		"alpha": {2},
		"mid":   {3},
	})

	want := []string{"alpha", "mid", "zeta"}
	if got := f.Columns(); !reflect.DeepEqual(got, want) {
		t.Errorf("Columns() = %v, want %v", got, want)
	}
}

func TestFromRecords(t *testing.T) {
	f := FromRecords([]map[string]any{
		{"age": 5, "name": "a"},
		{"age": -1},
		{"age": 5, "name": "b", "extra": true},
	})

	if got := f.Columns(); !reflect.DeepEqual(got, []string{"age", "name", "extra"}) {
		t.Errorf("Columns() = %v", got)
	}
	if got := f.Column("name"); !reflect.DeepEqual(got, []any{"a", nil, "b"}) {
		t.Errorf("Column(name) = %v", got)
	}
	// Column introduced by a later record is backfilled with nil.
	if got := f.Column("extra"); !reflect.DeepEqual(got, []any{nil, nil, true}) {
		t.Errorf("Column(extra) = %v", got)
	}
}

func TestDistinct(t *testing.T) {
	f := FromColumns(map[string][]any{
		"age": {5, -1, 5, 2, -1},
	})

	if got := f.Distinct("age"); !reflect.DeepEqual(got, []any{5, -1, 2}) {
		t.Errorf("Distinct(age) = %v", got)
	}
	if got := f.Distinct("missing"); got != nil {
		t.Errorf("Distinct(missing) = %v, want nil", got)
	}
}

func TestDistinct_NonComparable(t *testing.T) {
	f := FromColumns(map[string][]any{
		"blobs": {[]byte("a"), []byte("a")},
	})

	// Non-comparable values cannot be deduplicated; both survive.
	if got := f.Distinct("blobs"); len(got) != 2 {
		t.Errorf("Distinct(blobs) = %v, want 2 values", got)
	}
}

func TestHasColumn(t *testing.T) {
	f := FromColumns(map[string][]any{"a": {1}})

	if !f.HasColumn("a") {
		t.Error("HasColumn(a) = false")
	}
	if f.HasColumn("b") {
		t.Error("HasColumn(b) = true")
	}
}

func TestFromCSV(t *testing.T) {
	data := "age,name,signup,active,score\n5,ana,2024-01-02,true,1.5\n-1,bo,2024-01-03,false,2\n"

	f, err := FromCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("FromCSV() error = %v", err)
	}

	if got := f.Columns(); !reflect.DeepEqual(got, []string{"age", "name", "signup", "active", "score"}) {
		t.Errorf("Columns() = %v", got)
	}
	if got := f.Column("age"); !reflect.DeepEqual(got, []any{int64(5), int64(-1)}) {
		t.Errorf("Column(age) = %v", got)
	}
	if got := f.Column("active"); !reflect.DeepEqual(got, []any{true, false}) {
		t.Errorf("Column(active) = %v", got)
	}
	// "2" parses as int64 before float64; the score column is mixed.
	if got := f.Column("score"); !reflect.DeepEqual(got, []any{1.5, int64(2)}) {
		t.Errorf("Column(score) = %v", got)
	}
	if _, ok := f.Column("signup")[0].(time.Time); !ok {
		t.Errorf("Column(signup)[0] = %T, want time.Time", f.Column("signup")[0])
	}
}

func TestFromCSV_WithoutInference(t *testing.T) {
	f, err := FromCSV(strings.NewReader("age\n5\n"), WithoutInference())
	if err != nil {
		t.Fatalf("FromCSV() error = %v", err)
	}
	if got := f.Column("age"); !reflect.DeepEqual(got, []any{"5"}) {
		t.Errorf("Column(age) = %v", got)
	}
}

func TestFromCSV_EmptyCellIsNil(t *testing.T) {
	f, err := FromCSV(strings.NewReader("age,name\n5,\n"))
	if err != nil {
		t.Fatalf("FromCSV() error = %v", err)
	}
	if got := f.Column("name"); !reflect.DeepEqual(got, []any{nil}) {
		t.Errorf("Column(name) = %v", got)
	}
}

func TestFromJSON_Columns(t *testing.T) {
	f, err := FromJSON(strings.NewReader(`{"age": [5, -1], "score": [1.5, 2.5]}`))
	if err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}
	if got := f.Column("age"); !reflect.DeepEqual(got, []any{int64(5), int64(-1)}) {
		t.Errorf("Column(age) = %v", got)
	}
	if got := f.Column("score"); !reflect.DeepEqual(got, []any{1.5, 2.5}) {
		t.Errorf("Column(score) = %v", got)
	}
}

func TestFromJSON_Records(t *testing.T) {
	f, err := FromJSON(strings.NewReader(`[{"age": 5, "name": "a"}, {"age": -1, "name": "b"}]`))
	if err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}
	if got := f.Column("age"); !reflect.DeepEqual(got, []any{int64(5), int64(-1)}) {
		t.Errorf("Column(age) = %v", got)
	}
}

func TestFromJSON_Invalid(t *testing.T) {
	if _, err := FromJSON(strings.NewReader(`"nope"`)); err == nil {
		t.Error("FromJSON() should reject a bare string")
	}
	if _, err := FromJSON(strings.NewReader(`{"age": 5}`)); err == nil {
		t.Error("FromJSON() should reject a non-array column")
	}
}
