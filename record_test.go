package slysheets_test

import (
	"errors"
	"testing"

	slysheets "github.com/dunkyl/go-slysheets"
)

var testHeaders = map[string]int{"Foo": 0, "Bar": 1}

func TestRecordAt(t *testing.T) {
	rec := slysheets.NewRecord([]slysheets.CellValue{int64(1), "a"}, testHeaders)

	v, err := rec.At(0)
	if err != nil {
		t.Fatalf("At(0) error: %v", err)
	}
	if v != int64(1) {
		t.Errorf("At(0) = %v, want 1", v)
	}

	for _, i := range []int{-1, 2} {
		if _, err := rec.At(i); !errors.Is(err, slysheets.ErrIndexOutOfRange) {
			t.Errorf("At(%d) error = %v, want ErrIndexOutOfRange", i, err)
		}
	}
}

func TestRecordGet(t *testing.T) {
	rec := slysheets.NewRecord([]slysheets.CellValue{int64(1), "a"}, testHeaders)

	tests := []struct {
		name string
		want slysheets.CellValue
	}{
		{"Foo", int64(1)},
		{"Bar", "a"},
		{"A", int64(1)},
		{"b", "a"},
	}
	for _, tt := range tests {
		v, err := rec.Get(tt.name)
		if err != nil {
			t.Errorf("Get(%q) error: %v", tt.name, err)
			continue
		}
		if v != tt.want {
			t.Errorf("Get(%q) = %v, want %v", tt.name, v, tt.want)
		}
	}

	for _, name := range []string{"Baz", "C", "not a column"} {
		if _, err := rec.Get(name); !errors.Is(err, slysheets.ErrUnknownColumn) {
			t.Errorf("Get(%q) error = %v, want ErrUnknownColumn", name, err)
		}
	}
}

// A header shadows the column letter it happens to share.
func TestRecordGet_HeaderShadowsLetter(t *testing.T) {
	rec := slysheets.NewRecord(
		[]slysheets.CellValue{"first", "second"},
		map[string]int{"A": 1},
	)
	v, err := rec.Get("A")
	if err != nil {
		t.Fatalf("Get(A) error: %v", err)
	}
	if v != "second" {
		t.Errorf("Get(A) = %v, want second", v)
	}
}

func TestRecordGet_NoHeaders(t *testing.T) {
	rec := slysheets.NewRecord([]slysheets.CellValue{"x", "y"}, nil)
	v, err := rec.Get("B")
	if err != nil {
		t.Fatalf("Get(B) error: %v", err)
	}
	if v != "y" {
		t.Errorf("Get(B) = %v, want y", v)
	}
	if _, err := rec.Get("Foo"); !errors.Is(err, slysheets.ErrUnknownColumn) {
		t.Errorf("Get(Foo) error = %v, want ErrUnknownColumn", err)
	}
}

func TestRecordTypedGetters(t *testing.T) {
	rec := slysheets.NewRecord(
		[]slysheets.CellValue{int64(42), "name", 3.5, nil, "17"},
		map[string]int{"N": 0, "S": 1, "F": 2, "E": 3, "NS": 4},
	)

	if got := rec.StringOr("S", "d"); got != "name" {
		t.Errorf("StringOr(S) = %q", got)
	}
	if got := rec.StringOr("N", "d"); got != "42" {
		t.Errorf("StringOr(N) = %q", got)
	}
	if got := rec.StringOr("E", "d"); got != "d" {
		t.Errorf("StringOr(E) = %q, want default", got)
	}
	if got := rec.StringOr("missing", "d"); got != "d" {
		t.Errorf("StringOr(missing) = %q, want default", got)
	}
	if got := rec.Int64Or("N", -1); got != 42 {
		t.Errorf("Int64Or(N) = %d", got)
	}
	if got := rec.Int64Or("NS", -1); got != 17 {
		t.Errorf("Int64Or(NS) = %d", got)
	}
	if got := rec.Int64Or("S", -1); got != -1 {
		t.Errorf("Int64Or(S) = %d, want default", got)
	}
	if got := rec.Float64Or("F", -1); got != 3.5 {
		t.Errorf("Float64Or(F) = %v", got)
	}
	if got := rec.Float64Or("N", -1); got != 42 {
		t.Errorf("Float64Or(N) = %v", got)
	}
}
