package slysheets_test

import (
	"errors"
	"testing"

	slysheets "github.com/dunkyl/go-slysheets"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		name string
		a1   string
		want slysheets.Range
	}{
		{
			name: "single cell",
			a1:   "A1",
			want: slysheets.Range{FromRow: 0, ToRow: 0, FromCol: 0, ToCol: 0},
		},
		{
			name: "single cell with page",
			a1:   "'Sheet 1'!C3",
			want: slysheets.Range{Page: "Sheet 1", FromRow: 2, ToRow: 2, FromCol: 2, ToCol: 2},
		},
		{
			name: "bounded range",
			a1:   "A1:B2",
			want: slysheets.Range{FromRow: 0, ToRow: 1, FromCol: 0, ToCol: 1},
		},
		{
			name: "whole columns",
			a1:   "A:B",
			want: slysheets.Range{FromCol: 0, ToCol: 1, Open: true},
		},
		{
			name: "open bottom",
			a1:   "B3:D",
			want: slysheets.Range{FromRow: 2, FromCol: 1, ToCol: 3, Open: true},
		},
		{
			name: "column without row",
			a1:   "C",
			want: slysheets.Range{FromRow: 0, ToRow: 0, FromCol: 2, ToCol: 2},
		},
		{
			name: "lowercase letters",
			a1:   "aa10:ab12",
			want: slysheets.Range{FromRow: 9, ToRow: 11, FromCol: 26, ToCol: 27},
		},
		{
			name: "single char page",
			a1:   "'S'!A1",
			want: slysheets.Range{Page: "S", FromRow: 0, ToRow: 0, FromCol: 0, ToCol: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := slysheets.ParseRange(tt.a1)
			if err != nil {
				t.Fatalf("ParseRange(%q) error: %v", tt.a1, err)
			}
			if got != tt.want {
				t.Errorf("ParseRange(%q) = %+v, want %+v", tt.a1, got, tt.want)
			}
		})
	}
}

func TestParseRange_Invalid(t *testing.T) {
	for _, a1 := range []string{"", "1Z", "A1:B2:C3", "!A1", "'Sheet 1'!", "ABC1", "A0", "Foo"} {
		_, err := slysheets.ParseRange(a1)
		if !errors.Is(err, slysheets.ErrInvalidNotation) {
			t.Errorf("ParseRange(%q) error = %v, want ErrInvalidNotation", a1, err)
		}
	}
}

func TestRangeString(t *testing.T) {
	tests := []struct {
		name string
		rng  slysheets.Range
		want string
	}{
		{
			name: "single cell",
			rng:  slysheets.Range{Page: "S", FromRow: 0, ToRow: 0, FromCol: 0, ToCol: 0},
			want: "'S'!A1",
		},
		{
			name: "whole columns",
			rng:  slysheets.Range{Page: "S", FromCol: 0, ToCol: 1, Open: true},
			want: "'S'!A:B",
		},
		{
			name: "open bottom",
			rng:  slysheets.Range{Page: "S", FromRow: 2, FromCol: 0, ToCol: 1, Open: true},
			want: "'S'!A3:B",
		},
		{
			name: "bounded",
			rng:  slysheets.Range{Page: "Sheet 1", FromRow: 0, ToRow: 1, FromCol: 0, ToCol: 1},
			want: "'Sheet 1'!A1:B2",
		},
		{
			name: "single column many rows",
			rng:  slysheets.Range{Page: "S", FromRow: 0, ToRow: 4, FromCol: 2, ToCol: 2},
			want: "'S'!C1:C5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rng.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRangeRoundTrip(t *testing.T) {
	for _, a1 := range []string{
		"'Sheet 1'!A1:B2",
		"'S'!A1",
		"'S'!A:B",
		"'S'!B3:D",
		"'Data'!AA10:AB12",
	} {
		rng, err := slysheets.ParseRange(a1)
		if err != nil {
			t.Fatalf("ParseRange(%q) error: %v", a1, err)
		}
		if got := rng.String(); got != a1 {
			t.Errorf("round trip %q -> %q", a1, got)
		}
	}
}

func TestRangeShape(t *testing.T) {
	tests := []struct {
		name string
		rng  slysheets.Range
		want slysheets.Shape
	}{
		{
			name: "single cell",
			rng:  slysheets.Range{FromRow: 0, ToRow: 0, FromCol: 0, ToCol: 0},
			want: slysheets.Shape{Width: 1, Height: 1, Bounded: true},
		},
		{
			name: "two by three",
			rng:  slysheets.Range{FromRow: 1, ToRow: 3, FromCol: 0, ToCol: 1},
			want: slysheets.Shape{Width: 2, Height: 3, Bounded: true},
		},
		{
			name: "unbounded",
			rng:  slysheets.Range{FromCol: 0, ToCol: 1, Open: true},
			want: slysheets.Shape{Width: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rng.Shape(); got != tt.want {
				t.Errorf("Shape() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRangeWithPage(t *testing.T) {
	rng := slysheets.Range{FromRow: 0, ToRow: 0}
	if got := rng.WithPage("S").Page; got != "S" {
		t.Errorf("WithPage on empty page = %q, want S", got)
	}
	rng.Page = "Kept"
	if got := rng.WithPage("S").Page; got != "Kept" {
		t.Errorf("WithPage on set page = %q, want Kept", got)
	}
}
