package utils

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "plain", input: "42", want: 42},
		{name: "padded", input: "  7 ", want: 7},
		{name: "negative", input: "-3", want: -3},
		{name: "word", input: "seven", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToInt(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedInput) {
					t.Fatalf("expected ErrMalformedInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ToInt(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestInts(t *testing.T) {
	got, err := Ints[int64](" 79 14   55 13 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]int64{79, 14, 55, 13}, got); diff != "" {
		t.Errorf("Ints mismatch (-want +got):\n%s", diff)
	}

	if _, err := Ints[int]("1 2 three"); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("expected ErrMalformedInput, got %v", err)
	}
}

func TestInts_OutOfRange(t *testing.T) {
	if _, err := Ints[uint8]("1 300"); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("uint8: expected ErrMalformedInput, got %v", err)
	}
	if _, err := Ints[int8]("-200"); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("int8: expected ErrMalformedInput, got %v", err)
	}
	if _, err := Ints[uint64]("-1"); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("uint64: expected ErrMalformedInput, got %v", err)
	}

	got, err := Ints[int8]("-128 127")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]int8{-128, 127}, got); diff != "" {
		t.Errorf("Ints mismatch (-want +got):\n%s", diff)
	}
}

func TestLines(t *testing.T) {
	got := Lines("a\r\n\nb\n   \nc\n")
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
}

func TestSections(t *testing.T) {
	got := Sections("seeds: 1 2\n\nmap a:\n1 2 3\n\n\nmap b:\n4 5 6\n")
	want := []string{"seeds: 1 2", "map a:\n1 2 3", "map b:\n4 5 6"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sections mismatch (-want +got):\n%s", diff)
	}
}

func TestCutLabel(t *testing.T) {
	label, rest, err := CutLabel("Card  1: 41 48 | 83 86", ":")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != "Card  1" || rest != " 41 48 | 83 86" {
		t.Errorf("got label=%q rest=%q", label, rest)
	}

	if _, _, err := CutLabel("no separator", ":"); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("expected ErrMalformedInput, got %v", err)
	}
}
