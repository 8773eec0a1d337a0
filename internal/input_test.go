package internal

import (
	"errors"
	"testing"

	"github.com/micutio/airtoolbox/internal/calc"
)

func TestParseOptionalFloat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *float64
		err      error
	}{
		{name: "blank", input: "   ", expected: nil, err: nil},
		{name: "integer", input: "1013", expected: calc.Float(1013), err: nil},
		{name: "padded negative", input: " -12.5 ", expected: calc.Float(-12.5), err: nil},
		{name: "garbage", input: "12kt", expected: nil, err: calc.ErrInvalidInput},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ParseOptionalFloat("value", test.input)
			if !errors.Is(err, test.err) {
				t.Fatalf("ParseOptionalFloat(%q) error = %v, want %v", test.input, err, test.err)
			}
			switch {
			case got == nil && test.expected == nil:
			case got == nil || test.expected == nil:
				t.Errorf("ParseOptionalFloat(%q) = %v, want %v", test.input, got, test.expected)
			case *got != *test.expected:
				t.Errorf("ParseOptionalFloat(%q) = %v, want %v", test.input, *got, *test.expected)
			}
		})
	}
}

func TestParseFloatRequiresValue(t *testing.T) {
	if _, err := ParseFloat("TAS", ""); !errors.Is(err, calc.ErrMissingRequiredField) {
		t.Errorf("ParseFloat(\"\") error = %v, want %v", err, calc.ErrMissingRequiredField)
	}
	got, err := ParseFloat("TAS", "120")
	if err != nil || got != 120 {
		t.Errorf("ParseFloat(\"120\") = %v, %v, want 120, nil", got, err)
	}
}

func TestParseWind(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected calc.WindVector
		err      error
	}{
		{name: "standard", input: "090/23", expected: calc.WindVector{DirectionDeg: 90, SpeedKts: 23}},
		{name: "spaces", input: " 270 / 5 ", expected: calc.WindVector{DirectionDeg: 270, SpeedKts: 5}},
		{name: "north as 360", input: "360/10", expected: calc.WindVector{DirectionDeg: 360, SpeedKts: 10}},
		{name: "empty", input: "", err: calc.ErrMissingRequiredField},
		{name: "no separator", input: "09023", err: calc.ErrInvalidInput},
		{name: "too many tokens", input: "090/23/5", err: calc.ErrInvalidInput},
		{name: "decimal", input: "090/2.5", err: calc.ErrInvalidInput},
		{name: "direction out of range", input: "361/10", err: calc.ErrInvalidInput},
		{name: "negative speed", input: "090/-5", err: calc.ErrInvalidInput},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ParseWind(test.input)
			if !errors.Is(err, test.err) {
				t.Fatalf("ParseWind(%q) error = %v, want %v", test.input, err, test.err)
			}
			if got != test.expected {
				t.Errorf("ParseWind(%q) = %v, want %v", test.input, got, test.expected)
			}
		})
	}
}

func TestParseRunway(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		err      error
	}{
		{name: "two digits", input: "09", expected: 9},
		{name: "one digit", input: "9", expected: 9},
		{name: "parallel left", input: "27l", expected: 27},
		{name: "center", input: "18C", expected: 18},
		{name: "north", input: "36", expected: 36},
		{name: "empty", input: " ", err: calc.ErrMissingRequiredField},
		{name: "zero", input: "00", err: calc.ErrInvalidInput},
		{name: "too high", input: "37", err: calc.ErrInvalidInput},
		{name: "letters", input: "AB", err: calc.ErrInvalidInput},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ParseRunway(test.input)
			if !errors.Is(err, test.err) {
				t.Fatalf("ParseRunway(%q) error = %v, want %v", test.input, err, test.err)
			}
			if got.NumberCode != test.expected {
				t.Errorf("ParseRunway(%q) = %d, want %d", test.input, got.NumberCode, test.expected)
			}
		})
	}
}
