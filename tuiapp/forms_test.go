package tuiapp

import (
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/table"
	"github.com/micutio/airtoolbox/internal/calc"
)

func TestCalculatorForms(t *testing.T) {
	tests := []struct {
		name     string
		compute  func([]string) ([]table.Row, error)
		values   []string
		expected map[string]string
	}{
		{
			name:    "tailwind",
			compute: computeWindComponents,
			values:  []string{"27L", "090/10"},
			expected: map[string]string{
				"Tailwind":  "10 kt",
				"Crosswind": "0 kt Right",
			},
		},
		{
			name:    "crosswind from the left",
			compute: computeWindComponents,
			values:  []string{"36", "270/15"},
			expected: map[string]string{
				"Headwind":  "0 kt",
				"Crosswind": "15 kt Left",
			},
		},
		{
			name:    "calm wind correction",
			compute: computeWindCorrection,
			values:  []string{"90", "120", "000/0"},
			expected: map[string]string{
				"Heading":      "090°",
				"Drift":        "0.0°",
				"Ground speed": "120 kt",
			},
		},
		{
			name:    "standard day altitude",
			compute: computeAltitude,
			values:  []string{"5000", "", "", ""},
			expected: map[string]string{
				"Pressure altitude": "5000 ft",
				"Density altitude":  "5000 ft",
				"ISA temperature":   "5.1 °C",
				"ISA deviation":     "+0.0 °C",
			},
		},
		{
			name:    "low pressure altitude",
			compute: computeAltitude,
			values:  []string{"5000", "1003", "10", "1000"},
			expected: map[string]string{
				"Pressure altitude": "5300 ft",
				"Height AGL":        "4000 ft",
			},
		},
		{
			name:    "airspeed at sea level",
			compute: computeAirspeed,
			values:  []string{"100", "0", "", "", "", "", ""},
			expected: map[string]string{
				"TAS":  "100 kt",
				"Mach": "0.151",
			},
		},
		{
			name:    "three degree glide path",
			compute: computeGradient,
			values:  []string{"3", ""},
			expected: map[string]string{
				"Percent": "5.24 %",
				"ft/nm":   "318.4",
			},
		},
		{
			name:    "climb rate",
			compute: computeRateOfClimb,
			values:  []string{"300", "120"},
			expected: map[string]string{
				"Rate": "600 ft/min",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rows, err := test.compute(test.values)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got := make(map[string]string, len(rows))
			for _, row := range rows {
				got[row[0]] = row[1]
			}
			for label, want := range test.expected {
				if got[label] != want {
					t.Errorf("%s = %q, want %q", label, got[label], want)
				}
			}
		})
	}
}

func TestCalculatorFormErrors(t *testing.T) {
	tests := []struct {
		name     string
		compute  func([]string) ([]table.Row, error)
		values   []string
		expected error
	}{
		{
			name:     "missing runway",
			compute:  computeWindComponents,
			values:   []string{"", "090/10"},
			expected: calc.ErrMissingRequiredField,
		},
		{
			name:     "no wind correction solution",
			compute:  computeWindCorrection,
			values:   []string{"0", "50", "090/60"},
			expected: calc.ErrNoSolution,
		},
		{
			name:     "missing altitude",
			compute:  computeAltitude,
			values:   []string{"", "1013", "", ""},
			expected: calc.ErrMissingRequiredField,
		},
		{
			name:     "partial wind",
			compute:  computeAirspeed,
			values:   []string{"100", "5000", "", "", "90", "", ""},
			expected: calc.ErrIncompleteWindData,
		},
		{
			name:     "unknown gradient unit",
			compute:  computeGradient,
			values:   []string{"3", "furlongs"},
			expected: calc.ErrInvalidInput,
		},
		{
			name:     "letters as number",
			compute:  computeRateOfClimb,
			values:   []string{"abc", "120"},
			expected: calc.ErrInvalidInput,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := test.compute(test.values)
			if !errors.Is(err, test.expected) {
				t.Errorf("error = %v, want %v", err, test.expected)
			}
		})
	}
}

func TestComputeConversion(t *testing.T) {
	conversions := calc.DefaultConversionTable()

	rows, err := computeConversion(conversions, "temperature", "°C", "100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0][1] != "212.00 °F" {
		t.Errorf("rows = %v, want [Fahrenheit 212.00 °F]", rows)
	}

	if _, err := computeConversion(conversions, "temperature", "K", "100"); !errors.Is(err, calc.ErrUnknownUnit) {
		t.Errorf("error = %v, want %v", err, calc.ErrUnknownUnit)
	}
}
