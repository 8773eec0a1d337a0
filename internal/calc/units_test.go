package calc

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestConvertUnits(t *testing.T) {
	tests := []struct {
		name     string
		category string
		unit     string
		value    float64
		expected map[string]float64 // target unit symbol -> rounded value
	}{
		{
			name:     "Nautical miles",
			category: "distance",
			unit:     "nm",
			value:    100,
			expected: map[string]float64{"km": 185.2, "sm": 115.08},
		},
		{
			name:     "Feet by name",
			category: "Distance",
			unit:     "feet",
			value:    1000,
			expected: map[string]float64{"m": 304.8},
		},
		{
			name:     "Knots",
			category: "speed",
			unit:     "kt",
			value:    120,
			expected: map[string]float64{"km/h": 222.24, "mph": 138.09, "m/s": 61.73},
		},
		{
			name:     "Hectopascal",
			category: "pressure",
			unit:     "hPa",
			value:    1013,
			expected: map[string]float64{"inHg": 29.91},
		},
		{
			name:     "Freezing point",
			category: "temperature",
			unit:     "°C",
			value:    0,
			expected: map[string]float64{"°F": 32},
		},
		{
			name:     "Fahrenheit",
			category: "temperature",
			unit:     "fahrenheit",
			value:    212,
			expected: map[string]float64{"°C": 100},
		},
		{
			name:     "Pounds",
			category: "weight",
			unit:     "lb",
			value:    100,
			expected: map[string]float64{"kg": 45.36},
		},
		{
			name:     "Gallons of fuel",
			category: "volume",
			unit:     "US gal",
			value:    10,
			expected: map[string]float64{"L": 37.85},
		},
	}

	table := DefaultConversionTable()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.Convert(tt.category, tt.unit, tt.value)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("Convert() returned %d results, want %d: %v", len(got), len(tt.expected), got)
			}
			for _, result := range got {
				want, ok := tt.expected[result.To.Symbol]
				if !ok {
					t.Errorf("unexpected target unit %q", result.To.Symbol)
					continue
				}
				if math.Abs(result.Rounded()-want) > 1e-9 {
					t.Errorf("%s -> %s = %v, want %v", result.From.Symbol, result.To.Symbol, result.Rounded(), want)
				}
			}
		})
	}
}

func TestConvertUnitsErrors(t *testing.T) {
	table := DefaultConversionTable()

	if _, err := table.Convert("luminosity", "cd", 1); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("Convert() error = %v, want %v", err, ErrUnknownCategory)
	}
	if _, err := table.Convert("distance", "furlong", 1); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("Convert() error = %v, want %v", err, ErrUnknownUnit)
	}
	// Meters only appear as a target unit.
	if _, err := table.Convert("distance", "m", 1); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("Convert() error = %v, want %v", err, ErrUnknownUnit)
	}
	if _, err := table.Convert("distance", "nm", math.NaN()); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Convert() error = %v, want %v", err, ErrInvalidInput)
	}
}

func TestConversionTableOrder(t *testing.T) {
	table := DefaultConversionTable()

	expected := []string{"distance", "speed", "pressure", "temperature", "weight", "volume"}
	if got := table.Categories(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Categories() = %v, want %v", got, expected)
	}

	distance, err := table.Category("distance")
	if err != nil {
		t.Fatalf("Category() error = %v", err)
	}
	units := distance.SourceUnits()
	if !reflect.DeepEqual(units, []Unit{NauticalMiles, Feet}) {
		t.Errorf("SourceUnits() = %v, want [nm ft]", units)
	}
}

func TestConversionResultString(t *testing.T) {
	result := ConversionResult{From: NauticalMiles, To: Kilometers, Value: 100, Converted: 185.2}
	if got := result.String(); got != "100 nm = 185.20 km" {
		t.Errorf("String() = %q", got)
	}
}
