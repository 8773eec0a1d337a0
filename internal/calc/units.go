package calc

import (
	"fmt"
	"strings"

	"github.com/iancoleman/orderedmap"
)

// Unit is a unit of measurement known to the conversion table.
type Unit struct {
	Symbol string
	Name   string
}

// matches compares case-insensitively against the symbol and the name.
func (u Unit) matches(s string) bool {
	s = strings.TrimSpace(s)
	return strings.EqualFold(u.Symbol, s) || strings.EqualFold(u.Name, s)
}

// Units used by the default table.
var (
	NauticalMiles = Unit{Symbol: "nm", Name: "Nautical Miles"}
	Kilometers    = Unit{Symbol: "km", Name: "Kilometers"}
	StatuteMiles  = Unit{Symbol: "sm", Name: "Statute Miles"}
	Feet          = Unit{Symbol: "ft", Name: "Feet"}
	Meters        = Unit{Symbol: "m", Name: "Meters"}
	Knots         = Unit{Symbol: "kt", Name: "Knots"}
	KmPerHour     = Unit{Symbol: "km/h", Name: "Kilometers per Hour"}
	MilesPerHour  = Unit{Symbol: "mph", Name: "Miles per Hour"}
	MetersPerSec  = Unit{Symbol: "m/s", Name: "Meters per Second"}
	Hectopascal   = Unit{Symbol: "hPa", Name: "Hectopascal"}
	InchesHg      = Unit{Symbol: "inHg", Name: "Inches of Mercury"}
	Celsius       = Unit{Symbol: "°C", Name: "Celsius"}
	Fahrenheit    = Unit{Symbol: "°F", Name: "Fahrenheit"}
	Kilograms     = Unit{Symbol: "kg", Name: "Kilograms"}
	Pounds        = Unit{Symbol: "lb", Name: "Pounds"}
	Liters        = Unit{Symbol: "L", Name: "Liters"}
	USGallons     = Unit{Symbol: "US gal", Name: "US Gallons"}
)

// Conversion turns a value in one unit into another, either by a constant
// factor or, when Formula is set, by an arbitrary function.
type Conversion struct {
	From    Unit
	To      Unit
	Factor  float64
	Formula func(float64) float64
}

// Apply converts v.
func (c Conversion) Apply(v float64) float64 {
	if c.Formula != nil {
		return c.Formula(v)
	}
	return v * c.Factor
}

// Category groups the conversions of one physical quantity.
type Category struct {
	Name        string
	Label       string
	Conversions []Conversion
}

// SourceUnits lists the units conversions start from, in table order and
// without duplicates.
func (c Category) SourceUnits() []Unit {
	var units []Unit
	for _, conv := range c.Conversions {
		seen := false
		for _, u := range units {
			if u == conv.From {
				seen = true
				break
			}
		}
		if !seen {
			units = append(units, conv.From)
		}
	}
	return units
}

// ConversionResult is one converted value.
type ConversionResult struct {
	From      Unit
	To        Unit
	Value     float64
	Converted float64
}

// Rounded is the converted value to two decimal places.
func (r ConversionResult) Rounded() float64 {
	return Round(r.Converted, 2) //nolint:mnd // display precision
}

func (r ConversionResult) String() string {
	return fmt.Sprintf("%g %s = %.2f %s", r.Value, r.From.Symbol, r.Converted, r.To.Symbol)
}

// ConversionTable maps category names to their conversions, keeping the
// order in which the categories were added. It is not modified after
// construction and may be shared between goroutines.
type ConversionTable struct {
	categories *orderedmap.OrderedMap
}

// NewConversionTable builds a table from the given categories.
func NewConversionTable(categories ...Category) *ConversionTable {
	om := orderedmap.New()
	for _, c := range categories {
		om.Set(strings.ToLower(c.Name), c)
	}
	return &ConversionTable{categories: om}
}

// DefaultConversionTable holds the conversions a pilot needs most often.
//
//nolint:mnd // conversion factors
func DefaultConversionTable() *ConversionTable {
	return NewConversionTable(
		Category{
			Name:  "distance",
			Label: "Distance",
			Conversions: []Conversion{
				{From: NauticalMiles, To: Kilometers, Factor: 1.852},
				{From: NauticalMiles, To: StatuteMiles, Factor: 1.15078},
				{From: Feet, To: Meters, Factor: 0.3048},
			},
		},
		Category{
			Name:  "speed",
			Label: "Speed",
			Conversions: []Conversion{
				{From: Knots, To: KmPerHour, Factor: 1.852},
				{From: Knots, To: MilesPerHour, Factor: 1.15078},
				{From: Knots, To: MetersPerSec, Factor: 0.514444},
			},
		},
		Category{
			Name:  "pressure",
			Label: "Pressure",
			Conversions: []Conversion{
				{From: Hectopascal, To: InchesHg, Factor: 0.02953},
				{From: InchesHg, To: Hectopascal, Factor: 33.8639},
			},
		},
		Category{
			Name:  "temperature",
			Label: "Temperature",
			Conversions: []Conversion{
				{From: Celsius, To: Fahrenheit, Formula: func(c float64) float64 { return c*9/5 + 32 }},
				{From: Fahrenheit, To: Celsius, Formula: func(f float64) float64 { return (f - 32) * 5 / 9 }},
			},
		},
		Category{
			Name:  "weight",
			Label: "Weight",
			Conversions: []Conversion{
				{From: Kilograms, To: Pounds, Factor: 2.20462},
				{From: Pounds, To: Kilograms, Factor: 0.453592},
			},
		},
		Category{
			Name:  "volume",
			Label: "Volume (Fuel)",
			Conversions: []Conversion{
				{From: Liters, To: USGallons, Factor: 0.264172},
				{From: USGallons, To: Liters, Factor: 3.78541},
			},
		},
	)
}

// Categories returns the category names in table order.
func (t *ConversionTable) Categories() []string {
	return t.categories.Keys()
}

// Category looks up a category by name, ignoring case.
func (t *ConversionTable) Category(name string) (Category, error) {
	value, ok := t.categories.Get(strings.ToLower(strings.TrimSpace(name)))
	if !ok {
		return Category{}, fmt.Errorf("category %q: %w", name, ErrUnknownCategory)
	}
	category, ok := value.(Category)
	if !ok {
		return Category{}, fmt.Errorf("category %q: %w", name, ErrUnknownCategory)
	}
	return category, nil
}

// Convert converts value from the given unit into every unit the category
// has a conversion for.
func (t *ConversionTable) Convert(category, unit string, value float64) ([]ConversionResult, error) {
	c, err := t.Category(category)
	if err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}
	if !isFinite(value) {
		return nil, fmt.Errorf("convert: value %v: %w", value, ErrInvalidInput)
	}

	var results []ConversionResult
	for _, conv := range c.Conversions {
		if !conv.From.matches(unit) {
			continue
		}
		results = append(results, ConversionResult{
			From:      conv.From,
			To:        conv.To,
			Value:     value,
			Converted: conv.Apply(value),
		})
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("convert: unit %q in %s: %w", unit, c.Name, ErrUnknownUnit)
	}
	return results, nil
}
