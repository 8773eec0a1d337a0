package internal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/micutio/airtoolbox/internal/calc"
)

const (
	// windSeparator splits the direction and speed of a wind such as "090/23".
	windSeparator = "/"
	// windTokenCount is the number of tokens of a well-formed wind string.
	windTokenCount = 2
)

// ParseOptionalFloat reads a free-text number. Blank input means "use the
// default" and yields nil.
func ParseOptionalFloat(field string, input string) (*float64, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, nil //nolint:nilnil // nil signals an absent optional value
	}

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil, fmt.Errorf("parseOptionalFloat: %s %q: %w", field, input, calc.ErrInvalidInput)
	}
	return &value, nil
}

// ParseFloat reads a free-text number that must be present.
func ParseFloat(field string, input string) (float64, error) {
	value, err := ParseOptionalFloat(field, input)
	if err != nil {
		return 0, err
	}
	if value == nil {
		return 0, fmt.Errorf("parseFloat: %s: %w", field, calc.ErrMissingRequiredField)
	}
	return *value, nil
}

// ParseWind reads a wind written as "<direction>/<speed>", e.g. "090/23".
// Both tokens must be whole numbers, direction 0-360 and speed not negative.
func ParseWind(input string) (calc.WindVector, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return calc.WindVector{}, fmt.Errorf("parseWind: wind: %w", calc.ErrMissingRequiredField)
	}

	tokens := strings.Split(trimmed, windSeparator)
	if len(tokens) != windTokenCount {
		return calc.WindVector{}, fmt.Errorf(
			"parseWind: %q should be direction/speed (e.g. 090/23): %w", input, calc.ErrInvalidInput)
	}

	direction, dirErr := strconv.Atoi(strings.TrimSpace(tokens[0]))
	speed, speedErr := strconv.Atoi(strings.TrimSpace(tokens[1]))
	if dirErr != nil || speedErr != nil {
		return calc.WindVector{}, fmt.Errorf(
			"parseWind: %q should be direction/speed (e.g. 090/23): %w", input, calc.ErrInvalidInput)
	}

	wind := calc.WindVector{DirectionDeg: float64(direction), SpeedKts: float64(speed)}
	if err := wind.Validate(); err != nil {
		return calc.WindVector{}, fmt.Errorf("parseWind: %w", err)
	}
	return wind, nil
}

// ParseRunway reads a runway designator such as "09", "9" or "27L". The
// parallel runway suffix does not change the heading and is dropped.
func ParseRunway(input string) (calc.RunwayHeading, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(input))
	if trimmed == "" {
		return calc.RunwayHeading{}, fmt.Errorf("parseRunway: runway: %w", calc.ErrMissingRequiredField)
	}
	trimmed = strings.TrimRight(trimmed, "LRC")

	number, err := strconv.Atoi(trimmed)
	if err != nil {
		return calc.RunwayHeading{}, fmt.Errorf("parseRunway: %q: %w", input, calc.ErrInvalidInput)
	}

	runway := calc.RunwayHeading{NumberCode: number}
	if err := runway.Validate(); err != nil {
		return calc.RunwayHeading{}, fmt.Errorf("parseRunway: %w", err)
	}
	return runway, nil
}
