package calc

import (
	"fmt"
	"math"
	"strings"
)

const (
	// FeetPerNauticalMile is the rounded length of a nautical mile used for
	// gradients, so that 1 % equals 60.76 ft/nm.
	FeetPerNauticalMile = 6076.0
	percentToFtPerNm    = FeetPerNauticalMile / 100
	minutesPerHour      = 60.0
	maxGradientDegrees  = 90.0
)

// GradientUnit selects one of the three representations of a flight path
// gradient.
type GradientUnit int

const (
	GradientDegrees GradientUnit = iota
	GradientPercent
	GradientFtPerNm
)

func (u GradientUnit) String() string {
	switch u {
	case GradientDegrees:
		return "degrees"
	case GradientPercent:
		return "percent"
	case GradientFtPerNm:
		return "ftPerNm"
	default:
		return "unknown"
	}
}

// ParseGradientUnit accepts the unit names and their usual abbreviations.
func ParseGradientUnit(s string) (GradientUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "degrees", "degree", "deg", "°":
		return GradientDegrees, nil
	case "percent", "pct", "%":
		return GradientPercent, nil
	case "ftpernm", "ft/nm", "ftnm":
		return GradientFtPerNm, nil
	}
	return 0, fmt.Errorf("parseGradientUnit: %q: %w", s, ErrInvalidInput)
}

// Gradient is a climb or descent gradient in all three representations.
type Gradient struct {
	Degrees float64
	Percent float64
	FtPerNm float64
}

// ConvertGradient takes a gradient in one unit and returns all three.
func ConvertGradient(value float64, from GradientUnit) (Gradient, error) {
	if !isFinite(value) {
		return Gradient{}, fmt.Errorf("convertGradient: value %v: %w", value, ErrInvalidInput)
	}

	var percent float64
	switch from {
	case GradientDegrees:
		if math.Abs(value) >= maxGradientDegrees {
			return Gradient{}, fmt.Errorf("convertGradient: %v degrees is vertical or beyond: %w", value, ErrInvalidInput)
		}
		percent = math.Tan(degreesToRadian(value)) * 100 //nolint:mnd // percent
	case GradientPercent:
		percent = value
	case GradientFtPerNm:
		percent = value / percentToFtPerNm
	default:
		return Gradient{}, fmt.Errorf("convertGradient: unit %d: %w", from, ErrInvalidInput)
	}

	degrees := value
	if from != GradientDegrees {
		degrees = radianToDegrees(math.Atan(percent / 100)) //nolint:mnd // percent
	}

	ftPerNm := value
	if from != GradientFtPerNm {
		ftPerNm = percent * percentToFtPerNm
	}

	return Gradient{
		Degrees: degrees,
		Percent: percent,
		FtPerNm: ftPerNm,
	}, nil
}

// RateOfClimb is the vertical speed in [ft/min] needed to hold a gradient
// given in [ft/nm] at the given ground speed. It works for descents as well,
// a negative gradient giving a negative rate.
func RateOfClimb(gradientFtPerNm, groundSpeedKts float64) (float64, error) {
	if !isFinite(gradientFtPerNm) {
		return 0, fmt.Errorf("rateOfClimb: gradient %v: %w", gradientFtPerNm, ErrInvalidInput)
	}
	if !isFinite(groundSpeedKts) || groundSpeedKts < 0 {
		return 0, fmt.Errorf("rateOfClimb: ground speed %v: %w", groundSpeedKts, ErrInvalidInput)
	}
	return gradientFtPerNm * groundSpeedKts / minutesPerHour, nil
}
