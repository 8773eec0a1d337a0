package calc

import (
	"fmt"
	"math"
)

const (
	minRunwayCode = 1
	maxRunwayCode = 36
)

// WindVector is a wind given as the direction it blows from and its speed.
type WindVector struct {
	DirectionDeg float64 // direction the wind comes from, 0-360 [degrees]
	SpeedKts     float64 // wind speed [knots]
}

// Validate checks that direction and speed are within range.
func (w WindVector) Validate() error {
	if !validDirection(w.DirectionDeg) {
		return fmt.Errorf("wind direction %v: %w", w.DirectionDeg, ErrInvalidInput)
	}
	if !isFinite(w.SpeedKts) || w.SpeedKts < 0 {
		return fmt.Errorf("wind speed %v: %w", w.SpeedKts, ErrInvalidInput)
	}
	return nil
}

// String formats the wind the way pilots write it, e.g. "090/20".
func (w WindVector) String() string {
	return fmt.Sprintf("%03d/%02d", RoundInt(w.DirectionDeg), RoundInt(w.SpeedKts))
}

// RunwayHeading is a runway designator number such as 09 or 27.
type RunwayHeading struct {
	NumberCode int
}

// Validate checks that the runway number lies in 01-36.
func (r RunwayHeading) Validate() error {
	if r.NumberCode < minRunwayCode || r.NumberCode > maxRunwayCode {
		return fmt.Errorf("runway %d must be between 01 and 36: %w", r.NumberCode, ErrInvalidInput)
	}
	return nil
}

// Degrees returns the heading of the runway, runway 36 giving 360.
func (r RunwayHeading) Degrees() float64 {
	return float64(r.NumberCode * 10) //nolint:mnd // runway numbers are tens of degrees
}

func (r RunwayHeading) String() string {
	return fmt.Sprintf("%02d", r.NumberCode)
}

// CrosswindSide tells from which side of the runway the crosswind blows.
type CrosswindSide int

const (
	CrosswindLeft CrosswindSide = iota
	CrosswindRight
)

func (s CrosswindSide) String() string {
	switch s {
	case CrosswindLeft:
		return "Left"
	case CrosswindRight:
		return "Right"
	default:
		return "unknown"
	}
}

// WindComponents are the projections of a wind onto a runway.
type WindComponents struct {
	HeadwindKts      float64 // along the runway, negative for a tailwind
	CrosswindKts     float64 // across the runway, never negative
	Side             CrosswindSide
	RelativeAngleDeg float64 // wind direction relative to the runway, in (-180, 180]
}

// IsHeadwind reports whether the along-runway component is a headwind.
func (c WindComponents) IsHeadwind() bool {
	return c.HeadwindKts >= 0
}

// RoundedHeadwind is the headwind in whole knots, signed like HeadwindKts.
func (c WindComponents) RoundedHeadwind() int {
	return RoundInt(c.HeadwindKts)
}

// RoundedCrosswind is the crosswind in whole knots.
func (c WindComponents) RoundedCrosswind() int {
	return RoundInt(c.CrosswindKts)
}

// ResolveWindComponents splits a wind into headwind and crosswind for the
// given runway. A wind clockwise of the runway heading blows from the right.
//
//nolint:mnd // readability of mathmatic formula
func ResolveWindComponents(runway RunwayHeading, wind WindVector) (WindComponents, error) {
	if err := runway.Validate(); err != nil {
		return WindComponents{}, fmt.Errorf("resolveWindComponents: %w", err)
	}
	if err := wind.Validate(); err != nil {
		return WindComponents{}, fmt.Errorf("resolveWindComponents: %w", err)
	}

	relative := normalizeRelative(wind.DirectionDeg - runway.Degrees())
	relRad := degreesToRadian(relative)

	side := CrosswindLeft
	if relative > 0 {
		side = CrosswindRight
	}

	return WindComponents{
		HeadwindKts:      wind.SpeedKts * math.Cos(relRad),
		CrosswindKts:     math.Abs(wind.SpeedKts * math.Sin(relRad)),
		Side:             side,
		RelativeAngleDeg: relative,
	}, nil
}
