package calc

import (
	"fmt"
	"math"
)

// groundSpeedTolerance absorbs rounding noise of cos(90°) when the
// crosswind equals the true airspeed.
const groundSpeedTolerance = 1e-9

// NavigationSolution is the heading to fly so that the aircraft makes good
// the desired track under the given wind.
type NavigationSolution struct {
	HeadingDeg     float64 // heading to fly, in [0, 360)
	DriftDeg       float64 // wind correction angle, positive means correct to the right
	GroundSpeedKts float64
}

// RoundedHeading is the heading in whole degrees, 360 folded to 0.
func (n NavigationSolution) RoundedHeading() int {
	return RoundInt(normalizeHeading(float64(RoundInt(n.HeadingDeg))))
}

// RoundedDrift is the drift angle to one decimal place. A drift that rounds
// to zero is +0, never -0.
func (n NavigationSolution) RoundedDrift() float64 {
	drift := Round(n.DriftDeg, 1)
	if drift == 0 {
		return 0
	}
	return drift
}

// DriftSide is the side towards which the heading is corrected, judged on
// the rounded drift so that a displayed 0.0° has no side.
func (n NavigationSolution) DriftSide() string {
	drift := n.RoundedDrift()
	switch {
	case drift > 0:
		return "Right"
	case drift < 0:
		return "Left"
	default:
		return ""
	}
}

// SolveWindCorrection solves the wind triangle for a desired track.
//
// The ground speed is the exact solution of the triangle,
// sqrt(TAS² - crosswind²) - headwind. If the crosswind component exceeds
// the true airspeed, or the headwind component is so strong that the aircraft
// would move backwards along the track, ErrNoSolution is returned.
func SolveWindCorrection(trackDeg, tasKts float64, wind WindVector) (NavigationSolution, error) {
	if !validDirection(trackDeg) {
		return NavigationSolution{}, fmt.Errorf("solveWindCorrection: track %v: %w", trackDeg, ErrInvalidInput)
	}
	if !isFinite(tasKts) || tasKts <= 0 {
		return NavigationSolution{}, fmt.Errorf("solveWindCorrection: true airspeed %v: %w", tasKts, ErrInvalidInput)
	}
	if err := wind.Validate(); err != nil {
		return NavigationSolution{}, fmt.Errorf("solveWindCorrection: %w", err)
	}

	relRad := degreesToRadian(wind.DirectionDeg - trackDeg)
	crosswind := wind.SpeedKts * math.Sin(relRad)
	headwind := wind.SpeedKts * math.Cos(relRad)

	if math.Abs(crosswind) > tasKts {
		return NavigationSolution{}, fmt.Errorf(
			"solveWindCorrection: crosswind %.1f kts exceeds true airspeed %.1f kts: %w",
			math.Abs(crosswind), tasKts, ErrNoSolution)
	}

	drift := radianToDegrees(math.Asin(crosswind / tasKts))
	groundSpeed := math.Sqrt(tasKts*tasKts-crosswind*crosswind) - headwind
	if groundSpeed < -groundSpeedTolerance {
		return NavigationSolution{}, fmt.Errorf(
			"solveWindCorrection: headwind %.1f kts exceeds true airspeed %.1f kts: %w",
			headwind, tasKts, ErrNoSolution)
	}

	return NavigationSolution{
		HeadingDeg:     normalizeHeading(trackDeg + drift),
		DriftDeg:       drift,
		GroundSpeedKts: math.Max(groundSpeed, 0),
	}, nil
}

// ApproximateGroundSpeed is the quick cockpit estimate TAS minus the headwind
// component along the track. It ignores the loss of speed from crabbing and
// drifts away from the exact solution at large drift angles.
func ApproximateGroundSpeed(trackDeg, tasKts float64, wind WindVector) float64 {
	relRad := degreesToRadian(wind.DirectionDeg - trackDeg)
	return tasKts - wind.SpeedKts*math.Cos(relRad)
}
