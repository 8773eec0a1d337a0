package calc

import (
	"math"
)

const (
	degToRad float64 = math.Pi / 180
	radToDeg float64 = 180 / math.Pi
)

// Conversion functions

func degreesToRadian(d float64) float64 {
	return d * degToRad
}

func radianToDegrees(r float64) float64 {
	return r * radToDeg
}

// normalizeHeading maps any angle in degrees into [0, 360).
func normalizeHeading(deg float64) float64 {
	h := math.Mod(deg, 360)
	if h < 0 {
		h += 360
	}
	// math.Mod(-1e-15, 360) + 360 rounds to 360.
	if h >= 360 {
		h -= 360
	}
	return h
}

// normalizeRelative maps any angle in degrees into (-180, 180].
func normalizeRelative(deg float64) float64 {
	r := normalizeHeading(deg)
	if r > 180 {
		r -= 360
	}
	return r
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// validDirection reports whether deg is a compass direction in [0, 360].
// 360 is accepted and treated like 0.
func validDirection(deg float64) bool {
	return isFinite(deg) && deg >= 0 && deg <= 360
}
