package calc

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Round rounds v to the given number of decimal places, half away from zero.
func Round[F constraints.Float](v F, places int) F {
	scale := math.Pow(10, float64(places))
	return F(math.Round(float64(v)*scale) / scale)
}

// RoundInt rounds v to the nearest integer, half away from zero.
func RoundInt[F constraints.Float](v F) int {
	return int(math.Round(float64(v)))
}

// Float returns a pointer to v, for filling the optional fields of the
// option structs.
func Float(v float64) *float64 {
	return &v
}
