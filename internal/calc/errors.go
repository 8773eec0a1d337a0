// Package calc holds the flight calculators: wind components, wind-corrected
// heading, altitudes, airspeeds, gradients and unit conversions.
// All functions are pure and safe for concurrent use.
package calc

import "errors"

// Errors returned by the calculators. Callers match them with errors.Is, the
// wrapped message carries the offending field.
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrIncompleteWindData   = errors.New("incomplete wind data")
	ErrNoSolution           = errors.New("no solution")
	ErrUnknownCategory      = errors.New("unknown category")
	ErrUnknownUnit          = errors.New("unknown unit")
)
