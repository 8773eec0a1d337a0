package calc

import (
	"fmt"
)

const (
	// StandardQNHHpa is the ISA mean sea level pressure used when no QNH is given.
	StandardQNHHpa = 1013.0
	// ISASeaLevelTempC is the ISA temperature at mean sea level.
	ISASeaLevelTempC = 15.0
	// isaLapseRatePer1000Ft is the ISA temperature lapse rate in [°C/1000 ft].
	isaLapseRatePer1000Ft = 1.98
	// feetPerHpa is the rule of thumb height of one hectopascal near the ground.
	feetPerHpa = 30.0
	// densityAltFtPerDegC is the density altitude change per degree of ISA deviation.
	densityAltFtPerDegC = 120.0
	// trueAltitudeKelvinOffset converts the ISA temperature for the true altitude correction.
	trueAltitudeKelvinOffset = 273.0
)

// AltitudeOptions are the inputs of the altitude converter. Nil fields take
// their default: QNH 1013 hPa, OAT equal to the ISA temperature at the
// pressure altitude, field elevation 0 ft. IndicatedAltitudeFt is required.
type AltitudeOptions struct {
	IndicatedAltitudeFt *float64
	QNHHpa              *float64
	OATC                *float64
	FieldElevationFt    *float64
}

// AltitudeResult holds the altitudes derived from an altimeter reading.
type AltitudeResult struct {
	IndicatedAltitudeFt float64
	PressureAltitudeFt  float64
	DensityAltitudeFt   float64
	TrueAltitudeFt      float64
	HeightAGLFt         float64
	ISATempC            float64
	OATC                float64
	ISADeviationC       float64
}

// PressureAltitude corrects an indicated altitude for a non-standard QNH.
func PressureAltitude(indicatedFt, qnhHpa float64) float64 {
	return indicatedFt + (StandardQNHHpa-qnhHpa)*feetPerHpa
}

// ISATemperature is the standard atmosphere temperature in [°C] at the given
// pressure altitude.
func ISATemperature(pressureAltFt float64) float64 {
	return ISASeaLevelTempC - pressureAltFt/1000*isaLapseRatePer1000Ft //nolint:mnd // per thousand feet
}

// ConvertAltitude derives pressure, density and true altitude as well as the
// height above the field from an indicated altitude.
func ConvertAltitude(opts AltitudeOptions) (AltitudeResult, error) {
	if opts.IndicatedAltitudeFt == nil {
		return AltitudeResult{}, fmt.Errorf("convertAltitude: indicated altitude: %w", ErrMissingRequiredField)
	}
	indicated := *opts.IndicatedAltitudeFt
	if !isFinite(indicated) {
		return AltitudeResult{}, fmt.Errorf("convertAltitude: indicated altitude %v: %w", indicated, ErrInvalidInput)
	}

	qnh, err := qnhOrStandard(opts.QNHHpa)
	if err != nil {
		return AltitudeResult{}, fmt.Errorf("convertAltitude: %w", err)
	}

	elevation := 0.0
	if opts.FieldElevationFt != nil {
		elevation = *opts.FieldElevationFt
		if !isFinite(elevation) {
			return AltitudeResult{}, fmt.Errorf("convertAltitude: field elevation %v: %w", elevation, ErrInvalidInput)
		}
	}

	pressureAlt := PressureAltitude(indicated, qnh)
	isaTemp := ISATemperature(pressureAlt)

	oat, err := oatOrISA(opts.OATC, isaTemp)
	if err != nil {
		return AltitudeResult{}, fmt.Errorf("convertAltitude: %w", err)
	}
	deviation := oat - isaTemp

	if trueAltitudeKelvinOffset+isaTemp <= 0 {
		return AltitudeResult{}, fmt.Errorf(
			"convertAltitude: pressure altitude %.0f ft is outside the atmosphere model: %w",
			pressureAlt, ErrInvalidInput)
	}

	return AltitudeResult{
		IndicatedAltitudeFt: indicated,
		PressureAltitudeFt:  pressureAlt,
		DensityAltitudeFt:   pressureAlt + densityAltFtPerDegC*deviation,
		TrueAltitudeFt:      pressureAlt + pressureAlt*deviation/(trueAltitudeKelvinOffset+isaTemp),
		HeightAGLFt:         indicated - elevation,
		ISATempC:            isaTemp,
		OATC:                oat,
		ISADeviationC:       deviation,
	}, nil
}

func qnhOrStandard(qnh *float64) (float64, error) {
	if qnh == nil {
		return StandardQNHHpa, nil
	}
	if !isFinite(*qnh) || *qnh <= 0 {
		return 0, fmt.Errorf("QNH %v: %w", *qnh, ErrInvalidInput)
	}
	return *qnh, nil
}

func oatOrISA(oat *float64, isaTemp float64) (float64, error) {
	if oat == nil {
		return isaTemp, nil
	}
	if !isFinite(*oat) {
		return 0, fmt.Errorf("OAT %v: %w", *oat, ErrInvalidInput)
	}
	return *oat, nil
}
