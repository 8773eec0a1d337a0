package calc

import (
	"fmt"
	"math"
)

const (
	// kelvinOffset converts [°C] into [K].
	kelvinOffset = 273.15
	// isaSeaLevelTempK is the ISA temperature at mean sea level in [K].
	isaSeaLevelTempK = ISASeaLevelTempC + kelvinOffset
	// pressureRatioCoefficient and pressureRatioExponent describe the ICAO
	// troposphere pressure ratio (1 - 6.8756e-6 * h)^5.2561 with h in [ft].
	pressureRatioCoefficient = 0.0000068756
	pressureRatioExponent    = 5.2561
	// speedOfSoundKtsPerSqrtK gives the speed of sound in [knots] as
	// speedOfSoundKtsPerSqrtK * sqrt(T[K]).
	speedOfSoundKtsPerSqrtK = 38.967854
)

// AirspeedOptions are the inputs of the airspeed converter. IASKts and
// IndicatedAltitudeFt are required. QNH defaults to 1013 hPa and OAT to the
// ISA temperature at the pressure altitude. HeadingDeg, WindDirectionDeg and
// WindSpeedKts are optional as a group: give all three to get a ground speed.
type AirspeedOptions struct {
	IASKts              *float64
	IndicatedAltitudeFt *float64
	QNHHpa              *float64
	OATC                *float64
	HeadingDeg          *float64
	WindDirectionDeg    *float64
	WindSpeedKts        *float64
}

// AirspeedResult holds the speeds derived from an indicated airspeed.
// GroundSpeedKts and GroundTrackDeg are nil unless wind data was given.
type AirspeedResult struct {
	IASKts             float64
	CASKts             float64
	TASKts             float64
	Mach               float64
	PressureAltitudeFt float64
	OATC               float64
	GroundSpeedKts     *float64
	GroundTrackDeg     *float64
}

// PressureRatio is the ratio of static pressure at the given pressure
// altitude to the pressure at mean sea level in the standard atmosphere.
func PressureRatio(pressureAltFt float64) float64 {
	return math.Pow(1-pressureAltFt*pressureRatioCoefficient, pressureRatioExponent)
}

// SpeedOfSound is the speed of sound in [knots] at the given temperature.
func SpeedOfSound(tempC float64) float64 {
	return speedOfSoundKtsPerSqrtK * math.Sqrt(tempC+kelvinOffset)
}

// TrueAirspeed converts a calibrated airspeed into true airspeed using the
// density ratio of the air at the given pressure altitude and temperature.
func TrueAirspeed(casKts, pressureAltFt, oatC float64) float64 {
	tempK := oatC + kelvinOffset
	return casKts * math.Sqrt(tempK/isaSeaLevelTempK) / math.Sqrt(PressureRatio(pressureAltFt))
}

// ConvertAirspeed derives CAS, TAS and Mach number from an indicated
// airspeed and, when wind is known, the resulting ground speed and track.
//
// CAS is taken to be equal to IAS, ignoring instrument and position error.
// This holds for light aircraft at low speeds but not near transonic speeds.
func ConvertAirspeed(opts AirspeedOptions) (AirspeedResult, error) {
	if opts.IASKts == nil {
		return AirspeedResult{}, fmt.Errorf("convertAirspeed: indicated airspeed: %w", ErrMissingRequiredField)
	}
	if opts.IndicatedAltitudeFt == nil {
		return AirspeedResult{}, fmt.Errorf("convertAirspeed: indicated altitude: %w", ErrMissingRequiredField)
	}
	ias := *opts.IASKts
	if !isFinite(ias) || ias < 0 {
		return AirspeedResult{}, fmt.Errorf("convertAirspeed: indicated airspeed %v: %w", ias, ErrInvalidInput)
	}
	altitude := *opts.IndicatedAltitudeFt
	if !isFinite(altitude) {
		return AirspeedResult{}, fmt.Errorf("convertAirspeed: indicated altitude %v: %w", altitude, ErrInvalidInput)
	}

	wind, heading, hasWind, err := windGroup(opts)
	if err != nil {
		return AirspeedResult{}, fmt.Errorf("convertAirspeed: %w", err)
	}

	qnh, err := qnhOrStandard(opts.QNHHpa)
	if err != nil {
		return AirspeedResult{}, fmt.Errorf("convertAirspeed: %w", err)
	}

	pressureAlt := PressureAltitude(altitude, qnh)
	oat, err := oatOrISA(opts.OATC, ISATemperature(pressureAlt))
	if err != nil {
		return AirspeedResult{}, fmt.Errorf("convertAirspeed: %w", err)
	}
	if oat+kelvinOffset <= 0 {
		return AirspeedResult{}, fmt.Errorf("convertAirspeed: OAT %v below absolute zero: %w", oat, ErrInvalidInput)
	}
	if 1-pressureAlt*pressureRatioCoefficient <= 0 {
		return AirspeedResult{}, fmt.Errorf(
			"convertAirspeed: pressure altitude %.0f ft is outside the atmosphere model: %w",
			pressureAlt, ErrInvalidInput)
	}

	cas := ias
	tas := TrueAirspeed(cas, pressureAlt, oat)

	result := AirspeedResult{
		IASKts:             ias,
		CASKts:             cas,
		TASKts:             tas,
		Mach:               tas / SpeedOfSound(oat),
		PressureAltitudeFt: pressureAlt,
		OATC:               oat,
		GroundSpeedKts:     nil,
		GroundTrackDeg:     nil,
	}

	if hasWind {
		gs, track := groundVector(tas, heading, wind)
		result.GroundSpeedKts = &gs
		result.GroundTrackDeg = &track
	}

	return result, nil
}

// windGroup checks that heading, wind direction and wind speed are either
// all present or all absent.
func windGroup(opts AirspeedOptions) (WindVector, float64, bool, error) {
	present := 0
	for _, field := range []*float64{opts.HeadingDeg, opts.WindDirectionDeg, opts.WindSpeedKts} {
		if field != nil {
			present++
		}
	}

	switch present {
	case 0:
		return WindVector{}, 0, false, nil
	case 3: //nolint:mnd // heading, direction and speed
	default:
		return WindVector{}, 0, false, fmt.Errorf(
			"heading, wind direction and wind speed are required for ground speed: %w",
			ErrIncompleteWindData)
	}

	heading := *opts.HeadingDeg
	if !validDirection(heading) {
		return WindVector{}, 0, false, fmt.Errorf("heading %v: %w", heading, ErrInvalidInput)
	}
	wind := WindVector{DirectionDeg: *opts.WindDirectionDeg, SpeedKts: *opts.WindSpeedKts}
	if err := wind.Validate(); err != nil {
		return WindVector{}, 0, false, err
	}

	return wind, heading, true, nil
}

// groundVector adds the air vector (TAS along heading) to the wind vector.
// The wind is given as where it blows from, so it is turned around by 180°
// before summing. Returns ground speed [knots] and track [degrees].
func groundVector(tasKts, headingDeg float64, wind WindVector) (float64, float64) {
	headingRad := degreesToRadian(headingDeg)
	windToRad := degreesToRadian(wind.DirectionDeg + 180) //nolint:mnd // reverse "from" direction

	east := tasKts*math.Sin(headingRad) + wind.SpeedKts*math.Sin(windToRad)
	north := tasKts*math.Cos(headingRad) + wind.SpeedKts*math.Cos(windToRad)

	return math.Hypot(east, north), normalizeHeading(radianToDegrees(math.Atan2(east, north)))
}
