package tuiapp

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/micutio/airtoolbox/internal"
	"github.com/micutio/airtoolbox/internal/calc"
)

// field is one labeled text input of a calculator form.
type field struct {
	label       string
	placeholder string
}

// calculator describes a form and how its values turn into result rows.
// compute gets the raw field values in the order of fields.
type calculator struct {
	title   string
	fields  []field
	compute func(values []string) ([]table.Row, error)
}

func calculators() []calculator {
	return []calculator{
		{
			title: "Wind Components",
			fields: []field{
				{label: "Runway", placeholder: "09"},
				{label: "Wind", placeholder: "090/20"},
			},
			compute: computeWindComponents,
		},
		{
			title: "Wind Correction",
			fields: []field{
				{label: "Track (°)", placeholder: "360"},
				{label: "TAS (kt)", placeholder: "100"},
				{label: "Wind", placeholder: "090/20"},
			},
			compute: computeWindCorrection,
		},
		{
			title: "Altitude",
			fields: []field{
				{label: "Indicated altitude (ft)", placeholder: "5000"},
				{label: "QNH (hPa)", placeholder: "1013"},
				{label: "OAT (°C)", placeholder: "ISA"},
				{label: "Field elevation (ft)", placeholder: "0"},
			},
			compute: computeAltitude,
		},
		{
			title: "Airspeed",
			fields: []field{
				{label: "IAS (kt)", placeholder: "100"},
				{label: "Indicated altitude (ft)", placeholder: "5000"},
				{label: "QNH (hPa)", placeholder: "1013"},
				{label: "OAT (°C)", placeholder: "ISA"},
				{label: "Heading (°)", placeholder: "optional"},
				{label: "Wind direction (°)", placeholder: "optional"},
				{label: "Wind speed (kt)", placeholder: "optional"},
			},
			compute: computeAirspeed,
		},
		{
			title: "Gradient",
			fields: []field{
				{label: "Gradient", placeholder: "3"},
				{label: "Unit", placeholder: "degrees | percent | ftpernm"},
			},
			compute: computeGradient,
		},
		{
			title: "Climb/Descent Rate",
			fields: []field{
				{label: "Gradient (ft/nm)", placeholder: "318"},
				{label: "Ground speed (kt)", placeholder: "120"},
			},
			compute: computeRateOfClimb,
		},
	}
}

func computeWindComponents(values []string) ([]table.Row, error) {
	runway, err := internal.ParseRunway(values[0])
	if err != nil {
		return nil, err
	}
	wind, err := internal.ParseWind(values[1])
	if err != nil {
		return nil, err
	}

	components, err := calc.ResolveWindComponents(runway, wind)
	if err != nil {
		return nil, err
	}

	headLabel := "Headwind"
	if !components.IsHeadwind() {
		headLabel = "Tailwind"
	}
	head := components.RoundedHeadwind()
	if head < 0 {
		head = -head
	}

	return []table.Row{
		{"Runway", runway.String()},
		{"Wind", wind.String()},
		{headLabel, fmt.Sprintf("%d kt", head)},
		{"Crosswind", fmt.Sprintf("%d kt %s", components.RoundedCrosswind(), components.Side)},
	}, nil
}

func computeWindCorrection(values []string) ([]table.Row, error) {
	track, err := internal.ParseFloat("track", values[0])
	if err != nil {
		return nil, err
	}
	tas, err := internal.ParseFloat("TAS", values[1])
	if err != nil {
		return nil, err
	}
	wind, err := internal.ParseWind(values[2])
	if err != nil {
		return nil, err
	}

	solution, err := calc.SolveWindCorrection(track, tas, wind)
	if err != nil {
		return nil, err
	}

	return []table.Row{
		{"Heading", fmt.Sprintf("%03d°", solution.RoundedHeading())},
		{"Drift", strings.TrimSpace(fmt.Sprintf("%.1f° %s", math.Abs(solution.RoundedDrift()), solution.DriftSide()))},
		{"Ground speed", fmt.Sprintf("%d kt", calc.RoundInt(solution.GroundSpeedKts))},
	}, nil
}

func computeAltitude(values []string) ([]table.Row, error) {
	opts, err := parseOptionals(values, "indicated altitude", "QNH", "OAT", "field elevation")
	if err != nil {
		return nil, err
	}

	result, err := calc.ConvertAltitude(calc.AltitudeOptions{
		IndicatedAltitudeFt: opts[0],
		QNHHpa:              opts[1],
		OATC:                opts[2],
		FieldElevationFt:    opts[3],
	})
	if err != nil {
		return nil, err
	}

	return []table.Row{
		{"Indicated altitude", fmt.Sprintf("%d ft", calc.RoundInt(result.IndicatedAltitudeFt))},
		{"Pressure altitude", fmt.Sprintf("%d ft", calc.RoundInt(result.PressureAltitudeFt))},
		{"Density altitude", fmt.Sprintf("%d ft", calc.RoundInt(result.DensityAltitudeFt))},
		{"True altitude", fmt.Sprintf("%d ft", calc.RoundInt(result.TrueAltitudeFt))},
		{"Height AGL", fmt.Sprintf("%d ft", calc.RoundInt(result.HeightAGLFt))},
		{"ISA temperature", fmt.Sprintf("%.1f °C", calc.Round(result.ISATempC, 1))},
		{"ISA deviation", fmt.Sprintf("%+.1f °C", calc.Round(result.ISADeviationC, 1))},
	}, nil
}

func computeAirspeed(values []string) ([]table.Row, error) {
	opts, err := parseOptionals(values,
		"IAS", "indicated altitude", "QNH", "OAT", "heading", "wind direction", "wind speed")
	if err != nil {
		return nil, err
	}

	result, err := calc.ConvertAirspeed(calc.AirspeedOptions{
		IASKts:              opts[0],
		IndicatedAltitudeFt: opts[1],
		QNHHpa:              opts[2],
		OATC:                opts[3],
		HeadingDeg:          opts[4],
		WindDirectionDeg:    opts[5],
		WindSpeedKts:        opts[6],
	})
	if err != nil {
		return nil, err
	}

	rows := []table.Row{
		{"IAS", fmt.Sprintf("%d kt", calc.RoundInt(result.IASKts))},
		{"CAS", fmt.Sprintf("%d kt", calc.RoundInt(result.CASKts))},
		{"TAS", fmt.Sprintf("%d kt", calc.RoundInt(result.TASKts))},
		{"Mach", fmt.Sprintf("%.3f", calc.Round(result.Mach, 3))},
		{"Pressure altitude", fmt.Sprintf("%d ft", calc.RoundInt(result.PressureAltitudeFt))},
		{"OAT", fmt.Sprintf("%.1f °C", calc.Round(result.OATC, 1))},
	}
	if result.GroundSpeedKts != nil && result.GroundTrackDeg != nil {
		rows = append(rows,
			table.Row{"Ground speed", fmt.Sprintf("%d kt", calc.RoundInt(*result.GroundSpeedKts))},
			table.Row{"Ground track", fmt.Sprintf("%03d°", calc.RoundInt(*result.GroundTrackDeg)%360)},
		)
	}
	return rows, nil
}

func computeGradient(values []string) ([]table.Row, error) {
	value, err := internal.ParseFloat("gradient", values[0])
	if err != nil {
		return nil, err
	}
	unit := calc.GradientDegrees
	if strings.TrimSpace(values[1]) != "" {
		unit, err = calc.ParseGradientUnit(values[1])
		if err != nil {
			return nil, err
		}
	}

	gradient, err := calc.ConvertGradient(value, unit)
	if err != nil {
		return nil, err
	}

	return []table.Row{
		{"Degrees", fmt.Sprintf("%.2f°", calc.Round(gradient.Degrees, 2))},
		{"Percent", fmt.Sprintf("%.2f %%", calc.Round(gradient.Percent, 2))},
		{"ft/nm", fmt.Sprintf("%.1f", calc.Round(gradient.FtPerNm, 1))},
	}, nil
}

func computeRateOfClimb(values []string) ([]table.Row, error) {
	gradient, err := internal.ParseFloat("gradient", values[0])
	if err != nil {
		return nil, err
	}
	groundSpeed, err := internal.ParseFloat("ground speed", values[1])
	if err != nil {
		return nil, err
	}

	rate, err := calc.RateOfClimb(gradient, groundSpeed)
	if err != nil {
		return nil, err
	}

	return []table.Row{
		{"Rate", fmt.Sprintf("%d ft/min", calc.RoundInt(rate))},
	}, nil
}

// computeConversion converts value from unit into every target of the category.
func computeConversion(conversions *calc.ConversionTable, category, unit, value string) ([]table.Row, error) {
	v, err := internal.ParseFloat("value", value)
	if err != nil {
		return nil, err
	}

	results, err := conversions.Convert(category, unit, v)
	if err != nil {
		return nil, err
	}

	rows := make([]table.Row, 0, len(results))
	for _, r := range results {
		rows = append(rows, table.Row{r.To.Name, fmt.Sprintf("%.2f %s", r.Rounded(), r.To.Symbol)})
	}
	return rows, nil
}

func weatherToRows(report internal.WeatherReport) []table.Row {
	return []table.Row{
		{"Airport", report.Airport},
		{"METAR", report.METAR},
		{"TAF", report.TAF},
		{"Fetched", report.FetchedAt.UTC().Format("2006-01-02 15:04Z")},
	}
}

// parseOptionals reads every value as an optional number. names label the
// values in error messages.
func parseOptionals(values []string, names ...string) ([]*float64, error) {
	opts := make([]*float64, len(names))
	for i, name := range names {
		v, err := internal.ParseOptionalFloat(name, values[i])
		if err != nil {
			return nil, err
		}
		opts[i] = v
	}
	return opts, nil
}
