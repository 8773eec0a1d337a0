package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"golang.org/x/sync/errgroup"
)

const (
	// tafUnavailable replaces the TAF of airports that do not publish one.
	tafUnavailable = "TAF not available for this airport"
	// maxConcurrentStations limits parallel requests against the NOAA server.
	maxConcurrentStations = 4
	minAirportCodeLen     = 3
	maxAirportCodeLen     = 4
)

var (
	ErrInvalidAirportCode = errors.New("invalid airport code")
	ErrNoMETAR            = errors.New("no METAR available")
)

// WeatherReport is the raw METAR and TAF text of one airport.
type WeatherReport struct {
	Airport   string
	METAR     string
	TAF       string
	HasTAF    bool
	FetchedAt time.Time
}

// WeatherResult pairs an airport of a batch query with its report or error.
type WeatherResult struct {
	Airport string
	Report  WeatherReport
	Err     error
}

// NormalizeAirportCode trims and upper-cases an ICAO-style code and checks
// that it consists of three or four letters or digits.
func NormalizeAirportCode(code string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if len(normalized) < minAirportCodeLen || len(normalized) > maxAirportCodeLen {
		return "", fmt.Errorf("normalizeAirportCode: %q: %w", code, ErrInvalidAirportCode)
	}
	for _, r := range normalized {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return "", fmt.Errorf("normalizeAirportCode: %q: %w", code, ErrInvalidAirportCode)
		}
	}
	return normalized, nil
}

// FetchWeather requests the METAR and then the TAF of an airport. A missing
// TAF is not an error, the report then carries a placeholder text and
// HasTAF is false. Without a METAR the whole fetch fails with ErrNoMETAR.
func (ws *WeatherSource) FetchWeather(ctx context.Context, code string) (WeatherReport, error) {
	airport, err := NormalizeAirportCode(code)
	if err != nil {
		return WeatherReport{}, err
	}

	metarBody, metarErr := ws.requestMETAR(ctx, airport)
	if metarErr != nil {
		return WeatherReport{}, fmt.Errorf("fetchWeather: %s: %w caused by %w", airport, ErrNoMETAR, metarErr)
	}
	metar := parseMETAR(metarBody)
	if metar == "" {
		return WeatherReport{}, fmt.Errorf("fetchWeather: %s: %w", airport, ErrNoMETAR)
	}

	report := WeatherReport{
		Airport:   airport,
		METAR:     metar,
		TAF:       tafUnavailable,
		HasTAF:    false,
		FetchedAt: time.Now(),
	}

	tafBody, tafErr := ws.requestTAF(ctx, airport)
	if tafErr != nil {
		slog.Debug("no TAF", slog.String("airport", airport), slog.Any("error", tafErr))
		return report, nil
	}
	if taf := parseTAF(tafBody); taf != "" {
		report.TAF = taf
		report.HasTAF = true
	}

	return report, nil
}

// FetchWeatherBatch fetches several airports concurrently. Every airport
// gets a result, failed ones carry their error; results keep input order.
func (ws *WeatherSource) FetchWeatherBatch(ctx context.Context, codes []string) []WeatherResult {
	results := make([]WeatherResult, len(codes))

	var eg errgroup.Group
	eg.SetLimit(maxConcurrentStations)
	for i, code := range codes {
		i, code := i, code
		eg.Go(func() error {
			report, err := ws.FetchWeather(ctx, code)
			results[i] = WeatherResult{Airport: strings.ToUpper(strings.TrimSpace(code)), Report: report, Err: err}
			return nil
		})
	}
	_ = eg.Wait() // errors are kept per airport

	return results
}

// parseMETAR extracts the observation from a NOAA station file, which
// starts with a timestamp line followed by the METAR.
func parseMETAR(body []byte) string {
	lines := strings.Split(string(body), "\n")
	if len(lines) < 2 { //nolint:mnd // timestamp line plus report
		return ""
	}
	return strings.TrimSpace(lines[1])
}

// parseTAF joins the lines after the timestamp of a NOAA TAF file into one
// line of text.
func parseTAF(body []byte) string {
	lines := strings.Split(string(body), "\n")
	if len(lines) < 2 { //nolint:mnd // timestamp line plus report
		return ""
	}

	var parts []string
	for _, line := range lines[1:] {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, " ")
}
