package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// WeatherUpdateInterval determines how often the ticker polls the weather.
	WeatherUpdateInterval = 10 * time.Minute
	// WeatherRequestTimeout bounds the METAR and TAF requests of one airport.
	WeatherRequestTimeout = 15 * time.Second
	// SummaryInterval determines how often the summary is shown.
	SummaryInterval = 1 * time.Hour
	// metarURLFormat is the NOAA text file with the latest METAR of a station.
	metarURLFormat = "https://tgftp.nws.noaa.gov/data/observations/metar/stations/%s.TXT"
	// tafURLFormat is the NOAA text file with the latest TAF of a station.
	tafURLFormat = "https://tgftp.nws.noaa.gov/data/forecasts/taf/stations/%s.TXT"
)

var (
	ErrNonOkResponse     = errors.New("non-OK response")
	ErrEmptyResponseBody = errors.New("empty response body")
	ErrNonTextContent    = errors.New("non-text content type")
	ErrInvalidDuration   = errors.New("duration must be positive")
)

// RequestOptions configure which airports are queried and how.
type RequestOptions struct {
	Airports []string
	Interval time.Duration
	Timeout  time.Duration
}

// Validate rejects intervals and timeouts that are zero or negative.
func (o RequestOptions) Validate() error {
	if o.Interval <= 0 {
		return fmt.Errorf("requestOptions: interval %s: %w", o.Interval, ErrInvalidDuration)
	}
	if o.Timeout <= 0 {
		return fmt.Errorf("requestOptions: timeout %s: %w", o.Timeout, ErrInvalidDuration)
	}
	return nil
}

// WeatherSource fetches raw weather text. The URL formats take the airport
// code as their only verb and can be pointed at a test server.
type WeatherSource struct {
	Client         *http.Client
	METARURLFormat string
	TAFURLFormat   string
}

// NewWeatherSource returns a source reading from the NOAA text server.
func NewWeatherSource() *WeatherSource {
	return &WeatherSource{
		Client:         http.DefaultClient,
		METARURLFormat: metarURLFormat,
		TAFURLFormat:   tafURLFormat,
	}
}

func (ws *WeatherSource) requestMETAR(ctx context.Context, airport string) ([]byte, error) {
	body, err := ws.sendRequest(ctx, fmt.Sprintf(ws.METARURLFormat, airport))
	if err != nil {
		return nil, fmt.Errorf("requestMETAR: error during request: %w", err)
	}
	return body, nil
}

func (ws *WeatherSource) requestTAF(ctx context.Context, airport string) ([]byte, error) {
	body, err := ws.sendRequest(ctx, fmt.Sprintf(ws.TAFURLFormat, airport))
	if err != nil {
		return nil, fmt.Errorf("requestTAF: error during request: %w", err)
	}
	return body, nil
}

// sendRequest sends an HTTP GET request and returns a valid byte slice of the response body.
func (ws *WeatherSource) sendRequest(ctx context.Context, url string) (body []byte, err error) {
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if reqErr != nil {
		return nil, fmt.Errorf("sendRequest: invalid request error: %s : %w", url, reqErr)
	}

	client := ws.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, respErr := client.Do(req)
	if respErr != nil {
		return nil, fmt.Errorf("sendRequest: failed to send GET request: %s: %w", url, respErr)
	}
	defer func() {
		closeErr := resp.Body.Close()
		if closeErr != nil && err == nil {
			err = fmt.Errorf("sendRequest: error while closing response body: %w", closeErr)
		}
	}()

	// Check if the request was successful (status code 200 OK)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sendRequest: %w %s", ErrNonOkResponse, resp.Status)
	}

	// Read the response body
	body, bodyErr := io.ReadAll(resp.Body)
	if bodyErr != nil {
		return nil, fmt.Errorf("sendRequest: failed to read response body: %w", bodyErr)
	}

	if len(body) == 0 {
		return nil, fmt.Errorf("sendRequest: %w", ErrEmptyResponseBody)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != "" && !strings.HasPrefix(contentType, "text/") {
		return nil, fmt.Errorf("sendRequest: %w, %s", ErrNonTextContent, contentType)
	}

	return body, nil
}
