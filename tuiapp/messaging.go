package tuiapp

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/micutio/airtoolbox/internal"
)

// WeatherResponseMsg carries the outcome of a weather fetch. Seq identifies
// the request so that answers to outdated requests can be dropped.
type WeatherResponseMsg struct {
	Seq    int
	Report internal.WeatherReport
	Err    error
}

func requestWeatherCmd(source *internal.WeatherSource, airport string, timeout time.Duration, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		report, err := source.FetchWeather(ctx, airport)
		return WeatherResponseMsg{Seq: seq, Report: report, Err: err}
	}
}

type WeatherRefreshTickMsg struct {
	Seq int
}

func weatherRefreshTick(interval time.Duration, seq int) tea.Cmd {
	return tea.Every(
		interval,
		func(t time.Time) tea.Msg {
			return WeatherRefreshTickMsg{Seq: seq}
		},
	)
}
