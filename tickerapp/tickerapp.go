// Package tickerapp launches the ticker application which writes METAR and TAF updates to stdout
// and can be piped into other programs and processed further.
// This is in contrast to the TUI app, which works more like an interactive calculator.
package tickerapp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/micutio/airtoolbox/internal"
)

var errNoAirports = errors.New("no airports given, use --airports")

// DisplayOptions control what the ticker does besides printing reports.
type DisplayOptions struct {
	IsNotify bool
	IsDump   bool
}

// poller bundles everything a single polling round needs.
type poller struct {
	source  *internal.WeatherSource
	dash    *internal.Dashboard
	notify  *internal.Notify
	options internal.RequestOptions
	logger  *slog.Logger
}

func Run(appName string, options internal.RequestOptions, display DisplayOptions, logger *slog.Logger) error {
	if len(options.Airports) == 0 {
		return fmt.Errorf("tickerapp.Run: %w", errNoAirports)
	}
	if err := options.Validate(); err != nil {
		return fmt.Errorf("tickerapp.Run: %w", err)
	}

	stdout := io.Writer(os.Stdout)
	fmt.Printf("%s watching %s every %s\n", appName, strings.Join(options.Airports, ", "), options.Interval)

	p := &poller{
		source:  internal.NewWeatherSource(),
		dash:    internal.NewDashboard(),
		notify:  internal.NewNotify(appName, &stdout, display.IsNotify, display.IsDump),
		options: options,
		logger:  logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Run once in the beginning, the first round only fills the dashboard.
	p.poll(ctx, true)
	p.dash.FinishWarmupPeriod()

	// Create a weather update ticker that fires in a given interval
	weatherUpdateTicker := time.NewTicker(options.Interval)
	defer weatherUpdateTicker.Stop()

	// Create a summary ticker that fires in a given interval
	summaryTicker := time.NewTicker(internal.SummaryInterval)
	defer summaryTicker.Stop()

	for {
		select {
		case <-weatherUpdateTicker.C:
			p.poll(ctx, false)
		case <-summaryTicker.C:
			p.notify.PrintSummary(p.dash)
		case <-ctx.Done():
			logger.Info("Shutdown signal received, stopping...")
			return nil
		}
	}
}

// poll fetches all airports once. The first round prints every report,
// later rounds only announce stations with a changed METAR.
func (p *poller) poll(ctx context.Context, isFirst bool) {
	reqCtx, cancel := context.WithTimeout(ctx, p.options.Timeout)
	defer cancel()

	results := p.source.FetchWeatherBatch(reqCtx, p.options.Airports)
	updated := p.dash.ProcessWeather(results)

	if isFirst {
		for _, station := range p.dash.Stations() {
			report := p.dash.Latest[station]
			p.notify.PrintReport(&report)
		}
	}

	for _, result := range results {
		if result.Err != nil {
			p.logger.Error("tickerapp: ", slog.String("airport", result.Airport), slog.Any("error", result.Err))
		}
	}

	if err := p.notify.EmitUpdateNotifications(updated); err != nil {
		p.logger.Error("tickerapp: ", slog.Any("error", err))
	}
	for _, report := range updated {
		p.notify.PrintReport(report)
	}
}
