// Package internal provides the weather Dashboard, the NOAA weather source
// and the input parsing shared by the tui and ticker front ends.
package internal

import (
	"log/slog"
	"sort"
)

// Dashboard keeps the latest weather report per station and counts how
// often each station published a new METAR.
type Dashboard struct {
	isWarmup    bool
	Latest      map[string]WeatherReport
	UpdateCount map[string]int
	Failures    map[string]int
	logger      slog.Logger
}

func NewDashboard() *Dashboard {
	return &Dashboard{
		isWarmup:    true,
		Latest:      make(map[string]WeatherReport),
		UpdateCount: make(map[string]int),
		Failures:    make(map[string]int),
		logger:      *slog.Default(),
	}
}

// FinishWarmupPeriod marks the first round of reports as seen. Reports
// processed before are stored but not announced as updates.
func (db *Dashboard) FinishWarmupPeriod() {
	db.isWarmup = false
}

// ProcessWeather records a batch of results and returns the reports whose
// METAR differs from the previously stored one, in station order.
func (db *Dashboard) ProcessWeather(results []WeatherResult) []*WeatherReport {
	var updated []*WeatherReport

	for i := range results {
		result := results[i]
		if result.Err != nil {
			db.Failures[result.Airport]++
			db.logger.Warn("dashboard: weather fetch failed",
				slog.String("airport", result.Airport),
				slog.Any("error", result.Err))
			continue
		}

		report := result.Report
		previous, exists := db.Latest[report.Airport]
		db.Latest[report.Airport] = report

		if exists && previous.METAR == report.METAR {
			continue
		}

		db.logger.Debug("dashboard: new METAR",
			slog.String("airport", report.Airport),
			slog.String("metar", report.METAR))

		if db.isWarmup || !exists {
			continue
		}

		db.UpdateCount[report.Airport]++
		updated = append(updated, &report)
	}

	sort.Slice(updated, func(i, j int) bool { return updated[i].Airport < updated[j].Airport })
	return updated
}

// Stations returns the codes of all stations with a stored report, sorted.
func (db *Dashboard) Stations() []string {
	stations := make([]string, 0, len(db.Latest))
	for station := range db.Latest {
		stations = append(stations, station)
	}
	sort.Strings(stations)
	return stations
}
