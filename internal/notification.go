package internal

import (
	"fmt"
	"io"
	"log" //nolint:depguard // Don't feel like using slog

	"github.com/gen2brain/beeep"
	"github.com/goforj/godump"
)

const (
	// appIconPath is the file path to the icon png for this application.
	appIconPath = "./assets/icon.png"
)

// Notify prints reports to the console and, if enabled, raises desktop
// notifications when a station publishes a new METAR.
type Notify struct {
	Stdout    log.Logger
	out       io.Writer
	isDesktop bool
	isDump    bool
}

func NewNotify(appName string, consoleOut *io.Writer, isDesktop bool, isDump bool) *Notify {
	beeep.AppName = appName //nolint:reassign // This is the only way to set app name in beeep.
	return &Notify{
		Stdout:    *log.New(*consoleOut, "", 0),
		out:       *consoleOut,
		isDesktop: isDesktop,
		isDump:    isDump,
	}
}

// PrintReport prints the METAR and TAF of a station.
func (notify *Notify) PrintReport(report *WeatherReport) {
	notify.Stdout.Println(reportToString(report))
	if notify.isDump {
		godump.Fdump(notify.out, report)
	}
}

// PrintSummary lists the stations by how often their METAR changed.
func (notify *Notify) PrintSummary(db *Dashboard) {
	notify.Stdout.Println("=== Summary ===")
	notify.Stdout.Println("METAR updates per station:")
	for _, count := range SortedUpdateCounts(db.UpdateCount) {
		notify.Stdout.Printf("%6d - %s\n", count.Count, count.Station)
	}
	notify.Stdout.Println("=== End Summary ===")
}

// EmitUpdateNotifications announces every station whose METAR changed.
func (notify *Notify) EmitUpdateNotifications(updates []*WeatherReport) error {
	for _, report := range updates {
		notify.Stdout.Printf("METAR updated %s\n", report.METAR)
		if !notify.isDesktop {
			continue
		}
		title := "New METAR for " + report.Airport
		if err := beeep.Notify(title, report.METAR, appIconPath); err != nil {
			return fmt.Errorf("emitUpdateNotifications: %w", err)
		}
	}
	return nil
}

// reportToString generates the block printed for one station.
func reportToString(report *WeatherReport) string {
	return fmt.Sprintf("%s %s\n  METAR %s\n  TAF   %s",
		report.Airport,
		report.FetchedAt.UTC().Format("2006-01-02 15:04Z"),
		report.METAR,
		report.TAF)
}
