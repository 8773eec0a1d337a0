package tuiapp

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/micutio/airtoolbox/internal"
)

func newTestModel(source *internal.WeatherSource) *model {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	options := internal.RequestOptions{
		Airports: []string{"KJFK"},
		Interval: time.Minute,
		Timeout:  time.Second,
	}
	if source == nil {
		source = internal.NewWeatherSource()
	}
	return newModel("airtoolbox", options, source, logger)
}

func press(m *model, key tea.KeyType) {
	m.Update(tea.KeyMsg{Type: key})
}

func typeText(m *model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func TestMenuOpensCalculator(t *testing.T) {
	m := newTestModel(nil)

	press(m, tea.KeyEnter)
	if m.state != formScreen {
		t.Fatalf("state = %v, want formScreen", m.state)
	}
	if m.active != 0 {
		t.Errorf("active calculator = %d, want 0", m.active)
	}
	if len(m.inputs) != len(m.calculators[0].fields) {
		t.Errorf("inputs = %d, want %d", len(m.inputs), len(m.calculators[0].fields))
	}

	press(m, tea.KeyEsc)
	if m.state != menuScreen {
		t.Errorf("state after esc = %v, want menuScreen", m.state)
	}
}

func TestWindComponentsForm(t *testing.T) {
	m := newTestModel(nil)
	press(m, tea.KeyEnter)

	typeText(m, "09")
	press(m, tea.KeyTab)
	typeText(m, "180/20")
	press(m, tea.KeyEnter)

	if m.errMsg != "" {
		t.Fatalf("unexpected error: %s", m.errMsg)
	}
	rows := m.results.table.Rows()
	if len(rows) != 4 {
		t.Fatalf("result rows = %d, want 4", len(rows))
	}
	if rows[3][1] != "20 kt Right" {
		t.Errorf("crosswind = %q, want %q", rows[3][1], "20 kt Right")
	}

	press(m, tea.KeyCtrlR)
	if len(m.results.table.Rows()) != 0 {
		t.Errorf("rows after reset = %d, want 0", len(m.results.table.Rows()))
	}
	if m.inputs[0].Value() != "" {
		t.Errorf("input after reset = %q, want empty", m.inputs[0].Value())
	}
}

func TestFormShowsError(t *testing.T) {
	m := newTestModel(nil)
	press(m, tea.KeyEnter)

	typeText(m, "09")
	press(m, tea.KeyTab)
	typeText(m, "banana")
	press(m, tea.KeyEnter)

	if m.errMsg == "" {
		t.Error("expected an error message for malformed wind")
	}
	if len(m.results.table.Rows()) != 0 {
		t.Errorf("rows = %d, want 0", len(m.results.table.Rows()))
	}
}

func TestFocusWrapsAround(t *testing.T) {
	m := newTestModel(nil)
	press(m, tea.KeyEnter)

	press(m, tea.KeyShiftTab)
	if m.focusIndex != len(m.inputs)-1 {
		t.Errorf("focus = %d, want %d", m.focusIndex, len(m.inputs)-1)
	}
	press(m, tea.KeyTab)
	if m.focusIndex != 0 {
		t.Errorf("focus = %d, want 0", m.focusIndex)
	}
}

func TestUnitScreen(t *testing.T) {
	m := newTestModel(nil)
	m.open(len(m.calculators))
	if m.state != unitScreen {
		t.Fatalf("state = %v, want unitScreen", m.state)
	}

	typeText(m, "100")
	press(m, tea.KeyEnter)
	rows := m.results.table.Rows()
	if len(rows) == 0 || rows[0][1] != "185.20 km" {
		t.Fatalf("rows = %v, want first row 185.20 km", rows)
	}

	press(m, tea.KeyRight)
	if m.category().Name != "speed" {
		t.Errorf("category = %q, want speed", m.category().Name)
	}
	press(m, tea.KeyLeft)
	press(m, tea.KeyLeft)
	if m.category().Name != "volume" {
		t.Errorf("category = %q, want volume", m.category().Name)
	}
	press(m, tea.KeyDown)
	if m.unit().Symbol != "US gal" {
		t.Errorf("unit = %q, want US gal", m.unit().Symbol)
	}
}

func TestWeatherScreen(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		if strings.Contains(r.URL.Path, "metar") {
			_, _ = io.WriteString(w, "2026/10/17 12:00\nKJFK 171151Z 31012KT 10SM FEW050 12/02 A3012\n")
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	source := &internal.WeatherSource{
		Client:         server.Client(),
		METARURLFormat: server.URL + "/metar/%s.TXT",
		TAFURLFormat:   server.URL + "/taf/%s.TXT",
	}
	m := newTestModel(source)
	m.open(len(m.calculators) + 1)

	if m.inputs[0].Value() != "KJFK" {
		t.Fatalf("airport input = %q, want KJFK", m.inputs[0].Value())
	}
	if cmd := m.submit(); cmd == nil {
		t.Fatal("expected a fetch command")
	}
	if !m.isLoading {
		t.Error("expected loading state after submit")
	}

	msg := requestWeatherCmd(source, m.airport, time.Second, m.weatherSeq)()
	m.Update(msg)

	if m.isLoading {
		t.Error("still loading after response")
	}
	if m.errMsg != "" {
		t.Fatalf("unexpected error: %s", m.errMsg)
	}
	rows := m.results.table.Rows()
	if rows[1][1] != "KJFK 171151Z 31012KT 10SM FEW050 12/02 A3012" {
		t.Errorf("METAR row = %q", rows[1][1])
	}
	if rows[2][1] != "TAF not available for this airport" {
		t.Errorf("TAF row = %q", rows[2][1])
	}
}

func TestStaleWeatherResponseIgnored(t *testing.T) {
	m := newTestModel(nil)
	m.open(len(m.calculators) + 1)
	m.weatherSeq = 2

	m.Update(WeatherResponseMsg{Seq: 1, Report: internal.WeatherReport{Airport: "EDDF"}})
	if len(m.results.table.Rows()) != 0 {
		t.Errorf("stale response was shown")
	}
}

func TestRunRejectsZeroInterval(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	options := internal.RequestOptions{Airports: []string{"KJFK"}, Interval: 0, Timeout: time.Second}

	if err := Run("airtoolbox", options, logger); !errors.Is(err, internal.ErrInvalidDuration) {
		t.Errorf("Run() error = %v, want %v", err, internal.ErrInvalidDuration)
	}
}
