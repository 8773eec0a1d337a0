// Package tuiapp provides the TUI app which bundles the flight calculators, the unit converter
// and a METAR/TAF lookup behind a menu.
// Layout idea:
// +-------------------------------------------------+
// | airtoolbox - Wind Components                    |
// |                                                 |
// | Runway: 09____                                  |
// | Wind:   090/20                                  |
// |                                                 |
// |  _____________________________________________  |
// | | result table                                | |
// | | label             value                     | |
// |  ---------------------------------------------  |
// | error line                                      |
// | key help                                        |
// +-------------------------------------------------+
// .
package tuiapp

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/micutio/airtoolbox/internal"
	"github.com/micutio/airtoolbox/internal/calc"
)

const (
	unitConverterTitle = "Unit Converter"
	weatherTitle       = "METAR / TAF"
	inputWidth         = 24
	airportCharLimit   = 4
)

type Theme struct {
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Green     lipgloss.AdaptiveColor
	Red       lipgloss.AdaptiveColor
}

var Color = Theme{
	Primary:   lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},
	Secondary: lipgloss.AdaptiveColor{Light: "#969B86", Dark: "#696969"},
	Highlight: lipgloss.AdaptiveColor{Light: "#8b2def", Dark: "#8b2def"},
	Border:    lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"},
	Green:     lipgloss.AdaptiveColor{Light: "#00FF00", Dark: "#00FF00"},
	Red:       lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF0000"},
}

func Run(appName string, options internal.RequestOptions, logger *slog.Logger) error {
	if err := options.Validate(); err != nil {
		return fmt.Errorf("tuiapp.Run: %w", err)
	}

	m := newModel(appName, options, internal.NewWeatherSource(), logger)

	// Create a new Bubble Tea program with the model and enable alternate screen
	p := tea.NewProgram(m, tea.WithAltScreen())

	// Run the program and handle any errors
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tuiapp.Run: %w", err)
	}
	return nil
}

// Model implements the bubbletea.Model interface, which requires three methods:
// - Init() Cmd
// - Update(Msg) (Model, Cmd)
// - View() string
// This forms the base for the TUI app.
type model struct {
	appName    string
	width      int
	height     int
	baseStyle  lipgloss.Style
	viewStyle  lipgloss.Style
	theme      Theme
	tableStyle table.Styles
	logger     *slog.Logger

	state       uiState
	menu        autoFormatTable
	results     autoFormatTable
	calculators []calculator
	active      int
	inputs      []textinput.Model
	focusIndex  int
	errMsg      string

	conversions *calc.ConversionTable
	categoryIdx int
	unitIdx     int

	source     *internal.WeatherSource
	options    internal.RequestOptions
	spinner    spinner.Model
	isLoading  bool
	weatherSeq int
	airport    string
}

func newModel(
	appName string,
	options internal.RequestOptions,
	source *internal.WeatherSource,
	logger *slog.Logger,
) *model {
	tableStyle := table.DefaultStyles()
	tableStyle.Selected = tableStyle.Selected.Background(Color.Highlight)

	calcs := calculators()
	entries := make([]string, 0, len(calcs)+2) //nolint:mnd // unit converter and weather
	for _, c := range calcs {
		entries = append(entries, c.title)
	}
	entries = append(entries, unitConverterTitle, weatherTitle)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(Color.Highlight)

	return &model{
		appName:     appName,
		baseStyle:   lipgloss.NewStyle(),
		viewStyle:   lipgloss.NewStyle(),
		theme:       Color,
		tableStyle:  tableStyle,
		logger:      logger,
		state:       menuScreen,
		menu:        newMenuTable(tableStyle, entries),
		results:     newResultTable(tableStyle),
		calculators: calcs,
		conversions: calc.DefaultConversionTable(),
		source:      source,
		options:     options,
		spinner:     s,
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

// Update takes a tea.Msg as input and uses a type switch to handle different types of messages.
// Each case in the switch statement corresponds to a specific message type.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { //nolint:ireturn // required by interface
	switch thisMsg := msg.(type) {
	// message is sent when the window size changes
	// save to reflect the new dimensions of the terminal window.
	case tea.WindowSizeMsg:
		m.height = thisMsg.Height
		m.width = thisMsg.Width
		m.resizeTables()
		return m, nil

	case tea.KeyMsg:
		if thisMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.state == menuScreen {
			return m.updateMenu(thisMsg)
		}
		return m.updateScreen(thisMsg)

	case spinner.TickMsg:
		if !m.isLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(thisMsg)
		return m, cmd

	case WeatherResponseMsg:
		return m.handleWeather(thisMsg)

	case WeatherRefreshTickMsg:
		if thisMsg.Seq != m.weatherSeq || m.state != weatherScreen || m.isLoading {
			return m, nil
		}
		m.isLoading = true
		return m, tea.Batch(
			m.spinner.Tick,
			requestWeatherCmd(m.source, m.airport, m.options.Timeout, m.weatherSeq))
	}

	// If the message type does not match any of the handled cases, the model is returned unchanged,
	// and no new command is issued.
	return m, nil
}

func (m *model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) { //nolint:ireturn // forwards Update
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "enter":
		return m, m.open(m.menu.table.Cursor())
	}

	var cmd tea.Cmd
	m.menu.table, cmd = m.menu.table.Update(msg)
	return m, cmd
}

// updateScreen handles keys on the form, unit and weather screens.
func (m *model) updateScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) { //nolint:ireturn // forwards Update
	switch msg.String() {
	case "esc":
		m.state = menuScreen
		m.isLoading = false
		m.weatherSeq++
		return m, nil
	case "ctrl+r":
		m.reset()
		return m, nil
	case "enter":
		return m, m.submit()
	case "tab":
		return m, m.moveFocus(1)
	case "shift+tab":
		return m, m.moveFocus(-1)
	}

	if m.state == unitScreen {
		switch msg.String() {
		case "left":
			m.cycleCategory(-1)
			return m, nil
		case "right":
			m.cycleCategory(1)
			return m, nil
		case "up":
			m.cycleUnit(-1)
			return m, nil
		case "down":
			m.cycleUnit(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	return m, cmd
}

// open switches to the screen of the menu entry at idx.
func (m *model) open(idx int) tea.Cmd {
	m.errMsg = ""
	m.results.SetRows([]table.Row{})

	switch {
	case idx < len(m.calculators):
		m.state = formScreen
		m.active = idx
		fields := m.calculators[idx].fields
		m.inputs = make([]textinput.Model, len(fields))
		for i, f := range fields {
			m.inputs[i] = newInput(f.placeholder)
		}
	case idx == len(m.calculators):
		m.state = unitScreen
		m.categoryIdx = 0
		m.unitIdx = 0
		m.inputs = []textinput.Model{newInput("100")}
	default:
		m.state = weatherScreen
		input := newInput("KJFK")
		input.CharLimit = airportCharLimit
		if len(m.options.Airports) > 0 {
			input.SetValue(m.options.Airports[0])
		}
		m.inputs = []textinput.Model{input}
	}

	m.focusIndex = 0
	return m.inputs[0].Focus()
}

func newInput(placeholder string) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Width = inputWidth
	input.Prompt = ""
	return input
}

func (m *model) moveFocus(delta int) tea.Cmd {
	if len(m.inputs) == 0 {
		return nil
	}
	m.inputs[m.focusIndex].Blur()
	m.focusIndex = (m.focusIndex + delta + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focusIndex].Focus()
}

func (m *model) reset() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.errMsg = ""
	m.results.SetRows([]table.Row{})
}

// submit runs the calculation of the current screen, or starts a weather fetch.
func (m *model) submit() tea.Cmd {
	values := make([]string, len(m.inputs))
	for i, input := range m.inputs {
		values[i] = input.Value()
	}

	var rows []table.Row
	var err error

	switch m.state {
	case formScreen:
		rows, err = m.calculators[m.active].compute(values)
	case unitScreen:
		rows, err = computeConversion(m.conversions, m.category().Name, m.unit().Symbol, values[0])
	case weatherScreen:
		airport, codeErr := internal.NormalizeAirportCode(values[0])
		if codeErr != nil {
			m.showError(codeErr)
			return nil
		}
		m.airport = airport
		m.isLoading = true
		m.errMsg = ""
		m.weatherSeq++
		return tea.Batch(m.spinner.Tick, requestWeatherCmd(m.source, airport, m.options.Timeout, m.weatherSeq))
	case menuScreen:
		return nil
	}

	if err != nil {
		m.showError(err)
		return nil
	}
	m.errMsg = ""
	m.results.SetRows(rows)
	return nil
}

func (m *model) handleWeather(msg WeatherResponseMsg) (tea.Model, tea.Cmd) { //nolint:ireturn // forwards Update
	if msg.Seq != m.weatherSeq {
		return m, nil
	}
	m.isLoading = false

	if msg.Err != nil {
		m.showError(msg.Err)
		m.logger.Error("tuiapp: ", slog.String("airport", m.airport), slog.Any("error", msg.Err))
		return m, nil
	}

	m.errMsg = ""
	m.results.SetRows(weatherToRows(msg.Report))
	return m, weatherRefreshTick(m.options.Interval, m.weatherSeq)
}

func (m *model) showError(err error) {
	m.errMsg = err.Error()
	m.results.SetRows([]table.Row{})
	m.logger.Debug("tuiapp: calculation rejected", slog.Any("error", err))
}

func (m *model) category() calc.Category {
	names := m.conversions.Categories()
	category, err := m.conversions.Category(names[m.categoryIdx])
	if err != nil {
		m.logger.Error("tuiapp: ", slog.Any("error", err))
	}
	return category
}

func (m *model) unit() calc.Unit {
	return m.category().SourceUnits()[m.unitIdx]
}

func (m *model) cycleCategory(delta int) {
	count := len(m.conversions.Categories())
	m.categoryIdx = (m.categoryIdx + delta + count) % count
	m.unitIdx = 0
	m.results.SetRows([]table.Row{})
}

func (m *model) cycleUnit(delta int) {
	count := len(m.category().SourceUnits())
	m.unitIdx = (m.unitIdx + delta + count) % count
	m.results.SetRows([]table.Row{})
}

func (m *model) resizeTables() {
	for _, aft := range []*autoFormatTable{&m.menu, &m.results} {
		if err := aft.resize(m.width); err != nil {
			m.logger.Error("tuiapp: ", slog.Any("error", err))
		}
	}
}

func (m *model) View() string {
	// Sets the width of the column to the width of the terminal (m.width) and adds padding of 1 unit
	// on the top.
	column := m.baseStyle.Width(m.width).Padding(1, 0, 0, 0).Render

	var body string
	switch m.state {
	case menuScreen:
		body = m.viewStyle.Render(m.menu.table.View())
	case formScreen, unitScreen, weatherScreen:
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.viewForm(),
			column(m.viewResults()),
		)
	}

	return m.baseStyle.
		Width(m.width).
		Height(m.height).
		Render(
			lipgloss.JoinVertical(lipgloss.Left,
				m.viewHeader(),
				column(body),
				column(m.viewFooter()),
			),
		)
}

func (m *model) viewHeader() string {
	title := m.appName
	switch m.state {
	case formScreen:
		title += " - " + m.calculators[m.active].title
	case unitScreen:
		title += " - " + unitConverterTitle
	case weatherScreen:
		title += " - " + weatherTitle
	case menuScreen:
	}
	return m.baseStyle.Bold(true).Foreground(m.theme.Highlight).Render(title)
}

// viewForm renders the labeled inputs of the current screen.
func (m *model) viewForm() string {
	var labels []string
	switch m.state {
	case formScreen:
		for _, f := range m.calculators[m.active].fields {
			labels = append(labels, f.label)
		}
	case unitScreen:
		category := m.category()
		unit := m.unit()
		labels = []string{fmt.Sprintf("%s (%s)", category.Label, unit.Symbol)}
	case weatherScreen:
		labels = []string{"Airport"}
	case menuScreen:
		return ""
	}

	labelWidth := 0
	for _, label := range labels {
		labelWidth = max(labelWidth, lipgloss.Width(label))
	}
	labelStyle := m.baseStyle.Width(labelWidth + 2).Foreground(m.theme.Secondary) //nolint:mnd // ": "

	lines := make([]string, 0, len(labels))
	for i, label := range labels {
		lines = append(lines, labelStyle.Render(label+":")+m.inputs[i].View())
	}
	return strings.Join(lines, "\n")
}

func (m *model) viewResults() string {
	var lines []string
	if m.isLoading {
		lines = append(lines, m.spinner.View()+" fetching weather for "+m.airport)
	}
	if len(m.results.table.Rows()) > 0 {
		lines = append(lines, m.results.table.View())
	}
	if m.errMsg != "" {
		lines = append(lines, m.baseStyle.Foreground(m.theme.Red).Render(m.errMsg))
	}
	return strings.Join(lines, "\n")
}

func (m *model) viewFooter() string {
	help := "↑/↓ select • enter open • q quit"
	switch m.state {
	case formScreen:
		help = "tab/shift+tab move • enter calculate • ctrl+r reset • esc back"
	case unitScreen:
		help = "←/→ category • ↑/↓ unit • enter convert • ctrl+r reset • esc back"
	case weatherScreen:
		help = "enter fetch • ctrl+r reset • esc back"
	case menuScreen:
	}
	return m.baseStyle.Foreground(m.theme.Secondary).Render(help)
}
