package tuiapp

type uiState int

const (
	menuScreen    uiState = iota // first page on startup, listing all tools
	formScreen                   // calculator form with results below
	unitScreen                   // unit converter, cycling categories and units
	weatherScreen                // METAR and TAF lookup of one airport
)
