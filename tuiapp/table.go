package tuiapp

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
)

// Error types

var errColumnMismatch = errors.New("number of columns does not match number of format columns")

// Automated Table Formatting

type tableColumnSizingOption int

const (
	// fixed column width, regardless of table width.
	fixed tableColumnSizingOption = iota
	// relative column with, given as percentage of the total table width.
	relative
	// fill columns receive any remaining table space, evenly distributed.
	fill
)

type columnFormat struct {
	option tableColumnSizingOption
	value  float32
}

type tableFormat struct {
	columnSizes        []columnFormat
	fixedWidth         int     // fixedWidth is the total space taken up by all fixed-width columns.
	fillWidthCount     int     // fillWidthCount indicates how many columns have fill width.
	totalRelativeWidth float32 // how much width is taken by relative columns.
}

func newTableFormat(items ...columnFormat) tableFormat {
	var totalRelativeWidth float32
	fixedWidth := 0
	fillWidthCount := 0

	for _, item := range items {
		switch item.option {
		case relative:
			totalRelativeWidth += item.value
			continue
		case fixed:
			fixedWidth += int(item.value)
			continue
		case fill:
			fillWidthCount++
			continue
		}
	}

	return tableFormat{
		columnSizes:        items,
		fixedWidth:         fixedWidth,
		fillWidthCount:     fillWidthCount,
		totalRelativeWidth: totalRelativeWidth,
	}
}

// Integrated Formatted Table Type

type autoFormatTable struct {
	table  table.Model
	format tableFormat
}

// resize distributes newWidth over the columns. One cell of padding per
// column and the table border are subtracted first.
func (aft *autoFormatTable) resize(newWidth int) error {
	columns := aft.table.Columns()
	columnCount := len(columns)
	if columnCount != len(aft.format.columnSizes) {
		return fmt.Errorf(
			"table.resize: %w -> %d in table, %d in tableFormat",
			errColumnMismatch,
			columnCount,
			len(aft.format.columnSizes))
	}

	adjustedWidth := max(newWidth-1-columnCount, 0)
	totalRelativeWidth := int(float32(adjustedWidth) * aft.format.totalRelativeWidth)
	totalFillWidth := max(adjustedWidth-totalRelativeWidth-aft.format.fixedWidth, 0)
	fillPerColumn := 0
	if aft.format.fillWidthCount > 0 {
		fillPerColumn = totalFillWidth / aft.format.fillWidthCount
	}

	resized := make([]table.Column, columnCount)
	for idx, column := range columns {
		format := aft.format.columnSizes[idx]
		resized[idx] = column
		switch format.option {
		case fixed:
			resized[idx].Width = int(format.value)
		case relative:
			resized[idx].Width = int(format.value * float32(adjustedWidth))
		case fill:
			resized[idx].Width = fillPerColumn
		}
	}

	aft.table.SetColumns(resized)
	aft.table.SetWidth(adjustedWidth)
	return nil
}

func (aft *autoFormatTable) SetHeight(height int) {
	aft.table.SetHeight(height)
}

// SetRows replaces the rows and grows the table to show all of them.
func (aft *autoFormatTable) SetRows(rows []table.Row) {
	aft.table.SetRows(rows)
	aft.table.SetHeight(len(rows) + 1)
}

// newMenuTable lists the screens that can be opened from the main menu.
func newMenuTable(tableStyle table.Styles, entries []string) autoFormatTable {
	numLen := 4
	format := newTableFormat(
		columnFormat{fixed, float32(numLen)},
		columnFormat{fill, 0.0},
	)

	rows := make([]table.Row, len(entries))
	for i, entry := range entries {
		rows[i] = table.Row{fmt.Sprintf("%2d", i+1), entry}
	}

	menuTbl := table.New(
		table.WithColumns(
			[]table.Column{
				{Title: "#", Width: numLen},
				{Title: "Tool", Width: 0},
			},
		),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
		table.WithStyles(tableStyle),
	)

	return autoFormatTable{
		table:  menuTbl,
		format: format,
	}
}

// newResultTable shows the label/value pairs of a calculation.
func newResultTable(tableStyle table.Styles) autoFormatTable {
	labelLen := 20
	initialTableHeight := 5
	format := newTableFormat(
		columnFormat{fixed, float32(labelLen)},
		columnFormat{fill, 0.0},
	)

	resultTbl := table.New(
		table.WithColumns(
			[]table.Column{
				{Title: "Result", Width: labelLen},
				{Title: "Value", Width: 0},
			},
		),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
		table.WithHeight(initialTableHeight),
		table.WithStyles(tableStyle),
	)

	return autoFormatTable{
		table:  resultTbl,
		format: format,
	}
}
