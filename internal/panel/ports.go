// Package panel derives plot series from a column-selection panel.
//
// The panel itself is reached through small ports so that the selection
// rules can run against any surface: the terminal viewer, a headless
// export or a test fake.
package panel

// PanelView receives the rows of a rebuilt panel.
type PanelView interface {
	Clear()
	AddTextRow(name string)
	AddNumericRow(name string, sorted, shown bool)
}

// Toggle is the state of one show checkbox.
type Toggle struct {
	Name    string
	Checked bool
}

// Controls exposes the live state of the sort radios and show checkboxes.
type Controls interface {
	// SortColumn returns the selected sort radio, if any.
	SortColumn() (string, bool)
	// ShowControls returns every show checkbox in row order.
	ShowControls() []Toggle
}

// Panel is a surface that can be both read and rebuilt.
type Panel interface {
	PanelView
	Controls
}

// PlotView draws a list of series.
type PlotView interface {
	Draw(series []Series, axes AxisOptions) error
}
