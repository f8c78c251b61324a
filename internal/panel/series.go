package panel

import (
	"errors"
	"fmt"

	"colplot/internal/columns"
)

var (
	ErrMissingID      = errors.New("panel: no Id column")
	ErrUnknownColumn  = errors.New("panel: unknown numeric column")
	ErrLengthMismatch = errors.New("panel: column shorter than Id")
)

// Axis identifies one of the two x axes.
type Axis int

const (
	PrimaryAxis Axis = iota + 1
	SecondaryAxis
)

// Series is one plotted column as (position, value) pairs.
type Series struct {
	Label  string
	Points bool // draw point markers
	XAxis  Axis
	Data   [][2]float64
}

type AxisOption struct {
	Show bool
}

// AxisOptions configures the two x axes. The primary axis is the category
// axis labelled by Categories; series are placed on the hidden secondary
// axis by row position.
type AxisOptions struct {
	Primary    AxisOption
	Secondary  AxisOption
	Categories []string
}

// RowOrder returns the plotting position of every row. Positions follow
// the Id column as is; the sort control does not reorder them.
func RowOrder(store *columns.Store) ([]int, error) {
	ids, ok := store.Text(columns.IDColumn)
	if !ok {
		return nil, ErrMissingID
	}
	order := make([]int, len(ids))
	for i := range order {
		order[i] = i
	}
	return order, nil
}

// BuildSeries creates one series per checked show control, in control order.
// A checked control naming a column that store does not have is an error,
// not skipped.
func BuildSeries(store *columns.Store, c Controls) ([]Series, AxisOptions, error) {
	order, err := RowOrder(store)
	if err != nil {
		return nil, AxisOptions{}, err
	}
	ids, _ := store.Text(columns.IDColumn)
	axes := AxisOptions{
		Primary:    AxisOption{Show: true},
		Secondary:  AxisOption{Show: false},
		Categories: ids,
	}
	var series []Series
	for _, t := range c.ShowControls() {
		if !t.Checked {
			continue
		}
		values, ok := store.Numeric(t.Name)
		if !ok {
			return nil, axes, fmt.Errorf("%w: %q", ErrUnknownColumn, t.Name)
		}
		if len(values) < len(order) {
			return nil, axes, fmt.Errorf("%w: %q has %d values, Id has %d", ErrLengthMismatch, t.Name, len(values), len(order))
		}
		data := make([][2]float64, len(order))
		for i, pos := range order {
			data[i] = [2]float64{float64(pos), values[i]}
		}
		series = append(series, Series{
			Label:  t.Name,
			Points: true,
			XAxis:  SecondaryAxis,
			Data:   data,
		})
	}
	return series, axes, nil
}
