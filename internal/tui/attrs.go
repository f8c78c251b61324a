package tui

import (
	"math"
	"strconv"

	table "github.com/charmbracelet/bubbles/table"

	"colplot/internal/columns"
)

const maxColW = 16

// refreshAttrs rebuilds the data table from the current store:
// text columns first, then numeric columns, one table row per data row.
func (m *Model) refreshAttrs() {
	s := m.ctrl.Store()
	cols, rows := buildAttributes(s)
	if len(cols) == 0 || len(rows) == 0 {
		m.showAttrs = false
		m.status = "no rows in current dataset"
		return
	}
	tcols := make([]table.Column, 0, len(cols)+1)
	tcols = append(tcols, table.Column{Title: "#", Width: 4})
	for _, c := range cols {
		w := len(c) + 2
		if w > maxColW {
			w = maxColW
		}
		if w < 6 {
			w = 6
		}
		tcols = append(tcols, table.Column{Title: c, Width: w})
	}
	trows := make([]table.Row, 0, len(rows))
	for i, r := range rows {
		row := make(table.Row, 0, len(r)+1)
		row = append(row, strconv.Itoa(i+1))
		row = append(row, r...)
		trows = append(trows, row)
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}

// buildAttributes returns the column titles and the cell text of every row.
func buildAttributes(s *columns.Store) ([]string, [][]string) {
	n := s.Rows()
	if n == 0 {
		return nil, nil
	}
	var cols []string
	var cells [][]string
	for _, name := range s.TextNames() {
		vals, _ := s.Text(name)
		cols = append(cols, name)
		cells = append(cells, vals)
	}
	for _, name := range s.NumericNames() {
		vals, _ := s.Numeric(name)
		text := make([]string, len(vals))
		for i, v := range vals {
			if !math.IsNaN(v) {
				text[i] = strconv.FormatFloat(v, 'g', 6, 64)
			}
		}
		cols = append(cols, name)
		cells = append(cells, text)
	}
	rows := make([][]string, n)
	for i := range rows {
		row := make([]string, len(cols))
		for c := range cols {
			if i < len(cells[c]) {
				row[c] = cells[c][i]
			}
		}
		rows[i] = row
	}
	return cols, rows
}
