package panel

// RowKind tells text rows from numeric rows.
type RowKind int

const (
	TextRow RowKind = iota
	NumericRow
)

// Row is one line of the panel. Sorted and Shown only apply to numeric rows.
type Row struct {
	Kind   RowKind
	Name   string
	Sorted bool
	Shown  bool
}

// Table is an in-memory Panel. Interactive surfaces render its rows and
// flip its controls; the controller rebuilds it.
type Table struct {
	rows []Row
}

func NewTable() *Table { return &Table{} }

func (t *Table) Clear() { t.rows = nil }

func (t *Table) AddTextRow(name string) {
	t.rows = append(t.rows, Row{Kind: TextRow, Name: name})
}

func (t *Table) AddNumericRow(name string, sorted, shown bool) {
	t.rows = append(t.rows, Row{Kind: NumericRow, Name: name, Sorted: sorted, Shown: shown})
}

func (t *Table) SortColumn() (string, bool) {
	for _, r := range t.rows {
		if r.Kind == NumericRow && r.Sorted {
			return r.Name, true
		}
	}
	return "", false
}

func (t *Table) ShowControls() []Toggle {
	var out []Toggle
	for _, r := range t.rows {
		if r.Kind == NumericRow {
			out = append(out, Toggle{Name: r.Name, Checked: r.Shown})
		}
	}
	return out
}

// Rows returns a copy of the current rows.
func (t *Table) Rows() []Row { return append([]Row(nil), t.rows...) }

func (t *Table) Len() int { return len(t.rows) }

// Index returns the position of the numeric row called name, or -1.
func (t *Table) Index(name string) int {
	for i, r := range t.rows {
		if r.Kind == NumericRow && r.Name == name {
			return i
		}
	}
	return -1
}

// SelectSort selects the sort radio of row i and clears the others.
// It reports false when row i has no controls.
func (t *Table) SelectSort(i int) bool {
	if i < 0 || i >= len(t.rows) || t.rows[i].Kind != NumericRow {
		return false
	}
	for j := range t.rows {
		t.rows[j].Sorted = j == i
	}
	return true
}

// ToggleShow flips the show checkbox of row i.
// It reports false when row i has no controls.
func (t *Table) ToggleShow(i int) bool {
	if i < 0 || i >= len(t.rows) || t.rows[i].Kind != NumericRow {
		return false
	}
	t.rows[i].Shown = !t.rows[i].Shown
	return true
}

// SetShown checks exactly the named show controls.
func (t *Table) SetShown(names ...string) {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	for i := range t.rows {
		if t.rows[i].Kind == NumericRow {
			t.rows[i].Shown = want[t.rows[i].Name]
		}
	}
}
