package panel

import "colplot/internal/columns"

// Selection is the sort column and shown columns carried across a rebuild.
type Selection struct {
	Sort    string
	HasSort bool
	Shown   []string
}

// IsShown reports whether name is among the shown columns.
func (s Selection) IsShown(name string) bool {
	for _, n := range s.Shown {
		if n == name {
			return true
		}
	}
	return false
}

// RestoreSelection reads the current controls and keeps what still applies
// to store. Checked names that are not numeric columns of store are dropped.
// When nothing is left the first numeric column is shown, so a rebuilt panel
// always plots at least one series unless store has no numeric columns.
func RestoreSelection(c Controls, store *columns.Store) Selection {
	var sel Selection
	sel.Sort, sel.HasSort = c.SortColumn()
	for _, t := range c.ShowControls() {
		if !t.Checked || !store.HasNumeric(t.Name) || sel.IsShown(t.Name) {
			continue
		}
		sel.Shown = append(sel.Shown, t.Name)
	}
	if len(sel.Shown) == 0 {
		if names := store.NumericNames(); len(names) > 0 {
			sel.Shown = []string{names[0]}
		}
	}
	return sel
}
