package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"colplot/internal/panel"
)

// Zones are keyed by row index; a name can appear as both a text and a numeric row.
func sortZone(i int) string { return "sort:" + strconv.Itoa(i) }
func showZone(i int) string { return "show:" + strconv.Itoa(i) }
func rowZone(i int) string  { return "row:" + strconv.Itoa(i) }

// renderPanel draws one line per panel row: text rows show only their name,
// numeric rows a sort radio, a show checkbox and the name.
func (m Model) renderPanel(w, h int) string {
	rows := m.rows.Rows()
	if len(rows) == 0 {
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, dimStyle.Render("Tab: open a file\np: paste csv"))
	}
	// keep the cursor row on screen
	start := 0
	if m.cursor >= h {
		start = m.cursor - h + 1
	}
	lines := make([]string, 0, h)
	for i := start; i < len(rows) && len(lines) < h; i++ {
		r := rows[i]
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("› ")
		}
		name := truncate(r.Name, w-12)
		if r.Kind == panel.TextRow {
			lines = append(lines, pointer+"        "+m.zones.Mark(rowZone(i), dimStyle.Render(name)))
			continue
		}
		radio, box := "( )", "[ ]"
		if r.Sorted {
			radio = "(•)"
		}
		if r.Shown {
			box = "[x]"
		}
		if i == m.cursor {
			name = cursorStyle.Render(name)
		}
		lines = append(lines, pointer+
			m.zones.Mark(sortZone(i), radio)+" "+
			m.zones.Mark(showZone(i), box)+" "+
			m.zones.Mark(rowZone(i), name))
	}
	return lipgloss.NewStyle().Width(w).Height(h).Render(strings.Join(lines, "\n"))
}

func truncate(s string, n int) string {
	if n <= 1 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
