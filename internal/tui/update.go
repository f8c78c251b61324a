package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"colplot/internal/columns"
	"colplot/internal/panel"
	"colplot/internal/plot"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-1-2) // provisional; will be refined in View
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		if m.showAttrs && !key.Matches(msg, m.keys.Attrs, m.keys.Quit) {
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Files):
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.height-1-2)
			}
		case key.Matches(msg, m.keys.Open) && m.showSidebar:
			if it, ok := m.l.SelectedItem().(fileItem); ok {
				m.loadPath(it.path)
			}
		case m.showSidebar && key.Matches(msg, m.keys.Up, m.keys.Down):
			// the file list owns the arrows while it is open
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.rows.Len()-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Sort):
			if m.rows.SelectSort(m.cursor) {
				m.refresh()
			}
		case key.Matches(msg, m.keys.Show):
			if m.rows.ToggleShow(m.cursor) {
				m.refresh()
			}
		case key.Matches(msg, m.keys.Rebuild):
			if m.loaded {
				if err := m.ctrl.Rebuild(); err != nil {
					m.setError("rebuild", err)
				} else {
					m.setStatus("panel rebuilt")
				}
			}
		case key.Matches(msg, m.keys.Marker):
			if m.term.Marker == plot.MarkerDot {
				m.term.Marker = plot.MarkerBraille
			} else {
				m.term.Marker = plot.MarkerDot
			}
			m.setStatus("markers: " + m.term.Marker.String())
		case key.Matches(msg, m.keys.Export):
			m.export()
		case key.Matches(msg, m.keys.Attrs):
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrs()
			}
		case key.Matches(msg, m.keys.Paste):
			m.pasteMode = true
			m.ta.SetValue("")
			m.setStatus("paste mode")
			return m, m.ta.Focus()
		default:
			if m.showSidebar {
				var cmd tea.Cmd
				m.l, cmd = m.l.Update(msg)
				return m, cmd
			}
		}
		return m, nil
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			m.click(msg)
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.setStatus("view mode")
		return m, nil
	case "ctrl+s":
		text := strings.TrimSpace(m.ta.Value())
		if text == "" {
			m.setStatus("paste: empty")
			return m, nil
		}
		s, err := columns.ParseCSV(strings.NewReader(text))
		if err != nil {
			m.setError("paste", err)
			return m, nil
		}
		m.pasteMode = false
		m.ta.Blur()
		m.selPath = ""
		m.setStore(s, "pasted")
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// click flips the sort radio or show checkbox under the mouse.
func (m *Model) click(msg tea.MouseMsg) {
	for i, r := range m.rows.Rows() {
		if r.Kind != panel.NumericRow {
			if m.inZone(rowZone(i), msg) {
				m.cursor = i
				return
			}
			continue
		}
		switch {
		case m.inZone(sortZone(i), msg):
			m.cursor = i
			m.rows.SelectSort(i)
			m.refresh()
			return
		case m.inZone(showZone(i), msg):
			m.cursor = i
			m.rows.ToggleShow(i)
			m.refresh()
			return
		case m.inZone(rowZone(i), msg):
			m.cursor = i
			return
		}
	}
}

func (m *Model) inZone(id string, msg tea.MouseMsg) bool {
	z := m.zones.Get(id)
	return z != nil && z.InBounds(msg)
}

// refresh redraws the plot after a control changed; the panel is left as is.
func (m *Model) refresh() {
	if err := m.ctrl.Refresh(); err != nil {
		m.setError("plot", err)
		return
	}
	shown := 0
	for _, t := range m.rows.ShowControls() {
		if t.Checked {
			shown++
		}
	}
	status := fmt.Sprintf("shown: %d", shown)
	if name, ok := m.rows.SortColumn(); ok {
		status += "  sort: " + name
	}
	m.setStatus(status)
}

func (m *Model) export() {
	if !m.loaded {
		m.setStatus("export: nothing loaded")
		return
	}
	series, axes, err := m.ctrl.Series()
	if err != nil {
		m.setError("export", err)
		return
	}
	title := filepath.Base(m.selPath)
	if m.selPath == "" {
		title = "pasted data"
	}
	out := &plot.PNG{Path: m.exportPath, Title: title}
	if err := out.Draw(series, axes); err != nil {
		m.setError("export", err)
		return
	}
	m.log.Info().Str("path", m.exportPath).Int("series", len(series)).Msg("exported plot")
	m.setStatus("exported: " + m.exportPath)
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}
