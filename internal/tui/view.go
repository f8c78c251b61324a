package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	// Layout sizes
	sbWidth := 0
	if m.showSidebar {
		sbWidth = sidebarWidth
	}
	helpView := m.help.View(m.keys)
	headerHeight := 1
	footerHeight := 1 + lipgloss.Height(helpView)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 4 {
		contentHeight = 4
	}
	contentWidth := max(10, m.width)

	// Update list size with accurate content height when sidebar visible
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, contentHeight-2)
	}

	// Header
	title := " colplot ─ column plot "
	if m.selPath != "" {
		title += "─ " + m.selPath + " "
	}
	header := lipgloss.NewStyle().Width(contentWidth).MaxWidth(contentWidth).Render(titleStyle.Render(title))

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sbWidth).Render(m.l.View())
	}

	// Column panel
	pw := min(panelWidth, max(16, contentWidth/3))
	panelBox := boxStyle.Width(pw - 2).Height(contentHeight - 2).Render(m.renderPanel(pw-4, contentHeight-2))

	// Plot area
	plotWidth := contentWidth - sbWidth - pw - 1
	if m.showSidebar {
		plotWidth--
	}
	if plotWidth < 10 {
		plotWidth = 10
	}
	plotHeight := contentHeight
	var plotView string
	switch {
	case m.pasteMode:
		m.ta.SetWidth(plotWidth)
		m.ta.SetHeight(min(plotHeight, 16))
		plotView = lipgloss.NewStyle().Width(plotWidth).Height(plotHeight).Render(m.ta.View())
	case m.showAttrs:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(plotWidth, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(plotHeight-2, 20))
		attrsBox := boxStyle.Width(maxW).Render(m.tbl.View())
		plotView = lipgloss.Place(plotWidth, plotHeight, lipgloss.Center, lipgloss.Center, attrsBox)
	default:
		plotView = lipgloss.NewStyle().Width(plotWidth).Height(plotHeight).Render(m.term.Render(plotWidth, plotHeight))
	}

	// Body row
	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", panelBox, " ", plotView)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, panelBox, " ", plotView)
	}

	// Footer / help
	status := dimStyle.Render(" " + m.status + " ")
	if m.statusErr {
		status = errStyle.Render(" " + m.status + " ")
	}
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinVertical(lipgloss.Left, status, helpView))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return m.zones.Scan(appStyle.Width(contentWidth).Height(m.height).Render(ui))
}
