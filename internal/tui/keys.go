package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Sort    key.Binding
	Show    key.Binding
	Rebuild key.Binding
	Marker  key.Binding
	Export  key.Binding
	Attrs   key.Binding
	Files   key.Binding
	Open    key.Binding
	Paste   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Sort, k.Show, k.Files, k.Export, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Sort, k.Show},
		{k.Rebuild, k.Marker, k.Export, k.Attrs},
		{k.Files, k.Open, k.Paste},
		{k.Help, k.Quit},
	}
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort"),
	),
	Show: key.NewBinding(
		key.WithKeys(" ", "x"),
		key.WithHelp("space/x", "show"),
	),
	Rebuild: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rebuild"),
	),
	Marker: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "markers"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export png"),
	),
	Attrs: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "data"),
	),
	Files: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "files"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Paste: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "paste csv"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
