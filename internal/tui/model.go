package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rs/zerolog"

	"colplot/internal/columns"
	"colplot/internal/panel"
	"colplot/internal/plot"
)

const (
	sidebarWidth = 28
	panelWidth   = 32
)

// Options configure a new viewer.
type Options struct {
	Path       string // file to load at launch
	Sheet      string // worksheet for .xlsx files
	Marker     plot.Marker
	ExportPath string
	Logger     *zerolog.Logger
}

type Model struct {
	width  int
	height int

	showSidebar bool

	status    string
	statusErr bool

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string
	sheet   string

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// data table
	showAttrs bool
	tbl       table.Model

	// column panel and plot
	cursor     int
	rows       *panel.Table
	term       *plot.Terminal
	ctrl       *panel.Controller
	loaded     bool
	exportPath string

	keys  keyMap
	help  help.Model
	zones *zone.Manager
	log   zerolog.Logger
}

func New(opts Options) Model {
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	m := Model{
		status:     "colplot ready",
		sheet:      opts.Sheet,
		rows:       panel.NewTable(),
		term:       plot.NewTerminal(opts.Marker),
		exportPath: opts.ExportPath,
		keys:       keys,
		help:       help.New(),
		zones:      zone.New(),
		log:        log,
	}
	if m.exportPath == "" {
		m.exportPath = "colplot.png"
	}
	m.ctrl = panel.New(columns.NewStore(), m.rows, m.term, panel.WithLogger(log))
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste CSV with a header row and an Id column. Press Ctrl+S to load; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// data table setup (columns follow the loaded dataset)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	if opts.Path != "" {
		m.loadPath(opts.Path)
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }
