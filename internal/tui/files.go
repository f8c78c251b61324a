package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"colplot/internal/columns"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.setError("read dir", err)
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !columns.Supported(name) {
			continue
		}
		items = append(items, fileItem{title: name, desc: strings.ToLower(filepath.Ext(name)), path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath reads a data file and rebuilds the panel from it.
func (m *Model) loadPath(p string) {
	s, err := columns.Load(p, m.sheet)
	if err != nil {
		m.setError("load", err)
		return
	}
	m.selPath = p
	m.log.Info().Str("path", p).Int("rows", s.Rows()).Msg("loaded data")
	m.setStore(s, "loaded: "+filepath.Base(p))
}

// setStore swaps in new data and rebuilds, keeping the prior choices that still apply.
func (m *Model) setStore(s *columns.Store, what string) {
	m.ctrl.SetStore(s)
	m.loaded = true
	if err := m.ctrl.Rebuild(); err != nil {
		m.setError("rebuild", err)
		return
	}
	if m.cursor >= m.rows.Len() {
		m.cursor = max(0, m.rows.Len()-1)
	}
	m.status = what + fmt.Sprintf("  rows=%d text=%d numeric=%d", s.Rows(), len(s.TextNames()), len(s.NumericNames()))
	m.statusErr = false
	// If the data table is shown, follow the new dataset
	if m.showAttrs {
		m.refreshAttrs()
	}
}

func (m *Model) setError(what string, err error) {
	m.log.Error().Err(err).Str("op", what).Msg("viewer error")
	m.status = what + " error: " + err.Error()
	m.statusErr = true
}
