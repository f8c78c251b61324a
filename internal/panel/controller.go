package panel

import (
	"github.com/rs/zerolog"

	"colplot/internal/columns"
)

// Controller owns the column store and keeps a panel and a plot in step with it.
type Controller struct {
	store *columns.Store
	panel Panel
	plot  PlotView
	log   zerolog.Logger
}

type Option func(*Controller)

func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

func New(store *columns.Store, p Panel, plot PlotView, opts ...Option) *Controller {
	c := &Controller{
		store: store,
		panel: p,
		plot:  plot,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Store() *columns.Store { return c.store }

// SetStore replaces the data. Call Rebuild afterwards to refresh the panel.
func (c *Controller) SetStore(s *columns.Store) { c.store = s }

// Rebuild recreates every panel row from the store, keeping the previous
// sort and show choices that still name numeric columns, then redraws.
func (c *Controller) Rebuild() error {
	sel := RestoreSelection(c.panel, c.store)
	c.panel.Clear()
	for _, name := range c.store.TextNames() {
		c.panel.AddTextRow(name)
	}
	for _, name := range c.store.NumericNames() {
		c.panel.AddNumericRow(name, sel.HasSort && sel.Sort == name, sel.IsShown(name))
	}
	c.log.Debug().
		Str("sort", sel.Sort).
		Strs("shown", sel.Shown).
		Int("text_rows", len(c.store.TextNames())).
		Int("numeric_rows", len(c.store.NumericNames())).
		Msg("panel rebuilt")
	return c.Refresh()
}

// Series builds the series for the current controls without drawing them.
func (c *Controller) Series() ([]Series, AxisOptions, error) {
	return BuildSeries(c.store, c.panel)
}

// Refresh redraws the plot from the current controls.
func (c *Controller) Refresh() error {
	series, axes, err := c.Series()
	if err != nil {
		c.log.Error().Err(err).Msg("build series")
		return err
	}
	if err := c.plot.Draw(series, axes); err != nil {
		c.log.Error().Err(err).Msg("draw plot")
		return err
	}
	c.log.Debug().Int("series", len(series)).Int("rows", len(axes.Categories)).Msg("plot refreshed")
	return nil
}
