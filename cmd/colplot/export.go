package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"colplot/internal/columns"
	"colplot/internal/panel"
	"colplot/internal/plot"
)

type exportOptions struct {
	show   []string
	sort   string
	output string
	width  int
	height int
	title  string
}

func newExportCmd() *cobra.Command {
	var o exportOptions
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write the plot of a table to a PNG file",
		Long: `export loads a table, selects the --show columns that exist (or the
first numeric column when none do) and writes the scatter plot as PNG.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := runExport(args[0], o)
			return err
		},
	}
	cmd.Flags().StringSliceVar(&o.show, "show", nil, "Columns to plot, comma separated")
	cmd.Flags().StringVar(&o.sort, "sort", "", "Sort column to record in the panel")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Output PNG path (default: <input>.png)")
	cmd.Flags().IntVar(&o.width, "width", 1024, "Image width in pixels")
	cmd.Flags().IntVar(&o.height, "height", 480, "Image height in pixels")
	cmd.Flags().StringVar(&o.title, "title", "", "Chart title (default: input file name)")
	return cmd
}

// runExport writes the plot and returns the columns it shows.
func runExport(input string, o exportOptions) ([]string, error) {
	logger, closeLog, err := headlessLogger()
	if err != nil {
		return nil, err
	}
	defer closeLog()

	store, err := columns.Load(input, sheet)
	if err != nil {
		return nil, fmt.Errorf("load failed: %w", err)
	}
	if o.output == "" {
		o.output = strings.TrimSuffix(input, filepath.Ext(input)) + ".png"
	}
	if o.title == "" {
		o.title = filepath.Base(input)
	}

	// seed the panel with the requested choices; Rebuild keeps the valid ones
	tbl := panel.NewTable()
	for _, name := range o.show {
		tbl.AddNumericRow(strings.TrimSpace(name), false, true)
	}
	if o.sort != "" {
		tbl.AddNumericRow(o.sort, true, false)
	}
	out := &plot.PNG{Path: o.output, Title: o.title, Width: o.width, Height: o.height}
	ctrl := panel.New(store, tbl, out, panel.WithLogger(logger))
	if err := ctrl.Rebuild(); err != nil {
		return nil, fmt.Errorf("export failed: %w", err)
	}

	var shown []string
	for _, t := range tbl.ShowControls() {
		if t.Checked {
			shown = append(shown, t.Name)
		}
	}
	logger.Info().Str("output", o.output).Strs("shown", shown).Int("rows", store.Rows()).Msg("plot exported")
	return shown, nil
}
