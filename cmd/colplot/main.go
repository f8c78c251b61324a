// Command colplot plots numeric columns of a table in the terminal.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"colplot/internal/logging"
	"colplot/internal/plot"
	"colplot/internal/tui"
)

var (
	logLevel string
	logFile  string
	sheet    string
	marker   string
	output   string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "colplot [file]",
		Short: "Plot numeric columns of a CSV, TSV or XLSX table",
		Long: `colplot shows one row per column of a table with sort and show
toggles, and plots every shown numeric column against the row Id.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runViewer,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&sheet, "sheet", "", "Worksheet to read from .xlsx files (default: first)")
	rootCmd.Flags().StringVar(&marker, "marker", "dot", "Point markers: dot or braille")
	rootCmd.Flags().StringVarP(&output, "output", "o", "colplot.png", "PNG path used by the export key")

	rootCmd.AddCommand(newExportCmd())
	return rootCmd
}

func errInvalidMarker(s string) error {
	return fmt.Errorf("invalid marker: %s (must be dot or braille)", s)
}

func runViewer(cmd *cobra.Command, args []string) error {
	logger, closer, err := logging.New(logLevel, logFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	mk, ok := plot.ParseMarker(marker)
	if !ok {
		return errInvalidMarker(marker)
	}
	opts := tui.Options{
		Sheet:      sheet,
		Marker:     mk,
		ExportPath: output,
		Logger:     &logger,
	}
	if len(args) > 0 {
		opts.Path = args[0]
	}
	logger.Info().Str("path", opts.Path).Str("marker", mk.String()).Msg("starting viewer")
	if _, err := tea.NewProgram(tui.New(opts), tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		logger.Error().Err(err).Msg("viewer stopped")
		return err
	}
	return nil
}

// headlessLogger logs to the console unless a log file was asked for.
func headlessLogger() (zerolog.Logger, func() error, error) {
	if logFile != "" {
		l, closer, err := logging.New(logLevel, logFile)
		return l, closer.Close, err
	}
	lvl, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return zerolog.Nop(), func() error { return nil }, err
	}
	return logging.Console(lvl), func() error { return nil }, nil
}
