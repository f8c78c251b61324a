package plot

import (
	"strings"
	"testing"

	"colplot/internal/panel"
)

func sampleSeries() ([]panel.Series, panel.AxisOptions) {
	series := []panel.Series{
		{Label: "score", Points: true, XAxis: panel.SecondaryAxis, Data: [][2]float64{{0, 1}, {1, 2}, {2, 3}}},
		{Label: "rmsd", Points: true, XAxis: panel.SecondaryAxis, Data: [][2]float64{{0, 0.5}, {1, 0.7}, {2, 0.2}}},
	}
	axes := panel.AxisOptions{
		Primary:    panel.AxisOption{Show: true},
		Categories: []string{"a", "b", "c"},
	}
	return series, axes
}

func TestTerminalEmptyPlot(t *testing.T) {
	term := NewTerminal(MarkerDot)
	if err := term.Draw(nil, panel.AxisOptions{}); err != nil {
		t.Fatalf("draw: %v", err)
	}
	out := term.Render(40, 10)
	if !strings.Contains(out, "no columns shown") {
		t.Fatalf("empty plot output:\n%s", out)
	}
}

func TestTerminalRenderModes(t *testing.T) {
	series, axes := sampleSeries()
	for _, marker := range []Marker{MarkerDot, MarkerBraille} {
		t.Run(marker.String(), func(t *testing.T) {
			term := NewTerminal(marker)
			if err := term.Draw(series, axes); err != nil {
				t.Fatal(err)
			}
			out := term.Render(60, 16)
			if !strings.Contains(out, "score") || !strings.Contains(out, "rmsd") {
				t.Fatalf("legend missing:\n%s", out)
			}
			if marker == MarkerBraille && !hasBraille(out) {
				t.Fatalf("no braille dots:\n%s", out)
			}
			if marker == MarkerDot && !strings.ContainsRune(out, dotRune) {
				t.Fatalf("no dot markers:\n%s", out)
			}
		})
	}
}

func TestTerminalTooSmall(t *testing.T) {
	series, axes := sampleSeries()
	term := NewTerminal(MarkerDot)
	term.Draw(series, axes)
	if out := term.Render(4, 2); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}

func TestCategoryLabels(t *testing.T) {
	cats := []string{"a", "b"}
	if c, ok := category(cats, 1.1); !ok || c != "b" {
		t.Fatalf("category(1.1) = %q, %v", c, ok)
	}
	if _, ok := category(cats, 0.5); ok {
		t.Fatalf("half way between rows must not be labelled")
	}
	if _, ok := category(cats, 2); ok {
		t.Fatalf("out of range position labelled")
	}
}

func TestParseMarker(t *testing.T) {
	if m, ok := ParseMarker("Braille"); !ok || m != MarkerBraille {
		t.Fatalf("ParseMarker(Braille) = %v, %v", m, ok)
	}
	if _, ok := ParseMarker("line"); ok {
		t.Fatalf("ParseMarker accepted line")
	}
}

func hasBraille(s string) bool {
	for _, r := range s {
		if r > 0x2800 && r <= 0x28FF {
			return true
		}
	}
	return false
}
