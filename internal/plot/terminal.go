package plot

import (
	"math"
	"strconv"
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"

	"colplot/internal/panel"
)

// Marker selects how points are drawn in the terminal.
type Marker int

const (
	// MarkerDot draws one rune per point on an axis frame.
	MarkerDot Marker = iota
	// MarkerBraille draws 2x4 dots per cell, useful for many rows.
	MarkerBraille
)

func (m Marker) String() string {
	if m == MarkerBraille {
		return "braille"
	}
	return "dot"
}

// ParseMarker accepts "dot" or "braille".
func ParseMarker(s string) (Marker, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dot", "":
		return MarkerDot, true
	case "braille":
		return MarkerBraille, true
	}
	return MarkerDot, false
}

const dotRune = '•'

var (
	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#243141"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

func seriesStyle(i int) lipgloss.Style {
	if i < 0 {
		return axisStyle
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(SeriesColor(i)))
}

// Terminal keeps the last drawn series and renders them as text on demand,
// since the cell size is only known when the view is laid out.
type Terminal struct {
	Marker Marker

	series []panel.Series
	axes   panel.AxisOptions
	draws  int
}

func NewTerminal(marker Marker) *Terminal {
	return &Terminal{Marker: marker}
}

func (t *Terminal) Draw(series []panel.Series, axes panel.AxisOptions) error {
	t.series = series
	t.axes = axes
	t.draws++
	return nil
}

// Series returns what was last drawn.
func (t *Terminal) Series() []panel.Series { return t.series }

// Draws counts Draw calls.
func (t *Terminal) Draws() int { return t.draws }

// Legend returns one coloured marker and label per series.
func (t *Terminal) Legend() string {
	parts := make([]string, 0, len(t.series))
	for i, s := range t.series {
		parts = append(parts, seriesStyle(i).Render(string(dotRune))+" "+s.Label)
	}
	return strings.Join(parts, "  ")
}

// Render returns the plot sized to w x h cells, legend line included.
func (t *Terminal) Render(w, h int) string {
	if w < 8 || h < 4 {
		return ""
	}
	b := dataBounds(t.series)
	if !b.ok {
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, emptyStyle.Render("no columns shown"))
	}
	b = b.padded()
	legend := lipgloss.NewStyle().MaxWidth(w).Render(t.Legend())
	var body string
	if t.Marker == MarkerBraille {
		body = t.renderBraille(w, h-1, b)
	} else {
		body = t.renderDots(w, h-1, b)
	}
	return lipgloss.JoinVertical(lipgloss.Left, legend, body)
}

func (t *Terminal) renderDots(w, h int, b bounds) string {
	lc := linechart.New(w, h, b.minX, b.maxX, b.minY, b.maxY)
	lc.AxisStyle = axisStyle
	lc.LabelStyle = labelStyle
	lc.YLabelFormatter = func(_ int, v float64) string {
		return strconv.FormatFloat(v, 'g', 4, 64)
	}
	lc.XLabelFormatter = t.xLabel
	lc.SetXStep(4)
	lc.DrawXYAxisAndLabel()
	for i, s := range t.series {
		st := seriesStyle(i)
		for _, p := range s.Data {
			if math.IsNaN(p[1]) || math.IsInf(p[1], 0) {
				continue
			}
			lc.DrawRuneWithStyle(canvas.Float64Point{X: p[0], Y: p[1]}, dotRune, st)
		}
	}
	return lc.View()
}

// xLabel labels the visible axis: Id categories when the position axis is
// hidden, raw positions otherwise.
func (t *Terminal) xLabel(_ int, v float64) string {
	if t.axes.Primary.Show && !t.axes.Secondary.Show {
		if c, ok := category(t.axes.Categories, v); ok {
			return c
		}
		return ""
	}
	if t.axes.Secondary.Show {
		return strconv.Itoa(int(math.Round(v)))
	}
	return ""
}

func (t *Terminal) renderBraille(w, h int, b bounds) string {
	br := newBrailleBuf(w, h)
	wMic, hMic := w*2, h*4
	// axes along the left and bottom edges
	br.drawLineMicro(0, 0, 0, hMic-1, -1)
	br.drawLineMicro(0, hMic-1, wMic-1, hMic-1, -1)
	for i, s := range t.series {
		for _, p := range s.Data {
			if math.IsNaN(p[1]) || math.IsInf(p[1], 0) {
				continue
			}
			nx := (p[0] - b.minX) / (b.maxX - b.minX)
			ny := (p[1] - b.minY) / (b.maxY - b.minY)
			mx := 1 + int(nx*float64(wMic-2))
			my := int((1.0 - ny) * float64(hMic-2))
			br.setPixel(mx, my, i)
		}
	}
	return strings.Join(br.toLines(seriesStyle), "\n")
}
