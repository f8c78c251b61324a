package plot

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"colplot/internal/panel"
)

const maxCategoryTicks = 24

// PNG writes each drawn plot to Path as a scatter chart.
type PNG struct {
	Path   string
	Title  string
	Width  int
	Height int
}

func (p *PNG) Draw(series []panel.Series, axes panel.AxisOptions) error {
	f, err := os.Create(p.Path)
	if err != nil {
		return err
	}
	if err := p.Render(f, series, axes); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// pointStyle renders points only (no connecting line)
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    4,
		DotColor:    col,
	}
}

// Render encodes the chart as PNG into w. With no plottable points a blank
// image of the same size is written instead.
func (p *PNG) Render(w io.Writer, series []panel.Series, axes panel.AxisOptions) error {
	width, height := p.size()
	var cs []chart.Series
	for i, s := range series {
		xs, ys := finite(s.Data)
		if len(xs) == 0 {
			continue
		}
		if len(xs) == 1 {
			// a single point has no x range; repeat it so the chart can scale
			xs = append(xs, xs[0]+1e-9)
			ys = append(ys, ys[0])
		}
		cs = append(cs, chart.ContinuousSeries{
			Name:    s.Label,
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(drawing.ColorFromHex(SeriesColor(i)[1:])),
		})
	}
	if len(cs) == 0 {
		return png.Encode(w, blank(width, height))
	}

	b := dataBounds(series).padded()
	ch := chart.Chart{
		Title:      p.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 12, Bottom: 16}},
		XAxis:      xAxis(axes, b),
		YAxis:      chart.YAxis{Range: &chart.ContinuousRange{Min: b.minY, Max: b.maxY}},
		Series:     cs,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func (p *PNG) size() (int, int) {
	w, h := p.Width, p.Height
	if w <= 0 {
		w = 1024
	}
	if h <= 0 {
		h = 480
	}
	return w, h
}

// xAxis shows Id labels on the category axis and hides raw positions
// unless the secondary axis is asked for.
func xAxis(axes panel.AxisOptions, b bounds) chart.XAxis {
	ax := chart.XAxis{Range: &chart.ContinuousRange{Min: b.minX, Max: b.maxX}}
	switch {
	case axes.Secondary.Show:
		ax.ValueFormatter = func(v interface{}) string {
			if f, ok := v.(float64); ok {
				return fmt.Sprintf("%.0f", f)
			}
			return ""
		}
	case axes.Primary.Show && len(axes.Categories) > 0:
		ax.Ticks = categoryTicks(axes.Categories)
	default:
		ax.Style = chart.Style{Hidden: true}
	}
	return ax
}

// categoryTicks labels at most maxCategoryTicks rows, always including the
// last one. go-chart takes the x range from the tick values, so unlabelled
// ticks half a slot outside the first and last row keep every point inside.
func categoryTicks(cats []string) []chart.Tick {
	step := int(math.Ceil(float64(len(cats)) / maxCategoryTicks))
	if step < 1 {
		step = 1
	}
	ticks := make([]chart.Tick, 0, len(cats)/step+4)
	last := len(cats) - 1
	ticks = append(ticks, chart.Tick{Value: -0.5})
	for i := 0; i < len(cats); i += step {
		if i != last && last-i < step/2 {
			// too close to the last label to fit beside it
			continue
		}
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: cats[i]})
	}
	if last >= 0 && last%step != 0 {
		ticks = append(ticks, chart.Tick{Value: float64(last), Label: cats[last]})
	}
	return append(ticks, chart.Tick{Value: float64(last) + 0.5})
}

func finite(data [][2]float64) (xs, ys []float64) {
	for _, p := range data {
		if math.IsNaN(p[1]) || math.IsInf(p[1], 0) {
			continue
		}
		xs = append(xs, p[0])
		ys = append(ys, p[1])
	}
	return xs, ys
}

func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	return img
}
