// Package plot draws panel series, either into the terminal or to a PNG file.
package plot

import (
	"math"

	"colplot/internal/panel"
)

// Palette holds the series colours, cycled by series index.
var Palette = []string{
	"#7C3AED",
	"#22C55E",
	"#F59E0B",
	"#06B6D4",
	"#EF4444",
	"#EC4899",
	"#A3A3A3",
}

// SeriesColor returns the hex colour for the i-th series.
func SeriesColor(i int) string {
	return Palette[i%len(Palette)]
}

// bounds is the data extent of a set of series, NaN values ignored.
type bounds struct {
	minX, maxX float64
	minY, maxY float64
	ok         bool
}

func dataBounds(series []panel.Series) bounds {
	var b bounds
	for _, s := range series {
		for _, p := range s.Data {
			if math.IsNaN(p[1]) || math.IsInf(p[1], 0) {
				continue
			}
			if !b.ok {
				b = bounds{minX: p[0], maxX: p[0], minY: p[1], maxY: p[1], ok: true}
				continue
			}
			b.minX = math.Min(b.minX, p[0])
			b.maxX = math.Max(b.maxX, p[0])
			b.minY = math.Min(b.minY, p[1])
			b.maxY = math.Max(b.maxY, p[1])
		}
	}
	return b
}

// padded widens the extent so single rows and flat columns stay visible.
// Positions get half a slot on each side so categories sit between ticks.
func (b bounds) padded() bounds {
	b.minX -= 0.5
	b.maxX += 0.5
	if b.maxY == b.minY {
		b.minY--
		b.maxY++
	} else {
		pad := (b.maxY - b.minY) * 0.05
		b.minY -= pad
		b.maxY += pad
	}
	return b
}

// category maps an x position back to its Id label.
func category(cats []string, x float64) (string, bool) {
	i := int(math.Round(x))
	if i < 0 || i >= len(cats) || math.Abs(x-float64(i)) > 0.25 {
		return "", false
	}
	return cats[i], true
}
