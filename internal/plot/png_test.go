package plot

import (
	"bytes"
	"fmt"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"colplot/internal/panel"
)

func TestPNGRender(t *testing.T) {
	series, axes := sampleSeries()
	p := &PNG{Width: 640, Height: 320, Title: "docking"}
	var buf bytes.Buffer
	if err := p.Render(&buf, series, axes); err != nil {
		t.Fatalf("render: %v", err)
	}
	cfg, err := png.DecodeConfig(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 640 || cfg.Height != 320 {
		t.Fatalf("size = %dx%d", cfg.Width, cfg.Height)
	}
}

func TestPNGEmptyIsBlank(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	p := &PNG{Path: path}
	if err := p.Draw(nil, panel.AxisOptions{Primary: panel.AxisOption{Show: true}}); err != nil {
		t.Fatalf("draw: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 1024 || cfg.Height != 480 {
		t.Fatalf("default size = %dx%d", cfg.Width, cfg.Height)
	}
}

func TestPNGSingleRow(t *testing.T) {
	series := []panel.Series{{Label: "x", Points: true, XAxis: panel.SecondaryAxis, Data: [][2]float64{{0, 5}}}}
	axes := panel.AxisOptions{Primary: panel.AxisOption{Show: true}, Categories: []string{"only"}}
	var buf bytes.Buffer
	if err := (&PNG{}).Render(&buf, series, axes); err != nil {
		t.Fatalf("render: %v", err)
	}
}

func TestCategoryTicksThinOut(t *testing.T) {
	cats := make([]string, 100)
	for i := range cats {
		cats[i] = "r"
	}
	labelled := 0
	for _, tk := range categoryTicks(cats) {
		if tk.Label != "" {
			labelled++
		}
	}
	if labelled > maxCategoryTicks+1 {
		t.Fatalf("%d labelled ticks for 100 rows", labelled)
	}
}

func TestCategoryTicksCoverEveryRow(t *testing.T) {
	for _, n := range []int{1, 2, 24, 25, 30, 99, 100} {
		cats := make([]string, n)
		for i := range cats {
			cats[i] = fmt.Sprintf("r%d", i)
		}
		ticks := categoryTicks(cats)
		lo, hi := ticks[0].Value, ticks[0].Value
		var lastLabel string
		for _, tk := range ticks {
			lo = math.Min(lo, tk.Value)
			hi = math.Max(hi, tk.Value)
			if tk.Label != "" {
				lastLabel = tk.Label
			}
		}
		if lo != -0.5 || hi != float64(n)-0.5 {
			t.Fatalf("%d rows: tick range [%v, %v]", n, lo, hi)
		}
		if lastLabel != cats[n-1] {
			t.Fatalf("%d rows: last label %q", n, lastLabel)
		}
	}
}

func TestPNGManyRows(t *testing.T) {
	data := make([][2]float64, 30)
	cats := make([]string, 30)
	for i := range data {
		data[i] = [2]float64{float64(i), float64(i % 7)}
		cats[i] = fmt.Sprintf("lig%02d", i)
	}
	series := []panel.Series{{Label: "score", Points: true, XAxis: panel.SecondaryAxis, Data: data}}
	axes := panel.AxisOptions{Primary: panel.AxisOption{Show: true}, Categories: cats}
	var buf bytes.Buffer
	if err := (&PNG{Width: 400, Height: 200}).Render(&buf, series, axes); err != nil {
		t.Fatalf("render: %v", err)
	}
}
