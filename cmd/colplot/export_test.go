package main

import (
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunExport(t *testing.T) {
	dir := t.TempDir()
	dock := filepath.Join(dir, "dock.csv")
	if err := os.WriteFile(dock, []byte("Id,score,rmsd\na,1,0.5\nb,2,0.7\nc,3,0.2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	single := filepath.Join(dir, "single.csv")
	if err := os.WriteFile(single, []byte("Id,x\nr1,5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		name  string
		input string
		show  []string
		want  []string
	}{
		{"default column", dock, nil, []string{"score"}},
		{"stale column falls back", dock, []string{"ghost"}, []string{"score"}},
		{"stale column dropped", dock, []string{"ghost", "rmsd"}, []string{"rmsd"}},
		{"two columns", dock, []string{"rmsd", "score"}, []string{"score", "rmsd"}},
		{"single row", single, []string{"ghost"}, []string{"x"}},
	}
	for i, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := filepath.Join(dir, "out"+string(rune('a'+i))+".png")
			shown, err := runExport(c.input, exportOptions{show: c.show, output: out, width: 320, height: 200})
			if err != nil {
				t.Fatalf("export: %v", err)
			}
			if strings.Join(shown, ",") != strings.Join(c.want, ",") {
				t.Fatalf("shown = %v, want %v", shown, c.want)
			}
			f, err := os.Open(out)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			cfg, err := png.DecodeConfig(f)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if cfg.Width != 320 || cfg.Height != 200 {
				t.Fatalf("size = %dx%d", cfg.Width, cfg.Height)
			}
		})
	}
}

func TestRunExportMissingID(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "noid.csv")
	if err := os.WriteFile(in, []byte("name,score\na,1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := runExport(in, exportOptions{output: filepath.Join(dir, "x.png")}); err == nil {
		t.Fatalf("expected error without Id column")
	}
}

func TestRootCmdRejectsExtraArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"a.csv", "b.csv"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected arg count error")
	}
}
