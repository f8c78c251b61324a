package columns

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestLoadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dock.xlsx")
	f := excelize.NewFile()
	cells := map[string]any{
		"A1": "Id", "B1": "score", "C1": "pose",
		"A2": "m1", "B2": 1.5, "C2": "top",
		"A3": "m2", "B3": 2, "C3": "side",
	}
	for cell, v := range cells {
		if err := f.SetCellValue("Sheet1", cell, v); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	f.Close()

	s, err := Load(path, "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	score, ok := s.Numeric("score")
	if !ok || len(score) != 2 || score[0] != 1.5 || score[1] != 2 {
		t.Fatalf("score = %v, %v", score, ok)
	}
	if got := s.TextNames(); len(got) != 2 || got[1] != "pose" {
		t.Fatalf("text names = %v", got)
	}
	if _, err := LoadXLSX(path, "Missing"); err == nil {
		t.Fatalf("expected error for missing sheet")
	}
}
