package columns

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseCSVClassifiesColumns(t *testing.T) {
	in := "id, Name, score, energy\n1, lig_a, 1.5, -7\n2, lig_b, 2.5,\n3, lig_c, 3.5, -9.25\n"
	s, err := ParseCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := s.TextNames(); len(got) != 2 || got[0] != IDColumn || got[1] != "Name" {
		t.Fatalf("text names = %v", got)
	}
	if got := s.NumericNames(); len(got) != 2 || got[0] != "score" || got[1] != "energy" {
		t.Fatalf("numeric names = %v", got)
	}
	ids, _ := s.Text(IDColumn)
	if ids[2] != "3" {
		t.Fatalf("ids = %v", ids)
	}
	energy, _ := s.Numeric("energy")
	if !math.IsNaN(energy[1]) || energy[2] != -9.25 {
		t.Fatalf("energy = %v", energy)
	}
}

func TestParseCSVShortRowsArePadded(t *testing.T) {
	s, err := ParseCSV(strings.NewReader("Id,score,note\na,1\nb,2,ok\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	note, ok := s.Text("note")
	if !ok || note[0] != "" || note[1] != "ok" {
		t.Fatalf("note = %v, %v", note, ok)
	}
}

func TestParseCSVEmpty(t *testing.T) {
	if _, err := ParseCSV(strings.NewReader("")); !errors.Is(err, ErrEmpty) {
		t.Fatalf("err = %v want ErrEmpty", err)
	}
}

func TestLoadDispatch(t *testing.T) {
	dir := t.TempDir()
	tsv := filepath.Join(dir, "runs.tsv")
	if err := os.WriteFile(tsv, []byte("Id\tscore\nr1\t4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(tsv, "")
	if err != nil {
		t.Fatalf("load tsv: %v", err)
	}
	if v, _ := s.Numeric("score"); len(v) != 1 || v[0] != 4 {
		t.Fatalf("score = %v", v)
	}
	if _, err := Load(filepath.Join(dir, "x.mol2"), ""); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("err = %v want ErrUnsupportedFormat", err)
	}
	if !Supported("a.CSV") || Supported("a.json") {
		t.Fatalf("Supported mismatch")
	}
}
