package panel

import "testing"

func TestTableControlsIgnoreTextRows(t *testing.T) {
	tbl := NewTable()
	tbl.AddTextRow("Id")
	tbl.AddNumericRow("a", false, true)
	tbl.AddNumericRow("b", true, false)

	if tbl.SelectSort(0) || tbl.ToggleShow(0) {
		t.Fatalf("text row accepted a control change")
	}
	if name, ok := tbl.SortColumn(); !ok || name != "b" {
		t.Fatalf("sort = %q, %v", name, ok)
	}
	tbl.SelectSort(1)
	if name, _ := tbl.SortColumn(); name != "a" {
		t.Fatalf("radio group not exclusive: sort = %q", name)
	}
	if tbl.Rows()[2].Sorted {
		t.Fatalf("previous sort radio still selected")
	}
	tbl.SetShown("b")
	got := tbl.ShowControls()
	if len(got) != 2 || got[0].Checked || !got[1].Checked {
		t.Fatalf("show controls = %+v", got)
	}
	tbl.Clear()
	if tbl.Len() != 0 {
		t.Fatalf("clear left %d rows", tbl.Len())
	}
}
