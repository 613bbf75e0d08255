package console

import (
	"reflect"
	"testing"
)

func TestSelectionSelectAllCoversLoadedPageOnly(t *testing.T) {
	sel := NewSelection()
	sel.SetPage([]string{"a", "b", "c"})
	sel.SelectAll()

	if !sel.All() {
		t.Fatal("expected select-all flag set")
	}
	if got := sel.Count(); got != 3 {
		t.Fatalf("expected 3 selected, got %d", got)
	}
	if !reflect.DeepEqual(sel.IDs(), []string{"a", "b", "c"}) {
		t.Fatalf("unexpected ids %v", sel.IDs())
	}

	// Moving to another page does not silently extend the selection.
	sel.SetPage([]string{"d", "e"})
	if sel.All() {
		t.Fatal("select-all must not carry over to an uncovered page")
	}
	if got := sel.Count(); got != 3 {
		t.Fatalf("previous selections must survive paging, got %d", got)
	}
}

func TestSelectionToggleClearsAllFlag(t *testing.T) {
	sel := NewSelection()
	sel.SetPage([]string{"a", "b"})
	sel.SelectAll()
	sel.Toggle("a")

	if sel.All() {
		t.Fatal("individual toggle must clear the select-all flag")
	}
	if sel.Selected("a") {
		t.Fatal("toggled id should be unselected")
	}
	if !sel.Selected("b") {
		t.Fatal("untouched id should stay selected")
	}
}

func TestSelectionClear(t *testing.T) {
	sel := NewSelection()
	sel.SetPage([]string{"a"})
	sel.SelectAll()
	sel.Clear()
	if sel.Count() != 0 || sel.All() {
		t.Fatalf("expected empty selection, got count=%d all=%v", sel.Count(), sel.All())
	}
}

func TestSelectionSetPageRecomputesAll(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("a")
	sel.Toggle("b")
	sel.SetPage([]string{"a", "b"})
	if !sel.All() {
		t.Fatal("a page fully covered by prior toggles should read as all-selected")
	}
}

func TestSelectionIDsOrdersPageFirst(t *testing.T) {
	sel := NewSelection()
	sel.SetPage([]string{"a", "b"})
	sel.SelectAll()
	sel.SetPage([]string{"b", "c"})
	sel.Toggle("c")

	ids := sel.IDs()
	if len(ids) != 3 {
		t.Fatalf("expected 3 ids, got %v", ids)
	}
	if ids[0] != "b" || ids[1] != "c" {
		t.Fatalf("page ids should lead: %v", ids)
	}
	if ids[2] != "a" {
		t.Fatalf("off-page id should trail: %v", ids)
	}
}
