package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"transformer-calc/internal/fault"
	"transformer-calc/internal/ratings"
)

func newTestTablesView(t *testing.T) *TablesView {
	t.Helper()
	a := test.NewTempApp(t)
	win := a.NewWindow("test")
	t.Cleanup(win.Close)
	return NewTablesView(win)
}

func tableByName(tv *TablesView, name ratings.TableName) *ratingsTable {
	for _, rt := range tv.tables {
		if rt.name == name {
			return rt
		}
	}
	return nil
}

func TestTablesView_Tabs(t *testing.T) {
	tv := newTestTablesView(t)

	if got := len(tv.tabs.Items); got != 4 {
		t.Fatalf("tabs = %d, want 4", got)
	}
	for i, name := range ratings.Names() {
		info, _ := ratings.TableInfo(name)
		if tv.tabs.Items[i].Text != info.Tab {
			t.Errorf("tab %d = %q, want %q", i, tv.tabs.Items[i].Text, info.Tab)
		}
	}

	rows, cols := tableByName(tv, ratings.ThreePhase480VTable).tableSize()
	if rows != 15 || cols != 3 {
		t.Errorf("three phase size = %dx%d, want 15x3", rows, cols)
	}
}

func TestTablesView_UseDistributionRow(t *testing.T) {
	tv := newTestTablesView(t)

	var gotMode fault.Mode
	var gotIn fault.Input
	tv.OnUse = func(mode fault.Mode, in fault.Input) {
		gotMode, gotIn = mode, in
	}

	tv.Select(ratings.Distribution11kVTable)
	tv.selectRow(tableByName(tv, ratings.Distribution11kVTable), 5) // 1000 kVA

	if tv.simpleBtn.Disabled() {
		t.Fatal("Use in Simple should be enabled for a distribution row")
	}
	test.Tap(tv.simpleBtn)

	if gotMode != fault.Simple {
		t.Errorf("mode = %v, want simple", gotMode)
	}
	want := fault.Input{fault.KeyVp: "11000", fault.KeyVs: "415", fault.KeyKVA: "1000", fault.KeyZPct: "6"}
	for k, v := range want {
		if gotIn[k] != v {
			t.Errorf("in[%s] = %q, want %q", k, gotIn[k], v)
		}
	}
}

func TestTablesView_SinglePhaseRowCannotBeUsed(t *testing.T) {
	tv := newTestTablesView(t)

	tv.Select(ratings.SinglePhase240VTable)
	tv.selectRow(tableByName(tv, ratings.SinglePhase240VTable), 1)

	r, ok := tv.Selected()
	if !ok || r.Rating() != 1 {
		t.Fatalf("Selected() = %v, %v", r, ok)
	}
	if !tv.simpleBtn.Disabled() || !tv.detailedBtn.Disabled() {
		t.Error("single phase rows have no voltages and should not be usable")
	}
}

func TestTablesView_HeaderRowClearsSelection(t *testing.T) {
	tv := newTestTablesView(t)
	rt := tableByName(tv, ratings.PowerTransformersTable)

	tv.Select(ratings.PowerTransformersTable)
	tv.selectRow(rt, 2)
	tv.selectRow(rt, 0)

	if _, ok := tv.Selected(); ok {
		t.Error("selecting the header should clear the selection")
	}
	if !tv.detailedBtn.Disabled() {
		t.Error("Use in Detailed should be disabled without a selection")
	}
}
