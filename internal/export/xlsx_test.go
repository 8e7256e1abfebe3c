package export

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"transformer-calc/internal/ratings"
)

func TestWriteTablesXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ratings.xlsx")

	if err := WriteTablesXLSX(path); err != nil {
		t.Fatalf("WriteTablesXLSX() error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open xlsx: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 4 {
		t.Fatalf("sheets = %v, want 4", sheets)
	}
	for i, name := range ratings.Names() {
		if sheets[i] != string(name) {
			t.Errorf("sheet %d = %q, want %q", i, sheets[i], name)
		}
	}

	rows, err := f.GetRows(string(ratings.ThreePhase480VTable))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 15 {
		t.Fatalf("three phase rows = %d, want 15", len(rows))
	}
	if rows[0][0] != "kVA" || rows[8][0] != "112.5" {
		t.Errorf("unexpected cells: header %q, row 8 %q", rows[0][0], rows[8][0])
	}

	voltage, err := f.GetCellValue(string(ratings.PowerTransformersTable), "B2")
	if err != nil {
		t.Fatal(err)
	}
	if voltage != "66/11 kV" {
		t.Errorf("B2 = %q, want 66/11 kV", voltage)
	}
}

func TestWriteTablesXLSX_Subset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "power.xlsx")
	if err := WriteTablesXLSX(path, ratings.PowerTransformersTable); err != nil {
		t.Fatalf("WriteTablesXLSX() error: %v", err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if sheets := f.GetSheetList(); len(sheets) != 1 || sheets[0] != "power_transformers" {
		t.Errorf("sheets = %v", sheets)
	}
}

func TestWriteTablesXLSX_UnknownTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.xlsx")
	if err := WriteTablesXLSX(path, "nope"); err == nil {
		t.Error("expected error for unknown table")
	}
}

func TestCellValue(t *testing.T) {
	if v, ok := cellValue("37.5").(float64); !ok || v != 37.5 {
		t.Errorf("cellValue(37.5) = %v", cellValue("37.5"))
	}
	if v, ok := cellValue("66/11 kV").(string); !ok || v != "66/11 kV" {
		t.Errorf("cellValue(label) = %v", cellValue("66/11 kV"))
	}
}
