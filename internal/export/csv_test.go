package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"transformer-calc/internal/ratings"
)

func TestWriteTableCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "single.csv")

	if err := WriteTableCSV(path, ratings.SinglePhase240VTable); err != nil {
		t.Fatalf("WriteTableCSV() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 12 {
		t.Fatalf("got %d lines, want 12 (header + 11 rows)", len(lines))
	}
	if lines[0] != "kVA;Base Current (A);Max SC (A)" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "1;4.17;8.34" {
		t.Errorf("first row = %q", lines[1])
	}
	if lines[11] != "250;1041.67;2083.34" {
		t.Errorf("last row = %q", lines[11])
	}
}

func TestWriteTableCSV_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "power.csv")
	if err := os.WriteFile(path, []byte("stale\nstale\nstale\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := WriteTableCSV(path, ratings.PowerTransformersTable); err != nil {
		t.Fatalf("WriteTableCSV() error: %v", err)
	}
	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "stale") {
		t.Error("existing content was not replaced")
	}
	if !strings.Contains(string(data), "12.5;66/11 kV;109.5;656;8") {
		t.Errorf("missing first power row:\n%s", data)
	}
}

func TestWriteTableCSV_UnknownTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.csv")
	if err := WriteTableCSV(path, "nope"); err == nil {
		t.Error("expected error for unknown table")
	}
	if _, err := os.Stat(path); err == nil {
		t.Error("no file should be created for an unknown table")
	}
}

func TestWriteTablesCSV(t *testing.T) {
	base := filepath.Join(t.TempDir(), "out", "ratings")
	paths, err := WriteTablesCSV(base, testDate)
	if err != nil {
		t.Fatalf("WriteTablesCSV() error: %v", err)
	}
	if len(paths) != 4 {
		t.Fatalf("wrote %d files, want 4", len(paths))
	}
	want := base + "_distribution_11kv_18.02.2026.csv"
	if paths[2] != want {
		t.Errorf("paths[2] = %q, want %q", paths[2], want)
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("missing %s: %v", p, err)
		}
	}
}
