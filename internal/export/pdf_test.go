package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"transformer-calc/internal/fault"
)

func TestWriteResultPDF(t *testing.T) {
	r, err := fault.CalculateDetailed(fault.DetailedInput{
		Zp: 0.46, R1R2: 0.2, Vp: 11000, Vs: 415, VA: 1000000, ZPct: 6,
	})
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "report.pdf")

	if err := WriteResultPDF(path, r.Result(), testDate); err != nil {
		t.Fatalf("WriteResultPDF() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("file does not start with a PDF header: %q", data[:8])
	}
}

func TestWriteResultPDF_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.pdf")
	if err := WriteResultPDF(path, simpleResult(t), testDate); err == nil {
		t.Error("expected error for missing directory")
	}
}
