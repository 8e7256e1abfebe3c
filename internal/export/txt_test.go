package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"transformer-calc/internal/fault"
)

func simpleResult(t *testing.T) fault.Result {
	t.Helper()
	r, err := fault.CalculateSimple(fault.SimpleInput{Vp: 11000, Vs: 415, KVA: 1000, ZPct: 6})
	if err != nil {
		t.Fatal(err)
	}
	return r.Result()
}

func TestWriteTXT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.txt")

	if err := WriteTXT(path, simpleResult(t)); err != nil {
		t.Fatalf("WriteTXT() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.Contains(content, "=== Calculation Results ===") {
		t.Error("missing header")
	}
	if !strings.Contains(content, "23.187 kA") {
		t.Error("missing fault current in kA")
	}
	if !strings.HasSuffix(content, "ANALYSIS COMPLETE\n") {
		t.Error("file should end with the completion line")
	}
}

func TestWriteTXT_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "result.txt")
	if err := WriteTXT(path, simpleResult(t)); err == nil {
		t.Error("expected error for missing directory")
	}
}
