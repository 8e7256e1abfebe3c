package export

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

var testDate = time.Date(2026, 2, 18, 14, 32, 7, 0, time.UTC)

func TestDateSuffix(t *testing.T) {
	got := DateSuffix(testDate)
	want := "18.02.2026"
	if got != want {
		t.Errorf("DateSuffix() = %q, want %q", got, want)
	}
}

func TestBuildPath_Simple(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "report")
	got := BuildPath(base, "", ".pdf", testDate)
	want := filepath.Join(dir, "report_18.02.2026.pdf")
	if got != want {
		t.Errorf("BuildPath() = %q, want %q", got, want)
	}
}

func TestBuildPath_WithSuffix(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "ratings")
	got := BuildPath(base, "_power_transformers", ".csv", testDate)
	want := filepath.Join(dir, "ratings_power_transformers_18.02.2026.csv")
	if got != want {
		t.Errorf("BuildPath(suffix) = %q, want %q", got, want)
	}
}

func TestNextReportID(t *testing.T) {
	ts := time.Date(2031, 1, 2, 3, 4, 5, 0, time.UTC)
	first := NextReportID(ts)
	second := NextReportID(ts)
	if first != "20310102-030405-01" {
		t.Errorf("first ID = %q, want 20310102-030405-01", first)
	}
	if second != "20310102-030405-02" {
		t.Errorf("second ID = %q, want 20310102-030405-02", second)
	}
	if next := NextReportID(ts.Add(time.Second)); next != "20310102-030406-01" {
		t.Errorf("next second ID = %q, want counter reset", next)
	}
}

func TestNextReportID_ConcurrentSavesAreDistinct(t *testing.T) {
	ts := time.Date(2031, 5, 6, 7, 8, 9, 0, time.UTC)

	const saves = 20
	ids := make(chan string, saves)
	var wg sync.WaitGroup
	for i := 0; i < saves; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- NextReportID(ts)
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		if seen[id] {
			t.Errorf("report ID %q issued twice", id)
		}
		seen[id] = true
	}
	if !seen["20310506-070809-20"] {
		t.Errorf("IDs = %v, want the last one numbered 20", seen)
	}
}

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "dir", "file.csv")
	if err := EnsureDir(path); err != nil {
		t.Fatalf("EnsureDir() error: %v", err)
	}
	info, err := os.Stat(filepath.Join(dir, "sub", "dir"))
	if err != nil {
		t.Fatalf("directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}
}

func TestEnsureDir_ExistingDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.csv")
	// dir already exists, EnsureDir should be a no-op
	if err := EnsureDir(path); err != nil {
		t.Fatalf("EnsureDir() on existing dir error: %v", err)
	}
}
