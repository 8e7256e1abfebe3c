package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"transformer-calc/internal/ratings"
)

// WriteTableCSV writes one rating table to a semicolon-separated CSV file,
// headers first. An existing file is replaced.
func WriteTableCSV(path string, name ratings.TableName) error {
	info, ok := ratings.TableInfo(name)
	if !ok {
		return fmt.Errorf("unknown table %q", name)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'

	if err := w.Write(info.Headers); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}
	for _, r := range ratings.Category(name) {
		if err := w.Write(r.Cells()); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return f.Close()
}

// WriteTablesCSV writes every rating table next to base, one file per table:
// base + "_" + table + "_" + date + ".csv". It returns the written paths.
func WriteTablesCSV(base string, ts time.Time) ([]string, error) {
	var paths []string
	for _, name := range ratings.Names() {
		path := BuildPath(base, "_"+string(name), ".csv", ts)
		if err := EnsureDir(path); err != nil {
			return paths, fmt.Errorf("create dir: %w", err)
		}
		if err := WriteTableCSV(path, name); err != nil {
			return paths, fmt.Errorf("%s: %w", name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
