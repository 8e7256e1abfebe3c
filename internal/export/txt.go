package export

import (
	"fmt"
	"os"

	"transformer-calc/internal/fault"
	"transformer-calc/internal/format"
)

// WriteTXT writes the formatted report of one calculation to a text file.
func WriteTXT(path string, r fault.Result) error {
	if err := os.WriteFile(path, []byte(format.FormatResult(r)+"\n"), 0644); err != nil {
		return fmt.Errorf("write txt file: %w", err)
	}
	return nil
}
