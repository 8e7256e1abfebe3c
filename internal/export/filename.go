package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// reportSeq numbers the PDF reports written within the same second, so two
// fault reports saved back to back still carry distinct IDs.
type reportSeq struct {
	mu     sync.Mutex
	second string
	n      int
}

var reports reportSeq

func (s *reportSeq) next(ts time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	second := ts.Format("20060102-150405")
	if second != s.second {
		s.second, s.n = second, 0
	}
	s.n++
	return fmt.Sprintf("%s-%02d", second, s.n)
}

// NextReportID returns the ID printed in a PDF fault report header,
// "YYYYMMDD-HHMMSS-NN" where NN counts reports saved in that second.
func NextReportID(ts time.Time) string {
	return reports.next(ts)
}

// DateSuffix formats the export date as day.month.year.
func DateSuffix(t time.Time) string {
	return t.Format("02.01.2006")
}

// BuildPath names an export file: base, then suffix (the table name for CSV
// exports), then the date and ext. Exporting twice on one day reuses the
// name.
func BuildPath(base, suffix, ext string, t time.Time) string {
	return fmt.Sprintf("%s%s_%s%s", base, suffix, DateSuffix(t), ext)
}

// EnsureDir creates the folder an export file goes into.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
