// Package logging configures the process-wide structured logger.
package logging

import (
	"os"
	"path/filepath"

	"github.com/powerman/structlog"
)

// Setup configures structlog.DefaultLogger. Loggers created afterwards with
// structlog.New inherit the configuration.
func Setup(verbose bool) {
	level := structlog.INF
	if verbose {
		level = structlog.DBG
	}
	structlog.DefaultLogger.
		SetPrefixKeys(
			structlog.KeyApp, structlog.KeyLevel, structlog.KeyUnit, structlog.KeyTime,
		).
		SetDefaultKeyvals(
			structlog.KeyApp, filepath.Base(os.Args[0]),
			structlog.KeySource, structlog.Auto,
		).
		SetSuffixKeys(structlog.KeySource).
		SetKeysFormat(map[string]string{
			structlog.KeyTime:   " %[2]s",
			structlog.KeySource: " %6[2]s",
			structlog.KeyUnit:   " %6[2]s",
		}).
		SetLogLevel(level)
}

// New returns a logger tagged with the given unit name.
func New(unit string) *structlog.Logger {
	return structlog.New(structlog.KeyUnit, unit)
}
