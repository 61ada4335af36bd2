// Package obs wraps github.com/hashicorp/go-hclog behind a small surface so
// algorithm packages can accept an optional logger without importing hclog
// directly in every file.
package obs

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

// Logger is the structured logger interface accepted by the core algorithm
// packages. It is exactly hclog.Logger — this alias exists so callers of
// this module never need to import hclog themselves.
type Logger = hclog.Logger

// New builds a logger named pcsched.<name> at the given level ("trace",
// "debug", "info", "warn", "error"), writing to stderr.
func New(name, level string) Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "pcsched." + name,
		Level:  hclog.LevelFromString(level),
		Output: os.Stderr,
	})
}

// Nop returns a logger that discards everything — the default for every
// algorithm package when no logger is supplied.
func Nop() Logger {
	return hclog.NewNullLogger()
}

// OrNop returns l unless it is nil, in which case it returns Nop(). Every
// package that accepts an optional Logger funnels it through this so the
// rest of the code never has to nil-check before logging.
func OrNop(l Logger) Logger {
	if l == nil {
		return Nop()
	}

	return l
}
