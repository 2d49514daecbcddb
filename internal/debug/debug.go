// Package debug carries the debug logging switch of the cityhash command.
package debug

import (
	"io"
	"log"
	"os"
	"sync/atomic"
)

var (
	enabled atomic.Bool
	logger  = log.New(os.Stderr, "cityhash: ", log.LstdFlags|log.Lmicroseconds)
)

// Toggle turns on/off debug mode
func Toggle(on bool) { enabled.Store(on) }

// Enabled reports whether debug mode is on.
func Enabled() bool { return enabled.Load() }

// SetOutput changes where debug logs are written, stderr by default.
func SetOutput(w io.Writer) { logger.SetOutput(w) }

// Do executes a function if debug is enabled, usually for side effects.
func Do(f func()) {
	if enabled.Load() {
		f()
	}
}

// Format a log line and writes it to the debug output if debug is enabled
func Format(format string, args ...interface{}) {
	if enabled.Load() {
		logger.Printf(format, args...)
	}
}
