// Package logging writes subsystem-tagged lines through the standard
// logger. main points the standard logger at a file because the TUI owns
// the terminal.
package logging

import (
	"log"
	"sync/atomic"
)

var debugEnabled atomic.Bool

// SetDebug turns Debug output on or off.
func SetDebug(on bool) {
	debugEnabled.Store(on)
}

// Info logs an informational message (always shown)
func Info(subsystem, format string, args ...any) {
	log.Printf("[%s] "+format, append([]any{subsystem}, args...)...)
}

// Warn logs a recoverable failure. Nothing in focusboard is fatal after
// startup, so this is the highest level.
func Warn(subsystem, format string, args ...any) {
	log.Printf("[%s] warning: "+format, append([]any{subsystem}, args...)...)
}

// Debug logs a debug message (only shown if debug is enabled)
func Debug(subsystem, format string, args ...any) {
	if debugEnabled.Load() {
		log.Printf("[%s] "+format, append([]any{subsystem}, args...)...)
	}
}
