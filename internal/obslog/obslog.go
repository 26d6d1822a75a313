// Package obslog centralizes logging for gone6502 behind glog, so the core
// packages (cpu, asm, mem) and the CLI driver never import glog directly.
// Nothing here is on the Clock hot path: Trace is reserved for state that
// changes once per Reset/IRQ/NMI, not once per cycle.
package obslog

import (
	"github.com/golang/glog"
)

// Trace logs architectural-state transitions: Reset, IRQ/NMI delivery,
// program loads. Visible at -v=1 and above.
func Trace(format string, args ...any) {
	if glog.V(1) {
		glog.Infof(format, args...)
	}
}

// Info logs ordinary operational messages (the CLI reporting an assembled
// file).
func Info(format string, args ...any) {
	glog.Infof(format, args...)
}

// Warn logs recoverable anomalies, such as an assembler line whose
// mnemonic has no encoding for its addressing mode.
func Warn(format string, args ...any) {
	glog.Warningf(format, args...)
}

// Error logs a condition the caller is about to return an error for.
func Error(format string, args ...any) {
	glog.Errorf(format, args...)
}

// Flush flushes buffered log entries; callers should defer this from main.
func Flush() {
	glog.Flush()
}
