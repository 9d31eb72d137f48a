package ai

import "sync/atomic"

// debugLoggingEnabled gates the per-tick slog.Debug calls of the AI package
// (engagement changes, attack phases, damage).
var debugLoggingEnabled atomic.Bool

// EnableDebugLogging turns AI debug records on or off.
// Called from main after the log level is known.
func EnableDebugLogging(enabled bool) {
	debugLoggingEnabled.Store(enabled)
}

// IsDebugEnabled returns true if AI debug records are enabled.
//
//	if ai.IsDebugEnabled() {
//	    slog.Debug("attack phase", "npc", name, "to", phase)
//	}
func IsDebugEnabled() bool {
	return debugLoggingEnabled.Load()
}
