package sparsetree

import "log/slog"

// logDebug is a nil-safe helper so a tree with no logger attached
// pays nothing for instrumentation beyond this check. Logging is
// opt-in via SetLogger on each tree.
func logDebug(l *slog.Logger, msg string, args ...any) {
	if l == nil {
		return
	}
	l.Debug(msg, args...)
}
