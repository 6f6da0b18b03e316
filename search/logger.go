package search

import (
	"log/slog"

	"visibility-planner/internal/logging"
)

// SetLogger routes the library's log output to l. Passing nil silences it,
// which is also the default.
func SetLogger(l *slog.Logger) {
	logging.SetLogger(l)
}
