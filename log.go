package gochart

import "log/slog"

var logger = slog.Default()

// SetLogger replaces the logger used for diagnostics. A nil logger restores
// the slog default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l
}
