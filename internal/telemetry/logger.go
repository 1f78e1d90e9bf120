package telemetry

import (
	"log/slog"
	"os"
)

// InitLogger configures the default logger. Verbose runs enable debug
// records; everything goes to stderr so stdout stays usable for operator
// messages.
func InitLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
