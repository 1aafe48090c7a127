package glworks

import (
	"log/slog"
	"os"
)

// logLevel controls the toolkit log level. Default is LevelInfo.
var logLevel = new(slog.LevelVar)

// Logger is the shared logger for the toolkit and its backend.
var Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// SetVerbose enables or disables debug logging.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// Verbose returns true if debug logging is enabled.
func Verbose() bool {
	return logLevel.Level() <= slog.LevelDebug
}
