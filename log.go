package datalist

import (
	"log/slog"
	"os"
)

// listLogLevel controls the log level for list debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var listLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for all lists that
// use the default logger.
func SetVerbose(v bool) {
	if v {
		listLogLevel.Set(slog.LevelDebug)
	} else {
		listLogLevel.Set(slog.LevelInfo)
	}
}

// listVerbose returns true if list debug logging is enabled.
func listVerbose() bool {
	return listLogLevel.Level() <= slog.LevelDebug
}

// defaultLogger is shared by lists created without WithLogger.
var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: listLogLevel}))
