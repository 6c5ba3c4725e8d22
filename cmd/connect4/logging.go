package main

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	logDir      = "logs"
	logFileName = "connect4.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes log and slog output to logs/connect4.log when debug is set.
// Logging never touches stdout or stderr since the terminal is owned by the screen.
// The caller closes the returned file; it is nil when logging is disabled.
func setupLogging(debug bool) *os.File {
	if !debug {
		discardLogs()
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		discardLogs()
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		discardLogs()
		return nil
	}

	// slog.SetDefault redirects the log package through the handler
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return f
}

// rotateLog keeps a single backup once the log exceeds maxLogSize
func rotateLog(logPath string) {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	backup := logPath + ".1"
	_ = os.Remove(backup)
	_ = os.Rename(logPath, backup)
}

func discardLogs() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	// After slog.SetDefault so the log package stays silent as well
	log.SetOutput(io.Discard)
}
