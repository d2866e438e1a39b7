package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// The backends share a process-wide singleton, so this file keeps the
// package to a single logger-constructing test.
func TestNewLogger_CreatesMissingLogDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	defer func() {
		if rec := recover(); rec != nil {
			t.Fatalf("NewLogger panicked: %v", rec)
		}
	}()

	logger := NewLogger(&LoggerConfig{
		FilePath: dir + "/",
		Encoding: "json",
		Level:    "info",
		Logger:   "zerolog",
	})

	logger.Info(General, Startup, "logger initialized", nil)

	fileName := filepath.Join(dir, time.Now().Format("2006-01-02")+".log")
	info, err := os.Stat(fileName)
	if err != nil {
		t.Fatalf("log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("log file is empty, want the startup entry written")
	}
}
