package logging

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLogger_CreatesDirAndLogger(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	log, err := NewLogger(dir, "debug")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer func() { _ = log.Sync() }()

	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("log dir missing: %v", err)
	}
	if !log.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("debug level should be enabled")
	}

	log.Info("test_message_from_logging_test")

	// lumberjack opens the file lazily on first write
	if _, err := os.Stat(filepath.Join(dir, "endpointprobe.log")); err != nil {
		t.Fatalf("log file missing after first write: %v", err)
	}
}

func TestNewLogger_StdoutAndBadLevel(t *testing.T) {
	log, err := NewLogger("", "")
	if err != nil {
		t.Fatalf("NewLogger stdout: %v", err)
	}
	if log.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("default level should be info")
	}
	if _, err := NewLogger("", "loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
