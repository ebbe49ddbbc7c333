package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"autoscale/internal/infrastructure/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"unknown", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := logging.ParseLevel(tt.level); got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.level, got, tt.expected)
		}
	}
}

func TestNewFileLogger_Disabled(t *testing.T) {
	logger, err := logging.NewFileLogger(filepath.Join(t.TempDir(), "a.log"), "info", 10, false)
	if err != nil || logger != nil {
		t.Errorf("Expected nil logger when logging to file is disabled, got %v, %v", logger, err)
	}
}

func TestFileLogger_WritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "autoscale.log")

	logger, err := logging.NewFileLogger(path, "warning", 10, true)
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hidden %d", 1)
	logger.Warning("visible %s", "warn")
	logger.Error("broken %s", "file.png")
	if err := logger.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 log lines, got %d: %s", len(lines), data)
	}

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[1]), &entry); err != nil {
		t.Fatal(err)
	}
	if entry["level"] != "error" || entry["message"] != "broken file.png" {
		t.Errorf("Unexpected entry: %v", entry)
	}
}

func TestNewFileLogger_Rotates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "autoscale.log")
	if err := os.WriteFile(path, bytes.Repeat([]byte("x"), 1024*1024+1), 0644); err != nil {
		t.Fatal(err)
	}

	logger, err := logging.NewFileLogger(path, "info", 1, true)
	if err != nil {
		t.Fatal(err)
	}
	defer logger.Close()

	if _, err := os.Stat(path + ".1"); err != nil {
		t.Errorf("Expected rotated file: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 0 {
		t.Errorf("Expected fresh log file, got %d bytes", info.Size())
	}
}

func TestConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewConsoleLogger(&buf, "info")

	logger.Success("done %d", 3)
	logger.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "done 3") {
		t.Errorf("Expected message in output, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("Debug message must be filtered, got %q", out)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
