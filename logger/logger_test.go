package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWithoutFileKeepsNopLogger(t *testing.T) {
	if err := Init("info", ""); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	// Must not panic, output goes nowhere
	Sugar.Infow("discarded")
}

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")

	if err := InitWithFileConfig("debug", DefaultFileConfig(path), false); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	Sugar.Infow("hello from test", "answer", 42)
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected log file to exist: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("Log file missing entry: %s", data)
	}
}

func TestLevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")

	if err := InitWithFileConfig("warn", DefaultFileConfig(path), false); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	Sugar.Infow("should be filtered")
	Sugar.Warnw("should appear")
	Sync()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "should be filtered") {
		t.Error("Info entry must be filtered at warn level")
	}
	if !strings.Contains(string(data), "should appear") {
		t.Error("Warn entry must be written")
	}
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	cases := map[string]string{
		"debug":   "debug",
		"info":    "info",
		"warn":    "warn",
		"error":   "error",
		"bogus":   "info",
		"":        "info",
		"VERBOSE": "info",
	}
	for in, want := range cases {
		if got := parseLevel(in).String(); got != want {
			t.Errorf("parseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}
