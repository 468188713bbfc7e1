package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// initFile points the global logger at a file only and restores the
// previous logger when the test ends.
func initFile(t *testing.T, level string, cfg FileConfig) {
	t.Helper()
	prev := Log
	t.Cleanup(func() { Use(prev) })

	if err := InitWithFileConfig(level, cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
}

func TestFileRotation(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "quatviz.log")

	// 1MB is the smallest size lumberjack accepts.
	initFile(t, "debug", FileConfig{
		Path:       logFile,
		MaxSizeMB:  1,
		MaxBackups: 2,
		MaxAgeDays: 1,
	})

	detail := strings.Repeat("v 0.000 0.000 0.000 ", 10)
	for i := 0; i < 6000; i++ {
		Sugar.Debugf("OBJ record %d skipped: %s", i, detail)
	}
	Sync()

	if _, err := os.Stat(logFile); err != nil {
		t.Fatalf("main log file missing: %v", err)
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}
	if len(files) < 2 {
		t.Errorf("expected a rotated backup next to the log, got %d files", len(files))
	}
	if len(files) > 3 {
		t.Errorf("MaxBackups=2 should keep at most 3 files, got %d", len(files))
	}
}

func TestFileLevels(t *testing.T) {
	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"info", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(t.TempDir(), tt.level+".log")
			initFile(t, tt.level, FileConfig{Path: logFile, MaxSizeMB: 10})

			Debug("frame drawn")
			Info("model loaded")
			Warn("OBJ record skipped")
			Error("screenshot failed")
			Sync()

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("failed to read log file: %v", err)
			}
			out := string(content)

			for _, exp := range tt.expected {
				if !strings.Contains(out, exp) {
					t.Errorf("expected %s in log output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(out, exc) {
					t.Errorf("unexpected %s in log output for level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/quatviz.log")

	if cfg.Path != "/tmp/quatviz.log" {
		t.Errorf("Path = %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 50 || cfg.MaxBackups != 3 || cfg.MaxAgeDays != 7 {
		t.Errorf("unexpected limits: %+v", cfg)
	}
	if !cfg.Compress {
		t.Error("expected Compress to be true")
	}
}

func TestNopBeforeInit(t *testing.T) {
	restore := Use(zap.NewNop())
	defer restore()

	// Must not panic without Init.
	Info("ignored")
	Sync()
}

func TestUseCapturesEntries(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := Use(zap.New(core))
	defer restore()

	Named("pipeline").Debug("frame drawn", zap.Int("segments", 24))
	Warn("skipped record", zap.String("detail", "line 4"))

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].LoggerName != "pipeline" {
		t.Errorf("logger name = %q, want pipeline", entries[0].LoggerName)
	}
	if entries[0].ContextMap()["segments"] != int64(24) {
		t.Errorf("fields = %v", entries[0].ContextMap())
	}
	if entries[1].Level != zapcore.WarnLevel {
		t.Errorf("level = %v, want warn", entries[1].Level)
	}
}

func TestUseRestores(t *testing.T) {
	before := Log
	restore := Use(zap.NewNop())
	if Log == before {
		t.Fatal("Use should replace the global logger")
	}
	restore()
	if Log != before {
		t.Error("restore should bring back the previous logger")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"info":    zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
