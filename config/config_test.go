package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "MAX_FILE_SIZE", "TEMP_DIR", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	want := &Config{
		Port:        DefaultPort,
		MaxFileSize: DefaultMaxFileSize,
		TempDir:     DefaultTempDir,
		LogLevel:    DefaultLogLevel,
	}
	if d := cmp.Diff(want, Load()); d != "" {
		t.Errorf("Load() (-want +got):\n%s", d)
	}
}

func TestLoadEnvironment(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("MAX_FILE_SIZE", "2048")
	t.Setenv("TEMP_DIR", "/tmp/pdf")
	t.Setenv("LOG_LEVEL", "debug")

	want := &Config{
		Port:        "9090",
		MaxFileSize: 2048,
		TempDir:     "/tmp/pdf",
		LogLevel:    "debug",
	}
	if d := cmp.Diff(want, Load()); d != "" {
		t.Errorf("Load() (-want +got):\n%s", d)
	}
}

func TestLoadInvalidSize(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	for _, v := range []string{"ten", "-5", "0"} {
		t.Setenv("MAX_FILE_SIZE", v)
		if got := Load().MaxFileSize; got != DefaultMaxFileSize {
			t.Errorf("MAX_FILE_SIZE=%q: got %d, want default", v, got)
		}
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("TEMP_DIR=/from/dotenv\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// godotenv does not override variables that are already set, and
	// t.Setenv("", ...) leaves them set to the empty string.
	os.Unsetenv("TEMP_DIR")
	t.Cleanup(func() { os.Unsetenv("TEMP_DIR") })

	if got := Load().TempDir; got != "/from/dotenv" {
		t.Errorf("TempDir = %q, want value from .env", got)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn")
	if logger.GetLevel() != logrus.WarnLevel {
		t.Errorf("level = %v, want warn", logger.GetLevel())
	}
	logger.Info("hidden")
	logger.WithField("file", "a.pdf").Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "file=a.pdf") {
		t.Errorf("unexpected output %q", out)
	}

	if NewLogger(&buf, "nonsense").GetLevel() != logrus.InfoLevel {
		t.Error("unknown level did not fall back to info")
	}
}
