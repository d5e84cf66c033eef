package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if got := GetSystemSettingString(DATABASE_TYPE); got != DATABASE_TYPE_SQLLITE {
		t.Errorf("expected default database type %s, got %s", DATABASE_TYPE_SQLLITE, got)
	}
	if got := GetSystemSettingInteger(SERVER_WEB_PORT); got != 8080 {
		t.Errorf("expected default port 8080, got %d", got)
	}
	if !GetSystemSettingBool(PUBLISH_ON_START) {
		t.Errorf("expected publish on start to default to true")
	}
	if got := GetSystemSettingString(API_KEY_HASH); got != "" {
		t.Errorf("expected no api key hash by default, got %q", got)
	}
}

func TestEnvironmentOverridesDefault(t *testing.T) {
	t.Setenv(SERVER_WEB_PORT, "9191")
	Reset()
	t.Cleanup(Reset)

	if got := GetSystemSettingInteger(SERVER_WEB_PORT); got != 9191 {
		t.Errorf("expected port from environment 9191, got %d", got)
	}
}

func TestLoadFileAndSet(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	dir := t.TempDir()
	path := filepath.Join(dir, "relvalmatrix.yaml")
	content := "RVM_DATABASE_TYPE: MYSQL\nRVM_LOG_LEVEL: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := LoadFile(path); err != nil {
		t.Fatalf("load config: %v", err)
	}
	if got := GetSystemSettingString(DATABASE_TYPE); got != DATABASE_TYPE_MYSQL {
		t.Errorf("expected database type from file, got %s", got)
	}

	Set(LOG_LEVEL, "warn")
	if got := GetSystemSettingString(LOG_LEVEL); got != "warn" {
		t.Errorf("expected override to win, got %s", got)
	}
}

func TestLoadFileMissing(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if err := LoadFile(""); err != nil {
		t.Errorf("empty path should be ignored, got %v", err)
	}
	if err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Errorf("expected error for missing file")
	}
}
