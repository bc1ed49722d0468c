package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/elaine-zeng/pomoduck/internal/ui/preferences"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	settings, err := LoadSettingsFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if settings != preferences.DefaultSettings() {
		t.Errorf("expected defaults, got %+v", settings)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Pomoduck", "settings.yaml")
	saved := preferences.Settings{
		FocusDuration: 50 * time.Minute,
		BreakDuration: 10 * time.Minute,
		CueEnabled:    false,
		Volume:        -1.5,
		MusicPath:     "/music/rain.mp3",
	}

	if err := SaveSettingsTo(path, saved); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := LoadSettingsFrom(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded != saved {
		t.Errorf("expected %+v, got %+v", saved, loaded)
	}
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := "focus_minutes: -3\nbreak_minutes: 0\nvolume: 9\nmusic_path: \"  \"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	settings, err := LoadSettingsFrom(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if settings != preferences.DefaultSettings() {
		t.Errorf("expected defaults, got %+v", settings)
	}
}

func TestLoadPartialFileKeepsOtherDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("break_minutes: 15\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	settings, err := LoadSettingsFrom(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	expected := preferences.DefaultSettings()
	expected.BreakDuration = 15 * time.Minute
	if settings != expected {
		t.Errorf("expected %+v, got %+v", expected, settings)
	}
}

func TestLoadBrokenYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("focus_minutes: [oops"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	settings, err := LoadSettingsFrom(path)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if settings != preferences.DefaultSettings() {
		t.Errorf("expected defaults alongside the error, got %+v", settings)
	}
}

func TestSettingsPathUsesAppName(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	path, err := SettingsPath("Pomoduck")
	if err != nil {
		t.Fatalf("settings path: %v", err)
	}
	if filepath.Base(path) != "settings.yaml" || filepath.Base(filepath.Dir(path)) != "Pomoduck" {
		t.Errorf("unexpected settings path %s", path)
	}
}
