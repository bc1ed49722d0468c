package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/elaine-zeng/pomoduck/internal/platform"
	"github.com/elaine-zeng/pomoduck/internal/ui/preferences"
	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	FocusMinutes int      `yaml:"focus_minutes"`
	BreakMinutes int      `yaml:"break_minutes"`
	CueEnabled   *bool    `yaml:"cue_enabled"`
	Volume       *float64 `yaml:"volume"`
	MusicPath    string   `yaml:"music_path"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFrom(configPath)
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsTo(configPath, settings)
}

// SettingsPath returns the location of the settings file.
func SettingsPath(appName string) (string, error) {
	configDir, err := platform.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettingsFrom reads preferences from the given file.
func LoadSettingsFrom(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettingsTo writes preferences to the given file, creating its directory.
func SaveSettingsTo(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	cueEnabled := settings.CueEnabled
	volume := settings.Volume
	fileData := yamlSettings{
		FocusMinutes: int(settings.FocusDuration / time.Minute),
		BreakMinutes: int(settings.BreakDuration / time.Minute),
		CueEnabled:   &cueEnabled,
		Volume:       &volume,
		MusicPath:    settings.MusicPath,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.FocusMinutes > 0 {
		settings.FocusDuration = time.Duration(fileData.FocusMinutes) * time.Minute
	}
	if fileData.BreakMinutes > 0 {
		settings.BreakDuration = time.Duration(fileData.BreakMinutes) * time.Minute
	}
	if fileData.CueEnabled != nil {
		settings.CueEnabled = *fileData.CueEnabled
	}
	if fileData.Volume != nil && *fileData.Volume >= preferences.MinVolume && *fileData.Volume <= preferences.MaxVolume {
		settings.Volume = *fileData.Volume
	}
	if path := strings.TrimSpace(fileData.MusicPath); path != "" {
		settings.MusicPath = path
	}
}
