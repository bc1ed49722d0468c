package preferences

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestWindowShowsSettings(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	prefs := New(app, DefaultSettings(), nil)
	if prefs.focusMin.Text != "25" || prefs.breakMin.Text != "5" {
		t.Errorf("expected 25/5, got %s/%s", prefs.focusMin.Text, prefs.breakMin.Text)
	}
	if !prefs.cueCheck.Checked {
		t.Error("expected cue enabled")
	}
	if prefs.musicPath.Text != "assets/lofi.mp3" {
		t.Errorf("unexpected music path %q", prefs.musicPath.Text)
	}
}

func TestSaveAppliesEntries(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var saved []Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) {
		saved = append(saved, settings)
	})

	prefs.focusMin.SetText(" 50 ")
	prefs.breakMin.SetText("10")
	prefs.cueCheck.SetChecked(false)
	prefs.volume.SetValue(-2)
	prefs.musicPath.SetText("/music/rain.mp3")
	prefs.handleSave()

	if len(saved) != 1 {
		t.Fatalf("expected one save, got %d", len(saved))
	}
	expected := Settings{
		FocusDuration: 50 * time.Minute,
		BreakDuration: 10 * time.Minute,
		CueEnabled:    false,
		Volume:        -2,
		MusicPath:     "/music/rain.mp3",
	}
	if saved[0] != expected {
		t.Errorf("expected %+v, got %+v", expected, saved[0])
	}
	if prefs.Settings() != expected {
		t.Errorf("expected window to keep saved settings, got %+v", prefs.Settings())
	}
}

func TestSaveKeepsPreviousOnInvalidInput(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	prefs := New(app, DefaultSettings(), nil)
	prefs.focusMin.SetText("soon")
	prefs.breakMin.SetText("-4")
	prefs.musicPath.SetText("   ")
	prefs.handleSave()

	settings := prefs.Settings()
	if settings.FocusDuration != 25*time.Minute || settings.BreakDuration != 5*time.Minute {
		t.Errorf("expected previous durations, got %v/%v", settings.FocusDuration, settings.BreakDuration)
	}
	if settings.MusicPath != "assets/lofi.mp3" {
		t.Errorf("expected previous music path, got %q", settings.MusicPath)
	}
}

func TestUpdateSettingsClampsVolume(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	settings := DefaultSettings()
	settings.Volume = 12
	prefs := New(app, settings, nil)
	if prefs.volume.Value != MaxVolume {
		t.Errorf("expected slider at %v, got %v", MaxVolume, prefs.volume.Value)
	}
}

func TestClampVolume(t *testing.T) {
	cases := map[float64]float64{
		-9:   MinVolume,
		-5:   -5,
		0:    0,
		1.5:  1.5,
		2:    2,
		3.25: MaxVolume,
	}
	for input, expected := range cases {
		if got := ClampVolume(input); got != expected {
			t.Errorf("ClampVolume(%v): expected %v, got %v", input, expected, got)
		}
	}
}

func TestPomodoroConfig(t *testing.T) {
	settings := DefaultSettings()
	settings.FocusDuration = 0
	settings.BreakDuration = 90 * time.Second

	config := settings.PomodoroConfig()
	if config.FocusSeconds() != 1500 {
		t.Errorf("expected default focus, got %d", config.FocusSeconds())
	}
	if config.BreakSeconds() != 90 {
		t.Errorf("expected 90s break, got %d", config.BreakSeconds())
	}
}
