package home

import (
	"errors"
	"image"
	"testing"

	"github.com/elaine-zeng/pomoduck/internal/core/pomodoro"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
)

// newTestApp returns a headless app whose theme carries the bold monospace
// font the palette labels use.
func newTestApp() fyne.App {
	app := test.NewApp()
	app.Settings().SetTheme(theme.DefaultTheme())
	return app
}

func TestButtonsInvokeCallbacks(t *testing.T) {
	app := newTestApp()
	defer app.Quit()

	calls := map[string]int{}
	home := New(app, DefaultConfig(), Callbacks{
		OnStart:       func() { calls["start"]++ },
		OnPause:       func() { calls["pause"]++ },
		OnReset:       func() { calls["reset"]++ },
		OnToggleMusic: func() { calls["music"]++ },
		OnOpenTodo:    func() { calls["todo"]++ },
	})

	test.Tap(home.startButton)
	test.Tap(home.startButton)
	test.Tap(home.pauseButton)
	test.Tap(home.resetButton)
	test.Tap(home.musicButton)
	test.Tap(home.todoButton)

	expected := map[string]int{"start": 2, "pause": 1, "reset": 1, "music": 1, "todo": 1}
	for name, count := range expected {
		if calls[name] != count {
			t.Errorf("%s: expected %d calls, got %d", name, count, calls[name])
		}
	}
}

func TestMissingCallbacksAreIgnored(t *testing.T) {
	app := newTestApp()
	defer app.Quit()

	home := New(app, DefaultConfig(), Callbacks{})
	test.Tap(home.startButton)
	test.Tap(home.musicButton)
}

func TestRenderShowsCountdown(t *testing.T) {
	app := newTestApp()
	defer app.Quit()

	home := New(app, DefaultConfig(), Callbacks{})
	home.Render(pomodoro.State{Phase: pomodoro.PhaseFocus, SecondsRemaining: 1500})
	if home.TimerText() != "25:00" {
		t.Errorf("expected 25:00, got %s", home.TimerText())
	}
	if home.phaseLabel.Text != "focus · paused" {
		t.Errorf("unexpected phase label %q", home.phaseLabel.Text)
	}

	home.Render(pomodoro.State{Phase: pomodoro.PhaseBreak, SecondsRemaining: 61, Running: true})
	if home.TimerText() != "01:01" {
		t.Errorf("expected 01:01, got %s", home.TimerText())
	}
	if home.phaseLabel.Text != "break" {
		t.Errorf("unexpected phase label %q", home.phaseLabel.Text)
	}
}

func TestSetMusicLabel(t *testing.T) {
	app := newTestApp()
	defer app.Quit()

	home := New(app, DefaultConfig(), Callbacks{})
	if home.MusicLabel() != MusicOffLabel {
		t.Errorf("expected %q, got %q", MusicOffLabel, home.MusicLabel())
	}
	home.SetMusic(true)
	if home.MusicLabel() != MusicOnLabel {
		t.Errorf("expected %q, got %q", MusicOnLabel, home.MusicLabel())
	}
	home.SetMusic(false)
	if home.MusicLabel() != MusicOffLabel {
		t.Errorf("expected %q, got %q", MusicOffLabel, home.MusicLabel())
	}
}

func TestSetFrame(t *testing.T) {
	app := newTestApp()
	defer app.Quit()

	home := New(app, DefaultConfig(), Callbacks{})
	frame := image.NewGray(image.Rect(0, 0, 2, 2))
	home.SetFrame(frame)
	if home.image.Image != frame {
		t.Error("expected frame to be shown")
	}
}

func TestDialogsDoNotPanic(t *testing.T) {
	app := newTestApp()
	defer app.Quit()

	home := New(app, DefaultConfig(), Callbacks{})
	home.Show()
	home.ShowInfo("Pomoduck", "Time's up!")
	home.ShowError(errors.New("could not play music"))
	home.ShowError(nil)
}
