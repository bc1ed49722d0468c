package main

import (
	"log"

	"github.com/elaine-zeng/pomoduck/internal/audio"
	"github.com/elaine-zeng/pomoduck/internal/core/checklist"
	"github.com/elaine-zeng/pomoduck/internal/core/pomodoro"
	"github.com/elaine-zeng/pomoduck/internal/platform"
	"github.com/elaine-zeng/pomoduck/internal/scheduler"
	"github.com/elaine-zeng/pomoduck/internal/storage"
	"github.com/elaine-zeng/pomoduck/internal/ui/animation"
	"github.com/elaine-zeng/pomoduck/internal/ui/home"
	"github.com/elaine-zeng/pomoduck/internal/ui/preferences"
	"github.com/elaine-zeng/pomoduck/internal/ui/todo"
	"github.com/elaine-zeng/pomoduck/internal/ui/tray"
	"github.com/elaine-zeng/pomoduck/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const (
	appName        = "Pomoduck"
	timesUpMessage = "Time's up! 🛁"
)

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}

	fyneApp := app.NewWithID("com.pomoduck.app")
	activeIcon := resources.MustLogo(resources.ActiveLogo)
	pausedIcon := resources.MustLogo(resources.PausedLogo)
	fyneApp.SetIcon(activeIcon)

	output, player := openAudio(settings)
	if player != nil {
		defer player.Close()
	}
	cue := audio.NewCue(output, loadCue())
	cue.SetEnabled(settings.CueEnabled)
	music := audio.NewMusic(output, settings.MusicPath)

	sched := scheduler.NewUI()
	engine := pomodoro.New(settings.PomodoroConfig(), sched, cue)
	tasks := checklist.New(cue)
	todoWindow := todo.New(fyneApp, tasks)

	var (
		homeWindow  *home.Window
		trayManager *tray.Manager
	)

	toggleMusic := func() {
		on, err := music.Toggle()
		if err != nil {
			log.Printf("music: %v", err)
			homeWindow.ShowError(err)
		}
		homeWindow.SetMusic(on)
		if trayManager != nil {
			trayManager.SetMusic(on)
		}
	}

	homeWindow = home.New(fyneApp, home.DefaultConfig(), home.Callbacks{
		OnStart:       engine.Start,
		OnPause:       engine.Pause,
		OnReset:       engine.Reset,
		OnToggleMusic: toggleMusic,
		OnOpenTodo:    todoWindow.Show,
	})

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		engine.UpdateConfig(settings.PomodoroConfig())
		cue.SetEnabled(settings.CueEnabled)
		music.SetTrack(settings.MusicPath)
		if player != nil {
			player.SetVolume(settings.Volume)
		}
		if err := storage.SaveSettings(appName, settings); err != nil {
			log.Printf("save settings: %v", err)
			homeWindow.ShowError(err)
		}
	})

	homeWindow.Window().Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyComma,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, func(fyne.Shortcut) {
		prefsWindow.Show()
	})

	desktopApp, hasTray := fyneApp.(desktop.App)
	if hasTray {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:        homeWindow.Show,
			OnStart:       engine.Start,
			OnPause:       engine.Pause,
			OnReset:       engine.Reset,
			OnToggleMusic: toggleMusic,
			OnOpenTodo:    todoWindow.Show,
			OnPreferences: prefsWindow.Show,
			OnQuit: func() {
				fyneApp.Quit()
			},
		})
		desktopApp.SetSystemTrayIcon(pausedIcon)
	} else {
		log.Printf("system tray unsupported on this platform")
	}

	engine.Subscribe(func(event pomodoro.Event) {
		homeWindow.Render(event.State)
		if trayManager != nil {
			trayManager.SetState(event.State)
		}
		switch event.Type {
		case pomodoro.EventStateChange:
			if hasTray {
				desktopApp.SetSystemTrayIcon(trayIcon(event.State, activeIcon, pausedIcon))
			}
		case pomodoro.EventPhaseComplete:
			fyneApp.SendNotification(fyne.NewNotification(appName, timesUpMessage))
			homeWindow.Show()
			homeWindow.Window().RequestFocus()
			homeWindow.ShowInfo(appName, timesUpMessage)
		}
	})
	homeWindow.Render(engine.State())
	if trayManager != nil {
		trayManager.SetState(engine.State())
	}

	fyneApp.Lifecycle().SetOnStarted(func() {
		startAnimation(homeWindow, sched)
	})
	fyneApp.Lifecycle().SetOnStopped(func() {
		music.TurnOff()
	})

	homeWindow.Window().SetMaster()
	homeWindow.Show()
	fyneApp.Run()
}

func openAudio(settings preferences.Settings) (audio.Output, *audio.Player) {
	player, err := audio.NewPlayer(audio.DefaultSampleRate)
	if err != nil {
		log.Printf("audio disabled: %v", err)
		return audio.Silent{}, nil
	}
	player.SetVolume(settings.Volume)
	return player, player
}

func loadCue() *audio.Clip {
	data, err := resources.Sound(resources.PopSound)
	if err != nil {
		log.Printf("cue sound: %v", err)
		return nil
	}
	clip, err := audio.DecodeClip(data)
	if err != nil {
		log.Printf("cue sound: %v", err)
		return nil
	}
	return clip
}

func startAnimation(homeWindow *home.Window, sched scheduler.Scheduler) {
	config := animation.DefaultConfig()
	frames, err := animation.DecodeGIF(resources.MustSprite(resources.DuckAnimation), config.Width, config.Height)
	if err != nil {
		log.Printf("duck animation: %v", err)
		return
	}
	loop, err := animation.NewLoop(frames, homeWindow.SetFrame)
	if err != nil {
		log.Printf("duck animation: %v", err)
		return
	}
	loop.Start(sched, config.FrameInterval)
}

func trayIcon(state pomodoro.State, active, paused fyne.Resource) fyne.Resource {
	if state.Running {
		return active
	}
	return paused
}
