package tray

import (
	"fmt"

	"github.com/elaine-zeng/pomoduck/internal/core/pomodoro"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnStart       func()
	OnPause       func()
	OnReset       func()
	OnToggleMusic func()
	OnOpenTodo    func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	startItem  *fyne.MenuItem
	pauseItem  *fyne.MenuItem
	musicItem  *fyne.MenuItem
	running    bool
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: idle", nil)
	manager.statusItem.Disabled = true
	manager.startItem = fyne.NewMenuItem("Start", func() { invoke(manager.callbacks.OnStart) })
	manager.pauseItem = fyne.NewMenuItem("Pause", func() { invoke(manager.callbacks.OnPause) })
	manager.pauseItem.Disabled = true
	manager.musicItem = fyne.NewMenuItem("Music", func() { invoke(manager.callbacks.OnToggleMusic) })

	manager.refreshMenu()
	return manager
}

// SetState mirrors the engine state in the status line and menu items.
func (manager *Manager) SetState(state pomodoro.State) {
	status := fmt.Sprintf("%s %s", state.Phase, pomodoro.Format(state.SecondsRemaining))
	if !state.Running {
		status += " (paused)"
	}
	manager.statusItem.Label = "Status: " + status

	if manager.running != state.Running {
		manager.running = state.Running
		manager.startItem.Disabled = state.Running
		manager.pauseItem.Disabled = !state.Running
	}
	manager.refreshMenu()
}

// SetMusic toggles the music checkmark.
func (manager *Manager) SetMusic(on bool) {
	manager.musicItem.Checked = on
	manager.refreshMenu()
}

// Status returns the current status line.
func (manager *Manager) Status() string {
	return manager.statusItem.Label
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	quit := fyne.NewMenuItem("Quit", func() { invoke(manager.callbacks.OnQuit) })
	quit.IsQuit = true
	manager.app.SetSystemTrayMenu(fyne.NewMenu("Pomoduck",
		manager.statusItem,
		fyne.NewMenuItem("Show timer", func() { invoke(manager.callbacks.OnShow) }),
		fyne.NewMenuItemSeparator(),
		manager.startItem,
		manager.pauseItem,
		fyne.NewMenuItem("Reset", func() { invoke(manager.callbacks.OnReset) }),
		fyne.NewMenuItemSeparator(),
		manager.musicItem,
		fyne.NewMenuItem("To-do list", func() { invoke(manager.callbacks.OnOpenTodo) }),
		fyne.NewMenuItem("Preferences", func() { invoke(manager.callbacks.OnPreferences) }),
		quit,
	))
}

func invoke(handler func()) {
	if handler != nil {
		handler()
	}
}
