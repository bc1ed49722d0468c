package home

import (
	"errors"
	"image"

	"github.com/elaine-zeng/pomoduck/internal/core/pomodoro"
	"github.com/elaine-zeng/pomoduck/internal/ui/palette"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const (
	MusicOffLabel = "🔇 Music Off"
	MusicOnLabel  = "🔊 Music On"
)

// Config defines the main window visuals.
type Config struct {
	Title      string
	Width      float32
	Height     float32
	FrameSize  fyne.Size
	PhaseNames map[pomodoro.Phase]string
}

// DefaultConfig returns the classic Pomoduck window.
func DefaultConfig() Config {
	return Config{
		Title:     "Pomoduck.exe",
		Width:     500,
		Height:    600,
		FrameSize: fyne.NewSize(330, 250),
		PhaseNames: map[pomodoro.Phase]string{
			pomodoro.PhaseFocus: "focus",
			pomodoro.PhaseBreak: "break",
		},
	}
}

// Callbacks defines main window action handlers.
type Callbacks struct {
	OnStart       func()
	OnPause       func()
	OnReset       func()
	OnToggleMusic func()
	OnOpenTodo    func()
}

// Window is the main timer window.
type Window struct {
	window      fyne.Window
	config      Config
	callbacks   Callbacks
	timerLabel  *canvas.Text
	phaseLabel  *canvas.Text
	image       *canvas.Image
	startButton *widget.Button
	pauseButton *widget.Button
	resetButton *widget.Button
	musicButton *widget.Button
	todoButton  *widget.Button
}

// New creates the main window. It is not shown until Show is called.
func New(app fyne.App, config Config, callbacks Callbacks) *Window {
	window := app.NewWindow(config.Title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	titleLabel := palette.NewText("🪷 p o m o d u c k 🪷", palette.Title, 24)
	timerLabel := palette.NewText(pomodoro.Format(0), palette.Timer, 64)
	phaseLabel := palette.NewText("", palette.Paper, 14)

	picture := canvas.NewImageFromImage(nil)
	picture.FillMode = canvas.ImageFillContain
	picture.SetMinSize(config.FrameSize)

	home := &Window{
		window:     window,
		config:     config,
		callbacks:  callbacks,
		timerLabel: timerLabel,
		phaseLabel: phaseLabel,
		image:      picture,
	}

	home.startButton = widget.NewButton("s t a r t", func() { invoke(home.callbacks.OnStart) })
	home.pauseButton = widget.NewButton("p a u s e", func() { invoke(home.callbacks.OnPause) })
	home.resetButton = widget.NewButton("r e s e t", func() { invoke(home.callbacks.OnReset) })
	home.musicButton = widget.NewButton(MusicOffLabel, func() { invoke(home.callbacks.OnToggleMusic) })
	home.todoButton = widget.NewButton("🧾 t o - d o", func() { invoke(home.callbacks.OnOpenTodo) })

	controls := container.NewHBox(
		layout.NewSpacer(),
		palette.NewPill(home.startButton),
		palette.NewPill(home.pauseButton),
		palette.NewPill(home.resetButton),
		layout.NewSpacer(),
	)

	content := container.NewVBox(
		titleLabel,
		timerLabel,
		phaseLabel,
		controls,
		container.NewCenter(picture),
		container.NewCenter(palette.NewPill(home.musicButton)),
		container.NewCenter(palette.NewPill(home.todoButton)),
	)

	window.SetContent(container.NewStack(palette.NewBackdrop(), container.NewPadded(content)))
	window.Resize(fyne.NewSize(config.Width, config.Height))

	return home
}

// Window returns the underlying fyne window.
func (home *Window) Window() fyne.Window {
	return home.window
}

// Show displays the window.
func (home *Window) Show() {
	home.window.Show()
}

// Render updates the timer and phase labels from an engine snapshot.
func (home *Window) Render(state pomodoro.State) {
	home.timerLabel.Text = pomodoro.Format(state.SecondsRemaining)
	home.timerLabel.Refresh()

	phase := home.config.PhaseNames[state.Phase]
	if !state.Running {
		phase += " · paused"
	}
	home.phaseLabel.Text = phase
	home.phaseLabel.Refresh()
}

// TimerText returns the text currently shown by the countdown label.
func (home *Window) TimerText() string {
	return home.timerLabel.Text
}

// SetFrame shows an animation frame.
func (home *Window) SetFrame(frame image.Image) {
	home.image.Image = frame
	home.image.Refresh()
}

// SetMusic updates the music button label.
func (home *Window) SetMusic(on bool) {
	if on {
		home.musicButton.SetText(MusicOnLabel)
		return
	}
	home.musicButton.SetText(MusicOffLabel)
}

// MusicLabel returns the music button text.
func (home *Window) MusicLabel() string {
	return home.musicButton.Text
}

// ShowInfo opens a modal information dialog over the window.
func (home *Window) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, home.window)
}

// ShowError opens a modal error dialog over the window.
func (home *Window) ShowError(err error) {
	if err == nil {
		err = errors.New("unknown error")
	}
	dialog.ShowError(err, home.window)
}

func invoke(handler func()) {
	if handler != nil {
		handler()
	}
}
