package preferences

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window    fyne.Window
	settings  Settings
	onSave    func(Settings)
	focusMin  *widget.Entry
	breakMin  *widget.Entry
	cueCheck  *widget.Check
	volume    *widget.Slider
	musicPath *widget.Entry
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Pomoduck Settings")

	focusMin := widget.NewEntry()
	breakMin := widget.NewEntry()

	cueCheck := widget.NewCheck("Play a pop on every click", nil)

	volume := widget.NewSlider(MinVolume, MaxVolume)
	volume.Step = 0.5

	musicPath := widget.NewEntry()
	musicPath.SetPlaceHolder("assets/lofi.mp3")

	form := container.NewVBox(
		widget.NewLabelWithStyle("Timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Focus for"), focusMin, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Break for"), breakMin, widget.NewLabel("min")),
		widget.NewLabelWithStyle("Sound", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		cueCheck,
		widget.NewLabel("Volume"),
		volume,
		widget.NewLabel("Music file"),
		musicPath,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 360))
	window.SetCloseIntercept(window.Hide)

	prefs := &Window{
		window:    window,
		onSave:    onSave,
		focusMin:  focusMin,
		breakMin:  breakMin,
		cueCheck:  cueCheck,
		volume:    volume,
		musicPath: musicPath,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Settings returns the last saved settings.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.focusMin.SetText(fmt.Sprintf("%d", int(settings.FocusDuration.Minutes())))
	prefs.breakMin.SetText(fmt.Sprintf("%d", int(settings.BreakDuration.Minutes())))
	prefs.cueCheck.SetChecked(settings.CueEnabled)
	prefs.volume.SetValue(ClampVolume(settings.Volume))
	prefs.musicPath.SetText(settings.MusicPath)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if minutes, ok := parsePositiveInt(prefs.focusMin.Text); ok {
		settings.FocusDuration = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(prefs.breakMin.Text); ok {
		settings.BreakDuration = time.Duration(minutes) * time.Minute
	}
	settings.CueEnabled = prefs.cueCheck.Checked
	settings.Volume = ClampVolume(prefs.volume.Value)
	if path := strings.TrimSpace(prefs.musicPath.Text); path != "" {
		settings.MusicPath = path
	}

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
