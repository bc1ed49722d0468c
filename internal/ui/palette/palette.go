// Package palette holds the pastel look shared by every Pomoduck window.
package palette

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

var (
	Background = color.NRGBA{R: 0x68, G: 0x9f, B: 0xbd, A: 0xff}
	Title      = color.NRGBA{R: 0xfa, G: 0xd8, B: 0x77, A: 0xff}
	Timer      = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Pill       = color.NRGBA{R: 0xff, G: 0xd3, B: 0xe0, A: 0xff}
	Ink        = color.NRGBA{R: 0x4e, G: 0x34, B: 0x2e, A: 0xff}
	Paper      = color.NRGBA{R: 0xff, G: 0xf3, B: 0xe6, A: 0xff}
)

const pillRadius = 14

// NewText returns bold monospace text in the given color.
func NewText(text string, fill color.Color, size float32) *canvas.Text {
	label := canvas.NewText(text, fill)
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	label.TextSize = size
	return label
}

// NewPill wraps a button in a rounded pink backdrop.
func NewPill(button *widget.Button) fyne.CanvasObject {
	button.Importance = widget.LowImportance
	backdrop := canvas.NewRectangle(Pill)
	backdrop.CornerRadius = pillRadius
	return container.NewStack(backdrop, button)
}

// NewBackdrop returns a full-window background fill.
func NewBackdrop() *canvas.Rectangle {
	return canvas.NewRectangle(Background)
}
