package todo

import (
	"github.com/elaine-zeng/pomoduck/internal/core/checklist"
	"github.com/elaine-zeng/pomoduck/internal/ui/palette"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Window renders a checklist.List. It holds no task state of its own.
type Window struct {
	app       fyne.App
	list      *checklist.List
	window    fyne.Window
	entry     *widget.Entry
	addButton *widget.Button
	items     *widget.List
}

// New creates the view. The window itself is built on first Show.
func New(app fyne.App, list *checklist.List) *Window {
	view := &Window{
		app:  app,
		list: list,
	}
	list.OnChange(view.refresh)
	return view
}

// Show opens the window, or raises it if it is already open.
func (view *Window) Show() {
	if view.window == nil {
		view.build()
	}
	view.window.Show()
	view.window.RequestFocus()
}

func (view *Window) build() {
	window := view.app.NewWindow("Pomoduck To-Do")

	title := palette.NewText("📝 t o - d o   l i s t", palette.Title, 16)

	view.entry = widget.NewEntry()
	view.entry.SetPlaceHolder("new task")
	view.entry.OnSubmitted = func(string) { view.submit() }
	view.addButton = widget.NewButton("a d d 🐣", view.submit)

	view.items = widget.NewList(
		view.list.Len,
		func() fyne.CanvasObject {
			return widget.NewCheck("", nil)
		},
		func(id widget.ListItemID, object fyne.CanvasObject) {
			view.bind(id, object.(*widget.Check))
		},
	)

	inputRow := container.NewBorder(nil, nil, nil, palette.NewPill(view.addButton), view.entry)
	header := container.NewVBox(title, inputRow)
	content := container.NewBorder(header, nil, nil, nil, view.items)

	window.SetContent(container.NewStack(palette.NewBackdrop(), container.NewPadded(content)))
	window.Resize(fyne.NewSize(320, 420))
	window.SetCloseIntercept(window.Hide)
	view.window = window
}

func (view *Window) bind(id widget.ListItemID, check *widget.Check) {
	task, ok := view.list.At(id)
	if !ok {
		return
	}
	check.OnChanged = nil
	check.SetChecked(false)
	check.Text = task.Text
	check.Refresh()
	check.OnChanged = func(checked bool) {
		if checked {
			view.complete(task)
		}
	}
}

func (view *Window) submit() {
	if _, ok := view.list.Add(view.entry.Text); ok {
		view.entry.SetText("")
	}
}

func (view *Window) complete(task checklist.Task) {
	view.list.Complete(task.ID)
}

func (view *Window) refresh() {
	if view.items != nil {
		view.items.Refresh()
	}
}
