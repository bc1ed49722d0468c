package checklist

import (
	"strings"

	"github.com/google/uuid"
)

// Task is a single checklist entry.
type Task struct {
	ID        uuid.UUID
	Text      string
	Completed bool
}

// Cue plays short audible feedback for a user action.
type Cue interface {
	PlayCue()
}

// List is an insertion-ordered set of open tasks. Completed tasks are
// removed, so every task held by the list has Completed == false.
type List struct {
	tasks    []Task
	cue      Cue
	onChange []func()
}

// New creates an empty list.
func New(cue Cue) *List {
	return &List{cue: cue}
}

// OnChange registers a callback fired after every mutation.
func (list *List) OnChange(handler func()) {
	if handler == nil {
		return
	}
	list.onChange = append(list.onChange, handler)
}

// Add appends a task with the trimmed text. Blank text is ignored.
func (list *List) Add(text string) (Task, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, false
	}
	task := Task{
		ID:   uuid.New(),
		Text: text,
	}
	list.tasks = append(list.tasks, task)
	list.notify()
	return task, true
}

// Complete removes the task with the given id and plays the cue.
func (list *List) Complete(id uuid.UUID) bool {
	index := list.indexOf(id)
	if index < 0 {
		return false
	}
	list.tasks = append(list.tasks[:index:index], list.tasks[index+1:]...)
	if list.cue != nil {
		list.cue.PlayCue()
	}
	list.notify()
	return true
}

// Tasks returns a copy of the open tasks in insertion order.
func (list *List) Tasks() []Task {
	return append([]Task(nil), list.tasks...)
}

// At returns the task at index.
func (list *List) At(index int) (Task, bool) {
	if index < 0 || index >= len(list.tasks) {
		return Task{}, false
	}
	return list.tasks[index], true
}

// Len returns the number of open tasks.
func (list *List) Len() int {
	return len(list.tasks)
}

func (list *List) indexOf(id uuid.UUID) int {
	for index, task := range list.tasks {
		if task.ID == id {
			return index
		}
	}
	return -1
}

func (list *List) notify() {
	for _, handler := range list.onChange {
		handler()
	}
}
