package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the task list
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Task actions
	New    key.Binding
	Delete key.Binding

	// View
	SortState     key.Binding
	SortDeadline  key.Binding
	FilterDone    key.Binding
	FilterNotDone key.Binding
	FilterDoing   key.Binding
	ShowAll       key.Binding

	ToggleTheme key.Binding
	Quit        key.Binding

	// Form
	NextField key.Binding
	PrevField key.Binding
	NextState key.Binding
	PrevState key.Binding
	Submit    key.Binding
	Cancel    key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new task"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "delete"),
		),
		SortState: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort by state"),
		),
		SortDeadline: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "sort by deadline"),
		),
		FilterDone: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "only done"),
		),
		FilterNotDone: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "only not done"),
		),
		FilterDoing: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "only doing"),
		),
		ShowAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "show all"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("ctrl+j"),
			key.WithHelp("ctrl+j", "light/dark"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		NextState: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next state"),
		),
		PrevState: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous state"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "create task"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// browseHelp returns the bindings shown under the task list.
func (k KeyMap) browseHelp() []key.Binding {
	return []key.Binding{
		k.New, k.Delete, k.SortState, k.SortDeadline,
		k.FilterDone, k.FilterNotDone, k.FilterDoing, k.ShowAll,
		k.ToggleTheme, k.Quit,
	}
}

// formHelp returns the bindings shown under the new-task form.
func (k KeyMap) formHelp() []key.Binding {
	return []key.Binding{k.NextField, k.PrevField, k.NextState, k.Submit, k.Cancel}
}
