package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tasklist/internal/task"
)

// Form fields, in tab order.
const (
	fieldTitle = iota
	fieldSummary
	fieldState
	fieldDeadline
	fieldCount
)

// taskForm is the new-task form: three text inputs and a state selector.
type taskForm struct {
	title    textinput.Model
	summary  textinput.Model
	deadline textinput.Model
	state    task.State
	focus    int
	err      string
}

func newTaskForm() taskForm {
	title := textinput.New()
	title.Placeholder = "Task Title"
	title.Prompt = ""

	summary := textinput.New()
	summary.Placeholder = "Task Summary"
	summary.Prompt = ""

	deadline := textinput.New()
	deadline.Placeholder = "YYYY-MM-DD"
	deadline.Prompt = ""
	deadline.CharLimit = 25

	f := taskForm{
		title:    title,
		summary:  summary,
		deadline: deadline,
		state:    task.NotDone,
	}
	f.setFocus(fieldTitle)
	return f
}

// input returns the text input for field, or nil for the state selector.
func (f *taskForm) input(field int) *textinput.Model {
	switch field {
	case fieldTitle:
		return &f.title
	case fieldSummary:
		return &f.summary
	case fieldDeadline:
		return &f.deadline
	}
	return nil
}

func (f *taskForm) setFocus(field int) tea.Cmd {
	for i := 0; i < fieldCount; i++ {
		if in := f.input(i); in != nil {
			in.Blur()
		}
	}
	f.focus = (field + fieldCount) % fieldCount
	if in := f.input(f.focus); in != nil {
		return in.Focus()
	}
	return nil
}

// value returns the task described by the form.
func (f taskForm) value() task.Task {
	return task.Task{
		Title:    f.title.Value(),
		Summary:  f.summary.Value(),
		State:    f.state,
		Deadline: strings.TrimSpace(f.deadline.Value()),
	}
}

// formResult tells the model what the form wants after a key press.
type formResult int

const (
	formEditing formResult = iota
	formSubmitted
	formCancelled
)

func (f taskForm) update(msg tea.KeyMsg, keys KeyMap) (taskForm, tea.Cmd, formResult) {
	switch {
	case key.Matches(msg, keys.Cancel):
		return f, nil, formCancelled
	case key.Matches(msg, keys.Submit):
		if strings.TrimSpace(f.title.Value()) == "" {
			f.err = "Title is required"
			return f, f.setFocus(fieldTitle), formEditing
		}
		return f, nil, formSubmitted
	case key.Matches(msg, keys.NextField):
		return f, f.setFocus(f.focus + 1), formEditing
	case key.Matches(msg, keys.PrevField):
		return f, f.setFocus(f.focus - 1), formEditing
	}

	if f.focus == fieldState {
		switch {
		case key.Matches(msg, keys.NextState):
			f.state = f.state.Next()
		case key.Matches(msg, keys.PrevState):
			f.state = f.state.Prev()
		}
		return f, nil, formEditing
	}

	var cmd tea.Cmd
	in := f.input(f.focus)
	*in, cmd = in.Update(msg)
	f.err = ""
	return f, cmd, formEditing
}

func (f taskForm) view(s Styles) string {
	var b strings.Builder
	b.WriteString(s.Header.Render("New Task"))
	b.WriteString("\n\n")

	row := func(field int, label, value string) {
		style := s.Field
		if f.focus == field {
			style = s.FocusedField
		}
		b.WriteString(style.Render(label))
		b.WriteString("\n")
		b.WriteString(value)
		b.WriteString("\n\n")
	}

	row(fieldTitle, "Title *", f.title.View())
	row(fieldSummary, "Summary", f.summary.View())

	var states []string
	for _, st := range task.States {
		if st == f.state {
			states = append(states, s.FocusedField.Render("["+string(st)+"]"))
		} else {
			states = append(states, s.Dimmed.Render(" "+string(st)+" "))
		}
	}
	row(fieldState, "State", strings.Join(states, " "))
	row(fieldDeadline, "Deadline", f.deadline.View())

	if f.err != "" {
		b.WriteString(s.Error.Render(f.err))
		b.WriteString("\n")
	}
	return b.String()
}
