// Package tui is the interactive terminal front end for the task list.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tasklist/internal/repository"
	"tasklist/internal/service"
	"tasklist/internal/task"
)

type mode int

const (
	modeBrowse mode = iota
	modeForm
)

// Model is the bubbletea model for the task list.
// All store calls run synchronously inside Update.
type Model struct {
	ctx    context.Context
	svc    *service.Service
	keys   KeyMap
	scheme repository.ColorScheme
	styles Styles

	mode   mode
	form   taskForm
	cursor int

	// current view, for the header
	filter task.State
	sortBy task.Criterion

	status string
	err    error
}

// New creates the model and loads the saved tasks and color scheme.
// Load failures are shown in the status line rather than returned.
func New(ctx context.Context, svc *service.Service) Model {
	m := Model{
		ctx:  ctx,
		svc:  svc,
		keys: DefaultKeyMap(),
	}

	scheme, err := svc.Prefs.ColorScheme(ctx)
	if err != nil {
		m.err = err
	}
	m.scheme = scheme
	m.styles = NewStyles(scheme)

	if _, err := svc.Tasks.Load(ctx); err != nil {
		m.err = err
	}
	return m
}

// Run starts the program and blocks until the user quits.
func Run(ctx context.Context, svc *service.Service, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(
		New(ctx, svc),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		// cursor blink and other input messages
		if m.mode == modeForm {
			var cmd tea.Cmd
			if in := m.form.input(m.form.focus); in != nil {
				*in, cmd = in.Update(msg)
			}
			return m, cmd
		}
		return m, nil
	}
	if keyMsg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.mode == modeForm {
		return m.updateForm(keyMsg)
	}
	return m.updateBrowse(keyMsg)
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	m.err = nil

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.svc.Tasks.Len()-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.New):
		m.mode = modeForm
		m.form = newTaskForm()
		return m, m.form.title.Focus()

	case key.Matches(msg, m.keys.Delete):
		m.deleteSelected()

	case key.Matches(msg, m.keys.SortState):
		m.sort(task.ByState)
	case key.Matches(msg, m.keys.SortDeadline):
		m.sort(task.ByDeadline)

	case key.Matches(msg, m.keys.FilterDone):
		m.applyFilter(task.Done)
	case key.Matches(msg, m.keys.FilterNotDone):
		m.applyFilter(task.NotDone)
	case key.Matches(msg, m.keys.FilterDoing):
		m.applyFilter(task.DoingRightNow)
	case key.Matches(msg, m.keys.ShowAll):
		m.showAll()

	case key.Matches(msg, m.keys.ToggleTheme):
		scheme, err := m.svc.Prefs.ToggleColorScheme(m.ctx)
		if err != nil {
			m.err = err
		}
		m.scheme = scheme
		m.styles = NewStyles(scheme)
	}

	m.clampCursor()
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form, cmd, result := m.form.update(msg, m.keys)
	m.form = form

	switch result {
	case formCancelled:
		m.mode = modeBrowse
	case formSubmitted:
		m.mode = modeBrowse
		m.create(form.value())
	}
	return m, cmd
}

// create appends t to the full list. A filtered view is dropped first so
// the saved list keeps the tasks the filter hid.
func (m *Model) create(t task.Task) {
	if m.filter != "" {
		if err := m.svc.Tasks.FilterBy(m.ctx, ""); err != nil {
			m.err = err
			return
		}
		m.filter = ""
		m.sortBy = ""
	}
	if _, err := m.svc.Tasks.Create(m.ctx, t); err != nil {
		m.err = err
	} else {
		m.status = "Created " + t.Title
	}
	m.cursor = m.svc.Tasks.Len() - 1
}

// deleteSelected removes the highlighted task. Deleting persists the
// visible sequence, so it is refused while a filter hides tasks.
func (m *Model) deleteSelected() {
	tasks := m.svc.Tasks.Tasks()
	if len(tasks) == 0 {
		return
	}
	if m.filter != "" {
		m.status = "Show all tasks (a) before deleting"
		return
	}
	selected := tasks[m.cursor]
	if err := m.svc.Tasks.DeleteByID(m.ctx, selected.ID); err != nil {
		m.err = err
		return
	}
	m.status = "Deleted " + selected.Title
}

func (m *Model) sort(c task.Criterion) {
	if err := m.svc.Tasks.SortBy(c); err != nil {
		m.err = err
		return
	}
	m.sortBy = c
}

// applyFilter shows only tasks in st. Switching from another filter starts
// again from the full list, keeping the current sort.
func (m *Model) applyFilter(st task.State) {
	if m.filter != "" && m.filter != st {
		if err := m.svc.Tasks.FilterBy(m.ctx, ""); err != nil {
			m.err = err
			return
		}
		if m.sortBy != "" {
			m.sort(m.sortBy)
		}
	}
	if err := m.svc.Tasks.FilterBy(m.ctx, st); err != nil {
		m.err = err
		return
	}
	m.filter = st
	m.cursor = 0
}

func (m *Model) showAll() {
	if err := m.svc.Tasks.FilterBy(m.ctx, ""); err != nil {
		m.err = err
		return
	}
	m.filter = ""
	m.sortBy = ""
	m.cursor = 0
}

func (m *Model) clampCursor() {
	if n := m.svc.Tasks.Len(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View implements tea.Model.
func (m Model) View() string {
	s := m.styles
	var b strings.Builder

	icon := "☾"
	if m.scheme == repository.Dark {
		icon = "☀"
	}
	b.WriteString(s.Header.Render("My Tasks") + "  " + s.Dimmed.Render(icon))
	b.WriteString("\n")
	if label := m.viewLabel(); label != "" {
		b.WriteString(s.ViewLabel.Render(label))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.mode == modeForm {
		b.WriteString(m.form.view(s))
		b.WriteString(renderHelp(s, m.keys.formHelp()))
		return b.String()
	}

	tasks := m.svc.Tasks.Tasks()
	if len(tasks) == 0 {
		b.WriteString(s.Dimmed.Render("You have no tasks"))
		b.WriteString("\n")
	}
	for i, t := range tasks {
		card := s.Card
		if i == m.cursor {
			card = s.SelectedCard
		}
		b.WriteString(card.Render(renderTask(s, t)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(s.Error.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(s.Dimmed.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(renderHelp(s, m.keys.browseHelp()))
	return b.String()
}

func (m Model) viewLabel() string {
	var parts []string
	if m.filter != "" {
		parts = append(parts, "Only "+string(m.filter))
	}
	if m.sortBy != "" {
		parts = append(parts, "sorted by "+string(m.sortBy))
	}
	if len(parts) == 0 {
		return ""
	}
	label := strings.Join(parts, ", ")
	return strings.ToUpper(label[:1]) + label[1:]
}

func renderTask(s Styles, t task.Task) string {
	summary := t.Summary
	if strings.TrimSpace(summary) == "" {
		summary = "No summary was provided for this task"
	}
	deadline := t.Deadline
	if strings.TrimSpace(deadline) == "" {
		deadline = "No deadline provided"
	}
	return fmt.Sprintf("%s\n%s\n%s %s\n%s %s",
		s.TaskTitle.Render(t.Title),
		s.Dimmed.Render(summary),
		s.Label.Render("State:"), t.State,
		s.Label.Render("Deadline:"), deadline,
	)
}

func renderHelp(s Styles, bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return s.Help.Render(strings.Join(parts, " • "))
}
