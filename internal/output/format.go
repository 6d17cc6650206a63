// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"tasklist/internal/task"
)

const (
	// ViewSeparator is the separator line around a view header.
	ViewSeparator = "------------"

	// EmptyMessage is printed when the view has no tasks.
	EmptyMessage = "You have no tasks"

	noSummary  = "No summary was provided for this task"
	noDeadline = "No deadline provided"
)

// FormatTask formats a task block.
// Format: "{N:>4}  {TITLE}\n" followed by summary, state and deadline
// lines indented to the title column.
func FormatTask(w io.Writer, num int, t task.Task) {
	fmt.Fprintf(w, "%4d  %s\n", num, normalizeTitle(t.Title))

	summary := oneLine(t.Summary)
	if strings.TrimSpace(summary) == "" {
		summary = noSummary
	}
	deadline := t.Deadline
	if strings.TrimSpace(deadline) == "" {
		deadline = noDeadline
	}
	fmt.Fprintf(w, "      %s\n", summary)
	fmt.Fprintf(w, "      State: %s\n", t.State)
	fmt.Fprintf(w, "      Deadline: %s\n", deadline)
}

// FormatViewHeader formats the header printed above a sorted or filtered view.
// Nothing is printed when neither applies.
func FormatViewHeader(w io.Writer, filter task.State, sortBy task.Criterion) {
	var parts []string
	if filter != "" {
		parts = append(parts, "Only "+string(filter))
	}
	if sortBy != "" {
		parts = append(parts, "sorted by "+string(sortBy))
	}
	if len(parts) == 0 {
		return
	}
	title := strings.Join(parts, ", ")
	title = strings.ToUpper(title[:1]) + title[1:]

	fmt.Fprintln(w, ViewSeparator)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, ViewSeparator)
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = oneLine(title)

	// Trim and check for empty
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}

func oneLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
