// Package export renders a task view as JSON, CSV or PDF.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"tasklist/internal/repository"
	"tasklist/internal/task"
)

// Formats lists the supported export formats.
var Formats = []string{"json", "csv", "pdf"}

// Write renders tasks to w in the given format.
// JSON output is the saved-data format, so it can be loaded back as is.
// numbers holds the number printed for each task in the PDF; nil numbers
// tasks by their position in tasks.
func Write(w io.Writer, format string, title string, tasks []task.Task, numbers []int) error {
	switch strings.ToLower(format) {
	case "json":
		data, err := repository.Encode(tasks)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case "csv":
		return writeCSV(w, tasks)
	case "pdf":
		return writePDF(w, title, tasks, numbers)
	default:
		return fmt.Errorf("unknown export format: %s", format)
	}
}

func writeCSV(w io.Writer, tasks []task.Task) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"title", "summary", "state", "deadline"}); err != nil {
		return err
	}
	for _, t := range tasks {
		if err := cw.Write([]string{t.Title, t.Summary, string(t.State), t.Deadline}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writePDF(w io.Writer, title string, tasks []task.Task, numbers []int) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(title, false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, tr(title))
	pdf.Ln(14)

	if len(tasks) == 0 {
		pdf.SetFont("Arial", "", 11)
		pdf.Cell(40, 8, "You have no tasks")
	}

	for i, t := range tasks {
		pdf.SetFont("Arial", "B", 12)
		pdf.MultiCell(0, 7, tr(fmt.Sprintf("%d. %s", taskNumber(numbers, i), t.Title)), "", "L", false)

		summary := t.Summary
		if strings.TrimSpace(summary) == "" {
			summary = "No summary was provided for this task"
		}
		deadline := t.Deadline
		if strings.TrimSpace(deadline) == "" {
			deadline = "No deadline provided"
		}

		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 6, tr(summary), "", "L", false)
		pdf.MultiCell(0, 6, tr("State: "+string(t.State)), "", "L", false)
		pdf.MultiCell(0, 6, tr("Deadline: "+deadline), "", "L", false)
		pdf.Ln(3)
	}

	return pdf.Output(w)
}

func taskNumber(numbers []int, i int) int {
	if i < len(numbers) && numbers[i] > 0 {
		return numbers[i]
	}
	return i + 1
}
