package output

import (
	"bytes"
	"testing"

	"tasklist/internal/task"
)

func TestFormatTask(t *testing.T) {
	tests := []struct {
		name string
		num  int
		task task.Task
		want string
	}{
		{
			name: "full",
			num:  1,
			task: task.Task{Title: "Write report", Summary: "Q3 summary", State: task.NotDone, Deadline: "2024-01-15"},
			want: "   1  Write report\n      Q3 summary\n      State: Not done\n      Deadline: 2024-01-15\n",
		},
		{
			name: "placeholders",
			num:  12,
			task: task.Task{Title: "Review PR", State: task.Done},
			want: "  12  Review PR\n      No summary was provided for this task\n      State: Done\n      Deadline: No deadline provided\n",
		},
		{
			name: "multiline title",
			num:  3,
			task: task.Task{Title: "  \n ", Summary: "line1\nline2", State: task.DoingRightNow},
			want: "   3  (untitled)\n      line1 line2\n      State: Doing right now\n      Deadline: No deadline provided\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			FormatTask(&buf, tt.num, tt.task)
			if buf.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, buf.String())
			}
		})
	}
}

func TestFormatViewHeader(t *testing.T) {
	tests := []struct {
		filter task.State
		sortBy task.Criterion
		want   string
	}{
		{"", "", ""},
		{task.Done, "", "------------\nOnly Done\n------------\n"},
		{"", task.ByDeadline, "------------\nSorted by deadline\n------------\n"},
		{task.NotDone, task.ByState, "------------\nOnly Not done, sorted by state\n------------\n"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		FormatViewHeader(&buf, tt.filter, tt.sortBy)
		if buf.String() != tt.want {
			t.Errorf("FormatViewHeader(%q, %q) = %q, want %q", tt.filter, tt.sortBy, buf.String(), tt.want)
		}
	}
}
