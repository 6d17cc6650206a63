package task

import (
	"testing"
	"time"
)

func TestParseState(t *testing.T) {
	tests := []struct {
		in      string
		want    State
		wantErr bool
	}{
		{"Done", Done, false},
		{"done", Done, false},
		{"  DONE ", Done, false},
		{"Not done", NotDone, false},
		{"notdone", NotDone, false},
		{"todo", NotDone, false},
		{"Doing right now", DoingRightNow, false},
		{"doing", DoingRightNow, false},
		{"", "", true},
		{"finished", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseState(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseState(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseState(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseCriterion(t *testing.T) {
	if c, err := ParseCriterion("State"); err != nil || c != ByState {
		t.Errorf("expected ByState, got %q (%v)", c, err)
	}
	if c, err := ParseCriterion("deadline"); err != nil || c != ByDeadline {
		t.Errorf("expected ByDeadline, got %q (%v)", c, err)
	}
	if _, err := ParseCriterion("title"); err == nil {
		t.Error("expected error for unknown criterion")
	}
}

func TestParseDeadline(t *testing.T) {
	got, ok := ParseDeadline("2024-01-15")
	if !ok {
		t.Fatal("expected date to parse")
	}
	if !got.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected date %v", got)
	}

	if _, ok := ParseDeadline("2024-01-15T10:00:00Z"); !ok {
		t.Error("expected RFC3339 timestamp to parse")
	}
	if _, ok := ParseDeadline(""); ok {
		t.Error("empty deadline should not parse")
	}
	if _, ok := ParseDeadline("next week"); ok {
		t.Error("free text should not parse")
	}
}

func TestStateCycle(t *testing.T) {
	if NotDone.Next() != DoingRightNow {
		t.Errorf("NotDone.Next() = %q", NotDone.Next())
	}
	if DoingRightNow.Next() != Done {
		t.Errorf("DoingRightNow.Next() = %q", DoingRightNow.Next())
	}
	if Done.Prev() != DoingRightNow {
		t.Errorf("Done.Prev() = %q", Done.Prev())
	}
	if State("bogus").Next() != NotDone {
		t.Error("unknown state should reset to NotDone")
	}
}
