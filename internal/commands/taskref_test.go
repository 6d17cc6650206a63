package commands

import (
	"errors"
	"testing"
)

func TestParseTaskRef_Number(t *testing.T) {
	num, err := ParseTaskRef([]string{"5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != 5 {
		t.Errorf("expected 5, got %d", num)
	}
}

func TestParseTaskRef_MultiDigit(t *testing.T) {
	num, err := ParseTaskRef([]string{"123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != 123 {
		t.Errorf("expected 123, got %d", num)
	}
}

func TestParseTaskRef_Required(t *testing.T) {
	_, err := ParseTaskRef(nil)
	if !errors.Is(err, ErrTaskRefRequired) {
		t.Errorf("expected ErrTaskRefRequired, got %v", err)
	}
}

func TestParseTaskRef_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"letter", []string{"a1"}, "invalid task reference: a1"},
		{"negative", []string{"-1"}, "invalid task reference: -1"},
		{"empty", []string{""}, "invalid task reference: "},
		{"non-ascii digit", []string{"١"}, "invalid task reference: ١"},
		{"extra argument", []string{"1", "2"}, "unexpected argument: 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTaskRef(tt.args)
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Error() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, err.Error())
			}
		})
	}
}

func TestIsAllDigits(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"0", true},
		{"42", true},
		{"", false},
		{"4a", false},
		{" 4", false},
	}

	for _, tt := range tests {
		if got := isAllDigits(tt.input); got != tt.want {
			t.Errorf("isAllDigits(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
