package commands

import (
	"testing"
)

func TestParseTaskNumber_Valid(t *testing.T) {
	num, err := ParseTaskNumber([]string{"5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != 5 {
		t.Errorf("expected 5, got %d", num)
	}
}

func TestParseTaskNumber_MultiDigit(t *testing.T) {
	num, err := ParseTaskNumber([]string{"012"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != 12 {
		t.Errorf("expected 12, got %d", num)
	}
}

func TestParseTaskNumber_NoArgs(t *testing.T) {
	_, err := ParseTaskNumber(nil)
	if err != ErrTaskNumberRequired {
		t.Errorf("expected ErrTaskNumberRequired, got %v", err)
	}
}

func TestParseTaskNumber_Errors(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"abc"}, "invalid task number: abc"},
		{[]string{"a1"}, "invalid task number: a1"},
		{[]string{"-1"}, "invalid task number: -1"},
		{[]string{"0"}, "task number out of range: 0"},
		{[]string{"1", "2"}, "unexpected argument: 2"},
		{[]string{"١"}, "invalid task number: ١"},
	}
	for _, tt := range tests {
		_, err := ParseTaskNumber(tt.args)
		if err == nil {
			t.Errorf("ParseTaskNumber(%q): expected error", tt.args)
			continue
		}
		if err.Error() != tt.want {
			t.Errorf("ParseTaskNumber(%q): expected %q, got %q", tt.args, tt.want, err.Error())
		}
	}
}
