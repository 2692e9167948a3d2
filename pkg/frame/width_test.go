package frame

import "testing"

func TestIsFullwidth(t *testing.T) {
	tests := []struct {
		r        rune
		expected bool
	}{
		{'A', false},
		{'a', false},
		{'1', false},
		{' ', false},
		{'-', false},
		{'あ', true},
		{'ー', true},
		{'中', true},
		{'한', true},
		{'Ａ', true},       // Fullwidth A
		{'°', false},      // ambiguous
		{'│', false},      // ambiguous box drawing
		{'\u0301', false}, // combining acute accent
		{'\t', false},
		{0, false},
	}

	for _, tt := range tests {
		if got := IsFullwidth(tt.r); got != tt.expected {
			t.Errorf("IsFullwidth(%q) = %v, want %v", tt.r, got, tt.expected)
		}
	}
}

func TestRuneColumns(t *testing.T) {
	tests := []struct {
		r        rune
		expected int
	}{
		{'a', 1},
		{'あ', 2},
		{'\u0301', 1},
		{0, 1},
	}

	for _, tt := range tests {
		if got := runeColumns(tt.r); got != tt.expected {
			t.Errorf("runeColumns(%q) = %d, want %d", tt.r, got, tt.expected)
		}
	}
}
