package textutil

import "testing"

func TestVisualWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"日本語", 6},
		{"a日b", 4},
	}
	for _, tt := range tests {
		if got := VisualWidth(tt.in); got != tt.want {
			t.Errorf("VisualWidth(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		maxWidth int
		want     string
	}{
		{"fits", "abc", 5, "abc"},
		{"cut ascii", "abcdef", 4, "abc…"},
		{"cut wide runes", "日本語", 5, "日本…"},
		{"zero width", "abc", 0, ""},
		{"negative width", "abc", -1, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.maxWidth); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestPadRightVisual(t *testing.T) {
	if got := PadRightVisual("ab", 5); got != "ab   " {
		t.Errorf("PadRightVisual = %q, want %q", got, "ab   ")
	}
	if got := PadRightVisual("日本", 6); got != "日本  " {
		t.Errorf("PadRightVisual wide = %q, want %q", got, "日本  ")
	}
	// Overlong input truncates instead of overflowing the column
	if got := PadRightVisual("abcdef", 4); got != "abc…" {
		t.Errorf("PadRightVisual overlong = %q, want %q", got, "abc…")
	}
}

func TestPadLeftVisual(t *testing.T) {
	if got := PadLeftVisual("ab", 5); got != "   ab" {
		t.Errorf("PadLeftVisual = %q, want %q", got, "   ab")
	}
	if got := PadLeftVisual("42", 2); got != "42" {
		t.Errorf("PadLeftVisual exact = %q, want %q", got, "42")
	}
}
