package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean", "hello", "hello"},
		{"control chars", "a\x00b\x1bc", "abc"},
		{"tab kept", "a\tb", "a\tb"},
		{"invalid byte", "a\xffb", "ab"},
		{"nbsp", "a\u00a0b", "a b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncation with ellipsis", "hello world", 8, "hello w…"},
		{"wide characters", "日本語テキスト", 5, "日本…"},
		{"zero width", "hello", 0, ""},
		{"empty string", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"pad", "hi", 5, "hi   "},
		{"truncate", "hello world", 6, "hello…"},
		{"exact", "hello", 5, "hello"},
		{"zero", "hello", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fit(tt.input, tt.width); got != tt.want {
				t.Errorf("Fit(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestCenter(t *testing.T) {
	if got := Center("ab", 6); got != "  ab  " {
		t.Errorf("Center = %q", got)
	}
	if got := Center("abc", 6); got != " abc  " {
		t.Errorf("Center odd = %q", got)
	}
	if got := Center("toolong", 3); got != "toolong" {
		t.Errorf("Center overflow = %q", got)
	}
}

func TestRow(t *testing.T) {
	got := Row("left", "right", 20)
	if lipgloss.Width(got) != 20 {
		t.Errorf("Row width = %d, want 20", lipgloss.Width(got))
	}
	if !strings.HasPrefix(got, "left") || !strings.HasSuffix(got, "right") {
		t.Errorf("Row = %q", got)
	}

	if got := Row("left", "right", 5); got != "left right" {
		t.Errorf("tight Row = %q, want minimum gap of 1", got)
	}
}

func TestBlock(t *testing.T) {
	got := Block([]string{"ab", "cdef", "gh"}, 4, 2)
	if got != "ab  \ncdef" {
		t.Errorf("Block crop = %q", got)
	}

	got = Block([]string{"x"}, 2, 3)
	if got != "x \n  \n  " {
		t.Errorf("Block pad = %q", got)
	}

	got = Block([]string{"abcdef"}, 3, 1)
	if got != "abc" {
		t.Errorf("Block cut = %q", got)
	}

	if Block(nil, 0, 3) != "" {
		t.Error("Block with zero width should be empty")
	}
}
