package testutil

import (
	"testing"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no ansi codes",
			input: "hello world",
			want:  "hello world",
		},
		{
			name:  "with color codes",
			input: "\x1b[31mred\x1b[0m text",
			want:  "red text",
		},
		{
			name:  "with multiple codes",
			input: "\x1b[1;32mbold green\x1b[0m",
			want:  "bold green",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripANSI(tt.input)
			if got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "multiple spaces",
			input: "hello    world",
			want:  "hello world",
		},
		{
			name:  "tabs and newlines",
			input: "hello\t\nworld",
			want:  "hello world",
		},
		{
			name:  "leading and trailing",
			input: "  hello  ",
			want:  "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeWhitespace(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeWhitespace(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestContainsLine(t *testing.T) {
	output := "line one\nline two\nline three"

	if !ContainsLine(output, "two") {
		t.Error("should find 'two' in output")
	}
	if ContainsLine(output, "four") {
		t.Error("should not find 'four' in output")
	}
}

func TestFindLine(t *testing.T) {
	output := "first line\nsecond line\nthird line"

	got := FindLine(output, "second")
	if got != "second line" {
		t.Errorf("FindLine() = %q, want %q", got, "second line")
	}

	got = FindLine(output, "missing")
	if got != "" {
		t.Errorf("FindLine() for missing = %q, want empty", got)
	}
}

func TestDimensions(t *testing.T) {
	w, h := Dimensions("\x1b[1mab\x1b[0m\nabcd\nx")
	if w != 4 || h != 3 {
		t.Errorf("Dimensions() = %d x %d, want 4 x 3", w, h)
	}
}

func TestFindLine_IgnoresStyling(t *testing.T) {
	got := FindLine("\x1b[31mred line\x1b[0m\nplain", "red")
	if got != "red line" {
		t.Errorf("FindLine() = %q, want %q", got, "red line")
	}
}

func TestSplitLines(t *testing.T) {
	input := "one\ntwo\nthree\n\n"
	got := SplitLines(input)

	if len(got) != 3 {
		t.Errorf("SplitLines() returned %d lines, want 3", len(got))
	}
	if got[0] != "one" || got[1] != "two" || got[2] != "three" {
		t.Errorf("SplitLines() = %v, want [one two three]", got)
	}
}
