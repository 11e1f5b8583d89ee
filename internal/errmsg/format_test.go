//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpConfigLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpConfigLoad,
			err:      errors.New("toml: line 3: expected '='"),
			expected: "Failed to load configuration: toml: line 3: expected '='",
		},
		{
			name:     "state operation",
			op:       OpStateOpen,
			err:      errors.New("permission denied"),
			expected: "Failed to open state database: permission denied",
		},
		{
			name:     "constraint operation",
			op:       OpConstraintCommit,
			err:      errors.New("database is locked"),
			expected: "Failed to commit view constraint: database is locked",
		},
		{
			name:     "media operation",
			op:       OpMediaPlay,
			err:      errors.New("no audio device"),
			expected: "Failed to start playback: no audio device",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpMediaOpen,
			context:  "song.mp3",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpMediaOpen,
			context:  "song.mp3",
			err:      errors.New("permission denied"),
			expected: "Failed to open media source 'song.mp3': permission denied",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpMediaOpen,
			context:  "",
			err:      errors.New("permission denied"),
			expected: "Failed to open media source: permission denied",
		},
		{
			name:     "prepare with filename context",
			op:       OpMediaPrepare,
			context:  "album.ogg",
			err:      errors.New("unsupported format"),
			expected: "Failed to prepare media 'album.ogg': unsupported format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	ops := []Op{
		OpConfigLoad,
		OpStateOpen, OpStateRestore, OpConstraintLoad, OpConstraintCommit,
		OpMediaOpen, OpMediaPrepare, OpMediaPlay, OpMediaTags,
		OpLogSetup,
		OpInitialize,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}

			expected := "Failed to " + string(op) + ": test error"
			if result := Format(op, testErr); result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}
