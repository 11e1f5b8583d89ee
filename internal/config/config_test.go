//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/music",
			expected: filepath.Join(home, "music"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/music/library/albums",
			expected: filepath.Join(home, "music", "library", "albums"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/usr/local/music",
			expected: "/usr/local/music",
		},
		{
			name:     "relative path unchanged",
			input:    "music/albums",
			expected: "music/albums",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
		{
			name:     "tilde with slash",
			input:    "~/",
			expected: filepath.Join(home, ""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	// Should have at least one path
	if len(paths) == 0 {
		t.Error("getConfigPaths() returned empty slice")
	}

	// Last path should be local config.toml
	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}

	// If we have home dir, first path should be ~/.config/miniplayer/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		expectedFirst := filepath.Join(home, ".config", "miniplayer", "config.toml")
		if paths[0] != expectedFirst {
			t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
		}
	}
}

func TestGetGestureConfig_Defaults(t *testing.T) {
	cfg := Config{}
	g := cfg.GetGestureConfig()

	if g.ClickThreshold != 10 {
		t.Errorf("ClickThreshold = %f, want 10", g.ClickThreshold)
	}
	if g.MaxDragDistance != 800 {
		t.Errorf("MaxDragDistance = %f, want 800", g.MaxDragDistance)
	}
}

func TestGetSnapConfig_Defaults(t *testing.T) {
	cfg := Config{Snap: SnapConfig{Padding: -3}}
	s := cfg.GetSnapConfig()

	if s.Padding != 16 {
		t.Errorf("Padding = %f, want 16", s.Padding)
	}
	if s.DurationMS != 300 {
		t.Errorf("DurationMS = %d, want 300", s.DurationMS)
	}
	if s.Duration() != 300*time.Millisecond {
		t.Errorf("Duration() = %v, want 300ms", s.Duration())
	}
}

func TestGetDisplayConfig_Defaults(t *testing.T) {
	cfg := Config{Display: DisplayConfig{MiniHeight: 2}}
	d := cfg.GetDisplayConfig()

	if d.Density != 0.0625 {
		t.Errorf("Density = %f, want 0.0625", d.Density)
	}
	if d.MiniWidth != 34 {
		t.Errorf("MiniWidth = %d, want 34", d.MiniWidth)
	}
	if d.MiniHeight != 6 {
		t.Errorf("MiniHeight = %d, want 6 (too small to draw)", d.MiniHeight)
	}
}

func TestGetLogConfig_Defaults(t *testing.T) {
	cfg := Config{}
	if got := cfg.GetLogConfig().Level; got != "info" {
		t.Errorf("Level = %q, want info", got)
	}
}

func TestLoadFrom(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.toml")
	local := filepath.Join(dir, "local.toml")

	writeFile(t, base, `
source = "/music/a.flac"

[gesture]
click_threshold = 12
max_drag_distance = 900

[display]
density = 0.125
`)
	writeFile(t, local, `
[gesture]
max_drag_distance = 1000

[snap]
padding = 8
duration_ms = 250

[log]
level = "debug"
enabled = false
`)

	cfg, err := LoadFrom(base, local, filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if cfg.Source != "/music/a.flac" {
		t.Errorf("Source = %q", cfg.Source)
	}
	g := cfg.GetGestureConfig()
	if g.ClickThreshold != 12 || g.MaxDragDistance != 1000 {
		t.Errorf("Gesture = %+v, want later file to override max_drag_distance only", g)
	}
	s := cfg.GetSnapConfig()
	if s.Padding != 8 || s.Duration() != 250*time.Millisecond {
		t.Errorf("Snap = %+v", s)
	}
	if cfg.GetDisplayConfig().Density != 0.125 {
		t.Errorf("Density = %f, want 0.125", cfg.GetDisplayConfig().Density)
	}
	l := cfg.GetLogConfig()
	if l.Level != "debug" || l.Enabled {
		t.Errorf("Log = %+v", l)
	}
}

func TestLoadFrom_NoFilesEnablesLogging(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "none.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if !cfg.Log.Enabled {
		t.Error("logging should be enabled by default")
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	writeFile(t, path, "[gesture\nclick_threshold = ")

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() should fail on invalid TOML")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
