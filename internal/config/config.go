package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Source string `koanf:"source"` // media file opened at startup

	Gesture GestureConfig `koanf:"gesture"`
	Snap    SnapConfig    `koanf:"snap"`
	Display DisplayConfig `koanf:"display"`
	Log     LogConfig     `koanf:"log"`
}

// GestureConfig holds drag classification settings, in dp.
type GestureConfig struct {
	ClickThreshold  float64 `koanf:"click_threshold"`   // below this a touch is a tap (default: 10)
	MaxDragDistance float64 `koanf:"max_drag_distance"` // drag distance mapped to full progress (default: 800)
}

// SnapConfig holds mini player corner snap settings.
type SnapConfig struct {
	Padding    float64 `koanf:"padding"`     // dp from the window edge (default: 16)
	DurationMS int     `koanf:"duration_ms"` // snap animation length (default: 300)
}

// DisplayConfig maps dp to terminal cells and sizes the mini player.
type DisplayConfig struct {
	Density    float64 `koanf:"density"`     // cells per dp (default: 0.0625)
	MiniWidth  int     `koanf:"mini_width"`  // cells (default: 34)
	MiniHeight int     `koanf:"mini_height"` // cells (default: 6)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level   string `koanf:"level"`   // logrus level name (default: "info")
	Enabled bool   `koanf:"enabled"` // write a log file (default: true)
}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom loads config files in order; later files override earlier ones.
// Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{
		Log: LogConfig{Enabled: true},
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in source
	if cfg.Source != "" {
		cfg.Source = expandPath(cfg.Source)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/miniplayer/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "miniplayer", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetGestureConfig returns the gesture configuration with defaults applied.
func (c *Config) GetGestureConfig() GestureConfig {
	cfg := c.Gesture

	if cfg.ClickThreshold <= 0 {
		cfg.ClickThreshold = 10
	}
	if cfg.MaxDragDistance <= 0 {
		cfg.MaxDragDistance = 800
	}

	return cfg
}

// GetSnapConfig returns the snap configuration with defaults applied.
func (c *Config) GetSnapConfig() SnapConfig {
	cfg := c.Snap

	if cfg.Padding <= 0 {
		cfg.Padding = 16
	}
	if cfg.DurationMS <= 0 {
		cfg.DurationMS = 300
	}

	return cfg
}

// Duration returns the snap animation length.
func (s SnapConfig) Duration() time.Duration {
	return time.Duration(s.DurationMS) * time.Millisecond
}

// GetDisplayConfig returns the display configuration with defaults applied.
func (c *Config) GetDisplayConfig() DisplayConfig {
	cfg := c.Display

	if cfg.Density <= 0 {
		cfg.Density = 0.0625
	}
	if cfg.MiniWidth <= 0 {
		cfg.MiniWidth = 34
	}
	if cfg.MiniHeight < 4 {
		cfg.MiniHeight = 6
	}

	return cfg
}

// GetLogConfig returns the log configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log

	if cfg.Level == "" {
		cfg.Level = "info"
	}

	return cfg
}
