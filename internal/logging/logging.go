// Package logging sets up the application log. The terminal belongs to the
// UI, so entries go to a dated file under the XDG state directory.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/miniplayer/internal/config"
)

const appName = "miniplayer"

// Setup creates the application logger from cfg. The returned close
// function flushes and closes the log file. When logging is disabled the
// logger discards everything.
func Setup(cfg config.LogConfig) (*logrus.Logger, func() error, error) {
	if !cfg.Enabled {
		return Discard(), func() error { return nil }, nil
	}

	path, err := logPath(time.Now())
	if err != nil {
		return nil, nil, fmt.Errorf("resolve log path: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	log := New(f, cfg)
	return log, f.Close, nil
}

// New creates a logger writing text entries to w at the configured level.
// An unknown level falls back to info.
func New(w io.Writer, cfg config.LogConfig) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
	})

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

// Discard returns a logger that drops every entry.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.PanicLevel)
	return log
}

func logPath(now time.Time) (string, error) {
	name := now.Format("2006-01-02") + ".log"
	return xdg.StateFile(filepath.Join(appName, "logs", name))
}
