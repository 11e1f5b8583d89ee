package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/miniplayer/internal/app"
	"github.com/llehouerou/miniplayer/internal/config"
	"github.com/llehouerou/miniplayer/internal/errmsg"
	"github.com/llehouerou/miniplayer/internal/lifecycle"
	"github.com/llehouerou/miniplayer/internal/logging"
	"github.com/llehouerou/miniplayer/internal/media"
	"github.com/llehouerou/miniplayer/internal/state"
	"github.com/llehouerou/miniplayer/internal/stderr"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	if len(os.Args) > 1 {
		cfg.Source = os.Args[1]
	}

	log, closeLog, err := logging.Setup(cfg.GetLogConfig())
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLogSetup, err))
	}
	defer closeLog()

	if err := stderr.Start(log); err != nil {
		log.WithError(err).Warn("stderr capture unavailable")
	}
	defer stderr.Stop()

	stateMgr, err := state.Open()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpStateOpen, err))
	}
	defer stateMgr.Close()

	// Deferred tasks run on the update loop, never on timer goroutines.
	var p *tea.Program
	sched := lifecycle.NewTimerScheduler(func(task func()) {
		p.Send(app.TaskMsg(task))
	})

	m := app.New(app.Deps{
		Config:    cfg,
		State:     stateMgr,
		Media:     media.NewBuilder(),
		Scheduler: sched,
		Log:       log,
	})

	p = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	log.WithField("source", cfg.Source).Info("starting")
	if _, err := p.Run(); err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	return nil
}
