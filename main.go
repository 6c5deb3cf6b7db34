package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/pomotask/internal/clock"
	"github.com/sadopc/pomotask/internal/config"
	"github.com/sadopc/pomotask/internal/feed"
	"github.com/sadopc/pomotask/internal/focuslog"
	"github.com/sadopc/pomotask/internal/logging"
	"github.com/sadopc/pomotask/internal/pomodoro"
	"github.com/sadopc/pomotask/internal/settings"
	"github.com/sadopc/pomotask/internal/store"
	"github.com/sadopc/pomotask/internal/task"
	"github.com/sadopc/pomotask/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer log.Sync()

	s, err := store.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer s.Close()

	c := clock.Real()
	prefs := settings.NewService(s, store.KeySettings)
	tasks := task.NewList(s, store.KeyTasks, c)
	logs := focuslog.NewLog(s, store.KeyFocusLogs, c)
	posts := feed.New(s, store.KeyPosts, c)

	if keys, err := s.Keys(); err != nil {
		log.Warnf("list stored collections: %v", err)
	} else {
		log.Infof("stored collections: %v", keys)
	}

	// A collection that fails to load starts empty; the app stays usable.
	loaders := []struct {
		name string
		load func() error
	}{
		{"settings", prefs.Load},
		{"tasks", tasks.Load},
		{"focus logs", logs.Load},
		{"posts", posts.Load},
	}
	for _, l := range loaders {
		if err := l.load(); err != nil {
			log.Errorf("load %s: %v", l.name, err)
		}
	}

	machine := pomodoro.NewMachine(prefs.Get().PomodoroConfig(), c, clock.Ticker())
	defer machine.Stop()

	app := tui.NewApp(tui.Services{
		Tasks:     tasks,
		Logs:      logs,
		Feed:      posts,
		Settings:  prefs,
		Machine:   machine,
		Clock:     c,
		Logger:    log,
		ExportDir: cfg.ExportDir,
	})
	defer app.Close()

	log.Infof("pomotask started, db %s", cfg.DBPath)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	return nil
}
