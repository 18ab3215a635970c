package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/YangRuhao/Snake-Game/internal/config"
	"github.com/YangRuhao/Snake-Game/internal/game"
	"github.com/YangRuhao/Snake-Game/internal/playfield"
	"github.com/YangRuhao/Snake-Game/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// logFile is where the terminal build logs, since stderr shares the screen
// with the game.
const logFile = "snake-tui.log"

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.NewLogger(os.Stderr, log.InfoLevel).Fatal("invalid configuration", "err", err)
	}

	var out io.Writer = io.Discard
	if f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		defer f.Close()
		out = f
	}
	logger := config.NewLogger(out, cfg.LogLevel)

	field := playfield.Default()
	session := game.NewSession(field, game.NewRand(cfg.Seed), logger)
	loop := game.NewLoop(session, cfg.TickInterval, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("game loop stopped", "err", err)
		}
	}()

	p := tea.NewProgram(tui.NewModel(loop, field, tui.DefaultRefresh), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("terminal ui stopped", "err", err)
		cancel()
		os.Exit(1)
	}
}
