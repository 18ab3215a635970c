package main

import (
	"context"
	"errors"
	"os"

	"github.com/YangRuhao/Snake-Game/internal/config"
	"github.com/YangRuhao/Snake-Game/internal/game"
	"github.com/YangRuhao/Snake-Game/internal/playfield"
	"github.com/YangRuhao/Snake-Game/internal/window"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.NewLogger(os.Stderr, log.InfoLevel).Fatal("invalid configuration", "err", err)
	}
	logger := config.NewLogger(os.Stderr, cfg.LogLevel)

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

	g := window.New(loop, field, cfg.CherryImage, logger)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizable(false)
	ebiten.SetWindowSize(g.ScreenWidth(), g.ScreenHeight())
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("window closed with error", "err", err)
	}
}
