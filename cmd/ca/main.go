//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"lifeloop/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	rt, err := app.Start(cfg, flag.CommandLine, log)
	if err != nil {
		log.Error("startup failed", "err", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rt.Close(ctx); err != nil {
			log.Error("shutdown", "err", err)
		}
	}()

	eng := rt.Engine
	hud := cfg.HUDWidth
	if hud < 0 {
		hud = 0
	}
	game := app.New(eng, cfg.Scale, hud, log)

	ebiten.SetWindowTitle("lifeloop - " + eng.Rules())
	ebiten.SetWindowSize(eng.Width()*cfg.Scale+hud, eng.Height()*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("game loop", "err", err)
	}
}
