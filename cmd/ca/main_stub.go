//go:build !ebiten

// Headless runner: drives the engine without a window and logs what a
// viewer would have seen.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lifeloop/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	duration := flag.Duration("duration", 10*time.Second, "how long to run, 0 runs until interrupted")
	every := flag.Duration("report", time.Second, "interval between frame reports")
	stamps := flag.Int("place", 8, "stamps to place at random points before running (stamp mode)")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	log.Info("GUI disabled; build with -tags ebiten for a window")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	rt, err := app.Start(cfg, flag.CommandLine, log)
	if err != nil {
		log.Error("startup failed", "err", err)
		os.Exit(1)
	}
	if err := app.Headless(ctx, rt.Engine, *stamps, *every, log); err != nil {
		log.Error("run failed", "err", err)
	}

	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rt.Close(shutdown); err != nil {
		log.Error("shutdown", "err", err)
	}
	st := rt.Engine.Stats()
	log.Info("done", "generation", st.Generation, "rendered", st.Rendered,
		"dropped", st.Dropped, "overwritten", st.Overwritten, "presented", st.Presented)
}
