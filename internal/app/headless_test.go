package app

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"lifeloop/internal/engine"
)

func TestHeadlessRunsAndStops(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.Width, cfg.Height = 24, 24
	cfg.Mode = engine.Stamp
	cfg.TPS = 0
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	eng, err := engine.New(cfg, engine.WithLogger(log))
	if err != nil {
		t.Fatal(err)
	}
	defer eng.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if err := Headless(ctx, eng, 3, 10*time.Millisecond, log); err != nil {
		t.Fatalf("headless: %v", err)
	}
	if eng.IsRunning() {
		t.Fatal("engine still running after headless returned")
	}
	if eng.Stats().Generation == 0 {
		t.Fatal("no generations computed")
	}
}
