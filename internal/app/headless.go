package app

import (
	"context"
	"log/slog"
	"time"

	"lifeloop/internal/engine"
	pcore "lifeloop/pkg/core"
)

// Headless drives eng without a window. In stamp mode it first drops place
// stamps at random points, then runs until ctx is done, logging the latest
// frame every interval. It leaves the engine stopped.
func Headless(ctx context.Context, eng *engine.Engine, place int, every time.Duration, log *slog.Logger) error {
	mode := eng.Mode()
	if mode == engine.Stamp && place > 0 {
		r := pcore.NewRNG(int64(eng.Stats().Generation) + 1)
		for i := 0; i < place; i++ {
			x := r.Source().IntN(eng.Width())
			y := r.Source().IntN(eng.Height())
			if err := eng.AddStampAtPoint(x, y); err != nil {
				return err
			}
		}
	}
	if err := eng.Run(mode); err != nil {
		return err
	}
	defer eng.Stop()

	if every <= 0 {
		every = time.Second
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			report(eng, log)
		}
	}
}

func report(eng *engine.Engine, log *slog.Logger) {
	eng.Read(func(f engine.Frame) {
		alive := 0
		for _, c := range f.Cells {
			alive += int(c)
		}
		log.Info("frame", "generation", f.Generation, "population", alive,
			"width", f.Width, "height", f.Height)
	})
}
