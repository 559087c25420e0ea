package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"lifeloop/internal/rules"
	"lifeloop/internal/sweep"
)

func main() {
	sim := flag.String("sim", "life", "registered simulation to sweep")
	steps := flag.Int("steps", 500, "generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 128, "grid width")
	height := flag.Int("h", 128, "grid height")
	seeds := flag.Int("seeds", 4, "random soups per rule")
	ruleList := flag.String("rules", strings.Join(rules.Presets(), ","), "comma-separated presets or survive/birth rules")
	top := flag.Int("top", 10, "results to print")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var names []string
	for _, r := range strings.Split(*ruleList, ",") {
		if r = strings.TrimSpace(r); r != "" {
			names = append(names, r)
		}
	}
	scenarios := sweep.Scenarios(names, *seeds)
	log.Info("sweeping", "scenarios", len(scenarios), "workers", *workers, "steps", *steps)

	start := time.Now()
	results, err := sweep.Run(ctx, scenarios, sweep.Options{
		Sim: *sim, Width: *width, Height: *height, Steps: *steps, Workers: *workers,
	})
	if err != nil {
		log.Error("sweep failed", "err", err)
		os.Exit(1)
	}

	fmt.Printf("Top %d results (elapsed %s):\n", min(*top, len(results)), time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(results) && i < *top; i++ {
		fmt.Printf("%2d) %s\n", i+1, results[i])
	}
}
