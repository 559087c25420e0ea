package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"lifeloop/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

func TestServeMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	if err != nil {
		t.Fatal(err)
	}
	m.Tick(7)

	srv, err := ServeMetrics("127.0.0.1:0", reg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("serve: %v", err)
	}
	defer srv.Shutdown(context.Background())

	resp, err := http.Get("http://" + srv.Addr() + "/metrics")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), "lifeloop_ticks_total 1") {
		t.Fatalf("ticks counter missing from scrape:\n%s", body)
	}
}

func TestStartWithMetrics(t *testing.T) {
	cfg, fs := parse(t, "-w", "16", "-h", "12", "-metrics", "127.0.0.1:0", "-tps", "0")
	rt, err := Start(cfg, fs, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if rt.Engine.Width() != 16 || rt.Engine.Height() != 12 {
		t.Fatalf("engine size %dx%d", rt.Engine.Width(), rt.Engine.Height())
	}
	if rt.Metrics == nil {
		t.Fatal("metrics server not started")
	}
	if err := rt.Close(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := rt.Engine.Clear(); err == nil {
		t.Fatal("engine accepted a command after close")
	}
}
