package app

import (
	"context"
	"errors"
	"flag"
	"log/slog"

	"lifeloop/internal/engine"
	"lifeloop/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Runtime bundles the engine with the optional metrics endpoint.
type Runtime struct {
	Engine  *engine.Engine
	Metrics *MetricsServer
}

// Start builds the engine described by the parsed flags and, when a metrics
// address is configured, begins serving Prometheus metrics.
func Start(c *Config, fs *flag.FlagSet, log *slog.Logger) (*Runtime, error) {
	ec, err := c.EngineConfig(fs)
	if err != nil {
		return nil, err
	}
	opts := []engine.Option{engine.WithLogger(log)}

	var reg *prometheus.Registry
	if c.MetricsAddr != "" {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m, err := metrics.New(reg)
		if err != nil {
			return nil, err
		}
		opts = append(opts, engine.WithMetrics(m))
	}

	eng, err := engine.New(ec, opts...)
	if err != nil {
		return nil, err
	}
	rt := &Runtime{Engine: eng}
	if reg != nil {
		rt.Metrics, err = ServeMetrics(c.MetricsAddr, reg, log)
		if err != nil {
			eng.Close()
			return nil, err
		}
	}
	log.Info("engine ready",
		"width", ec.Width, "height", ec.Height,
		"rules", eng.Rules(), "mode", ec.Mode.String(), "tps", ec.TPS)
	return rt, nil
}

// Close stops the engine and the metrics endpoint.
func (r *Runtime) Close(ctx context.Context) error {
	return errors.Join(r.Engine.Close(), r.Metrics.Shutdown(ctx))
}
