// Package metrics exposes Prometheus collectors for the simulation engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lifeloop"

// Metrics groups the collectors updated by the engine. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	Ticks             prometheus.Counter
	FramesRendered    prometheus.Counter
	FramesDropped     prometheus.Counter
	FramesOverwritten prometheus.Counter
	FramesPresented   prometheus.Counter
	RuleRejections    prometheus.Counter
	Running           prometheus.Gauge
	Population        prometheus.Gauge
}

// New creates the collectors and registers them with reg when it is non-nil.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "ticks_total",
			Help: "Generations computed by the simulation goroutine.",
		}),
		FramesRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "frame", Name: "rendered_total",
			Help: "Frames rasterized into the shared frame buffer.",
		}),
		FramesDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "frame", Name: "dropped_total",
			Help: "Ticks whose frame was skipped because the consumer held the buffer.",
		}),
		FramesOverwritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "frame", Name: "overwritten_total",
			Help: "Frames replaced before the consumer read them.",
		}),
		FramesPresented: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "frame", Name: "presented_total",
			Help: "Pending frames picked up by the consumer.",
		}),
		RuleRejections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "rule_rejections_total",
			Help: "Rule strings refused by the parser.",
		}),
		Running: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "running",
			Help: "1 while the simulation is running, 0 while stopped.",
		}),
		Population: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "population",
			Help: "Living cells in the most recent generation.",
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range m.collectors() {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.Ticks, m.FramesRendered, m.FramesDropped, m.FramesOverwritten,
		m.FramesPresented, m.RuleRejections, m.Running, m.Population,
	}
}

func (m *Metrics) Tick(population int) {
	if m == nil {
		return
	}
	m.Ticks.Inc()
	m.Population.Set(float64(population))
}

func (m *Metrics) Rendered() {
	if m != nil {
		m.FramesRendered.Inc()
	}
}

func (m *Metrics) Dropped() {
	if m != nil {
		m.FramesDropped.Inc()
	}
}

func (m *Metrics) Overwritten() {
	if m != nil {
		m.FramesOverwritten.Inc()
	}
}

func (m *Metrics) Presented() {
	if m != nil {
		m.FramesPresented.Inc()
	}
}

func (m *Metrics) RuleRejected() {
	if m != nil {
		m.RuleRejections.Inc()
	}
}

func (m *Metrics) SetRunning(running bool) {
	if m == nil {
		return
	}
	if running {
		m.Running.Set(1)
		return
	}
	m.Running.Set(0)
}
