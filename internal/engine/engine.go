// Package engine runs a Life-family simulation on a dedicated goroutine and
// exposes a command/query API plus a locked frame sink to presenters.
//
// Only the simulation goroutine touches the grid, the rule set, the random
// bit generator and the stamp catalogue. Callers communicate with it through
// the run state and a FIFO of commands applied between ticks, so a stamp or a
// rule change never lands in the middle of a generation.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"lifeloop/internal/core"
	"lifeloop/internal/metrics"
	"lifeloop/internal/render"
	"lifeloop/internal/rules"
	"lifeloop/internal/sims/life"
	"lifeloop/internal/stamp"
	pcore "lifeloop/pkg/core"
)

var (
	// ErrClosed is returned by commands issued after Close.
	ErrClosed = errors.New("engine closed")
	// ErrInvalidSize reports grid dimensions that cannot be allocated.
	ErrInvalidSize = errors.New("invalid grid size")
)

// Option customizes an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithMetrics records engine activity into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithCatalogue replaces the stamp catalogue.
func WithCatalogue(c *stamp.Catalogue) Option {
	return func(e *Engine) {
		if c != nil {
			e.catalogue = c
		}
	}
}

// WithPalette sets the colors used to rasterize frames.
func WithPalette(p render.Palette) Option {
	return func(e *Engine) { e.palette = p }
}

// simulation is the state owned by the simulation goroutine.
type simulation struct {
	life       *life.Life
	bits       *pcore.BitGenerator
	stamps     *stamp.Catalogue
	pacer      *core.Pacer
	mode       Mode
	generation uint64
	barriers   []chan struct{}
}

// release signals Sync callers whose barrier was drained this iteration.
func (s *simulation) release() {
	for _, b := range s.barriers {
		close(b)
	}
	s.barriers = s.barriers[:0]
}

func (s *simulation) seeder() life.BitSource {
	if s.mode == RandomSeed {
		return s.bits
	}
	return nil
}

// Engine owns the grid, rule set, stamps and random source and runs the
// simulation goroutine.
type Engine struct {
	cfg       Config
	log       *slog.Logger
	metrics   *metrics.Metrics
	palette   render.Palette
	catalogue *stamp.Catalogue

	mon    *monitor
	frames *frameBuffer
	sim    *simulation

	done chan struct{}
	wg   sync.WaitGroup

	stampNames []string
	generation atomic.Uint64
	stampIndex atomic.Int32
	tps        atomic.Int32
}

// New builds a stopped engine. The simulation goroutine starts with the first
// command. An empty or malformed cfg.Rules falls back to classic Life.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:     cfg,
		log:     slog.Default(),
		palette: render.DefaultPalette(),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.catalogue == nil {
		if cfg.StampsFile != "" {
			c, err := stamp.LoadCatalogue(cfg.StampsFile)
			if err != nil {
				return nil, err
			}
			e.catalogue = c
		} else {
			e.catalogue = stamp.Default()
		}
	}

	rs := rules.Classic()
	if cfg.Rules != "" {
		parsed, err := rules.Resolve(cfg.Rules)
		if err != nil {
			e.log.Warn("engine: falling back to classic rules", "rules", cfg.Rules, "err", err)
			e.metrics.RuleRejected()
		} else {
			rs = parsed
		}
	}

	e.sim = &simulation{
		life:   life.NewWithRules(cfg.Width, cfg.Height, rs),
		bits:   pcore.NewBitGenerator(cfg.Seed),
		stamps: e.catalogue,
		pacer:  core.NewPacer(cfg.TPS),
		mode:   cfg.Mode,
	}
	e.sim.life.SetSeeder(e.sim.seeder())
	e.mon = newMonitor(cfg.Mode, rs.String())
	e.frames = newFrameBuffer(cfg.Width, cfg.Height, e.palette, e.metrics)
	e.stampNames = e.catalogue.Names()
	e.stampIndex.Store(int32(e.catalogue.Index()))
	e.tps.Store(int32(cfg.TPS))
	e.metrics.SetRunning(false)
	return e, nil
}

// startLocked launches the simulation goroutine once. Caller holds mon.mu.
func (e *Engine) startLocked() {
	if e.mon.started {
		return
	}
	e.mon.started = true
	e.wg.Add(1)
	go e.loop()
}

// enqueue schedules c on the simulation goroutine.
func (e *Engine) enqueue(c command) error {
	e.mon.mu.Lock()
	defer e.mon.mu.Unlock()
	if e.mon.closed {
		return ErrClosed
	}
	e.mon.enqueueLocked(c)
	e.startLocked()
	return nil
}

// Run starts the simulation in mode. Switching modes resets the grid without
// restarting the goroutine; running again in the current mode resumes.
func (e *Engine) Run(mode Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidMode, int(mode))
	}
	e.mon.mu.Lock()
	if e.mon.closed {
		e.mon.mu.Unlock()
		return ErrClosed
	}
	changed := e.mon.mode != mode
	if changed {
		e.mon.mode = mode
		e.mon.enqueueLocked(func(s *simulation) { s.setMode(mode) })
	}
	prev := e.mon.setStateLocked(Running)
	e.metrics.SetRunning(true)
	e.startLocked()
	e.mon.mu.Unlock()

	if prev != Running || changed {
		e.log.Info("engine: simulation running", "mode", mode.String(), "mode_changed", changed)
	}
	return nil
}

func (s *simulation) setMode(mode Mode) {
	s.mode = mode
	s.life.Clear()
	s.life.SetSeeder(s.seeder())
}

// Stop parks the simulation goroutine at its next tick boundary. Stopping a
// stopped engine does nothing.
func (e *Engine) Stop() {
	e.mon.mu.Lock()
	if e.mon.closed {
		e.mon.mu.Unlock()
		return
	}
	prev := e.mon.setStateLocked(Stopped)
	e.metrics.SetRunning(false)
	e.mon.mu.Unlock()

	if prev == Running {
		e.log.Info("engine: simulation stopped")
	}
}

// Clear kills every cell at the next safe point.
func (e *Engine) Clear() error {
	return e.enqueue(func(s *simulation) { s.life.Clear() })
}

// AddStampAtPoint places the selected stamp centered on (x, y), clipped to the
// grid, then advances the selection to the next stamp in the catalogue.
func (e *Engine) AddStampAtPoint(x, y int) error {
	return e.enqueue(func(s *simulation) {
		st := s.stamps.Current()
		st.ApplyCentered(s.life, x, y)
		s.stamps.Next()
		e.stampIndex.Store(int32(s.stamps.Index()))
	})
}

// SelectStamp chooses the stamp used by the next AddStampAtPoint. The index
// wraps modulo the catalogue size.
func (e *Engine) SelectStamp(index int) error {
	return e.enqueue(func(s *simulation) {
		s.stamps.Select(index)
		e.stampIndex.Store(int32(s.stamps.Index()))
	})
}

// SetAutomatonRules parses a "survive/birth" rule string (or a preset name)
// and schedules it. A malformed rule leaves the active rules untouched and is
// reported as a *rules.ParseError.
func (e *Engine) SetAutomatonRules(rule string) error {
	rs, err := rules.Resolve(rule)
	if err != nil {
		e.metrics.RuleRejected()
		e.log.Warn("engine: rejected automaton rules", "rules", rule, "err", err)
		return err
	}
	e.mon.mu.Lock()
	defer e.mon.mu.Unlock()
	if e.mon.closed {
		return ErrClosed
	}
	e.mon.rule = rs.String()
	e.mon.enqueueLocked(func(s *simulation) { s.life.SetRules(rs) })
	e.startLocked()
	return nil
}

// OnViewResized reallocates the grid at the next safe point. The new grid is
// all dead. Sizes that fail validation leave the current buffers in place.
func (e *Engine) OnViewResized(w, h int) error {
	if err := e.cfg.checkSize(w, h); err != nil {
		e.log.Warn("engine: resize rejected", "width", w, "height", h, "err", err)
		return err
	}
	return e.enqueue(func(s *simulation) {
		if s.life.W == w && s.life.H == h {
			s.life.Clear()
			return
		}
		next := life.NewWithRules(w, h, s.life.Rules())
		next.SetSeeder(s.seeder())
		s.life = next
		e.log.Info("engine: grid resized", "width", w, "height", h)
	})
}

// SetTPS changes the tick rate cap; 0 removes it.
func (e *Engine) SetTPS(tps int) error {
	if tps < 0 {
		return fmt.Errorf("tps must be >= 0, got %d", tps)
	}
	if err := e.enqueue(func(s *simulation) { s.pacer.SetTPS(tps) }); err != nil {
		return err
	}
	e.tps.Store(int32(tps))
	return nil
}

// Sync blocks until every command issued before it has been applied by the
// simulation goroutine and the resulting frame has been offered to the frame
// buffer.
func (e *Engine) Sync(ctx context.Context) error {
	applied := make(chan struct{})
	if err := e.enqueue(func(s *simulation) { s.barriers = append(s.barriers, applied) }); err != nil {
		return err
	}
	select {
	case <-applied:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-e.done:
		return ErrClosed
	}
}

// Read hands the latest frame to fn while holding the frame-buffer lock and
// clears the pending marker. It reports whether the frame was new since the
// previous Read. fn must not retain the frame's slices or call Read again.
func (e *Engine) Read(fn func(Frame)) bool {
	return e.frames.read(fn)
}

// Width returns the width of the published frame.
func (e *Engine) Width() int { return e.frames.size().W }

// Height returns the height of the published frame.
func (e *Engine) Height() int { return e.frames.size().H }

// IsRunning reports whether the simulation is in the Running state.
func (e *Engine) IsRunning() bool {
	e.mon.mu.Lock()
	defer e.mon.mu.Unlock()
	return e.mon.state == Running
}

// Mode returns the most recently requested play mode.
func (e *Engine) Mode() Mode {
	e.mon.mu.Lock()
	defer e.mon.mu.Unlock()
	return e.mon.mode
}

// Rules returns the most recently accepted rule in canonical form.
func (e *Engine) Rules() string {
	e.mon.mu.Lock()
	defer e.mon.mu.Unlock()
	return e.mon.rule
}

// Stats summarizes simulation and frame traffic.
type Stats struct {
	Generation  uint64
	Rendered    uint64
	Dropped     uint64
	Overwritten uint64
	Presented   uint64
}

// Stats returns current counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Generation:  e.generation.Load(),
		Rendered:    e.frames.rendered.Load(),
		Dropped:     e.frames.dropped.Load(),
		Overwritten: e.frames.overwritten.Load(),
		Presented:   e.frames.presented.Load(),
	}
}

// Close stops the simulation, waits for the goroutine to exit and rejects
// further commands. The last frame stays readable. Close is idempotent.
func (e *Engine) Close() error {
	if !e.mon.close() {
		return nil
	}
	close(e.done)
	e.wg.Wait()
	e.metrics.SetRunning(false)
	e.log.Info("engine: closed", "generation", e.generation.Load())
	return nil
}

func (e *Engine) loop() {
	defer e.wg.Done()
	s := e.sim
	// dirty is set when the last tick's frame was dropped, so that a stop
	// right after it still publishes the final generation.
	dirty := false
	for {
		if !e.pace(s) {
			return
		}
		cmds, state, ok := e.mon.await(dirty)
		if !ok {
			return
		}
		for _, c := range cmds {
			c(s)
		}
		if state != Running {
			e.frames.publish(s.life.Cells(), s.life.Size(), s.generation, true)
			s.release()
			dirty = false
			continue
		}
		s.pacer.Mark(time.Now())
		s.life.Step()
		s.generation++
		e.generation.Store(s.generation)
		if e.metrics != nil {
			e.metrics.Tick(s.life.Population())
		}
		dirty = !e.frames.publish(s.life.Cells(), s.life.Size(), s.generation, false)
		s.release()
	}
}

// pace waits out the tick rate cap. It returns false when the engine closes
// during the wait.
func (e *Engine) pace(s *simulation) bool {
	d := s.pacer.Delay(time.Now())
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-e.done:
		return false
	}
}
