package engine

import "lifeloop/internal/core"

// Name identifies the simulation for window titles and HUD headers.
func (e *Engine) Name() string { return "life" }

// Parameters snapshots the caller-visible engine settings.
func (e *Engine) Parameters() core.ParameterSnapshot {
	e.mon.mu.Lock()
	state, mode, rule := e.mon.state, e.mon.mode, e.mon.rule
	e.mon.mu.Unlock()

	stats := e.Stats()
	size := e.frames.size()
	idx := int(e.stampIndex.Load())
	name := ""
	if idx >= 0 && idx < len(e.stampNames) {
		name = e.stampNames[idx]
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				core.BoolParam("running", "Running", state == Running),
				core.StringParam("mode", "Mode", mode.String()),
				core.StringParam("rules", "Rules", rule),
				core.IntParam("generation", "Generation", int(stats.Generation)),
				core.IntParam("tps", "Ticks/s", int(e.tps.Load())),
			},
		},
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Width", size.W),
				core.IntParam("h", "Height", size.H),
			},
		},
		{
			Name: "Stamps",
			Params: []core.Parameter{
				core.IntParam("stamp", "Stamp", idx),
				core.StringParam("stamp_name", "Stamp name", name),
			},
		},
		{
			Name: "Frames",
			Params: []core.Parameter{
				core.IntParam("frames_dropped", "Dropped", int(stats.Dropped)),
				core.IntParam("frames_overwritten", "Overwritten", int(stats.Overwritten)),
			},
		},
	}}
}

// ParameterControls lists the settings the HUD may adjust.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "tps", Label: "Ticks/s", Step: 5, Min: 0, Max: 240, HasMin: true, HasMax: true},
		{Key: "stamp", Label: "Stamp", Step: 1, Min: 0, Max: len(e.stampNames) - 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies a HUD adjustment. It reports whether key was
// recognized and the command accepted.
func (e *Engine) SetIntParameter(key string, value int) bool {
	switch key {
	case "tps":
		return e.SetTPS(value) == nil
	case "stamp":
		return e.SelectStamp(value) == nil
	}
	return false
}
