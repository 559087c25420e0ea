package ui

import (
	"image"
	"strconv"

	"lifeloop/internal/core"
)

// controlState tracks the on-screen state of one adjustable parameter.
type controlState struct {
	control core.ParameterControl
	value   string

	intValue int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func newControlStates(controls []core.ParameterControl) []controlState {
	states := make([]controlState, len(controls))
	for i, ctrl := range controls {
		states[i] = controlState{control: ctrl, value: "--"}
	}
	return states
}

// refresh copies values for each control out of the snapshot.
func refresh(states []controlState, snap core.ParameterSnapshot) {
	for i := range states {
		state := &states[i]
		state.hasValue = false
		state.value = "--"
		param, ok := snap.Lookup(state.control.Key)
		if !ok || param.Type != core.ParamTypeInt {
			continue
		}
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			continue
		}
		state.intValue = parsed
		state.value = param.Value
		state.hasValue = true
	}
}

// target returns the value one step in direction, and whether it differs
// from the current one once clamped.
func (s *controlState) target(direction int) (int, bool) {
	if !s.hasValue || direction == 0 {
		return s.intValue, false
	}
	step := s.control.Step
	if step <= 0 {
		step = 1
	}
	next := s.control.Clamp(s.intValue + direction*step)
	return next, next != s.intValue
}

// layout positions the +/- buttons of each control inside a panel of the
// given width, starting at top.
func layout(states []controlState, width, top int) {
	for i := range states {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		states[i].top = rowTop
		states[i].minusRect = minus
		states[i].plusRect = plus
	}
}

// hit finds the control and direction under the panel-relative point.
func hit(states []controlState, x, y int) (int, int, bool) {
	pt := image.Pt(x, y)
	for i := range states {
		if !states[i].hasValue {
			continue
		}
		if pt.In(states[i].minusRect) {
			return i, -1, true
		}
		if pt.In(states[i].plusRect) {
			return i, 1, true
		}
	}
	return 0, 0, false
}

const (
	panelPadding   = 12
	lineHeight     = 30
	textLine       = 16
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 20
)
