package ui

import (
	"testing"

	"lifeloop/internal/core"
)

func testStates() []controlState {
	states := newControlStates([]core.ParameterControl{
		{Key: "tps", Label: "Ticks/s", Step: 5, Min: 0, Max: 20, HasMin: true, HasMax: true},
		{Key: "stamp", Label: "Stamp", Step: 1, Min: 0, Max: 3, HasMin: true, HasMax: true},
	})
	refresh(states, core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "x",
		Params: []core.Parameter{
			core.IntParam("tps", "Ticks/s", 18),
			core.StringParam("stamp", "Stamp", "glider"),
		},
	}}})
	return states
}

func TestRefreshReadsIntParameters(t *testing.T) {
	states := testStates()
	if !states[0].hasValue || states[0].intValue != 18 || states[0].value != "18" {
		t.Fatalf("tps state = %+v", states[0])
	}
	if states[1].hasValue || states[1].value != "--" {
		t.Fatalf("non-int parameter should not be adjustable: %+v", states[1])
	}
}

func TestTargetClampsToLimits(t *testing.T) {
	states := testStates()
	if v, ok := states[0].target(1); !ok || v != 20 {
		t.Fatalf("target(+1) = %d,%v want 20,true", v, ok)
	}
	states[0].intValue = 20
	if _, ok := states[0].target(1); ok {
		t.Fatal("adjustment past max should be refused")
	}
	if v, ok := states[0].target(-1); !ok || v != 15 {
		t.Fatalf("target(-1) = %d,%v want 15,true", v, ok)
	}
	if _, ok := states[1].target(1); ok {
		t.Fatal("control without a value should not adjust")
	}
}

func TestLayoutAndHit(t *testing.T) {
	states := testStates()
	layout(states, 200, 40)
	r := states[0].plusRect
	if r.Max.X != 200-panelPadding || r.Dx() != buttonSize {
		t.Fatalf("plus rect = %v", r)
	}
	if states[0].minusRect.Max.X+buttonGap != r.Min.X {
		t.Fatalf("minus rect = %v", states[0].minusRect)
	}
	i, dir, ok := hit(states, r.Min.X+1, r.Min.Y+1)
	if !ok || i != 0 || dir != 1 {
		t.Fatalf("hit plus = %d,%d,%v", i, dir, ok)
	}
	m := states[0].minusRect
	if i, dir, ok = hit(states, m.Min.X, m.Min.Y); !ok || i != 0 || dir != -1 {
		t.Fatalf("hit minus = %d,%d,%v", i, dir, ok)
	}
	s := states[1].plusRect
	if _, _, ok = hit(states, s.Min.X+1, s.Min.Y+1); ok {
		t.Fatal("disabled control should not receive clicks")
	}
	if _, _, ok = hit(states, 0, 0); ok {
		t.Fatal("empty space reported as a hit")
	}
}
