package core

import (
	"testing"
	"time"
)

func TestPacerDelay(t *testing.T) {
	p := NewPacer(10)
	now := time.Unix(100, 0)
	if d := p.Delay(now); d != 0 {
		t.Fatalf("first tick should not wait, got %v", d)
	}
	p.Mark(now)
	if d := p.Delay(now.Add(30 * time.Millisecond)); d != 70*time.Millisecond {
		t.Fatalf("expected 70ms, got %v", d)
	}
	if d := p.Delay(now.Add(time.Second)); d != 0 {
		t.Fatalf("idle time should satisfy the step, got %v", d)
	}
}

func TestPacerUnthrottled(t *testing.T) {
	p := NewPacer(0)
	p.Mark(time.Unix(1, 0))
	if d := p.Delay(time.Unix(1, 0)); d != 0 {
		t.Fatalf("unthrottled pacer waited %v", d)
	}
	if p.TPS() != 0 {
		t.Fatalf("TPS = %d", p.TPS())
	}
	p.SetTPS(60)
	if p.TPS() != 60 {
		t.Fatalf("TPS = %d, want 60", p.TPS())
	}
}
