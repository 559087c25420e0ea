package core

import "testing"

func TestBitGeneratorReproducible(t *testing.T) {
	a := NewBitGenerator(2011)
	b := NewBitGenerator(2011)
	for i := 0; i < 1000; i++ {
		va, vb := a.Value(), b.Value()
		if va != vb {
			t.Fatalf("bit %d differs: %d vs %d", i, va, vb)
		}
		if va > 1 {
			t.Fatalf("bit %d out of range: %d", i, va)
		}
	}
}

func TestBitGeneratorRoughlyUniform(t *testing.T) {
	g := NewBitGenerator(7)
	const n = 10000
	ones := 0
	for i := 0; i < n; i++ {
		ones += int(g.Value())
	}
	if ones < n*4/10 || ones > n*6/10 {
		t.Fatalf("expected roughly half ones, got %d of %d", ones, n)
	}
}

func TestFillBinary(t *testing.T) {
	buf := make([]uint8, 256)
	FillBinary(NewRNG(1).Source(), buf)
	alive := 0
	for i, v := range buf {
		if v > 1 {
			t.Fatalf("cell %d = %d, want 0 or 1", i, v)
		}
		alive += int(v)
	}
	if alive == 0 || alive == len(buf) {
		t.Fatalf("soup is degenerate: %d alive", alive)
	}
}
