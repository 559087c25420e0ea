package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	p := NewPalette(color.RGBA{R: 10, G: 20, B: 30, A: 255}, color.Black)
	cells := []uint8{1, 0, 1}
	buf := make([]byte, 4*len(cells))
	p.FillBinaryRGBA(buf, cells)

	want := []byte{10, 20, 30, 255, 0, 0, 0, 255, 10, 20, 30, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels = %v, want %v", buf, want)
	}
	if !p.Alive(buf, 0) || p.Alive(buf, 1) || !p.Alive(buf, 2) {
		t.Fatal("Alive disagrees with rasterized cells")
	}
}

func TestClear(t *testing.T) {
	p := DefaultPalette()
	buf := make([]byte, 8)
	p.FillBinaryRGBA(buf, []uint8{1, 1})
	p.Clear(buf)
	if p.Alive(buf, 0) || p.Alive(buf, 1) {
		t.Fatal("Clear left living pixels")
	}
	if buf[3] != 255 {
		t.Fatalf("dead pixels should be opaque black, alpha = %d", buf[3])
	}
}
