package render

import "image/color"

// Palette holds the RGBA bytes used for living and dead cells.
type Palette struct {
	on, off [4]byte
}

// NewPalette converts the provided colors into premultiplied RGBA bytes.
func NewPalette(on, off color.Color) Palette {
	return Palette{on: rgba(on), off: rgba(off)}
}

// DefaultPalette draws living cells white on black.
func DefaultPalette() Palette {
	return NewPalette(color.White, color.Black)
}

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// FillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf. buf
// must hold at least 4*len(cells) bytes.
func (p Palette) FillBinaryRGBA(buf []byte, cells []uint8) {
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			copy(buf[base:base+4], p.on[:])
			continue
		}
		copy(buf[base:base+4], p.off[:])
	}
}

// Clear paints every pixel in buf with the dead-cell color.
func (p Palette) Clear(buf []byte) {
	for base := 0; base+4 <= len(buf); base += 4 {
		copy(buf[base:base+4], p.off[:])
	}
}

// Alive reports whether the pixel at index i uses the living-cell color.
func (p Palette) Alive(buf []byte, i int) bool {
	base := i * 4
	return [4]byte(buf[base:base+4]) == p.on
}
