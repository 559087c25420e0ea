// Package stamp holds reusable living patterns that can be placed on a grid.
package stamp

import (
	"errors"
	"fmt"
	"strings"

	"lifeloop/internal/core"
)

// ErrEmptyPattern reports a pattern description without any rows.
var ErrEmptyPattern = errors.New("empty stamp pattern")

// Stamp is an immutable named bit pattern.
type Stamp struct {
	name string
	w, h int
	mask []uint8
}

// New builds a stamp from a row-major 0/1 mask. The mask is copied.
func New(name string, w, h int, mask []uint8) (Stamp, error) {
	if w <= 0 || h <= 0 {
		return Stamp{}, fmt.Errorf("stamp %q: invalid size %dx%d", name, w, h)
	}
	if len(mask) != w*h {
		return Stamp{}, fmt.Errorf("stamp %q: mask has %d cells, want %d", name, len(mask), w*h)
	}
	m := make([]uint8, len(mask))
	for i, v := range mask {
		if v != 0 {
			m[i] = 1
		}
	}
	return Stamp{name: name, w: w, h: h, mask: m}, nil
}

// Parse decodes a text pattern: one row per line, '*' or 'O' for a living
// cell and '.' for a dead one. Rows shorter than the widest row are padded
// with dead cells.
func Parse(name, pattern string) (Stamp, error) {
	var rows []string
	for _, line := range strings.Split(pattern, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return Stamp{}, fmt.Errorf("stamp %q: %w", name, ErrEmptyPattern)
	}
	w := 0
	for _, r := range rows {
		w = max(w, len(r))
	}
	mask := make([]uint8, w*len(rows))
	for y, r := range rows {
		for x := 0; x < len(r); x++ {
			switch r[x] {
			case '*', 'O':
				mask[y*w+x] = 1
			case '.':
			default:
				return Stamp{}, fmt.Errorf("stamp %q: unexpected %q at row %d col %d", name, r[x], y, x)
			}
		}
	}
	return Stamp{name: name, w: w, h: len(rows), mask: mask}, nil
}

// MustParse is Parse for built-in patterns.
func MustParse(name, pattern string) Stamp {
	s, err := Parse(name, pattern)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the stamp identifier.
func (s Stamp) Name() string { return s.name }

// Size returns the pattern dimensions.
func (s Stamp) Size() core.Size { return core.Size{W: s.w, H: s.h} }

// At reports the mask value at (x, y) within the pattern.
func (s Stamp) At(x, y int) uint8 { return s.mask[y*s.w+x] }

// Grid is the destination of a stamp.
type Grid interface {
	Size() core.Size
	Cells() []uint8
}

// Apply writes the mask into g with its top-left corner at (ox, oy). Cells
// falling outside the grid are dropped. It returns the number of cells written.
func (s Stamp) Apply(g Grid, ox, oy int) int {
	size := g.Size()
	cells := g.Cells()
	written := 0
	for y := 0; y < s.h; y++ {
		gy := oy + y
		if gy < 0 || gy >= size.H {
			continue
		}
		for x := 0; x < s.w; x++ {
			gx := ox + x
			if gx < 0 || gx >= size.W {
				continue
			}
			cells[gy*size.W+gx] = s.At(x, y)
			written++
		}
	}
	return written
}

// ApplyCentered places the stamp so that its center lands on (cx, cy).
func (s Stamp) ApplyCentered(g Grid, cx, cy int) int {
	return s.Apply(g, cx-s.w/2, cy-s.h/2)
}
