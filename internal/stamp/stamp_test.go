package stamp

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"lifeloop/internal/core"
)

func alive(cells []uint8) int {
	n := 0
	for _, c := range cells {
		n += int(c)
	}
	return n
}

func TestParsePattern(t *testing.T) {
	s, err := Parse("glider", ".*.\n..*\n***\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if s.Size() != (core.Size{W: 3, H: 3}) {
		t.Fatalf("size = %+v", s.Size())
	}
	want := []uint8{0, 1, 0, 0, 0, 1, 1, 1, 1}
	if !slices.Equal(s.mask, want) {
		t.Fatalf("mask = %v, want %v", s.mask, want)
	}

	ragged, err := Parse("ragged", "*\n***")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if ragged.Size().W != 3 || ragged.At(1, 0) != 0 || ragged.At(2, 1) != 1 {
		t.Fatal("short rows should pad with dead cells")
	}

	if _, err := Parse("blank", "\n  \n"); !errors.Is(err, ErrEmptyPattern) {
		t.Fatalf("blank pattern error = %v", err)
	}
	if _, err := Parse("bad", "*x*"); err == nil {
		t.Fatal("unexpected characters should be rejected")
	}
}

func TestNewCopiesMask(t *testing.T) {
	mask := []uint8{1, 0, 2, 1}
	s, err := New("square", 2, 2, mask)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	mask[0] = 0
	if s.At(0, 0) != 1 || s.At(0, 1) != 1 {
		t.Fatal("stamp must not alias or keep non-binary values")
	}
	if _, err := New("short", 2, 2, []uint8{1}); err == nil {
		t.Fatal("mask length mismatch should fail")
	}
}

func TestApplyFullyOutsideLeavesGridUnchanged(t *testing.T) {
	g := core.NewDoubleBuffer(8, 8)
	g.Cells()[9] = 1
	before := slices.Clone(g.Cells())
	s := MustParse("block", "**\n**")

	for _, origin := range [][2]int{{-5, 0}, {8, 3}, {2, -2}, {0, 8}, {-10, -10}} {
		if n := s.Apply(g, origin[0], origin[1]); n != 0 {
			t.Fatalf("origin %v wrote %d cells", origin, n)
		}
	}
	if !slices.Equal(before, g.Cells()) {
		t.Fatal("grid changed after out-of-bounds placement")
	}
}

func TestApplyClipsPartialPlacement(t *testing.T) {
	g := core.NewDoubleBuffer(6, 6)
	s := MustParse("solid", "****\n****")

	// Centered on the left edge: two of four columns land inside.
	n := s.ApplyCentered(g, 0, 2)
	if n != 4 {
		t.Fatalf("wrote %d cells, want 4", n)
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			want := uint8(0)
			if x < 2 && (y == 1 || y == 2) {
				want = 1
			}
			if got := g.Cells()[g.Index(x, y)]; got != want {
				t.Fatalf("cell (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
	if alive(g.Next()) != 0 {
		t.Fatal("stamp must only touch the current buffer")
	}
}

func TestCatalogueRotation(t *testing.T) {
	c := Default()
	if c.Len() < 2 {
		t.Fatalf("default catalogue has %d stamps", c.Len())
	}
	first := c.Current().Name()
	for i := 0; i < c.Len(); i++ {
		c.Next()
	}
	if c.Current().Name() != first {
		t.Fatal("rotating through the whole catalogue should wrap to the start")
	}
	if got := c.Select(-1); got.Name() != c.Names()[c.Len()-1] {
		t.Fatalf("Select(-1) = %q", got.Name())
	}
	if _, err := NewCatalogue(); !errors.Is(err, ErrEmptyCatalogue) {
		t.Fatalf("empty catalogue error = %v", err)
	}
}

func TestLoadCatalogue(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stamps.yaml")
	doc := `stamps:
  - name: glider
    pattern: |
      .*.
      ..*
      ***
  - pattern: "**"
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadCatalogue(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !slices.Equal(c.Names(), []string{"glider", "stamp-1"}) {
		t.Fatalf("names = %v", c.Names())
	}

	if _, err := ParseCatalogue([]byte("stamps: []\n")); !errors.Is(err, ErrEmptyCatalogue) {
		t.Fatalf("empty document error = %v", err)
	}
	if _, err := LoadCatalogue(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file error = %v", err)
	}
}
