package app

// viewport tracks how the window maps onto the grid.
type viewport struct {
	scale    int
	hudWidth int
	gridW    int
	gridH    int
	// rejected is the last grid size the engine refused.
	rejected [2]int
}

// resizeTarget maps a window size onto grid dimensions and reports whether
// the engine should be asked to resize. Sizes matching the current grid or
// the last rejected size are skipped, since Layout runs every frame.
func (v *viewport) resizeTarget(outsideWidth, outsideHeight int) (int, int, bool) {
	if v.scale <= 0 {
		return 0, 0, false
	}
	w := (outsideWidth - v.hudWidth) / v.scale
	h := outsideHeight / v.scale
	if w <= 0 || h <= 0 {
		return w, h, false
	}
	if w == v.gridW && h == v.gridH {
		return w, h, false
	}
	if v.rejected == [2]int{w, h} {
		return w, h, false
	}
	return w, h, true
}
