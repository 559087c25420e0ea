package app

import "testing"

func TestResizeTargetSkipsCurrentAndRejectedSizes(t *testing.T) {
	v := viewport{scale: 4, hudWidth: 100, gridW: 50, gridH: 30}

	if _, _, ok := v.resizeTarget(50*4+100, 30*4); ok {
		t.Fatal("unchanged window should not resize")
	}
	w, h, ok := v.resizeTarget(60*4+100, 40*4+3)
	if !ok || w != 60 || h != 40 {
		t.Fatalf("resizeTarget = %d,%d,%v want 60,40,true", w, h, ok)
	}

	v.rejected = [2]int{w, h}
	if _, _, ok := v.resizeTarget(60*4+100, 40*4); ok {
		t.Fatal("a rejected size was retried")
	}
	if _, _, ok := v.resizeTarget(61*4+100, 40*4); !ok {
		t.Fatal("a new size after a rejection should be tried")
	}
	if _, _, ok := v.resizeTarget(50, 40*4); ok {
		t.Fatal("window narrower than the HUD should not resize")
	}
}
