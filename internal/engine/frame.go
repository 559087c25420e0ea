package engine

import (
	"sync"
	"sync/atomic"

	"lifeloop/internal/core"
	"lifeloop/internal/metrics"
	"lifeloop/internal/render"
)

// Frame is a rendered generation. Its slices are only valid inside the
// callback passed to Engine.Read; copy them to keep them.
type Frame struct {
	Width      int
	Height     int
	Generation uint64
	// Cells holds one 0/1 byte per cell in row-major order.
	Cells []uint8
	// Pix holds 4*Width*Height RGBA bytes.
	Pix []byte
}

// frameBuffer is the mutex-protected buffer shared by the simulation
// goroutine (producer) and the presenter (consumer).
//
// Lock discipline: after a tick the producer only TryLocks. If the consumer
// holds the lock the frame is dropped and the next tick renders a fresh one.
// At safe points outside ticks (commands applied while stopped, resizes) the
// producer takes the lock normally; the consumer holds it only for the copy.
type frameBuffer struct {
	mu      sync.Mutex
	frame   Frame
	pending bool
	palette render.Palette
	metrics *metrics.Metrics

	// dims mirrors frame.Width/Height so size queries never contend with a
	// reader holding mu.
	dims atomic.Uint64

	rendered    atomic.Uint64
	dropped     atomic.Uint64
	overwritten atomic.Uint64
	presented   atomic.Uint64
}

func newFrameBuffer(w, h int, p render.Palette, m *metrics.Metrics) *frameBuffer {
	f := &frameBuffer{palette: p, metrics: m}
	f.allocLocked(w, h)
	return f
}

func (f *frameBuffer) allocLocked(w, h int) {
	f.frame = Frame{
		Width:  w,
		Height: h,
		Cells:  make([]uint8, w*h),
		Pix:    make([]byte, 4*w*h),
	}
	f.palette.Clear(f.frame.Pix)
	f.dims.Store(uint64(uint32(w))<<32 | uint64(uint32(h)))
}

// publish rasterizes cells into the buffer. With wait false it gives up
// immediately when the consumer holds the lock and reports false.
func (f *frameBuffer) publish(cells []uint8, size core.Size, gen uint64, wait bool) bool {
	if wait {
		f.mu.Lock()
	} else if !f.mu.TryLock() {
		f.dropped.Add(1)
		f.metrics.Dropped()
		return false
	}
	defer f.mu.Unlock()

	if f.frame.Width != size.W || f.frame.Height != size.H {
		f.allocLocked(size.W, size.H)
	}
	copy(f.frame.Cells, cells)
	f.palette.FillBinaryRGBA(f.frame.Pix, cells)
	f.frame.Generation = gen
	if f.pending {
		f.overwritten.Add(1)
		f.metrics.Overwritten()
	}
	f.pending = true
	f.rendered.Add(1)
	f.metrics.Rendered()
	return true
}

// read hands the frame to fn under the lock and clears the pending marker.
// It reports whether a frame was pending.
func (f *frameBuffer) read(fn func(Frame)) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	fresh := f.pending
	fn(f.frame)
	if fresh {
		f.pending = false
		f.presented.Add(1)
		f.metrics.Presented()
	}
	return fresh
}

func (f *frameBuffer) size() core.Size {
	d := f.dims.Load()
	return core.Size{W: int(d >> 32), H: int(uint32(d))}
}
