//go:build !tinygo

package hal

import (
	"image/color"
	"sync"
)

// hostFramebuffer is double buffered: renderers draw into buf and Present
// copies it to the front buffer the window reads, so the window never shows
// a half-painted menu.
type hostFramebuffer struct {
	width  int
	height int
	stride int
	buf    []byte

	mu     sync.Mutex
	front  []byte
	frames uint64
}

// newHostFramebuffer sizes the panel from cfg, which must already carry
// defaults.
func newHostFramebuffer(cfg Config) *hostFramebuffer {
	stride := cfg.Width * 2
	return &hostFramebuffer{
		width:  cfg.Width,
		height: cfg.Height,
		stride: stride,
		buf:    make([]byte, stride*cfg.Height),
		front:  make([]byte, stride*cfg.Height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front, f.buf)
	f.frames++
	return nil
}

// ClearRGB fills the back buffer; the window sees it after Present.
func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := packRGB565(color.RGBA{R: r, G: g, B: b, A: 0xFF})
	for i := 0; i+1 < len(f.buf); i += 2 {
		putRGB565(f.buf, i, pixel)
	}
}

// snapshotRGB565 copies the last presented frame into dst when it is newer
// than seen and returns its number.
func (f *hostFramebuffer) snapshotRGB565(dst []byte, seen uint64) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.frames != seen {
		copy(dst, f.front)
	}
	return f.frames
}
