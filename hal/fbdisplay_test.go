package hal

import (
	"image/color"
	"testing"
)

type memFramebuffer struct {
	w, h     int
	buf      []byte
	presents int
}

func newMemFramebuffer(w, h int) *memFramebuffer {
	return &memFramebuffer{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *memFramebuffer) Width() int             { return f.w }
func (f *memFramebuffer) Height() int            { return f.h }
func (f *memFramebuffer) Format() PixelFormat    { return PixelFormatRGB565 }
func (f *memFramebuffer) StrideBytes() int       { return f.w * 2 }
func (f *memFramebuffer) Buffer() []byte         { return f.buf }
func (f *memFramebuffer) ClearRGB(r, g, b uint8) {}
func (f *memFramebuffer) Present() error         { f.presents++; return nil }

func TestFramebufferDisplayFillClips(t *testing.T) {
	fb := newMemFramebuffer(4, 3)
	d := NewFramebufferDisplay(fb)
	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	if err := d.FillRectangle(2, 1, 10, 10, white); err != nil {
		t.Fatalf("FillRectangle: %v", err)
	}
	for y := int16(0); y < 3; y++ {
		for x := int16(0); x < 4; x++ {
			got := d.Pixel(x, y)
			want := x >= 2 && y >= 1
			if (got == white) != want {
				t.Fatalf("pixel %d,%d = %v", x, y, got)
			}
		}
	}
}

func TestFramebufferDisplaySetPixelAndPresent(t *testing.T) {
	fb := newMemFramebuffer(2, 2)
	d := NewFramebufferDisplay(fb)
	red := color.RGBA{R: 0xFF, A: 0xFF}

	d.SetPixel(1, 1, red)
	d.SetPixel(-1, 5, red)
	if got := d.Pixel(1, 1); got != red {
		t.Fatalf("Pixel: got %v", got)
	}
	if got := d.Pixel(0, 0); got == red {
		t.Fatal("unexpected write at 0,0")
	}
	if w, h := d.Size(); w != 2 || h != 2 {
		t.Fatalf("Size: %dx%d", w, h)
	}
	if err := d.Display(); err != nil || fb.presents != 1 {
		t.Fatalf("Display: err=%v presents=%d", err, fb.presents)
	}
}

func TestRGB565RoundTrip(t *testing.T) {
	magenta := color.RGBA{R: 0xFF, B: 0xFF, A: 0xFF}
	if got := unpackRGB565(packRGB565(magenta)); got != magenta {
		t.Fatalf("got %v", got)
	}
	buf := make([]byte, 4)
	putRGB565(buf, 2, 0xF81F)
	if buf[2] != 0x1F || buf[3] != 0xF8 || getRGB565(buf, 2) != 0xF81F {
		t.Fatalf("byte order: % x", buf)
	}
}
