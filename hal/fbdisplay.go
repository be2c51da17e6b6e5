package hal

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// FramebufferDisplay adapts a Framebuffer to drivers.Displayer so tinyfont
// and tinyterm can draw on it.
type FramebufferDisplay struct {
	fb Framebuffer
}

func NewFramebufferDisplay(fb Framebuffer) *FramebufferDisplay {
	return &FramebufferDisplay{fb: fb}
}

var _ drivers.Displayer = (*FramebufferDisplay)(nil)

func (d *FramebufferDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *FramebufferDisplay) SetPixel(x, y int16, c color.RGBA) {
	buf := d.buffer()
	if buf == nil {
		return
	}
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	off := iy*d.fb.StrideBytes() + ix*2
	if off+1 >= len(buf) {
		return
	}
	putRGB565(buf, off, packRGB565(c))
}

// Pixel reads back the colour at x, y at RGB565 precision.
func (d *FramebufferDisplay) Pixel(x, y int16) color.RGBA {
	buf := d.buffer()
	if buf == nil {
		return color.RGBA{}
	}
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return color.RGBA{}
	}
	off := iy*d.fb.StrideBytes() + ix*2
	if off+1 >= len(buf) {
		return color.RGBA{}
	}
	return unpackRGB565(getRGB565(buf, off))
}

func (d *FramebufferDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *FramebufferDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	buf := d.buffer()
	if buf == nil {
		return nil
	}
	w, h := d.fb.Width(), d.fb.Height()
	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := packRGB565(c)
	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off+1 >= len(buf) {
				break
			}
			putRGB565(buf, off, pixel)
		}
	}
	return nil
}

// SetScroll and SetRotation satisfy tinyterm; the framebuffer is fixed.
func (d *FramebufferDisplay) SetScroll(line int16) {}

func (d *FramebufferDisplay) SetRotation(rotation drivers.Rotation) error { return nil }

func (d *FramebufferDisplay) buffer() []byte {
	if d.fb == nil || d.fb.Format() != PixelFormatRGB565 {
		return nil
	}
	return d.fb.Buffer()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
