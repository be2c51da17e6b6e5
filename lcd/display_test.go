package lcd

import (
	"image/color"
	"testing"

	"lcdmenu/fonts/lcdcell"

	"tinygo.org/x/drivers"
)

type memDisplay struct {
	w, h     int16
	pix      []color.RGBA
	displays int
}

func newMemDisplay(w, h int) *memDisplay {
	return &memDisplay{w: int16(w), h: int16(h), pix: make([]color.RGBA, w*h)}
}

func (m *memDisplay) Size() (int16, int16) { return m.w, m.h }

func (m *memDisplay) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	m.pix[int(y)*int(m.w)+int(x)] = c
}

func (m *memDisplay) at(x, y int16) color.RGBA { return m.pix[int(y)*int(m.w)+int(x)] }

func (m *memDisplay) Display() error { m.displays++; return nil }

func (m *memDisplay) FillRectangle(x, y, w, h int16, c color.RGBA) error {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			m.SetPixel(px, py, c)
		}
	}
	return nil
}

func (m *memDisplay) SetScroll(line int16)                        {}
func (m *memDisplay) SetRotation(rotation drivers.Rotation) error { return nil }

func (m *memDisplay) count(c color.RGBA, x0, y0, x1, y1 int16) int {
	n := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.at(x, y) == c {
				n++
			}
		}
	}
	return n
}

func lcdFace(t *testing.T) lcdcell.Face {
	t.Helper()
	f, err := lcdcell.Lookup("lcd")
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestPanelSize(t *testing.T) {
	w, h := PanelSize(lcdFace(t), 16, 2)
	if w != 3+16*6+3 || h != 3+8+1+8+3 {
		t.Fatalf("PanelSize: %dx%d", w, h)
	}
}

func TestPanelPaintsGlyphsAndSkipsUnchangedFrames(t *testing.T) {
	face := lcdFace(t)
	w, h := PanelSize(face, 2, 1)
	d := newMemDisplay(w, h)
	p := NewPanel(d, face, PaletteGreen, 2, 1)

	p.Print("A ")
	if err := p.Display(); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if d.displays != 1 {
		t.Fatalf("displays: %d", d.displays)
	}
	if got := d.at(0, 0); got != PaletteGreen.Bezel {
		t.Fatalf("bezel pixel: %v", got)
	}

	x0, y0 := p.CellOrigin(0, 0)
	lit := d.count(PaletteGreen.On, x0, y0, x0+5, y0+8)
	if lit == 0 {
		t.Fatal("expected lit pixels in cell 0")
	}
	x1, y1 := p.CellOrigin(1, 0)
	if n := d.count(PaletteGreen.On, x1, y1, x1+5, y1+8); n != 0 {
		t.Fatalf("blank cell has %d lit pixels", n)
	}
	if n := d.count(PaletteGreen.Off, x1, y1, x1+5, y1+8); n != 40 {
		t.Fatalf("blank cell off pixels: %d", n)
	}

	if err := p.Display(); err != nil {
		t.Fatal(err)
	}
	if d.displays != 1 {
		t.Fatal("unchanged grid repainted")
	}
	p.Clear()
	if err := p.Display(); err != nil {
		t.Fatal(err)
	}
	if d.displays != 2 {
		t.Fatal("changed grid not repainted")
	}
	if n := d.count(PaletteGreen.On, x0, y0, x0+5, y0+8); n != 0 {
		t.Fatalf("cleared cell still lit: %d", n)
	}
}

func TestPaletteByName(t *testing.T) {
	if p, err := PaletteByName("Blue"); err != nil || p != PaletteBlue {
		t.Fatalf("blue: %v %v", p, err)
	}
	if p, err := PaletteByName(""); err != nil || p != PaletteGreen {
		t.Fatalf("default: %v %v", p, err)
	}
	if _, err := PaletteByName("amber"); err == nil {
		t.Fatal("expected error")
	}
}

func TestTermNeedsGlyphFont(t *testing.T) {
	face := lcdFace(t)
	w, h := TermSize(face, 4, 2)
	if _, err := NewTerm(newMemDisplay(w, h), face, 4, 2); err == nil {
		t.Fatal("expected error for the lcd cell face")
	}
}

func TestTermWritesOnlyChangedFrames(t *testing.T) {
	face, err := lcdcell.Lookup("proggy")
	if err != nil {
		t.Fatal(err)
	}
	w, h := TermSize(face, 4, 2)
	if w != 4*int(face.Width) || h != 20 {
		t.Fatalf("TermSize: %dx%d", w, h)
	}
	d := newMemDisplay(w, h)
	tm, err := NewTerm(d, face, 4, 2)
	if err != nil {
		t.Fatalf("NewTerm: %v", err)
	}

	tm.Print(">ab")
	if err := tm.Display(); err != nil {
		t.Fatal(err)
	}
	if d.displays != 1 {
		t.Fatalf("displays: %d", d.displays)
	}
	if err := tm.Display(); err != nil {
		t.Fatal(err)
	}
	if d.displays != 1 {
		t.Fatal("unchanged grid rewritten")
	}
	tm.SetCursor(0, 1)
	tm.Write(0x1b)
	if err := tm.Display(); err != nil {
		t.Fatal(err)
	}
	if d.displays != 2 {
		t.Fatal("changed grid not written")
	}
	if got := tm.Line(1); got[0] != 0x1b {
		t.Fatal("grid content altered by rendering")
	}
}

func TestPrintable(t *testing.T) {
	if got := printable("ok"); got != "ok" {
		t.Fatalf("got %q", got)
	}
	if got := printable("a\x1b[2Jb"); got != "a?[2Jb" {
		t.Fatalf("got %q", got)
	}
}
