package lcd

import (
	"fmt"
	"image/color"
	"strings"

	"lcdmenu/fonts/lcdcell"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Displayer is a pixel target the panel paints on.
type Displayer interface {
	drivers.Displayer
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// Palette colours a simulated character LCD.
type Palette struct {
	Bezel color.RGBA
	Off   color.RGBA
	On    color.RGBA
}

var (
	PaletteGreen = Palette{
		Bezel: color.RGBA{R: 0x5a, G: 0x7a, B: 0x1c, A: 0xFF},
		Off:   color.RGBA{R: 0x7c, G: 0xa3, B: 0x2b, A: 0xFF},
		On:    color.RGBA{R: 0x1e, G: 0x2b, B: 0x0f, A: 0xFF},
	}
	PaletteBlue = Palette{
		Bezel: color.RGBA{R: 0x10, G: 0x28, B: 0x90, A: 0xFF},
		Off:   color.RGBA{R: 0x20, G: 0x48, B: 0xd0, A: 0xFF},
		On:    color.RGBA{R: 0xe8, G: 0xf0, B: 0xff, A: 0xFF},
	}
)

// PaletteByName returns "green" or "blue".
func PaletteByName(name string) (Palette, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "green":
		return PaletteGreen, nil
	case "blue":
		return PaletteBlue, nil
	default:
		return Palette{}, fmt.Errorf("lcd: unknown palette %q", name)
	}
}

const (
	panelMargin = 3
	rowGap      = 1
)

// PanelSize returns the pixel size a cols x rows panel needs with face.
func PanelSize(face lcdcell.Face, cols, rows int) (w, h int) {
	w = 2*panelMargin + cols*int(face.Width)
	h = 2*panelMargin + rows*(int(face.Height)+rowGap) - rowGap
	return w, h
}

// Panel renders a Grid as a dot-matrix module: a bezel, one unlit block
// per cell and lit glyphs on top. It repaints only when the grid changed
// since the last Display.
type Panel struct {
	*Grid
	d       Displayer
	face    lcdcell.Face
	pal     Palette
	painted uint64
	fresh   bool
}

func NewPanel(d Displayer, face lcdcell.Face, pal Palette, cols, rows int) *Panel {
	return &Panel{
		Grid: NewGrid(cols, rows),
		d:    d,
		face: face,
		pal:  pal,
	}
}

// CellOrigin returns the top-left pixel of a cell.
func (p *Panel) CellOrigin(col, row int) (x, y int16) {
	x = int16(panelMargin + col*int(p.face.Width))
	y = int16(panelMargin + row*(int(p.face.Height)+rowGap))
	return x, y
}

func (p *Panel) Display() error {
	if p.fresh && p.painted == p.Revision() {
		return nil
	}
	if err := p.paint(); err != nil {
		return err
	}
	p.painted = p.Revision()
	p.fresh = true
	return p.d.Display()
}

func (p *Panel) paint() error {
	w, h := p.d.Size()
	if err := p.d.FillRectangle(0, 0, w, h, p.pal.Bezel); err != nil {
		return err
	}
	for row := 0; row < p.Rows(); row++ {
		for col := 0; col < p.Cols(); col++ {
			x, y := p.CellOrigin(col, row)
			if err := p.d.FillRectangle(x, y, p.face.Width-1, p.face.Height, p.pal.Off); err != nil {
				return err
			}
			if ch := p.At(col, row); ch != ' ' {
				tinyfont.DrawChar(p.d, p.face.Font, x, y+p.face.Offset, rune(ch), p.pal.On)
			}
		}
	}
	return nil
}
