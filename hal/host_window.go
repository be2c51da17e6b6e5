//go:build !tinygo && cgo

package hal

import (
	"errors"
	"image"

	"lcdmenu/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window that shows the framebuffer and forwards
// keyboard input. It blocks until the window closes or a step returns
// ErrStop.
func RunWindow(cfg Config, newApp func(HAL) func() error) error {
	h := New(cfg).(*hostHAL)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle(h.cfg.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*h.cfg.Scale, h.fb.height*h.cfg.Scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	frame   uint64
	step    func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			if errors.Is(err, ErrStop) {
				return ebiten.Termination
			}
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
		g.frame = 0
	}

	frame := fb.snapshotRGB565(g.scratch, g.frame)
	if frame == g.frame {
		screen.DrawImage(g.fbImg, nil)
		return
	}
	g.frame = frame

	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		c := unpackRGB565(getRGB565(src, i))
		j := (i / 2) * 4
		dst[j+0] = c.R
		dst[j+1] = c.G
		dst[j+2] = c.B
		dst[j+3] = c.A
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
