//go:build !tinygo

package app

import (
	"testing"

	"lcdmenu/config"
	"lcdmenu/lcd"
)

func TestFromConfig(t *testing.T) {
	v := config.New()
	v.Set("headless.script", "down*2,select")
	v.Set("display.marker", "arrow")
	c, err := config.Load(v)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	o, err := FromConfig(c)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	if len(o.Script) != 3 || !o.StopWhenDone {
		t.Fatalf("script %v stop %v", o.Script, o.StopWhenDone)
	}
	if o.Rows != 2 || o.Cols != 16 || o.Face.Name != "lcd" || o.Renderer != RendererGrid {
		t.Fatalf("defaults not carried: %+v", o)
	}
	if o.Marker != 0x7E {
		t.Fatalf("marker %#x", o.Marker)
	}

	hc := HALConfig(o, 2, nil)
	w, h := lcd.PanelSize(o.Face, 16, 2)
	if hc.Width != w || hc.Height != h || hc.Scale != 2 {
		t.Fatalf("hal config %+v", hc)
	}
	o.Renderer = RendererTinyterm
	hc = HALConfig(o, 2, nil)
	if w, h := lcd.TermSize(o.Face, 16, 2); hc.Width != w || hc.Height != h {
		t.Fatalf("tinyterm hal config %+v", hc)
	}
}
