//go:build tinygo && baremetal

package hal

import (
	"lcdmenu/lcd"

	"tinygo.org/x/drivers/hd44780i2c"
)

// hd44780LCD mirrors every write into a shadow grid. The controller has no
// horizontal scroll over I2C, so ScrollLeft/ScrollRight shift the shadow and
// repaint it.
type hd44780LCD struct {
	dev    hd44780i2c.Device
	shadow *lcd.Grid
	// synced is false while the device cursor lags the shadow cursor.
	synced bool
}

func newHD44780LCD(dev hd44780i2c.Device, cols, rows int) *hd44780LCD {
	d := &hd44780LCD{dev: dev, shadow: lcd.NewGrid(cols, rows)}
	d.Clear()
	return d
}

func (d *hd44780LCD) Rows() int { return d.shadow.Rows() }
func (d *hd44780LCD) Cols() int { return d.shadow.Cols() }

func (d *hd44780LCD) Clear() {
	d.shadow.Clear()
	d.dev.ClearDisplay()
	d.synced = true
}

func (d *hd44780LCD) SetCursor(col, row int) {
	d.shadow.SetCursor(col, row)
	d.synced = d.inside(col, row)
	if d.synced {
		d.dev.SetCursor(uint8(col), uint8(row))
	}
}

func (d *hd44780LCD) Write(c byte) {
	col, row := d.shadow.Cursor()
	d.shadow.Write(c)
	if !d.inside(col, row) {
		d.synced = false
		return
	}
	if !d.synced {
		d.dev.SetCursor(uint8(col), uint8(row))
		d.synced = true
	}
	d.dev.Print([]byte{c})
}

func (d *hd44780LCD) Print(s string) {
	for i := 0; i < len(s); i++ {
		d.Write(s[i])
	}
}

func (d *hd44780LCD) Display() error { return nil }

func (d *hd44780LCD) ScrollLeft() {
	d.shadow.ScrollLeft()
	d.repaint()
}

func (d *hd44780LCD) ScrollRight() {
	d.shadow.ScrollRight()
	d.repaint()
}

func (d *hd44780LCD) repaint() {
	col, row := d.shadow.Cursor()
	for r := 0; r < d.shadow.Rows(); r++ {
		d.dev.SetCursor(0, uint8(r))
		d.dev.Print([]byte(d.shadow.Line(r)))
	}
	d.synced = d.inside(col, row)
	if d.synced {
		d.dev.SetCursor(uint8(col), uint8(row))
	}
}

func (d *hd44780LCD) inside(col, row int) bool {
	return col >= 0 && col < d.shadow.Cols() && row >= 0 && row < d.shadow.Rows()
}
