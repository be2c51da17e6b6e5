package hal

// serialDecoder turns bytes from a serial terminal into key presses.
// Arrow keys arrive as ESC [ A..D; a lone ESC is reported when the next
// byte is not '['.
type serialDecoder struct {
	state uint8
}

const (
	serialText uint8 = iota
	serialEsc
	serialCSI
)

func (d *serialDecoder) feed(b byte, emit func(KeyEvent)) {
	switch d.state {
	case serialEsc:
		if b == '[' {
			d.state = serialCSI
			return
		}
		d.state = serialText
		emit(KeyEvent{Code: KeyEscape, Press: true})
	case serialCSI:
		d.state = serialText
		switch b {
		case 'A':
			emit(KeyEvent{Code: KeyUp, Press: true})
		case 'B':
			emit(KeyEvent{Code: KeyDown, Press: true})
		case 'C':
			emit(KeyEvent{Code: KeyRight, Press: true})
		case 'D':
			emit(KeyEvent{Code: KeyLeft, Press: true})
		}
		return
	}

	switch {
	case b == 0x1b:
		d.state = serialEsc
	case b == '\r' || b == '\n':
		emit(KeyEvent{Code: KeyEnter, Press: true})
	case b == 0x7f || b == 0x08:
		emit(KeyEvent{Code: KeyBackspace, Press: true})
	case b >= 0x20 && b < 0x7f:
		emit(KeyEvent{Press: true, Rune: rune(b)})
	}
}
