//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers/hd44780i2c"
)

type tinyGoHAL struct {
	logger *uartLogger
	gpio   GPIO
	lcd    *hd44780LCD
	kbd    Keyboard
}

// New returns a Raspberry Pi Pico HAL driving an HD44780 module behind a
// PCF8574 I2C backpack.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// I2C:  I2C0 on GP4 (SDA) / GP5 (SCL), backpack at the default 0x27.
// Buttons: GP10 up, GP11 down, GP12 select, GP13 back, active low.
// Keys typed on the UART act like a keyboard (arrows, Enter, Esc, letters).
func New(cfg Config) HAL {
	cfg = cfg.withDefaults()

	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	bus := machine.I2C0
	if err := bus.Configure(machine.I2CConfig{
		SDA:       machine.GP4,
		SCL:       machine.GP5,
		Frequency: 400 * machine.KHz,
	}); err != nil {
		logger.WriteLineString("hal: i2c: " + err.Error())
	}

	dev := hd44780i2c.New(bus, 0)
	if err := dev.Configure(hd44780i2c.Config{
		Width:  uint8(cfg.Cols),
		Height: uint8(cfg.Rows),
	}); err != nil {
		logger.WriteLineString("hal: hd44780: " + err.Error())
	}

	return &tinyGoHAL{
		logger: logger,
		gpio: NewGPIO(
			&machinePin{pin: machine.GP10, name: PinButtonUp},
			&machinePin{pin: machine.GP11, name: PinButtonDown},
			&machinePin{pin: machine.GP12, name: PinButtonSelect},
			&machinePin{pin: machine.GP13, name: PinButtonBack},
		),
		lcd: newHD44780LCD(dev, cfg.Cols, cfg.Rows),
		kbd: newUARTKeyboard(uart),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) GPIO() GPIO       { return h.gpio }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{lcd: h.lcd} }
func (h *tinyGoHAL) Input() Input     { return tinyGoInput{kbd: h.kbd} }
