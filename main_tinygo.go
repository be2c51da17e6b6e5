//go:build tinygo

package main

import (
	"time"

	"lcdmenu/app"
	"lcdmenu/hal"
)

func main() {
	h := hal.New(hal.Config{})
	if err := app.Run(h, app.DefaultOptions(), 10*time.Millisecond); err != nil {
		h.Logger().WriteLineString(err.Error())
	}
	select {}
}
