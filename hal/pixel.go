package hal

import "image/color"

// Pixels are stored little-endian, two bytes each.

func packRGB565(c color.RGBA) uint16 {
	return uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
}

// unpackRGB565 widens each channel back to 8 bits; full scale stays full
// scale.
func unpackRGB565(p uint16) color.RGBA {
	return color.RGBA{
		R: uint8(((p >> 11) & 0x1F) * 255 / 31),
		G: uint8(((p >> 5) & 0x3F) * 255 / 63),
		B: uint8((p & 0x1F) * 255 / 31),
		A: 0xFF,
	}
}

func putRGB565(buf []byte, off int, p uint16) {
	buf[off] = byte(p)
	buf[off+1] = byte(p >> 8)
}

func getRGB565(buf []byte, off int) uint16 {
	return uint16(buf[off]) | uint16(buf[off+1])<<8
}
