package quarkgl

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 0xFF} }

// Hex builds an opaque color from a 0xRRGGBB value.
func Hex(v uint32) Color {
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v))
}

// RGB565 packs the color as rrrrrggggggbbbbb. Alpha is dropped.
func (c Color) RGB565() uint16 {
	return uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
}

// ColorFromRGB565 expands a packed RGB565 pixel to 8-bit channels.
func ColorFromRGB565(p uint16) Color {
	r := (p >> 11) & 0x1F
	g := (p >> 5) & 0x3F
	b := p & 0x1F
	return RGB(uint8((r*255)/31), uint8((g*255)/63), uint8((b*255)/31))
}
