package render

import (
	"fmt"
	"image/color"
	"math"

	"pdlattice/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const helpLine = "drag/arrows orbit  wheel/+- zoom  r reset  a axes  h hud"

var (
	hudText = color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF}
	hudDim  = color.RGBA{R: 0x90, G: 0xA0, B: 0xB8, A: 0xFF}
)

type hud struct {
	d          *fbDisplayer
	font       tinyfont.Fonter
	lineHeight int16
}

func newHUD(fb hal.Framebuffer) *hud {
	font := &proggy.TinySZ8pt7b
	return &hud{
		d:          &fbDisplayer{fb: fb},
		font:       font,
		lineHeight: int16(font.YAdvance),
	}
}

// line draws s with its baseline on text row n (0 = top, negative = from bottom).
func (h *hud) line(n int, s string, c color.RGBA) {
	_, hh := h.d.Size()
	y := int16(n+1) * h.lineHeight
	if n < 0 {
		y = hh + int16(n+1)*h.lineHeight - 3
	}
	tinyfont.WriteLine(h.d, h.font, 4, y, s, c)
}

func (r *Renderer) drawHUD() {
	if r.opts.Caption != "" {
		r.hud.line(0, r.opts.Caption, hudText)
	}
	r.hud.line(1, helpLine, hudDim)

	c := r.controls
	st := r.gl.Stats()
	r.hud.line(-1, fmt.Sprintf("yaw %6.1f  pitch %6.1f  r %6.1f  pts %d/%d  frame %d",
		rad2deg(c.Yaw), rad2deg(c.Pitch), c.Radius, st.Points, r.scene.PointCount(), r.frames), hudDim)
}

func rad2deg(v float32) float32 { return v * 180 / math.Pi }

// fbDisplayer adapts an RGB565 framebuffer to the tinyfont drawing interface.
type fbDisplayer struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = (*fbDisplayer)(nil)

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	pixel := uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplayer) Display() error { return nil }
