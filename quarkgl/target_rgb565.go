package quarkgl

// RGB565Target renders into a little-endian RGB565 buffer owned by the caller.
type RGB565Target struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

// NewRGB565Target wraps buf. A stride of 0 means tightly packed rows.
func NewRGB565Target(buf []byte, stride, w, h int) *RGB565Target {
	if stride <= 0 {
		stride = w * 2
	}
	return &RGB565Target{Buf: buf, Stride: stride, W: w, H: h}
}

func (t *RGB565Target) Size() (w, h int) { return t.W, t.H }

func (t *RGB565Target) valid() bool {
	return t != nil && t.Buf != nil && t.Stride > 0 && t.W > 0 && t.H > 0
}

func (t *RGB565Target) offset(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return 0, false
	}
	off := y*t.Stride + x*2
	if off+1 >= len(t.Buf) {
		return 0, false
	}
	return off, true
}

func (t *RGB565Target) Clear(c Color) {
	if !t.valid() {
		return
	}
	p := c.RGB565()
	lo, hi := byte(p), byte(p>>8)
	for y := 0; y < t.H; y++ {
		off, ok := t.offset(0, y)
		if !ok {
			return
		}
		row := t.Buf[off:]
		for x := 0; x < t.W && x*2+1 < len(row); x++ {
			row[x*2] = lo
			row[x*2+1] = hi
		}
	}
}

func (t *RGB565Target) SetPixel(x, y int, c Color) {
	if !t.valid() {
		return
	}
	off, ok := t.offset(x, y)
	if !ok {
		return
	}
	p := c.RGB565()
	t.Buf[off] = byte(p)
	t.Buf[off+1] = byte(p >> 8)
}

// At reads back a pixel. Out-of-range reads return the zero Color.
func (t *RGB565Target) At(x, y int) Color {
	if !t.valid() {
		return Color{}
	}
	off, ok := t.offset(x, y)
	if !ok {
		return Color{}
	}
	return ColorFromRGB565(uint16(t.Buf[off]) | uint16(t.Buf[off+1])<<8)
}
