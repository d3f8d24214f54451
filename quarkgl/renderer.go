package quarkgl

// Renderer is a fixed-pipeline software renderer.
//
// Create it once and reuse it to avoid allocations.
type Renderer struct {
	Depth      bool
	ClearColor Color

	depthBuf []float32
	stats    Stats
}

// Stats describes the last rendered frame.
type Stats struct {
	Points   int // points that survived clipping
	Segments int // segments that survived clipping
}

// NewRenderer creates a renderer for a given maximum target size.
//
// If enableDepth is true, a depth buffer of size w*h is allocated.
func NewRenderer(w, h int, enableDepth bool) *Renderer {
	r := &Renderer{
		Depth:      enableDepth,
		ClearColor: RGB(0, 0, 0),
	}
	if enableDepth && w > 0 && h > 0 {
		r.depthBuf = make([]float32, w*h)
	}
	return r
}

// ensureDepth sizes the depth buffer for a w*h target.
func (r *Renderer) ensureDepth(w, h int) {
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float32, w*h)
	} else {
		r.depthBuf = r.depthBuf[:w*h]
	}
}

// Stats returns counters for the last Render call.
func (r *Renderer) Stats() Stats { return r.stats }

func (r *Renderer) clearDepth() {
	for i := range r.depthBuf {
		r.depthBuf[i] = 1e9
	}
}

// Render renders a scene into the target.
func (r *Renderer) Render(t Target, s *Scene) {
	if r == nil || t == nil || s == nil {
		return
	}
	r.stats = Stats{}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	t.Clear(r.ClearColor)

	if r.Depth {
		r.ensureDepth(w, h)
		r.clearDepth()
	}

	aspect := Scalar(w) / Scalar(h)
	view := s.Camera.View()
	proj := s.Camera.Projection(aspect)

	s.lines.each(func(l *Lines) {
		if l.Enabled {
			r.renderLines(t, w, h, proj, view, l)
		}
	})
	s.points.each(func(p *Points) {
		r.renderPoints(t, w, h, proj, view, p)
	})
}

func (r *Renderer) renderPoints(t Target, w, h int, proj, view Mat4, p *Points) {
	if len(p.Positions) == 0 {
		return
	}
	mat := p.Material
	halfH := Scalar(h) / 2

	for _, pos := range p.Positions {
		vp := view.Transform(pos.Homogeneous())
		cp := proj.Transform(vp)
		if cp.W <= 0 {
			continue
		}
		ndc, ok := clipToNDC(cp)
		if !ok || ndc.Z < -1 || ndc.Z > 1 {
			continue
		}
		x, y := ndcToScreen(ndc, w, h)

		size := mat.Size
		if mat.SizeAttenuation && vp.Z < 0 {
			size = mat.Size * halfH / -vp.Z
		}
		d := int(size + 0.5)
		if d < 1 {
			d = 1
		}
		x0 := x - d/2
		y0 := y - d/2
		if x0+d <= 0 || y0+d <= 0 || x0 >= w || y0 >= h {
			continue
		}
		r.stats.Points++
		for yy := y0; yy < y0+d; yy++ {
			if yy < 0 || yy >= h {
				continue
			}
			for xx := x0; xx < x0+d; xx++ {
				if xx < 0 || xx >= w {
					continue
				}
				if r.depthTest(w, xx, yy, ndc.Z) {
					t.SetPixel(xx, yy, mat.Color)
				}
			}
		}
	}
}

func (r *Renderer) renderLines(t Target, w, h int, proj, view Mat4, l *Lines) {
	mvp := proj.Mul(view)

	for _, seg := range l.Segments {
		a := mvp.Transform(seg.A.Homogeneous())
		b := mvp.Transform(seg.B.Homogeneous())
		a, b, ok := clipNear(a, b)
		if !ok {
			continue
		}
		na, okA := clipToNDC(a)
		nb, okB := clipToNDC(b)
		if !okA || !okB {
			continue
		}
		na, nb, ok = clipNDCRect(na, nb)
		if !ok {
			continue
		}
		r.stats.Segments++
		x0, y0 := ndcToScreen(na, w, h)
		x1, y1 := ndcToScreen(nb, w, h)
		r.drawLine(t, w, x0, y0, na.Z, x1, y1, nb.Z, seg.Color)
	}
}

// clipNear clips a clip-space segment against the near plane (z >= -w).
func clipNear(a, b Vec4) (Vec4, Vec4, bool) {
	da := a.Z + a.W
	db := b.Z + b.W
	switch {
	case da < 0 && db < 0:
		return a, b, false
	case da < 0:
		a = a.lerp(b, da/(da-db))
	case db < 0:
		b = b.lerp(a, db/(db-da))
	}
	if a.W <= 0 || b.W <= 0 {
		return a, b, false
	}
	return a, b, true
}

// clipNDCRect clips a segment to the [-1,1] x/y square (Liang-Barsky).
func clipNDCRect(a, b ndcPoint) (ndcPoint, ndcPoint, bool) {
	t0, t1 := float32(0), float32(1)
	dx := b.X - a.X
	dy := b.Y - a.Y
	edges := [4][2]float32{
		{-dx, a.X + 1},
		{dx, 1 - a.X},
		{-dy, a.Y + 1},
		{dy, 1 - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return a, b, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	dz := b.Z - a.Z
	na := ndcPoint{X: a.X + t0*dx, Y: a.Y + t0*dy, Z: a.Z + t0*dz}
	nb := ndcPoint{X: a.X + t1*dx, Y: a.Y + t1*dy, Z: a.Z + t1*dz}
	return na, nb, true
}

type ndcPoint struct {
	X, Y, Z float32
}

func clipToNDC(p Vec4) (ndcPoint, bool) {
	if p.W == 0 {
		return ndcPoint{}, false
	}
	invW := 1 / p.W
	return ndcPoint{X: p.X * invW, Y: p.Y * invW, Z: p.Z * invW}, true
}

func ndcToScreen(p ndcPoint, w, h int) (x, y int) {
	sx := (p.X*0.5 + 0.5) * float32(w-1)
	sy := (1 - (p.Y*0.5 + 0.5)) * float32(h-1)
	return int(sx + 0.5), int(sy + 0.5)
}

func (r *Renderer) depthTest(w int, x, y int, z float32) bool {
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	if x < 0 || y < 0 || x >= w {
		return false
	}
	idx := y*w + x
	if idx < 0 || idx >= len(r.depthBuf) {
		return false
	}
	// NDC z is in [-1,1]. Map to [0,1].
	d := clampScalar(z*0.5+0.5, 0, 1)
	if d >= r.depthBuf[idx] {
		return false
	}
	r.depthBuf[idx] = d
	return true
}

func (r *Renderer) drawLine(t Target, w int, x0, y0 int, z0 float32, x1, y1 int, z1 float32, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	steps := dx
	if -dy > steps {
		steps = -dy
	}
	dz := float32(0)
	if steps > 0 {
		dz = (z1 - z0) / float32(steps)
	}
	z := z0
	err := dx + dy
	for {
		if r.depthTest(w, x0, y0, z) {
			t.SetPixel(x0, y0, c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		moved := false
		if e2 >= dy {
			err += dy
			x0 += sx
			moved = true
		}
		if e2 <= dx {
			err += dx
			y0 += sy
			moved = true
		}
		if moved {
			z += dz
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
