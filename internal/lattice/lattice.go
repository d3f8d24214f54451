// Package lattice generates the palladium crystal point lattice.
//
// Each unit cell contributes its corner plus three face-centre sites, which
// together tile space as a face-centred cubic structure.
package lattice

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"pdlattice/quarkgl"
)

// PalladiumConstant is the palladium lattice constant in ångström.
const PalladiumConstant = 3.89

// Offsets are the fractional positions emitted per unit cell, in order.
var Offsets = [4]r3.Vec{
	{X: 0, Y: 0, Z: 0},
	{X: 0.5, Y: 0.5, Z: 0},
	{X: 0.5, Y: 0, Z: 0.5},
	{X: 0, Y: 0.5, Z: 0.5},
}

// Count returns 4*w*h*d, the number of points Generate emits, with negative
// extents counted as zero. ok is false if the product overflows int.
func Count(width, height, depth int) (n int, ok bool) {
	n = len(Offsets)
	for _, e := range [...]int{width, height, depth} {
		if e <= 0 {
			return 0, true
		}
		if n > math.MaxInt/e {
			return 0, false
		}
		n *= e
	}
	return n, true
}

// Generate returns the lattice points for a width x height x depth block of
// unit cells scaled by constant. Cells are visited x-major, then y, then z;
// negative extents count as zero. The result always has 4*w*h*d points, so
// extents whose point count overflows int yield nil.
func Generate(width, height, depth int, constant float64) []r3.Vec {
	n, ok := Count(width, height, depth)
	if !ok {
		return nil
	}
	width, height, depth = max(width, 0), max(height, 0), max(depth, 0)
	pts := make([]r3.Vec, 0, n)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			for z := 0; z < depth; z++ {
				cell := r3.Vec{X: float64(x), Y: float64(y), Z: float64(z)}
				for _, off := range Offsets {
					pts = append(pts, r3.Scale(constant, r3.Add(cell, off)))
				}
			}
		}
	}
	return pts
}

// Lattice is a generated block of palladium atoms plus the point geometry
// used to draw it.
type Lattice struct {
	Width    int
	Height   int
	Depth    int
	Constant float64

	structure []r3.Vec
	geometry  quarkgl.Points
}

// New returns an ungenerated lattice of the given extent in unit cells.
func New(width, height, depth int) *Lattice {
	return &Lattice{
		Width:    width,
		Height:   height,
		Depth:    depth,
		Constant: PalladiumConstant,
	}
}

// Generate computes the atom positions and builds the point geometry.
func (l *Lattice) Generate() {
	l.structure = Generate(l.Width, l.Height, l.Depth, l.Constant)

	pos := make([]quarkgl.Vec3, len(l.structure))
	for i, p := range l.structure {
		pos[i] = quarkgl.V3(float32(p.X), float32(p.Y), float32(p.Z))
	}
	l.geometry = quarkgl.Points{
		Positions: pos,
		Material: quarkgl.PointsMaterial{
			Color:           quarkgl.Hex(0xCCCCCC),
			Size:            0.5,
			SizeAttenuation: true,
		},
	}
}

// Len returns the number of generated atoms.
func (l *Lattice) Len() int { return len(l.structure) }

// Points returns a copy of the generated atom positions.
func (l *Lattice) Points() []r3.Vec {
	return append([]r3.Vec(nil), l.structure...)
}

// Geometry returns the point cloud for the scene. Its positions are a float32
// copy; drawing them never touches the stored structure.
func (l *Lattice) Geometry() quarkgl.Points { return l.geometry }

// Bounds returns the axis-aligned box around the generated atoms, or the
// zero box if there are none.
func (l *Lattice) Bounds() r3.Box {
	if len(l.structure) == 0 {
		return r3.Box{}
	}
	b := r3.Box{Min: l.structure[0], Max: l.structure[0]}
	for _, p := range l.structure[1:] {
		b.Min = r3.Vec{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y), Z: min(b.Min.Z, p.Z)}
		b.Max = r3.Vec{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y), Z: max(b.Max.Z, p.Z)}
	}
	return b
}
