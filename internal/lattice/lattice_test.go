package lattice

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1e-9

func TestGenerateCount(t *testing.T) {
	cases := []struct{ w, h, d int }{
		{0, 0, 0}, {1, 0, 3}, {1, 1, 1}, {2, 3, 4}, {5, 5, 5}, {7, 1, 2},
	}
	for _, tc := range cases {
		got := Generate(tc.w, tc.h, tc.d, PalladiumConstant)
		require.Len(t, got, 4*tc.w*tc.h*tc.d, "extent %dx%dx%d", tc.w, tc.h, tc.d)
	}
}

func TestGenerateNegativeExtentIsEmpty(t *testing.T) {
	require.Empty(t, Generate(-1, 5, 5, PalladiumConstant))
	require.Empty(t, Generate(5, 5, -3, PalladiumConstant))
}

func TestCount(t *testing.T) {
	n, ok := Count(5, 5, 5)
	require.True(t, ok)
	require.Equal(t, 500, n)

	n, ok = Count(0, 1<<40, 1<<40)
	require.True(t, ok)
	require.Zero(t, n)

	_, ok = Count(1<<20, 1<<20, 1<<21)
	require.False(t, ok, "4*2^20*2^20*2^21 overflows int")
	_, ok = Count(math.MaxInt, 1, 1)
	require.False(t, ok)
}

func TestGenerateOverflowingExtentIsNil(t *testing.T) {
	require.NotPanics(t, func() {
		require.Nil(t, Generate(1<<20, 1<<20, 1<<21, PalladiumConstant))
	})
}

func TestGenerateUnitCell(t *testing.T) {
	want := []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 1.945, Y: 1.945, Z: 0},
		{X: 1.945, Y: 0, Z: 1.945},
		{X: 0, Y: 1.945, Z: 1.945},
	}
	got := Generate(1, 1, 1, PalladiumConstant)
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Fatalf("unit cell mismatch (-want +got):\n%s", diff)
	}
}

// Every point must be (cell + offset) * a for some integer cell inside the
// extent and one of the four offsets.
func TestGeneratePointsSitOnLattice(t *testing.T) {
	const w, h, d = 3, 4, 2
	pts := Generate(w, h, d, PalladiumConstant)

	i := 0
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			for z := 0; z < d; z++ {
				for _, off := range Offsets {
					p := pts[i]
					i++
					want := r3.Vec{
						X: (float64(x) + off.X) * PalladiumConstant,
						Y: (float64(y) + off.Y) * PalladiumConstant,
						Z: (float64(z) + off.Z) * PalladiumConstant,
					}
					require.True(t, scalar.EqualWithinAbs(p.X, want.X, tol), "point %d x=%v want %v", i-1, p.X, want.X)
					require.True(t, scalar.EqualWithinAbs(p.Y, want.Y, tol), "point %d y=%v want %v", i-1, p.Y, want.Y)
					require.True(t, scalar.EqualWithinAbs(p.Z, want.Z, tol), "point %d z=%v want %v", i-1, p.Z, want.Z)
				}
			}
		}
	}

	for _, p := range pts {
		for _, c := range []float64{p.X, p.Y, p.Z} {
			frac := c/PalladiumConstant - math.Floor(c/PalladiumConstant+tol)
			require.True(t, scalar.EqualWithinAbs(frac, 0, 1e-6) || scalar.EqualWithinAbs(frac, 0.5, 1e-6),
				"coordinate %v is not on a half-cell", c)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(4, 2, 3, PalladiumConstant)
	b := Generate(4, 2, 3, PalladiumConstant)
	require.Equal(t, a, b)
}

func TestLatticeGenerate(t *testing.T) {
	l := New(5, 5, 5)
	require.Equal(t, PalladiumConstant, l.Constant)
	require.Zero(t, l.Len())
	require.Empty(t, l.Geometry().Positions)

	l.Generate()
	require.Equal(t, 500, l.Len())

	geo := l.Geometry()
	require.Len(t, geo.Positions, 500)
	require.Equal(t, float32(0.5), geo.Material.Size)
	require.True(t, geo.Material.SizeAttenuation)
	require.Equal(t, uint8(0xCC), geo.Material.Color.R)

	pts := l.Points()
	for i, p := range pts {
		g := geo.Positions[i]
		require.InDelta(t, p.X, float64(g.X), 1e-5)
		require.InDelta(t, p.Y, float64(g.Y), 1e-5)
		require.InDelta(t, p.Z, float64(g.Z), 1e-5)
	}
}

func TestLatticePointsIsACopy(t *testing.T) {
	l := New(1, 1, 1)
	l.Generate()

	pts := l.Points()
	pts[0] = r3.Vec{X: 99, Y: 99, Z: 99}
	require.Equal(t, r3.Vec{}, l.Points()[0])

	geo := l.Geometry()
	geo.Positions[1].X = 42
	require.InDelta(t, 1.945, l.Points()[1].X, tol)
}

func TestLatticeBounds(t *testing.T) {
	l := New(2, 1, 3)
	require.Equal(t, r3.Box{}, l.Bounds())

	l.Generate()
	b := l.Bounds()
	require.Equal(t, r3.Vec{}, b.Min)
	require.InDelta(t, 1.5*PalladiumConstant, b.Max.X, tol)
	require.InDelta(t, 0.5*PalladiumConstant, b.Max.Y, tol)
	require.InDelta(t, 2.5*PalladiumConstant, b.Max.Z, tol)
}
