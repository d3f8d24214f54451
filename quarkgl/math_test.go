package quarkgl

import "testing"

func TestIdentityIsNeutral(t *testing.T) {
	m := ViewMatrix(V3(1, 2, 3), V3(0, 0, 0), V3(0, 1, 0))
	if got := Identity().Mul(m); got != m {
		t.Fatalf("identity*m = %v, want %v", got, m)
	}
	if got := m.Mul(Identity()); got != m {
		t.Fatalf("m*identity = %v, want %v", got, m)
	}
}

func TestMulComposesTransforms(t *testing.T) {
	view := ViewMatrix(V3(4, 5, 6), V3(0, 1, 0), V3(0, 1, 0))
	proj := PerspectiveMatrix(DegToRad(60), 1.5, 0.1, 100)
	p := V3(1, -2, 0.5).Homogeneous()

	a := proj.Mul(view).Transform(p)
	b := proj.Transform(view.Transform(p))
	if abs32(a.X-b.X) > 1e-4 || abs32(a.Y-b.Y) > 1e-4 || abs32(a.Z-b.Z) > 1e-4 || abs32(a.W-b.W) > 1e-4 {
		t.Fatalf("(proj*view)p = %+v, proj(view p) = %+v", a, b)
	}
}

func TestPerspectiveMapsNearFarToNDC(t *testing.T) {
	p := PerspectiveMatrix(DegToRad(75), 1, 0.1, 1000)
	near := p.Transform(Vec4{Z: -0.1, W: 1})
	far := p.Transform(Vec4{Z: -1000, W: 1})
	if got := near.Z / near.W; got < -1.001 || got > -0.999 {
		t.Fatalf("near plane ndc z = %v, want -1", got)
	}
	if got := far.Z / far.W; got < 0.999 || got > 1.001 {
		t.Fatalf("far plane ndc z = %v, want 1", got)
	}
}

func TestViewMatrixMovesTargetOntoNegativeZ(t *testing.T) {
	eye := V3(30, 30, 30)
	o := ViewMatrix(eye, V3(0, 0, 0), V3(0, 1, 0)).Transform(Vec4{W: 1})
	want := -eye.Len()
	if abs32(o.X) > 1e-3 || abs32(o.Y) > 1e-3 || abs32(o.Z-want) > 1e-3 {
		t.Fatalf("origin in view space = %+v, want (0,0,%v)", o, want)
	}
}

func TestUnitOfZeroIsZero(t *testing.T) {
	if got := (Vec3{}).Unit(); got != (Vec3{}) {
		t.Fatalf("Unit(0) = %+v", got)
	}
	if got := V3(0, 3, 4).Unit().Len(); abs32(got-1) > 1e-6 {
		t.Fatalf("|Unit| = %v", got)
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
