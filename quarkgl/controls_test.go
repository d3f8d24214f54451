package quarkgl

import "testing"

func near3(a, b Vec3, eps Scalar) bool {
	return abs32(a.X-b.X) <= eps && abs32(a.Y-b.Y) <= eps && abs32(a.Z-b.Z) <= eps
}

func TestOrbitLookFromRoundTrip(t *testing.T) {
	var c OrbitController
	pos := V3(30, 30, 30)
	c.LookFrom(pos, V3(0, 0, 0))

	var cam Camera
	c.Apply(&cam)
	if !near3(cam.Position, pos, 1e-2) {
		t.Fatalf("position = %+v, want %+v", cam.Position, pos)
	}
	if cam.Target != (Vec3{}) {
		t.Fatalf("target = %+v, want origin", cam.Target)
	}
	if cam.Up != V3(0, 1, 0) {
		t.Fatalf("up = %+v, want +Y", cam.Up)
	}
}

func TestOrbitRotateIsDeferredUntilUpdate(t *testing.T) {
	var c OrbitController
	c.LookFrom(V3(0, 0, 10), V3(0, 0, 0))
	var cam Camera
	c.Apply(&cam)
	before := cam.Position

	c.Rotate(0.5, 0)
	c.Apply(&cam)
	if cam.Position != before {
		t.Fatalf("Apply consumed queued rotation")
	}
	if !c.Pending() {
		t.Fatalf("expected pending motion")
	}
	if !c.Update(&cam) {
		t.Fatalf("Update reported no change")
	}
	if cam.Position == before {
		t.Fatalf("Update did not move the camera")
	}
	if c.Pending() {
		t.Fatalf("undamped update left pending motion")
	}
	if d := cam.Position.Len(); abs32(d-10) > 1e-3 {
		t.Fatalf("radius drifted to %v", d)
	}
}

func TestOrbitDampingSpreadsMotion(t *testing.T) {
	c := OrbitController{Radius: 5, Damping: 0.5}
	var cam Camera
	c.Rotate(1, 0)
	c.Update(&cam)
	if abs32(c.Yaw-0.5) > 1e-6 {
		t.Fatalf("yaw after first update = %v, want 0.5", c.Yaw)
	}
	for i := 0; i < 64 && c.Pending(); i++ {
		c.Update(&cam)
	}
	if c.Pending() {
		t.Fatalf("damped motion never settled")
	}
	if abs32(c.Yaw-1) > 1e-3 {
		t.Fatalf("yaw settled at %v, want ~1", c.Yaw)
	}
}

func TestOrbitClampsPitchAndRadius(t *testing.T) {
	c := OrbitController{Radius: 5, MinRadius: 2, MaxRadius: 8}
	var cam Camera

	c.Rotate(0, 10)
	c.Zoom(-100)
	c.Update(&cam)
	if c.Pitch > defaultPitchLimit {
		t.Fatalf("pitch = %v exceeds limit", c.Pitch)
	}
	if c.Radius != 2 {
		t.Fatalf("radius = %v, want min 2", c.Radius)
	}

	c.Zoom(100)
	c.Update(&cam)
	if c.Radius != 8 {
		t.Fatalf("radius = %v, want max 8", c.Radius)
	}
}
