package quarkgl

import "math"

const defaultPitchLimit = Scalar(math.Pi/2 - 0.01)

// OrbitController provides orbit/zoom interactions for a camera.
//
// Rotate and Zoom only accumulate input; nothing moves until Update, which is
// meant to be called once per frame. It does not depend on any input system.
type OrbitController struct {
	Target Vec3
	Yaw    Scalar
	Pitch  Scalar
	Radius Scalar

	MinRadius Scalar
	MaxRadius Scalar

	// PitchLimit bounds |Pitch|. Zero means just short of straight up/down.
	PitchLimit Scalar

	// Damping in (0,1) applies that fraction of the pending motion per
	// Update. Zero applies it all at once.
	Damping Scalar

	pendingYaw   Scalar
	pendingPitch Scalar
	pendingZoom  Scalar
}

// LookFrom seeds yaw/pitch/radius so that Apply reproduces pos looking at target.
func (c *OrbitController) LookFrom(pos, target Vec3) {
	c.Target = target
	d := pos.Sub(target)
	r := d.Len()
	if r == 0 {
		return
	}
	c.Radius = r
	c.Yaw = Scalar(math.Atan2(float64(d.X), float64(d.Z)))
	c.Pitch = -Scalar(math.Asin(float64(clampScalar(d.Y/r, -1, 1))))
	c.clamp()
}

// Rotate queues a yaw/pitch change in radians.
func (c *OrbitController) Rotate(deltaYaw, deltaPitch Scalar) {
	c.pendingYaw += deltaYaw
	c.pendingPitch += deltaPitch
}

// Zoom queues a radius change. Negative moves closer.
func (c *OrbitController) Zoom(delta Scalar) {
	c.pendingZoom += delta
}

// Pending reports whether queued motion remains.
func (c *OrbitController) Pending() bool {
	return c.pendingYaw != 0 || c.pendingPitch != 0 || c.pendingZoom != 0
}

// Update applies queued motion and writes the camera. It reports whether the
// orbit changed.
func (c *OrbitController) Update(cam *Camera) bool {
	changed := c.Pending()
	if changed {
		f := Scalar(1)
		if c.Damping > 0 && c.Damping < 1 {
			f = c.Damping
		}
		c.Yaw += c.pendingYaw * f
		c.Pitch += c.pendingPitch * f
		c.Radius += c.pendingZoom * f
		c.pendingYaw = settle(c.pendingYaw * (1 - f))
		c.pendingPitch = settle(c.pendingPitch * (1 - f))
		c.pendingZoom = settle(c.pendingZoom * (1 - f))
		c.clamp()
	}
	c.Apply(cam)
	return changed
}

// Apply writes the current orbit into cam without consuming queued motion.
func (c *OrbitController) Apply(cam *Camera) {
	if cam == nil {
		return
	}
	r := c.Radius
	if r == 0 {
		r = 3
	}

	// Yaw turns about +Y from +Z; positive pitch tips the eye below the target.
	sy, cy := sincos(c.Yaw)
	sp, cp := sincos(c.Pitch)
	cam.Position = c.Target.Add(V3(r*cp*sy, -r*sp, r*cp*cy))
	cam.Target = c.Target
	if cam.Up == (Vec3{}) {
		cam.Up = V3(0, 1, 0)
	}
}

func (c *OrbitController) clamp() {
	limit := c.PitchLimit
	if limit <= 0 || limit > defaultPitchLimit {
		limit = defaultPitchLimit
	}
	c.Pitch = clampScalar(c.Pitch, -limit, limit)

	if c.MinRadius != 0 && c.Radius < c.MinRadius {
		c.Radius = c.MinRadius
	}
	if c.MaxRadius != 0 && c.Radius > c.MaxRadius {
		c.Radius = c.MaxRadius
	}
}

func settle(v Scalar) Scalar {
	if v > -1e-4 && v < 1e-4 {
		return 0
	}
	return v
}
