package quarkgl

// Camera is a perspective camera.
type Camera struct {
	Position Vec3
	Target   Vec3
	Up       Vec3

	FOVYRad Scalar
	Near    Scalar
	Far     Scalar
}

// View returns the camera view matrix.
func (c Camera) View() Mat4 {
	up := c.Up
	if up == (Vec3{}) {
		up = V3(0, 1, 0)
	}
	return ViewMatrix(c.Position, c.Target, up)
}

// Projection returns the projection matrix for a target aspect.
func (c Camera) Projection(aspect Scalar) Mat4 {
	fov := c.FOVYRad
	if fov == 0 {
		fov = 1
	}
	return PerspectiveMatrix(fov, aspect, c.Near, c.Far)
}

// LookAt points the camera at target, keeping its position.
func (c *Camera) LookAt(target Vec3) { c.Target = target }

// PointsMaterial controls how a point cloud is splatted.
//
// Size is in world units when SizeAttenuation is set, otherwise in pixels.
type PointsMaterial struct {
	Color           Color
	Size            Scalar
	SizeAttenuation bool
}

// Points is a point cloud in world coordinates.
type Points struct {
	Positions []Vec3
	Material  PointsMaterial
}

// Segment is a single colored line segment.
type Segment struct {
	A, B  Vec3
	Color Color
}

// Lines is a list of independent segments in world coordinates.
type Lines struct {
	Enabled bool

	Segments []Segment
}

// AxesHelper returns three segments of the given length from the origin:
// X red, Y green, Z blue.
func AxesHelper(size Scalar) Lines {
	o := V3(0, 0, 0)
	return Lines{
		Segments: []Segment{
			{A: o, B: V3(size, 0, 0), Color: RGB(0xFF, 0, 0)},
			{A: o, B: V3(0, size, 0), Color: RGB(0, 0xFF, 0)},
			{A: o, B: V3(0, 0, size), Color: RGB(0, 0, 0xFF)},
		},
	}
}

// Scene is a collection of objects to render.
//
// Object storage is fixed at creation; ids are slot indices.
type Scene struct {
	Camera Camera

	points slots[Points]
	lines  slots[Lines]
}

// CreateScene allocates a scene holding up to maxObjects point clouds and
// maxObjects line sets.
func CreateScene(maxObjects int) *Scene {
	if maxObjects < 0 {
		maxObjects = 0
	}
	return &Scene{
		Camera: Camera{
			Position: V3(0, 0, 3),
			Target:   V3(0, 0, 0),
			Up:       V3(0, 1, 0),
			FOVYRad:  1,
			Near:     0.05,
			Far:      100,
		},
		points: newSlots[Points](maxObjects),
		lines:  newSlots[Lines](maxObjects),
	}
}

// AddPoints adds a point cloud and returns its id or -1 if full.
//
// The positions slice is stored by reference; the renderer only reads it.
func (s *Scene) AddPoints(p Points) int {
	if s == nil {
		return -1
	}
	if p.Material.Color == (Color{}) {
		p.Material.Color = Hex(0xCCCCCC)
	}
	if p.Material.Size <= 0 {
		p.Material.Size = 1
	}
	return s.points.add(p)
}

// AddLines adds a line set and returns its id or -1 if full.
func (s *Scene) AddLines(l Lines) int {
	if s == nil {
		return -1
	}
	l.Enabled = true
	return s.lines.add(l)
}

// SetLinesEnabled enables/disables a line set by id.
func (s *Scene) SetLinesEnabled(id int, enabled bool) {
	if s == nil {
		return
	}
	if l := s.lines.get(id); l != nil {
		l.Enabled = enabled
	}
}

// LinesEnabled reports whether line set id exists and is drawn.
func (s *Scene) LinesEnabled(id int) bool {
	if s == nil {
		return false
	}
	l := s.lines.get(id)
	return l != nil && l.Enabled
}

// PointCount returns the number of positions across all point clouds.
func (s *Scene) PointCount() int {
	if s == nil {
		return 0
	}
	n := 0
	s.points.each(func(p *Points) { n += len(p.Positions) })
	return n
}

type slots[T any] struct {
	items []T
	alive []bool
}

func newSlots[T any](n int) slots[T] {
	return slots[T]{items: make([]T, n), alive: make([]bool, n)}
}

func (s *slots[T]) add(v T) int {
	for i := range s.items {
		if s.alive[i] {
			continue
		}
		s.items[i] = v
		s.alive[i] = true
		return i
	}
	return -1
}

func (s *slots[T]) get(id int) *T {
	if id < 0 || id >= len(s.items) || !s.alive[id] {
		return nil
	}
	return &s.items[id]
}

func (s *slots[T]) each(fn func(*T)) {
	for i := range s.items {
		if !s.alive[i] {
			continue
		}
		fn(&s.items[i])
	}
}
