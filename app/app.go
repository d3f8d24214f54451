// Package app is the composition root: it builds the lattice, renderer and
// physics hook once and hands the host a per-frame step.
package app

import (
	"fmt"

	"github.com/google/uuid"

	"pdlattice/hal"
	"pdlattice/internal/buildinfo"
	"pdlattice/internal/lattice"
	"pdlattice/internal/physics"
	"pdlattice/internal/render"
)

// Config selects what the simulation shows. Extents are used as given: a zero
// in any of them yields an empty lattice. DefaultConfig has the 5x5x5 block.
type Config struct {
	// ContainerID names the surface the viewer is mounted into.
	ContainerID string

	// Lattice extent in unit cells.
	Width, Height, Depth int

	HUD bool
}

// DefaultConfig returns a 5x5x5 lattice in "simulation-container" with the
// HUD on.
func DefaultConfig() Config {
	return Config{ContainerID: "simulation-container", Width: 5, Height: 5, Depth: 5, HUD: true}
}

// Simulation ties the palladium lattice to the renderer.
type Simulation struct {
	ContainerID string

	h     hal.HAL
	cfg   Config
	runID string

	lattice  *lattice.Lattice
	renderer *render.Renderer
	physics  *physics.Engine
}

// New returns an uninitialized simulation drawing on h.
func New(h hal.HAL, cfg Config) *Simulation {
	return &Simulation{
		ContainerID: cfg.ContainerID,
		h:           h,
		cfg:         cfg,
		runID:       uuid.NewString()[:8],
	}
}

// Initialize builds the renderer and physics hook, generates the lattice and
// adds its geometry to the scene.
func (s *Simulation) Initialize() error {
	var fb hal.Framebuffer
	if d := s.h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	if fb == nil {
		return fmt.Errorf("mount %q: %w", s.ContainerID, hal.ErrNoSurface)
	}
	s.logf("start: build %s, surface %dx%d", buildinfo.String(), fb.Width(), fb.Height())

	s.lattice = lattice.New(s.cfg.Width, s.cfg.Height, s.cfg.Depth)
	s.lattice.Generate()

	s.renderer = render.New(fb, s.h.Input(), render.Options{
		HUD: s.cfg.HUD,
		Caption: fmt.Sprintf("Pd lattice %dx%dx%d  a=%.2f A  %d atoms",
			s.lattice.Width, s.lattice.Height, s.lattice.Depth, s.lattice.Constant, s.lattice.Len()),
	})
	s.physics = physics.New()

	if id := s.renderer.AddToScene(s.lattice.Geometry()); id < 0 {
		return fmt.Errorf("mount %q: scene is full", s.ContainerID)
	}
	b := s.lattice.Bounds()
	s.logf("lattice: %d atoms, a=%.2f, bounds (%.2f,%.2f,%.2f)-(%.2f,%.2f,%.2f)",
		s.lattice.Len(), s.lattice.Constant, b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
	return nil
}

// Update runs one frame: the physics hook, then the render step.
func (s *Simulation) Update() {
	s.physics.Update()
	s.renderer.Render()
}

// Lattice and Renderer are nil until Initialize succeeds.
func (s *Simulation) Lattice() *lattice.Lattice   { return s.lattice }
func (s *Simulation) Renderer() *render.Renderer { return s.renderer }

func (s *Simulation) logf(format string, args ...any) {
	l := s.h.Logger()
	if l == nil {
		return
	}
	l.WriteLineString(fmt.Sprintf("%s [%s] ", s.ContainerID, s.runID) + fmt.Sprintf(format, args...))
}

// NewWithConfig initializes a simulation on h and returns its frame step.
// If initialization fails, every step returns that error.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s := New(h, cfg)
	if err := s.Initialize(); err != nil {
		return func() error { return err }
	}
	return func() error {
		s.Update()
		return nil
	}
}
