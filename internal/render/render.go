// Package render owns the scene, camera and orbit controls of the viewer and
// draws one frame per call into the host framebuffer.
package render

import (
	"math"

	"pdlattice/hal"
	"pdlattice/quarkgl"
)

const (
	fovDeg     = 75
	nearPlane  = 0.1
	farPlane   = 1000
	axesLength = 20

	keyRotateStep = 0.04 // radians per key event
	zoomFraction  = 0.1  // of the current radius per wheel tick or key press
)

var (
	cameraStart = quarkgl.V3(30, 30, 30)
	clearColor  = quarkgl.RGB(0, 0, 0)
)

// Options tune the renderer.
type Options struct {
	// HUD draws the text overlay.
	HUD bool
	// Caption is the first HUD line.
	Caption string
	// MaxObjects bounds the scene; zero means 8.
	MaxObjects int
}

// Renderer draws the scene into a framebuffer once per Render call.
type Renderer struct {
	fb   hal.Framebuffer
	in   hal.Input
	opts Options

	gl     *quarkgl.Renderer
	scene  *quarkgl.Scene
	target *quarkgl.RGB565Target

	controls quarkgl.OrbitController
	home     quarkgl.OrbitController

	axes    int
	hud     *hud
	showHUD bool
	frames  uint64
}

// New builds the scene: a perspective camera at (30,30,30) looking at the
// origin, an axes helper, and orbit controls seeded from the camera.
func New(fb hal.Framebuffer, in hal.Input, opts Options) *Renderer {
	if opts.MaxObjects <= 0 {
		opts.MaxObjects = 8
	}
	w, h := fb.Width(), fb.Height()

	r := &Renderer{
		fb:      fb,
		in:      in,
		opts:    opts,
		gl:      quarkgl.NewRenderer(w, h, true),
		scene:   quarkgl.CreateScene(opts.MaxObjects),
		target:  quarkgl.NewRGB565Target(fb.Buffer(), fb.StrideBytes(), w, h),
		hud:     newHUD(fb),
		showHUD: opts.HUD,
	}
	r.gl.ClearColor = clearColor

	cam := &r.scene.Camera
	cam.FOVYRad = quarkgl.DegToRad(fovDeg)
	cam.Near = nearPlane
	cam.Far = farPlane
	cam.Up = quarkgl.V3(0, 1, 0)
	cam.Position = cameraStart
	cam.LookAt(quarkgl.V3(0, 0, 0))

	r.axes = r.scene.AddLines(quarkgl.AxesHelper(axesLength))

	r.controls = quarkgl.OrbitController{MinRadius: 1, MaxRadius: farPlane / 2}
	r.controls.LookFrom(cam.Position, cam.Target)
	r.home = r.controls
	return r
}

// AddToScene adds a point cloud and returns its scene id, or -1 if the scene is full.
func (r *Renderer) AddToScene(p quarkgl.Points) int {
	return r.scene.AddPoints(p)
}

// Render applies accumulated input to the orbit controls and draws one frame.
func (r *Renderer) Render() {
	r.handleInput()
	r.controls.Update(&r.scene.Camera)
	r.gl.Render(r.target, r.scene)
	if r.showHUD {
		r.drawHUD()
	}
	// A failed present drops this frame; the next one redraws everything.
	_ = r.fb.Present()
	r.frames++
}

// Frames returns the number of frames rendered so far.
func (r *Renderer) Frames() uint64 { return r.frames }

// Camera returns a copy of the current camera.
func (r *Renderer) Camera() quarkgl.Camera { return r.scene.Camera }

// Stats returns the draw counters of the last frame.
func (r *Renderer) Stats() quarkgl.Stats { return r.gl.Stats() }

// HUDVisible reports whether the text overlay is drawn.
func (r *Renderer) HUDVisible() bool { return r.showHUD }

// AxesVisible reports whether the axes helper is drawn.
func (r *Renderer) AxesVisible() bool { return r.scene.LinesEnabled(r.axes) }

func (r *Renderer) handleInput() {
	if r.in == nil {
		return
	}
	if kbd := r.in.Keyboard(); kbd != nil {
		r.drainKeys(kbd.Events())
	}
	if ptr := r.in.Pointer(); ptr != nil {
		r.applyPointer(ptr.Take())
	}
}

func (r *Renderer) drainKeys(ch <-chan hal.KeyEvent) {
	for {
		select {
		case ev := <-ch:
			r.handleKey(ev)
		default:
			return
		}
	}
}

func (r *Renderer) handleKey(ev hal.KeyEvent) {
	if !ev.Press {
		return
	}
	switch ev.Code {
	case hal.KeyLeft:
		r.controls.Rotate(keyRotateStep, 0)
	case hal.KeyRight:
		r.controls.Rotate(-keyRotateStep, 0)
	case hal.KeyUp:
		r.controls.Rotate(0, -keyRotateStep)
	case hal.KeyDown:
		r.controls.Rotate(0, keyRotateStep)
	case hal.KeyHome:
		r.resetView()
	case hal.KeyUnknown:
		switch ev.Rune {
		case '+', '=':
			r.controls.Zoom(-r.controls.Radius * zoomFraction)
		case '-', '_':
			r.controls.Zoom(r.controls.Radius * zoomFraction)
		case 'r', 'R':
			r.resetView()
		case 'h', 'H':
			r.showHUD = !r.showHUD
		case 'a', 'A':
			r.scene.SetLinesEnabled(r.axes, !r.AxesVisible())
		}
	}
}

// applyPointer maps a full-height drag to one turn, like an orbit control
// on a web canvas.
func (r *Renderer) applyPointer(s hal.PointerState) {
	if s.Zero() {
		return
	}
	h := float32(r.fb.Height())
	if h > 0 && (s.DragX != 0 || s.DragY != 0) {
		turn := float32(2 * math.Pi)
		r.controls.Rotate(-turn*float32(s.DragX)/h, -turn*float32(s.DragY)/h)
	}
	if s.Wheel != 0 {
		r.controls.Zoom(-float32(s.Wheel) * r.controls.Radius * zoomFraction)
	}
}

func (r *Renderer) resetView() {
	r.controls = r.home
}
