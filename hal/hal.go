// Package hal is the boundary between the viewer and the host: the surface
// frames are drawn on and the input devices that steer the camera.
package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
}

var ErrNoSurface = errors.New("hal: no rendering surface")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
)

// KeyEvent is a keyboard event. Text input arrives with Code == KeyUnknown
// and Rune set.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// PointerState is pointer motion accumulated between two Take calls.
type PointerState struct {
	DragX, DragY int     // pixels moved with the primary button held
	Wheel        float64 // vertical wheel ticks, positive away from the user
}

func (s PointerState) Zero() bool { return s == PointerState{} }

// Pointer accumulates mouse input until it is taken.
type Pointer interface {
	Take() PointerState
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
	Pointer() Pointer
}

// HAL provides the only contact point between the viewer and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}

// Config describes the host surface.
type Config struct {
	Title  string // shown in the window title and log lines
	Width  int    // framebuffer width in pixels
	Height int    // framebuffer height in pixels
	Scale  int    // window pixels per framebuffer pixel
	Hz     int    // frame rate
	Ticks  uint64 // headless only: stop after N frames (0 = run forever)
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = 480
	}
	if c.Height <= 0 {
		c.Height = 320
	}
	if c.Scale <= 0 {
		c.Scale = 2
	}
	if c.Hz <= 0 {
		c.Hz = 60
	}
	return c
}
