package hal

import (
	"fmt"
	"io"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	ptr    *hostPointer
}

func newHost(cfg Config, logOut io.Writer) *hostHAL {
	cfg = cfg.withDefaults()
	return &hostHAL{
		logger: &hostLogger{w: logOut},
		fb:     newHostFramebuffer(cfg.Width, cfg.Height),
		kbd:    newHostKeyboard(),
		ptr:    &hostPointer{},
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd, ptr: h.ptr} }

func (h *hostHAL) poll() {
	h.kbd.poll()
	h.ptr.poll()
}

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
	ptr *hostPointer
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Pointer() Pointer   { return in.ptr }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

type hostPointer struct {
	mu       sync.Mutex
	acc      PointerState
	dragging bool
	lastX    int
	lastY    int
}

func (p *hostPointer) Take() PointerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.acc
	p.acc = PointerState{}
	return s
}

// feed records one polled pointer sample.
func (p *hostPointer) feed(x, y int, pressed bool, wheel float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if pressed && p.dragging {
		p.acc.DragX += x - p.lastX
		p.acc.DragY += y - p.lastY
	}
	p.dragging = pressed
	p.lastX, p.lastY = x, y
	p.acc.Wheel += wheel
}
