//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

var navKeys = [...]struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyHome, KeyHome},
}

func (k *hostKeyboard) poll() {
	emit := func(ev KeyEvent) {
		select {
		case k.ch <- ev:
		default:
		}
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		emit(KeyEvent{Press: true, Rune: r})
	}

	// Arrow keys repeat while held so the orbit keeps turning.
	for _, nk := range navKeys {
		if inpututil.IsKeyJustPressed(nk.key) || (nk.code != KeyHome && ebiten.IsKeyPressed(nk.key)) {
			emit(KeyEvent{Code: nk.code, Press: true})
		}
		if inpututil.IsKeyJustReleased(nk.key) {
			emit(KeyEvent{Code: nk.code, Press: false})
		}
	}
}

func (p *hostPointer) poll() {
	x, y := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	p.feed(x, y, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), wy)
}
