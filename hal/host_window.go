//go:build cgo

package hal

import (
	"errors"
	"fmt"
	"image"
	"os"

	"pdlattice/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window that shows the framebuffer and forwards
// keyboard and pointer input. newApp receives the HAL once and returns the
// per-frame step. It blocks until the window closes or the step fails.
func RunWindow(cfg Config, newApp func(HAL) func() error) error {
	cfg = cfg.withDefaults()
	h := newHost(cfg, os.Stdout)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	title := "Palladium lattice (" + buildinfo.Short() + ")"
	if cfg.Title != "" {
		title = cfg.Title + " - " + title
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Hz)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	seq     uint64
	step    func() error
}

func (g *hostGame) Update() error {
	g.h.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
		g.seq = 0
	}

	if seq := fb.snapshotRGB565(g.scratch); seq != g.seq {
		g.seq = seq
		expandRGB565(g.img.Pix, g.scratch)
		g.fbImg.WritePixels(g.img.Pix)
	}
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
