package hal

import (
	"context"
	"fmt"
	"os"
	"time"
)

// RunHeadless drives the per-frame step from a ticker without opening a window.
// No input devices are polled.
//
// It returns nil after cfg.Ticks frames, ctx.Err() on cancellation, or the
// first step error.
func RunHeadless(ctx context.Context, cfg Config, newApp func(HAL) func() error) error {
	cfg = cfg.withDefaults()
	h := newHost(cfg, os.Stdout)
	return runHeadless(ctx, h, cfg, newApp)
}

func runHeadless(ctx context.Context, h *hostHAL, cfg Config, newApp func(HAL) func() error) error {
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
