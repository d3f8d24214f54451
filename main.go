package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/profile"

	"pdlattice/app"
	"pdlattice/hal"
	"pdlattice/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	switch cfg.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	surface := hal.Config{
		Title:  cfg.Container,
		Width:  cfg.ScreenWidth,
		Height: cfg.ScreenHeight,
		Scale:  cfg.Scale,
		Hz:     cfg.Hz,
		Ticks:  cfg.Ticks,
	}
	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, app.Config{
			ContainerID: cfg.Container,
			Width:       cfg.Width,
			Height:      cfg.Height,
			Depth:       cfg.Depth,
			HUD:         cfg.HUD,
		})
	}

	if cfg.Headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, surface, newApp); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}
	return hal.RunWindow(surface, newApp)
}
