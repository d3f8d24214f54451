// Package config loads viewer settings from LATTICE_* environment variables
// and lets command-line flags override them.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"

	"pdlattice/internal/lattice"
)

// MaxAtoms bounds the lattice size: each atom is kept as a float64 and a
// float32 position and drawn every frame.
const MaxAtoms = 1 << 22

// Config is the full viewer configuration.
type Config struct {
	// Container names the surface frames are mounted into.
	Container string `env:"LATTICE_CONTAINER" envDefault:"simulation-container"`

	// Lattice extent in unit cells.
	Width  int `env:"LATTICE_WIDTH" envDefault:"5"`
	Height int `env:"LATTICE_HEIGHT" envDefault:"5"`
	Depth  int `env:"LATTICE_DEPTH" envDefault:"5"`

	ScreenWidth  int  `env:"LATTICE_SCREEN_WIDTH" envDefault:"480"`
	ScreenHeight int  `env:"LATTICE_SCREEN_HEIGHT" envDefault:"320"`
	Scale        int  `env:"LATTICE_SCALE" envDefault:"2"`
	Hz           int  `env:"LATTICE_HZ" envDefault:"60"`
	HUD          bool `env:"LATTICE_HUD" envDefault:"true"`

	Headless bool   `env:"LATTICE_HEADLESS"`
	Ticks    uint64 `env:"LATTICE_TICKS"`

	// Profile is "", "cpu" or "mem".
	Profile string `env:"LATTICE_PROFILE"`
}

// Load reads the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LoadFrom reads vars instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// RegisterFlags binds flags to c, using its current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Container, "container", c.Container, "Name of the surface the viewer is mounted into.")
	fs.IntVar(&c.Width, "width", c.Width, "Lattice width in unit cells.")
	fs.IntVar(&c.Height, "height", c.Height, "Lattice height in unit cells.")
	fs.IntVar(&c.Depth, "depth", c.Depth, "Lattice depth in unit cells.")
	fs.IntVar(&c.ScreenWidth, "screen-width", c.ScreenWidth, "Framebuffer width in pixels.")
	fs.IntVar(&c.ScreenHeight, "screen-height", c.ScreenHeight, "Framebuffer height in pixels.")
	fs.IntVar(&c.Scale, "scale", c.Scale, "Window pixels per framebuffer pixel.")
	fs.IntVar(&c.Hz, "hz", c.Hz, "Frame rate.")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "Draw the text overlay.")
	fs.BoolVar(&c.Headless, "headless", c.Headless, "Run without a window.")
	fs.Uint64Var(&c.Ticks, "ticks", c.Ticks, "Stop after N frames in headless mode (0 = run forever).")
	fs.StringVar(&c.Profile, "profile", c.Profile, "Write a cpu or mem profile to the working directory.")
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if c.Container == "" {
		errs = append(errs, errors.New("container id is required"))
	}
	if c.Width < 0 || c.Height < 0 || c.Depth < 0 {
		errs = append(errs, fmt.Errorf("lattice extent %dx%dx%d must not be negative", c.Width, c.Height, c.Depth))
	} else if n, ok := lattice.Count(c.Width, c.Height, c.Depth); !ok || n > MaxAtoms {
		errs = append(errs, fmt.Errorf("lattice extent %dx%dx%d exceeds %d atoms", c.Width, c.Height, c.Depth, MaxAtoms))
	}
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("screen size %dx%d must be positive", c.ScreenWidth, c.ScreenHeight))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale %d must be positive", c.Scale))
	}
	if c.Hz <= 0 {
		errs = append(errs, fmt.Errorf("hz %d must be positive", c.Hz))
	}
	switch c.Profile {
	case "", "cpu", "mem":
	default:
		errs = append(errs, fmt.Errorf("unknown profile %q (want cpu or mem)", c.Profile))
	}
	return errors.Join(errs...)
}
