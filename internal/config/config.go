// Package config loads render jobs from TOML files and validates them before
// they reach the escape-time core.
//
// A job file looks like:
//
//	region    = "seahorse-valley"
//	width     = 1920
//	height    = 1080
//	max_iters = 255
//	palette   = "hsv"
//	output    = "seahorse.png"
//
// An explicit viewport can be given instead of a region:
//
//	upper_left  = [-2.0, 1.0]   # [re, im]
//	lower_right = [1.0, -1.0]
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	mandel "github.com/marben/mandel_field"
	merr "github.com/marben/mandel_field/internal/errors"
	"github.com/marben/mandel_field/render"
)

const (
	DefaultWidth    = 1920
	DefaultHeight   = 1080
	DefaultMaxIters = 255
	DefaultRegion   = "full-set"
	DefaultOutput   = "mandel.png"
)

// Config describes one render job.
type Config struct {
	Region     string    `toml:"region"`
	UpperLeft  []float64 `toml:"upper_left"`
	LowerRight []float64 `toml:"lower_right"`
	Width      int       `toml:"width"`
	Height     int       `toml:"height"`
	MaxIters   int       `toml:"max_iters"`
	Palette    string    `toml:"palette"`
	Output     string    `toml:"output"`
}

// Default returns a job rendering the whole set in full HD.
func Default() Config {
	return Config{
		Region:   DefaultRegion,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		MaxIters: DefaultMaxIters,
		Palette:  string(render.Gray),
		Output:   DefaultOutput,
	}
}

// Load reads the TOML file at path on top of Default. Keys missing from the
// file keep their default values. The result is not validated.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, merr.Wrap(merr.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, merr.New(merr.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// Validate rejects jobs the core would not accept or could not render.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return merr.New(merr.ErrCodeInvalidResolution, "width and height must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.MaxIters <= 0 {
		return merr.New(merr.ErrCodeInvalidConfig, "max_iters must be positive, got %d", c.MaxIters)
	}
	if _, err := render.ParsePalette(c.Palette); err != nil {
		return merr.Wrap(merr.ErrCodeInvalidConfig, err, "palette")
	}
	if c.Output == "" {
		return merr.New(merr.ErrCodeInvalidConfig, "output path is empty")
	}
	if _, err := c.Viewport(); err != nil {
		return err
	}
	return nil
}

// Viewport resolves the job's rectangle. Explicit corners win over Region.
func (c Config) Viewport() (mandel.Viewport, error) {
	switch {
	case c.UpperLeft == nil && c.LowerRight == nil:
		v, ok := mandel.Landmark(c.Region)
		if !ok {
			return mandel.Viewport{}, merr.New(merr.ErrCodeNotFound, "unknown region %q", c.Region)
		}
		return v, nil
	case len(c.UpperLeft) != 2 || len(c.LowerRight) != 2:
		return mandel.Viewport{}, merr.New(merr.ErrCodeInvalidViewport,
			"upper_left and lower_right must both be [re, im] pairs, got %v and %v", c.UpperLeft, c.LowerRight)
	}
	return mandel.Viewport{
		UpperLeft:  complex(c.UpperLeft[0], c.UpperLeft[1]),
		LowerRight: complex(c.LowerRight[0], c.LowerRight[1]),
	}, nil
}
