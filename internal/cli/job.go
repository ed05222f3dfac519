package cli

import (
	"github.com/spf13/cobra"

	"github.com/marben/mandel_field/internal/config"
)

// jobFlags are the flags shared by every command that samples a viewport.
type jobFlags struct {
	configPath string
	cfg        config.Config
}

func (f *jobFlags) bind(cmd *cobra.Command) {
	f.cfg = config.Default()
	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "TOML job file")
	fl.StringVarP(&f.cfg.Region, "region", "r", f.cfg.Region, "landmark viewport (see 'mandel regions')")
	fl.Float64SliceVar(&f.cfg.UpperLeft, "upper-left", nil, "upper-left corner as re,im (overrides --region)")
	fl.Float64SliceVar(&f.cfg.LowerRight, "lower-right", nil, "lower-right corner as re,im (overrides --region)")
	fl.IntVar(&f.cfg.Width, "width", f.cfg.Width, "pixels along the real axis")
	fl.IntVar(&f.cfg.Height, "height", f.cfg.Height, "pixels along the imaginary axis")
	fl.IntVar(&f.cfg.MaxIters, "max-iters", f.cfg.MaxIters, "iteration bound; values above 255 wrap")
}

// resolve loads the job file, if any, lays explicitly set flags over it and
// validates the result.
func (f *jobFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := f.cfg
	if f.configPath != "" {
		fileCfg, err := config.Load(f.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = overlay(cmd, fileCfg, f.cfg)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// overlay copies every flag the user set from flags onto base.
func overlay(cmd *cobra.Command, base, flags config.Config) config.Config {
	changed := cmd.Flags().Changed
	if changed("region") {
		base.Region = flags.Region
		base.UpperLeft, base.LowerRight = nil, nil
	}
	if changed("upper-left") {
		base.UpperLeft = flags.UpperLeft
	}
	if changed("lower-right") {
		base.LowerRight = flags.LowerRight
	}
	if changed("width") {
		base.Width = flags.Width
	}
	if changed("height") {
		base.Height = flags.Height
	}
	if changed("max-iters") {
		base.MaxIters = flags.MaxIters
	}
	if changed("palette") {
		base.Palette = flags.Palette
	}
	if changed("output") {
		base.Output = flags.Output
	}
	return base
}
