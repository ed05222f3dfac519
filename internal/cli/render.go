package cli

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/marben/mandel_field/internal/config"
	"github.com/marben/mandel_field/render"
)

func newRenderCmd() *cobra.Command {
	var job jobFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a viewport to a PNG image",
		Long: `Render samples the viewport on a width x height grid, computes the escape-time
byte of every pixel and writes the result as PNG.

With the gray palette the pixel value is the escape byte itself: early escapes
are bright, late escapes dark, points that never escaped black.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := job.resolve(cmd)
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), cfg)
		},
	}

	job.bind(cmd)
	cmd.Flags().StringVarP(&job.cfg.Palette, "palette", "p", job.cfg.Palette, "palette: gray (default), hsv")
	cmd.Flags().StringVarP(&job.cfg.Output, "output", "o", job.cfg.Output, "output PNG file")

	return cmd
}

func runRender(ctx context.Context, cfg config.Config) error {
	logger := loggerFromContext(ctx)

	v, err := cfg.Viewport()
	if err != nil {
		return err
	}
	fm, err := v.FieldMap(cfg.Width, cfg.Height)
	if err != nil {
		return fmt.Errorf("field map: %w", err)
	}
	palette, err := render.ParsePalette(cfg.Palette)
	if err != nil {
		return err
	}

	logger.Info("Rendering", "upper_left", v.UpperLeft, "lower_right", v.LowerRight,
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height), "max_iters", cfg.MaxIters)
	if cfg.MaxIters > 255 {
		logger.Warn("max_iters above 255: escape values wrap modulo 256", "max_iters", cfg.MaxIters)
	}

	step := max(cfg.Height/10, 1)
	renderer := render.Renderer{
		Palette: palette,
		OnRow: func(y, rows int) {
			if (y+1)%step == 0 || y+1 == rows {
				logger.Debug("Rendered rows", "done", y+1, "of", rows)
			}
		},
	}

	prog := newProgress(logger)
	img, err := renderer.Render(ctx, fm, cfg.MaxIters)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	prog.done(fmt.Sprintf("Rendered %d pixels", fm.Limit()))

	if err := writePNG(cfg.Output, img); err != nil {
		return err
	}
	logger.Infof("Saved %s", cfg.Output)
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode PNG: %w", err)
	}
	return f.Close()
}
