package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	mandel "github.com/marben/mandel_field"
	merr "github.com/marben/mandel_field/internal/errors"
)

func newPointCmd() *cobra.Command {
	var job jobFlags

	cmd := &cobra.Command{
		Use:   "point INDEX",
		Short: "Print the coordinate and escape value of one pixel",
		Long: `Point maps a row-major pixel index of the job's grid to its complex
coordinate and prints the escape-time byte for it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return merr.Wrap(merr.ErrCodeInvalidInput, err, "pixel index %q", args[0])
			}

			cfg, err := job.resolve(cmd)
			if err != nil {
				return err
			}
			v, err := cfg.Viewport()
			if err != nil {
				return err
			}
			fm, err := v.FieldMap(cfg.Width, cfg.Height)
			if err != nil {
				return fmt.Errorf("field map: %w", err)
			}

			c, err := fm.Point(index)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("Point", "index", index, "column", index%cfg.Width, "row", index/cfg.Width)

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%v\t%d\n", index, c, mandel.EscapeTime(c, cfg.MaxIters))
			return err
		},
	}

	job.bind(cmd)
	return cmd
}
