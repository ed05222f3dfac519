// Package cli implements the mandel command-line interface.
//
// Commands:
//   - render:  sample a viewport and write the escape-time image as PNG
//   - point:   print the coordinate and escape value of a single pixel
//   - regions: list the named landmark viewports
//
// A job is described by a TOML file (--config), flags, or both; flags win.
// All commands accept --verbose (-v) for debug logging. The logger travels in
// the command context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version, set via ldflags
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the mandel CLI with os.Args.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stderr).ExecuteContext(ctx)
}

// newRootCmd builds the command tree. Log output goes to logw.
func newRootCmd(logw io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "mandel",
		Short:        "mandel renders escape-time images of the Mandelbrot set",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(logw, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("mandel %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newPointCmd())
	root.AddCommand(newRegionsCmd())

	return root
}
