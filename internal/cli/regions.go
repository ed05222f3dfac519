package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	mandel "github.com/marben/mandel_field"
)

func newRegionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List landmark viewports usable with --region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tUPPER LEFT\tLOWER RIGHT")
			for _, name := range mandel.LandmarkNames() {
				v, _ := mandel.Landmark(name)
				fmt.Fprintf(tw, "%s\t%v\t%v\n", name, v.UpperLeft, v.LowerRight)
			}
			return tw.Flush()
		},
	}
}
