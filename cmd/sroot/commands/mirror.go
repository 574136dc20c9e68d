package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newMirrorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mirror <release>...",
		Short: "Download the sources of each release into the mirror",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Mirror(cmd.Context(), options(cmd), args)
		},
	}
}
