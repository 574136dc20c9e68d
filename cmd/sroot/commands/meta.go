package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newMetaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meta <release>-metaproject...",
		Short: "Build the metaprojects of a release",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			checkout, _ := cmd.Flags().GetBool("checkout")
			return c.app.Meta(cmd.Context(), options(cmd), args, checkout)
		},
	}
	cmd.Flags().Bool("checkout", false, "Only refresh the metaproject sources")
	return cmd
}
