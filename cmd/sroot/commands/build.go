package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build <release>...",
		Short: "Build the SROOT of each release",
		Long: "Build the SROOT of each release for the host architecture. A release ending in " +
			"-metaproject builds the metaprojects of its base release instead.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Build(cmd.Context(), options(cmd), args)
		},
	}
}
