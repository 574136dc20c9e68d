package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <release> <package>",
		Short: "Print the dependency pins a package would be installed with",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.app.Resolve(cmd.Context(), options(cmd), args[0], args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, pin := range res.Pins {
				_, _ = fmt.Fprintln(out, pin)
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "resolved %s in %d iterations\n", args[1], res.Iterations)
			return nil
		},
	}
}
