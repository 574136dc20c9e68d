// Package commands implements the CLI commands for the sroot builder.
package commands

import (
	"context"
	"io"
	"os"
	"strconv"

	"github.com/WIPACrepo/cvmfs/internal/adapters/config"
	"github.com/WIPACrepo/cvmfs/internal/app"
	"github.com/WIPACrepo/cvmfs/internal/build"
	"github.com/spf13/cobra"
)

// jobsVariable supplies the default job count, as set by batch schedulers.
const jobsVariable = "CPUS"

// CLI represents the command line interface for sroot.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "sroot",
		Short:         "Build software release SROOTs with spack",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", config.DefaultFileName, "Path to configuration file")
	flags.Bool("json-logs", false, "Write log records as JSON")
	flags.String("src", "", "Directory holding the release templates")
	flags.String("dest", "", "Directory the releases are built into")
	flags.String("mirror", "", "Source mirror directory or URL")
	flags.String("spack-tag", "", "Package manager tag, overriding the release rules")
	flags.String("spack-target", "", "CPU target packages are built for")
	flags.String("compiler-target", "", "CPU target the compiler is built for")
	flags.IntP("jobs", "j", defaultJobs(), "Parallel build jobs (default from $"+jobsVariable+")")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		jsonLogs, err := cmd.Flags().GetBool("json-logs")
		if err != nil {
			return err
		}
		c.app.SetJSONLogs(jsonLogs)
		return nil
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newMetaCmd())
	rootCmd.AddCommand(c.newMirrorCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newReportCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// options collects the persistent flags into app options. An explicitly named
// configuration file must exist.
func options(cmd *cobra.Command) app.Options {
	flags := cmd.Flags()
	opts := app.Options{ConfigRequired: flags.Changed("config")}
	opts.ConfigPath, _ = flags.GetString("config")
	opts.Src, _ = flags.GetString("src")
	opts.Dest, _ = flags.GetString("dest")
	opts.Mirror, _ = flags.GetString("mirror")
	opts.ManagerTag, _ = flags.GetString("spack-tag")
	opts.Target, _ = flags.GetString("spack-target")
	opts.CompilerTarget, _ = flags.GetString("compiler-target")
	opts.Jobs, _ = flags.GetInt("jobs")
	return opts
}

func defaultJobs() int {
	n, err := strconv.Atoi(os.Getenv(jobsVariable))
	if err != nil || n < 1 {
		return 0
	}
	return n
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
}
