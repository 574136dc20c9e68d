// Package main is the entry point for the sroot builder.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/WIPACrepo/cvmfs/cmd/sroot/commands"
	"github.com/WIPACrepo/cvmfs/internal/app"
	_ "github.com/WIPACrepo/cvmfs/internal/wiring"
	"github.com/grindlemire/graft"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)

	// 3. Execution
	err = cli.Execute(ctx)
	err = errors.Join(err, components.Telemetry.Close())
	if err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
