package ports

import (
	"context"

	"github.com/WIPACrepo/cvmfs/internal/core/domain"
)

// CommandRunner invokes external processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Output runs cmd and captures its exit code and output.
	// A non-zero exit is reported in the result, not as an error.
	Output(ctx context.Context, cmd domain.Command) (domain.CommandResult, error)

	// Run runs cmd and returns domain.ErrCommandFailed on a non-zero exit.
	Run(ctx context.Context, cmd domain.Command) error

	// RunScript runs a bash session in which the script's setup applies to every line.
	RunScript(ctx context.Context, script domain.Script) error
}
