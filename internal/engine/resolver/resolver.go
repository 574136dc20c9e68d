// Package resolver finds the minimal set of dependency pins a package needs to concretize
// against the release's curated versions.
//
// The package manager's solver is treated as an oracle: the Machine asks it to explain a
// spec under the current pins, reads back which dependencies it named, and tightens or
// loosens the pin set until an explain call names exactly the pinned dependencies.
package resolver

import (
	"context"
	"slices"

	"github.com/WIPACrepo/cvmfs/internal/core/domain"
	"github.com/WIPACrepo/cvmfs/internal/core/ports"
	"go.trai.ch/zerr"
)

// MaxIterations bounds the number of explain calls for one package.
const MaxIterations = 50

// State is the resolver state between two explain calls.
type State struct {
	Spec         domain.PackageSpec
	Dependencies domain.DependencySet
	// Iteration counts the explain calls made so far.
	Iteration int
	// Done is set once an explain call reproduced Dependencies exactly.
	Done bool
	// Last is the most recent diagnostic.
	Last domain.Diagnostic
}

// NewState starts a resolution of spec from the given dependencies.
func NewState(spec domain.PackageSpec, initial ...string) State {
	return State{Spec: spec, Dependencies: domain.NewDependencySet(initial...)}
}

// Result is the outcome of a resolution.
type Result struct {
	Dependencies domain.DependencySet
	// Pins are the rendered dependency constraints, in dependency-name order.
	Pins       []string
	Iterations int
}

// Machine resolves packages against a desired package list and an installed snapshot.
type Machine struct {
	explainer   ports.Explainer
	desired     *domain.PackageList
	installed   *domain.InstalledIndex
	constraints []string
}

// NewMachine creates a Machine. constraints bind to the root of every explained spec,
// e.g. the required compiler.
func NewMachine(
	explainer ports.Explainer,
	desired *domain.PackageList,
	installed *domain.InstalledIndex,
	constraints ...string,
) *Machine {
	return &Machine{
		explainer:   explainer,
		desired:     desired,
		installed:   installed,
		constraints: constraints,
	}
}

// known reports whether name can be pinned.
func (m *Machine) known(name string) bool {
	return m.desired.Has(name) || m.installed.Has(name)
}

// Pins renders deps as dependency constraints. A desired spec is pinned as written,
// an installed-only package by its identifier.
func (m *Machine) Pins(deps domain.DependencySet) []string {
	var pins []string
	for _, name := range deps.Sorted() {
		if spec, ok := m.desired.Get(name); ok {
			pins = append(pins, spec.Pin()...)
			continue
		}
		if pkg, ok := m.installed.Lookup(name); ok {
			pins = append(pins, domain.DependencyGlyph+pkg.Identifier)
		}
	}
	return pins
}

// Step runs one explain call and returns the next state. The input state is not modified.
func (m *Machine) Step(ctx context.Context, state State) (State, error) {
	diag, err := m.explainer.Explain(ctx, domain.InstallRequest{
		Spec:        state.Spec,
		Constraints: slices.Clone(m.constraints),
		Pins:        m.Pins(state.Dependencies),
	})
	if err != nil {
		return state, zerr.With(zerr.Wrap(err, "failed to explain spec"), "package", state.Spec.Name)
	}

	next := state
	next.Iteration++
	next.Last = diag

	switch diag.Kind {
	case domain.DiagnosticSuccess:
		deps := domain.NewDependencySet()
		for _, name := range diag.Deps {
			if name != state.Spec.Name && m.known(name) {
				deps.Add(name)
			}
		}
		next.Done = deps.Equal(state.Dependencies)
		next.Dependencies = deps
		return next, nil

	case domain.DiagnosticMissingDeps:
		deps := state.Dependencies.Clone()
		added := false
		for _, name := range diag.Deps {
			if name != state.Spec.Name && m.known(name) && deps.Add(name) {
				added = true
			}
		}
		if !added {
			return next, m.fail(domain.ErrResolverInconsistent, "solver named no dependency that can be pinned", next)
		}
		next.Dependencies = deps
		return next, nil

	case domain.DiagnosticConflictingDeps:
		deps := state.Dependencies.Clone()
		removed := false
		for _, name := range diag.Deps {
			if deps.Remove(name) {
				removed = true
			}
		}
		if !removed {
			return next, m.fail(domain.ErrResolverInconsistent, "solver rejected pins that were never added", next)
		}
		next.Dependencies = deps
		return next, nil

	default:
		return next, m.fail(domain.ErrResolverUnrecognized, "cannot interpret solver output", next)
	}
}

// Resolve steps from state until a fixed point, failing after MaxIterations explain calls.
func (m *Machine) Resolve(ctx context.Context, state State) (Result, error) {
	for state.Iteration < MaxIterations {
		next, err := m.Step(ctx, state)
		if err != nil {
			return Result{}, err
		}
		state = next
		if state.Done {
			return Result{
				Dependencies: state.Dependencies,
				Pins:         m.Pins(state.Dependencies),
				Iterations:   state.Iteration,
			}, nil
		}
	}
	return Result{}, m.fail(domain.ErrResolverBoundExceeded, "too many solver iterations", state)
}

func (m *Machine) fail(sentinel error, msg string, state State) error {
	err := zerr.With(zerr.Wrap(sentinel, msg), "package", state.Spec.Name)
	err = zerr.With(err, "iterations", state.Iteration)
	err = zerr.With(err, "dependencies", state.Dependencies.Sorted())
	return zerr.With(err, "transcript", state.Last.Raw)
}
