package resolver_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/WIPACrepo/cvmfs/internal/core/domain"
	"github.com/WIPACrepo/cvmfs/internal/core/ports/mocks"
	"github.com/WIPACrepo/cvmfs/internal/engine/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func packageList(lines ...string) *domain.PackageList {
	list := domain.NewPackageList()
	for _, line := range lines {
		list.Set(domain.ParsePackageSpec(line))
	}
	return list
}

func TestResolve_Converges(t *testing.T) {
	ctrl := gomock.NewController(t)
	explainer := mocks.NewMockExplainer(ctrl)
	desired := packageList("A@1.0", "B@2.0")
	spec, _ := desired.Get("A")

	var seen [][]string
	explainer.EXPECT().Explain(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.InstallRequest) (domain.Diagnostic, error) {
			assert.Equal(t, spec, req.Spec)
			seen = append(seen, req.Pins)
			// zlib is neither desired nor installed and is never pinned.
			return domain.Success("A@1.0\n    ^B@2.0\n    ^zlib@1.3\n", "B", "zlib"), nil
		}).Times(3)

	m := resolver.NewMachine(explainer, desired, domain.NewInstalledIndex())

	first, err := m.Resolve(context.Background(), resolver.NewState(spec))
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, first.Dependencies.Sorted())
	assert.Equal(t, []string{"^B@2.0"}, first.Pins)
	assert.Equal(t, 2, first.Iterations)

	// Resolving again from the fixed point stays there.
	second, err := m.Resolve(context.Background(), resolver.NewState(spec, first.Dependencies.Sorted()...))
	require.NoError(t, err)
	assert.True(t, first.Dependencies.Equal(second.Dependencies))
	assert.Equal(t, 1, second.Iterations)

	assert.Equal(t, [][]string{nil, {"^B@2.0"}, {"^B@2.0"}}, seen)
}

func TestResolve_Bound(t *testing.T) {
	ctrl := gomock.NewController(t)
	explainer := mocks.NewMockExplainer(ctrl)

	lines := []string{"A@1.0"}
	for i := range resolver.MaxIterations + 10 {
		lines = append(lines, fmt.Sprintf("dep%d@1.0", i))
	}
	desired := packageList(lines...)
	spec, _ := desired.Get("A")

	calls := 0
	explainer.EXPECT().Explain(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.InstallRequest) (domain.Diagnostic, error) {
			name := fmt.Sprintf("dep%d", calls)
			calls++
			return domain.MissingDeps("missing dependency: "+name, name), nil
		}).Times(resolver.MaxIterations)

	m := resolver.NewMachine(explainer, desired, domain.NewInstalledIndex())

	_, err := m.Resolve(context.Background(), resolver.NewState(spec))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrResolverBoundExceeded)
	assert.Equal(t, resolver.MaxIterations, calls)
}

func TestResolve_ConflictRemovesPin(t *testing.T) {
	ctrl := gomock.NewController(t)
	explainer := mocks.NewMockExplainer(ctrl)
	desired := packageList("X@1.0", "Y@2.0", "Z@3.0")
	spec, _ := desired.Get("X")

	gomock.InOrder(
		explainer.EXPECT().Explain(gomock.Any(), domain.InstallRequest{Spec: spec, Pins: []string{"^Y@2.0"}}).
			Return(domain.ConflictingDeps("X depend on Y or Z", "Y", "Z"), nil),
		explainer.EXPECT().Explain(gomock.Any(), domain.InstallRequest{Spec: spec}).
			Return(domain.Success("X@1.0\n"), nil),
	)

	m := resolver.NewMachine(explainer, desired, domain.NewInstalledIndex())

	res, err := m.Resolve(context.Background(), resolver.NewState(spec, "Y"))
	require.NoError(t, err)
	assert.Empty(t, res.Dependencies)
	assert.Empty(t, res.Pins)
	assert.Equal(t, 2, res.Iterations)
}

func TestResolve_Failures(t *testing.T) {
	tests := []struct {
		name    string
		initial []string
		diag    domain.Diagnostic
		wantErr error
	}{
		{
			name:    "conflict on pins never added",
			diag:    domain.ConflictingDeps("X depend on Y or Z", "Y", "Z"),
			wantErr: domain.ErrResolverInconsistent,
		},
		{
			name:    "missing dependency that cannot be pinned",
			diag:    domain.MissingDeps("missing dependency: libunknown", "libunknown"),
			wantErr: domain.ErrResolverInconsistent,
		},
		{
			name:    "missing dependency already pinned",
			initial: []string{"Y"},
			diag:    domain.MissingDeps("missing dependency: Y", "Y"),
			wantErr: domain.ErrResolverInconsistent,
		},
		{
			name:    "unrecognized output",
			diag:    domain.Unrecognized("==> Error: the solver exploded"),
			wantErr: domain.ErrResolverUnrecognized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			explainer := mocks.NewMockExplainer(ctrl)
			desired := packageList("X@1.0", "Y@2.0", "Z@3.0")
			spec, _ := desired.Get("X")

			explainer.EXPECT().Explain(gomock.Any(), gomock.Any()).Return(tt.diag, nil)

			m := resolver.NewMachine(explainer, desired, domain.NewInstalledIndex())
			_, err := m.Resolve(context.Background(), resolver.NewState(spec, tt.initial...))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestResolve_ExplainError(t *testing.T) {
	ctrl := gomock.NewController(t)
	explainer := mocks.NewMockExplainer(ctrl)
	desired := packageList("X@1.0")
	spec, _ := desired.Get("X")
	startErr := errors.New("spack: no such file or directory")

	explainer.EXPECT().Explain(gomock.Any(), gomock.Any()).Return(domain.Diagnostic{}, startErr)

	m := resolver.NewMachine(explainer, desired, domain.NewInstalledIndex())
	_, err := m.Resolve(context.Background(), resolver.NewState(spec))
	require.ErrorIs(t, err, startErr)
}

func TestMachine_Step(t *testing.T) {
	ctrl := gomock.NewController(t)
	explainer := mocks.NewMockExplainer(ctrl)
	desired := packageList("foo@1.0 ^openblas threads=openmp", "bar@2.0 +shared")
	installed := domain.NewInstalledIndex(domain.InstalledPackage{Name: "zlib", Identifier: "zlib/abcdefg"})
	spec, _ := desired.Get("foo")

	explainer.EXPECT().
		Explain(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.InstallRequest) (domain.Diagnostic, error) {
			assert.Equal(t,
				[]string{"foo@1.0", "%gcc@11.4.0", "^openblas", "threads=openmp", "^bar@2.0", "+shared"},
				req.Args())
			return domain.Success("tree", "foo", "bar", "zlib"), nil
		})

	m := resolver.NewMachine(explainer, desired, installed, "%gcc@11.4.0")
	start := resolver.NewState(spec, "bar")

	next, err := m.Step(context.Background(), start)
	require.NoError(t, err)

	assert.Equal(t, 1, next.Iteration)
	assert.False(t, next.Done)
	assert.Equal(t, []string{"bar", "zlib"}, next.Dependencies.Sorted())
	assert.Equal(t, []string{"bar"}, start.Dependencies.Sorted(), "input state must not change")
	assert.Equal(t, []string{"^bar@2.0", "+shared", "^zlib/abcdefg"}, m.Pins(next.Dependencies))
}
