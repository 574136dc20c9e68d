package compiler_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/WIPACrepo/cvmfs/internal/adapters/config"
	"github.com/WIPACrepo/cvmfs/internal/adapters/fs"
	"github.com/WIPACrepo/cvmfs/internal/core/domain"
	"github.com/WIPACrepo/cvmfs/internal/core/ports/mocks"
	"github.com/WIPACrepo/cvmfs/internal/engine/compiler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var compilerArch = domain.Arch{Platform: "linux", OS: "rocky8", Target: "x86_64_v2"}

type fixture struct {
	pm     *mocks.MockPackageManager
	mirror *mocks.MockMirror
	boot   *compiler.Bootstrapper
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	return &fixture{
		pm:     mocks.NewMockPackageManager(ctrl),
		mirror: mocks.NewMockMirror(ctrl),
		boot:   compiler.NewBootstrapper(fs.NewFilesystem(fs.NewWalker()), config.NewPackageListLoader(), logger),
	}
}

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "py3-v4.4.0-compiler")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func request(path string) compiler.Request {
	return compiler.Request{
		ListPath: path,
		Families: []string{"gcc", "llvm", "nvhpc"},
		Arch:     compilerArch,
		Jobs:     8,
	}
}

func TestBootstrap_SkipsWithoutList(t *testing.T) {
	f := newFixture(t)
	f.pm.EXPECT().FindCompilers(gomock.Any()).Return(nil)

	handle, err := f.boot.Bootstrap(context.Background(), f.pm, f.mirror, request(filepath.Join(t.TempDir(), "missing")))
	require.NoError(t, err)
	assert.True(t, handle.IsZero())
}

func TestBootstrap_FindCompilersFails(t *testing.T) {
	f := newFixture(t)
	findErr := errors.New("spack exploded")
	f.pm.EXPECT().FindCompilers(gomock.Any()).Return(findErr)

	_, err := f.boot.Bootstrap(context.Background(), f.pm, f.mirror, request(""))
	require.ErrorIs(t, err, findErr)
}

func TestBootstrap_InstallsAndRegisters(t *testing.T) {
	f := newFixture(t)
	path := writeList(t, "# toolchain\ngmp@6.2.1\ngcc@11.4.0 languages=c,c++,fortran\n")
	prefix := t.TempDir()

	gomock.InOrder(
		f.pm.EXPECT().FindCompilers(gomock.Any()).Return(nil),
		f.pm.EXPECT().FindInstalled(gomock.Any()).Return([]domain.InstalledRecord{
			{Name: "gcc", Version: "11.4.0", Arch: compilerArch.WithTarget("x86_64")},
			{Name: "gmp", Version: "6.2.1", Arch: compilerArch},
		}, nil),
		f.mirror.EXPECT().Fetch(gomock.Any(), domain.ParsePackageSpec("gmp@6.2.1")),
		f.pm.EXPECT().Install(gomock.Any(), domain.InstallRequest{
			Spec:        domain.ParsePackageSpec("gmp@6.2.1"),
			Constraints: []string{"target=x86_64_v2"},
			Jobs:        8,
		}).Return(nil),
		f.mirror.EXPECT().Fetch(gomock.Any(), domain.ParsePackageSpec("gcc@11.4.0 languages=c,c++,fortran")),
		f.pm.EXPECT().Install(gomock.Any(), domain.InstallRequest{
			Spec:        domain.ParsePackageSpec("gcc@11.4.0 languages=c,c++,fortran"),
			Constraints: []string{"target=x86_64_v2"},
			Jobs:        8,
		}).Return(nil),
		f.pm.EXPECT().Compilers(gomock.Any()).Return([]domain.RegisteredCompiler{
			{Spec: "gcc@8.5.0", OS: "rocky8"},
			{Spec: "gcc@11.4.0", OS: "centos7"},
		}, nil),
		f.pm.EXPECT().Location(gomock.Any(), "gcc@11.4.0 arch=linux-rocky8-x86_64_v2").Return(prefix, nil),
		f.pm.EXPECT().AddCompiler(gomock.Any(), prefix).Return(nil),
	)

	handle, err := f.boot.Bootstrap(context.Background(), f.pm, f.mirror, request(path))
	require.NoError(t, err)
	assert.Equal(t, domain.CompilerHandle{Name: "gcc", Spec: "gcc@11.4.0", Arch: compilerArch}, handle)
	assert.Equal(t, "%gcc@11.4.0", handle.Constraint())
}

func TestBootstrap_AlreadyInstalledAndRegistered(t *testing.T) {
	f := newFixture(t)
	path := writeList(t, "llvm@17.0.6\n")

	f.pm.EXPECT().FindCompilers(gomock.Any()).Return(nil)
	f.pm.EXPECT().FindInstalled(gomock.Any()).Return([]domain.InstalledRecord{
		{Name: "llvm", Version: "17.0.6", Hash: "abc", Arch: compilerArch},
	}, nil)
	f.pm.EXPECT().Compilers(gomock.Any()).Return([]domain.RegisteredCompiler{
		{Spec: "llvm@17.0.6", OS: "rocky8"},
	}, nil)

	handle, err := f.boot.Bootstrap(context.Background(), f.pm, f.mirror, request(path))
	require.NoError(t, err)
	assert.Equal(t, "llvm@17.0.6", handle.Spec)
}

func TestBootstrap_NoCompilerFamily(t *testing.T) {
	f := newFixture(t)
	path := writeList(t, "cmake@3.27.7\n")
	f.pm.EXPECT().FindCompilers(gomock.Any()).Return(nil)

	_, err := f.boot.Bootstrap(context.Background(), f.pm, f.mirror, request(path))
	require.ErrorIs(t, err, domain.ErrCompilerNotFound)
}

func TestBootstrap_MissingLocation(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{name: "empty", prefix: ""},
		{name: "not on disk", prefix: "/nonexistent/gcc-11.4.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			path := writeList(t, "gcc@11.4.0\n")

			f.pm.EXPECT().FindCompilers(gomock.Any()).Return(nil)
			f.pm.EXPECT().FindInstalled(gomock.Any()).Return([]domain.InstalledRecord{
				{Name: "gcc", Arch: compilerArch},
			}, nil)
			f.pm.EXPECT().Compilers(gomock.Any()).Return(nil, nil)
			f.pm.EXPECT().Location(gomock.Any(), gomock.Any()).Return(tt.prefix, nil)

			_, err := f.boot.Bootstrap(context.Background(), f.pm, f.mirror, request(path))
			require.ErrorIs(t, err, domain.ErrCompilerLocation)
		})
	}
}

func TestBootstrap_InstallFailure(t *testing.T) {
	f := newFixture(t)
	path := writeList(t, "gcc@11.4.0\n")

	f.pm.EXPECT().FindCompilers(gomock.Any()).Return(nil)
	f.pm.EXPECT().FindInstalled(gomock.Any()).Return(nil, nil)
	f.mirror.EXPECT().Fetch(gomock.Any(), gomock.Any())
	f.pm.EXPECT().Install(gomock.Any(), gomock.Any()).Return(domain.ErrCommandFailed)

	_, err := f.boot.Bootstrap(context.Background(), f.pm, f.mirror, request(path))
	require.ErrorIs(t, err, domain.ErrCommandFailed)
}

func TestIdentify(t *testing.T) {
	families := []string{"gcc", "llvm", "nvhpc"}

	tests := []struct {
		name     string
		lines    []string
		wantName string
		wantSpec string
		wantOK   bool
	}{
		{name: "single gcc", lines: []string{"gcc@11.4.0 +binutils"}, wantName: "gcc", wantSpec: "gcc@11.4.0", wantOK: true},
		{name: "dependency first", lines: []string{"mpfr@4.2.0", "nvhpc@23.9"}, wantName: "nvhpc", wantSpec: "nvhpc@23.9", wantOK: true},
		{name: "last match wins", lines: []string{"gcc@9.5.0", "llvm@17.0.6"}, wantName: "llvm", wantSpec: "llvm@17.0.6", wantOK: true},
		{name: "no family", lines: []string{"cmake@3.27.7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := domain.NewPackageList()
			for _, l := range tt.lines {
				list.Set(domain.ParsePackageSpec(l))
			}
			handle, ok := compiler.Identify(list, families)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantName, handle.Name)
			assert.Equal(t, tt.wantSpec, handle.Spec)
		})
	}
}
