package view_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/WIPACrepo/cvmfs/internal/adapters/fs"
	"github.com/WIPACrepo/cvmfs/internal/core/domain"
	"github.com/WIPACrepo/cvmfs/internal/core/ports/mocks"
	"github.com/WIPACrepo/cvmfs/internal/engine/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var arch = domain.Arch{Platform: "linux", OS: "rocky8", Target: "x86_64_v2"}

// linkViewer projects a spec by linking bin/<name> to a fake store path.
type linkViewer struct {
	requests []domain.ViewRequest
	fail     string
}

func (v *linkViewer) ViewAdd(_ context.Context, req domain.ViewRequest) error {
	v.requests = append(v.requests, req)
	head := strings.Fields(req.Specs[0])[0]
	name, _, _ := strings.Cut(head, "@")
	if name == v.fail {
		return domain.ErrCommandFailed
	}
	link := filepath.Join(req.Dir, "bin", name)
	if _, err := os.Lstat(link); err == nil {
		return nil
	}
	return os.Symlink(filepath.Join("/opt/store", head), link)
}

func (v *linkViewer) ViewRemove(_ context.Context, dir string, name string) error {
	return os.Remove(filepath.Join(dir, "bin", name))
}

func newAssembler(t *testing.T) *view.Assembler {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	walker := fs.NewWalker()
	return view.NewAssembler(fs.NewFilesystem(walker), fs.NewHasher(walker), logger)
}

func newSROOT(t *testing.T) domain.SROOT {
	t.Helper()
	base := t.TempDir()
	return domain.SROOT{Base: base, Root: filepath.Join(base, "RHEL_8_x86_64_v2")}
}

func packages(lines ...string) *domain.PackageList {
	list := domain.NewPackageList()
	for _, l := range lines {
		list.Set(domain.ParsePackageSpec(l))
	}
	return list
}

func TestAssemble_WithCompiler(t *testing.T) {
	a := newAssembler(t)
	sroot := newSROOT(t)
	viewer := &linkViewer{}
	gcc := domain.CompilerHandle{Name: "gcc", Spec: "gcc@11.4.0", Arch: arch}

	fingerprint, err := a.Assemble(context.Background(), viewer, view.Request{
		SROOT:    sroot,
		Packages: packages("zlib@1.3 +pic", "boost@1.83.0 +python"),
		Compiler: gcc,
		Arch:     arch,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, fingerprint)

	dir := sroot.ViewDir()
	assert.Equal(t, []domain.ViewRequest{
		{Dir: dir, Specs: []string{"gcc@11.4.0 arch=linux-rocky8-x86_64_v2"}},
		{Dir: dir, Specs: []string{"binutils"}},
		{Dir: dir, Specs: []string{"boost@1.83.0%gcc@11.4.0 arch=linux-rocky8-x86_64_v2"}, WithDependencies: true},
		{Dir: dir, Specs: []string{"zlib@1.3%gcc@11.4.0 arch=linux-rocky8-x86_64_v2"}, WithDependencies: true},
	}, viewer.requests)

	target, err := os.Readlink(filepath.Join(sroot.BinDir(), "cc"))
	require.NoError(t, err)
	assert.Equal(t, "gcc", target)
}

func TestAssemble_KeepsExistingCCLink(t *testing.T) {
	a := newAssembler(t)
	sroot := newSROOT(t)
	require.NoError(t, os.MkdirAll(sroot.BinDir(), 0o750))
	require.NoError(t, os.Symlink("gcc-11", filepath.Join(sroot.BinDir(), "cc")))

	_, err := a.Assemble(context.Background(), &linkViewer{}, view.Request{
		SROOT:    sroot,
		Packages: packages(),
		Compiler: domain.CompilerHandle{Name: "gcc", Spec: "gcc@11.4.0", Arch: arch},
		Arch:     arch,
	})
	require.NoError(t, err)

	target, err := os.Readlink(filepath.Join(sroot.BinDir(), "cc"))
	require.NoError(t, err)
	assert.Equal(t, "gcc-11", target)
}

func TestAssemble_WithoutCompiler(t *testing.T) {
	a := newAssembler(t)
	sroot := newSROOT(t)
	viewer := &linkViewer{}

	_, err := a.Assemble(context.Background(), viewer, view.Request{
		SROOT:    sroot,
		Packages: packages("foo@1.0"),
		Arch:     arch,
	})
	require.NoError(t, err)

	require.Len(t, viewer.requests, 1)
	assert.Equal(t, []string{"foo@1.0 arch=linux-rocky8-x86_64_v2"}, viewer.requests[0].Specs)
	assert.NoFileExists(t, filepath.Join(sroot.BinDir(), "cc"))
	assert.DirExists(t, sroot.BinDir())
}

func TestAssemble_OrderIndependent(t *testing.T) {
	a := newAssembler(t)
	lines := []string{"foo@1.0", "bar@2.0", "baz@3.0 +shared"}
	reversed := []string{lines[2], lines[1], lines[0]}

	firstViewer, secondViewer := &linkViewer{}, &linkViewer{}
	first, err := a.Assemble(context.Background(), firstViewer, view.Request{
		SROOT: newSROOT(t), Packages: packages(lines...), Arch: arch,
	})
	require.NoError(t, err)
	second, err := a.Assemble(context.Background(), secondViewer, view.Request{
		SROOT: newSROOT(t), Packages: packages(reversed...), Arch: arch,
	})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, firstViewer.requests, 3)
}

func TestAssemble_IgnoresManagerCheckout(t *testing.T) {
	a := newAssembler(t)
	sroot := newSROOT(t)
	req := view.Request{SROOT: sroot, Packages: packages("foo@1.0"), Arch: arch}

	before, err := a.Assemble(context.Background(), &linkViewer{}, req)
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Join(sroot.ManagerRoot(), "bin"), 0o750))
	require.NoError(t, os.WriteFile(sroot.ManagerBin(), []byte("#!/bin/sh"), 0o600))

	after, err := a.Assemble(context.Background(), &linkViewer{}, req)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestAssemble_ViewAddFails(t *testing.T) {
	a := newAssembler(t)

	_, err := a.Assemble(context.Background(), &linkViewer{fail: "bar"}, view.Request{
		SROOT: newSROOT(t), Packages: packages("foo@1.0", "bar@2.0"), Arch: arch,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCommandFailed))
}

func TestRemove(t *testing.T) {
	a := newAssembler(t)
	sroot := newSROOT(t)
	viewer := &linkViewer{}

	_, err := a.Assemble(context.Background(), viewer, view.Request{
		SROOT: sroot, Packages: packages("foo@1.0"), Arch: arch,
	})
	require.NoError(t, err)
	require.NoError(t, a.Remove(context.Background(), viewer, sroot, "foo"))
	assert.NoFileExists(t, filepath.Join(sroot.BinDir(), "foo"))
}

func TestQualify(t *testing.T) {
	spec := domain.ParsePackageSpec("root@6.30.02 +python cxxstd=17")
	assert.Equal(t, "root@6.30.02 arch=linux-rocky8-x86_64_v2", view.Qualify(spec, domain.CompilerHandle{}, arch))
	assert.Equal(t,
		"root@6.30.02%gcc@11.4.0 arch=linux-rocky8-x86_64_v2",
		view.Qualify(spec, domain.CompilerHandle{Name: "gcc", Spec: "gcc@11.4.0"}, arch),
	)
}
