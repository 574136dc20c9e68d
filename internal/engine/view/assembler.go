// Package view projects installed packages into an SROOT's flattened symlink tree.
package view

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/WIPACrepo/cvmfs/internal/core/domain"
	"github.com/WIPACrepo/cvmfs/internal/core/ports"
	"go.trai.ch/zerr"
)

// BinutilsPackage is projected next to a bootstrapped compiler.
const BinutilsPackage = "binutils"

// ccLink is the generic C compiler name linked inside the view's bin directory.
const ccLink = "cc"

// compilerDrivers maps compiler packages to their C driver executable.
var compilerDrivers = map[string]string{
	"gcc":   "gcc",
	"llvm":  "clang",
	"nvhpc": "nvc",
}

// Request describes one view assembly.
type Request struct {
	SROOT    domain.SROOT
	Packages *domain.PackageList
	Compiler domain.CompilerHandle
	Arch     domain.Arch
}

// Assembler builds the view of an SROOT.
type Assembler struct {
	fs     ports.Filesystem
	hasher ports.ViewHasher
	logger ports.Logger
}

// NewAssembler creates an Assembler.
func NewAssembler(fs ports.Filesystem, hasher ports.ViewHasher, logger ports.Logger) *Assembler {
	return &Assembler{fs: fs, hasher: hasher, logger: logger}
}

// Assemble projects the compiler and every package of req into the view and returns the
// fingerprint of the result. The manager checkout and metaprojects are not part of the
// fingerprint.
func (a *Assembler) Assemble(ctx context.Context, viewer ports.Viewer, req Request) (string, error) {
	dir := req.SROOT.ViewDir()
	if err := a.fs.MkdirAll(req.SROOT.BinDir()); err != nil {
		return "", err
	}

	if !req.Compiler.IsZero() {
		if err := a.projectCompiler(ctx, viewer, dir, req); err != nil {
			return "", err
		}
	}

	for _, name := range slices.Sorted(slices.Values(req.Packages.Names())) {
		spec, _ := req.Packages.Get(name)
		a.logger.Info(fmt.Sprintf("adding %s to view", name))
		err := viewer.ViewAdd(ctx, domain.ViewRequest{
			Dir:              dir,
			Specs:            []string{Qualify(spec, req.Compiler, req.Arch)},
			WithDependencies: true,
		})
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to add package to view"), "package", name)
		}
	}

	return a.hasher.Fingerprint(dir, domain.ManagerDir, domain.MetaprojectDir)
}

func (a *Assembler) projectCompiler(ctx context.Context, viewer ports.Viewer, dir string, req Request) error {
	for _, spec := range []string{req.Compiler.WithArch(), BinutilsPackage} {
		if err := viewer.ViewAdd(ctx, domain.ViewRequest{Dir: dir, Specs: []string{spec}}); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to add compiler to view"), "spec", spec)
		}
	}

	driver, ok := compilerDrivers[req.Compiler.Name]
	if !ok {
		return nil
	}
	link := filepath.Join(req.SROOT.BinDir(), ccLink)
	if a.fs.Lexists(link) {
		return nil
	}
	return a.fs.Symlink(driver, link)
}

// Qualify renders the view selector for spec: its head, the compiler constraint and the
// architecture, so the right build is chosen when several exist.
func Qualify(spec domain.PackageSpec, compiler domain.CompilerHandle, arch domain.Arch) string {
	return spec.Head() + compiler.Constraint() + " " + arch.Constraint()
}

// Remove takes a package out of the view.
func (a *Assembler) Remove(ctx context.Context, viewer ports.Viewer, sroot domain.SROOT, name string) error {
	if err := viewer.ViewRemove(ctx, sroot.ViewDir(), name); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove package from view"), "package", name)
	}
	return nil
}
