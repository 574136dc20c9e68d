package domain

import "strings"

// EnvironmentManifest describes a package manager environment covering a whole release.
type EnvironmentManifest struct {
	Name     string
	Specs    []string
	Arch     Arch
	Compiler CompilerHandle
}

// NewEnvironmentManifest builds a manifest from a package list.
// fftw's quad-precision variant is dropped on aarch64, where libquadmath is unavailable.
func NewEnvironmentManifest(name string, packages *PackageList, arch Arch, compiler CompilerHandle) EnvironmentManifest {
	m := EnvironmentManifest{Name: name, Arch: arch, Compiler: compiler}
	for n, spec := range packages.All() {
		raw := spec.Raw
		if arch.Target == "aarch64" && n == "fftw" {
			raw = strings.ReplaceAll(raw, ",quad", "")
		}
		m.Specs = append(m.Specs, raw)
	}
	return m
}

// Requirement renders the constraint every package in the environment must satisfy.
func (m EnvironmentManifest) Requirement() string {
	if m.Compiler.IsZero() {
		return m.Arch.Constraint()
	}
	return m.Compiler.Constraint() + " " + m.Arch.Constraint()
}
