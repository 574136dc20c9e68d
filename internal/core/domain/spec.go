// Package domain holds the core types of the SROOT builder.
package domain

import "strings"

const (
	// VersionSeparator splits a package name from its version qualifier.
	VersionSeparator = "@"
	// CommentMarker starts a comment line in package-list files.
	CommentMarker = "#"
	// DependencyGlyph prefixes a dependency in a package spec.
	DependencyGlyph = "^"
	// CompilerGlyph prefixes a compiler constraint in a package spec.
	CompilerGlyph = "%"

	developQualifier = "develop"
)

// PackageSpec is one line of a package-list file.
// The spec string is passed through to the package manager untouched; only
// the leading name is interpreted.
type PackageSpec struct {
	Raw     string
	Name    string
	Version string
}

// ParsePackageSpec splits a spec line on the first version separator.
func ParsePackageSpec(line string) PackageSpec {
	line = strings.TrimSpace(line)
	name, rest, _ := strings.Cut(line, VersionSeparator)
	version := rest
	if i := strings.IndexFunc(rest, isSpecBoundary); i >= 0 {
		version = rest[:i]
	}
	return PackageSpec{
		Raw:     line,
		Name:    name,
		Version: version,
	}
}

func isSpecBoundary(r rune) bool {
	switch r {
	case ' ', '\t', '+', '~', '%', '^':
		return true
	default:
		return false
	}
}

// Fields returns the whitespace-separated tokens of the spec.
func (s PackageSpec) Fields() []string {
	return strings.Fields(s.Raw)
}

// Nodes splits the tokens of the spec into those of the root package and those from the
// first dependency on. Tokens after a dependency glyph constrain that dependency.
func (s PackageSpec) Nodes() (root, deps []string) {
	fields := s.Fields()
	for i, f := range fields {
		if strings.HasPrefix(f, DependencyGlyph) {
			return fields[:i], fields[i:]
		}
	}
	return fields, nil
}

// Head returns the first token of the spec (name and version qualifier).
func (s PackageSpec) Head() string {
	fields := s.Fields()
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// IsDevelop reports whether the spec tracks the latest source and must always be rebuilt.
func (s PackageSpec) IsDevelop() bool {
	return strings.HasPrefix(s.Version, developQualifier)
}

// Pin renders the spec as a dependency constraint for another package.
func (s PackageSpec) Pin() []string {
	fields := s.Fields()
	if len(fields) == 0 {
		return nil
	}
	fields[0] = DependencyGlyph + fields[0]
	return fields
}

// String returns the raw spec line.
func (s PackageSpec) String() string {
	return s.Raw
}
