package domain

import (
	"maps"
	"slices"
	"strings"
)

// IdentifierSeparator joins a package name and its install hash.
const IdentifierSeparator = "/"

// InstalledPackage is one installed build of a package under the active compiler.
type InstalledPackage struct {
	Name       string
	Identifier string
}

// Hash returns the part of the identifier after the name, if any.
func (p InstalledPackage) Hash() string {
	_, hash, ok := strings.Cut(p.Identifier, IdentifierSeparator)
	if !ok {
		return ""
	}
	return hash
}

// InstalledIndex is a snapshot of the package manager's installed state.
// It is never updated in place; refreshing means probing again and replacing it.
type InstalledIndex struct {
	packages map[string]InstalledPackage
}

// NewInstalledIndex builds an index from probe records. Later records win.
func NewInstalledIndex(records ...InstalledPackage) *InstalledIndex {
	idx := &InstalledIndex{packages: make(map[string]InstalledPackage, len(records))}
	for _, r := range records {
		idx.packages[r.Name] = r
	}
	return idx
}

// Lookup returns the installed record for name.
func (i *InstalledIndex) Lookup(name string) (InstalledPackage, bool) {
	if i == nil {
		return InstalledPackage{}, false
	}
	p, ok := i.packages[name]
	return p, ok
}

// Has reports whether name is installed.
func (i *InstalledIndex) Has(name string) bool {
	_, ok := i.Lookup(name)
	return ok
}

// Len returns the number of installed packages.
func (i *InstalledIndex) Len() int {
	if i == nil {
		return 0
	}
	return len(i.packages)
}

// Names returns the installed package names, sorted.
func (i *InstalledIndex) Names() []string {
	if i == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(i.packages))
}

// Identifiers returns a name to identifier mapping.
func (i *InstalledIndex) Identifiers() map[string]string {
	out := make(map[string]string, i.Len())
	if i == nil {
		return out
	}
	for name, p := range i.packages {
		out[name] = p.Identifier
	}
	return out
}
