package domain

import "iter"

// PackageList is an insertion-ordered mapping from package name to spec.
// Setting an existing name replaces its spec but keeps its original position.
type PackageList struct {
	order []string
	specs map[string]PackageSpec
}

// NewPackageList creates an empty PackageList.
func NewPackageList() *PackageList {
	return &PackageList{specs: make(map[string]PackageSpec)}
}

// Set inserts or replaces the spec for spec.Name.
func (l *PackageList) Set(spec PackageSpec) {
	if _, ok := l.specs[spec.Name]; !ok {
		l.order = append(l.order, spec.Name)
	}
	l.specs[spec.Name] = spec
}

// Get returns the spec registered under name.
func (l *PackageList) Get(name string) (PackageSpec, bool) {
	if l == nil {
		return PackageSpec{}, false
	}
	spec, ok := l.specs[name]
	return spec, ok
}

// Has reports whether name is in the list.
func (l *PackageList) Has(name string) bool {
	_, ok := l.Get(name)
	return ok
}

// Len returns the number of packages.
func (l *PackageList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.order)
}

// Names returns the package names in insertion order.
func (l *PackageList) Names() []string {
	if l == nil {
		return nil
	}
	names := make([]string, len(l.order))
	copy(names, l.order)
	return names
}

// All yields name/spec pairs in insertion order.
func (l *PackageList) All() iter.Seq2[string, PackageSpec] {
	return func(yield func(string, PackageSpec) bool) {
		if l == nil {
			return
		}
		for _, name := range l.order {
			if !yield(name, l.specs[name]) {
				return
			}
		}
	}
}

// Specs returns the specs in insertion order.
func (l *PackageList) Specs() []PackageSpec {
	specs := make([]PackageSpec, 0, l.Len())
	for _, spec := range l.All() {
		specs = append(specs, spec)
	}
	return specs
}
