package domain

import (
	"maps"
	"slices"
)

// DependencySet is the working set of dependency names for one resolution attempt.
type DependencySet map[string]struct{}

// NewDependencySet creates a set holding names.
func NewDependencySet(names ...string) DependencySet {
	s := make(DependencySet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Add inserts name and reports whether it was absent.
func (s DependencySet) Add(name string) bool {
	if _, ok := s[name]; ok {
		return false
	}
	s[name] = struct{}{}
	return true
}

// Remove deletes name and reports whether it was present.
func (s DependencySet) Remove(name string) bool {
	if _, ok := s[name]; !ok {
		return false
	}
	delete(s, name)
	return true
}

// Contains reports whether name is in the set.
func (s DependencySet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Equal reports whether both sets hold the same names.
func (s DependencySet) Equal(other DependencySet) bool {
	if len(s) != len(other) {
		return false
	}
	for n := range s {
		if !other.Contains(n) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (s DependencySet) Clone() DependencySet {
	return maps.Clone(s)
}

// Sorted returns the names in lexical order.
func (s DependencySet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}
