package domain

import (
	"maps"
	"os"
	"slices"
	"strings"
)

// BuildContext carries the environment overlays applied to every subprocess of one build.
// The process environment itself is never modified.
type BuildContext struct {
	set   map[string]string
	unset map[string]struct{}
}

// NewBuildContext creates an empty context.
func NewBuildContext() *BuildContext {
	return &BuildContext{
		set:   make(map[string]string),
		unset: make(map[string]struct{}),
	}
}

// Set overlays key=value.
func (c *BuildContext) Set(key, value string) *BuildContext {
	delete(c.unset, key)
	c.set[key] = value
	return c
}

// Unset removes key from the subprocess environment.
func (c *BuildContext) Unset(key string) *BuildContext {
	delete(c.set, key)
	c.unset[key] = struct{}{}
	return c
}

// Lookup returns the overlay value for key.
func (c *BuildContext) Lookup(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	v, ok := c.set[key]
	return v, ok
}

// With returns a copy with key=value added.
func (c *BuildContext) With(key, value string) *BuildContext {
	return c.Clone().Set(key, value)
}

// Clone returns an independent copy.
func (c *BuildContext) Clone() *BuildContext {
	if c == nil {
		return NewBuildContext()
	}
	return &BuildContext{
		set:   maps.Clone(c.set),
		unset: maps.Clone(c.unset),
	}
}

// Environ applies the overlays to base (KEY=VALUE entries) and returns a sorted result.
// A PATH overlay is prepended to the base PATH.
func (c *BuildContext) Environ(base []string) []string {
	env := make(map[string]string, len(base))
	for _, entry := range base {
		if k, v, ok := strings.Cut(entry, "="); ok {
			env[k] = v
		}
	}
	if c != nil {
		for k := range c.unset {
			delete(env, k)
		}
		for k, v := range c.set {
			if k == "PATH" {
				if sysPath := env["PATH"]; sysPath != "" {
					v = v + string(os.PathListSeparator) + sysPath
				}
			}
			env[k] = v
		}
	}

	out := make([]string, 0, len(env))
	for _, k := range slices.Sorted(maps.Keys(env)) {
		out = append(out, k+"="+env[k])
	}
	return out
}
