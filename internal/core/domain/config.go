package domain

import (
	"path/filepath"
	"slices"
	"strings"
)

// Install strategies.
const (
	// StrategyResolve installs package by package, pinning resolver-discovered dependencies.
	StrategyResolve = "resolve"
	// StrategyEnvironment installs everything through one package manager environment.
	StrategyEnvironment = "environment"
)

// Defaults applied when the configuration leaves a field empty.
const (
	DefaultTarget     = "x86_64_v2"
	DefaultJobs       = 20
	DefaultMount      = "/cvmfs"
	DefaultManagerURL = "https://github.com/spack/spack.git"
	DefaultManagerTag = "v0.23.0"
	DefaultPrefetch   = 4
)

// Environment variables every build subprocess is run with.
const (
	// ArchVariable tells os_arch.sh which CPU target the SROOT is built for.
	ArchVariable = "ARCH"
	// PythonPathVariable is removed so the host's Python packages do not leak into builds.
	PythonPathVariable = "PYTHONPATH"
)

// TagRule selects a package manager tag for releases matching a semver constraint.
type TagRule struct {
	Constraint string
	Tag        string
}

// ManagerConfig configures the package manager checkout.
type ManagerConfig struct {
	URL        string
	Tag        string
	DefaultTag string
	Tags       []TagRule
	Strategy   string
}

// MetaConfig configures metaproject source checkouts.
type MetaConfig struct {
	GitURL         string
	SVNURL         string
	SVNUser        string
	SVNPasswordEnv string
}

// BuildConfig is the resolved configuration of a build run.
type BuildConfig struct {
	Src              string
	Dest             string
	Recipes          string
	Mount            string
	Data             string
	Mirror           string
	Target           string
	CompilerTarget   string
	Jobs             int
	Prefetch         int
	Rolling          []string
	CompilerFamilies []string
	Manager          ManagerConfig
	Meta             MetaConfig
}

// DefaultBuildConfig returns the built-in configuration.
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{
		Mount:            DefaultMount,
		Target:           DefaultTarget,
		Jobs:             DefaultJobs,
		Prefetch:         DefaultPrefetch,
		Rolling:          []string{"iceprod/master"},
		CompilerFamilies: []string{"gcc", "llvm", "nvhpc"},
		Manager: ManagerConfig{
			URL:        DefaultManagerURL,
			DefaultTag: DefaultManagerTag,
			Tags:       []TagRule{{Constraint: "~4.3", Tag: "v0.20.0"}},
			Strategy:   StrategyResolve,
		},
		Meta: MetaConfig{
			GitURL:         "https://github.com/icecube/icetray.git",
			SVNURL:         "http://code.icecube.wisc.edu/svn/meta-projects",
			SVNPasswordEnv: "SROOT_SVN_PASSWORD",
		},
	}
}

// EffectiveCompilerTarget returns the compiler target, defaulting to the package target.
func (c BuildConfig) EffectiveCompilerTarget() string {
	if c.CompilerTarget != "" {
		return c.CompilerTarget
	}
	return c.Target
}

// BuildContext returns the environment overlays of a build run.
func (c BuildConfig) BuildContext() *BuildContext {
	return NewBuildContext().
		Unset(PythonPathVariable).
		Set(ArchVariable, c.Target)
}

// MetaprojectWorkDir returns where metaproject sources and build trees are staged.
func (c BuildConfig) MetaprojectWorkDir() string {
	return filepath.Join(c.Dest, ".metaproject-build")
}

// ReleaseBase returns the directory holding every SROOT of a release, <dest>/<release>.
func (c BuildConfig) ReleaseBase(r Release) string {
	return join(c.Dest, r.Parts...)
}

// DataDir returns the shared data directory, defaulting to <dest>/data.
func (c BuildConfig) DataDir() string {
	if c.Data != "" {
		return c.Data
	}
	return filepath.Join(c.Dest, "data")
}

// IsRolling reports whether the release is rebuilt from scratch on every run.
func (c BuildConfig) IsRolling(r Release) bool {
	return slices.Contains(c.Rolling, r.Name)
}

// UnderMount reports whether path lies inside the stable mount.
func (c BuildConfig) UnderMount(path string) bool {
	if c.Mount == "" {
		return true
	}
	rel, err := filepath.Rel(c.Mount, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// PackageListPath returns the package list of a release.
func (c BuildConfig) PackageListPath(r Release) string {
	return join(c.Recipes, r.Parts...)
}

// CompilerListPath returns the optional compiler list of a release.
func (c BuildConfig) CompilerListPath(r Release) string {
	return c.PackageListPath(r) + CompilerFileSuffix
}

// PipRequirementPaths returns the add-on requirement candidates, most specific first.
func (c BuildConfig) PipRequirementPaths(r Release, srootName string) []string {
	generic := c.PackageListPath(r) + PipFileSuffix
	return []string{generic + "-" + srootName, generic}
}
