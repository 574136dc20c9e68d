package domain

import (
	"path/filepath"
	"strings"
)

const (
	// DirPerm is the default permission for directories created by the builder.
	DirPerm = 0o755
	// FilePerm is the default permission for files written by the builder.
	FilePerm = 0o644

	// CompilerFileSuffix names the optional compiler package list: "<release>-compiler".
	CompilerFileSuffix = "-compiler"
	// PipFileSuffix names the optional add-on requirements file: "<release>-pip".
	PipFileSuffix = "-pip"
	// RepoDirSuffix names a per-release recipe repository: "<release>-repo".
	RepoDirSuffix = "-repo"
	// FallbackRepoDir is the recipe repository used when no release-specific one exists.
	FallbackRepoDir = "repo"
	// RepoName is the registered name of the recipe repository.
	RepoName = "icecube"

	// ArchScript prints the SROOT directory name for the current host.
	ArchScript = "os_arch.sh"
	// SetupScript prints the shell exports that activate an SROOT.
	SetupScript = "setup.sh"
	// ManagerDir is the package manager checkout inside an SROOT.
	ManagerDir = "spack"
	// MetaprojectDir holds metaproject installs and checkouts.
	MetaprojectDir = "metaprojects"
	// ReportFile is the build report written into the SROOT base.
	ReportFile = ".sroot-build.json"
)

// DataLinks are the SROOT paths linked into the shared data directory.
var DataLinks = []string{
	"etc/vomsdir",
	"etc/vomses",
	"share/certificates",
	"share/vomsdir",
}

// SROOT is one versioned distribution instance on disk.
type SROOT struct {
	Release Release
	// Base is <dest>/<release parts>, holding os_arch.sh and setup.sh.
	Base string
	// Root is the architecture-specific directory inside Base; it doubles as the view.
	Root string
}

// Name returns the architecture directory name, e.g. "RHEL_8_x86_64_v2".
func (s SROOT) Name() string {
	return filepath.Base(s.Root)
}

// ViewDir returns the directory packages are projected into.
func (s SROOT) ViewDir() string {
	return s.Root
}

// BinDir returns the view's bin directory.
func (s SROOT) BinDir() string {
	return filepath.Join(s.Root, "bin")
}

// ManagerRoot returns the package manager checkout.
func (s SROOT) ManagerRoot() string {
	return filepath.Join(s.Root, ManagerDir)
}

// ManagerBin returns the package manager executable.
func (s SROOT) ManagerBin() string {
	return filepath.Join(s.ManagerRoot(), "bin", "spack")
}

// ManagerSetupScript returns the package manager's shell setup script.
func (s SROOT) ManagerSetupScript() string {
	return filepath.Join(s.ManagerRoot(), "share", "spack", "setup-env.sh")
}

// RepoDir returns where the recipe repository is copied.
func (s SROOT) RepoDir() string {
	return filepath.Join(s.ManagerRoot(), "var", "spack", "repos", RepoName)
}

// EnvironmentName returns the package manager environment name for this SROOT.
func (s SROOT) EnvironmentName() string {
	return strings.ReplaceAll(s.Name(), ".", "_")
}

// EnvironmentManifestPath returns where the environment manifest is written.
func (s SROOT) EnvironmentManifestPath() string {
	return filepath.Join(s.ManagerRoot(), "var", "spack", "environments", s.EnvironmentName(), "spack.yaml")
}

// MetaprojectInstallDir returns the install prefix of a metaproject entry.
func (s SROOT) MetaprojectInstallDir(entry string) string {
	return filepath.Join(s.Root, MetaprojectDir, entry)
}

// CandidateFunc produces a candidate path for a release, or "" when the rule does not apply.
type CandidateFunc func(root string, parts []string) string

// FirstExisting evaluates candidates in order and returns the first path for which exists is true.
func FirstExisting(root string, parts []string, candidates []CandidateFunc, exists func(string) bool) (string, bool) {
	for _, c := range candidates {
		p := c(root, parts)
		if p != "" && exists(p) {
			return p, true
		}
	}
	return "", false
}

// RepoCandidates locate the recipe repository for a release, in priority order.
var RepoCandidates = []CandidateFunc{
	// <root>/<parts...>-repo
	func(root string, parts []string) string {
		return join(root, parts...) + RepoDirSuffix
	},
	// <root>/<family>/<major.minor of second part>-repo
	func(root string, parts []string) string {
		if len(parts) != 2 || !strings.Contains(parts[1], ".") {
			return ""
		}
		return join(root, parts[0], majorMinor(parts[1])) + RepoDirSuffix
	},
	// <root>/<family>-repo
	func(root string, parts []string) string {
		if len(parts) < 2 {
			return ""
		}
		return join(root, parts[0]) + RepoDirSuffix
	},
	// <root>/<major.minor of family>/<rest...>-repo
	func(root string, parts []string) string {
		if len(parts) == 0 || !strings.Contains(parts[0], ".") {
			return ""
		}
		return join(root, append([]string{majorMinor(parts[0])}, parts[1:]...)...) + RepoDirSuffix
	},
	// <root>/<major of family>/<rest...>-repo
	func(root string, parts []string) string {
		if len(parts) == 0 || !strings.Contains(parts[0], ".") {
			return ""
		}
		return join(root, append([]string{major(parts[0])}, parts[1:]...)...) + RepoDirSuffix
	},
	// <root>/repo
	func(root string, _ []string) string {
		return filepath.Join(root, FallbackRepoDir)
	},
}

// TemplateCandidates locate the SROOT source template for a release, in priority order.
var TemplateCandidates = []CandidateFunc{
	// iceprod releases share one template
	func(root string, parts []string) string {
		if len(parts) == 0 || parts[0] != "iceprod" {
			return ""
		}
		return filepath.Join(root, "iceprod", "all")
	},
	func(root string, parts []string) string {
		return join(root, parts...)
	},
	// <root>/<major of family>/<rest...>
	func(root string, parts []string) string {
		if len(parts) == 0 || !strings.Contains(parts[0], ".") {
			return ""
		}
		return join(root, append([]string{major(parts[0])}, parts[1:]...)...)
	},
}

func join(root string, parts ...string) string {
	return filepath.Join(append([]string{root}, parts...)...)
}

// majorMinor keeps the first two dot-separated components: "py3-v4.3.1" -> "py3-v4.3".
func majorMinor(s string) string {
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, ".")
}

// major keeps the first dot-separated component: "py3-v4.3.1" -> "py3-v4".
func major(s string) string {
	head, _, _ := strings.Cut(s, ".")
	return head
}
