package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when an explicitly requested configuration file does not exist.
	ErrConfigNotFound = zerr.New("configuration file not found")

	// ErrInvalidConfig is returned when the configuration file cannot be parsed or is inconsistent.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrMissingPackageList is returned when a package-list file cannot be read.
	ErrMissingPackageList = zerr.New("package list not found")

	// ErrInvalidRelease is returned when a release name cannot be split into path parts.
	ErrInvalidRelease = zerr.New("invalid release name")

	// ErrCommandFailed is returned when an external command exits with a non-zero status.
	ErrCommandFailed = zerr.New("command failed")

	// ErrSROOTNotFound is returned when the SROOT directory name cannot be determined.
	ErrSROOTNotFound = zerr.New("failed to find SROOT")

	// ErrTemplateNotFound is returned when no source template exists for a release.
	ErrTemplateNotFound = zerr.New("release template not found")

	// ErrRepoNotFound is returned when no recipe repository candidate exists for a release.
	ErrRepoNotFound = zerr.New("recipe repository not found")

	// ErrCompilerNotFound is returned when the compiler file names no known compiler family.
	ErrCompilerNotFound = zerr.New("could not find compiler package name")

	// ErrCompilerLocation is returned when an installed compiler has no install prefix on disk.
	ErrCompilerLocation = zerr.New("cannot find compiler")

	// ErrInvalidArch is returned when the package manager reports an unparsable architecture.
	ErrInvalidArch = zerr.New("invalid architecture")

	// ErrProbeFailed is returned when the installed-package listing fails.
	ErrProbeFailed = zerr.New("failed to list installed packages")

	// ErrResolverBoundExceeded is returned when dependency resolution does not reach a fixed point.
	ErrResolverBoundExceeded = zerr.New("dependency resolution did not converge")

	// ErrResolverInconsistent is returned when the solver rejects pins the resolver never added.
	ErrResolverInconsistent = zerr.New("inconsistent dependency conflict")

	// ErrResolverUnrecognized is returned when the solver output cannot be classified.
	ErrResolverUnrecognized = zerr.New("unrecognized solver output")

	// ErrPackageNotDesired is returned when a package is requested that is not in the package list.
	ErrPackageNotDesired = zerr.New("package not in package list")

	// ErrReportNotFound is returned when no build report has been stored for a release.
	ErrReportNotFound = zerr.New("build report not found")

	// ErrDownloadFailed is returned when a metaproject checkout leaves no source tree behind.
	ErrDownloadFailed = zerr.New("download failed")

	// ErrBuildFailed is returned when a release build fails.
	ErrBuildFailed = zerr.New("build failed")
)
