package ports

// Filesystem performs the file operations of a build.
type Filesystem interface {
	Exists(path string) bool
	// Lexists reports whether path exists without following a final symlink.
	Lexists(path string) bool
	IsDir(path string) bool
	IsFile(path string) bool
	MkdirAll(path string) error
	RemoveAll(path string) error
	// CopyTree copies src into dst, skipping dot entries and overwriting existing files.
	CopyTree(src, dst string) error
	Symlink(target, link string) error
	// TempDir creates a new temporary directory inside parent.
	TempDir(parent, pattern string) (string, error)
}

// ViewHasher fingerprints an assembled view.
type ViewHasher interface {
	// Fingerprint returns a digest of every entry under dir and, for symlinks, its target.
	// Entries whose name matches one of ignores are left out together with their contents.
	Fingerprint(dir string, ignores ...string) (string, error)
}
