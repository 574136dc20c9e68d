package fs_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/WIPACrepo/cvmfs/internal/adapters/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestWalker_Walk(t *testing.T) {
	// tmp/
	//   .git/config
	//   ignored/file
	//   src/main.sh
	//   README.md
	//   link -> README.md
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".git", "config"), "git config")
	writeFile(t, filepath.Join(tmpDir, "ignored", "file"), "ignored content")
	writeFile(t, filepath.Join(tmpDir, "src", "main.sh"), "echo main")
	writeFile(t, filepath.Join(tmpDir, "README.md"), "# Readme")
	require.NoError(t, os.Symlink("README.md", filepath.Join(tmpDir, "link")))

	walker := fs.NewWalker()

	var entries []string
	for rel := range walker.Walk(tmpDir, []string{".*", "ignored"}) {
		entries = append(entries, rel)
	}

	assert.Equal(t, []string{"README.md", "link", "src", filepath.Join("src", "main.sh")}, entries)
}

func TestWalker_Walk_Stop(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "a"), "a")
	writeFile(t, filepath.Join(tmpDir, "b"), "b")

	walker := fs.NewWalker()

	var entries []string
	for rel := range walker.Walk(tmpDir, nil) {
		entries = append(entries, rel)
		break
	}
	assert.Equal(t, []string{"a"}, entries)
}

func TestHasher_ComputeFileHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	writeFile(t, path, "hello world")

	hasher := fs.NewHasher(fs.NewWalker())

	hash1, err := hasher.ComputeFileHash(path)
	require.NoError(t, err)
	assert.NotZero(t, hash1)

	hash2, err := hasher.ComputeFileHash(path)
	require.NoError(t, err)
	assert.Equal(t, hash1, hash2)
}

func buildView(t *testing.T, links map[string]string, order []string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "bin"), 0o750))
	for _, name := range order {
		require.NoError(t, os.Symlink(links[name], filepath.Join(dir, "bin", name)))
	}
	return dir
}

func TestHasher_Fingerprint_OrderIndependent(t *testing.T) {
	links := map[string]string{
		"foo": "/opt/store/foo-1.0/bin/foo",
		"bar": "/opt/store/bar-2.0/bin/bar",
		"cc":  "gcc",
	}
	names := []string{"foo", "bar", "cc"}
	reversed := slices.Clone(names)
	slices.Reverse(reversed)

	hasher := fs.NewHasher(fs.NewWalker())

	first, err := hasher.Fingerprint(buildView(t, links, names))
	require.NoError(t, err)
	second, err := hasher.Fingerprint(buildView(t, links, reversed))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 16)
}

func TestHasher_Fingerprint_DetectsChanges(t *testing.T) {
	hasher := fs.NewHasher(fs.NewWalker())

	base := buildView(t, map[string]string{"foo": "/opt/store/foo-1.0/bin/foo"}, []string{"foo"})
	retargeted := buildView(t, map[string]string{"foo": "/opt/store/foo-1.1/bin/foo"}, []string{"foo"})
	extra := buildView(t, map[string]string{
		"foo": "/opt/store/foo-1.0/bin/foo",
		"bar": "/opt/store/bar-2.0/bin/bar",
	}, []string{"foo", "bar"})

	baseHash, err := hasher.Fingerprint(base)
	require.NoError(t, err)
	retargetedHash, err := hasher.Fingerprint(retargeted)
	require.NoError(t, err)
	extraHash, err := hasher.Fingerprint(extra)
	require.NoError(t, err)

	assert.NotEqual(t, baseHash, retargetedHash)
	assert.NotEqual(t, baseHash, extraHash)

	writeFile(t, filepath.Join(base, "setup.sh"), "export A=1")
	withFile, err := hasher.Fingerprint(base)
	require.NoError(t, err)
	assert.NotEqual(t, baseHash, withFile)
}

func TestHasher_Fingerprint_Missing(t *testing.T) {
	hasher := fs.NewHasher(fs.NewWalker())
	_, err := hasher.Fingerprint(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestHasher_Fingerprint_Ignores(t *testing.T) {
	hasher := fs.NewHasher(fs.NewWalker())
	view := buildView(t, map[string]string{"foo": "/opt/store/foo-1.0/bin/foo"}, []string{"foo"})

	before, err := hasher.Fingerprint(view, "spack")
	require.NoError(t, err)

	writeFile(t, filepath.Join(view, "spack", "bin", "spack"), "#!/bin/sh")
	after, err := hasher.Fingerprint(view, "spack")
	require.NoError(t, err)
	assert.Equal(t, before, after)

	withManager, err := hasher.Fingerprint(view)
	require.NoError(t, err)
	assert.NotEqual(t, before, withManager)
}
