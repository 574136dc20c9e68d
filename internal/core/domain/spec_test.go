package domain_test

import (
	"testing"

	"github.com/WIPACrepo/cvmfs/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestParsePackageSpec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line    string
		name    string
		version string
		head    string
		develop bool
	}{
		{line: "zlib", name: "zlib", head: "zlib"},
		{line: "binutils +gold", name: "binutils +gold", head: "binutils"},
		{line: "py3-numpy@1.24 +blas", name: "py3-numpy", version: "1.24", head: "py3-numpy@1.24"},
		{line: "  boost@1.83.0+python~mpi  ", name: "boost", version: "1.83.0", head: "boost@1.83.0+python~mpi"},
		{line: "root@6.30%gcc@11.4.0", name: "root", version: "6.30", head: "root@6.30%gcc@11.4.0"},
		{line: "photospline@develop", name: "photospline", version: "develop", head: "photospline@develop", develop: true},
		{line: "cfitsio@develop-4 ^zlib", name: "cfitsio", version: "develop-4", head: "cfitsio@develop-4", develop: true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()
			spec := domain.ParsePackageSpec(tt.line)
			assert.Equal(t, tt.name, spec.Name)
			assert.Equal(t, tt.version, spec.Version)
			assert.Equal(t, tt.head, spec.Head())
			assert.Equal(t, tt.develop, spec.IsDevelop())
		})
	}
}

func TestPackageSpec_Pin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"^bar@2.0", "+shared"}, domain.ParsePackageSpec("bar@2.0 +shared").Pin())
	assert.Nil(t, domain.ParsePackageSpec("   ").Pin())
	assert.Empty(t, domain.ParsePackageSpec("").Head())
}

func TestPackageSpec_Nodes(t *testing.T) {
	t.Parallel()

	root, deps := domain.ParsePackageSpec("py-numpy@1.21 +blas ^openblas threads=openmp ^python@3.10").Nodes()
	assert.Equal(t, []string{"py-numpy@1.21", "+blas"}, root)
	assert.Equal(t, []string{"^openblas", "threads=openmp", "^python@3.10"}, deps)

	root, deps = domain.ParsePackageSpec("zlib@1.3").Nodes()
	assert.Equal(t, []string{"zlib@1.3"}, root)
	assert.Nil(t, deps)
}

func TestPackageList(t *testing.T) {
	t.Parallel()

	list := domain.NewPackageList()
	list.Set(domain.ParsePackageSpec("zlib@1.2"))
	list.Set(domain.ParsePackageSpec("boost@1.83"))
	list.Set(domain.ParsePackageSpec("zlib@1.3"))

	assert.Equal(t, 2, list.Len())
	assert.Equal(t, []string{"zlib", "boost"}, list.Names())
	spec, ok := list.Get("zlib")
	assert.True(t, ok)
	assert.Equal(t, "1.3", spec.Version)
	assert.False(t, list.Has("gsl"))

	specs := list.Specs()
	assert.Equal(t, "zlib@1.3", specs[0].Raw)
	assert.Equal(t, "boost@1.83", specs[1].Raw)

	names := list.Names()
	names[0] = "changed"
	assert.Equal(t, "zlib", list.Names()[0])
}

func TestPackageList_Nil(t *testing.T) {
	t.Parallel()

	var list *domain.PackageList
	assert.Zero(t, list.Len())
	assert.Nil(t, list.Names())
	assert.False(t, list.Has("zlib"))
	assert.Empty(t, list.Specs())
}

func TestDependencySet(t *testing.T) {
	t.Parallel()

	s := domain.NewDependencySet("zlib")
	assert.True(t, s.Add("bzip2"))
	assert.False(t, s.Add("zlib"))
	assert.Equal(t, []string{"bzip2", "zlib"}, s.Sorted())

	clone := s.Clone()
	assert.True(t, clone.Remove("zlib"))
	assert.False(t, clone.Remove("zlib"))
	assert.True(t, s.Contains("zlib"))
	assert.False(t, s.Equal(clone))

	clone.Add("zlib")
	assert.True(t, s.Equal(clone))
	assert.False(t, s.Equal(domain.NewDependencySet("zlib", "xz")))
}

func TestInstalledIndex(t *testing.T) {
	t.Parallel()

	idx := domain.NewInstalledIndex(
		domain.InstalledPackage{Name: "zlib", Identifier: "zlib/aaaaaaa"},
		domain.InstalledPackage{Name: "boost", Identifier: "boost/bbbbbbb"},
		domain.InstalledPackage{Name: "zlib", Identifier: "zlib/ccccccc"},
	)

	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, []string{"boost", "zlib"}, idx.Names())
	pkg, ok := idx.Lookup("zlib")
	assert.True(t, ok)
	assert.Equal(t, "ccccccc", pkg.Hash())
	assert.Equal(t, map[string]string{"boost": "boost/bbbbbbb", "zlib": "zlib/ccccccc"}, idx.Identifiers())

	assert.Empty(t, domain.InstalledPackage{Name: "zlib", Identifier: "zlib"}.Hash())

	var empty *domain.InstalledIndex
	assert.False(t, empty.Has("zlib"))
	assert.Empty(t, empty.Identifiers())
}
