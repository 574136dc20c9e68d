package domain_test

import (
	"slices"
	"testing"

	"github.com/WIPACrepo/cvmfs/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestSROOT_Paths(t *testing.T) {
	t.Parallel()

	s := domain.SROOT{Base: "/dest/py3-v4.3.0", Root: "/dest/py3-v4.3.0/RHEL_8.6_x86_64_v2"}

	assert.Equal(t, "RHEL_8.6_x86_64_v2", s.Name())
	assert.Equal(t, s.Root, s.ViewDir())
	assert.Equal(t, "/dest/py3-v4.3.0/RHEL_8.6_x86_64_v2/bin", s.BinDir())
	assert.Equal(t, "/dest/py3-v4.3.0/RHEL_8.6_x86_64_v2/spack/bin/spack", s.ManagerBin())
	assert.Equal(t, "/dest/py3-v4.3.0/RHEL_8.6_x86_64_v2/spack/var/spack/repos/icecube", s.RepoDir())
	assert.Equal(t, "RHEL_8_6_x86_64_v2", s.EnvironmentName())
	assert.Equal(t,
		"/dest/py3-v4.3.0/RHEL_8.6_x86_64_v2/spack/var/spack/environments/RHEL_8_6_x86_64_v2/spack.yaml",
		s.EnvironmentManifestPath())
	assert.Equal(t, "/dest/py3-v4.3.0/RHEL_8.6_x86_64_v2/metaprojects/icetray/v1.8.0", s.MetaprojectInstallDir("icetray/v1.8.0"))
}

func TestRepoCandidates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		parts    []string
		existing []string
		want     string
		found    bool
	}{
		{
			name:     "Exact release repo",
			parts:    []string{"py3-v4.3.1"},
			existing: []string{"/r/py3-v4.3.1-repo", "/r/repo"},
			want:     "/r/py3-v4.3.1-repo",
			found:    true,
		},
		{
			name:     "Major minor of single part",
			parts:    []string{"py3-v4.3.1"},
			existing: []string{"/r/py3-v4.3-repo", "/r/py3-v4-repo"},
			want:     "/r/py3-v4.3-repo",
			found:    true,
		},
		{
			name:     "Major of single part",
			parts:    []string{"py3-v4.3.1"},
			existing: []string{"/r/py3-v4-repo", "/r/repo"},
			want:     "/r/py3-v4-repo",
			found:    true,
		},
		{
			name:     "Major minor of second part",
			parts:    []string{"iceprod", "v2.7.1"},
			existing: []string{"/r/iceprod/v2.7-repo", "/r/iceprod-repo"},
			want:     "/r/iceprod/v2.7-repo",
			found:    true,
		},
		{
			name:     "Family repo",
			parts:    []string{"iceprod", "master"},
			existing: []string{"/r/iceprod-repo", "/r/repo"},
			want:     "/r/iceprod-repo",
			found:    true,
		},
		{
			name:     "Fallback",
			parts:    []string{"iceprod", "master"},
			existing: []string{"/r/repo"},
			want:     "/r/repo",
			found:    true,
		},
		{
			name:  "Nothing",
			parts: []string{"py3-v4.3.1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			exists := func(p string) bool { return slices.Contains(tt.existing, p) }

			got, ok := domain.FirstExisting("/r", tt.parts, domain.RepoCandidates, exists)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTemplateCandidates(t *testing.T) {
	t.Parallel()

	all := func(string) bool { return true }

	got, ok := domain.FirstExisting("/src", []string{"iceprod", "v2.7.1"}, domain.TemplateCandidates, all)
	assert.True(t, ok)
	assert.Equal(t, "/src/iceprod/all", got)

	got, ok = domain.FirstExisting("/src", []string{"py3-v4.3.1"}, domain.TemplateCandidates, all)
	assert.True(t, ok)
	assert.Equal(t, "/src/py3-v4.3.1", got)

	majorOnly := func(p string) bool { return p == "/src/py3-v4" }
	got, ok = domain.FirstExisting("/src", []string{"py3-v4.3.1"}, domain.TemplateCandidates, majorOnly)
	assert.True(t, ok)
	assert.Equal(t, "/src/py3-v4", got)
}

func TestScript_Render(t *testing.T) {
	t.Parallel()

	s := domain.Script{
		Source: "/sroot/spack/share/spack/setup-env.sh",
		Eval:   "/sroot/setup.sh",
		Lines:  []string{"spack env activate x", "spack install"},
	}
	want := "#!/bin/bash\nset -e\n" +
		". /sroot/spack/share/spack/setup-env.sh\n" +
		"eval $(/sroot/setup.sh)\n" +
		"spack env activate x\nspack install\n"
	assert.Equal(t, want, s.Render())
}

func TestScript_Render_QuotesPaths(t *testing.T) {
	t.Parallel()

	s := domain.Script{
		Source: "/opt/my sroot/spack/share/spack/setup-env.sh",
		Eval:   "/opt/my sroot/setup.sh",
		Lines:  []string{"true"},
	}
	want := "#!/bin/bash\nset -e\n" +
		". '/opt/my sroot/spack/share/spack/setup-env.sh'\n" +
		"eval $('/opt/my sroot/setup.sh')\n" +
		"true\n"
	assert.Equal(t, want, s.Render())
}

func TestShellQuote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want string
	}{
		{word: "/cvmfs/icecube.opensciencegrid.org/py3-v4.3.0", want: "/cvmfs/icecube.opensciencegrid.org/py3-v4.3.0"},
		{word: "-DCMAKE_INSTALL_PREFIX=/opt/x", want: "-DCMAKE_INSTALL_PREFIX=/opt/x"},
		{word: "", want: "''"},
		{word: "/tmp/with space", want: "'/tmp/with space'"},
		{word: "$(rm -rf /)", want: "'$(rm -rf /)'"},
		{word: "it's", want: `'it'"'"'s'`},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, domain.ShellQuote(tt.word))
		})
	}
}

func TestCommandResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result domain.CommandResult
		want   string
	}{
		{name: "Stdout only", result: domain.CommandResult{Stdout: "out"}, want: "out"},
		{name: "Stderr only", result: domain.CommandResult{Stderr: "err", ExitCode: 1}, want: "err"},
		{name: "Both", result: domain.CommandResult{Stdout: "out", Stderr: "err"}, want: "out\nerr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.result.Transcript())
			assert.Equal(t, tt.result.ExitCode == 0, tt.result.Success())
		})
	}
}

func TestInstallRequest_Args(t *testing.T) {
	t.Parallel()

	constraints := []string{"%gcc@11.4.0", "arch=linux-rocky8-x86_64_v2"}
	tests := []struct {
		name string
		spec string
		pins []string
		want []string
	}{
		{
			name: "Variants",
			spec: "foo@1.0 +mpi",
			pins: []string{"^bar@2.0"},
			want: []string{"foo@1.0", "+mpi", "%gcc@11.4.0", "arch=linux-rocky8-x86_64_v2", "^bar@2.0"},
		},
		{
			name: "Constraints bind to the root ahead of its dependencies",
			spec: "py-numpy@1.21 +blas ^openblas threads=openmp",
			pins: []string{"^python@3.10"},
			want: []string{
				"py-numpy@1.21", "+blas",
				"%gcc@11.4.0", "arch=linux-rocky8-x86_64_v2",
				"^openblas", "threads=openmp",
				"^python@3.10",
			},
		},
		{
			name: "No pins",
			spec: "boost@1.82 ^zlib@1.3",
			want: []string{"boost@1.82", "%gcc@11.4.0", "arch=linux-rocky8-x86_64_v2", "^zlib@1.3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := domain.InstallRequest{
				Spec:        domain.ParsePackageSpec(tt.spec),
				Constraints: constraints,
				Pins:        tt.pins,
			}
			assert.Equal(t, tt.want, req.Args())
		})
	}
}

func TestStep(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "install zlib", domain.StepInstall.Of("zlib"))
	assert.Equal(t, "WARN", domain.LogLevelWarn.String())
	assert.Equal(t, "ERROR", domain.LogLevel(12).String())
	assert.Equal(t, "INFO", domain.LogLevel(-4).String())
}
