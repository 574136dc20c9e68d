package domain_test

import (
	"testing"

	"github.com/WIPACrepo/cvmfs/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRelease(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		name  string
		parts []string
		err   bool
	}{
		{input: "py3-v4.3.0", name: "py3-v4.3.0", parts: []string{"py3-v4.3.0"}},
		{input: "iceprod/v2.7.1", name: "iceprod/v2.7.1", parts: []string{"iceprod", "v2.7.1"}},
		{input: " /iceprod/master/ ", name: "iceprod/master", parts: []string{"iceprod", "master"}},
		{input: "", err: true},
		{input: "iceprod//master", err: true},
		{input: "../etc", err: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			r, err := domain.ParseRelease(tt.input)
			if tt.err {
				require.ErrorIs(t, err, domain.ErrInvalidRelease)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.name, r.Name)
			assert.Equal(t, tt.parts, r.Parts)
		})
	}
}

func TestRelease_Number(t *testing.T) {
	t.Parallel()

	tests := []struct {
		release string
		want    string
	}{
		{release: "py3-v4.3.0", want: "4.3.0"},
		{release: "iceprod/v2.7.1", want: "2.7.1"},
		{release: "py2-v3.0.1", want: "3.0.1"},
		{release: "iceprod/master"},
	}

	for _, tt := range tests {
		t.Run(tt.release, func(t *testing.T) {
			t.Parallel()
			r, err := domain.ParseRelease(tt.release)
			require.NoError(t, err)

			v, ok := r.Number()
			if tt.want == "" {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestRelease_Metaproject(t *testing.T) {
	t.Parallel()

	r, err := domain.ParseRelease("py3-v4.3.0-metaproject")
	require.NoError(t, err)
	assert.True(t, r.IsMetaproject())
	assert.Equal(t, "py3-v4.3.0", r.Base().Name)
	assert.False(t, r.Base().IsMetaproject())

	plain, err := domain.ParseRelease("iceprod/v2.7.1")
	require.NoError(t, err)
	assert.Equal(t, plain, plain.Base())
	assert.Equal(t, "iceprod", plain.Family())
}

func TestArch(t *testing.T) {
	t.Parallel()

	a, err := domain.ParseArch("linux-rocky8-x86_64_v2\n")
	require.NoError(t, err)
	assert.Equal(t, domain.Arch{Platform: "linux", OS: "rocky8", Target: "x86_64_v2"}, a)
	assert.Equal(t, "arch=linux-rocky8-haswell", a.WithTarget("haswell").Constraint())
	assert.Equal(t, "x86_64_v2", a.Target)

	noTarget, err := domain.ParseArch("linux-centos7")
	require.NoError(t, err)
	assert.Empty(t, noTarget.Target)

	for _, bad := range []string{"", "linux", "-rocky8-x86_64"} {
		_, err := domain.ParseArch(bad)
		require.ErrorIs(t, err, domain.ErrInvalidArch, bad)
	}
}

func TestCompilerHandle(t *testing.T) {
	t.Parallel()

	var none domain.CompilerHandle
	assert.True(t, none.IsZero())
	assert.Empty(t, none.Constraint())

	gcc := domain.CompilerHandle{
		Name: "gcc",
		Spec: "gcc@11.4.0",
		Arch: domain.Arch{Platform: "linux", OS: "rocky8", Target: "x86_64"},
	}
	assert.Equal(t, "%gcc@11.4.0", gcc.Constraint())
	assert.Equal(t, "gcc@11.4.0 arch=linux-rocky8-x86_64", gcc.WithArch())
}
