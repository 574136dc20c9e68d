package metaproject_test

import (
	"testing"

	"github.com/WIPACrepo/cvmfs/internal/core/domain"
	"github.com/WIPACrepo/cvmfs/internal/engine/metaproject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSource(t *testing.T) {
	cfg := domain.MetaConfig{
		GitURL: "https://github.com/icecube/icetray.git",
		SVNURL: "http://code.icecube.wisc.edu/svn/meta-projects/",
	}

	tests := []struct {
		entry string
		want  metaproject.Source
	}{
		{
			entry: "icetray/v1.8.2",
			want:  metaproject.Source{URL: cfg.GitURL, Ref: "v1.8.2", Git: true},
		},
		{
			entry: "icetray/V06-01-02",
			want:  metaproject.Source{URL: cfg.GitURL, Ref: "tags/releases/V06-01-02", Git: true},
		},
		{
			entry: "icetray/main",
			want:  metaproject.Source{URL: cfg.GitURL, Ref: "main", Git: true, Trunk: true},
		},
		{
			entry: "combo/V01-00-00-RC2",
			want:  metaproject.Source{URL: "http://code.icecube.wisc.edu/svn/meta-projects/combo/candidates/V01-00-00-RC2"},
		},
		{
			entry: "combo/V01-00-00",
			want:  metaproject.Source{URL: "http://code.icecube.wisc.edu/svn/meta-projects/combo/releases/V01-00-00"},
		},
		{
			entry: "combo/trunk",
			want:  metaproject.Source{URL: "http://code.icecube.wisc.edu/svn/meta-projects/combo/trunk", Trunk: true},
		},
		{
			entry: "combo/stable",
			want:  metaproject.Source{URL: "http://code.icecube.wisc.edu/svn/meta-projects/combo/stable", Trunk: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.entry, func(t *testing.T) {
			e, err := metaproject.ParseEntry(tt.entry)
			require.NoError(t, err)
			assert.Equal(t, tt.entry, e.String())
			assert.Equal(t, tt.want, metaproject.ResolveSource(cfg, e))
		})
	}
}

func TestParseEntry_Invalid(t *testing.T) {
	for _, line := range []string{"icetray", "/v1.0", "combo/"} {
		_, err := metaproject.ParseEntry(line)
		assert.ErrorIs(t, err, domain.ErrInvalidConfig, line)
	}
}
