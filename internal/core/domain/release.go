package domain

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// MetaprojectSuffix marks a release that names a metaproject list instead of a package list.
const MetaprojectSuffix = "-metaproject"

// Release is a requested distribution version such as "py3-v4.3.0" or "iceprod/v2.7.1".
type Release struct {
	Name  string
	Parts []string
}

// ParseRelease splits name on "/" into path parts.
func ParseRelease(name string) (Release, error) {
	name = strings.Trim(strings.TrimSpace(name), "/")
	if name == "" {
		return Release{}, zerr.With(ErrInvalidRelease, "release", name)
	}
	parts := strings.Split(name, "/")
	for _, p := range parts {
		if p == "" || p == "." || p == ".." {
			return Release{}, zerr.With(ErrInvalidRelease, "release", name)
		}
	}
	return Release{Name: name, Parts: parts}, nil
}

// IsMetaproject reports whether the release names a metaproject list.
func (r Release) IsMetaproject() bool {
	return strings.HasSuffix(r.Name, MetaprojectSuffix)
}

// Base returns the release with any metaproject suffix removed.
func (r Release) Base() Release {
	if !r.IsMetaproject() {
		return r
	}
	base, _ := ParseRelease(strings.TrimSuffix(r.Name, MetaprojectSuffix))
	return base
}

// Family returns the first path part, e.g. "py3-v4.3.0" or "iceprod".
func (r Release) Family() string {
	if len(r.Parts) == 0 {
		return ""
	}
	return r.Parts[0]
}

// Number extracts the semantic version of the release.
// "py3-v4.3.0" yields 4.3.0 and "iceprod/v2.7.1" yields 2.7.1.
func (r Release) Number() (*semver.Version, bool) {
	for i := len(r.Parts) - 1; i >= 0; i-- {
		part := r.Parts[i]
		if _, after, ok := strings.Cut(part, "-"); ok {
			part = after
		}
		if !strings.HasPrefix(part, "v") {
			continue
		}
		v, err := semver.NewVersion(part)
		if err == nil {
			return v, true
		}
	}
	return nil, false
}

// String returns the release name.
func (r Release) String() string {
	return r.Name
}
