package metaproject

import (
	"strings"

	"github.com/WIPACrepo/cvmfs/internal/core/domain"
	"go.trai.ch/zerr"
)

// gitProject is the only metaproject hosted in git.
const gitProject = "icetray"

// Source is where one metaproject entry is checked out from.
type Source struct {
	URL string
	// Ref is checked out after cloning a git source.
	Ref string
	Git bool
	// Trunk marks moving branches, which are refreshed and rebuilt on every run.
	Trunk bool
}

// Entry is one line of a metaproject list: "<meta>/<name>".
type Entry struct {
	Meta string
	Name string
}

// ParseEntry splits a metaproject list line.
func ParseEntry(line string) (Entry, error) {
	meta, name, ok := strings.Cut(line, "/")
	if !ok || meta == "" || name == "" {
		return Entry{}, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "metaproject entry must be <meta>/<name>"), "entry", line)
	}
	return Entry{Meta: meta, Name: name}, nil
}

// String returns "<meta>/<name>".
func (e Entry) String() string {
	return e.Meta + "/" + e.Name
}

// ResolveSource returns the checkout location of e.
//
// icetray lives in git: old "V..." releases are tags under releases/, "v..." names are
// tags and anything else is a branch. Other metaprojects live in svn under candidates/
// for release candidates, releases/ for releases, or directly for trunk and stable.
func ResolveSource(cfg domain.MetaConfig, e Entry) Source {
	if e.Meta == gitProject {
		src := Source{URL: cfg.GitURL, Ref: e.Name, Git: true}
		switch {
		case strings.HasPrefix(e.Name, "V"):
			src.Ref = "tags/releases/" + e.Name
		case !strings.HasPrefix(e.Name, "v"):
			src.Trunk = true
		}
		return src
	}

	base := strings.TrimRight(cfg.SVNURL, "/") + "/" + e.Meta + "/"
	switch {
	case strings.Contains(e.Name, "RC"):
		return Source{URL: base + "candidates/" + e.Name}
	case e.Name != "trunk" && e.Name != "stable":
		return Source{URL: base + "releases/" + e.Name}
	default:
		return Source{URL: base + e.Name, Trunk: true}
	}
}
