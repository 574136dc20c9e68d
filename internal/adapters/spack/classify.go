package spack

import (
	"regexp"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/WIPACrepo/cvmfs/internal/core/domain"
)

// Classifier interprets the transcript of one "spack spec" call.
type Classifier interface {
	Classify(result domain.CommandResult) domain.Diagnostic
}

// clingoSince is the first release whose solver prints clingo-style diagnostics.
var clingoSince = semver.MustParse("0.17.0")

var (
	conflictPattern = regexp.MustCompile(`(?m)depend on (.+)$`)
	missingPattern  = regexp.MustCompile(`(?mi)(?:missing dependenc(?:y|ies)|requires)\s*:?\s+(.+)$`)
	statusPattern   = regexp.MustCompile(`^(?:\[[+^e-]\]|-)\s+`)
)

// ClassifierFor returns the grammar matching the output of the release named by tag.
// Tags that are not versions, such as branch names, get the newest grammar.
func ClassifierFor(tag string) Classifier {
	v, err := semver.NewVersion(tag)
	if err != nil || !v.LessThan(clingoSince) {
		return ClingoClassifier{}
	}
	return LegacyClassifier{}
}

// LegacyClassifier reads the output of the original concretizer.
// Only a zero exit yields dependencies.
type LegacyClassifier struct{}

// Classify implements Classifier.
func (LegacyClassifier) Classify(result domain.CommandResult) domain.Diagnostic {
	raw := result.Transcript()
	if result.Success() {
		return domain.Success(raw, dependencyNames(result.Stdout, false)...)
	}
	if deps := matchNames(conflictPattern, raw); len(deps) > 0 {
		return domain.ConflictingDeps(raw, deps...)
	}
	if deps := matchNames(missingPattern, raw); len(deps) > 0 {
		return domain.MissingDeps(raw, deps...)
	}
	return domain.Unrecognized(raw)
}

// ClingoClassifier reads the output of the clingo-based solver.
// Spec trees may carry install-status markers, and a failed run that still printed
// a partial tree is salvaged as a success.
type ClingoClassifier struct{}

// Classify implements Classifier.
func (ClingoClassifier) Classify(result domain.CommandResult) domain.Diagnostic {
	raw := result.Transcript()
	if result.Success() {
		return domain.Success(raw, dependencyNames(result.Stdout, true)...)
	}
	if deps := matchNames(conflictPattern, raw); len(deps) > 0 {
		return domain.ConflictingDeps(raw, deps...)
	}
	if deps := matchNames(missingPattern, raw); len(deps) > 0 {
		return domain.MissingDeps(raw, deps...)
	}
	if deps := dependencyNames(raw, true); len(deps) > 0 {
		return domain.Success(raw, deps...)
	}
	return domain.Unrecognized(raw)
}

// dependencyNames collects the bare names of "^" lines in a spec tree, in order of appearance.
func dependencyNames(text string, stripStatus bool) []string {
	var names []string
	for line := range strings.Lines(text) {
		field := strings.TrimSpace(line)
		if stripStatus {
			field = statusPattern.ReplaceAllString(field, "")
		}
		if !strings.HasPrefix(field, domain.DependencyGlyph) {
			continue
		}
		name := bareName(field)
		if name != "" && !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	return names
}

// matchNames extracts the package names listed after pattern's first group, e.g.
// "depend on py-numpy or py-scipy" yields py-numpy and py-scipy.
func matchNames(pattern *regexp.Regexp, text string) []string {
	var names []string
	for _, m := range pattern.FindAllStringSubmatch(text, -1) {
		list := strings.NewReplacer(",", " ", "'", " ", `"`, " ").Replace(m[1])
		for _, word := range strings.Fields(list) {
			if word == "or" || word == "and" {
				continue
			}
			name := bareName(strings.TrimRight(word, ".:;"))
			if name != "" && !slices.Contains(names, name) {
				names = append(names, name)
			}
		}
	}
	return names
}

// bareName strips dependency glyphs and everything from the first version or variant marker.
func bareName(token string) string {
	token = strings.TrimLeft(token, domain.DependencyGlyph)
	if i := strings.IndexAny(token, "@%+~ \t"); i >= 0 {
		token = token[:i]
	}
	return token
}
