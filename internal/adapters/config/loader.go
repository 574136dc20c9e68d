// Package config loads the builder configuration and package-list files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/Masterminds/semver/v3"
	"github.com/WIPACrepo/cvmfs/internal/core/domain"
	"github.com/WIPACrepo/cvmfs/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the configuration file looked up when none is given.
const DefaultFileName = "sroot.yaml"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration at path and merges it over the defaults.
// Relative paths in the file are resolved against the file's directory.
func (l *Loader) Load(path string, required bool) (domain.BuildConfig, error) {
	cfg := domain.DefaultBuildConfig()

	//nolint:gosec // Path is provided by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			l.Logger.Info(fmt.Sprintf("no %s found, using defaults", path))
			return cfg, nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "failed to read config"), "path", path)
		}
		return cfg, zerr.With(zerr.Wrap(err, "failed to read config"), "path", path)
	}

	var file Configfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, err.Error()), "path", path)
	}

	root := filepath.Dir(path)
	if err := l.apply(&cfg, &file, root); err != nil {
		return cfg, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func (l *Loader) apply(cfg *domain.BuildConfig, file *Configfile, root string) error {
	cfg.Src = resolvePath(root, file.Src)
	cfg.Dest = resolvePath(root, file.Dest)
	cfg.Recipes = resolvePath(root, file.Recipes)
	cfg.Data = resolvePath(root, file.Data)
	if file.Mount != nil {
		cfg.Mount = *file.Mount
	}
	if file.Mirror != "" {
		cfg.Mirror = file.Mirror
		if filepath.IsAbs(file.Mirror) || file.Mirror[0] == '.' {
			cfg.Mirror = resolvePath(root, file.Mirror)
		}
	}
	setString(&cfg.Target, file.Target)
	setString(&cfg.CompilerTarget, file.CompilerTarget)
	if file.Jobs < 0 || file.Prefetch < 0 {
		return zerr.Wrap(domain.ErrInvalidConfig, "jobs and prefetch must not be negative")
	}
	if file.Jobs > 0 {
		cfg.Jobs = file.Jobs
	}
	if file.Prefetch > 0 {
		cfg.Prefetch = file.Prefetch
	}
	if file.Rolling != nil {
		cfg.Rolling = file.Rolling
	}
	if len(file.CompilerFamilies) > 0 {
		cfg.CompilerFamilies = file.CompilerFamilies
	}

	setString(&cfg.Manager.URL, file.Manager.URL)
	setString(&cfg.Manager.Tag, file.Manager.Tag)
	setString(&cfg.Manager.DefaultTag, file.Manager.DefaultTag)
	if file.Manager.Strategy != "" {
		if !slices.Contains([]string{domain.StrategyResolve, domain.StrategyEnvironment}, file.Manager.Strategy) {
			return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "unknown install strategy"), "strategy", file.Manager.Strategy)
		}
		cfg.Manager.Strategy = file.Manager.Strategy
	}
	if file.Manager.Tags != nil {
		rules := make([]domain.TagRule, 0, len(file.Manager.Tags))
		for _, r := range file.Manager.Tags {
			if _, err := semver.NewConstraint(r.Release); err != nil {
				return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "invalid release constraint"), "release", r.Release)
			}
			if r.Tag == "" {
				return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "tag rule without tag"), "release", r.Release)
			}
			rules = append(rules, domain.TagRule{Constraint: r.Release, Tag: r.Tag})
		}
		cfg.Manager.Tags = rules
	}

	setString(&cfg.Meta.GitURL, file.Meta.GitURL)
	setString(&cfg.Meta.SVNURL, file.Meta.SVNURL)
	setString(&cfg.Meta.SVNUser, file.Meta.SVNUser)
	setString(&cfg.Meta.SVNPasswordEnv, file.Meta.SVNPasswordEnv)

	if file.Version != "" && file.Version != "1" {
		l.Logger.Warn(fmt.Sprintf("unknown config version %q, reading as version 1", file.Version))
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func resolvePath(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
