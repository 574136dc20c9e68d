// Package spack drives a spack checkout inside an SROOT through its command line.
package spack

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/WIPACrepo/cvmfs/internal/core/domain"
	"github.com/WIPACrepo/cvmfs/internal/core/ports"
	"go.trai.ch/zerr"
)

const siteScope = "site"

var _ ports.PackageManager = (*Manager)(nil)

// Manager implements ports.PackageManager using the spack CLI.
type Manager struct {
	runner     ports.CommandRunner
	logger     ports.Logger
	sroot      domain.SROOT
	tag        string
	env        *domain.BuildContext
	classifier Classifier
}

// NewManager creates a Manager for the checkout inside sroot.
func NewManager(
	runner ports.CommandRunner,
	logger ports.Logger,
	sroot domain.SROOT,
	tag string,
	env *domain.BuildContext,
) *Manager {
	return &Manager{
		runner:     runner,
		logger:     logger,
		sroot:      sroot,
		tag:        tag,
		env:        env,
		classifier: ClassifierFor(tag),
	}
}

// Tag returns the release tag the checkout was cloned from.
func (m *Manager) Tag() string {
	return m.tag
}

func (m *Manager) command(args ...string) domain.Command {
	return domain.Command{
		Args: append([]string{m.sroot.ManagerBin()}, args...),
		Dir:  m.sroot.Root,
		Env:  m.env,
	}
}

func (m *Manager) run(ctx context.Context, args ...string) error {
	return m.runner.Run(ctx, m.command(args...))
}

// output runs a query and fails on a non-zero exit.
func (m *Manager) output(ctx context.Context, args ...string) (string, error) {
	cmd := m.command(args...)
	res, err := m.runner.Output(ctx, cmd)
	if err != nil {
		return "", err
	}
	if !res.Success() {
		cmdErr := zerr.With(zerr.Wrap(domain.ErrCommandFailed, cmd.String()), "exit_code", res.ExitCode)
		return "", zerr.With(cmdErr, "stderr", strings.TrimSpace(res.Stderr))
	}
	return res.Stdout, nil
}

// Arch reports the host architecture triple.
func (m *Manager) Arch(ctx context.Context) (domain.Arch, error) {
	out, err := m.output(ctx, "arch")
	if err != nil {
		return domain.Arch{}, err
	}
	return domain.ParseArch(out)
}

// ListInstalled implements ports.Prober.
func (m *Manager) ListInstalled(ctx context.Context, compiler string) (*domain.InstalledIndex, error) {
	out, err := m.output(ctx, "find", "--show-full-compiler", "-lv")
	if err != nil {
		return nil, zerr.Wrap(errors.Join(domain.ErrProbeFailed, err), "failed to list installed packages")
	}
	return parseInstalled(out, compiler), nil
}

// Explain implements ports.Explainer.
func (m *Manager) Explain(ctx context.Context, req domain.InstallRequest) (domain.Diagnostic, error) {
	args := append([]string{"spec"}, req.Args()...)
	res, err := m.runner.Output(ctx, m.command(args...))
	if err != nil {
		return domain.Diagnostic{}, err
	}
	return m.classifier.Classify(res), nil
}

// Install implements ports.Installer.
func (m *Manager) Install(ctx context.Context, req domain.InstallRequest) error {
	args := []string{"install", "-y", "-v", "--no-checksum", "-j", strconv.Itoa(jobs(req.Jobs))}
	return m.run(ctx, append(args, req.Args()...)...)
}

// Uninstall removes one installed build by identifier.
func (m *Manager) Uninstall(ctx context.Context, identifier string) error {
	return m.run(ctx, "uninstall", "-y", "-f", identifier)
}

// InstallEnvironment writes the manifest and installs it in one sourced session.
func (m *Manager) InstallEnvironment(
	ctx context.Context,
	manifest domain.EnvironmentManifest,
	path string,
	jobCount int,
) error {
	data, err := RenderManifest(manifest)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create environment directory"), "path", path)
	}
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write environment manifest"), "path", path)
	}

	return m.runner.RunScript(ctx, domain.Script{
		Source: m.sroot.ManagerSetupScript(),
		Lines: []string{
			"spack env activate " + domain.ShellQuote(manifest.Name),
			"spack concretize -f",
			fmt.Sprintf("spack install -y -v --fail-fast -j %d", jobs(jobCount)),
		},
		Dir: m.sroot.Root,
		Env: m.env,
	})
}

// FindInstalled implements ports.CompilerRegistry.
func (m *Manager) FindInstalled(ctx context.Context) ([]domain.InstalledRecord, error) {
	out, err := m.output(ctx, "find", "--json")
	if err != nil {
		return nil, err
	}
	return parseFindJSON([]byte(out))
}

// Compilers lists the registered compilers.
func (m *Manager) Compilers(ctx context.Context) ([]domain.RegisteredCompiler, error) {
	out, err := m.output(ctx, "compiler", "list")
	if err != nil {
		return nil, err
	}
	return parseCompilerList(out), nil
}

// FindCompilers registers the host's system compilers at site scope.
func (m *Manager) FindCompilers(ctx context.Context) error {
	return m.run(ctx, "compiler", "find", "--scope="+siteScope)
}

// AddCompiler registers the compiler installed at prefix.
func (m *Manager) AddCompiler(ctx context.Context, prefix string) error {
	return m.run(ctx, "compiler", "add", "--scope", siteScope, prefix)
}

// Location returns the install prefix of spec, or "" when it is not installed.
func (m *Manager) Location(ctx context.Context, spec string) (string, error) {
	args := append([]string{"location", "-i"}, strings.Fields(spec)...)
	res, err := m.runner.Output(ctx, m.command(args...))
	if err != nil {
		return "", err
	}
	if !res.Success() {
		return "", nil
	}
	return strings.TrimSpace(res.Stdout), nil
}

// ViewAdd projects specs into req.Dir as soft links.
func (m *Manager) ViewAdd(ctx context.Context, req domain.ViewRequest) error {
	args := []string{"view"}
	if !req.WithDependencies {
		args = append(args, "-d", "false")
	}
	args = append(args, "soft", "-i", req.Dir)
	for _, spec := range req.Specs {
		args = append(args, strings.Fields(spec)...)
	}
	return m.run(ctx, args...)
}

// ViewRemove removes a package's links from a view.
func (m *Manager) ViewRemove(ctx context.Context, dir string, name string) error {
	return m.run(ctx, "view", "remove", dir, name)
}

// Repos lists the names of the site-scope recipe repositories.
func (m *Manager) Repos(ctx context.Context) ([]string, error) {
	out, err := m.output(ctx, "repo", "list", "--scope", siteScope)
	if err != nil {
		return nil, err
	}
	var names []string
	for line := range strings.Lines(out) {
		fields := strings.Fields(line)
		if len(fields) == 0 || strings.HasPrefix(fields[0], statusMarker) {
			continue
		}
		names = append(names, fields[0])
	}
	return names, nil
}

// AddRepo registers a recipe repository. An already registered repository is not an error.
func (m *Manager) AddRepo(ctx context.Context, path string) error {
	cmd := m.command("repo", "add", "--scope", siteScope, path)
	res, err := m.runner.Output(ctx, cmd)
	if err != nil {
		return err
	}
	if res.Success() {
		return nil
	}
	if strings.Contains(res.Transcript(), "already registered") {
		m.logger.Warn("repository already registered: " + path)
		return nil
	}
	cmdErr := zerr.With(zerr.Wrap(domain.ErrCommandFailed, cmd.String()), "exit_code", res.ExitCode)
	return zerr.With(cmdErr, "stderr", strings.TrimSpace(res.Stderr))
}

// RemoveRepo unregisters a recipe repository by name.
func (m *Manager) RemoveRepo(ctx context.Context, name string) error {
	return m.run(ctx, "repo", "rm", "--scope", siteScope, name)
}

// Mirrors returns the raw mirror listing.
func (m *Manager) Mirrors(ctx context.Context) (string, error) {
	return m.output(ctx, "mirror", "list")
}

// AddMirror registers a mirror.
func (m *Manager) AddMirror(ctx context.Context, name string, url string) error {
	return m.run(ctx, "mirror", "add", name, url)
}

// CreateMirror downloads the sources of spec into the mirror at dir.
func (m *Manager) CreateMirror(ctx context.Context, dir string, spec string) error {
	return m.run(ctx, "mirror", "create", "-d", dir, spec)
}

// Clean removes stage and download caches.
func (m *Manager) Clean(ctx context.Context) error {
	return m.run(ctx, "clean", "-s", "-d")
}

func jobs(n int) int {
	if n <= 0 {
		return domain.DefaultJobs
	}
	return n
}
