package driver_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/WIPACrepo/cvmfs/internal/core/domain"
	"github.com/WIPACrepo/cvmfs/internal/core/ports"
)

const srootName = "RHEL_8_x86_64_v2"

var (
	_ ports.PackageManager        = (*fakeManager)(nil)
	_ ports.PackageManagerFactory = (*fakeFactory)(nil)
	_ ports.CommandRunner         = (*fakeRunner)(nil)
)

// fakeManager behaves like a package manager with an in-memory install database.
type fakeManager struct {
	mu sync.Mutex

	// deps lists the dependencies the solver reports for a package.
	deps      map[string][]string
	installed map[string]string
	seq       int

	events       []string
	installs     []domain.InstallRequest
	explains     int
	environments []domain.EnvironmentManifest
	manifestPath string
	repos        []string
	mirrors      []string
	created      []string

	findCompilers int
	cleaned       int

	failInstall string
	cleanErr    error
	// interrupt is called by the first install, which then fails as a cancelled command would.
	interrupt context.CancelFunc
	cleanCtxErr error
}

func newFakeManager() *fakeManager {
	return &fakeManager{deps: map[string][]string{}, installed: map[string]string{}}
}

func (m *fakeManager) Tag() string { return "v0.23.0" }

func (m *fakeManager) Arch(context.Context) (domain.Arch, error) {
	return domain.Arch{Platform: "linux", OS: "rocky8", Target: "zen2"}, nil
}

func (m *fakeManager) Clean(ctx context.Context) error {
	m.cleaned++
	m.cleanCtxErr = ctx.Err()
	return m.cleanErr
}

func (m *fakeManager) ListInstalled(context.Context, string) (*domain.InstalledIndex, error) {
	records := make([]domain.InstalledPackage, 0, len(m.installed))
	for name, id := range m.installed {
		records = append(records, domain.InstalledPackage{Name: name, Identifier: id})
	}
	return domain.NewInstalledIndex(records...), nil
}

func (m *fakeManager) Explain(_ context.Context, req domain.InstallRequest) (domain.Diagnostic, error) {
	m.explains++
	names := append([]string{req.Spec.Name}, m.deps[req.Spec.Name]...)
	return domain.Success(strings.Join(names, "\n"), names...), nil
}

func (m *fakeManager) Install(ctx context.Context, req domain.InstallRequest) error {
	if m.interrupt != nil {
		m.interrupt()
		return ctx.Err()
	}
	if req.Spec.Name == m.failInstall {
		return domain.ErrCommandFailed
	}
	m.installs = append(m.installs, req)
	m.add(req.Spec.Name)
	return nil
}

func (m *fakeManager) add(name string) {
	m.seq++
	m.installed[name] = fmt.Sprintf("%s/h%03d", name, m.seq)
	m.events = append(m.events, "install "+name)
}

func (m *fakeManager) Uninstall(_ context.Context, identifier string) error {
	name, _, _ := strings.Cut(identifier, domain.IdentifierSeparator)
	if m.installed[name] != identifier {
		return domain.ErrCommandFailed
	}
	delete(m.installed, name)
	m.events = append(m.events, "uninstall "+identifier)
	return nil
}

func (m *fakeManager) InstallEnvironment(_ context.Context, manifest domain.EnvironmentManifest, path string, _ int) error {
	m.environments = append(m.environments, manifest)
	m.manifestPath = path
	for _, spec := range manifest.Specs {
		name := domain.ParsePackageSpec(spec).Name
		if _, ok := m.installed[name]; !ok {
			m.add(name)
		}
	}
	return nil
}

func (m *fakeManager) FindInstalled(context.Context) ([]domain.InstalledRecord, error) {
	return nil, nil
}

func (m *fakeManager) Compilers(context.Context) ([]domain.RegisteredCompiler, error) {
	return nil, nil
}

func (m *fakeManager) FindCompilers(context.Context) error {
	m.findCompilers++
	return nil
}

func (m *fakeManager) AddCompiler(context.Context, string) error { return nil }

func (m *fakeManager) Location(context.Context, string) (string, error) { return "", nil }

// ViewAdd links bin/<name> to the package's store identifier.
func (m *fakeManager) ViewAdd(_ context.Context, req domain.ViewRequest) error {
	head := strings.Fields(req.Specs[0])[0]
	name, _, _ := strings.Cut(head, domain.VersionSeparator)
	name, _, _ = strings.Cut(name, domain.CompilerGlyph)
	link := filepath.Join(req.Dir, "bin", name)
	if _, err := os.Lstat(link); err == nil {
		return nil
	}
	return os.Symlink(filepath.Join("/opt/store", m.installed[name]), link)
}

func (m *fakeManager) ViewRemove(_ context.Context, dir string, name string) error {
	m.events = append(m.events, "view-remove "+name)
	err := os.Remove(filepath.Join(dir, "bin", name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (m *fakeManager) Repos(context.Context) ([]string, error) {
	return slices.Clone(m.repos), nil
}

func (m *fakeManager) AddRepo(context.Context, string) error {
	m.repos = append(m.repos, domain.RepoName)
	m.events = append(m.events, "repo-add")
	return nil
}

func (m *fakeManager) RemoveRepo(_ context.Context, name string) error {
	m.repos = slices.DeleteFunc(m.repos, func(r string) bool { return r == name })
	m.events = append(m.events, "repo-rm "+name)
	return nil
}

func (m *fakeManager) Mirrors(context.Context) (string, error) {
	return strings.Join(m.mirrors, "\n"), nil
}

func (m *fakeManager) AddMirror(_ context.Context, name string, url string) error {
	m.mirrors = append(m.mirrors, name+" "+url)
	return nil
}

func (m *fakeManager) CreateMirror(_ context.Context, _ string, spec string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, spec)
	return nil
}

// fakeFactory hands out one shared fakeManager.
type fakeFactory struct {
	pm          *fakeManager
	provisioned []string
}

func (f *fakeFactory) SelectTag(cfg domain.ManagerConfig, _ domain.Release) (string, error) {
	if cfg.Tag != "" {
		return cfg.Tag, nil
	}
	return cfg.DefaultTag, nil
}

func (f *fakeFactory) Provision(_ context.Context, sroot domain.SROOT, _ string, tag string) error {
	f.provisioned = append(f.provisioned, sroot.ManagerRoot()+"@"+tag)
	if err := os.MkdirAll(filepath.Dir(sroot.ManagerBin()), 0o750); err != nil {
		return err
	}
	return os.WriteFile(sroot.ManagerBin(), []byte("#!/bin/sh\n"), 0o600)
}

func (f *fakeFactory) Open(domain.SROOT, string, *domain.BuildContext) ports.PackageManager {
	return f.pm
}

// fakeRunner answers os_arch.sh with a fixed SROOT name and records scripts.
type fakeRunner struct {
	arch    []string
	scripts []domain.Script
}

func (r *fakeRunner) Output(_ context.Context, cmd domain.Command) (domain.CommandResult, error) {
	if filepath.Base(cmd.Args[0]) != domain.ArchScript {
		return domain.CommandResult{ExitCode: 1}, nil
	}
	if _, err := os.Stat(cmd.Args[0]); err != nil {
		return domain.CommandResult{}, err
	}
	arch, _ := cmd.Env.Lookup("ARCH")
	r.arch = append(r.arch, arch)
	return domain.CommandResult{Stdout: srootName + "\n"}, nil
}

func (r *fakeRunner) Run(context.Context, domain.Command) error { return nil }

func (r *fakeRunner) RunScript(_ context.Context, script domain.Script) error {
	r.scripts = append(r.scripts, script)
	return nil
}
