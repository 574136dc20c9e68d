// Package shell provides the command runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/WIPACrepo/cvmfs/internal/core/domain"
	"github.com/WIPACrepo/cvmfs/internal/core/ports"
	"go.trai.ch/zerr"
)

// stderrTail bounds how much stderr is attached to a failed command's error.
const stderrTail = 4096

var _ ports.CommandRunner = (*Runner)(nil)

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Output runs cmd and captures its output without streaming it to the logger.
func (r *Runner) Output(ctx context.Context, cmd domain.Command) (domain.CommandResult, error) {
	var stdout, stderr bytes.Buffer
	outW, errW := io.Writer(&stdout), io.Writer(&stderr)
	if v, ok := ports.VertexFromContext(ctx); ok {
		outW = io.MultiWriter(outW, v.Stdout())
		errW = io.MultiWriter(errW, v.Stderr())
	}

	exitCode, err := r.exec(ctx, cmd, outW, errW)
	result := domain.CommandResult{
		ExitCode: exitCode,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}
	return result, err
}

// Run runs cmd, streaming its output line by line to the logger.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) error {
	stdoutLog := &logWriter{logger: r.logger, level: "info"}
	stderrLog := &logWriter{logger: r.logger, level: "warn"}
	tail := &tailBuffer{limit: stderrTail}

	outW, errW := io.Writer(stdoutLog), io.MultiWriter(stderrLog, tail)
	if v, ok := ports.VertexFromContext(ctx); ok {
		outW = io.MultiWriter(outW, v.Stdout())
		errW = io.MultiWriter(errW, v.Stderr())
	}

	exitCode, err := r.exec(ctx, cmd, outW, errW)
	_ = stdoutLog.Close()
	_ = stderrLog.Close()
	if err != nil {
		return err
	}
	if exitCode != 0 {
		err := zerr.With(zerr.Wrap(domain.ErrCommandFailed, cmd.String()), "exit_code", exitCode)
		if s := strings.TrimSpace(tail.String()); s != "" {
			err = zerr.With(err, "stderr", s)
		}
		return err
	}
	return nil
}

// RunScript writes script to a temporary file and runs it with bash.
func (r *Runner) RunScript(ctx context.Context, script domain.Script) error {
	dir, err := os.MkdirTemp("", "sroot-script-")
	if err != nil {
		return zerr.Wrap(err, "failed to create script directory")
	}
	defer func() { _ = os.RemoveAll(dir) }()

	text := script.Render()
	path := filepath.Join(dir, "run.sh")
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write script"), "path", path)
	}
	r.logger.Info("script:\n" + text)

	return r.Run(ctx, domain.Command{
		Args: []string{"bash", path},
		Dir:  script.Dir,
		Env:  script.Env,
	})
}

// exec runs cmd and returns its exit code. The error is non-nil only when the
// process could not be started or was interrupted.
func (r *Runner) exec(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) (int, error) {
	if len(cmd.Args) == 0 {
		return -1, zerr.Wrap(domain.ErrCommandFailed, "empty command")
	}
	r.logger.Info("cmd: " + cmd.String())

	name := cmd.Args[0]
	cmdEnv := cmd.Env.Environ(os.Environ())

	executable := name
	if !filepath.IsAbs(name) && !strings.Contains(name, string(filepath.Separator)) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, cmd.Args[1:]...) //nolint:gosec // commands are built by the builder
	c.Args[0] = name
	c.Dir = cmd.Dir
	c.Env = cmdEnv
	c.Stdout = stdout
	c.Stderr = stderr

	err := c.Run()
	if err == nil {
		return 0, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return -1, zerr.With(zerr.Wrap(ctxErr, "command interrupted"), "command", cmd.String())
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, zerr.With(zerr.Wrap(err, "failed to start command"), "command", cmd.String())
}

type logWriter struct {
	logger ports.Logger
	level  string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if w.level == "info" {
		w.logger.Info(msg)
	} else {
		w.logger.Warn(msg)
	}
}

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	limit int
	buf   []byte
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.limit; over > 0 {
		t.buf = t.buf[over:]
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	return string(t.buf)
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
