// Package local runs commands as plain subprocesses, each in its own
// disposable temporary directory.
package local

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/TruZillah/Assessment-GliderAI/internal/sandbox"
)

// Runner implements sandbox.Runner on top of os/exec.
type Runner struct {
	// OutputLimit bounds captured stdout/stderr. Zero selects the default.
	OutputLimit int
}

var _ sandbox.Runner = (*Runner)(nil)

// New constructs a subprocess runner with default limits.
func New() *Runner {
	return &Runner{}
}

// Run executes the command in a fresh temporary directory. The directory is
// removed on every exit path, including timeouts and setup failures.
func (r *Runner) Run(ctx context.Context, cmd sandbox.Command) (*sandbox.Result, error) {
	if len(cmd.Argv) == 0 {
		return nil, fmt.Errorf("local runner: empty command line")
	}

	workdir, err := os.MkdirTemp("", "glider-run-*")
	if err != nil {
		return nil, fmt.Errorf("create working directory: %w", err)
	}
	defer os.RemoveAll(workdir)

	for _, file := range cmd.Files {
		mode := fs.FileMode(file.Mode)
		if mode == 0 {
			mode = 0o644
		}
		if err := os.WriteFile(filepath.Join(workdir, file.Name), file.Data, mode); err != nil {
			return nil, fmt.Errorf("write %s: %w", file.Name, err)
		}
	}

	runCtx := ctx
	var cancel context.CancelFunc
	if cmd.Timeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, cmd.Timeout)
		defer cancel()
	}

	child := exec.CommandContext(runCtx, cmd.Argv[0], cmd.Argv[1:]...)
	child.Dir = workdir
	child.Stdin = strings.NewReader(cmd.Stdin)
	// A new process group lets the deadline kill grandchildren too.
	child.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	child.Cancel = func() error {
		return syscall.Kill(-child.Process.Pid, syscall.SIGKILL)
	}
	child.WaitDelay = 2 * time.Second

	limit := r.OutputLimit
	if limit <= 0 {
		limit = sandbox.DefaultOutputLimit
	}
	stdout := newBoundedBuffer(limit)
	stderr := newBoundedBuffer(limit)
	child.Stdout = stdout
	child.Stderr = stderr

	start := time.Now()
	runErr := child.Run()
	result := &sandbox.Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	switch {
	case runErr == nil:
		result.ExitCode = 0
	case errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil:
		result.TimedOut = true
		result.ExitCode = -1
		return result, nil
	default:
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return nil, fmt.Errorf("start %s: %w", cmd.Argv[0], runErr)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	if len(cmd.Collect) > 0 {
		result.Files = make(map[string][]byte, len(cmd.Collect))
		for _, name := range cmd.Collect {
			data, err := os.ReadFile(filepath.Join(workdir, name))
			if err != nil {
				if result.ExitCode != 0 {
					continue
				}
				return nil, fmt.Errorf("collect artifact %s: %w", name, err)
			}
			result.Files[name] = data
		}
	}

	return result, nil
}

// Close implements sandbox.Runner. The subprocess backend holds no state.
func (r *Runner) Close() error { return nil }
