// Package docker runs commands inside single-use containers, one container
// per command, using the Docker Engine API.
package docker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	typesimage "github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"

	"github.com/TruZillah/Assessment-GliderAI/internal/sandbox"
)

const containerWorkdir = "/workspace"

// Runner implements sandbox.Runner on Docker containers.
type Runner struct {
	cli apiClient

	mu     sync.Mutex
	pulled map[string]error
}

var _ sandbox.Runner = (*Runner)(nil)

// New constructs a Runner connected to the Docker daemon from the environment.
func New() (*Runner, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("docker sandbox: create client: %w", err)
	}
	return newRunner(cli), nil
}

func newRunner(cli apiClient) *Runner {
	return &Runner{
		cli:    cli,
		pulled: make(map[string]error),
	}
}

// Run executes the command in a fresh container. The container is removed on
// every exit path, including timeouts.
func (r *Runner) Run(ctx context.Context, cmd sandbox.Command) (*sandbox.Result, error) {
	if len(cmd.Argv) == 0 {
		return nil, fmt.Errorf("docker sandbox: empty command line")
	}
	if cmd.Image == "" {
		return nil, fmt.Errorf("docker sandbox: command missing image")
	}

	if err := r.ensureImage(ctx, cmd.Image); err != nil {
		return nil, err
	}

	attachStdin := cmd.Stdin != ""
	containerID, cleanup, err := r.createContainer(ctx, cmd, attachStdin)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	if err := r.copyFiles(ctx, containerID, cmd.Files); err != nil {
		return nil, fmt.Errorf("copy files: %w", err)
	}

	var attach types.HijackedResponse
	if attachStdin {
		attach, err = r.cli.ContainerAttach(ctx, containerID, container.AttachOptions{
			Stream: true,
			Stdin:  true,
		})
		if err != nil {
			return nil, fmt.Errorf("attach container: %w", err)
		}
		defer attach.Close()
	}

	start := time.Now()
	if err := r.cli.ContainerStart(ctx, containerID, container.StartOptions{}); err != nil {
		return nil, fmt.Errorf("start container: %w", err)
	}

	if attachStdin && attach.Conn != nil {
		if _, err := io.Copy(attach.Conn, strings.NewReader(cmd.Stdin)); err != nil {
			return nil, fmt.Errorf("write stdin: %w", err)
		}
		if closer, ok := attach.Conn.(interface{ CloseWrite() error }); ok {
			_ = closer.CloseWrite()
		}
	}

	waitCtx := ctx
	var cancel context.CancelFunc
	if cmd.Timeout > 0 {
		waitCtx, cancel = context.WithTimeout(ctx, cmd.Timeout)
	}
	status, err := r.waitForExit(waitCtx, containerID)
	if cancel != nil {
		cancel()
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && cmd.Timeout > 0 && ctx.Err() == nil {
			return r.handleTimeLimit(containerID, start)
		}
		return nil, err
	}

	inspect, err := r.cli.ContainerInspect(ctx, containerID)
	if err != nil {
		return nil, fmt.Errorf("inspect container: %w", err)
	}

	stdout, stderr, err := r.fetchLogs(ctx, containerID)
	if err != nil {
		return nil, fmt.Errorf("fetch logs: %w", err)
	}

	result := &sandbox.Result{
		ExitCode: int(status.StatusCode),
		Stdout:   stdout,
		Stderr:   stderr,
		Duration: time.Since(start),
	}
	if inspect.State != nil && inspect.State.OOMKilled {
		result.OOMKilled = true
	}

	if len(cmd.Collect) > 0 && result.ExitCode == 0 {
		result.Files = make(map[string][]byte, len(cmd.Collect))
		for _, name := range cmd.Collect {
			data, err := r.copyFileFromContainer(ctx, containerID, path.Join(containerWorkdir, name))
			if err != nil {
				return nil, fmt.Errorf("collect artifact %s: %w", name, err)
			}
			result.Files[name] = data
		}
	}

	return result, nil
}

// Close releases the Docker client.
func (r *Runner) Close() error {
	return r.cli.Close()
}

func (r *Runner) ensureImage(ctx context.Context, ref string) error {
	r.mu.Lock()
	pullErr, done := r.pulled[ref]
	r.mu.Unlock()
	if done {
		return pullErr
	}

	err := r.pullImage(ctx, ref)

	r.mu.Lock()
	r.pulled[ref] = err
	r.mu.Unlock()
	return err
}

func (r *Runner) pullImage(ctx context.Context, ref string) error {
	reader, err := r.cli.ImagePull(ctx, ref, typesimage.PullOptions{})
	if err != nil {
		return fmt.Errorf("pull image %s: %w", ref, err)
	}
	defer reader.Close()
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return fmt.Errorf("consume pull output for %s: %w", ref, err)
	}
	return nil
}

func (r *Runner) createContainer(ctx context.Context, cmd sandbox.Command, attachStdin bool) (string, func(), error) {
	hostConfig := &container.HostConfig{
		Resources: container.Resources{
			NanoCPUs: 1_000_000_000,
		},
	}
	if cmd.MemoryLimitBytes > 0 {
		hostConfig.Resources.Memory = cmd.MemoryLimitBytes
		hostConfig.Resources.MemorySwap = cmd.MemoryLimitBytes
	}

	resp, err := r.cli.ContainerCreate(
		ctx,
		&container.Config{
			Image:           cmd.Image,
			Cmd:             cmd.Argv,
			AttachStdout:    true,
			AttachStderr:    true,
			AttachStdin:     attachStdin,
			OpenStdin:       attachStdin,
			StdinOnce:       attachStdin,
			WorkingDir:      containerWorkdir,
			NetworkDisabled: true,
		},
		hostConfig,
		nil,
		nil,
		"",
	)
	if err != nil {
		return "", nil, fmt.Errorf("create container: %w", err)
	}

	cleanup := func() {
		_ = r.cli.ContainerRemove(context.Background(), resp.ID, container.RemoveOptions{Force: true})
	}

	return resp.ID, cleanup, nil
}

func (r *Runner) handleTimeLimit(containerID string, start time.Time) (*sandbox.Result, error) {
	stopCtx, cancelStop := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelStop()

	if err := r.cli.ContainerStop(stopCtx, containerID, container.StopOptions{}); err != nil && !client.IsErrNotFound(err) {
		return nil, fmt.Errorf("stop container after time limit: %w", err)
	}

	waitCtx, cancelWait := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelWait()

	status, waitErr := r.waitForExit(waitCtx, containerID)
	if waitErr != nil && !errors.Is(waitErr, context.DeadlineExceeded) && !client.IsErrNotFound(waitErr) {
		return nil, fmt.Errorf("wait for container after time limit: %w", waitErr)
	}

	stdout, stderr, err := r.fetchLogs(context.Background(), containerID)
	if err != nil {
		return nil, fmt.Errorf("fetch logs: %w", err)
	}

	exitCode := -1
	if status != nil {
		exitCode = int(status.StatusCode)
	}

	return &sandbox.Result{
		ExitCode: exitCode,
		Stdout:   stdout,
		Stderr:   stderr,
		TimedOut: true,
		Duration: time.Since(start),
	}, nil
}

func (r *Runner) waitForExit(ctx context.Context, containerID string) (*container.WaitResponse, error) {
	statusCh, errCh := r.cli.ContainerWait(ctx, containerID, container.WaitConditionNotRunning)
	select {
	case status := <-statusCh:
		if status.Error != nil {
			return nil, fmt.Errorf("container error: %s", status.Error.Message)
		}
		return &status, nil
	case err := <-errCh:
		return nil, fmt.Errorf("wait for container: %w", err)
	case <-ctx.Done():
		return nil, fmt.Errorf("wait for container: %w", ctx.Err())
	}
}

func (r *Runner) fetchLogs(ctx context.Context, containerID string) (stdout, stderr string, err error) {
	logs, err := r.cli.ContainerLogs(ctx, containerID, container.LogsOptions{ShowStdout: true, ShowStderr: true})
	if err != nil {
		return "", "", err
	}
	defer logs.Close()

	var stdoutBuf, stderrBuf bytes.Buffer
	if _, err := stdcopy.StdCopy(&stdoutBuf, &stderrBuf, logs); err != nil {
		return "", "", err
	}

	return stdoutBuf.String(), stderrBuf.String(), nil
}
