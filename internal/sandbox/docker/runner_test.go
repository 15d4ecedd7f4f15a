package docker

import (
	"context"
	"testing"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"

	"github.com/TruZillah/Assessment-GliderAI/internal/sandbox"
)

func TestRunCapturesDemuxedOutput(t *testing.T) {
	t.Parallel()

	cli := newFakeClient()
	runner := newRunner(cli)

	cli.onCreate(func(id string) {
		cli.setWaitSequence(id, waitCall{status: &container.WaitResponse{StatusCode: 2}})
		cli.setLogs(id, "hello", "oops")
	})

	result, err := runner.Run(context.Background(), sandbox.Command{
		Argv:  []string{"python", "main.py"},
		Image: "python:3.12-alpine",
		Files: []sandbox.FileSpec{{Name: "main.py", Data: []byte("print('hello')")}},
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.Stdout != "hello" || result.Stderr != "oops" {
		t.Fatalf("unexpected output %q / %q", result.Stdout, result.Stderr)
	}
	if result.ExitCode != 2 {
		t.Fatalf("unexpected exit code %d", result.ExitCode)
	}
	if len(cli.copyToCalls) != 1 || cli.copyToCalls[0].path != containerWorkdir {
		t.Fatalf("files were not copied into the container workdir")
	}
	if len(cli.removeCalls) != 1 {
		t.Fatalf("container must be removed after run, got %d removals", len(cli.removeCalls))
	}
}

func TestRunTimeoutStopsContainer(t *testing.T) {
	t.Parallel()

	cli := newFakeClient()
	runner := newRunner(cli)

	cli.onCreate(func(id string) {
		// First wait blocks past the deadline; the post-stop wait returns.
		cli.setWaitSequence(id,
			waitCall{block: true},
			waitCall{status: &container.WaitResponse{StatusCode: 137}},
		)
		cli.setLogs(id, "partial", "")
	})

	result, err := runner.Run(context.Background(), sandbox.Command{
		Argv:    []string{"python", "main.py"},
		Image:   "python:3.12-alpine",
		Timeout: 50 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !result.TimedOut {
		t.Fatalf("expected timeout classification")
	}
	if len(cli.stopCalls) != 1 {
		t.Fatalf("expected the container to be force-stopped")
	}
	if result.Stdout != "partial" {
		t.Fatalf("partial output must survive a timeout, got %q", result.Stdout)
	}
	if len(cli.removeCalls) != 1 {
		t.Fatalf("container must be removed after a timeout")
	}
}

func TestRunCollectsArtifacts(t *testing.T) {
	t.Parallel()

	cli := newFakeClient()
	runner := newRunner(cli)

	cli.onCreate(func(id string) {
		cli.setWaitSequence(id, waitCall{status: &container.WaitResponse{StatusCode: 0}})
		cli.setLogs(id, "", "")
		cli.setCollectable(id, containerWorkdir+"/program", []byte{0x7f, 'E', 'L', 'F'})
	})

	result, err := runner.Run(context.Background(), sandbox.Command{
		Argv:    []string{"g++", "-o", "program", "main.cpp"},
		Image:   "gcc:14",
		Collect: []string{"program"},
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(result.Files["program"]) != 4 {
		t.Fatalf("artifact not collected: %v", result.Files)
	}
}

func TestRunSurfacesOOMKill(t *testing.T) {
	t.Parallel()

	cli := newFakeClient()
	runner := newRunner(cli)

	cli.onCreate(func(id string) {
		cli.setWaitSequence(id, waitCall{status: &container.WaitResponse{StatusCode: 137}})
		cli.setInspect(id, types.ContainerJSON{
			ContainerJSONBase: &types.ContainerJSONBase{
				State: &types.ContainerState{OOMKilled: true},
			},
		})
		cli.setLogs(id, "", "")
	})

	result, err := runner.Run(context.Background(), sandbox.Command{
		Argv:             []string{"python", "main.py"},
		Image:            "python:3.12-alpine",
		MemoryLimitBytes: 16 << 20,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !result.OOMKilled {
		t.Fatalf("expected OOM kill to be surfaced")
	}
}

func TestRunPullsImageOncePerRef(t *testing.T) {
	t.Parallel()

	cli := newFakeClient()
	runner := newRunner(cli)

	for range 2 {
		cli.onCreate(func(id string) {
			cli.setWaitSequence(id, waitCall{status: &container.WaitResponse{StatusCode: 0}})
			cli.setLogs(id, "", "")
		})
	}

	for range 2 {
		if _, err := runner.Run(context.Background(), sandbox.Command{
			Argv:  []string{"true"},
			Image: "python:3.12-alpine",
		}); err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	}

	if len(cli.imagePulls) != 1 {
		t.Fatalf("expected a single image pull, got %d", len(cli.imagePulls))
	}
}

func TestRunRequiresImage(t *testing.T) {
	t.Parallel()

	runner := newRunner(newFakeClient())
	if _, err := runner.Run(context.Background(), sandbox.Command{Argv: []string{"true"}}); err == nil {
		t.Fatalf("expected error for missing image")
	}
}
