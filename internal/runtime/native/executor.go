package native

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/TruZillah/Assessment-GliderAI/internal/domain/execution"
	"github.com/TruZillah/Assessment-GliderAI/internal/sandbox"
)

var errNoRunner = errors.New("native: nil sandbox runner")

// base carries the pieces every language executor shares.
type base struct {
	lang execution.Language
	cfg  Config
}

func (b *base) Language() execution.Language { return b.lang }

// Close releases nothing: the sandbox runner is shared across executors and
// owned by the caller.
func (b *base) Close() error { return nil }

// validate rejects requests that cannot possibly run. A source that never
// mentions the entry point fails here instead of producing a confusing
// compile or runtime error.
func (b *base) validate(req execution.Request) *execution.Outcome {
	if strings.TrimSpace(req.Source) == "" {
		return execution.Fail(execution.StatusInvalidRequest, fmt.Errorf("empty source"), "", "")
	}
	if req.EntryPoint == "" {
		return execution.Fail(execution.StatusInvalidRequest, fmt.Errorf("empty entry point"), "", "")
	}
	if !strings.Contains(req.Source, req.EntryPoint) {
		return execution.Fail(execution.StatusInvalidRequest, &execution.EntryPointError{EntryPoint: req.EntryPoint}, "", "")
	}
	return nil
}

// invalid wraps a marshalling failure as an invalid-request outcome.
func invalid(err error) *execution.Outcome {
	return execution.Fail(execution.StatusInvalidRequest, err, "", "")
}

// compile runs the build command. The second return value is a terminal
// outcome (compile error, time limit, memory limit); when it is nil the
// returned artifacts feed the run phase.
func (b *base) compile(ctx context.Context, cmd sandbox.Command) (map[string][]byte, *execution.Outcome, error) {
	cmd.Timeout = b.cfg.CompileTimeout
	cmd.Image = b.cfg.image(b.lang)
	cmd.MemoryLimitBytes = b.cfg.MemoryLimitBytes

	res, err := b.cfg.Runner.Run(ctx, cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("compile %s: %w", b.lang, err)
	}
	switch {
	case res.TimedOut:
		return nil, failFrom(res, execution.StatusTimeLimit, &execution.TimeoutError{Phase: "compile"}), nil
	case res.OOMKilled:
		return nil, failFrom(res, execution.StatusMemoryLimit, &execution.CompileError{Message: "compiler exceeded memory limit"}), nil
	case res.ExitCode != 0:
		return nil, failFrom(res, execution.StatusCompileError, &execution.CompileError{Message: diagnostic(res)}), nil
	}
	return res.Files, nil, nil
}

// run executes the program and parses the sentinel line out of its stdout.
func (b *base) run(ctx context.Context, cmd sandbox.Command) (*execution.Outcome, error) {
	cmd.Timeout = b.cfg.RunTimeout
	cmd.Image = b.cfg.image(b.lang)
	cmd.MemoryLimitBytes = b.cfg.MemoryLimitBytes

	res, err := b.cfg.Runner.Run(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", b.lang, err)
	}
	switch {
	case res.TimedOut:
		return failFrom(res, execution.StatusTimeLimit, &execution.TimeoutError{Phase: "run"}), nil
	case res.OOMKilled:
		return failFrom(res, execution.StatusMemoryLimit, &execution.RuntimeError{Message: "memory limit exceeded"}), nil
	case res.ExitCode != 0:
		return failFrom(res, execution.StatusRuntimeError, &execution.RuntimeError{Message: diagnostic(res)}), nil
	}

	v, rest, err := parseResult(res.Stdout)
	if err != nil {
		return failFrom(res, execution.StatusNoResult, err), nil
	}
	return &execution.Outcome{
		Status:   execution.StatusOK,
		Value:    &v,
		Stdout:   rest,
		Stderr:   res.Stderr,
		Duration: res.Duration,
	}, nil
}

func failFrom(res *sandbox.Result, status execution.Status, failure error) *execution.Outcome {
	out := execution.Fail(status, failure, res.Stdout, res.Stderr)
	out.Duration = res.Duration
	return out
}

// diagnostic extracts the most useful line from stderr for the error message.
// Interpreters and compilers alike put the summary on the final line.
func diagnostic(res *sandbox.Result) string {
	lines := strings.Split(strings.TrimRight(res.Stderr, "\n"), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return fmt.Sprintf("exit status %d", res.ExitCode)
}
