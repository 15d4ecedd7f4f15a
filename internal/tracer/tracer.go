// Package tracer runs a Python submission under step instrumentation and
// returns the ordered sequence of call/line/return records. Every traced run
// executes in its own sandboxed process, so the interpreter-global trace hook
// can never leak into an unrelated execution; the generated driver also
// uninstalls it in a finally block before the process reports back.
package tracer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/TruZillah/Assessment-GliderAI/internal/domain/value"
	"github.com/TruZillah/Assessment-GliderAI/internal/runtime/native"
	"github.com/TruZillah/Assessment-GliderAI/internal/sandbox"
)

// State describes where a traced run ended up.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StateCompleted State = "completed"
	StateFailed    State = "failed"
)

const (
	// DefaultMaxSteps caps the number of recorded events per trace.
	DefaultMaxSteps = 500
	// DefaultTimeout caps the traced run's wall-clock time.
	DefaultTimeout = 5 * time.Second

	traceSentinel = "TRACE:"
	traceMainFile = "trace.py"
)

// Record is one instrumented event. Locals hold bounded textual previews,
// never live references.
type Record struct {
	Event  string            `json:"event"`
	Line   int               `json:"line"`
	Source string            `json:"source"`
	Locals map[string]string `json:"locals"`
	Return string            `json:"return,omitempty"`
}

// Request describes one trace invocation. An empty breakpoint set records
// every event; a non-empty set records only events on the listed lines.
type Request struct {
	Source      string
	EntryPoint  string
	Args        []value.Value
	Breakpoints []int
	MaxSteps    int
}

// Trace is the outcome of one traced run. A Failed state still carries the
// records collected before the failure.
type Trace struct {
	State     State
	Records   []Record
	Truncated bool
	Stdout    string
	Stderr    string
	Return    string
	Err       string
	Duration  time.Duration
}

// Config describes how traced runs execute.
type Config struct {
	Runner           sandbox.Runner
	PythonBin        string
	Timeout          time.Duration
	Image            string
	MemoryLimitBytes int64
}

// Tracer executes trace requests. Safe for concurrent use: each run gets its
// own process.
type Tracer struct {
	cfg Config
}

// New builds a tracer. The runner stays owned by the caller.
func New(cfg Config) (*Tracer, error) {
	if cfg.Runner == nil {
		return nil, fmt.Errorf("tracer: nil sandbox runner")
	}
	if cfg.PythonBin == "" {
		cfg.PythonBin = "python3"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Tracer{cfg: cfg}, nil
}

// Run traces one invocation of the entry point.
func (t *Tracer) Run(ctx context.Context, req Request) (*Trace, error) {
	if strings.TrimSpace(req.Source) == "" {
		return nil, fmt.Errorf("tracer: empty source")
	}
	if req.EntryPoint == "" {
		return nil, fmt.Errorf("tracer: empty entry point")
	}
	args, err := renderArgs(req.Args)
	if err != nil {
		return nil, fmt.Errorf("tracer: %w", err)
	}
	maxSteps := req.MaxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}

	driver, err := traceDriver(req.Source, req.EntryPoint, args, req.Breakpoints, maxSteps)
	if err != nil {
		return nil, err
	}

	res, err := t.cfg.Runner.Run(ctx, sandbox.Command{
		Argv:             []string{t.cfg.PythonBin, traceMainFile},
		Files:            []sandbox.FileSpec{{Name: traceMainFile, Mode: 0o644, Data: []byte(driver)}},
		Timeout:          t.cfg.Timeout,
		Image:            t.cfg.Image,
		MemoryLimitBytes: t.cfg.MemoryLimitBytes,
	})
	if err != nil {
		return nil, fmt.Errorf("tracer: %w", err)
	}

	if res.TimedOut {
		return &Trace{
			State:    StateFailed,
			Stderr:   res.Stderr,
			Err:      "time limit exceeded",
			Duration: res.Duration,
		}, nil
	}

	trace, err := parseTrace(res.Stdout)
	if err != nil {
		if res.ExitCode != 0 {
			return &Trace{
				State:    StateFailed,
				Stderr:   res.Stderr,
				Err:      lastLine(res.Stderr, fmt.Sprintf("exit status %d", res.ExitCode)),
				Duration: res.Duration,
			}, nil
		}
		return nil, err
	}
	trace.Stderr = res.Stderr
	trace.Duration = res.Duration
	return trace, nil
}

func renderArgs(args []value.Value) ([]string, error) {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		lit, err := native.PythonLiteral(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		out = append(out, lit)
	}
	return out, nil
}

// wireTrace is the JSON document the driver prints on the sentinel line.
type wireTrace struct {
	State     string   `json:"state"`
	Records   []Record `json:"records"`
	Truncated bool     `json:"truncated"`
	Stdout    string   `json:"stdout"`
	Return    *string  `json:"return"`
	Error     *string  `json:"error"`
}

func parseTrace(stdout string) (*Trace, error) {
	for _, line := range strings.Split(stdout, "\n") {
		line = strings.TrimRight(line, "\r")
		if !strings.HasPrefix(line, traceSentinel) {
			continue
		}
		var wire wireTrace
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, traceSentinel)), &wire); err != nil {
			return nil, fmt.Errorf("tracer: decode trace document: %w", err)
		}
		trace := &Trace{
			State:     State(wire.State),
			Records:   wire.Records,
			Truncated: wire.Truncated,
			Stdout:    wire.Stdout,
		}
		if wire.Return != nil {
			trace.Return = *wire.Return
		}
		if wire.Error != nil {
			trace.Err = *wire.Error
		}
		return trace, nil
	}
	return nil, fmt.Errorf("tracer: no trace document in output")
}

func lastLine(text, fallback string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return fallback
}
