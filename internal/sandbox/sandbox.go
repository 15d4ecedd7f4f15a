// Package sandbox defines the process-isolation contract shared by the
// subprocess and container backends. One Command equals one child process in
// one disposable working directory.
package sandbox

import (
	"context"
	"time"
)

// DefaultOutputLimit bounds how much of each output channel is kept in memory.
const DefaultOutputLimit = 1 << 20 // 1 MiB

// FileSpec describes a file materialized into the working directory before
// the command starts.
type FileSpec struct {
	Name string
	Mode int64
	Data []byte
}

// Command describes a single isolated child-process run.
type Command struct {
	// Argv is the command line; Argv[0] is resolved against PATH.
	Argv []string
	// Files are written into the run's working directory before start.
	Files []FileSpec
	// Collect names files retrieved from the working directory after exit,
	// so compile and run can stay two fully isolated calls.
	Collect []string
	// Stdin is fed to the process and then closed.
	Stdin string
	// Timeout caps wall-clock time. Zero means no limit.
	Timeout time.Duration
	// Image selects the container image; backends without containers ignore it.
	Image string
	// MemoryLimitBytes caps memory where the backend supports it. Zero means no limit.
	MemoryLimitBytes int64
}

// Result captures the observable outcome of a Command.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	// TimedOut is set when the process was terminated at the deadline.
	// A timed-out run is a classification, not a runner error.
	TimedOut bool
	// OOMKilled is set by backends able to observe memory-limit kills.
	OOMKilled bool
	Duration  time.Duration
	// Files holds the collected artifacts, keyed by name.
	Files map[string][]byte
}

// Runner executes commands in isolation. Implementations must clean up the
// working directory (or container) on every exit path.
type Runner interface {
	Run(ctx context.Context, cmd Command) (*Result, error)
	Close() error
}
