package runtime

import (
	"context"

	"github.com/TruZillah/Assessment-GliderAI/internal/domain/execution"
)

// Executor runs submissions for a single language: it renders arguments,
// wraps user code in a harness, compiles when the language needs it, runs
// the program and parses the sentinel result line.
type Executor interface {
	Language() execution.Language
	Execute(ctx context.Context, req execution.Request) (*execution.Outcome, error)
	Close() error
}

// Engine dispatches execution requests to language-specific executors.
type Engine interface {
	Execute(ctx context.Context, req execution.Request) (*execution.Outcome, error)
	Close() error
}
