package runtime

import (
	"context"
	"errors"
	"fmt"

	"github.com/TruZillah/Assessment-GliderAI/internal/domain/execution"
)

// Registry routes execution requests to the executor registered for the
// request's language. It is safe for concurrent use once constructed.
type Registry struct {
	executors map[execution.Language]Executor
}

var _ Engine = (*Registry)(nil)

// NewRegistry builds a registry from the given executors. Each executor
// must report a distinct, non-empty language.
func NewRegistry(execs ...Executor) (*Registry, error) {
	if len(execs) == 0 {
		return nil, errors.New("runtime: no executors registered")
	}
	executors := make(map[execution.Language]Executor, len(execs))
	for _, ex := range execs {
		if ex == nil {
			return nil, errors.New("runtime: nil executor")
		}
		lang := ex.Language()
		if lang == "" {
			return nil, errors.New("runtime: executor with empty language")
		}
		if _, ok := executors[lang]; ok {
			return nil, fmt.Errorf("runtime: duplicate executor for language %q", lang)
		}
		executors[lang] = ex
	}
	return &Registry{executors: executors}, nil
}

// Languages lists the registered languages in the canonical support order.
func (r *Registry) Languages() []execution.Language {
	langs := make([]execution.Language, 0, len(r.executors))
	for _, lang := range execution.Supported() {
		if _, ok := r.executors[lang]; ok {
			langs = append(langs, lang)
		}
	}
	return langs
}

// Execute dispatches the request to the matching executor. Requests for
// languages without a registered executor produce an outcome with status
// unsupported_language rather than an error.
func (r *Registry) Execute(ctx context.Context, req execution.Request) (*execution.Outcome, error) {
	ex, ok := r.executors[req.Language]
	if !ok {
		failure := &execution.UnsupportedLanguageError{Language: req.Language}
		return execution.Fail(execution.StatusUnsupportedLanguage, failure, "", ""), nil
	}
	return ex.Execute(ctx, req)
}

// Close releases every registered executor, collecting all errors.
func (r *Registry) Close() error {
	var errs []error
	for lang, ex := range r.executors {
		if err := ex.Close(); err != nil {
			errs = append(errs, fmt.Errorf("runtime: close %s executor: %w", lang, err))
		}
	}
	return errors.Join(errs...)
}
