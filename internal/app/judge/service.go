// Package judge evaluates submissions against the problem catalog's test
// suites using the language execution engine.
package judge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/TruZillah/Assessment-GliderAI/internal/catalog"
	"github.com/TruZillah/Assessment-GliderAI/internal/domain/execution"
	"github.com/TruZillah/Assessment-GliderAI/internal/domain/value"
	runtimex "github.com/TruZillah/Assessment-GliderAI/internal/runtime"
)

// Submission is one user attempt at a catalog problem.
type Submission struct {
	ID       string
	Problem  string
	Language execution.Language
	Source   string
}

// Source supplies submissions to evaluate. Next returns io.EOF when no more
// submissions will arrive.
type Source interface {
	Next(ctx context.Context) (Submission, error)
}

// Service coordinates submission evaluation through the execution engine.
type Service struct {
	engine  runtimex.Engine
	catalog *catalog.Catalog
	log     *slog.Logger
}

// NewService constructs a judge over the given engine and catalog.
func NewService(engine runtimex.Engine, cat *catalog.Catalog, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{engine: engine, catalog: cat, log: log}
}

// Execute runs one ad-hoc request outside any test suite.
func (s *Service) Execute(ctx context.Context, req execution.Request) (*execution.Outcome, error) {
	return s.engine.Execute(ctx, req)
}

// Evaluate runs a submission against its problem's full test suite. Every
// case is evaluated independently: a failing case never prevents its siblings
// from running, so the report always covers the whole suite.
func (s *Service) Evaluate(ctx context.Context, sub Submission) (*execution.Report, error) {
	problem, err := s.catalog.Get(sub.Problem)
	if err != nil {
		return nil, err
	}

	report := &execution.Report{
		Problem:  problem.Name,
		Language: sub.Language,
		Results:  make([]execution.TestResult, 0, len(problem.Tests)),
	}

	for _, test := range problem.Tests {
		result := s.runCase(ctx, sub, problem, test)
		report.Duration += result.Duration
		if result.Passed {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Results = append(report.Results, result)
	}

	s.log.Info("submission evaluated",
		"submission", sub.ID,
		"problem", problem.Name,
		"language", sub.Language,
		"passed", report.Passed,
		"failed", report.Failed,
		"duration", report.Duration,
	)
	return report, nil
}

func (s *Service) runCase(ctx context.Context, sub Submission, problem catalog.Problem, test execution.TestCase) execution.TestResult {
	result := execution.TestResult{Case: test}

	outcome, err := s.engine.Execute(ctx, execution.Request{
		ID:         sub.ID,
		Language:   sub.Language,
		Source:     sub.Source,
		EntryPoint: problem.EntryPoint,
		Args:       test.Args,
	})
	if err != nil {
		result.Status = execution.StatusRuntimeError
		result.Error = err.Error()
		return result
	}

	result.Status = outcome.Status
	result.Actual = outcome.Value
	result.Stdout = outcome.Stdout
	result.Stderr = outcome.Stderr
	result.Duration = outcome.Duration
	if outcome.Failure != nil {
		result.Error = outcome.Failure.Error()
	}
	result.Passed = outcome.OK() && outcome.Value != nil && value.Equal(*outcome.Value, test.Expected)
	return result
}

// EvaluateFromSource pulls submissions from the source and evaluates them
// with bounded parallelism. A positive maxSubmissions stops after that many;
// otherwise it keeps consuming until the context is cancelled or the source
// signals completion via io.EOF. onReport is invoked for every finished
// evaluation.
func (s *Service) EvaluateFromSource(
	ctx context.Context,
	source Source,
	maxSubmissions int,
	maxParallel int,
	onReport func(Submission, *execution.Report, error),
) error {
	if maxParallel <= 0 {
		maxParallel = 1
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, maxParallel)
	processed := 0

	finish := func(err error) error {
		wg.Wait()
		return err
	}

	for {
		if maxSubmissions > 0 && processed >= maxSubmissions {
			return finish(nil)
		}

		sub, err := source.Next(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, io.EOF) {
				return finish(nil)
			}
			return finish(fmt.Errorf("next submission: %w", err))
		}

		sem <- struct{}{}
		wg.Add(1)
		processed++
		go func(sub Submission) {
			defer wg.Done()
			defer func() { <-sem }()

			start := time.Now()
			report, err := s.Evaluate(ctx, sub)
			if err != nil {
				s.log.Error("evaluation failed",
					"submission", sub.ID,
					"problem", sub.Problem,
					"error", err,
					"elapsed", time.Since(start),
				)
			}
			if onReport != nil {
				onReport(sub, report, err)
			}
		}(sub)
	}
}

// Close releases the underlying engine.
func (s *Service) Close() error {
	return s.engine.Close()
}
