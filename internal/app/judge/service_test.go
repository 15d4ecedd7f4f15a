package judge

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/TruZillah/Assessment-GliderAI/internal/catalog"
	"github.com/TruZillah/Assessment-GliderAI/internal/domain/execution"
	"github.com/TruZillah/Assessment-GliderAI/internal/domain/value"
)

// fakeEngine answers each Execute call through a caller-supplied function.
type fakeEngine struct {
	mu    sync.Mutex
	calls []execution.Request
	fn    func(execution.Request) (*execution.Outcome, error)
}

func (f *fakeEngine) Execute(_ context.Context, req execution.Request) (*execution.Outcome, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()
	return f.fn(req)
}

func (f *fakeEngine) Close() error { return nil }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// sums behaves like a correct summation submission.
func sums(req execution.Request) (*execution.Outcome, error) {
	v := value.Int(req.Args[0].AsInt() + req.Args[1].AsInt())
	return &execution.Outcome{Status: execution.StatusOK, Value: &v}, nil
}

func TestEvaluateAllCasesPass(t *testing.T) {
	engine := &fakeEngine{fn: sums}
	svc := NewService(engine, catalog.New(), quietLogger())

	report, err := svc.Evaluate(context.Background(), Submission{
		ID:       "sub-1",
		Problem:  "summation",
		Language: execution.LanguagePython,
		Source:   "def summation(a, b):\n    return a + b\n",
	})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if report.Failed != 0 || report.Passed != len(report.Results) {
		t.Fatalf("report = %+v, want all passed", report)
	}
	for _, res := range report.Results {
		if !res.Passed || res.Status != execution.StatusOK {
			t.Errorf("case %d: %+v", res.Case.Number, res)
		}
	}
	if len(engine.calls) != len(report.Results) {
		t.Errorf("engine calls = %d, want one per case", len(engine.calls))
	}
	if engine.calls[0].EntryPoint != "summation" {
		t.Errorf("entry point = %q", engine.calls[0].EntryPoint)
	}
}

func TestEvaluateFailingCaseDoesNotStopSiblings(t *testing.T) {
	call := 0
	engine := &fakeEngine{fn: func(req execution.Request) (*execution.Outcome, error) {
		call++
		if call == 1 {
			return execution.Fail(execution.StatusRuntimeError, &execution.RuntimeError{Message: "boom"}, "", "stack trace"), nil
		}
		return sums(req)
	}}
	svc := NewService(engine, catalog.New(), quietLogger())

	report, err := svc.Evaluate(context.Background(), Submission{
		Problem:  "summation",
		Language: execution.LanguagePython,
		Source:   "def summation(a, b):\n    return a + b\n",
	})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(report.Results) != 3 {
		t.Fatalf("results = %d, want the full suite", len(report.Results))
	}
	if report.Passed != 2 || report.Failed != 1 {
		t.Fatalf("passed/failed = %d/%d, want 2/1", report.Passed, report.Failed)
	}
	first := report.Results[0]
	if first.Passed || first.Status != execution.StatusRuntimeError || first.Error == "" {
		t.Errorf("first case = %+v, want runtime error recorded", first)
	}
}

func TestEvaluateWrongAnswer(t *testing.T) {
	engine := &fakeEngine{fn: func(req execution.Request) (*execution.Outcome, error) {
		v := value.Int(42)
		return &execution.Outcome{Status: execution.StatusOK, Value: &v}, nil
	}}
	svc := NewService(engine, catalog.New(), quietLogger())

	report, err := svc.Evaluate(context.Background(), Submission{
		Problem:  "summation",
		Language: execution.LanguageJava,
		Source:   "public class Solution { public int summation(int a, int b) { return 42; } }",
	})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	// 42 matches none of the expected sums.
	if report.Passed != 0 || report.Failed != 3 {
		t.Fatalf("passed/failed = %d/%d, want 0/3", report.Passed, report.Failed)
	}
	for _, result := range report.Results {
		if result.Passed || result.Status != execution.StatusOK {
			t.Errorf("result = %+v, want a clean run marked as failed", result)
		}
		if result.Actual == nil || !value.Equal(*result.Actual, value.Int(42)) {
			t.Errorf("actual = %v, want the engine's value recorded", result.Actual)
		}
	}
}

func TestEvaluateNumericToleranceAcrossLanguages(t *testing.T) {
	// A JavaScript harness reports 5 as 5, a C++ double comes back as 5.0;
	// both must pass an Integer(5) expectation.
	engine := &fakeEngine{fn: func(req execution.Request) (*execution.Outcome, error) {
		v := value.Float(float64(req.Args[0].AsInt() + req.Args[1].AsInt()))
		return &execution.Outcome{Status: execution.StatusOK, Value: &v}, nil
	}}
	svc := NewService(engine, catalog.New(), quietLogger())

	report, err := svc.Evaluate(context.Background(), Submission{
		Problem:  "summation",
		Language: execution.LanguageCPP,
		Source:   "double summation(int a, int b) { return a + b; }",
	})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if report.Failed != 0 {
		t.Fatalf("report = %+v, want float results to match integer expectations", report)
	}
}

func TestEvaluateUnknownProblem(t *testing.T) {
	svc := NewService(&fakeEngine{fn: sums}, catalog.New(), quietLogger())
	if _, err := svc.Evaluate(context.Background(), Submission{Problem: "nope"}); err == nil {
		t.Fatal("expected unknown-problem error")
	}
}

type sliceSource struct {
	mu   sync.Mutex
	subs []Submission
}

func (s *sliceSource) Next(ctx context.Context) (Submission, error) {
	if err := ctx.Err(); err != nil {
		return Submission{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.subs) == 0 {
		return Submission{}, io.EOF
	}
	sub := s.subs[0]
	s.subs = s.subs[1:]
	return sub, nil
}

func TestEvaluateFromSourceDrainsAndReports(t *testing.T) {
	engine := &fakeEngine{fn: sums}
	svc := NewService(engine, catalog.New(), quietLogger())

	source := &sliceSource{subs: []Submission{
		{ID: "a", Problem: "summation", Language: execution.LanguagePython, Source: "def summation(a, b):\n    return a + b\n"},
		{ID: "b", Problem: "missing_problem", Language: execution.LanguagePython, Source: "def f():\n    pass\n"},
	}}

	var mu sync.Mutex
	got := map[string]error{}
	err := svc.EvaluateFromSource(context.Background(), source, 0, 2, func(sub Submission, report *execution.Report, err error) {
		mu.Lock()
		defer mu.Unlock()
		got[sub.ID] = err
		if sub.ID == "a" && (report == nil || report.Failed != 0) {
			t.Errorf("submission a: report = %+v", report)
		}
	})
	if err != nil {
		t.Fatalf("EvaluateFromSource: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("reports = %d, want 2", len(got))
	}
	if got["a"] != nil {
		t.Errorf("submission a err = %v", got["a"])
	}
	if got["b"] == nil {
		t.Error("submission b must surface its unknown-problem error")
	}
}

func TestEvaluateFromSourceStopsAtLimit(t *testing.T) {
	engine := &fakeEngine{fn: sums}
	svc := NewService(engine, catalog.New(), quietLogger())

	source := &sliceSource{subs: []Submission{
		{ID: "a", Problem: "summation", Language: execution.LanguagePython, Source: "def summation(a, b):\n    return a + b\n"},
		{ID: "b", Problem: "summation", Language: execution.LanguagePython, Source: "def summation(a, b):\n    return a + b\n"},
	}}

	count := 0
	var mu sync.Mutex
	err := svc.EvaluateFromSource(context.Background(), source, 1, 1, func(Submission, *execution.Report, error) {
		mu.Lock()
		count++
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("EvaluateFromSource: %v", err)
	}
	if count != 1 {
		t.Fatalf("evaluations = %d, want 1", count)
	}
}

func TestEvaluateFromSourcePropagatesSourceError(t *testing.T) {
	engine := &fakeEngine{fn: sums}
	svc := NewService(engine, catalog.New(), quietLogger())

	broken := sourceFunc(func(ctx context.Context) (Submission, error) {
		return Submission{}, errors.New("broker unreachable")
	})
	if err := svc.EvaluateFromSource(context.Background(), broken, 0, 1, nil); err == nil {
		t.Fatal("expected source error to propagate")
	}
}

type sourceFunc func(ctx context.Context) (Submission, error)

func (f sourceFunc) Next(ctx context.Context) (Submission, error) { return f(ctx) }
