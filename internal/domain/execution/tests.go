package execution

import (
	"time"

	"github.com/TruZillah/Assessment-GliderAI/internal/domain/value"
)

// TestCase pairs literal arguments with the expected return value. Test
// cases are owned by a problem definition and never mutated.
type TestCase struct {
	Number   int
	Args     []value.Value
	Expected value.Value
}

// TestResult captures the outcome of evaluating a single TestCase.
// Every case is evaluated independently: a failing case never prevents its
// siblings from running.
type TestResult struct {
	Case     TestCase
	Passed   bool
	Status   Status
	Actual   *value.Value
	Stdout   string
	Stderr   string
	Duration time.Duration
	Error    string
}

// Report aggregates the per-case results of one submission.
type Report struct {
	Problem  string
	Language Language
	Passed   int
	Failed   int
	Results  []TestResult
	Duration time.Duration
}
