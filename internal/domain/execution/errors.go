package execution

import "fmt"

// CompileError reports a failed compilation step. The run phase never starts.
type CompileError struct {
	Message string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile error: %s", e.Message)
}

// RuntimeError reports a non-zero exit of the run phase.
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error: %s", e.Message)
}

// TimeoutError reports that a phase exceeded its wall-clock limit.
type TimeoutError struct {
	Phase string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s phase exceeded time limit", e.Phase)
}

// ResultNotFoundError reports output with no sentinel-prefixed result line.
type ResultNotFoundError struct {
	RawOutput string
}

func (e *ResultNotFoundError) Error() string {
	return "no result line found in program output"
}

// EntryPointError reports submitted code that does not define the expected
// function, or defines it with an incompatible shape.
type EntryPointError struct {
	EntryPoint string
	Message    string
}

func (e *EntryPointError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("entry point %q: %s", e.EntryPoint, e.Message)
	}
	return fmt.Sprintf("entry point %q not found in submitted code", e.EntryPoint)
}
