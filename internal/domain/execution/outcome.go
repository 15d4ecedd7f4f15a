package execution

import (
	"time"

	"github.com/TruZillah/Assessment-GliderAI/internal/domain/value"
)

// Outcome captures everything observable about one execution: the parsed
// return value (when present), the captured output channels and a status
// classification. Outcomes are not retained beyond the call that produced
// them.
type Outcome struct {
	Status   Status
	Value    *value.Value
	Stdout   string
	Stderr   string
	Duration time.Duration

	// Failure carries the classified error when Status is not StatusOK.
	Failure error
}

// OK reports whether the execution completed and produced a parsed value.
func (o *Outcome) OK() bool { return o != nil && o.Status == StatusOK }

// Fail builds a failed outcome with the supplied classification.
func Fail(status Status, failure error, stdout, stderr string) *Outcome {
	return &Outcome{
		Status:  status,
		Stdout:  stdout,
		Stderr:  stderr,
		Failure: failure,
	}
}
