package execution

import "github.com/TruZillah/Assessment-GliderAI/internal/domain/value"

// Request describes one invocation of user-submitted code. Requests are
// created per call and never retained.
type Request struct {
	ID         string
	Language   Language
	Source     string
	EntryPoint string
	Args       []value.Value
}
