// Package producer supplies built-in sample submissions. It backs the demo
// command and smoke tests, standing in for the Kafka consumer when no broker
// is around.
package producer

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/TruZillah/Assessment-GliderAI/internal/app/judge"
	"github.com/TruZillah/Assessment-GliderAI/internal/domain/execution"
)

// Service implements judge.Source by handing out a fixed submission
// catalogue, one per call, then io.EOF.
type Service struct {
	mu          sync.Mutex
	submissions []judge.Submission
	index       int
}

var _ judge.Source = (*Service)(nil)

// NewService builds a producer with the default sample set: a correct and a
// wrong summation in Python, plus correct solutions in the other languages.
func NewService() *Service {
	return &Service{
		submissions: []judge.Submission{
			{
				ID:       "summation-python",
				Problem:  "summation",
				Language: execution.LanguagePython,
				Source:   "def summation(a, b):\n    return a + b\n",
			},
			{
				ID:       "summation-python-wrong",
				Problem:  "summation",
				Language: execution.LanguagePython,
				Source:   "def summation(a, b):\n    return a - b\n",
			},
			{
				ID:       "summation-javascript",
				Problem:  "summation",
				Language: execution.LanguageJavaScript,
				Source:   "function summation(a, b) {\n  return a + b;\n}\n",
			},
			{
				ID:       "summation-java",
				Problem:  "summation",
				Language: execution.LanguageJava,
				Source:   "class Solution {\n    long summation(long a, long b) {\n        return a + b;\n    }\n}\n",
			},
			{
				ID:       "summation-cpp",
				Problem:  "summation",
				Language: execution.LanguageCPP,
				Source:   "long long summation(long long a, long long b) {\n    return a + b;\n}\n",
			},
		},
	}
}

// Next hands out the next sample submission, or io.EOF once the catalogue is
// exhausted.
func (s *Service) Next(ctx context.Context) (judge.Submission, error) {
	select {
	case <-ctx.Done():
		return judge.Submission{}, ctx.Err()
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index >= len(s.submissions) {
		return judge.Submission{}, io.EOF
	}

	sub := s.submissions[s.index]
	s.index++

	return sub, nil
}

// Add extends the catalogue at runtime. Submissions without an ID get a
// generated one.
func (s *Service) Add(sub judge.Submission) {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.submissions = append(s.submissions, sub)
}
