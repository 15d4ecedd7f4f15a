// Package ai proxies tutoring questions to an OpenAI chat model, enriching
// them with problem context from the catalog. The feature is optional: a
// Tutor built without an API key reports itself as disabled and rejects
// questions instead of failing at startup.
package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/TruZillah/Assessment-GliderAI/internal/catalog"
	"github.com/TruZillah/Assessment-GliderAI/internal/domain/execution"
	"github.com/TruZillah/Assessment-GliderAI/internal/domain/value"
)

// ErrDisabled is returned by Ask when no API key was configured.
var ErrDisabled = errors.New("ai tutor is disabled: missing OPENAI_API_KEY")

const (
	// DefaultModel is used when the configuration names no model.
	DefaultModel = openai.GPT4oMini

	temperature = 0.3
	maxTokens   = 700

	// maxCodeContext caps how much of the current editor buffer is attached
	// to a question.
	maxCodeContext = 4000
)

// chatClient is the slice of the OpenAI client the tutor needs. The real
// *openai.Client satisfies it; tests substitute a fake.
type chatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Config selects the OpenAI credentials and model.
type Config struct {
	APIKey string
	Model  string
}

// Status reports whether the tutor can answer questions.
type Status struct {
	Enabled bool   `json:"enabled"`
	Message string `json:"message"`
}

// Question is one tutoring request. The Include flags control which parts of
// the problem context are attached to the prompt.
type Question struct {
	Prompt             string
	Problem            string
	Language           execution.Language
	Code               string
	IncludeDescription bool
	IncludeCode        bool
	IncludeHints       bool
	IncludeTests       bool
}

// Tutor answers algorithm questions with problem-aware context.
type Tutor struct {
	client  chatClient
	model   string
	catalog *catalog.Catalog
	log     *slog.Logger
}

// New builds a tutor. An empty API key yields a disabled tutor rather than
// an error so the rest of the service can start without one.
func New(cfg Config, cat *catalog.Catalog, log *slog.Logger) *Tutor {
	if log == nil {
		log = slog.Default()
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	t := &Tutor{model: model, catalog: cat, log: log}
	if cfg.APIKey != "" {
		t.client = openai.NewClient(cfg.APIKey)
	}
	return t
}

// newTutor wires an explicit client; used by tests.
func newTutor(client chatClient, model string, cat *catalog.Catalog, log *slog.Logger) *Tutor {
	t := New(Config{Model: model}, cat, log)
	t.client = client
	return t
}

// Enabled reports whether an API key was configured.
func (t *Tutor) Enabled() bool { return t.client != nil }

// Status describes the tutor's availability for the status endpoint.
func (t *Tutor) Status() Status {
	if t.Enabled() {
		return Status{Enabled: true, Message: "enabled"}
	}
	return Status{Enabled: false, Message: "missing OPENAI_API_KEY in environment/.env"}
}

// Ask composes the question with the requested context and returns the
// model's answer.
func (t *Tutor) Ask(ctx context.Context, q Question) (string, error) {
	if !t.Enabled() {
		return "", ErrDisabled
	}
	prompt := strings.TrimSpace(q.Prompt)
	if prompt == "" {
		return "", errors.New("prompt is required")
	}

	full := prompt
	if parts := t.contextParts(q); len(parts) > 0 {
		full += "\n\n---\nContext:\n" + strings.Join(parts, "\n\n")
	}

	lang := languageName(q.Language)
	req := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf(
					"You are a concise, friendly %[1]s algorithms tutor. "+
						"Explain step by step when helpful, and prefer clarity over verbosity. "+
						"Use short %[1]s code snippets only if explicitly asked or when crucial. "+
						"Provide language-specific best practices and idioms for %[1]s.",
					lang,
				),
			},
			{Role: openai.ChatMessageRoleUser, Content: full},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	resp, err := t.client.CreateChatCompletion(ctx, req)
	if err != nil {
		t.log.Error("tutor request failed", "model", t.model, "error", err)
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty response from model")
	}
	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	if answer == "" {
		return "", errors.New("empty response from model")
	}
	return answer, nil
}

func (t *Tutor) contextParts(q Question) []string {
	parts := []string{fmt.Sprintf("The user is working in %s.", languageName(q.Language))}

	if q.Problem != "" && t.catalog != nil {
		if problem, err := t.catalog.Get(q.Problem); err == nil {
			if q.IncludeDescription {
				parts = append(parts, fmt.Sprintf("Problem: %s\nDescription: %s", problem.Title, problem.Description))
			}
			if q.IncludeTests && len(problem.Tests) > 0 {
				var lines []string
				for _, test := range problem.Tests {
					lines = append(lines, fmt.Sprintf("- args=%s expected=%s", formatValues(test.Args), test.Expected.String()))
				}
				parts = append(parts, "Sample tests:\n"+strings.Join(lines, "\n"))
			}
			if q.IncludeHints {
				if hint, ok := hintFor(q.Problem, q.Language); ok {
					if len(hint.Bullets) > 0 {
						var bullets []string
						for _, b := range hint.Bullets {
							bullets = append(bullets, "• "+b)
						}
						parts = append(parts, "Hints:\n"+strings.Join(bullets, "\n"))
					}
					if pseudo := strings.TrimSpace(hint.Pseudocode); pseudo != "" {
						parts = append(parts, "Pseudocode:\n"+pseudo)
					}
				}
			}
		}
	}

	if q.IncludeCode {
		if snippet := strings.TrimSpace(q.Code); snippet != "" {
			if len(snippet) > maxCodeContext {
				snippet = snippet[:maxCodeContext] + "\n# … truncated …"
			}
			parts = append(parts, "Current code:\n"+snippet)
		}
	}
	return parts
}

// hintFor falls back to the generic Python hints when the requested language
// has none of its own.
func hintFor(problem string, lang execution.Language) (catalog.Hint, bool) {
	hints := catalog.Hints(problem)
	if hint, ok := hints[lang]; ok {
		return hint, true
	}
	hint, ok := hints[execution.LanguagePython]
	return hint, ok
}

func formatValues(args []value.Value) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func languageName(lang execution.Language) string {
	switch lang {
	case execution.LanguagePython:
		return "Python"
	case execution.LanguageJavaScript:
		return "JavaScript"
	case execution.LanguageJava:
		return "Java"
	case execution.LanguageCPP:
		return "C++"
	default:
		return "programming"
	}
}
