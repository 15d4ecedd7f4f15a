package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/TruZillah/Assessment-GliderAI/internal/ai"
	"github.com/TruZillah/Assessment-GliderAI/internal/app/judge"
	"github.com/TruZillah/Assessment-GliderAI/internal/catalog"
	"github.com/TruZillah/Assessment-GliderAI/internal/domain/execution"
	"github.com/TruZillah/Assessment-GliderAI/internal/domain/value"
	"github.com/TruZillah/Assessment-GliderAI/internal/tracer"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"languages": execution.Supported(),
	})
}

type problemSummary struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (s *Server) handleListProblems(w http.ResponseWriter, r *http.Request) {
	problems := s.catalog.Problems()
	out := make([]problemSummary, 0, len(problems))
	for _, p := range problems {
		out = append(out, problemSummary{Name: p.Name, Title: p.Title, Description: p.Description})
	}
	writeJSON(w, http.StatusOK, out)
}

type problemDetail struct {
	Name        string        `json:"name"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Signature   string        `json:"signature"`
	EntryPoint  string        `json:"entryPoint"`
	Stub        string        `json:"stub"`
	Hints       *hintPayload  `json:"hints,omitempty"`
	Terms       []string      `json:"terms"`
	Tests       []testPayload `json:"tests"`
}

type hintPayload struct {
	Bullets    []string `json:"bullets"`
	Pseudocode string   `json:"pseudocode"`
}

type testPayload struct {
	Number   int           `json:"number"`
	Args     []value.Value `json:"args"`
	Expected value.Value   `json:"expected"`
}

func (s *Server) handleGetProblem(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	problem, err := s.catalog.Get(name)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	lang := execution.LanguagePython
	if raw := r.URL.Query().Get("language"); raw != "" {
		lang, err = execution.ParseLanguage(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	detail := problemDetail{
		Name:        problem.Name,
		Title:       problem.Title,
		Description: problem.Description,
		Signature:   problem.Signature,
		EntryPoint:  problem.EntryPoint,
		Stub:        problem.Stub(lang),
		Terms:       catalog.Terms(name),
	}
	if hints := catalog.Hints(name); len(hints) > 0 {
		hint, ok := hints[lang]
		if !ok {
			hint, ok = hints[execution.LanguagePython]
		}
		if ok {
			detail.Hints = &hintPayload{Bullets: hint.Bullets, Pseudocode: hint.Pseudocode}
		}
	}
	for _, test := range problem.Tests {
		detail.Tests = append(detail.Tests, testPayload{Number: test.Number, Args: test.Args, Expected: test.Expected})
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleGlossary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Glossary())
}

type submitRequest struct {
	Problem  string `json:"problem"`
	Language string `json:"language"`
	Code     string `json:"code"`
}

type submitResponse struct {
	ID      string              `json:"id"`
	Passed  int                 `json:"passed"`
	Failed  int                 `json:"failed"`
	Total   int                 `json:"total"`
	Results []testResultPayload `json:"results"`
}

type testResultPayload struct {
	Number     int              `json:"number"`
	Passed     bool             `json:"passed"`
	Status     execution.Status `json:"status,omitempty"`
	Args       []value.Value    `json:"args,omitempty"`
	Expected   value.Value      `json:"expected"`
	Actual     *value.Value     `json:"actual,omitempty"`
	Stdout     string           `json:"stdout,omitempty"`
	Stderr     string           `json:"stderr,omitempty"`
	DurationMs int64            `json:"duration_ms"`
	Error      string           `json:"error,omitempty"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Code == "" {
		writeError(w, http.StatusBadRequest, "code is required")
		return
	}
	if req.Language == "" {
		req.Language = string(execution.LanguagePython)
	}
	lang, err := execution.ParseLanguage(req.Language)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sub := judge.Submission{
		ID:       uuid.NewString(),
		Problem:  req.Problem,
		Language: lang,
		Source:   req.Code,
	}
	report, err := s.judge.Evaluate(r.Context(), sub)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownProblem) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.log.Error("evaluation failed", "submission", sub.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "evaluation failed")
		return
	}

	resp := submitResponse{
		ID:     sub.ID,
		Passed: report.Passed,
		Failed: report.Failed,
		Total:  len(report.Results),
	}
	for _, result := range report.Results {
		resp.Results = append(resp.Results, testResultPayload{
			Number:     result.Case.Number,
			Passed:     result.Passed,
			Status:     result.Status,
			Args:       result.Case.Args,
			Expected:   result.Case.Expected,
			Actual:     result.Actual,
			Stdout:     result.Stdout,
			Stderr:     result.Stderr,
			DurationMs: result.Duration.Milliseconds(),
			Error:      result.Error,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

type debugRequest struct {
	Problem        string `json:"problem"`
	Code           string `json:"code"`
	TestIndex      *int   `json:"testIndex"`
	CustomArgsJSON string `json:"customArgsJson"`
	Breakpoints    []int  `json:"breakpoints"`
	MaxSteps       int    `json:"maxSteps"`
}

type debugResponse struct {
	State      tracer.State    `json:"state"`
	Trace      []tracer.Record `json:"trace"`
	Truncated  bool            `json:"truncated"`
	Stdout     string          `json:"stdout"`
	Stderr     string          `json:"stderr,omitempty"`
	Return     string          `json:"return,omitempty"`
	Error      string          `json:"error,omitempty"`
	ArgsUsed   []value.Value   `json:"argsUsed"`
	DurationMs int64           `json:"durationMs"`
}

func (s *Server) handleDebug(w http.ResponseWriter, r *http.Request) {
	var req debugRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Code == "" {
		writeError(w, http.StatusBadRequest, "code is required")
		return
	}
	problem, err := s.catalog.Get(req.Problem)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	args, err := resolveDebugArgs(problem, req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	trace, err := s.tracer.Run(r.Context(), tracer.Request{
		Source:      req.Code,
		EntryPoint:  problem.EntryPoint,
		Args:        args,
		Breakpoints: req.Breakpoints,
		MaxSteps:    req.MaxSteps,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	records := trace.Records
	if records == nil {
		records = []tracer.Record{}
	}
	if args == nil {
		args = []value.Value{}
	}
	writeJSON(w, http.StatusOK, debugResponse{
		State:      trace.State,
		Trace:      records,
		Truncated:  trace.Truncated,
		Stdout:     trace.Stdout,
		Stderr:     trace.Stderr,
		Return:     trace.Return,
		Error:      trace.Err,
		ArgsUsed:   args,
		DurationMs: trace.Duration.Milliseconds(),
	})
}

// resolveDebugArgs picks the trace arguments: an explicit test case, a custom
// JSON array, or the problem's first test case.
func resolveDebugArgs(problem catalog.Problem, req debugRequest) ([]value.Value, error) {
	switch {
	case req.TestIndex != nil:
		i := *req.TestIndex
		if i < 0 || i >= len(problem.Tests) {
			return nil, errors.New("invalid testIndex")
		}
		return problem.Tests[i].Args, nil
	case strings.TrimSpace(req.CustomArgsJSON) != "":
		var args []value.Value
		if err := json.Unmarshal([]byte(req.CustomArgsJSON), &args); err != nil {
			return nil, errors.New("customArgsJson must be a JSON array")
		}
		return args, nil
	case len(problem.Tests) > 0:
		return problem.Tests[0].Args, nil
	default:
		return nil, nil
	}
}

type askRequest struct {
	Prompt             string `json:"prompt"`
	Problem            string `json:"problem"`
	Language           string `json:"language"`
	Code               string `json:"code"`
	IncludeDescription bool   `json:"includeDescription"`
	IncludeCode        bool   `json:"includeCode"`
	IncludeHints       bool   `json:"includeHints"`
	IncludeTests       bool   `json:"includeTests"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}
	lang := execution.LanguagePython
	if req.Language != "" {
		if parsed, err := execution.ParseLanguage(req.Language); err == nil {
			lang = parsed
		}
	}

	answer, err := s.tutor.Ask(r.Context(), ai.Question{
		Prompt:             req.Prompt,
		Problem:            req.Problem,
		Language:           lang,
		Code:               req.Code,
		IncludeDescription: req.IncludeDescription,
		IncludeCode:        req.IncludeCode,
		IncludeHints:       req.IncludeHints,
		IncludeTests:       req.IncludeTests,
	})
	if err != nil {
		if errors.Is(err, ai.ErrDisabled) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.log.Error("tutor request failed", "error", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, askResponse{Answer: answer})
}

func (s *Server) handleAskStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tutor.Status())
}
