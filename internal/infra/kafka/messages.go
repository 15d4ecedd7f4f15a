package kafka

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/TruZillah/Assessment-GliderAI/internal/app/judge"
	"github.com/TruZillah/Assessment-GliderAI/internal/domain/execution"
	"github.com/TruZillah/Assessment-GliderAI/internal/domain/value"
)

const (
	messageTypeSubmission = "submission"
	messageTypeDone       = "done"
)

type submissionEnvelope struct {
	Type     string `json:"type"`
	ID       string `json:"id"`
	Problem  string `json:"problem"`
	Language string `json:"language"`
	Source   string `json:"source"`
}

type reportEnvelope struct {
	ID         string               `json:"id"`
	Problem    string               `json:"problem"`
	Language   execution.Language   `json:"language"`
	Passed     int                  `json:"passed"`
	Failed     int                  `json:"failed"`
	DurationMs int64                `json:"duration_ms"`
	Error      string               `json:"error,omitempty"`
	Tests      []testResultEnvelope `json:"tests,omitempty"`
	Timestamp  time.Time            `json:"timestamp"`
}

type testResultEnvelope struct {
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

func decodeSubmissionMessage(msg kafkago.Message) (judge.Submission, error) {
	var envelope submissionEnvelope
	if err := json.Unmarshal(msg.Value, &envelope); err != nil {
		return judge.Submission{}, fmt.Errorf("decode message: %w", err)
	}

	msgType := envelope.Type
	if msgType == "" {
		msgType = messageTypeSubmission
	}

	switch msgType {
	case messageTypeSubmission:
		return envelope.toSubmission(msg)
	case messageTypeDone:
		return judge.Submission{}, io.EOF
	default:
		return judge.Submission{}, fmt.Errorf("unknown message type %q", msgType)
	}
}

func (e submissionEnvelope) toSubmission(msg kafkago.Message) (judge.Submission, error) {
	if e.Source == "" {
		return judge.Submission{}, fmt.Errorf("submission message missing source")
	}
	if e.Problem == "" {
		return judge.Submission{}, fmt.Errorf("submission message missing problem")
	}
	lang, err := execution.ParseLanguage(e.Language)
	if err != nil {
		return judge.Submission{}, err
	}

	id := e.ID
	if id == "" {
		id = string(msg.Key)
	}
	if id == "" {
		id = fmt.Sprintf("%s:%d", msg.Topic, msg.Offset)
	}

	return judge.Submission{
		ID:       id,
		Problem:  e.Problem,
		Language: lang,
		Source:   e.Source,
	}, nil
}

func encodeReport(sub judge.Submission, report *execution.Report, evalErr error) ([]byte, error) {
	payload, err := json.Marshal(makeReportEnvelope(sub, report, evalErr))
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return payload, nil
}

func makeReportEnvelope(sub judge.Submission, report *execution.Report, evalErr error) reportEnvelope {
	envelope := reportEnvelope{
		ID:        sub.ID,
		Problem:   sub.Problem,
		Language:  sub.Language,
		Timestamp: time.Now().UTC(),
	}
	if evalErr != nil {
		envelope.Error = evalErr.Error()
	}
	if report == nil {
		return envelope
	}

	envelope.Problem = report.Problem
	envelope.Language = report.Language
	envelope.Passed = report.Passed
	envelope.Failed = report.Failed
	envelope.DurationMs = report.Duration.Milliseconds()
	envelope.Tests = make([]testResultEnvelope, 0, len(report.Results))
	for _, res := range report.Results {
		envelope.Tests = append(envelope.Tests, testResultEnvelope{
			Number:     res.Case.Number,
			Passed:     res.Passed,
			Status:     res.Status,
			Args:       res.Case.Args,
			Expected:   res.Case.Expected,
			Actual:     res.Actual,
			Stdout:     res.Stdout,
			Stderr:     res.Stderr,
			DurationMs: res.Duration.Milliseconds(),
			Error:      res.Error,
		})
	}
	return envelope
}
