package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/TruZillah/Assessment-GliderAI/internal/app/judge"
	"github.com/TruZillah/Assessment-GliderAI/internal/domain/execution"
	"github.com/TruZillah/Assessment-GliderAI/internal/domain/value"
)

type fakeReader struct {
	messages []kafkago.Message
	index    int
	err      error
	closed   bool
}

func (f *fakeReader) ReadMessage(_ context.Context) (kafkago.Message, error) {
	if f.err != nil {
		return kafkago.Message{}, f.err
	}
	if f.index >= len(f.messages) {
		return kafkago.Message{}, io.EOF
	}
	msg := f.messages[f.index]
	f.index++
	return msg, nil
}

func (f *fakeReader) Close() error {
	f.closed = true
	return nil
}

type fakeWriter struct {
	messages []kafkago.Message
	err      error
	closed   bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestNewConsumerValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewConsumer(ConsumerConfig{}); err == nil {
		t.Fatalf("expected error when brokers missing")
	}
	if _, err := NewConsumer(ConsumerConfig{Brokers: []string{"localhost:9092"}}); err == nil {
		t.Fatalf("expected error when topic missing")
	}
}

func TestNewConsumerAppliesDefaults(t *testing.T) {
	t.Parallel()

	consumer, err := NewConsumer(ConsumerConfig{
		Brokers: []string{"localhost:9092"},
		Topic:   "submissions",
	})
	if err != nil {
		t.Fatalf("NewConsumer returned error: %v", err)
	}
	if err := consumer.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
}

func TestConsumerNextParsesEnvelope(t *testing.T) {
	t.Parallel()

	envelope := submissionEnvelope{
		Problem:  "two_sum",
		Language: string(execution.LanguagePython),
		Source:   "def two_sum(nums, target):\n    return [-1, -1]\n",
	}
	payload, err := json.Marshal(envelope)
	if err != nil {
		t.Fatalf("failed to marshal envelope: %v", err)
	}

	reader := &fakeReader{messages: []kafkago.Message{{Key: []byte("sub-1"), Value: payload}}}
	consumer := newConsumer(reader)

	sub, err := consumer.Next(context.Background())
	if err != nil {
		t.Fatalf("Next returned error: %v", err)
	}

	if sub.ID != "sub-1" {
		t.Fatalf("expected submission ID from key, got %q", sub.ID)
	}
	if sub.Problem != "two_sum" {
		t.Fatalf("unexpected problem: %q", sub.Problem)
	}
	if sub.Language != execution.LanguagePython {
		t.Fatalf("unexpected language: %q", sub.Language)
	}
}

func TestConsumerNextValidationErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		envelope submissionEnvelope
		match    string
	}{
		{
			name:     "missing source",
			envelope: submissionEnvelope{Problem: "two_sum", Language: string(execution.LanguagePython)},
			match:    "missing source",
		},
		{
			name:     "missing problem",
			envelope: submissionEnvelope{Language: string(execution.LanguagePython), Source: "x = 1"},
			match:    "missing problem",
		},
		{
			name:     "unknown language",
			envelope: submissionEnvelope{Problem: "two_sum", Language: "cobol", Source: "x = 1"},
			match:    "unsupported language",
		},
		{
			name:     "unknown type",
			envelope: submissionEnvelope{Type: "weird", Problem: "two_sum", Language: string(execution.LanguagePython), Source: "x = 1"},
			match:    "unknown message type",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			payload, err := json.Marshal(tc.envelope)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			reader := &fakeReader{messages: []kafkago.Message{{Value: payload}}}
			consumer := newConsumer(reader)

			_, err = consumer.Next(context.Background())
			if err == nil || !strings.Contains(err.Error(), tc.match) {
				t.Fatalf("expected error containing %q, got %v", tc.match, err)
			}
		})
	}
}

func TestConsumerNextDoneMessage(t *testing.T) {
	t.Parallel()

	payload, err := json.Marshal(submissionEnvelope{Type: messageTypeDone})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	reader := &fakeReader{messages: []kafkago.Message{{Value: payload}}}
	consumer := newConsumer(reader)

	_, err = consumer.Next(context.Background())
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF for done message, got %v", err)
	}
}

func TestConsumerNextFallbackID(t *testing.T) {
	t.Parallel()

	payload, err := json.Marshal(submissionEnvelope{
		Problem:  "summation",
		Language: string(execution.LanguagePython),
		Source:   "def summation(a, b):\n    return a + b\n",
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	reader := &fakeReader{messages: []kafkago.Message{{Topic: "submissions", Offset: 42, Value: payload}}}
	consumer := newConsumer(reader)

	sub, err := consumer.Next(context.Background())
	if err != nil {
		t.Fatalf("Next returned error: %v", err)
	}
	if sub.ID != "submissions:42" {
		t.Fatalf("expected topic:offset fallback ID, got %q", sub.ID)
	}
}

func TestNewPublisherValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewPublisher(PublisherConfig{}); err == nil {
		t.Fatalf("expected error when brokers missing")
	}
	if _, err := NewPublisher(PublisherConfig{Brokers: []string{"localhost:9092"}}); err == nil {
		t.Fatalf("expected error when topic missing")
	}
}

func TestPublisherPublishReportEncodesEnvelope(t *testing.T) {
	t.Parallel()

	writer := &fakeWriter{}
	publisher := newPublisher(writer)

	actual := value.Ints(0, 1)
	sub := judge.Submission{ID: "sub-9", Problem: "two_sum", Language: execution.LanguagePython}
	report := &execution.Report{
		Problem:  "two_sum",
		Language: execution.LanguagePython,
		Passed:   1,
		Failed:   0,
		Duration: 30 * time.Millisecond,
		Results: []execution.TestResult{{
			Case: execution.TestCase{
				Number:   1,
				Args:     []value.Value{value.Ints(2, 7, 11, 15), value.Int(9)},
				Expected: value.Ints(0, 1),
			},
			Passed:   true,
			Status:   execution.StatusOK,
			Actual:   &actual,
			Duration: 30 * time.Millisecond,
		}},
	}

	if err := publisher.PublishReport(context.Background(), sub, report, nil); err != nil {
		t.Fatalf("PublishReport returned error: %v", err)
	}
	if len(writer.messages) != 1 {
		t.Fatalf("expected one message, got %d", len(writer.messages))
	}
	msg := writer.messages[0]
	if string(msg.Key) != "sub-9" {
		t.Fatalf("expected submission ID as key, got %q", msg.Key)
	}

	var envelope reportEnvelope
	if err := json.Unmarshal(msg.Value, &envelope); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if envelope.ID != "sub-9" || envelope.Problem != "two_sum" {
		t.Fatalf("unexpected envelope header: %+v", envelope)
	}
	if envelope.Passed != 1 || envelope.Failed != 0 {
		t.Fatalf("unexpected counts: %+v", envelope)
	}
	if len(envelope.Tests) != 1 || !envelope.Tests[0].Passed {
		t.Fatalf("unexpected tests: %+v", envelope.Tests)
	}
	if !value.Equal(*envelope.Tests[0].Actual, value.Ints(0, 1)) {
		t.Fatalf("actual value did not round-trip: %+v", envelope.Tests[0].Actual)
	}
	if envelope.Timestamp.IsZero() {
		t.Fatalf("expected timestamp to be set")
	}
}

func TestPublisherPublishReportErrorOnly(t *testing.T) {
	t.Parallel()

	writer := &fakeWriter{}
	publisher := newPublisher(writer)

	sub := judge.Submission{ID: "sub-bad", Problem: "no_such_problem", Language: execution.LanguagePython}
	if err := publisher.PublishReport(context.Background(), sub, nil, errors.New("catalog: unknown problem")); err != nil {
		t.Fatalf("PublishReport returned error: %v", err)
	}

	var envelope reportEnvelope
	if err := json.Unmarshal(writer.messages[0].Value, &envelope); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if envelope.Error == "" {
		t.Fatalf("expected error to be recorded in envelope")
	}
	if len(envelope.Tests) != 0 {
		t.Fatalf("expected no test results, got %+v", envelope.Tests)
	}
}

func TestPublisherWriteFailure(t *testing.T) {
	t.Parallel()

	writer := &fakeWriter{err: errors.New("broker down")}
	publisher := newPublisher(writer)

	err := publisher.PublishReport(context.Background(), judge.Submission{ID: "x"}, nil, nil)
	if err == nil || !strings.Contains(err.Error(), "broker down") {
		t.Fatalf("expected write error, got %v", err)
	}
}

func TestPublisherClose(t *testing.T) {
	t.Parallel()

	writer := &fakeWriter{}
	publisher := newPublisher(writer)
	if err := publisher.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if !writer.closed {
		t.Fatalf("expected writer to be closed")
	}
}
