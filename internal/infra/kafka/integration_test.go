//go:build integration

package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	kafkatc "github.com/testcontainers/testcontainers-go/modules/kafka"

	"github.com/TruZillah/Assessment-GliderAI/internal/app/judge"
	"github.com/TruZillah/Assessment-GliderAI/internal/domain/execution"
	"github.com/TruZillah/Assessment-GliderAI/internal/domain/value"
	"github.com/TruZillah/Assessment-GliderAI/internal/testhelpers"
)

func TestPublisherPublishesToKafka(t *testing.T) {
	t.Parallel()

	if testing.Short() {
		t.Skip("skipping Kafka integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	kafkaContainer, err := kafkatc.Run(ctx, "confluentinc/confluent-local:7.7.0")
	if err != nil {
		t.Skipf("skipping Kafka integration test (requires Docker): %v", err)
	}
	t.Cleanup(func() {
		_ = kafkaContainer.Terminate(context.Background())
	})

	brokers, err := kafkaContainer.Brokers(ctx)
	if err != nil {
		t.Fatalf("failed to obtain bootstrap servers: %v", err)
	}
	if len(brokers) == 0 {
		t.Fatal("kafka provided zero bootstrap servers")
	}

	broker := brokers[0]
	topic := "evaluation-reports"

	if err := testhelpers.WaitForKafkaBroker(ctx, broker); err != nil {
		t.Fatalf("wait for broker: %v", err)
	}
	if err := testhelpers.EnsureKafkaTopic(ctx, broker, topic); err != nil {
		t.Fatalf("ensure topic: %v", err)
	}

	publisher, err := NewPublisher(PublisherConfig{
		Brokers: []string{broker},
		Topic:   topic,
	})
	if err != nil {
		t.Fatalf("NewPublisher failed: %v", err)
	}
	defer publisher.Close()

	sub, report := sampleEvaluation()
	if err := publisher.PublishReport(ctx, sub, report, nil); err != nil {
		t.Fatalf("PublishReport returned error: %v", err)
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers: []string{broker},
		Topic:   topic,
		GroupID: "integration-test",
	})
	t.Cleanup(func() {
		_ = reader.Close()
	})

	msgCtx, cancelRead := context.WithTimeout(ctx, 20*time.Second)
	defer cancelRead()

	msg, err := reader.ReadMessage(msgCtx)
	if err != nil {
		t.Fatalf("failed to read message: %v", err)
	}

	var envelope reportEnvelope
	if err := json.Unmarshal(msg.Value, &envelope); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}

	if envelope.ID != sub.ID {
		t.Fatalf("expected envelope ID %q, got %q", sub.ID, envelope.ID)
	}
	if envelope.Passed != report.Passed {
		t.Fatalf("expected %d passed, got %d", report.Passed, envelope.Passed)
	}
	if len(envelope.Tests) != len(report.Results) {
		t.Fatalf("expected %d test results, got %d", len(report.Results), len(envelope.Tests))
	}
}

func sampleEvaluation() (judge.Submission, *execution.Report) {
	actual := value.Int(5)
	sub := judge.Submission{
		ID:       "sub-123",
		Problem:  "summation",
		Language: execution.LanguagePython,
	}
	report := &execution.Report{
		Problem:  "summation",
		Language: execution.LanguagePython,
		Passed:   1,
		Duration: 150 * time.Millisecond,
		Results: []execution.TestResult{{
			Case: execution.TestCase{
				Number:   1,
				Args:     []value.Value{value.Int(2), value.Int(3)},
				Expected: value.Int(5),
			},
			Passed:   true,
			Status:   execution.StatusOK,
			Actual:   &actual,
			Duration: 150 * time.Millisecond,
		}},
	}
	return sub, report
}
