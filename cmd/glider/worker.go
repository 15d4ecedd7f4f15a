package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/TruZillah/Assessment-GliderAI/internal/app/judge"
	"github.com/TruZillah/Assessment-GliderAI/internal/catalog"
	"github.com/TruZillah/Assessment-GliderAI/internal/domain/execution"
	kafkainfra "github.com/TruZillah/Assessment-GliderAI/internal/infra/kafka"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Consume submissions from Kafka and publish evaluation reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWorker(loadAppConfig())
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}

func runWorker(cfg appConfig) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := slog.Default()

	runner, closeRunner, err := buildRunner(cfg)
	if err != nil {
		return fmt.Errorf("initialize sandbox: %w", err)
	}
	if closeRunner != nil {
		defer func() {
			if cerr := closeRunner(); cerr != nil {
				log.Warn("closing sandbox", "error", cerr)
			}
		}()
	}

	registry, err := buildRegistry(cfg, runner)
	if err != nil {
		return fmt.Errorf("initialize executors: %w", err)
	}

	service := judge.NewService(registry, catalog.New(), log)
	defer func() {
		if cerr := service.Close(); cerr != nil {
			log.Warn("closing judge service", "error", cerr)
		}
	}()

	consumer, err := kafkainfra.NewConsumer(kafkainfra.ConsumerConfig{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.SubmissionsTopic,
		GroupID: cfg.GroupID,
	})
	if err != nil {
		return fmt.Errorf("initialize kafka consumer: %w", err)
	}
	defer func() {
		if cerr := consumer.Close(); cerr != nil {
			log.Warn("closing kafka consumer", "error", cerr)
		}
	}()

	publisher, err := kafkainfra.NewPublisher(kafkainfra.PublisherConfig{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.ReportsTopic,
	})
	if err != nil {
		return fmt.Errorf("initialize kafka publisher: %w", err)
	}
	defer func() {
		if cerr := publisher.Close(); cerr != nil {
			log.Warn("closing kafka publisher", "error", cerr)
		}
	}()

	log.Info("worker started",
		"brokers", cfg.KafkaBrokers,
		"submissions_topic", cfg.SubmissionsTopic,
		"reports_topic", cfg.ReportsTopic,
		"max_parallel", cfg.MaxParallel,
	)

	return service.EvaluateFromSource(
		ctx,
		consumer,
		cfg.MaxSubmissions,
		cfg.MaxParallel,
		func(sub judge.Submission, report *execution.Report, evalErr error) {
			if perr := publisher.PublishReport(ctx, sub, report, evalErr); perr != nil {
				log.Error("publish report", "submission", sub.ID, "error", perr)
			}
		},
	)
}
