package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/TruZillah/Assessment-GliderAI/internal/app/judge"
	"github.com/TruZillah/Assessment-GliderAI/internal/app/producer"
	"github.com/TruZillah/Assessment-GliderAI/internal/catalog"
	"github.com/TruZillah/Assessment-GliderAI/internal/domain/execution"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Evaluate the built-in sample submissions",
	Long: `Runs a small fixed set of sample submissions through the full pipeline
(harness generation, sandbox execution, result comparison) and prints the
per-test verdicts. Useful as a smoke test of the local toolchain setup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(loadAppConfig())
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cfg appConfig) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner, closeRunner, err := buildRunner(cfg)
	if err != nil {
		return fmt.Errorf("initialize sandbox: %w", err)
	}
	if closeRunner != nil {
		defer closeRunner()
	}

	registry, err := buildRegistry(cfg, runner)
	if err != nil {
		return fmt.Errorf("initialize executors: %w", err)
	}

	service := judge.NewService(registry, catalog.New(), slog.Default())
	defer service.Close()

	return service.EvaluateFromSource(
		ctx,
		producer.NewService(),
		0,
		cfg.MaxParallel,
		func(sub judge.Submission, report *execution.Report, evalErr error) {
			fmt.Printf("\n== %s (%s, %s) ==\n", sub.ID, sub.Problem, sub.Language)
			if evalErr != nil {
				fmt.Printf("evaluation failed: %v\n", evalErr)
				return
			}
			printReport(report)
		},
	)
}
