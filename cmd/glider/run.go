package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/TruZillah/Assessment-GliderAI/internal/app/judge"
	"github.com/TruZillah/Assessment-GliderAI/internal/catalog"
	"github.com/TruZillah/Assessment-GliderAI/internal/domain/execution"
)

var runLanguage string

var runCmd = &cobra.Command{
	Use:   "run <problem> <file>",
	Short: "Evaluate a local source file against one problem",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLocal(loadAppConfig(), args[0], args[1])
	},
}

func init() {
	runCmd.Flags().StringVarP(&runLanguage, "language", "l", "", "submission language (default: inferred from the file extension)")
	rootCmd.AddCommand(runCmd)
}

func runLocal(cfg appConfig, problemName, path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	lang, err := resolveLanguage(runLanguage, path)
	if err != nil {
		return err
	}

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

	service := judge.NewService(registry, catalog.New(), nil)
	defer service.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := service.Evaluate(ctx, judge.Submission{
		ID:       uuid.NewString(),
		Problem:  problemName,
		Language: lang,
		Source:   string(source),
	})
	if err != nil {
		return err
	}

	printReport(report)
	if report.Failed > 0 {
		return fmt.Errorf("%d of %d tests failed", report.Failed, len(report.Results))
	}
	return nil
}

var (
	passLabel = color.New(color.FgGreen, color.Bold).Sprint("PASS")
	failLabel = color.New(color.FgRed, color.Bold).Sprint("FAIL")
)

func printReport(report *execution.Report) {
	for _, result := range report.Results {
		label := failLabel
		if result.Passed {
			label = passLabel
		}
		args := make([]string, len(result.Case.Args))
		for i, a := range result.Case.Args {
			args[i] = a.String()
		}
		fmt.Printf("%s  test %d  (%s)\n", label, result.Case.Number, strings.Join(args, ", "))
		if !result.Passed {
			actual := "<none>"
			if result.Actual != nil {
				actual = result.Actual.String()
			}
			fmt.Printf("      expected %s, got %s\n", result.Case.Expected.String(), actual)
			if result.Error != "" {
				fmt.Printf("      %s\n", result.Error)
			}
		}
	}
	fmt.Printf("\n%d passed, %d failed in %s\n", report.Passed, report.Failed, report.Duration.Round(time.Millisecond))
}

func resolveLanguage(flag, path string) (execution.Language, error) {
	if flag != "" {
		return execution.ParseLanguage(flag)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".py":
		return execution.LanguagePython, nil
	case ".js", ".mjs":
		return execution.LanguageJavaScript, nil
	case ".java":
		return execution.LanguageJava, nil
	case ".cpp", ".cc", ".cxx":
		return execution.LanguageCPP, nil
	default:
		return "", fmt.Errorf("cannot infer language from %q, pass --language", filepath.Base(path))
	}
}
