package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "glider",
	Short: "Polyglot code-execution engine",
	Long: `glider evaluates code submissions in Python, JavaScript, Java and C++
against fixed problem suites. It wraps each submission in a language harness,
runs it in a sandbox and compares the printed result against the expected
value.

Commands:
  serve   start the HTTP API (problems, submissions, tracing, tutor)
  worker  consume submissions from Kafka and publish reports
  run     evaluate a local source file against one problem
  demo    evaluate the built-in sample submissions`,
}

func main() {
	// A missing .env file is fine; explicit environment wins either way.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env file", "error", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	}))
	slog.SetDefault(logger)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func logLevel() slog.Level {
	if os.Getenv("GLIDER_DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
