package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/TruZillah/Assessment-GliderAI/internal/domain/execution"
	"github.com/TruZillah/Assessment-GliderAI/internal/runtime"
	"github.com/TruZillah/Assessment-GliderAI/internal/runtime/native"
	"github.com/TruZillah/Assessment-GliderAI/internal/sandbox"
	sandboxdocker "github.com/TruZillah/Assessment-GliderAI/internal/sandbox/docker"
	sandboxlocal "github.com/TruZillah/Assessment-GliderAI/internal/sandbox/local"
)

const (
	defaultHTTPAddr         = ":8080"
	defaultKafkaBrokers     = "kafka:9092"
	defaultSubmissionsTopic = "submissions"
	defaultReportsTopic     = "evaluation-reports"
	defaultKafkaGroupID     = "glider-judge"
	defaultPythonImage      = "python:3.12-alpine"
	defaultNodeImage        = "node:22-alpine"
	defaultJavaImage        = "eclipse-temurin:21-jdk-alpine"
	defaultCPPImage         = "gcc:14"
	sandboxLocal            = "local"
	sandboxDocker           = "docker"
)

type appConfig struct {
	HTTPAddr string

	// Sandbox selects the execution backend: local subprocesses or
	// single-use Docker containers.
	Sandbox          string
	CompileTimeout   time.Duration
	RunTimeout       time.Duration
	TraceTimeout     time.Duration
	MemoryLimitBytes int64
	Images           map[execution.Language]string

	KafkaBrokers     []string
	SubmissionsTopic string
	ReportsTopic     string
	GroupID          string
	MaxSubmissions   int
	MaxParallel      int

	OpenAIKey   string
	OpenAIModel string
}

func loadAppConfig() appConfig {
	return appConfig{
		HTTPAddr:         envOrDefault("GLIDER_HTTP_ADDR", defaultHTTPAddr),
		Sandbox:          envOrDefault("GLIDER_SANDBOX", sandboxLocal),
		CompileTimeout:   parseDuration(os.Getenv("GLIDER_COMPILE_TIMEOUT"), native.DefaultCompileTimeout),
		RunTimeout:       parseDuration(os.Getenv("GLIDER_RUN_TIMEOUT"), native.DefaultRunTimeout),
		TraceTimeout:     parseDuration(os.Getenv("GLIDER_TRACE_TIMEOUT"), 0),
		MemoryLimitBytes: parseBytes(os.Getenv("GLIDER_MEMORY_LIMIT")),
		Images: map[execution.Language]string{
			execution.LanguagePython:     envOrDefault("PYTHON_IMAGE", defaultPythonImage),
			execution.LanguageJavaScript: envOrDefault("NODE_IMAGE", defaultNodeImage),
			execution.LanguageJava:       envOrDefault("JAVA_IMAGE", defaultJavaImage),
			execution.LanguageCPP:        envOrDefault("CPP_IMAGE", defaultCPPImage),
		},
		KafkaBrokers:     parseBrokerList(envOrDefault("KAFKA_BROKERS", defaultKafkaBrokers)),
		SubmissionsTopic: envOrDefault("KAFKA_SUBMISSIONS_TOPIC", defaultSubmissionsTopic),
		ReportsTopic:     envOrDefault("KAFKA_REPORTS_TOPIC", defaultReportsTopic),
		GroupID:          envOrDefault("KAFKA_GROUP_ID", defaultKafkaGroupID),
		MaxSubmissions:   parseMaxSubmissions(os.Getenv("SUBMISSIONS_EXPECTED")),
		MaxParallel:      parseMaxParallel(os.Getenv("JUDGE_MAX_PARALLEL")),
		OpenAIKey:        os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:      os.Getenv("OPENAI_MODEL"),
	}
}

// buildRunner picks the sandbox backend. The returned closer is nil for the
// local backend, which has nothing to release.
func buildRunner(cfg appConfig) (sandbox.Runner, func() error, error) {
	switch cfg.Sandbox {
	case sandboxLocal:
		return sandboxlocal.New(), nil, nil
	case sandboxDocker:
		runner, err := sandboxdocker.New()
		if err != nil {
			return nil, nil, err
		}
		return runner, runner.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown sandbox backend %q (want %q or %q)", cfg.Sandbox, sandboxLocal, sandboxDocker)
	}
}

func buildRegistry(cfg appConfig, runner sandbox.Runner) (*runtime.Registry, error) {
	return native.New(native.Config{
		Runner:           runner,
		CompileTimeout:   cfg.CompileTimeout,
		RunTimeout:       cfg.RunTimeout,
		MemoryLimitBytes: cfg.MemoryLimitBytes,
		PythonBin:        os.Getenv("GLIDER_PYTHON_BIN"),
		NodeBin:          os.Getenv("GLIDER_NODE_BIN"),
		JavacBin:         os.Getenv("GLIDER_JAVAC_BIN"),
		JarBin:           os.Getenv("GLIDER_JAR_BIN"),
		JavaBin:          os.Getenv("GLIDER_JAVA_BIN"),
		CXXBin:           os.Getenv("GLIDER_CXX_BIN"),
		Images:           cfg.Images,
	})
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func parseBrokerList(raw string) []string {
	fields := strings.Split(raw, ",")
	brokers := make([]string, 0, len(fields))
	for _, field := range fields {
		if trimmed := strings.TrimSpace(field); trimmed != "" {
			brokers = append(brokers, trimmed)
		}
	}
	return brokers
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}

func parseBytes(raw string) int64 {
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 0 {
		return 0
	}
	return value
}

func parseMaxSubmissions(raw string) int {
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0
	}
	return value
}

func parseMaxParallel(raw string) int {
	if raw == "" {
		return 1
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 1
	}
	return value
}
