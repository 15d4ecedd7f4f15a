// Package native implements the per-language executors: each one renders
// arguments into target-language literals, wraps the submitted code in a
// harness that prints a sentinel-tagged result line, runs the program through
// a sandbox runner and parses the line back into a canonical value.
package native

import (
	"time"

	"github.com/TruZillah/Assessment-GliderAI/internal/domain/execution"
	"github.com/TruZillah/Assessment-GliderAI/internal/runtime"
	"github.com/TruZillah/Assessment-GliderAI/internal/sandbox"
)

const (
	// DefaultCompileTimeout caps the compile phase of compiled languages.
	DefaultCompileTimeout = 10 * time.Second
	// DefaultRunTimeout caps the run phase of every language.
	DefaultRunTimeout = 5 * time.Second
)

// Config describes how to build the language executors. The Runner is shared
// by all executors and stays owned by the caller; closing the executors does
// not close it.
type Config struct {
	Runner sandbox.Runner

	CompileTimeout time.Duration
	RunTimeout     time.Duration
	// MemoryLimitBytes is passed through to the sandbox. Zero means no limit.
	MemoryLimitBytes int64

	// Toolchain binaries, resolved against PATH (or inside the image when the
	// sandbox is container-backed).
	PythonBin string
	NodeBin   string
	JavacBin  string
	JarBin    string
	JavaBin   string
	CXXBin    string

	// Images selects the container image per language. Ignored by the
	// subprocess backend.
	Images map[execution.Language]string
}

func (c Config) withDefaults() Config {
	if c.CompileTimeout <= 0 {
		c.CompileTimeout = DefaultCompileTimeout
	}
	if c.RunTimeout <= 0 {
		c.RunTimeout = DefaultRunTimeout
	}
	if c.PythonBin == "" {
		c.PythonBin = "python3"
	}
	if c.NodeBin == "" {
		c.NodeBin = "node"
	}
	if c.JavacBin == "" {
		c.JavacBin = "javac"
	}
	if c.JarBin == "" {
		c.JarBin = "jar"
	}
	if c.JavaBin == "" {
		c.JavaBin = "java"
	}
	if c.CXXBin == "" {
		c.CXXBin = "g++"
	}
	return c
}

func (c Config) image(lang execution.Language) string {
	return c.Images[lang]
}

// New builds a registry with one executor per supported language.
func New(cfg Config) (*runtime.Registry, error) {
	execs, err := Executors(cfg)
	if err != nil {
		return nil, err
	}
	return runtime.NewRegistry(execs...)
}

// Executors builds the full set of language executors against one runner.
func Executors(cfg Config) ([]runtime.Executor, error) {
	if cfg.Runner == nil {
		return nil, errNoRunner
	}
	cfg = cfg.withDefaults()
	return []runtime.Executor{
		newPythonExecutor(cfg),
		newJavaScriptExecutor(cfg),
		newJavaExecutor(cfg),
		newCPPExecutor(cfg),
	}, nil
}
