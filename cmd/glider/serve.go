package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/TruZillah/Assessment-GliderAI/internal/ai"
	"github.com/TruZillah/Assessment-GliderAI/internal/app/judge"
	"github.com/TruZillah/Assessment-GliderAI/internal/catalog"
	"github.com/TruZillah/Assessment-GliderAI/internal/domain/execution"
	"github.com/TruZillah/Assessment-GliderAI/internal/tracer"
	"github.com/TruZillah/Assessment-GliderAI/internal/web"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadAppConfig()
		if serveAddr != "" {
			cfg.HTTPAddr = serveAddr
		}
		return runServe(cfg)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default GLIDER_HTTP_ADDR or :8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cfg appConfig) error {
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

	cat := catalog.New()
	judgeService := judge.NewService(registry, cat, log)
	defer func() {
		if cerr := judgeService.Close(); cerr != nil {
			log.Warn("closing judge service", "error", cerr)
		}
	}()

	steps, err := tracer.New(tracer.Config{
		Runner:           runner,
		Timeout:          cfg.TraceTimeout,
		Image:            cfg.Images[execution.LanguagePython],
		MemoryLimitBytes: cfg.MemoryLimitBytes,
	})
	if err != nil {
		return fmt.Errorf("initialize tracer: %w", err)
	}

	tutor := ai.New(ai.Config{APIKey: cfg.OpenAIKey, Model: cfg.OpenAIModel}, cat, log)
	if !tutor.Enabled() {
		log.Info("ai tutor disabled: no OPENAI_API_KEY configured")
	}

	server, err := web.NewServer(web.Config{
		Catalog: cat,
		Judge:   judgeService,
		Tracer:  steps,
		Tutor:   tutor,
		Log:     log,
	})
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", cfg.HTTPAddr, "sandbox", cfg.Sandbox)
		if serr := httpServer.ListenAndServe(); serr != nil && !errors.Is(serr, http.ErrServerClosed) {
			errCh <- serr
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	log.Info("http server stopped")
	return nil
}
