// @title CV Parser API
// @version 1.0
// @description Extracts text from uploaded CVs and asks a local model for structured fields.
// @BasePath /
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"cvparser/internal/config"
	"cvparser/internal/extractor"
	"cvparser/internal/handler"
	"cvparser/internal/inference/ollama"
	"cvparser/internal/intake"
	"cvparser/internal/logging"
	"cvparser/internal/router"
	"cvparser/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logging.Setup(cfg.Log)
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize pipeline stages
	validator := intake.NewValidator(&cfg.Upload)
	registry := extractor.NewRegistry()
	ollamaClient := ollama.NewClient(&cfg.Ollama)

	// Initialize services
	cvSvc := service.NewCVService(validator, registry, ollamaClient)

	// Initialize handlers
	cvH := handler.NewCVHandler(cvSvc)
	healthH := handler.NewHealthHandler(cvSvc)

	// Setup router
	r := router.Setup(cfg, cvH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("server starting",
			"addr", cfg.Server.Port,
			"ollama_host", cfg.Ollama.Host,
			"model", cfg.Ollama.Model,
			"allowed_types", validator.AllowedTypes(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
