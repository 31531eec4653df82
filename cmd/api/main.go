package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dvloznov/statement-analyzer/internal/ai"
	"github.com/dvloznov/statement-analyzer/internal/analyze"
	"github.com/dvloznov/statement-analyzer/internal/api"
	"github.com/dvloznov/statement-analyzer/internal/api/handlers"
	"github.com/dvloznov/statement-analyzer/internal/categorize"
	"github.com/dvloznov/statement-analyzer/internal/config"
	"github.com/dvloznov/statement-analyzer/internal/excel"
	"github.com/dvloznov/statement-analyzer/internal/logger"
	"github.com/dvloznov/statement-analyzer/internal/pdf"
)

func main() {
	cfg := config.Load()
	log := logger.New()

	ctx := context.Background()

	// The completer is optional: without a key every model-backed feature
	// degrades to its deterministic fallback.
	var completer ai.Completer
	if cfg.GeminiAPIKey != "" {
		gemini, err := ai.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create model client")
		}
		completer = gemini
		log.Info().Str("model", cfg.GeminiModel).Msg("Model integration enabled")
	} else {
		log.Warn().Msg("GEMINI_API_KEY not set - model features disabled")
	}

	rules := categorize.NewRules()
	batcher := categorize.NewBatcher(completer, log)

	excelProcessor := excel.NewProcessor(rules, batcher, log)
	pdfProcessor := pdf.NewProcessor(pdf.TextExtractor{}, pdf.NewAIExtractor(completer), rules, batcher, log)
	advisor := analyze.NewAdvisor(completer, log)

	h := handlers.NewStatementsHandler(excelProcessor, pdfProcessor, advisor, completer != nil, log)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      api.NewRouter(h, log),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting API server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
