package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/esgsentinel/sentinel/internal/analysis"
	"github.com/esgsentinel/sentinel/internal/common"
	"github.com/esgsentinel/sentinel/internal/decode"
	"github.com/esgsentinel/sentinel/internal/export"
	"github.com/esgsentinel/sentinel/internal/pipeline"
	"github.com/esgsentinel/sentinel/internal/server"
)

func main() {
	// Logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	// Env (.env is optional)
	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Pipeline wiring
	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	extractor := decode.NewPDFExtractor(slogger)
	analyzer := analysis.NewAnalyzer(cfg.Analysis.ContextWindow)
	proc := pipeline.NewProcessor(extractor, analyzer, slogger)
	exporter := export.NewService(slogger)

	// HTTP server
	svc := server.NewService(proc, exporter, cfg.Server, logger)
	httpServer := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: svc.Routes(),
	}

	log.Infof("HTTP serving on %s", cfg.Server.HTTPAddr)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warnf("shutdown: %v", err)
	}
	fmt.Println("stopped.")
}
