// File: cmd/app/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chenna-nefer/InsightScout-new/internal/config"
	"github.com/chenna-nefer/InsightScout-new/internal/domain/ports/adapter"
	"github.com/chenna-nefer/InsightScout-new/internal/infra/adapters/enrich"
	"github.com/chenna-nefer/InsightScout-new/internal/infra/loader"
	"github.com/chenna-nefer/InsightScout-new/internal/infra/logging"
	"github.com/chenna-nefer/InsightScout-new/internal/infra/metrics"
	"github.com/chenna-nefer/InsightScout-new/internal/infra/sched"
	"github.com/chenna-nefer/InsightScout-new/internal/infra/store"
	"github.com/chenna-nefer/InsightScout-new/internal/infra/web"
	"github.com/chenna-nefer/InsightScout-new/internal/infra/worker"
	"github.com/chenna-nefer/InsightScout-new/internal/usecase"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "enable developer mode (canned enrichment provider)")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	if cfg.Runtime.Dev {
		logger.Info().Msg("[DEV MODE] Enabled")
	}

	metrics.MustRegister()

	// ---- Job store ----
	jobStore := store.NewMemoryJobStore(logger)

	// ---- Enrichment provider (Perplexity -> OpenAI -> noop in dev) ----
	var contacts adapter.ContactFinder
	if cfg.Enrich.ProspeoKey != "" {
		contacts, err = enrich.NewProspeoFinder(cfg.Enrich.ProspeoKey, cfg.Enrich.ProspeoURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("prospeo finder")
		}
	} else {
		logger.Warn().Msg("enrich.prospeo_key not set; email/phone lookups disabled")
	}

	var provider adapter.EnrichmentProvider
	switch {
	case cfg.AI.PerplexityKey != "" || cfg.AI.OpenAIKey != "":
		var source adapter.FounderSource
		if cfg.AI.PerplexityKey != "" {
			source, err = enrich.NewChatFounderSource(cfg.AI.PerplexityKey, cfg.AI.PerplexityURL, cfg.AI.Model)
			logger.Info().Str("base", cfg.AI.PerplexityURL).Str("model", cfg.AI.Model).Msg("founder discovery: Perplexity (OpenAI compatible)")
		} else {
			source, err = enrich.NewChatFounderSource(cfg.AI.OpenAIKey, "", cfg.AI.Model)
			logger.Info().Str("model", cfg.AI.Model).Msg("founder discovery: OpenAI")
		}
		if err != nil {
			logger.Fatal().Err(err).Msg("founder discovery adapter")
		}

		var searcher adapter.ProfileSearcher
		if cfg.Enrich.ExaKey != "" {
			searcher, err = enrich.NewExaSearcher(cfg.Enrich.ExaKey, cfg.Enrich.ExaURL)
			if err != nil {
				logger.Fatal().Err(err).Msg("exa searcher")
			}
		} else {
			logger.Warn().Msg("enrich.exa_key not set; linkedin lookups disabled")
		}
		provider = enrich.NewPipeline(source, searcher, contacts, logger)
	default:
		// LoadConfig only lets this through in dev mode.
		provider = enrich.NewNoopProvider()
		logger.Info().Msg("enrichment provider: noop")
	}

	// ---- Runner + use case ----
	runner := worker.NewRunner(jobStore, provider, cfg.Research.ProviderTimeout, cfg.Research.ItemDelay, logger)
	researchUC := usecase.NewResearchUseCase(ctx, jobStore, runner, logger)

	// ---- HTTP API ----
	companyLoader := loader.New(cfg.Upload.MaxBytes, logger)
	polls := web.NewPollLimiter(cfg.Research.PollInterval, cfg.Research.PollBurst)
	srv := web.NewServer(researchUC, companyLoader, contacts, polls, cfg.Upload.MaxBytes, logger)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: srv.Routes(),
	}
	go func() {
		logger.Info().Str("addr", server.Addr).Msg("http listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("http server error")
		}
	}()

	// ---- Retention sweeper ----
	sweeper := sched.NewRetentionSweeper(cfg.Research.SweepInterval, cfg.Research.Retention, jobStore, logger)
	go func() { _ = sweeper.Run(ctx) }()

	// ---- Graceful shutdown ----
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	logger.Info().Msg("shutdown requested")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	_ = server.Shutdown(shutdownCtx)
}
