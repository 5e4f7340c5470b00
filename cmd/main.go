package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/seaborne/quarterdeck/internal/adapters/http/api"
	"github.com/seaborne/quarterdeck/internal/adapters/http/site"
	"github.com/seaborne/quarterdeck/internal/adapters/sheets"
	"github.com/seaborne/quarterdeck/internal/app"
	"github.com/seaborne/quarterdeck/internal/config"
	"github.com/seaborne/quarterdeck/internal/domain/enrich"
	"github.com/seaborne/quarterdeck/internal/domain/rank"
	"github.com/seaborne/quarterdeck/internal/domain/roster"
	"github.com/seaborne/quarterdeck/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 15 * time.Second
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	fetcher, err := sheets.New(ctx, cfg.SpreadsheetID,
		sheets.WithCredentialsFile(cfg.CredentialsFile),
	)
	if err != nil {
		os.Stderr.WriteString("failed to build sheets client: " + err.Error() + "\n")
		return
	}

	classifier := rank.NewClassifier(rank.WithTable(cfg.RankTableParsed()))
	normalizer := roster.NewNormalizer(
		roster.WithMapping(cfg.RosterMapping()),
		roster.WithClassifier(classifier),
		roster.WithSailingCadence(cfg.SailingCadenceDays),
		roster.WithHostingCadence(cfg.HostingCadenceDays),
	)
	enricher := enrich.New(
		enrich.WithMinVoyages(cfg.MinVoyages),
		enrich.WithMinHosts(cfg.MinHosts),
	)

	svc := app.New(
		app.WithLogger(log),
		app.WithFetcher(fetcher),
		app.WithNormalizer(normalizer),
		app.WithEnricher(enricher),
		app.WithRanges(cfg.RosterRange, cfg.VoyageRange, cfg.AwardRange),
		app.WithKnownAwards(cfg.KnownAwards),
		app.WithRefreshInterval(time.Duration(cfg.RefreshIntervalSec)*time.Second),
	)
	if err := svc.Start(ctx); err != nil {
		os.Stderr.WriteString("failed to start service: " + err.Error() + "\n")
		return
	}
	defer svc.Stop()

	router := mux.NewRouter()
	apiServer := api.NewServer(svc, svc, cfg.MaxLeaderboardLimit)
	apiServer.Register(ctx, router)
	// Dashboard last: it owns the catch-all root.
	site.Register(ctx, router)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
		}
	}()

	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}
	log.Info(ctx, "server stopped")
}
