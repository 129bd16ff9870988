package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/metrics"
	"resume-builder/internal/render"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"
	"resume-builder/pkg/logging"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logging.Setup(cfg.LogLevel, cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// infra setup
	var resumes usecase.ResumesRepo
	switch cfg.Store {
	case config.StoreMemory:
		log.Warn().Msg("using in-memory store, resumes are lost on restart")
		resumes = repo.NewMemoryRepo()
	default:
		pool, err := infra.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("connect to database")
		}
		defer pool.Close()
		if err := migration.RunMigrations(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("run migrations")
		}
		resumes = repo.NewResumesRepo(pool)
	}

	renderer, err := render.New(render.DefaultLabels())
	if err != nil {
		log.Fatal().Err(err).Msg("parse templates")
	}
	exporter := infra.NewChromedpRenderer(cfg.ChromePath, cfg.ExportTimeout)
	m := metrics.New(prometheus.DefaultRegisterer)

	svc := usecase.NewResumeService(resumes, renderer, exporter, m)
	app := httpadapter.NewApp(httpadapter.NewHandler(svc), httpadapter.Options{
		CorsOrigins: cfg.CorsOrigins,
		Gatherer:    prometheus.DefaultGatherer,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.Store).Msg("starting resume builder")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
