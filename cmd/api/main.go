package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/mosaicwellness/ad-warroom-api/infrastructure/database/postgres"
	"github.com/mosaicwellness/ad-warroom-api/infrastructure/integrator/adlibrary"
	"github.com/mosaicwellness/ad-warroom-api/infrastructure/integrator/adlibrary/adlibclient"
	"github.com/mosaicwellness/ad-warroom-api/infrastructure/integrator/adlibrary/sample"
	"github.com/mosaicwellness/ad-warroom-api/infrastructure/integrator/textgen"
	"github.com/mosaicwellness/ad-warroom-api/infrastructure/repository"
	"github.com/mosaicwellness/ad-warroom-api/internal/api"
	"github.com/mosaicwellness/ad-warroom-api/internal/config"
	"github.com/mosaicwellness/ad-warroom-api/internal/scheduler"
	"github.com/mosaicwellness/ad-warroom-api/internal/usecases/ads"
	"github.com/mosaicwellness/ad-warroom-api/internal/usecases/briefing"
	"github.com/mosaicwellness/ad-warroom-api/internal/usecases/fetching"
	"github.com/mosaicwellness/ad-warroom-api/internal/usecases/insighting"
	"github.com/mosaicwellness/ad-warroom-api/internal/usecases/stats"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, using info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	adRepo := repository.NewAdRepository(pgConn)
	briefRepo := repository.NewWeeklyBriefRepository(pgConn)

	adLibClient := adlibclient.NewClient(cfg)
	adLibIntegrator := adlibrary.New(cfg, adLibClient)
	sampleGenerator := sample.NewGenerator(cfg)
	generator := textgen.NewOpenAIClient(cfg)

	statsService := stats.NewService(adRepo)
	adService := ads.NewService(adRepo)
	fetchService := fetching.NewService(cfg, adRepo, adLibIntegrator, sampleGenerator)
	insightService := insighting.NewService(cfg, statsService, adRepo, generator)
	briefService := briefing.NewService(cfg, statsService, adRepo, briefRepo, insightService, generator)

	if err := fetchService.SeedIfEmpty(ctx); err != nil {
		logrus.WithError(err).Error("failed to seed initial sample data")
	}

	fetchSyncService := scheduler.NewFetchSyncService(cfg, fetchService)
	briefSyncService := scheduler.NewBriefSyncService(cfg, briefService)

	if err := fetchSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start fetch sync scheduler")
	}
	if err := briefSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start brief sync scheduler")
	}

	server, err := api.New(
		cfg,
		statsService,
		adService,
		insightService,
		briefService,
		fetchService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
