// Package api assembles the HTTP server: routes, middleware chain and
// graceful shutdown.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/mosaicwellness/ad-warroom-api/internal/api/handler"
	"github.com/mosaicwellness/ad-warroom-api/internal/api/handler/router"
	"github.com/mosaicwellness/ad-warroom-api/internal/config"
	"github.com/mosaicwellness/ad-warroom-api/internal/usecases/ads"
	"github.com/mosaicwellness/ad-warroom-api/internal/usecases/briefing"
	"github.com/mosaicwellness/ad-warroom-api/internal/usecases/fetching"
	"github.com/mosaicwellness/ad-warroom-api/internal/usecases/insighting"
	"github.com/mosaicwellness/ad-warroom-api/internal/usecases/stats"
	"github.com/mosaicwellness/ad-warroom-api/pkg/log"
	"github.com/mosaicwellness/ad-warroom-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func New(
	cfg *config.Config,
	statsService stats.Aggregator,
	adService ads.Lister,
	insightService insighting.Analyzer,
	briefService briefing.Briefer,
	fetchService fetching.Fetcher,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Brands()...),
		router.WithRoutes(handler.Stats(statsService)...),
		router.WithRoutes(handler.Ads(adService, cfg)...),
		router.WithRoutes(handler.Insights(insightService)...),
		router.WithRoutes(handler.Briefs(briefService)...),
		router.WithRoutes(handler.Fetch(fetchService)...),
		router.WithRoutes(handler.Themes()...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	chain := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           chain,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Run serves until an interrupt signal arrives or ctx is cancelled, then
// shuts down gracefully with a 15s deadline.
func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("interrupt signal received")
	case <-ctx.Done():
		logrus.Info("application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error during server shutdown")
		return err
	}

	log.L.Info("server shut down cleanly")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
