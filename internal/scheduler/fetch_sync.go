// Package scheduler holds the optional background sync jobs. Every job is
// disabled by default and opted into via config; the HTTP handlers never go
// through this package.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/mosaicwellness/ad-warroom-api/internal/config"
	"github.com/mosaicwellness/ad-warroom-api/internal/usecases/fetching"
	"github.com/mosaicwellness/ad-warroom-api/pkg/log"
	"github.com/pkg/errors"
)

// FetchSyncService re-fetches every brand's competitor ads on a cron
// schedule.
type FetchSyncService struct {
	scheduler *gocron.Scheduler
	cfg       config.FetchSync
	fetcher   fetching.Fetcher

	syncMutex       sync.Mutex
	syncRunning     bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
}

func NewFetchSyncService(cfg *config.Config, fetcher fetching.Fetcher) *FetchSyncService {
	return &FetchSyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		cfg:       cfg.FetchSync,
		fetcher:   fetcher,
	}
}

// Start registers the cron job and runs the scheduler until ctx is done.
// With sync disabled it logs and returns without scheduling anything.
func (s *FetchSyncService) Start(ctx context.Context) error {
	if !s.cfg.Enabled {
		log.L.Info("fetch sync scheduler disabled by configuration")
		return nil
	}

	log.L.WithField("cron", s.cfg.CronSchedule).Info("starting fetch sync scheduler")

	_, err := s.scheduler.Cron(s.cfg.CronSchedule).Do(func() {
		s.runSync(ctx)
	})
	if err != nil {
		return errors.Wrap(err, "failed to schedule fetch sync")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("stopping fetch sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *FetchSyncService) runSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("fetch sync already running, skipping this trigger")
		return
	}
	s.syncRunning = true
	s.lastStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	results, err := s.fetcher.FetchAll(ctx)
	if err != nil {
		log.L.WithError(err).Error("scheduled fetch sync failed")
		return
	}

	total := 0
	for _, result := range results {
		total += result.AdsLoaded
	}

	log.L.WithFields(log.Fields{
		"brands":     len(results),
		"ads_loaded": total,
		"duration":   time.Since(s.lastStartedAt).String(),
	}).Info("scheduled fetch sync finished")
}
