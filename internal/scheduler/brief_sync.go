package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/mosaicwellness/ad-warroom-api/internal/config"
	"github.com/mosaicwellness/ad-warroom-api/internal/usecases/briefing"
	"github.com/mosaicwellness/ad-warroom-api/pkg/log"
	"github.com/pkg/errors"
)

// BriefSyncService regenerates every brand's weekly brief on a cron
// schedule, typically Monday mornings.
type BriefSyncService struct {
	scheduler *gocron.Scheduler
	cfg       config.BriefSync
	briefer   briefing.Briefer

	syncMutex   sync.Mutex
	syncRunning bool
}

func NewBriefSyncService(cfg *config.Config, briefer briefing.Briefer) *BriefSyncService {
	return &BriefSyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		cfg:       cfg.BriefSync,
		briefer:   briefer,
	}
}

func (s *BriefSyncService) Start(ctx context.Context) error {
	if !s.cfg.Enabled {
		log.L.Info("brief sync scheduler disabled by configuration")
		return nil
	}

	log.L.WithField("cron", s.cfg.CronSchedule).Info("starting brief sync scheduler")

	_, err := s.scheduler.Cron(s.cfg.CronSchedule).Do(func() {
		s.runSync(ctx)
	})
	if err != nil {
		return errors.Wrap(err, "failed to schedule brief sync")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("stopping brief sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *BriefSyncService) runSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("brief sync already running, skipping this trigger")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	start := time.Now()
	if err := s.briefer.GenerateAll(ctx); err != nil {
		log.L.WithError(err).Error("scheduled brief sync finished with failures")
		return
	}

	log.L.WithField("duration", time.Since(start).String()).
		Info("scheduled brief sync finished")
}
