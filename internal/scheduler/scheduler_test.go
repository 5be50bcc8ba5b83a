package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosaicwellness/ad-warroom-api/internal/config"
)

func TestFetchSyncService_DisabledByDefault(t *testing.T) {
	cfg := &config.Config{}
	cfg.FetchSync.CronSchedule = "0 3 * * *"
	cfg.FetchSync.Enabled = false

	service := NewFetchSyncService(cfg, nil)

	// Disabled sync never touches the fetcher, so nil is safe here.
	require.NoError(t, service.Start(context.Background()))
}

func TestBriefSyncService_DisabledByDefault(t *testing.T) {
	cfg := &config.Config{}
	cfg.BriefSync.CronSchedule = "0 7 * * 1"
	cfg.BriefSync.Enabled = false

	service := NewBriefSyncService(cfg, nil)

	require.NoError(t, service.Start(context.Background()))
}

func TestFetchSyncService_InvalidCron(t *testing.T) {
	cfg := &config.Config{}
	cfg.FetchSync.CronSchedule = "not a cron expression"
	cfg.FetchSync.Enabled = true

	service := NewFetchSyncService(cfg, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := service.Start(ctx)
	assert.Error(t, err)
}
