// Package briefing generates and serves the persisted weekly strategy brief.
// Unlike insight cards, briefs are durable: generation failure is a real
// error and must never clobber the previously stored brief.
package briefing

import (
	"context"
	"time"

	"github.com/mosaicwellness/ad-warroom-api/infrastructure/integrator/textgen"
	"github.com/mosaicwellness/ad-warroom-api/infrastructure/repository"
	"github.com/mosaicwellness/ad-warroom-api/internal/brands"
	"github.com/mosaicwellness/ad-warroom-api/internal/config"
	"github.com/mosaicwellness/ad-warroom-api/internal/domain"
	"github.com/mosaicwellness/ad-warroom-api/internal/usecases/insighting"
	"github.com/mosaicwellness/ad-warroom-api/pkg/log"
	"github.com/pkg/errors"
)

// ErrUnknownBrand is returned when a brief is requested for a brand key that
// is not in the registry.
var ErrUnknownBrand = errors.New("unknown brand key")

const briefSystemPrompt = `You are the head of growth marketing at a ` +
	`direct-to-consumer wellness company in India. You write crisp weekly ` +
	`strategy briefs for the founders based on competitor advertising data. ` +
	`Respond in markdown.`

const briefInstructions = `Write a weekly competitive brief in markdown with
exactly these sections:

## TL;DR
Two sentences on the single most important shift this week.

## What's working for competitors
3-4 bullets on the angles and formats carrying their spend.

## Gaps we can exploit
2-3 bullets on what competitors are NOT doing.

## Three recommended actions
A numbered list of three concrete moves for next week.

Ground every claim in the data above. No preamble, start at the TL;DR heading.`

type Briefer interface {
	GenerateBrief(ctx context.Context, brandKey string) (*domain.WeeklyBrief, error)
	GetLatest(brandKey string) (*domain.WeeklyBrief, error)
	GenerateAll(ctx context.Context) error
}

type Service struct {
	cfg       *config.Config
	stats     insighting.StatsProvider
	adRepo    repository.AdRepository
	briefRepo repository.WeeklyBriefRepository
	analyzer  insighting.Analyzer
	generator textgen.Generator
}

func NewService(
	cfg *config.Config,
	stats insighting.StatsProvider,
	adRepo repository.AdRepository,
	briefRepo repository.WeeklyBriefRepository,
	analyzer insighting.Analyzer,
	generator textgen.Generator,
) *Service {
	return &Service{
		cfg:       cfg,
		stats:     stats,
		adRepo:    adRepo,
		briefRepo: briefRepo,
		analyzer:  analyzer,
		generator: generator,
	}
}

// GenerateBrief builds a fresh brief for the trailing week and overwrites the
// stored one. On any generation failure it returns the error with the stored
// brief untouched, so a working brief never degrades.
func (s *Service) GenerateBrief(ctx context.Context, brandKey string) (*domain.WeeklyBrief, error) {
	brand := brands.Get(brandKey)
	if brand == nil {
		return nil, errors.Wrap(ErrUnknownBrand, brandKey)
	}

	brandStats, err := s.stats.ForBrand(brandKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate stats for brief")
	}

	logger := log.ForContext(ctx).WithField("brand_key", brandKey)

	copies, err := s.adRepo.SampleCopies(brandKey, s.cfg.Fetch.InsightSampleAds)
	if err != nil {
		logger.WithError(err).Warn("failed to load sample copies, prompting without them")
		copies = nil
	}

	prompt := insighting.BuildSummary(brand, brandStats, copies) + "\n" + briefInstructions

	briefText, err := s.generator.Complete(ctx, briefSystemPrompt, prompt)
	if err != nil {
		return nil, errors.Wrap(err, "brief generation failed")
	}

	// Snapshot the current insight cards alongside the text. The analyzer
	// degrades internally, so this cannot fail the brief except on data
	// access errors.
	brandInsights, err := s.analyzer.AnalyzeBrand(ctx, brandKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to snapshot insights for brief")
	}

	now := time.Now().UTC()
	brief := &domain.WeeklyBrief{
		BrandKey:    brandKey,
		WeekStart:   now.AddDate(0, 0, -7),
		WeekEnd:     now,
		BriefText:   briefText,
		Insights:    brandInsights.Analysis.Insights,
		AdCount:     brandStats.TotalAds,
		GeneratedAt: now,
	}

	if err := s.briefRepo.SaveOrUpdate(brief); err != nil {
		return nil, errors.Wrap(err, "failed to store brief")
	}

	logger.WithField("ad_count", brief.AdCount).Info("weekly brief generated")

	return brief, nil
}

// GetLatest returns the stored brief, or nil when none was generated yet.
func (s *Service) GetLatest(brandKey string) (*domain.WeeklyBrief, error) {
	return s.briefRepo.GetLatest(brandKey)
}

// GenerateAll regenerates every brand's brief, continuing past per-brand
// failures. Used by the weekly scheduler.
func (s *Service) GenerateAll(ctx context.Context) error {
	var lastErr error
	for _, key := range brands.Keys() {
		if _, err := s.GenerateBrief(ctx, key); err != nil {
			log.ForContext(ctx).WithError(err).WithField("brand_key", key).
				Error("scheduled brief generation failed")
			lastErr = err
		}
	}
	return lastErr
}
