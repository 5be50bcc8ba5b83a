// Package fetching pulls competitor ads from a raw-record source, normalizes
// them and writes them to the store. The live Ad Library is used when a token
// is configured and valid; everything else runs off the sample generator.
package fetching

import (
	"context"
	"fmt"
	"time"

	adlibdomain "github.com/mosaicwellness/ad-warroom-api/infrastructure/integrator/adlibrary/domain"
	"github.com/mosaicwellness/ad-warroom-api/infrastructure/repository"
	"github.com/mosaicwellness/ad-warroom-api/internal/brands"
	"github.com/mosaicwellness/ad-warroom-api/internal/config"
	"github.com/mosaicwellness/ad-warroom-api/internal/domain"
	"github.com/mosaicwellness/ad-warroom-api/internal/usecases/normalizing"
	"github.com/mosaicwellness/ad-warroom-api/pkg/log"
	"github.com/pkg/errors"
)

// maxReportedErrors caps the errors echoed back in a FetchResult; the rest
// only go to the log.
const maxReportedErrors = 5

// Source produces raw ad records for one competitor. The live integrator and
// the sample generator both satisfy it, so the fetch flow never branches on
// where records come from.
type Source interface {
	Name() string
	CompetitorAds(ctx context.Context, competitor domain.Competitor) ([]adlibdomain.RawAd, error)
}

// LiveSource is a Source whose credentials can be checked up front.
type LiveSource interface {
	Source
	Validate(ctx context.Context) error
}

type Fetcher interface {
	FetchBrand(ctx context.Context, brandKey string) (*domain.FetchResult, error)
	FetchAll(ctx context.Context) (map[string]*domain.FetchResult, error)
	Reseed(ctx context.Context) (*domain.FetchResult, error)
	SeedIfEmpty(ctx context.Context) error
}

type Service struct {
	cfg    *config.Config
	adRepo repository.AdRepository
	live   LiveSource
	sample Source
}

func NewService(cfg *config.Config, adRepo repository.AdRepository, live LiveSource, sample Source) *Service {
	return &Service{
		cfg:    cfg,
		adRepo: adRepo,
		live:   live,
		sample: sample,
	}
}

// FetchBrand refreshes one brand's competitor ads and reports how it went.
// Per-competitor failures degrade to sample data rather than aborting the
// whole run, so the result is "partial" at worst.
func (s *Service) FetchBrand(ctx context.Context, brandKey string) (*domain.FetchResult, error) {
	brand := brands.Get(brandKey)
	if brand == nil {
		return nil, errors.Wrap(ErrUnknownBrand, brandKey)
	}

	source := s.pickSource(ctx)

	return s.fetchBrand(ctx, brand, source), nil
}

// FetchAll refreshes every registered brand, reusing one source decision for
// the whole run.
func (s *Service) FetchAll(ctx context.Context) (map[string]*domain.FetchResult, error) {
	source := s.pickSource(ctx)

	results := make(map[string]*domain.FetchResult, len(brands.Keys()))
	for _, brand := range brands.All() {
		results[brand.Key] = s.fetchBrand(ctx, &brand, source)
	}

	return results, nil
}

// Reseed wipes the store and regenerates sample data for every brand.
func (s *Service) Reseed(ctx context.Context) (*domain.FetchResult, error) {
	deleted, err := s.adRepo.DeleteAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to clear ad store")
	}

	log.ForContext(ctx).WithField("deleted", deleted).Info("ad store cleared for reseed")

	total := 0
	allErrors := []string{}
	for _, brand := range brands.All() {
		result := s.fetchBrand(ctx, &brand, s.sample)
		total += result.AdsLoaded
		allErrors = append(allErrors, result.Errors...)
	}

	return buildResult(domain.FetchSourceSample, total, allErrors,
		fmt.Sprintf("reseeded %d sample ads across %d brands", total, len(brands.Keys()))), nil
}

// SeedIfEmpty loads sample data on first boot so the dashboard is never
// blank. A store with any rows at all is left alone.
func (s *Service) SeedIfEmpty(ctx context.Context) error {
	count, err := s.adRepo.Count(domain.AdFilter{})
	if err != nil {
		return errors.Wrap(err, "failed to check ad store")
	}
	if count > 0 {
		return nil
	}

	log.ForContext(ctx).Info("ad store is empty, seeding sample data")

	_, err = s.Reseed(ctx)
	return err
}

// pickSource decides live vs sample once per run. No token means sample; a
// token that fails validation also means sample, with a warning.
func (s *Service) pickSource(ctx context.Context) Source {
	if s.cfg.AdLibrary.AccessToken == "" {
		return s.sample
	}

	if err := s.live.Validate(ctx); err != nil {
		log.ForContext(ctx).WithError(err).
			Warn("ad library token validation failed, falling back to sample data")
		return s.sample
	}

	return s.live
}

func (s *Service) fetchBrand(ctx context.Context, brand *domain.Brand, source Source) *domain.FetchResult {
	now := time.Now().UTC()
	logger := log.ForContext(ctx).WithField("brand_key", brand.Key)

	loaded := 0
	fetchErrors := []string{}

	for _, competitor := range brand.Competitors {
		raws, err := source.CompetitorAds(ctx, competitor)
		if err != nil || len(raws) == 0 {
			if source.Name() == domain.FetchSourceLive {
				// One competitor failing live must not leave a hole in the
				// dashboard; backfill it with sample rows.
				if err != nil {
					fetchErrors = append(fetchErrors,
						fmt.Sprintf("%s: %v (using sample data)", competitor.Name, err))
					logger.WithError(err).WithField("competitor", competitor.Name).
						Warn("live fetch failed, falling back to sample data")
				}
				raws, err = s.sample.CompetitorAds(ctx, competitor)
			}
			if err != nil {
				fetchErrors = append(fetchErrors, fmt.Sprintf("%s: %v", competitor.Name, err))
				continue
			}
		}

		for _, raw := range raws {
			ad := normalizing.Normalize(raw, brand.Key, competitor.Name, now)
			if err := s.adRepo.Upsert(&ad); err != nil {
				fetchErrors = append(fetchErrors, fmt.Sprintf("%s: store ad %s: %v", competitor.Name, ad.ID, err))
				logger.WithError(err).WithField("ad_id", ad.ID).Warn("failed to store ad, skipping")
				continue
			}
			loaded++
		}
	}

	logger.WithFields(log.Fields{
		"source":     source.Name(),
		"ads_loaded": loaded,
		"errors":     len(fetchErrors),
	}).Info("brand fetch finished")

	return buildResult(source.Name(), loaded, fetchErrors, "")
}

func buildResult(source string, loaded int, fetchErrors []string, message string) *domain.FetchResult {
	status := "success"
	if len(fetchErrors) > 0 {
		status = "partial"
	}

	reported := fetchErrors
	if len(reported) > maxReportedErrors {
		reported = append(reported[:maxReportedErrors:maxReportedErrors],
			fmt.Sprintf("and %d more", len(fetchErrors)-maxReportedErrors))
	}

	return &domain.FetchResult{
		Status:    status,
		Source:    source,
		AdsLoaded: loaded,
		Errors:    reported,
		Message:   message,
	}
}
