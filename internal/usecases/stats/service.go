// Package stats computes per-brand and overall breakdowns from the Ad Store.
// Aggregation is read-only; nothing here mutates the store.
package stats

import (
	"github.com/mosaicwellness/ad-warroom-api/infrastructure/repository"
	"github.com/mosaicwellness/ad-warroom-api/internal/brands"
	"github.com/mosaicwellness/ad-warroom-api/internal/domain"
)

type Aggregator interface {
	ForBrand(brandKey string) (*domain.Stats, error)
	Overall() (*domain.Stats, error)
	Dashboard() (*domain.DashboardStats, error)
}

type Service struct {
	adRepo repository.AdRepository
}

func NewService(adRepo repository.AdRepository) *Service {
	return &Service{
		adRepo: adRepo,
	}
}

// ForBrand aggregates one brand's counts and breakdowns. Media types that
// exist but have no ads in this scope still appear with a zero count, so
// scopes stay comparable.
func (s *Service) ForBrand(brandKey string) (*domain.Stats, error) {
	active := true

	total, err := s.adRepo.Count(domain.AdFilter{BrandKey: brandKey})
	if err != nil {
		return nil, err
	}

	activeCount, err := s.adRepo.Count(domain.AdFilter{BrandKey: brandKey, IsActive: &active})
	if err != nil {
		return nil, err
	}

	topPerformers, err := s.adRepo.CountTopPerformers(brandKey)
	if err != nil {
		return nil, err
	}

	media, err := s.adRepo.MediaTypeBreakdown(brandKey)
	if err != nil {
		return nil, err
	}
	for _, mt := range domain.MediaTypes {
		if _, ok := media[string(mt)]; !ok {
			media[string(mt)] = 0
		}
	}

	themes, err := s.adRepo.ThemeBreakdown(brandKey)
	if err != nil {
		return nil, err
	}

	competitors, err := s.adRepo.CompetitorBreakdown(brandKey)
	if err != nil {
		return nil, err
	}

	return &domain.Stats{
		TotalAds:            total,
		ActiveAds:           activeCount,
		TopPerformers:       topPerformers,
		MediaBreakdown:      media,
		ThemeBreakdown:      themes,
		CompetitorBreakdown: competitors,
	}, nil
}

// Overall reaggregates across every registered brand by summing the
// per-brand stats, which makes the consistency invariant (overall == sum of
// per-brand breakdowns) hold by construction.
func (s *Service) Overall() (*domain.Stats, error) {
	overall := &domain.Stats{
		MediaBreakdown:      make(map[string]int),
		ThemeBreakdown:      make(map[string]int),
		CompetitorBreakdown: make(map[string]int),
	}

	for _, key := range brands.Keys() {
		brandStats, err := s.ForBrand(key)
		if err != nil {
			return nil, err
		}
		addStats(overall, brandStats)
	}

	return overall, nil
}

// Dashboard bundles the overall scope with every per-brand scope, matching
// the /api/stats response shape.
func (s *Service) Dashboard() (*domain.DashboardStats, error) {
	byBrand := make(map[string]*domain.Stats, len(brands.Keys()))

	overall := &domain.Stats{
		MediaBreakdown:      make(map[string]int),
		ThemeBreakdown:      make(map[string]int),
		CompetitorBreakdown: make(map[string]int),
	}

	for _, key := range brands.Keys() {
		brandStats, err := s.ForBrand(key)
		if err != nil {
			return nil, err
		}
		byBrand[key] = brandStats
		addStats(overall, brandStats)
	}

	return &domain.DashboardStats{
		Overall: overall,
		ByBrand: byBrand,
	}, nil
}

func addStats(dst *domain.Stats, src *domain.Stats) {
	dst.TotalAds += src.TotalAds
	dst.ActiveAds += src.ActiveAds
	dst.TopPerformers += src.TopPerformers

	for k, v := range src.MediaBreakdown {
		dst.MediaBreakdown[k] += v
	}
	for k, v := range src.ThemeBreakdown {
		dst.ThemeBreakdown[k] += v
	}
	for k, v := range src.CompetitorBreakdown {
		dst.CompetitorBreakdown[k] += v
	}
}
