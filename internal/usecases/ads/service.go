// Package ads serves the creative feed and the top-performer panel.
package ads

import (
	"github.com/mosaicwellness/ad-warroom-api/infrastructure/repository"
	"github.com/mosaicwellness/ad-warroom-api/internal/domain"
	"github.com/mosaicwellness/ad-warroom-api/pkg/log"
)

type Lister interface {
	List(filter domain.AdFilter) ([]*domain.Ad, int, error)
	TopPerformers(brandKey string, limit int) ([]*domain.Ad, error)
}

type Service struct {
	adRepo repository.AdRepository
}

func NewService(adRepo repository.AdRepository) *Service {
	return &Service{
		adRepo: adRepo,
	}
}

// List returns one page of the feed plus the total count matching the same
// filter, so clients can paginate without a second request.
func (s *Service) List(filter domain.AdFilter) ([]*domain.Ad, int, error) {
	adsList, err := s.adRepo.List(filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.adRepo.Count(filter)
	if err != nil {
		return nil, 0, err
	}

	return adsList, total, nil
}

// TopPerformers returns proven winners for a brand, longest run first. A
// freshly seeded store may have no ad past the threshold yet; in that case
// the longest-running ads stand in so the panel is never empty.
func (s *Service) TopPerformers(brandKey string, limit int) ([]*domain.Ad, error) {
	winners, err := s.adRepo.TopPerformers(brandKey, limit)
	if err != nil {
		return nil, err
	}

	if len(winners) > 0 {
		return winners, nil
	}

	log.L.WithField("brand_key", brandKey).
		Debug("no top performers yet, falling back to longest running ads")

	return s.adRepo.LongestRunning(brandKey, limit)
}
