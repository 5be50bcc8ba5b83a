// Package adlibrary wraps the Meta Ad Library client behind the Source
// interface consumed by the fetching use case. The sample generator under
// ./sample implements the same interface so source selection never leaks
// into business logic.
package adlibrary

import (
	"context"
	"time"

	"github.com/mosaicwellness/ad-warroom-api/infrastructure/integrator/adlibrary/adlibclient"
	adlibdomain "github.com/mosaicwellness/ad-warroom-api/infrastructure/integrator/adlibrary/domain"
	"github.com/mosaicwellness/ad-warroom-api/internal/config"
	"github.com/mosaicwellness/ad-warroom-api/internal/domain"
	"github.com/sirupsen/logrus"
)

type AdLibraryIntegrator struct {
	cfg    *config.Config
	Client adlibclient.Client
}

func New(cfg *config.Config, client adlibclient.Client) *AdLibraryIntegrator {
	return &AdLibraryIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *AdLibraryIntegrator) Name() string {
	return domain.FetchSourceLive
}

// Validate reports whether the configured token is usable.
func (s *AdLibraryIntegrator) Validate(ctx context.Context) error {
	return s.Client.ValidateToken(ctx)
}

// CompetitorAds pulls every archive page for one competitor's search term,
// sleeping a fixed interval between pages. The Ad Library has an
// undocumented rate limit; the delay keeps long fetches under it.
func (s *AdLibraryIntegrator) CompetitorAds(ctx context.Context, competitor domain.Competitor) ([]adlibdomain.RawAd, error) {
	delay := time.Duration(s.cfg.Fetch.RequestDelaySeconds) * time.Second

	ads := make([]adlibdomain.RawAd, 0)
	after := ""

	for page := 0; page < s.cfg.AdLibrary.MaxPages; page++ {
		if page > 0 {
			select {
			case <-ctx.Done():
				return ads, ctx.Err()
			case <-time.After(delay):
			}
		}

		resp, err := s.Client.SearchAds(ctx, competitor.PageSearchTerm, after)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"competitor": competitor.Name,
				"page":       page,
				"error":      err.Error(),
			}).Error("adlibrary: page fetch failed")

			// Keep what we already have; the caller decides on fallback.
			if len(ads) > 0 {
				return ads, nil
			}
			return nil, err
		}

		ads = append(ads, resp.Data...)

		if resp.Paging == nil || resp.Paging.Next == "" || resp.Paging.Cursors.After == "" {
			break
		}
		after = resp.Paging.Cursors.After
	}

	logrus.WithFields(logrus.Fields{
		"competitor": competitor.Name,
		"ads":        len(ads),
	}).Debug("adlibrary: competitor fetch complete")

	return ads, nil
}
