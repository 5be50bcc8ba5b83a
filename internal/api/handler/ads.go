package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/mosaicwellness/ad-warroom-api/internal/config"
	"github.com/mosaicwellness/ad-warroom-api/internal/domain"
	"github.com/mosaicwellness/ad-warroom-api/internal/usecases/ads"
	"github.com/mosaicwellness/ad-warroom-api/pkg/apiErrors"
	"github.com/mosaicwellness/ad-warroom-api/pkg/log"
	"github.com/mosaicwellness/ad-warroom-api/pkg/utils"
)

const (
	defaultAdLimit = 100
	maxAdLimit     = 500
)

type adListResponse struct {
	Ads    []*domain.Ad `json:"ads"`
	Total  int          `json:"total"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
}

// ListAds serves the filtered, paginated creative feed.
func ListAds(service ads.Lister) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filter, err := parseAdFilter(r)
		if err != nil {
			logger.WithError(err).Warn("rejected ad list request")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, err.Error(), nil)
			return
		}

		adsList, total, err := service.List(*filter)
		if err != nil {
			logger.WithError(err).Error("failed to list ads")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to list ads", nil)
			return
		}

		respondJSON(w, r, adListResponse{
			Ads:    adsList,
			Total:  total,
			Limit:  filter.Limit,
			Offset: filter.Offset,
		})
	})
}

// GetTopPerformers serves the proven-winners panel.
func GetTopPerformers(service ads.Lister, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		limit, err := utils.ParseOptionalInt(r.URL.Query().Get("limit"), cfg.Fetch.TopPerformerLimit)
		if err != nil || limit <= 0 || limit > maxAdLimit {
			if err == nil {
				err = fmt.Errorf("limit must be between 1 and %d", maxAdLimit)
			}
			logger.WithError(err).Warn("rejected top performers request")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, err.Error(), nil)
			return
		}

		winners, err := service.TopPerformers(r.URL.Query().Get("brand_key"), limit)
		if err != nil {
			logger.WithError(err).Error("failed to list top performers")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to list top performers", nil)
			return
		}

		respondJSON(w, r, map[string]any{
			"top_performers": winners,
			"count":          len(winners),
		})
	})
}

func parseAdFilter(r *http.Request) (*domain.AdFilter, error) {
	query := r.URL.Query()

	mediaType := strings.ToUpper(query.Get("media_type"))
	if mediaType != "" && !domain.MediaType(mediaType).Valid() {
		return nil, fmt.Errorf("invalid media_type %q", query.Get("media_type"))
	}

	isActive, err := utils.ParseOptionalBool(query.Get("is_active"))
	if err != nil {
		return nil, fmt.Errorf("invalid is_active: %v", err)
	}

	daysBack, err := utils.ParseOptionalInt(query.Get("days_back"), 0)
	if err != nil || daysBack < 0 {
		return nil, fmt.Errorf("invalid days_back %q", query.Get("days_back"))
	}

	limit, err := utils.ParseOptionalInt(query.Get("limit"), defaultAdLimit)
	if err != nil || limit <= 0 || limit > maxAdLimit {
		return nil, fmt.Errorf("limit must be between 1 and %d", maxAdLimit)
	}

	offset, err := utils.ParseOptionalInt(query.Get("offset"), 0)
	if err != nil || offset < 0 {
		return nil, fmt.Errorf("invalid offset %q", query.Get("offset"))
	}

	return &domain.AdFilter{
		BrandKey:       query.Get("brand_key"),
		CompetitorName: query.Get("competitor"),
		MediaType:      mediaType,
		Theme:          query.Get("theme"),
		IsActive:       isActive,
		DaysBack:       daysBack,
		Limit:          limit,
		Offset:         offset,
	}, nil
}
