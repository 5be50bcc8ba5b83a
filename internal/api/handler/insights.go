package handler

import (
	"net/http"

	"github.com/mosaicwellness/ad-warroom-api/internal/domain"
	"github.com/mosaicwellness/ad-warroom-api/internal/usecases/insighting"
	"github.com/mosaicwellness/ad-warroom-api/pkg/apiErrors"
	"github.com/mosaicwellness/ad-warroom-api/pkg/log"
)

// GetInsights serves generated insight cards keyed by brand key. With
// brand_key the map holds that brand only; otherwise every registered brand.
// Generation problems degrade inside the service, so failures here are data
// access only.
func GetInsights(service insighting.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		brandKey := r.URL.Query().Get("brand_key")
		if brandKey != "" {
			insights, err := service.AnalyzeBrand(r.Context(), brandKey)
			if err != nil {
				logger.WithError(err).WithField("brand_key", brandKey).
					Error("failed to analyze brand")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to analyze brand", nil)
				return
			}

			respondJSON(w, r, map[string]*domain.BrandInsights{brandKey: insights})
			return
		}

		allInsights, err := service.AnalyzeAll(r.Context())
		if err != nil {
			logger.WithError(err).Error("failed to analyze brands")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to analyze brands", nil)
			return
		}

		respondJSON(w, r, allInsights)
	})
}
