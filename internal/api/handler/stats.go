package handler

import (
	"net/http"

	"github.com/mosaicwellness/ad-warroom-api/internal/usecases/stats"
	"github.com/mosaicwellness/ad-warroom-api/pkg/apiErrors"
	"github.com/mosaicwellness/ad-warroom-api/pkg/log"
)

// GetStats serves the dashboard aggregates as {overall, by_brand}. With
// brand_key the overall section is scoped to that brand; by_brand always
// carries every registered brand. An unknown key reads as an empty scope.
func GetStats(service stats.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dashboard, err := service.Dashboard()
		if err != nil {
			logger.WithError(err).Error("failed to aggregate dashboard stats")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to aggregate stats", nil)
			return
		}

		if brandKey := r.URL.Query().Get("brand_key"); brandKey != "" {
			brandStats, err := service.ForBrand(brandKey)
			if err != nil {
				logger.WithError(err).WithField("brand_key", brandKey).
					Error("failed to aggregate brand stats")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to aggregate stats", nil)
				return
			}
			dashboard.Overall = brandStats
		}

		respondJSON(w, r, dashboard)
	})
}
