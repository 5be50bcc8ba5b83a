package handler

import (
	"errors"
	"net/http"

	"github.com/mosaicwellness/ad-warroom-api/internal/usecases/fetching"
	"github.com/mosaicwellness/ad-warroom-api/pkg/apiErrors"
	"github.com/mosaicwellness/ad-warroom-api/pkg/log"
)

// TriggerFetch refreshes competitor ads on demand, for one brand or all of
// them. The response reports where the data came from and how it went.
func TriggerFetch(service fetching.Fetcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		brandKey := r.URL.Query().Get("brand_key")

		if brandKey != "" {
			result, err := service.FetchBrand(r.Context(), brandKey)
			if err != nil {
				if errors.Is(err, fetching.ErrUnknownBrand) {
					apiErrors.WriteError(w, apiErrors.ErrBrandNotFound, "unknown brand key", brandKey)
					return
				}

				logger.WithError(err).WithField("brand_key", brandKey).Error("fetch failed")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "fetch failed", nil)
				return
			}

			respondJSON(w, r, result)
			return
		}

		results, err := service.FetchAll(r.Context())
		if err != nil {
			logger.WithError(err).Error("fetch all failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "fetch failed", nil)
			return
		}

		respondJSON(w, r, map[string]any{
			"results": results,
		})
	})
}

// TriggerReseed wipes the ad store and reloads sample data for every brand.
func TriggerReseed(service fetching.Fetcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		result, err := service.Reseed(r.Context())
		if err != nil {
			logger.WithError(err).Error("reseed failed")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "reseed failed", nil)
			return
		}

		respondJSON(w, r, result)
	})
}
