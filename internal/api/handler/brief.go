package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/mosaicwellness/ad-warroom-api/internal/brands"
	"github.com/mosaicwellness/ad-warroom-api/internal/usecases/briefing"
	"github.com/mosaicwellness/ad-warroom-api/pkg/apiErrors"
	"github.com/mosaicwellness/ad-warroom-api/pkg/log"
)

const noBriefPlaceholder = "No brief generated yet. POST /api/brief/{brand_key}/generate to create one."

// GetBrief returns the stored weekly brief for a brand, or a placeholder
// body when none has been generated.
func GetBrief(service briefing.Briefer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		brandKey := httprouter.ParamsFromContext(r.Context()).ByName("brand_key")

		brief, err := service.GetLatest(brandKey)
		if err != nil {
			logger.WithError(err).WithField("brand_key", brandKey).
				Error("failed to load weekly brief")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to load brief", nil)
			return
		}

		if brief == nil {
			// generated_at stays null so the UI can tell "never generated"
			// from a real brief.
			respondJSON(w, r, map[string]any{
				"brand_key":    brandKey,
				"brief_text":   noBriefPlaceholder,
				"generated_at": nil,
			})
			return
		}

		respondJSON(w, r, brief)
	})
}

// GenerateBrief regenerates a brand's weekly brief on demand. Unknown brands
// are a 404 here (unlike reads, there is nothing sensible to return), and an
// upstream failure is a 502 with the previous brief left in place.
func GenerateBrief(service briefing.Briefer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		brandKey := httprouter.ParamsFromContext(r.Context()).ByName("brand_key")

		if !brands.Exists(brandKey) {
			apiErrors.WriteError(w, apiErrors.ErrBrandNotFound, "unknown brand key", brandKey)
			return
		}

		brief, err := service.GenerateBrief(r.Context(), brandKey)
		if err != nil {
			if errors.Is(err, briefing.ErrUnknownBrand) {
				apiErrors.WriteError(w, apiErrors.ErrBrandNotFound, "unknown brand key", brandKey)
				return
			}

			logger.WithError(err).WithField("brand_key", brandKey).
				Error("brief generation failed")
			apiErrors.WriteError(w, apiErrors.ErrUpstreamUnavailable,
				"brief generation failed, previous brief preserved", nil)
			return
		}

		respondJSON(w, r, brief)
	})
}
