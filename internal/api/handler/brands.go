package handler

import (
	"net/http"

	"github.com/mosaicwellness/ad-warroom-api/internal/brands"
	"github.com/mosaicwellness/ad-warroom-api/internal/domain"
)

type brandSummary struct {
	Key             string              `json:"key"`
	DisplayName     string              `json:"display_name"`
	Category        string              `json:"category"`
	TargetAudience  string              `json:"target_audience"`
	CompetitorCount int                 `json:"competitor_count"`
	Competitors     []domain.Competitor `json:"competitors"`
}

// ListBrands returns the compiled-in brand registry with each brand's
// tracked competitors.
func ListBrands() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		all := brands.All()

		summaries := make([]brandSummary, 0, len(all))
		for _, brand := range all {
			summaries = append(summaries, brandSummary{
				Key:             brand.Key,
				DisplayName:     brand.DisplayName,
				Category:        brand.Category,
				TargetAudience:  brand.TargetAudience,
				CompetitorCount: len(brand.Competitors),
				Competitors:     brand.Competitors,
			})
		}

		respondJSON(w, r, map[string]any{
			"brands": summaries,
		})
	})
}
