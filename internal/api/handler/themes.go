package handler

import (
	"net/http"

	"github.com/mosaicwellness/ad-warroom-api/internal/usecases/normalizing"
)

// ListThemes returns the known messaging theme labels in precedence order.
func ListThemes() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, r, map[string]any{
			"themes": normalizing.ThemeLabels(),
		})
	})
}
