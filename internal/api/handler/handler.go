// Package handler contains the HTTP handlers for the war room API.
package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/mosaicwellness/ad-warroom-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// respondJSON writes v as the JSON response body. Encoding failures are
// logged; headers are already gone at that point.
func respondJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("failed to encode response")
	}
}
