package handler

import (
	"net/http"

	"github.com/mosaicwellness/ad-warroom-api/internal/api/handler/router"
	"github.com/mosaicwellness/ad-warroom-api/internal/config"
	"github.com/mosaicwellness/ad-warroom-api/internal/usecases/ads"
	"github.com/mosaicwellness/ad-warroom-api/internal/usecases/briefing"
	"github.com/mosaicwellness/ad-warroom-api/internal/usecases/fetching"
	"github.com/mosaicwellness/ad-warroom-api/internal/usecases/insighting"
	"github.com/mosaicwellness/ad-warroom-api/internal/usecases/stats"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/api/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Brands() []router.Route {
	return []router.Route{
		{
			Path:    "/api/brands",
			Method:  http.MethodGet,
			Handler: ListBrands(),
		},
	}
}

func Stats(service stats.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/stats",
			Method:  http.MethodGet,
			Handler: GetStats(service),
		},
	}
}

func Ads(service ads.Lister, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/api/ads",
			Method:  http.MethodGet,
			Handler: ListAds(service),
		},
		{
			Path:    "/api/ads/top-performers",
			Method:  http.MethodGet,
			Handler: GetTopPerformers(service, cfg),
		},
	}
}

func Insights(service insighting.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/api/insights",
			Method:  http.MethodGet,
			Handler: GetInsights(service),
		},
	}
}

func Briefs(service briefing.Briefer) []router.Route {
	return []router.Route{
		{
			Path:    "/api/brief/:brand_key",
			Method:  http.MethodGet,
			Handler: GetBrief(service),
		},
		{
			Path:    "/api/brief/:brand_key/generate",
			Method:  http.MethodPost,
			Handler: GenerateBrief(service),
		},
	}
}

func Fetch(service fetching.Fetcher) []router.Route {
	return []router.Route{
		{
			Path:    "/api/fetch",
			Method:  http.MethodPost,
			Handler: TriggerFetch(service),
		},
		{
			Path:    "/api/reseed",
			Method:  http.MethodPost,
			Handler: TriggerReseed(service),
		},
	}
}

func Themes() []router.Route {
	return []router.Route{
		{
			Path:    "/api/themes",
			Method:  http.MethodGet,
			Handler: ListThemes(),
		},
	}
}
