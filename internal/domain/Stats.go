package domain

// Stats is one scope's breakdown (a single brand or all brands combined).
// ThemeBreakdown only counts classified ads; unthemed ads are excluded.
type Stats struct {
	TotalAds            int            `json:"total_ads"`
	ActiveAds           int            `json:"active_ads"`
	TopPerformers       int            `json:"top_performers"`
	MediaBreakdown      map[string]int `json:"media_breakdown"`
	ThemeBreakdown      map[string]int `json:"theme_breakdown"`
	CompetitorBreakdown map[string]int `json:"competitor_breakdown"`
}

type DashboardStats struct {
	Overall *Stats            `json:"overall"`
	ByBrand map[string]*Stats `json:"by_brand"`
}
