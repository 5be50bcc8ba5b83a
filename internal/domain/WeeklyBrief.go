package domain

import "time"

// WeeklyBrief is the single "latest" generated report kept per brand.
// Regeneration overwrites it; a failed regeneration must leave it untouched.
type WeeklyBrief struct {
	ID          int64     `json:"-"`
	BrandKey    string    `json:"brand_key"`
	WeekStart   time.Time `json:"week_start"`
	WeekEnd     time.Time `json:"week_end"`
	BriefText   string    `json:"brief_text"`
	Insights    []Insight `json:"insights"`
	AdCount     int       `json:"ad_count"`
	GeneratedAt time.Time `json:"generated_at"`
}

type FetchResult struct {
	Status    string   `json:"status"`
	Source    string   `json:"source"`
	AdsLoaded int      `json:"ads_loaded"`
	Errors    []string `json:"errors,omitempty"`
	Message   string   `json:"message,omitempty"`
}

const (
	FetchSourceLive   = "live"
	FetchSourceSample = "sample_data"
)
