package domain

import "time"

type MediaType string

const (
	MediaTypeImage    MediaType = "IMAGE"
	MediaTypeVideo    MediaType = "VIDEO"
	MediaTypeCarousel MediaType = "CAROUSEL"
)

// MediaTypes lists every media type in gap-preference order. When two formats
// are equally underused, the earlier entry wins.
var MediaTypes = []MediaType{MediaTypeImage, MediaTypeVideo, MediaTypeCarousel}

func (m MediaType) Valid() bool {
	switch m {
	case MediaTypeImage, MediaTypeVideo, MediaTypeCarousel:
		return true
	}
	return false
}

// Ad is the canonical advertisement entity. Optional upstream fields stay
// nullable instead of being defaulted, so the API can tell "absent" from
// "empty".
type Ad struct {
	ID                  string     `json:"id"`
	BrandKey            string     `json:"brand_key"`
	CompetitorName      string     `json:"competitor_name"`
	PageName            string     `json:"page_name"`
	PageID              string     `json:"page_id"`
	AdTitle             *string    `json:"ad_title"`
	AdBody              *string    `json:"ad_body"`
	AdDescription       *string    `json:"ad_description"`
	MediaType           MediaType  `json:"media_type"`
	PublisherPlatforms  []string   `json:"publisher_platforms"`
	Languages           []string   `json:"languages"`
	AdCreationTime      *time.Time `json:"ad_creation_time"`
	AdDeliveryStartTime *time.Time `json:"ad_delivery_start_time"`
	AdDeliveryStopTime  *time.Time `json:"ad_delivery_stop_time"`
	SpendLower          *int64     `json:"spend_lower"`
	SpendUpper          *int64     `json:"spend_upper"`
	ImpressionsLower    *int64     `json:"impressions_lower"`
	ImpressionsUpper    *int64     `json:"impressions_upper"`
	AdSnapshotURL       *string    `json:"ad_snapshot_url"`
	Theme               *string    `json:"theme"`
	IsActive            bool       `json:"is_active"`
	RunDays             int        `json:"run_days"`
	IsTopPerformer      bool       `json:"is_top_performer"`
	IsSample            bool       `json:"is_sample"`
	CreatedAt           time.Time  `json:"-"`
	UpdatedAt           time.Time  `json:"-"`
}

// AdCopy is a title/body pair used as illustrative evidence in generation
// prompts.
type AdCopy struct {
	Title string
	Body  string
}

// AdFilter is a conjunction of optional predicates over the Ad Store. Zero
// values mean "not filtered".
type AdFilter struct {
	BrandKey       string
	CompetitorName string
	MediaType      string
	Theme          string
	IsActive       *bool
	DaysBack       int
	Limit          int
	Offset         int
}
