// Package domain holds the raw Ad Library record shapes. Field presence
// varies across API versions, so everything optional stays optional here and
// normalization decides the defaults.
package domain

// BoundRange is the Ad Library's "{lower_bound, upper_bound}" shape. Values
// arrive as strings on the wire.
type BoundRange struct {
	LowerBound string `json:"lower_bound"`
	UpperBound string `json:"upper_bound"`
}

// CreativeCard is one entry of a multi-asset (carousel) creative.
type CreativeCard struct {
	Title    string `json:"title,omitempty"`
	Body     string `json:"body,omitempty"`
	LinkURL  string `json:"link_url,omitempty"`
	ImageURL string `json:"original_image_url,omitempty"`
	VideoURL string `json:"video_hd_url,omitempty"`
}

// RawAd is one advertisement record as returned by the ads_archive endpoint
// or emitted by the sample generator.
type RawAd struct {
	ID                         string        `json:"id"`
	PageName                   string        `json:"page_name"`
	PageID                     string        `json:"page_id"`
	AdCreativeBodies           []string      `json:"ad_creative_bodies"`
	AdCreativeLinkTitles       []string      `json:"ad_creative_link_titles"`
	AdCreativeLinkDescriptions []string      `json:"ad_creative_link_descriptions"`
	AdCreationTime             string        `json:"ad_creation_time"`
	AdDeliveryStartTime        string        `json:"ad_delivery_start_time"`
	AdDeliveryStopTime         string        `json:"ad_delivery_stop_time"`
	PublisherPlatforms         []string      `json:"publisher_platforms"`
	Languages                  []string      `json:"languages"`
	Spend                      *BoundRange   `json:"spend"`
	Impressions                *BoundRange   `json:"impressions"`
	AdSnapshotURL              string        `json:"ad_snapshot_url"`
	MediaType                  string        `json:"media_type"`
	VideoPreviewURLs           []string      `json:"video_preview_urls"`
	Cards                      []CreativeCard `json:"cards"`
	IsSample                   bool          `json:"-"`
}

// Paging is the Ad Library cursor envelope.
type Paging struct {
	Cursors struct {
		Before string `json:"before"`
		After  string `json:"after"`
	} `json:"cursors"`
	Next string `json:"next"`
}

type SearchResponse struct {
	Data   []RawAd `json:"data"`
	Paging *Paging `json:"paging"`
}
