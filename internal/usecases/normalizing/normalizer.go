// Package normalizing converts raw Ad Library records into canonical Ad
// entities. Normalize never fails: missing optional fields become nils and
// ambiguous data defaults conservatively, so one malformed upstream record
// can never abort a fetch batch.
package normalizing

import (
	"strconv"
	"strings"
	"time"

	adlibdomain "github.com/mosaicwellness/ad-warroom-api/infrastructure/integrator/adlibrary/domain"
	"github.com/mosaicwellness/ad-warroom-api/internal/domain"
	"github.com/mosaicwellness/ad-warroom-api/pkg/utils"
)

// topPerformerMinDays is the run length after which a still-active ad is
// treated as a proven creative winner.
const topPerformerMinDays = 30

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Normalize builds the canonical Ad for one raw record fetched under the
// given brand and competitor. now anchors every time-derived field so a
// whole batch shares one reference instant.
func Normalize(raw adlibdomain.RawAd, brandKey, competitorName string, now time.Time) domain.Ad {
	startTime := parseTime(firstNonEmpty(raw.AdDeliveryStartTime, raw.AdCreationTime))
	stopTime := parseTime(raw.AdDeliveryStopTime)

	isActive := stopTime == nil || stopTime.After(now)
	runDays := computeRunDays(startTime, stopTime, now)

	title := firstOf(raw.AdCreativeLinkTitles)
	body := firstOf(raw.AdCreativeBodies)

	id := raw.ID
	if id == "" {
		generated, err := utils.GenerateID()
		if err == nil {
			id = "ad_" + generated
		} else {
			id = "ad_" + strconv.FormatInt(now.UnixNano(), 10)
		}
	}

	pageName := raw.PageName
	if pageName == "" {
		pageName = competitorName
	}

	platforms := raw.PublisherPlatforms
	if len(platforms) == 0 {
		platforms = []string{"facebook"}
	}

	languages := raw.Languages
	if len(languages) == 0 {
		languages = []string{"en"}
	}

	spendLower, spendUpper := parseBounds(raw.Spend)
	impLower, impUpper := parseBounds(raw.Impressions)

	return domain.Ad{
		ID:                  id,
		BrandKey:            brandKey,
		CompetitorName:      competitorName,
		PageName:            pageName,
		PageID:              raw.PageID,
		AdTitle:             title,
		AdBody:              body,
		AdDescription:       firstOf(raw.AdCreativeLinkDescriptions),
		MediaType:           DetectMediaType(raw),
		PublisherPlatforms:  platforms,
		Languages:           languages,
		AdCreationTime:      parseTime(raw.AdCreationTime),
		AdDeliveryStartTime: startTime,
		AdDeliveryStopTime:  stopTime,
		SpendLower:          spendLower,
		SpendUpper:          spendUpper,
		ImpressionsLower:    impLower,
		ImpressionsUpper:    impUpper,
		AdSnapshotURL:       optionalString(raw.AdSnapshotURL),
		Theme:               ClassifyTheme(deref(title), deref(body)),
		IsActive:            isActive,
		RunDays:             runDays,
		IsTopPerformer:      runDays >= topPerformerMinDays && isActive,
		IsSample:            raw.IsSample,
	}
}

// DetectMediaType classifies the creative format. An explicit valid hint
// wins; otherwise any video asset means VIDEO and multiple cards mean
// CAROUSEL. Ambiguous or missing data defaults to IMAGE.
func DetectMediaType(raw adlibdomain.RawAd) domain.MediaType {
	hint := domain.MediaType(strings.ToUpper(raw.MediaType))
	if hint.Valid() {
		return hint
	}

	if len(raw.VideoPreviewURLs) > 0 {
		return domain.MediaTypeVideo
	}
	for _, card := range raw.Cards {
		if card.VideoURL != "" {
			return domain.MediaTypeVideo
		}
	}

	if len(raw.Cards) > 1 {
		return domain.MediaTypeCarousel
	}

	return domain.MediaTypeImage
}

// computeRunDays is the whole-day difference between start and stop (or now
// for running ads), clamped at zero against malformed timestamps.
func computeRunDays(start, stop *time.Time, now time.Time) int {
	if start == nil {
		return 0
	}

	end := now
	if stop != nil {
		end = *stop
	}

	days := int(end.Sub(*start).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func parseTime(s string) *time.Time {
	if s == "" {
		return nil
	}

	s = strings.ReplaceAll(s, "+0000", "+00:00")
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			utc := t.UTC()
			return &utc
		}
	}

	return nil
}

func parseBounds(r *adlibdomain.BoundRange) (*int64, *int64) {
	if r == nil {
		return nil, nil
	}

	lower, errL := strconv.ParseInt(r.LowerBound, 10, 64)
	upper, errU := strconv.ParseInt(r.UpperBound, 10, 64)
	if errL != nil || errU != nil {
		return nil, nil
	}

	return &lower, &upper
}

func firstOf(values []string) *string {
	for _, v := range values {
		if v != "" {
			return &v
		}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
