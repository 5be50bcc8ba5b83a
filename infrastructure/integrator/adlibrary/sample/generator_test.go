package sample

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosaicwellness/ad-warroom-api/internal/config"
	"github.com/mosaicwellness/ad-warroom-api/internal/domain"
	"github.com/mosaicwellness/ad-warroom-api/internal/usecases/normalizing"
)

func sampleCfg(count int) *config.Config {
	cfg := &config.Config{}
	cfg.Fetch.SampleAdsPerCompetitor = count
	return cfg
}

var traya = domain.Competitor{Name: "Traya", Category: "Hair loss treatment"}

func TestCompetitorAds_CountAndMarking(t *testing.T) {
	generator := NewGenerator(sampleCfg(15))

	ads, err := generator.CompetitorAds(context.Background(), traya)
	require.NoError(t, err)

	require.Len(t, ads, 15)
	for _, ad := range ads {
		assert.True(t, ad.IsSample)
		assert.Equal(t, "Traya", ad.PageName)
		assert.NotEmpty(t, ad.AdDeliveryStartTime)
	}
}

// Stable ids mean a reseed upserts the same rows instead of growing the
// store run over run.
func TestCompetitorAds_StableIDs(t *testing.T) {
	first, err := NewGenerator(sampleCfg(10)).CompetitorAds(context.Background(), traya)
	require.NoError(t, err)
	second, err := NewGenerator(sampleCfg(10)).CompetitorAds(context.Background(), traya)
	require.NoError(t, err)

	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
	assert.Equal(t, "sample_traya_000", first[0].ID)
}

func TestCompetitorAds_MediaMix(t *testing.T) {
	ads, err := NewGenerator(sampleCfg(15)).CompetitorAds(context.Background(), traya)
	require.NoError(t, err)

	seen := map[string]int{}
	for _, ad := range ads {
		seen[ad.MediaType]++
	}

	assert.Greater(t, seen[string(domain.MediaTypeImage)], 0)
	assert.Greater(t, seen[string(domain.MediaTypeVideo)], 0)
	assert.Greater(t, seen[string(domain.MediaTypeCarousel)], 0)
}

// Most templates are written to land in a theme bucket, so seeded data gives
// the theme breakdown something to show.
func TestCompetitorAds_CopyTripsThemeClassifier(t *testing.T) {
	ads, err := NewGenerator(sampleCfg(8)).CompetitorAds(context.Background(), traya)
	require.NoError(t, err)

	themed := 0
	for _, ad := range ads {
		title, body := "", ""
		if len(ad.AdCreativeLinkTitles) > 0 {
			title = ad.AdCreativeLinkTitles[0]
		}
		if len(ad.AdCreativeBodies) > 0 {
			body = ad.AdCreativeBodies[0]
		}
		if normalizing.ClassifyTheme(title, body) != nil {
			themed++
		}
	}

	assert.GreaterOrEqual(t, themed, 6)
}

func TestCompetitorAds_ZeroConfigFallsBackToDefault(t *testing.T) {
	ads, err := NewGenerator(sampleCfg(0)).CompetitorAds(context.Background(), traya)
	require.NoError(t, err)

	assert.Len(t, ads, 15)
}
