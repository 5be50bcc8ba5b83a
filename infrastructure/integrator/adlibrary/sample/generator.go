// Package sample is the synthetic raw-record source used when no Ad Library
// token is configured or a live fetch comes back empty. It implements the
// same interface as the live integrator, so the fetching use case does not
// branch on where records come from.
package sample

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	adlibdomain "github.com/mosaicwellness/ad-warroom-api/infrastructure/integrator/adlibrary/domain"
	"github.com/mosaicwellness/ad-warroom-api/internal/config"
	"github.com/mosaicwellness/ad-warroom-api/internal/domain"
)

type copyTemplate struct {
	title string
	body  string
}

// Templates are written to trip the theme classifier the way real competitor
// copy does: each leans on one recognizable angle.
var templates = []copyTemplate{
	{
		title: "Dermatologist-designed hair kit",
		body:  "Built with doctors who have treated 2 lakh+ cases. Your scalp deserves an expert, not guesswork. %s",
	},
	{
		title: "Real customer. Real results.",
		body:  "\"I tried everything before this. Honest review after 3 months — it works.\" Another happy %s customer story.",
	},
	{
		title: "Flat 40% off this week only",
		body:  "Biggest sale of the season. Use code GLOW40 at checkout and get free shipping on every %s order.",
	},
	{
		title: "Backed by clinical studies",
		body:  "Clinically proven actives at the right concentration. Read the study behind the %s formula before you buy.",
	},
	{
		title: "30-day transformation",
		body:  "Swipe to see the before and after. Thirty days, visible results, zero filters. %s challenge is on.",
	},
	{
		title: "Made safe for your child",
		body:  "No refined sugar, no preservatives. Pediatrician-approved nutrition parents trust. %s grows with your kids.",
	},
	{
		title: "Join 5 lakh+ members",
		body:  "A community of people fixing this together. Join thousands who switched to %s this year.",
	},
	{
		title: "New drop: daily essentials",
		body:  "Everything you need for your routine in one place. Crafted by %s, delivered to your door.",
	},
}

var platformSets = [][]string{
	{"facebook", "instagram"},
	{"facebook", "instagram", "audience_network"},
	{"instagram"},
	{"facebook"},
}

var spendBands = []adlibdomain.BoundRange{
	{LowerBound: "0", UpperBound: "9999"},
	{LowerBound: "10000", UpperBound: "49999"},
	{LowerBound: "50000", UpperBound: "99999"},
	{LowerBound: "100000", UpperBound: "499999"},
}

type Generator struct {
	cfg *config.Config
	rng *rand.Rand
}

func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (g *Generator) Name() string {
	return domain.FetchSourceSample
}

// CompetitorAds emits synthetic records with stable ids per competitor, so
// repeated sample fetches upsert the same rows instead of growing the store.
func (g *Generator) CompetitorAds(_ context.Context, competitor domain.Competitor) ([]adlibdomain.RawAd, error) {
	count := g.cfg.Fetch.SampleAdsPerCompetitor
	if count <= 0 {
		count = 15
	}

	now := time.Now().UTC()
	slug := slugify(competitor.Name)

	ads := make([]adlibdomain.RawAd, 0, count)
	for i := 0; i < count; i++ {
		tpl := templates[i%len(templates)]

		// Spread starts over ~80 days; every third ad is a long runner so
		// top-performer panels always have material.
		startDaysAgo := 3 + g.rng.Intn(78)
		if i%3 == 0 {
			startDaysAgo = 35 + g.rng.Intn(55)
		}
		start := now.AddDate(0, 0, -startDaysAgo)

		stop := ""
		if g.rng.Float64() < 0.3 {
			stopDate := start.AddDate(0, 0, 1+g.rng.Intn(startDaysAgo))
			if stopDate.After(now) {
				stopDate = now.AddDate(0, 0, -1)
			}
			stop = stopDate.Format(time.RFC3339)
		}

		ad := adlibdomain.RawAd{
			ID:                   fmt.Sprintf("sample_%s_%03d", slug, i),
			PageName:             competitor.Name,
			PageID:               fmt.Sprintf("page_%s", slug),
			AdCreativeLinkTitles: []string{tpl.title},
			AdCreativeBodies:     []string{fmt.Sprintf(tpl.body, competitor.Name)},
			AdCreationTime:       start.AddDate(0, 0, -1).Format(time.RFC3339),
			AdDeliveryStartTime:  start.Format(time.RFC3339),
			AdDeliveryStopTime:   stop,
			PublisherPlatforms:   platformSets[g.rng.Intn(len(platformSets))],
			Languages:            []string{"en"},
			Spend:                &spendBands[g.rng.Intn(len(spendBands))],
			Impressions:          &adlibdomain.BoundRange{LowerBound: "100000", UpperBound: "499999"},
			AdSnapshotURL:        fmt.Sprintf("https://www.facebook.com/ads/library/?id=sample_%s_%03d", slug, i),
			IsSample:             true,
		}

		switch i % 5 {
		case 0, 1:
			ad.MediaType = string(domain.MediaTypeVideo)
			ad.VideoPreviewURLs = []string{fmt.Sprintf("https://video.example/%s/%d.mp4", slug, i)}
		case 2:
			ad.MediaType = string(domain.MediaTypeCarousel)
			ad.Cards = []adlibdomain.CreativeCard{
				{Title: tpl.title, Body: "Card 1"},
				{Title: tpl.title, Body: "Card 2"},
				{Title: tpl.title, Body: "Card 3"},
			}
		default:
			ad.MediaType = string(domain.MediaTypeImage)
		}

		ads = append(ads, ad)
	}

	return ads, nil
}

func slugify(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "'", "")
	return s
}
