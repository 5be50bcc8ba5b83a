package briefing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	textgenmocks "github.com/mosaicwellness/ad-warroom-api/infrastructure/integrator/textgen/mocks"
	repomocks "github.com/mosaicwellness/ad-warroom-api/infrastructure/repository/mocks"
	"github.com/mosaicwellness/ad-warroom-api/internal/config"
	"github.com/mosaicwellness/ad-warroom-api/internal/domain"
	insightmocks "github.com/mosaicwellness/ad-warroom-api/internal/usecases/insighting/mocks"
)

type briefMocks struct {
	stats     *insightmocks.MockStatsProvider
	adRepo    *repomocks.MockAdRepository
	briefRepo *repomocks.MockWeeklyBriefRepository
	analyzer  *insightmocks.MockAnalyzer
	generator *textgenmocks.MockGenerator
}

func newBriefService(ctrl *gomock.Controller) (*Service, briefMocks) {
	m := briefMocks{
		stats:     insightmocks.NewMockStatsProvider(ctrl),
		adRepo:    repomocks.NewMockAdRepository(ctrl),
		briefRepo: repomocks.NewMockWeeklyBriefRepository(ctrl),
		analyzer:  insightmocks.NewMockAnalyzer(ctrl),
		generator: textgenmocks.NewMockGenerator(ctrl),
	}

	cfg := &config.Config{Fetch: config.Fetch{InsightSampleAds: 5}}
	service := NewService(cfg, m.stats, m.adRepo, m.briefRepo, m.analyzer, m.generator)
	return service, m
}

func TestGenerateBrief_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newBriefService(ctrl)

	m.stats.EXPECT().ForBrand("manmatters").Return(&domain.Stats{
		TotalAds:            42,
		ActiveAds:           30,
		MediaBreakdown:      map[string]int{"IMAGE": 20, "VIDEO": 20, "CAROUSEL": 2},
		ThemeBreakdown:      map[string]int{"offer_promo": 15},
		CompetitorBreakdown: map[string]int{"Traya": 42},
	}, nil)
	m.adRepo.EXPECT().SampleCopies("manmatters", 5).Return(nil, nil)
	m.generator.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("## TL;DR\nPromos everywhere.", nil)
	m.analyzer.EXPECT().AnalyzeBrand(gomock.Any(), "manmatters").Return(&domain.BrandInsights{
		Brand:   "manmatters",
		AdCount: 42,
		Analysis: domain.Analysis{
			Insights: []domain.Insight{
				{Type: domain.InsightTypeTrend, Urgency: domain.UrgencyHigh, Title: "Promo surge", Detail: "..."},
			},
		},
	}, nil)
	m.briefRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

	before := time.Now().UTC()
	brief, err := service.GenerateBrief(context.Background(), "manmatters")
	require.NoError(t, err)

	assert.Equal(t, "manmatters", brief.BrandKey)
	assert.Equal(t, "## TL;DR\nPromos everywhere.", brief.BriefText)
	assert.Equal(t, 42, brief.AdCount)
	require.Len(t, brief.Insights, 1)

	// One trailing week, anchored at generation time.
	assert.WithinDuration(t, before, brief.GeneratedAt, 5*time.Second)
	assert.WithinDuration(t, brief.WeekEnd.AddDate(0, 0, -7), brief.WeekStart, time.Second)
}

// A failed regeneration must not touch the stored brief.
func TestGenerateBrief_GeneratorFailureLeavesStoredBriefAlone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newBriefService(ctrl)

	m.stats.EXPECT().ForBrand("manmatters").Return(&domain.Stats{
		TotalAds:            10,
		MediaBreakdown:      map[string]int{"IMAGE": 10},
		ThemeBreakdown:      map[string]int{},
		CompetitorBreakdown: map[string]int{},
	}, nil)
	m.adRepo.EXPECT().SampleCopies("manmatters", 5).Return(nil, nil)
	m.generator.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("model overloaded"))

	// No SaveOrUpdate expectation: writing here would fail the test.
	brief, err := service.GenerateBrief(context.Background(), "manmatters")

	require.Error(t, err)
	assert.Nil(t, brief)
	assert.Contains(t, err.Error(), "brief generation failed")
}

func TestGenerateBrief_UnknownBrand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newBriefService(ctrl)

	brief, err := service.GenerateBrief(context.Background(), "nosuchbrand")

	require.Error(t, err)
	assert.Nil(t, brief)
	assert.ErrorIs(t, err, ErrUnknownBrand)
}

func TestGetLatest_PassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newBriefService(ctrl)

	stored := &domain.WeeklyBrief{BrandKey: "bebodywise", BriefText: "## TL;DR\nQuiet week."}
	m.briefRepo.EXPECT().GetLatest("bebodywise").Return(stored, nil)

	brief, err := service.GetLatest("bebodywise")
	require.NoError(t, err)
	assert.Equal(t, stored, brief)
}

func TestGetLatest_NoBriefYet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newBriefService(ctrl)

	m.briefRepo.EXPECT().GetLatest("littlejoys").Return(nil, nil)

	brief, err := service.GetLatest("littlejoys")
	require.NoError(t, err)
	assert.Nil(t, brief)
}
