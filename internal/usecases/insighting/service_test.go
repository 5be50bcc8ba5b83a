package insighting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	textgenmocks "github.com/mosaicwellness/ad-warroom-api/infrastructure/integrator/textgen/mocks"
	repomocks "github.com/mosaicwellness/ad-warroom-api/infrastructure/repository/mocks"
	"github.com/mosaicwellness/ad-warroom-api/internal/config"
	"github.com/mosaicwellness/ad-warroom-api/internal/domain"
	"github.com/mosaicwellness/ad-warroom-api/internal/usecases/insighting/mocks"
)

func testConfig() *config.Config {
	return &config.Config{
		Fetch: config.Fetch{
			InsightSampleAds: 5,
		},
	}
}

func testStats() *domain.Stats {
	return &domain.Stats{
		TotalAds:      19,
		ActiveAds:     12,
		TopPerformers: 4,
		MediaBreakdown: map[string]int{
			"IMAGE": 10, "VIDEO": 8, "CAROUSEL": 1,
		},
		ThemeBreakdown:      map[string]int{"offer_promo": 7},
		CompetitorBreakdown: map[string]int{"Traya": 19},
	}
}

func TestAnalyzeBrand_GeneratorFailureFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	statsMock := mocks.NewMockStatsProvider(ctrl)
	adRepo := repomocks.NewMockAdRepository(ctrl)
	generator := textgenmocks.NewMockGenerator(ctrl)

	statsMock.EXPECT().ForBrand("manmatters").Return(testStats(), nil)
	adRepo.EXPECT().SampleCopies("manmatters", 5).Return([]domain.AdCopy{}, nil)
	generator.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("rate limited"))

	service := NewService(testConfig(), statsMock, adRepo, generator)

	result, err := service.AnalyzeBrand(context.Background(), "manmatters")
	require.NoError(t, err)

	assert.Equal(t, "Man Matters", result.Brand)
	assert.Equal(t, 19, result.AdCount)
	assert.Empty(t, result.Analysis.Insights)
	assert.Contains(t, result.Analysis.SummaryOneLiner, "19 competitor ads")
	assert.Contains(t, result.Analysis.SummaryOneLiner, "12 active")

	// Gap detection is local, so it survives the generation failure.
	require.NotNil(t, result.Analysis.UnderusedFormat)
	assert.Equal(t, "CAROUSEL", *result.Analysis.UnderusedFormat)
}

func TestAnalyzeBrand_ParsesFencedResponseAndDropsInvalidInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	statsMock := mocks.NewMockStatsProvider(ctrl)
	adRepo := repomocks.NewMockAdRepository(ctrl)
	generator := textgenmocks.NewMockGenerator(ctrl)

	response := "```json\n" + `{
		"summary_one_liner": "Traya owns the promo conversation.",
		"insights": [
			{"type": "trend", "urgency": "high", "title": "Promo surge", "detail": "Discount copy dominates."},
			{"type": "hunch", "urgency": "high", "title": "Bad type", "detail": "Dropped."},
			{"type": "gap", "urgency": "critical", "title": "Bad urgency", "detail": "Dropped."},
			{"type": "opportunity", "urgency": "low", "title": "Carousel void", "detail": "Nobody runs carousels."}
		]
	}` + "\n```"

	statsMock.EXPECT().ForBrand("manmatters").Return(testStats(), nil)
	adRepo.EXPECT().SampleCopies("manmatters", 5).Return([]domain.AdCopy{
		{Title: "Flat 40% off", Body: "Use code GLOW40."},
	}, nil)
	generator.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(response, nil)

	service := NewService(testConfig(), statsMock, adRepo, generator)

	result, err := service.AnalyzeBrand(context.Background(), "manmatters")
	require.NoError(t, err)

	assert.Equal(t, "Traya owns the promo conversation.", result.Analysis.SummaryOneLiner)
	require.Len(t, result.Analysis.Insights, 2)
	assert.Equal(t, domain.InsightTypeTrend, result.Analysis.Insights[0].Type)
	assert.Equal(t, "Carousel void", result.Analysis.Insights[1].Title)

	require.NotNil(t, result.Analysis.UnderusedFormat)
	assert.Equal(t, "CAROUSEL", *result.Analysis.UnderusedFormat)
}

func TestAnalyzeBrand_GarbageResponseFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	statsMock := mocks.NewMockStatsProvider(ctrl)
	adRepo := repomocks.NewMockAdRepository(ctrl)
	generator := textgenmocks.NewMockGenerator(ctrl)

	statsMock.EXPECT().ForBrand("littlejoys").Return(&domain.Stats{
		TotalAds:            3,
		ActiveAds:           1,
		MediaBreakdown:      map[string]int{"IMAGE": 3},
		ThemeBreakdown:      map[string]int{},
		CompetitorBreakdown: map[string]int{},
	}, nil)
	adRepo.EXPECT().SampleCopies("littlejoys", 5).Return(nil, nil)
	generator.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("Sorry, I cannot help with that.", nil)

	service := NewService(testConfig(), statsMock, adRepo, generator)

	result, err := service.AnalyzeBrand(context.Background(), "littlejoys")
	require.NoError(t, err)

	assert.Empty(t, result.Analysis.Insights)
	assert.Contains(t, result.Analysis.SummaryOneLiner, "Little Joys")
}

func TestAnalyzeBrand_UnknownBrandReadsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	statsMock := mocks.NewMockStatsProvider(ctrl)
	adRepo := repomocks.NewMockAdRepository(ctrl)
	generator := textgenmocks.NewMockGenerator(ctrl)

	service := NewService(testConfig(), statsMock, adRepo, generator)

	result, err := service.AnalyzeBrand(context.Background(), "nosuchbrand")
	require.NoError(t, err)

	assert.Equal(t, "nosuchbrand", result.Brand)
	assert.Zero(t, result.AdCount)
	assert.Empty(t, result.Analysis.Insights)
}

func TestAnalyzeAll_CoversEveryBrand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	statsMock := mocks.NewMockStatsProvider(ctrl)
	adRepo := repomocks.NewMockAdRepository(ctrl)
	generator := textgenmocks.NewMockGenerator(ctrl)

	statsMock.EXPECT().ForBrand(gomock.Any()).Return(testStats(), nil).Times(3)
	adRepo.EXPECT().SampleCopies(gomock.Any(), 5).Return(nil, nil).Times(3)
	generator.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("offline")).Times(3)

	service := NewService(testConfig(), statsMock, adRepo, generator)

	results, err := service.AnalyzeAll(context.Background())
	require.NoError(t, err)

	require.Len(t, results, 3)
	require.Contains(t, results, "manmatters")
	require.Contains(t, results, "bebodywise")
	require.Contains(t, results, "littlejoys")
	assert.Equal(t, "Man Matters", results["manmatters"].Brand)
	assert.Equal(t, "Be Bodywise", results["bebodywise"].Brand)
	assert.Equal(t, "Little Joys", results["littlejoys"].Brand)
}
