package fetching

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	adlibdomain "github.com/mosaicwellness/ad-warroom-api/infrastructure/integrator/adlibrary/domain"
	repomocks "github.com/mosaicwellness/ad-warroom-api/infrastructure/repository/mocks"
	"github.com/mosaicwellness/ad-warroom-api/internal/config"
	"github.com/mosaicwellness/ad-warroom-api/internal/domain"
	"github.com/mosaicwellness/ad-warroom-api/internal/usecases/fetching/mocks"
)

func rawAd(id string) adlibdomain.RawAd {
	return adlibdomain.RawAd{
		ID:                  id,
		AdCreativeBodies:    []string{"Flat 40% off everything."},
		AdDeliveryStartTime: "2026-08-01T00:00:00+00:00",
		IsSample:            true,
	}
}

func expectSampleSource(source *mocks.MockSource, adsPerCompetitor int) {
	source.EXPECT().Name().Return(domain.FetchSourceSample).AnyTimes()
	source.EXPECT().CompetitorAds(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, competitor domain.Competitor) ([]adlibdomain.RawAd, error) {
			ads := make([]adlibdomain.RawAd, 0, adsPerCompetitor)
			for i := 0; i < adsPerCompetitor; i++ {
				ads = append(ads, rawAd(competitor.Name+"_"+string(rune('a'+i))))
			}
			return ads, nil
		}).AnyTimes()
}

// Without a token configured, a fetch must come entirely from sample data and
// still load ads.
func TestFetchBrand_NoTokenUsesSampleData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adRepo := repomocks.NewMockAdRepository(ctrl)
	live := mocks.NewMockLiveSource(ctrl)
	sampleSource := mocks.NewMockSource(ctrl)

	expectSampleSource(sampleSource, 3)
	adRepo.EXPECT().Upsert(gomock.Any()).Return(nil).Times(15) // 5 competitors x 3 ads

	cfg := &config.Config{}
	service := NewService(cfg, adRepo, live, sampleSource)

	result, err := service.FetchBrand(context.Background(), "manmatters")
	require.NoError(t, err)

	assert.Equal(t, "success", result.Status)
	assert.Equal(t, domain.FetchSourceSample, result.Source)
	assert.Greater(t, result.AdsLoaded, 0)
	assert.Equal(t, 15, result.AdsLoaded)
	assert.Empty(t, result.Errors)
}

func TestFetchBrand_UnknownBrand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adRepo := repomocks.NewMockAdRepository(ctrl)
	live := mocks.NewMockLiveSource(ctrl)
	sampleSource := mocks.NewMockSource(ctrl)

	service := NewService(&config.Config{}, adRepo, live, sampleSource)

	result, err := service.FetchBrand(context.Background(), "nosuchbrand")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrUnknownBrand)
}

// An invalid token downgrades the whole run to sample data with a warning
// instead of failing.
func TestFetchBrand_InvalidTokenFallsBackToSample(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adRepo := repomocks.NewMockAdRepository(ctrl)
	live := mocks.NewMockLiveSource(ctrl)
	sampleSource := mocks.NewMockSource(ctrl)

	live.EXPECT().Validate(gomock.Any()).Return(errors.New("expired token"))
	expectSampleSource(sampleSource, 1)
	adRepo.EXPECT().Upsert(gomock.Any()).Return(nil).Times(5)

	cfg := &config.Config{}
	cfg.AdLibrary.AccessToken = "stale-token"
	service := NewService(cfg, adRepo, live, sampleSource)

	result, err := service.FetchBrand(context.Background(), "manmatters")
	require.NoError(t, err)

	assert.Equal(t, domain.FetchSourceSample, result.Source)
	assert.Equal(t, 5, result.AdsLoaded)
}

// One competitor failing live must not abort the run; its slot is backfilled
// with sample rows and reported as partial.
func TestFetchBrand_PerCompetitorLiveFailureBackfills(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adRepo := repomocks.NewMockAdRepository(ctrl)
	live := mocks.NewMockLiveSource(ctrl)
	sampleSource := mocks.NewMockSource(ctrl)

	live.EXPECT().Validate(gomock.Any()).Return(nil)
	live.EXPECT().Name().Return(domain.FetchSourceLive).AnyTimes()

	calls := 0
	live.EXPECT().CompetitorAds(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, competitor domain.Competitor) ([]adlibdomain.RawAd, error) {
			calls++
			if calls == 1 {
				return nil, errors.New("rate limited")
			}
			return []adlibdomain.RawAd{rawAd(competitor.Name + "_live")}, nil
		}).Times(4) // littlejoys has 4 competitors

	sampleSource.EXPECT().CompetitorAds(gomock.Any(), gomock.Any()).
		Return([]adlibdomain.RawAd{rawAd("backfill")}, nil).Times(1)

	adRepo.EXPECT().Upsert(gomock.Any()).Return(nil).Times(4)

	cfg := &config.Config{}
	cfg.AdLibrary.AccessToken = "valid-token"
	service := NewService(cfg, adRepo, live, sampleSource)

	result, err := service.FetchBrand(context.Background(), "littlejoys")
	require.NoError(t, err)

	assert.Equal(t, "partial", result.Status)
	assert.Equal(t, domain.FetchSourceLive, result.Source)
	assert.Equal(t, 4, result.AdsLoaded)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "using sample data")
}

// A record the store rejects is skipped and reported, not fatal.
func TestFetchBrand_StoreErrorSkipsRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adRepo := repomocks.NewMockAdRepository(ctrl)
	live := mocks.NewMockLiveSource(ctrl)
	sampleSource := mocks.NewMockSource(ctrl)

	expectSampleSource(sampleSource, 1)

	failures := 0
	adRepo.EXPECT().Upsert(gomock.Any()).
		DoAndReturn(func(*domain.Ad) error {
			failures++
			if failures == 1 {
				return errors.New("value too long")
			}
			return nil
		}).Times(4)

	service := NewService(&config.Config{}, adRepo, live, sampleSource)

	result, err := service.FetchBrand(context.Background(), "littlejoys")
	require.NoError(t, err)

	assert.Equal(t, "partial", result.Status)
	assert.Equal(t, 3, result.AdsLoaded)
	require.Len(t, result.Errors, 1)
}

func TestFetchAll_CoversEveryBrand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adRepo := repomocks.NewMockAdRepository(ctrl)
	live := mocks.NewMockLiveSource(ctrl)
	sampleSource := mocks.NewMockSource(ctrl)

	expectSampleSource(sampleSource, 1)
	adRepo.EXPECT().Upsert(gomock.Any()).Return(nil).Times(14) // 5+5+4 competitors

	service := NewService(&config.Config{}, adRepo, live, sampleSource)

	results, err := service.FetchAll(context.Background())
	require.NoError(t, err)

	require.Len(t, results, 3)
	for _, key := range []string{"manmatters", "bebodywise", "littlejoys"} {
		require.Contains(t, results, key)
		assert.Equal(t, domain.FetchSourceSample, results[key].Source)
	}
}

func TestReseed_ClearsThenRegenerates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adRepo := repomocks.NewMockAdRepository(ctrl)
	live := mocks.NewMockLiveSource(ctrl)
	sampleSource := mocks.NewMockSource(ctrl)

	adRepo.EXPECT().DeleteAll().Return(int64(120), nil)
	expectSampleSource(sampleSource, 2)
	adRepo.EXPECT().Upsert(gomock.Any()).Return(nil).Times(28) // 14 competitors x 2 ads

	service := NewService(&config.Config{}, adRepo, live, sampleSource)

	result, err := service.Reseed(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.FetchSourceSample, result.Source)
	assert.Equal(t, 28, result.AdsLoaded)
	assert.Contains(t, result.Message, "28 sample ads")
}

func TestSeedIfEmpty(t *testing.T) {
	t.Run("non-empty store is left alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		adRepo := repomocks.NewMockAdRepository(ctrl)
		adRepo.EXPECT().Count(domain.AdFilter{}).Return(37, nil)

		service := NewService(&config.Config{}, adRepo,
			mocks.NewMockLiveSource(ctrl), mocks.NewMockSource(ctrl))

		require.NoError(t, service.SeedIfEmpty(context.Background()))
	})

	t.Run("empty store gets seeded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		adRepo := repomocks.NewMockAdRepository(ctrl)
		sampleSource := mocks.NewMockSource(ctrl)

		adRepo.EXPECT().Count(domain.AdFilter{}).Return(0, nil)
		adRepo.EXPECT().DeleteAll().Return(int64(0), nil)
		expectSampleSource(sampleSource, 1)
		adRepo.EXPECT().Upsert(gomock.Any()).Return(nil).Times(14)

		service := NewService(&config.Config{}, adRepo,
			mocks.NewMockLiveSource(ctrl), sampleSource)

		require.NoError(t, service.SeedIfEmpty(context.Background()))
	})
}
