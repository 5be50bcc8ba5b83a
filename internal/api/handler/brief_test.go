package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosaicwellness/ad-warroom-api/internal/api/handler/router"
	"github.com/mosaicwellness/ad-warroom-api/internal/domain"
	"github.com/mosaicwellness/ad-warroom-api/pkg/apiErrors"
)

type stubBriefer struct {
	latest    *domain.WeeklyBrief
	generated *domain.WeeklyBrief
	err       error
}

func (s *stubBriefer) GetLatest(string) (*domain.WeeklyBrief, error) {
	return s.latest, s.err
}

func (s *stubBriefer) GenerateBrief(context.Context, string) (*domain.WeeklyBrief, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.generated, nil
}

func (s *stubBriefer) GenerateAll(context.Context) error {
	return s.err
}

func briefRouter(briefer *stubBriefer) router.Router {
	return router.New(router.WithRoutes(Briefs(briefer)...))
}

func TestGetBrief_NoBriefYetReturnsPlaceholder(t *testing.T) {
	rt := briefRouter(&stubBriefer{})

	req := httptest.NewRequest(http.MethodGet, "/api/brief/manmatters", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "manmatters", resp["brand_key"])
	assert.Contains(t, resp["brief_text"], "No brief generated yet")

	// Present but null, so clients can key off it.
	generatedAt, ok := resp["generated_at"]
	require.True(t, ok)
	assert.Nil(t, generatedAt)
}

func TestGetBrief_ReturnsStoredBrief(t *testing.T) {
	rt := briefRouter(&stubBriefer{
		latest: &domain.WeeklyBrief{
			BrandKey:    "manmatters",
			BriefText:   "## TL;DR\nPromos everywhere.",
			AdCount:     42,
			GeneratedAt: time.Date(2026, 8, 24, 7, 0, 0, 0, time.UTC),
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/brief/manmatters", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var brief domain.WeeklyBrief
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &brief))
	assert.Equal(t, 42, brief.AdCount)
	assert.Contains(t, brief.BriefText, "TL;DR")
}

func TestGenerateBrief_UnknownBrandIs404(t *testing.T) {
	rt := briefRouter(&stubBriefer{})

	req := httptest.NewRequest(http.MethodPost, "/api/brief/nosuchbrand/generate", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrBrandNotFound, apiErr.Code)
}

func TestGenerateBrief_UpstreamFailureIs502(t *testing.T) {
	rt := briefRouter(&stubBriefer{err: assert.AnError})

	req := httptest.NewRequest(http.MethodPost, "/api/brief/manmatters/generate", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestListThemes(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/themes", nil)
	rec := httptest.NewRecorder()

	ListThemes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Themes []string `json:"themes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Themes, 7)
	assert.Equal(t, "doctor_authority", resp.Themes[0])
}

func TestListBrands(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/brands", nil)
	rec := httptest.NewRecorder()

	ListBrands().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Brands []brandSummary `json:"brands"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Brands, 3)
	assert.Equal(t, "manmatters", resp.Brands[0].Key)
	assert.NotEmpty(t, resp.Brands[0].Competitors)

	for _, brand := range resp.Brands {
		assert.Equal(t, len(brand.Competitors), brand.CompetitorCount)
	}
	assert.Equal(t, 5, resp.Brands[0].CompetitorCount)
}
