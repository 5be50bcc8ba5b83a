// Package insighting turns stored ad aggregates into model-generated insight
// cards. Generation is best effort: any upstream failure degrades to a
// deterministic local analysis instead of an error, so the dashboard always
// renders.
package insighting

import (
	"context"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/mosaicwellness/ad-warroom-api/infrastructure/integrator/textgen"
	"github.com/mosaicwellness/ad-warroom-api/infrastructure/repository"
	"github.com/mosaicwellness/ad-warroom-api/internal/brands"
	"github.com/mosaicwellness/ad-warroom-api/internal/config"
	"github.com/mosaicwellness/ad-warroom-api/internal/domain"
	"github.com/mosaicwellness/ad-warroom-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// StatsProvider supplies the aggregates an analysis is grounded on.
type StatsProvider interface {
	ForBrand(brandKey string) (*domain.Stats, error)
}

type Analyzer interface {
	AnalyzeBrand(ctx context.Context, brandKey string) (*domain.BrandInsights, error)
	AnalyzeAll(ctx context.Context) (map[string]*domain.BrandInsights, error)
}

type Service struct {
	cfg       *config.Config
	stats     StatsProvider
	adRepo    repository.AdRepository
	generator textgen.Generator
}

func NewService(cfg *config.Config, stats StatsProvider, adRepo repository.AdRepository, generator textgen.Generator) *Service {
	return &Service{
		cfg:       cfg,
		stats:     stats,
		adRepo:    adRepo,
		generator: generator,
	}
}

// AnalyzeBrand produces insight cards for one brand. Only data access errors
// propagate; generation and parsing failures fall back to a local analysis.
func (s *Service) AnalyzeBrand(ctx context.Context, brandKey string) (*domain.BrandInsights, error) {
	brand := brands.Get(brandKey)
	if brand == nil {
		// Unknown keys read as an empty scope rather than an error.
		return &domain.BrandInsights{Brand: brandKey, Analysis: domain.Analysis{Insights: []domain.Insight{}}}, nil
	}

	brandStats, err := s.stats.ForBrand(brandKey)
	if err != nil {
		return nil, err
	}

	logger := log.ForContext(ctx).WithField("brand_key", brandKey)

	copies, err := s.adRepo.SampleCopies(brandKey, s.cfg.Fetch.InsightSampleAds)
	if err != nil {
		logger.WithError(err).Warn("failed to load sample copies, prompting without them")
		copies = nil
	}

	analysis := s.generate(ctx, brand, brandStats, copies, logger)

	return &domain.BrandInsights{
		Brand:    brand.DisplayName,
		AdCount:  brandStats.TotalAds,
		Analysis: analysis,
	}, nil
}

// AnalyzeAll runs AnalyzeBrand for every registered brand, keyed by brand key.
func (s *Service) AnalyzeAll(ctx context.Context) (map[string]*domain.BrandInsights, error) {
	results := make(map[string]*domain.BrandInsights, len(brands.Keys()))
	for _, key := range brands.Keys() {
		insights, err := s.AnalyzeBrand(ctx, key)
		if err != nil {
			return nil, err
		}
		results[key] = insights
	}
	return results, nil
}

func (s *Service) generate(ctx context.Context, brand *domain.Brand, brandStats *domain.Stats, copies []domain.AdCopy, logger log.Logger) domain.Analysis {
	underused := DetectUnderusedFormat(brandStats.MediaBreakdown)

	prompt := BuildSummary(brand, brandStats, copies) + "\n" + insightInstructions

	raw, err := s.generator.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		logger.WithError(err).Warn("insight generation failed, using local fallback")
		return fallbackAnalysis(brand, brandStats, underused)
	}

	analysis, err := parseAnalysis(raw)
	if err != nil {
		logger.WithError(err).Warn("could not parse generated insights, using local fallback")
		return fallbackAnalysis(brand, brandStats, underused)
	}

	// The format gap is computed locally; the model does not get a vote.
	analysis.UnderusedFormat = underused

	if log.IsDevelopment() {
		if pretty, err := json.MarshalIndent(analysis, "", "  "); err == nil {
			logger.Debug("generated analysis: ", string(pretty))
		}
	}

	return *analysis
}

// parseAnalysis decodes the model response, tolerating markdown fences, and
// drops any insight with an unknown type or urgency.
func parseAnalysis(raw string) (*domain.Analysis, error) {
	cleaned := stripFences(raw)

	var analysis domain.Analysis
	if err := json.UnmarshalFromString(cleaned, &analysis); err != nil {
		return nil, fmt.Errorf("invalid analysis payload: %w", err)
	}

	valid := make([]domain.Insight, 0, len(analysis.Insights))
	for _, insight := range analysis.Insights {
		if insight.Type.Valid() && insight.Urgency.Valid() {
			valid = append(valid, insight)
		}
	}
	analysis.Insights = valid

	return &analysis, nil
}

// stripFences removes a surrounding ```json ... ``` block if the model added
// one despite instructions.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}

	return strings.TrimSpace(s)
}

// fallbackAnalysis is the degraded result when generation is unavailable:
// no cards, locally detected format gap, count-based one-liner.
func fallbackAnalysis(brand *domain.Brand, brandStats *domain.Stats, underused *string) domain.Analysis {
	return domain.Analysis{
		SummaryOneLiner: fmt.Sprintf("Tracking %d competitor ads (%d active) for %s.",
			brandStats.TotalAds, brandStats.ActiveAds, brand.DisplayName),
		UnderusedFormat: underused,
		Insights:        []domain.Insight{},
	}
}
