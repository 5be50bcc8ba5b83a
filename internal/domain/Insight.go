package domain

type InsightType string

const (
	InsightTypeTrend       InsightType = "trend"
	InsightTypeGap         InsightType = "gap"
	InsightTypeWarning     InsightType = "warning"
	InsightTypeOpportunity InsightType = "opportunity"
)

func (t InsightType) Valid() bool {
	switch t {
	case InsightTypeTrend, InsightTypeGap, InsightTypeWarning, InsightTypeOpportunity:
		return true
	}
	return false
}

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

func (u Urgency) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}

// Insight is an ephemeral, model-generated observation. Insights are
// recomputed on every request and never persisted on their own.
type Insight struct {
	Type              InsightType `json:"type"`
	Urgency           Urgency     `json:"urgency"`
	Title             string      `json:"title"`
	Detail            string      `json:"detail"`
	RecommendedAction *string     `json:"recommended_action,omitempty"`
}

// Analysis is the structured result of one generation call for one brand,
// or the deterministic fallback when the call fails.
type Analysis struct {
	SummaryOneLiner string    `json:"summary_one_liner"`
	UnderusedFormat *string   `json:"underused_format,omitempty"`
	Insights        []Insight `json:"insights"`
}

type BrandInsights struct {
	Brand    string   `json:"brand"`
	AdCount  int      `json:"ad_count"`
	Analysis Analysis `json:"analysis"`
}
