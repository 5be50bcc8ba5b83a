package insighting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mosaicwellness/ad-warroom-api/internal/domain"
)

const systemPrompt = `You are a senior competitive marketing analyst for a ` +
	`direct-to-consumer wellness company in India. You study competitor ` +
	`advertising patterns and turn them into sharp, actionable observations. ` +
	`Respond with JSON only, no prose and no markdown fences.`

const insightInstructions = `Return a JSON object with exactly these fields:
{
  "summary_one_liner": "one punchy sentence on the competitive picture",
  "insights": [
    {
      "type": "trend|gap|warning|opportunity",
      "urgency": "low|medium|high",
      "title": "short headline",
      "detail": "2-3 sentences of evidence-backed analysis",
      "recommended_action": "one concrete next step"
    }
  ]
}
Produce 5 to 7 insights grounded ONLY in the data above.`

// maxSampleCopyLen bounds each quoted ad copy, in runes, so the prompt stays
// small no matter what competitors write.
const maxSampleCopyLen = 280

// BuildSummary renders the aggregated evidence block shared by the insight
// and brief prompts. Map sections are sorted so the same stats always produce
// the same prompt.
func BuildSummary(brand *domain.Brand, stats *domain.Stats, copies []domain.AdCopy) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Brand: %s (%s)\n", brand.DisplayName, brand.Category)
	fmt.Fprintf(&b, "Target audience: %s\n", brand.TargetAudience)
	fmt.Fprintf(&b, "Tracked competitor ads: %d total, %d active, %d proven winners (30+ day runs)\n",
		stats.TotalAds, stats.ActiveAds, stats.TopPerformers)

	writeBreakdown(&b, "Media formats", stats.MediaBreakdown)
	writeBreakdown(&b, "Messaging themes", stats.ThemeBreakdown)
	writeBreakdown(&b, "Ads per competitor", stats.CompetitorBreakdown)

	if underused := DetectUnderusedFormat(stats.MediaBreakdown); underused != nil {
		fmt.Fprintf(&b, "Format gap: competitors barely use %s\n", *underused)
	}

	if len(copies) > 0 {
		b.WriteString("Recent competitor ad copy:\n")
		for _, c := range copies {
			text := strings.TrimSpace(c.Title + " | " + c.Body)
			// Cut on a rune boundary; competitor copy is not always ASCII.
			if runes := []rune(text); len(runes) > maxSampleCopyLen {
				text = string(runes[:maxSampleCopyLen]) + "..."
			}
			fmt.Fprintf(&b, "- %s\n", text)
		}
	}

	return b.String()
}

func writeBreakdown(b *strings.Builder, label string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, counts[k]))
	}

	fmt.Fprintf(b, "%s: %s\n", label, strings.Join(parts, ", "))
}
