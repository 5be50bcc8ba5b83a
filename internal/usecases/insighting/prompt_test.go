package insighting

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosaicwellness/ad-warroom-api/internal/brands"
	"github.com/mosaicwellness/ad-warroom-api/internal/domain"
)

func TestBuildSummary_IncludesStatsAndGap(t *testing.T) {
	brand := brands.Get("manmatters")
	require.NotNil(t, brand)

	summary := BuildSummary(brand, testStats(), []domain.AdCopy{
		{Title: "Flat 40% off", Body: "Use code GLOW40."},
	})

	assert.Contains(t, summary, "Man Matters")
	assert.Contains(t, summary, "19 total, 12 active")
	assert.Contains(t, summary, "Format gap: competitors barely use CAROUSEL")
	assert.Contains(t, summary, "- Flat 40% off | Use code GLOW40.")
}

// Competitor copy is often Devanagari; the cap must cut between runes, never
// inside one.
func TestBuildSummary_TruncatesCopyOnRuneBoundary(t *testing.T) {
	brand := brands.Get("manmatters")
	require.NotNil(t, brand)

	longBody := strings.Repeat("बालों का झड़ना रोकें। ", 30)
	require.Greater(t, utf8.RuneCountInString(longBody), maxSampleCopyLen)

	summary := BuildSummary(brand, testStats(), []domain.AdCopy{
		{Title: "ऑफर", Body: longBody},
	})

	assert.True(t, utf8.ValidString(summary))

	for _, line := range strings.Split(summary, "\n") {
		if !strings.HasPrefix(line, "- ") {
			continue
		}
		assert.True(t, strings.HasSuffix(line, "..."))
		assert.LessOrEqual(t, utf8.RuneCountInString(line), maxSampleCopyLen+len("- ")+len("..."))
	}
}

func TestBuildSummary_ShortCopyLeftIntact(t *testing.T) {
	brand := brands.Get("littlejoys")
	require.NotNil(t, brand)

	summary := BuildSummary(brand, testStats(), []domain.AdCopy{
		{Title: "Gummies kids love", Body: "No added sugar."},
	})

	assert.Contains(t, summary, "- Gummies kids love | No added sugar.\n")
	assert.NotContains(t, summary, "...")
}
