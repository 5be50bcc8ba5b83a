package brands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	all := All()
	require.Len(t, all, 3)

	assert.Equal(t, []string{"manmatters", "bebodywise", "littlejoys"}, Keys())

	for _, brand := range all {
		assert.NotEmpty(t, brand.DisplayName)
		assert.NotEmpty(t, brand.TargetAudience)
		require.NotEmpty(t, brand.Competitors)
		for _, competitor := range brand.Competitors {
			assert.NotEmpty(t, competitor.Name)
			assert.NotEmpty(t, competitor.Justification)
		}
	}
}

func TestGet(t *testing.T) {
	brand := Get("manmatters")
	require.NotNil(t, brand)
	assert.Equal(t, "Man Matters", brand.DisplayName)
	assert.Len(t, brand.Competitors, 5)

	assert.Nil(t, Get("nosuchbrand"))
	assert.True(t, Exists("littlejoys"))
	assert.False(t, Exists(""))
}
