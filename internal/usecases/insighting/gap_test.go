package insighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectUnderusedFormat(t *testing.T) {
	tests := []struct {
		name      string
		breakdown map[string]int
		expected  *string
	}{
		{
			name:      "clear carousel gap",
			breakdown: map[string]int{"IMAGE": 10, "VIDEO": 8, "CAROUSEL": 1},
			expected:  ptr("CAROUSEL"),
		},
		{
			name:      "no gap when counts are close",
			breakdown: map[string]int{"IMAGE": 10, "VIDEO": 8, "CAROUSEL": 6},
			expected:  nil,
		},
		{
			name:      "missing format counts as zero",
			breakdown: map[string]int{"IMAGE": 10, "VIDEO": 8},
			expected:  ptr("CAROUSEL"),
		},
		{
			name:      "boundary: exactly half is not a gap",
			breakdown: map[string]int{"IMAGE": 10, "VIDEO": 5, "CAROUSEL": 8},
			expected:  nil,
		},
		{
			name:      "just under half is a gap",
			breakdown: map[string]int{"IMAGE": 11, "VIDEO": 5, "CAROUSEL": 8},
			expected:  ptr("VIDEO"),
		},
		{
			name:      "tie resolves in preference order",
			breakdown: map[string]int{"IMAGE": 1, "VIDEO": 1, "CAROUSEL": 10},
			expected:  ptr("IMAGE"),
		},
		{
			name:      "empty breakdown",
			breakdown: map[string]int{},
			expected:  nil,
		},
		{
			name:      "all zero",
			breakdown: map[string]int{"IMAGE": 0, "VIDEO": 0, "CAROUSEL": 0},
			expected:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectUnderusedFormat(tt.breakdown)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.expected, *got)
		})
	}
}

func ptr(s string) *string {
	return &s
}
