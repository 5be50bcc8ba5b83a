package utils

import (
	"fmt"
	"strconv"
)

// ParseOptionalInt parses an optional integer query parameter. An empty value
// yields the fallback.
func ParseOptionalInt(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value %q", raw)
	}

	return v, nil
}

// ParseOptionalBool parses an optional boolean query parameter. An empty value
// yields nil (no filter).
func ParseOptionalBool(raw string) (*bool, error) {
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid boolean value %q", raw)
	}

	return &v, nil
}
