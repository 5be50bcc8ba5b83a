package fetching

import "github.com/pkg/errors"

// ErrUnknownBrand is returned when a fetch targets a brand key that is not
// in the registry.
var ErrUnknownBrand = errors.New("unknown brand key")
