package insighting

import "github.com/mosaicwellness/ad-warroom-api/internal/domain"

// DetectUnderusedFormat flags the media format competitors lean on least.
// The least-used format only counts as a gap when the most-used one has more
// than double its volume; anything closer is just noise. Ties resolve in
// MediaTypes order.
func DetectUnderusedFormat(breakdown map[string]int) *string {
	if len(breakdown) == 0 {
		return nil
	}

	first := true
	var minFormat string
	var minCount, maxCount int

	for _, mt := range domain.MediaTypes {
		count := breakdown[string(mt)]
		if first {
			minFormat, minCount, maxCount = string(mt), count, count
			first = false
			continue
		}
		if count < minCount {
			minFormat, minCount = string(mt), count
		}
		if count > maxCount {
			maxCount = count
		}
	}

	if minCount*2 >= maxCount {
		return nil
	}

	return &minFormat
}
