package normalize

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Similarity scores how alike two strings are on a 0-100 scale.
// The metric is swappable: canonicalization and deduplication use it at a
// cutoff of 85, lenient requirement filtering at 70.
type Similarity func(a, b string) float64

// LevenshteinSimilarity is the default metric: a case-insensitive normalized
// edit-distance ratio.
func LevenshteinSimilarity(a, b string) float64 {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	return strutil.Similarity(a, b, lev) * 100
}
