package seo

import "math"

// KeywordStats holds the derived keyword metrics for a page.
type KeywordStats struct {
	Density          float64 `json:"density"`
	RecommendedCount int     `json:"recommendedCount"`
}

// AnalyzeKeyword derives keyword density and the recommended number of
// keyword occurrences for the page's length. With no keyword or an empty
// page both values are zero.
func AnalyzeKeyword(s *PageSignals) KeywordStats {
	if s.Keyword == "" || s.WordCount == 0 {
		return KeywordStats{}
	}

	density := float64(s.KeywordCount) / float64(s.WordCount) * 100
	density = math.Round(density*100) / 100
	if density < 0 {
		density = 0
	} else if density > 100 {
		density = 100
	}

	var recommended int
	switch {
	case s.WordCount <= 300:
		recommended = 1
	case s.WordCount <= 800:
		recommended = max(2, int(math.Round(float64(s.WordCount)/250)))
	default:
		recommended = max(3, int(math.Round(float64(s.WordCount)/300)))
	}

	return KeywordStats{Density: density, RecommendedCount: recommended}
}
