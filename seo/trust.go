package seo

import "time"

// TrustScore converts E-E-A-T signals into a 0-100 sub-score. Each signal
// contributes independently up to its cap; the sum is clamped to 100.
// Freshness is judged against the caller-supplied now so repeated runs on
// the same input stay deterministic.
func TrustScore(s *PageSignals, now time.Time) int {
	score := 0

	if s.AuthorCredentials {
		score += 25
	}
	if s.AuthorBylines {
		score += 20
	}
	if s.CitationSources > 0 {
		score += min(25, s.CitationSources*5)
	}
	if s.ContactInfoPresent {
		score += 15
	}
	if s.LastUpdated != nil {
		switch days := daysBetween(*s.LastUpdated, now); {
		case days <= updatedFreshDays:
			score += 15
		case days <= updatedRecentDays:
			score += 10
		case days <= updatedAgingDays:
			score += 5
		}
	}

	return min(score, 100)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
