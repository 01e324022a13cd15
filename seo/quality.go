package seo

import "fmt"

// AnalyzeContentQuality flags thin content, duplicate content and low
// readability.
func AnalyzeContentQuality(s *PageSignals) []Recommendation {
	var issues []Recommendation

	switch {
	case s.WordCount < thinContentWords:
		issues = append(issues, Recommendation{
			Category: CategoryContentQuality,
			Priority: PriorityHigh,
			Message:  fmt.Sprintf("Content is too thin (%d words). Aim for at least %d.", s.WordCount, thinContentWords),
		})
	case s.WordCount < comprehensiveWords:
		issues = append(issues, Recommendation{
			Category: CategoryContentQuality,
			Priority: PriorityLow,
			Message: fmt.Sprintf("Content could be more comprehensive (%d words). Pages above %d words tend to rank better.",
				s.WordCount, comprehensiveWords),
		})
	}

	if s.DuplicateContent {
		issues = append(issues, Recommendation{
			Category: CategoryContentQuality,
			Priority: PriorityHigh,
			Message:  "Duplicate content detected. Rewrite or canonicalize the duplicated sections.",
		})
	}

	if s.ContentReadabilityScore != nil {
		switch score := *s.ContentReadabilityScore; {
		case score < readabilityVeryHard:
			issues = append(issues, Recommendation{
				Category: CategoryContentQuality,
				Priority: PriorityHigh,
				Message:  fmt.Sprintf("Content is very difficult to read (readability score %.0f). Simplify sentences and vocabulary.", score),
			})
		case score < readabilityHard:
			issues = append(issues, Recommendation{
				Category: CategoryContentQuality,
				Priority: PriorityMedium,
				Message:  fmt.Sprintf("Content is difficult to read (readability score %.0f).", score),
			})
		}
	}

	// Externally flagged thinness despite an adequate word count. Below the
	// word threshold the too-thin issue above already covers it.
	if s.ThinContent && s.WordCount >= thinContentWords {
		issues = append(issues, Recommendation{
			Category: CategoryContentQuality,
			Priority: PriorityHigh,
			Message:  "Page was flagged as thin content.",
		})
	}

	return issues
}
