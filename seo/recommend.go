package seo

import (
	"fmt"
	"sort"
)

// buildRecommendations aggregates every analyzer issue plus the standalone
// title, meta description and keyword checks, then sorts by priority. The
// sort is stable, so ties keep detection order.
func buildRecommendations(s *PageSignals, ks KeywordStats, st StructureResult, tech TechnicalResult) []Recommendation {
	var recs []Recommendation

	switch {
	case s.TitleLength == 0:
		recs = append(recs, Recommendation{
			Category: CategoryTitle,
			Priority: PriorityHigh,
			Message:  fmt.Sprintf("Missing title tag. Add one of %d-%d characters.", titleIdealMin, titleIdealMax),
		})
	case s.TitleLength < titleOkMin:
		recs = append(recs, Recommendation{
			Category: CategoryTitle,
			Priority: PriorityMedium,
			Message:  fmt.Sprintf("Title is too short (%d chars). Aim for %d-%d characters.", s.TitleLength, titleIdealMin, titleIdealMax),
		})
	case s.TitleLength > titleOkMax:
		recs = append(recs, Recommendation{
			Category: CategoryTitle,
			Priority: PriorityMedium,
			Message:  fmt.Sprintf("Title is too long (%d chars). Aim for %d-%d characters.", s.TitleLength, titleIdealMin, titleIdealMax),
		})
	}

	switch {
	case s.MetaDescriptionLength == 0:
		recs = append(recs, Recommendation{
			Category: CategoryMetaDescription,
			Priority: PriorityHigh,
			Message:  fmt.Sprintf("Missing meta description. Add one of %d-%d characters.", metaIdealMin, metaIdealMax),
		})
	case s.MetaDescriptionLength < metaOkMin:
		recs = append(recs, Recommendation{
			Category: CategoryMetaDescription,
			Priority: PriorityMedium,
			Message:  fmt.Sprintf("Meta description is too short (%d chars). Aim for %d-%d characters.", s.MetaDescriptionLength, metaIdealMin, metaIdealMax),
		})
	case s.MetaDescriptionLength > metaOkMax:
		recs = append(recs, Recommendation{
			Category: CategoryMetaDescription,
			Priority: PriorityMedium,
			Message:  fmt.Sprintf("Meta description is too long (%d chars). Aim for %d-%d characters.", s.MetaDescriptionLength, metaIdealMin, metaIdealMax),
		})
	}

	if s.Keyword != "" {
		if s.KeywordCount == 0 {
			recs = append(recs, Recommendation{
				Category: CategoryKeyword,
				Priority: PriorityHigh,
				Message:  fmt.Sprintf("Keyword %q was not found on the page.", s.Keyword),
			})
		} else {
			if s.KeywordCount < ks.RecommendedCount {
				recs = append(recs, Recommendation{
					Category: CategoryKeyword,
					Priority: PriorityMedium,
					Message: fmt.Sprintf("Keyword %q appears %d times. Aim for about %d occurrences.",
						s.Keyword, s.KeywordCount, ks.RecommendedCount),
				})
			}
			if ks.Density < densityRecLow {
				recs = append(recs, Recommendation{
					Category: CategoryKeyword,
					Priority: PriorityHigh,
					Message: fmt.Sprintf("Keyword density is too low (%.2f%%). Aim for %.1f-%.1f%%.",
						ks.Density, densityIdealMin, densityIdealMax),
				})
			} else if ks.Density > densityRecHigh {
				recs = append(recs, Recommendation{
					Category: CategoryKeyword,
					Priority: PriorityHigh,
					Message: fmt.Sprintf("Keyword density is too high (%.2f%%). Risk of keyword stuffing; aim for %.1f-%.1f%%.",
						ks.Density, densityIdealMin, densityIdealMax),
				})
			}
		}
	}

	if s.ImagesCount > 0 && s.MissingAltImagesCount > 0 {
		recs = append(recs, Recommendation{
			Category: CategoryImages,
			Priority: PriorityMedium,
			Message:  fmt.Sprintf("%d of %d images are missing alt text.", s.MissingAltImagesCount, s.ImagesCount),
		})
	}

	recs = append(recs, st.Issues...)
	recs = append(recs, tech.Issues...)
	recs = append(recs, AnalyzeVitals(s)...)
	recs = append(recs, AnalyzeContentQuality(s)...)

	SortByPriority(recs)
	return recs
}

// SortByPriority orders recommendations critical first, preserving the
// relative order of equal priorities.
func SortByPriority(recs []Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority < recs[j].Priority
	})
}
