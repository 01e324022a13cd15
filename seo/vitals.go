package seo

import "fmt"

// VitalsScore converts Core Web Vitals into a 0-100 sub-score. Each metric
// is scored independently and summed; an absent metric contributes nothing,
// so partial data yields a lower score by construction.
func VitalsScore(s *PageSignals) int {
	score := 0

	if s.LargestContentfulPaint != nil {
		switch lcp := *s.LargestContentfulPaint; {
		case lcp <= lcpGoodMs:
			score += 35
		case lcp <= lcpOkMs:
			score += 20
		default:
			score += 5
		}
	}

	if s.FirstInputDelay != nil {
		switch fid := *s.FirstInputDelay; {
		case fid <= fidGoodMs:
			score += 25
		case fid <= fidOkMs:
			score += 15
		default:
			score += 5
		}
	}

	if s.CumulativeLayoutShift != nil {
		switch cls := *s.CumulativeLayoutShift; {
		case cls <= clsGood:
			score += 40
		case cls <= clsOk:
			score += 25
		default:
			score += 10
		}
	}

	return score
}

// AnalyzeVitals emits performance recommendations for poor vitals and slow
// server response.
func AnalyzeVitals(s *PageSignals) []Recommendation {
	var issues []Recommendation

	if s.LargestContentfulPaint != nil {
		switch lcp := *s.LargestContentfulPaint; {
		case lcp > lcpOkMs:
			issues = append(issues, Recommendation{
				Category: CategoryPerformance,
				Priority: PriorityHigh,
				Message:  fmt.Sprintf("Largest Contentful Paint is %.0fms. Aim for under %dms.", lcp, lcpGoodMs),
			})
		case lcp > lcpGoodMs:
			issues = append(issues, Recommendation{
				Category: CategoryPerformance,
				Priority: PriorityMedium,
				Message:  fmt.Sprintf("Largest Contentful Paint is %.0fms. Good pages stay under %dms.", lcp, lcpGoodMs),
			})
		}
	}

	if s.FirstInputDelay != nil {
		switch fid := *s.FirstInputDelay; {
		case fid > fidOkMs:
			issues = append(issues, Recommendation{
				Category: CategoryPerformance,
				Priority: PriorityHigh,
				Message:  fmt.Sprintf("First Input Delay is %.0fms. Reduce main-thread work to get under %dms.", fid, fidGoodMs),
			})
		case fid > fidGoodMs:
			issues = append(issues, Recommendation{
				Category: CategoryPerformance,
				Priority: PriorityMedium,
				Message:  fmt.Sprintf("First Input Delay is %.0fms. Good pages stay under %dms.", fid, fidGoodMs),
			})
		}
	}

	if s.CumulativeLayoutShift != nil {
		switch cls := *s.CumulativeLayoutShift; {
		case cls > clsOk:
			issues = append(issues, Recommendation{
				Category: CategoryPerformance,
				Priority: PriorityHigh,
				Message:  fmt.Sprintf("Cumulative Layout Shift is %.2f. Reserve space for images and embeds to get under %.1f.", cls, clsGood),
			})
		case cls > clsGood:
			issues = append(issues, Recommendation{
				Category: CategoryPerformance,
				Priority: PriorityMedium,
				Message:  fmt.Sprintf("Cumulative Layout Shift is %.2f. Good pages stay under %.1f.", cls, clsGood),
			})
		}
	}

	if s.PageLoadTime != nil && *s.PageLoadTime > maxLoadTimeSeconds {
		issues = append(issues, Recommendation{
			Category: CategoryPerformance,
			Priority: PriorityMedium,
			Message:  fmt.Sprintf("Page load time is %.1fs. Aim for under %.0fs.", *s.PageLoadTime, maxLoadTimeSeconds),
		})
	}

	return issues
}
