package seo

import (
	"fmt"
	"slices"
	"strings"
)

// TechnicalResult carries the technical issues plus the count of passed
// infrastructure checks (robots.txt, sitemap, load time) used for scoring.
type TechnicalResult struct {
	Issues       []Recommendation
	ChecksPassed int // out of technicalCheckCount
}

const technicalCheckCount = 3

// AnalyzeTechnical evaluates schema markup, canonical, mobile friendliness,
// HTTPS and the robots/sitemap/load-time infrastructure checks.
func AnalyzeTechnical(s *PageSignals) TechnicalResult {
	var r TechnicalResult

	if !s.HasSchemaMarkup {
		r.Issues = append(r.Issues, Recommendation{
			Category: CategorySchema,
			Priority: PriorityHigh,
			Message:  "No schema markup detected. Implement structured data (JSON-LD).",
		})
	} else {
		if len(s.SchemaTypes) == 0 {
			r.Issues = append(r.Issues, Recommendation{
				Category: CategorySchema,
				Priority: PriorityMedium,
				Message:  "Schema markup detected but its type could not be determined.",
			})
		}
		if n := len(s.SchemaErrors); n > 0 {
			r.Issues = append(r.Issues, Recommendation{
				Category: CategorySchema,
				Priority: PriorityHigh,
				Message:  fmt.Sprintf("Schema markup has %d validation error(s). Fix them to stay eligible for rich results.", n),
			})
		}
	}

	if s.WordCount > longFormWords && !hasSchemaType(s.SchemaTypes, "Article") {
		r.Issues = append(r.Issues, Recommendation{
			Category: CategorySchema,
			Priority: PriorityLow,
			Message:  "Consider adding Article schema for long-form content.",
		})
	}
	if !s.BreadcrumbSchemaPresent && !hasSchemaType(s.SchemaTypes, "BreadcrumbList") {
		r.Issues = append(r.Issues, Recommendation{
			Category: CategorySchema,
			Priority: PriorityLow,
			Message:  "Consider adding BreadcrumbList schema to improve navigation in search results.",
		})
	}

	if !s.HasCanonical {
		r.Issues = append(r.Issues, Recommendation{
			Category: CategoryTechnical,
			Priority: PriorityMedium,
			Message:  "Missing canonical tag. Add one to avoid duplicate-content ambiguity.",
		})
	}
	if !s.MobileFriendly {
		r.Issues = append(r.Issues, Recommendation{
			Category: CategoryTechnical,
			Priority: PriorityHigh,
			Message:  "Page is not mobile friendly. Add a responsive viewport meta tag.",
		})
	}
	if !s.HTTPS {
		r.Issues = append(r.Issues, Recommendation{
			Category: CategorySecurity,
			Priority: PriorityCritical,
			Message:  "Page is not served over HTTPS.",
		})
	}

	if s.RobotsTxtStatus {
		r.ChecksPassed++
	}
	if s.SitemapStatus {
		r.ChecksPassed++
	}
	if s.PageLoadTime != nil && *s.PageLoadTime >= 0 && *s.PageLoadTime <= maxLoadTimeSeconds {
		r.ChecksPassed++
	}

	return r
}

func hasSchemaType(types []string, want string) bool {
	return slices.ContainsFunc(types, func(t string) bool {
		return strings.EqualFold(t, want)
	})
}
