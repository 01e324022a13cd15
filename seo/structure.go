package seo

import (
	"fmt"
	"strings"
)

// StructureResult carries both the heading/paragraph issues and the derived
// ratios the scoring engine needs, so a single pass feeds both subsystems.
type StructureResult struct {
	Issues             []Recommendation
	LongParagraphRatio float64
	KeywordCoverage    float64
	CoverageKnown      bool
	H1CollidesH2       bool
}

// AnalyzeStructure evaluates heading correctness and paragraph health.
func AnalyzeStructure(s *PageSignals) StructureResult {
	var r StructureResult

	switch {
	case s.H1Count == 0:
		r.Issues = append(r.Issues, Recommendation{
			Category: CategoryHeaders,
			Priority: PriorityCritical,
			Message:  "Missing H1 heading. Every page needs exactly one H1.",
		})
	case s.H1Count > 1:
		r.Issues = append(r.Issues, Recommendation{
			Category: CategoryHeaders,
			Priority: PriorityHigh,
			Message:  fmt.Sprintf("Found %d H1 headings. Use a single H1 per page.", s.H1Count),
		})
	}

	if s.H2Count == 0 && s.WordCount > thinContentWords {
		r.Issues = append(r.Issues, Recommendation{
			Category: CategoryHeaders,
			Priority: PriorityMedium,
			Message:  "No H2 headings found. Break long content into sections with H2 headings.",
		})
	}

	h1 := strings.ToLower(strings.TrimSpace(s.H1Text))
	if h1 != "" {
		for i, h2 := range s.H2Texts {
			if strings.ToLower(strings.TrimSpace(h2)) == h1 {
				r.H1CollidesH2 = true
				r.Issues = append(r.Issues, Recommendation{
					Category: CategoryHeaders,
					Priority: PriorityHigh,
					Message:  fmt.Sprintf("H1 and H2 #%d have identical text: %q.", i+1, strings.TrimSpace(h2)),
				})
			}
		}
	}

	seen := make(map[string]bool, len(s.H2Texts))
	for _, h2 := range s.H2Texts {
		key := strings.ToLower(strings.TrimSpace(h2))
		if key == "" {
			continue
		}
		if seen[key] {
			r.Issues = append(r.Issues, Recommendation{
				Category: CategoryHeaders,
				Priority: PriorityMedium,
				Message:  fmt.Sprintf("Duplicate H2 heading: %q. Each section heading should be unique.", strings.TrimSpace(h2)),
			})
		}
		seen[key] = true
	}

	r.analyzeParagraphs(s)
	return r
}

func (r *StructureResult) analyzeParagraphs(s *PageSignals) {
	long := 0
	for i, p := range s.Paragraphs {
		if p.Length > paragraphLongLen {
			long++
		}
		if p.Length > paragraphVeryLongLen {
			r.Issues = append(r.Issues, Recommendation{
				Category: CategoryParagraphLength,
				Priority: PriorityHigh,
				Message: fmt.Sprintf("Paragraph %d is very long (%d chars). Keep paragraphs under %d characters.",
					i+1, p.Length, paragraphVeryLongLen),
			})
		}
	}

	total := len(s.Paragraphs)
	if total == 0 {
		return
	}

	r.LongParagraphRatio = float64(long) / float64(total)
	if r.LongParagraphRatio > longParagraphMaxShare {
		r.Issues = append(r.Issues, Recommendation{
			Category: CategoryParagraphLength,
			Priority: PriorityMedium,
			Message: fmt.Sprintf("%d of %d paragraphs exceed %d characters. Shorter paragraphs improve readability.",
				long, total, paragraphLongLen),
		})
	}

	if s.Keyword == "" {
		return
	}

	keyword := strings.ToLower(s.Keyword)
	with := 0
	for _, p := range s.Paragraphs {
		if strings.Contains(strings.ToLower(p.Text), keyword) {
			with++
		}
	}
	r.KeywordCoverage = float64(with) / float64(total)
	r.CoverageKnown = true

	if r.KeywordCoverage < coverageMin {
		r.Issues = append(r.Issues, Recommendation{
			Category: CategoryKeywordDistribution,
			Priority: PriorityMedium,
			Message: fmt.Sprintf("Keyword %q appears in only %d of %d paragraphs. Distribute it more evenly.",
				s.Keyword, with, total),
		})
	} else if r.KeywordCoverage > coverageMax {
		r.Issues = append(r.Issues, Recommendation{
			Category: CategoryKeywordDistribution,
			Priority: PriorityHigh,
			Message: fmt.Sprintf("Keyword %q appears in %d of %d paragraphs. This reads as keyword stuffing.",
				s.Keyword, with, total),
		})
	}
}
