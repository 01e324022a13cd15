// Package seo scores a single page's on-page and technical SEO quality
// from extracted page signals and produces a prioritized list of
// recommendations. Everything here is a pure function of its input: no
// I/O, no retained state, safe to call concurrently.
package seo

import "time"

// Analyze turns PageSignals into an AnalysisResult. The caller supplies now
// so freshness comparisons are deterministic; two calls with identical
// inputs yield identical results. Any internal panic is converted into a
// zero-score fallback result rather than propagating, so callers always
// receive a usable value.
func Analyze(signals PageSignals, now time.Time) (result AnalysisResult) {
	defer func() {
		if r := recover(); r != nil {
			result = fallbackResult(&signals)
		}
	}()

	keyword := AnalyzeKeyword(&signals)
	structure := AnalyzeStructure(&signals)
	technical := AnalyzeTechnical(&signals)
	vitals := VitalsScore(&signals)
	trust := TrustScore(&signals, now)

	recs := buildRecommendations(&signals, keyword, structure, technical)
	score := calculateHealthScore(&signals, keyword, structure, technical, vitals, trust, now)

	// The direct HTTPS check is partially redundant with the critical
	// recommendation the technical analyzer emits, but both are kept for
	// compatibility.
	critical := !signals.HTTPS
	for _, r := range recs {
		if r.Priority == PriorityCritical {
			critical = true
			break
		}
	}

	return AnalysisResult{
		HealthScore:       score,
		Grade:             GradeForScore(score),
		Recommendations:   recs,
		KeywordStats:      keyword,
		VitalsScore:       vitals,
		TrustScore:        trust,
		ThinContent:       signals.WordCount < thinContentWords || signals.ThinContent,
		HasCriticalErrors: critical,
	}
}

func fallbackResult(s *PageSignals) AnalysisResult {
	return AnalysisResult{
		HealthScore: 0,
		Grade:       GradeF,
		Recommendations: []Recommendation{{
			Category: CategoryTechnical,
			Priority: PriorityCritical,
			Message:  "Analysis calculation error. The page could not be scored.",
		}},
		ThinContent:       s.WordCount < thinContentWords,
		HasCriticalErrors: true,
	}
}
