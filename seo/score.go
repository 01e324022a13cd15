package seo

import (
	"math"
	"time"
)

// Per-component weights. Full marks on every axis would exceed 100; the
// final clamp enforces the 0-100 bound, so a page does not need to be
// perfect everywhere to reach a top score.
const (
	weightTitle               = 8
	weightMetaDescription     = 4
	weightH1                  = 4
	weightHeadersStructure    = 4
	weightHeadersUnique       = 3
	weightImages              = 4
	weightKeywords            = 12
	weightKeywordDistribution = 8
	weightParagraphLength     = 6
	weightContentLength       = 8
	weightCanonical           = 3
	weightSchema              = 4
	weightHTTPS               = 3
	weightMobileFriendly      = 2
	weightLinks               = 3
	weightCoreVitals          = 15
	weightEEAT                = 10
	weightTechnicalSEO        = 6
	weightContentFreshness    = 3
)

func calculateHealthScore(s *PageSignals, ks KeywordStats, st StructureResult, tech TechnicalResult, vitals, trust int, now time.Time) int {
	score := 0.0

	switch {
	case s.TitleLength >= titleIdealMin && s.TitleLength <= titleIdealMax:
		score += weightTitle
	case s.TitleLength >= titleOkMin && s.TitleLength <= titleOkMax:
		score += weightTitle * 0.7
	case s.TitleLength > 0:
		score += weightTitle * 0.3
	}

	switch {
	case s.MetaDescriptionLength >= metaIdealMin && s.MetaDescriptionLength <= metaIdealMax:
		score += weightMetaDescription
	case s.MetaDescriptionLength >= metaOkMin && s.MetaDescriptionLength <= metaOkMax:
		score += weightMetaDescription * 0.7
	}

	if s.H1Count == 1 {
		score += weightH1
	}

	switch {
	case s.H2Count >= 2 && s.H3Count >= 1:
		score += weightHeadersStructure
	case s.H2Count >= 1:
		score += weightHeadersStructure * 0.5
	}

	if !st.H1CollidesH2 {
		score += weightHeadersUnique
	}

	if s.ImagesCount > 0 {
		missing := min(s.MissingAltImagesCount, s.ImagesCount)
		score += weightImages * (1 - float64(missing)/float64(s.ImagesCount))
	}

	switch {
	case ks.Density >= densityIdealMin && ks.Density <= densityIdealMax:
		score += weightKeywords
	case ks.Density >= densityOkMin && ks.Density <= densityOkMax:
		score += weightKeywords * 0.7
	case ks.Density > 0:
		score += weightKeywords * 0.3
	}

	if st.CoverageKnown {
		if st.KeywordCoverage >= coverageMin && st.KeywordCoverage <= coverageMax {
			score += weightKeywordDistribution
		} else {
			score += weightKeywordDistribution * 0.5
		}
	}

	if len(s.Paragraphs) > 0 {
		score += weightParagraphLength * (1 - st.LongParagraphRatio)
	}

	switch {
	case s.WordCount >= comprehensiveWords:
		score += weightContentLength
	case s.WordCount >= thinContentWords:
		score += weightContentLength * 0.7
	case s.WordCount >= minimalWords:
		score += weightContentLength * 0.3
	}

	if s.HasCanonical {
		score += weightCanonical
	}
	if s.HasSchemaMarkup {
		score += weightSchema
	}
	if s.HTTPS {
		score += weightHTTPS
	}
	if s.MobileFriendly {
		score += weightMobileFriendly
	}

	switch {
	case s.InternalLinksCount > 0 && s.ExternalLinksCount > 0:
		score += weightLinks
	case s.InternalLinksCount > 0 || s.ExternalLinksCount > 0:
		score += weightLinks * 0.5
	}

	score += weightCoreVitals * float64(vitals) / 100
	score += weightEEAT * float64(trust) / 100
	score += weightTechnicalSEO * float64(tech.ChecksPassed) / technicalCheckCount

	if s.ContentFreshness != nil {
		switch days := daysBetween(*s.ContentFreshness, now); {
		case days <= freshDays:
			score += weightContentFreshness
		case days <= recentDays:
			score += weightContentFreshness * 0.7
		case days <= agingDays:
			score += weightContentFreshness * 0.3
		}
	}

	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}
	return int(math.Floor(score))
}
