package seo

import (
	"encoding/json"
	"fmt"
)

// Priority ranks recommendations. The declaration order is the sort order:
// critical first, low last.
type Priority int

const (
	PriorityCritical Priority = iota
	PriorityHigh
	PriorityMedium
	PriorityLow
)

var priorityNames = [...]string{"critical", "high", "medium", "low"}

func (p Priority) String() string {
	if p < PriorityCritical || p > PriorityLow {
		return "unknown"
	}
	return priorityNames[p]
}

func (p Priority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Priority) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParsePriority(name)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePriority converts a priority name back to its enum value.
func ParsePriority(name string) (Priority, error) {
	for i, n := range priorityNames {
		if n == name {
			return Priority(i), nil
		}
	}
	return 0, fmt.Errorf("unknown priority %q", name)
}

// Category identifies which aspect of the page a recommendation targets.
type Category string

const (
	CategoryTitle               Category = "title"
	CategoryMetaDescription     Category = "meta_description"
	CategoryHeaders             Category = "headers"
	CategoryImages              Category = "images"
	CategorySchema              Category = "schema"
	CategoryKeyword             Category = "keyword"
	CategoryKeywordDistribution Category = "keyword_distribution"
	CategoryParagraphLength     Category = "paragraph_length"
	CategoryContentQuality      Category = "content_quality"
	CategoryTechnical           Category = "technical"
	CategorySecurity            Category = "security"
	CategoryPerformance         Category = "performance"
)

// Recommendation is one actionable finding about the page.
type Recommendation struct {
	Category Category `json:"type"`
	Priority Priority `json:"priority"`
	Message  string   `json:"message"`
}

// Grade is the letter grade derived from the health score.
type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeB     Grade = "B"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
	GradeF     Grade = "F"
)

// GradeForScore maps a 0-100 health score to its letter grade.
func GradeForScore(score int) Grade {
	switch {
	case score >= 90:
		return GradeAPlus
	case score >= 80:
		return GradeA
	case score >= 70:
		return GradeB
	case score >= 60:
		return GradeC
	case score >= 50:
		return GradeD
	default:
		return GradeF
	}
}

// AnalysisResult is the complete outcome of scoring one page.
type AnalysisResult struct {
	HealthScore       int              `json:"healthScore"`
	Grade             Grade            `json:"grade"`
	Recommendations   []Recommendation `json:"recommendations"`
	KeywordStats      KeywordStats     `json:"keywordStats"`
	VitalsScore       int              `json:"vitalsScore"`
	TrustScore        int              `json:"trustScore"`
	ThinContent       bool             `json:"thinContent"`
	HasCriticalErrors bool             `json:"hasCriticalErrors"`
}
