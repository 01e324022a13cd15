package seo

import (
	"strings"
	"testing"
)

func TestAnalyzeTechnicalSchema(t *testing.T) {
	t.Run("missing schema markup", func(t *testing.T) {
		r := AnalyzeTechnical(&PageSignals{HTTPS: true, MobileFriendly: true, HasCanonical: true})
		if countIssues(r.Issues, CategorySchema, PriorityHigh) != 1 {
			t.Errorf("want one high schema issue, got %+v", r.Issues)
		}
	})

	t.Run("schema with unknown type", func(t *testing.T) {
		r := AnalyzeTechnical(&PageSignals{HasSchemaMarkup: true, HTTPS: true, MobileFriendly: true, HasCanonical: true})
		if countIssues(r.Issues, CategorySchema, PriorityMedium) != 1 {
			t.Errorf("want one medium schema issue, got %+v", r.Issues)
		}
	})

	t.Run("schema errors include count", func(t *testing.T) {
		r := AnalyzeTechnical(&PageSignals{
			HasSchemaMarkup: true,
			SchemaTypes:     []string{"Article"},
			SchemaErrors:    []string{"missing author", "bad date"},
			HTTPS:           true, MobileFriendly: true, HasCanonical: true,
		})
		if countIssues(r.Issues, CategorySchema, PriorityHigh) != 1 {
			t.Fatalf("want one high schema-error issue, got %+v", r.Issues)
		}
		for _, iss := range r.Issues {
			if iss.Priority == PriorityHigh && !strings.Contains(iss.Message, "2") {
				t.Errorf("message should include the error count: %q", iss.Message)
			}
		}
	})

	t.Run("article suggested for long-form content", func(t *testing.T) {
		r := AnalyzeTechnical(&PageSignals{
			WordCount:       800,
			HasSchemaMarkup: true,
			SchemaTypes:     []string{"WebPage"},
			HTTPS:           true, MobileFriendly: true, HasCanonical: true,
		})
		found := false
		for _, iss := range r.Issues {
			if iss.Priority == PriorityLow && strings.Contains(iss.Message, "Article") {
				found = true
			}
		}
		if !found {
			t.Errorf("want a low-priority Article suggestion, got %+v", r.Issues)
		}
	})

	t.Run("no article suggestion when present", func(t *testing.T) {
		r := AnalyzeTechnical(&PageSignals{
			WordCount:       800,
			HasSchemaMarkup: true,
			SchemaTypes:     []string{"article"},
			HTTPS:           true, MobileFriendly: true, HasCanonical: true,
		})
		for _, iss := range r.Issues {
			if strings.Contains(iss.Message, "Article schema") {
				t.Errorf("Article already present (case-insensitive), got %+v", iss)
			}
		}
	})

	t.Run("breadcrumb suggested when absent", func(t *testing.T) {
		r := AnalyzeTechnical(&PageSignals{
			HasSchemaMarkup: true,
			SchemaTypes:     []string{"Article"},
			HTTPS:           true, MobileFriendly: true, HasCanonical: true,
		})
		found := false
		for _, iss := range r.Issues {
			if iss.Priority == PriorityLow && strings.Contains(iss.Message, "BreadcrumbList") {
				found = true
			}
		}
		if !found {
			t.Errorf("want a BreadcrumbList suggestion, got %+v", r.Issues)
		}
	})
}

func TestAnalyzeTechnicalBasics(t *testing.T) {
	r := AnalyzeTechnical(&PageSignals{
		HasSchemaMarkup:         true,
		SchemaTypes:             []string{"Article"},
		BreadcrumbSchemaPresent: true,
	})

	if countIssues(r.Issues, CategoryTechnical, PriorityMedium) != 1 {
		t.Errorf("want one canonical issue, got %+v", r.Issues)
	}
	if countIssues(r.Issues, CategoryTechnical, PriorityHigh) != 1 {
		t.Errorf("want one mobile issue, got %+v", r.Issues)
	}
	if countIssues(r.Issues, CategorySecurity, PriorityCritical) != 1 {
		t.Errorf("want one https issue, got %+v", r.Issues)
	}
}

func TestAnalyzeTechnicalChecksPassed(t *testing.T) {
	fast := 1.2
	slow := 4.5
	negative := -1.0

	tests := []struct {
		name    string
		signals PageSignals
		want    int
	}{
		{"none", PageSignals{}, 0},
		{"all three", PageSignals{RobotsTxtStatus: true, SitemapStatus: true, PageLoadTime: &fast}, 3},
		{"slow load time fails", PageSignals{RobotsTxtStatus: true, SitemapStatus: true, PageLoadTime: &slow}, 2},
		{"missing load time fails", PageSignals{RobotsTxtStatus: true, SitemapStatus: true}, 2},
		{"negative load time is ignored", PageSignals{PageLoadTime: &negative}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnalyzeTechnical(&tt.signals).ChecksPassed; got != tt.want {
				t.Errorf("ChecksPassed = %d, want %d", got, tt.want)
			}
		})
	}
}
