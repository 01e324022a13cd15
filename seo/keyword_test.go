package seo

import "testing"

func TestAnalyzeKeyword(t *testing.T) {
	tests := []struct {
		name        string
		signals     PageSignals
		wantDensity float64
		wantCount   int
	}{
		{
			name:        "three percent density",
			signals:     PageSignals{Keyword: "seo", KeywordCount: 30, WordCount: 1000},
			wantDensity: 3.00,
			wantCount:   3,
		},
		{
			name:        "no keyword",
			signals:     PageSignals{WordCount: 500, KeywordCount: 5},
			wantDensity: 0,
			wantCount:   0,
		},
		{
			name:        "zero word count is guarded",
			signals:     PageSignals{Keyword: "go", KeywordCount: 4},
			wantDensity: 0,
			wantCount:   0,
		},
		{
			name:        "short page recommends one occurrence",
			signals:     PageSignals{Keyword: "go", KeywordCount: 1, WordCount: 250},
			wantDensity: 0.4,
			wantCount:   1,
		},
		{
			name:        "medium page scales by 250 words",
			signals:     PageSignals{Keyword: "go", KeywordCount: 2, WordCount: 500},
			wantDensity: 0.4,
			wantCount:   2,
		},
		{
			name:        "medium page upper bound",
			signals:     PageSignals{Keyword: "go", KeywordCount: 4, WordCount: 800},
			wantDensity: 0.5,
			wantCount:   3,
		},
		{
			name:        "long page scales by 300 words",
			signals:     PageSignals{Keyword: "go", KeywordCount: 10, WordCount: 1500},
			wantDensity: 0.67,
			wantCount:   5,
		},
		{
			name:        "density rounds to two decimals",
			signals:     PageSignals{Keyword: "go", KeywordCount: 1, WordCount: 3},
			wantDensity: 33.33,
			wantCount:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeKeyword(&tt.signals)
			if got.Density != tt.wantDensity {
				t.Errorf("Density = %v, want %v", got.Density, tt.wantDensity)
			}
			if got.RecommendedCount != tt.wantCount {
				t.Errorf("RecommendedCount = %d, want %d", got.RecommendedCount, tt.wantCount)
			}
		})
	}
}

func TestAnalyzeKeywordDensityClamp(t *testing.T) {
	// keyword_count larger than word_count is not validated upstream; the
	// density must still land in [0, 100] without panicking.
	s := PageSignals{Keyword: "go", KeywordCount: 500, WordCount: 10}
	got := AnalyzeKeyword(&s)
	if got.Density < 0 || got.Density > 100 {
		t.Errorf("Density = %v, want within [0, 100]", got.Density)
	}
}
