package seo

import (
	"testing"
	"time"
)

func TestTrustScore(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	daysAgo := func(d int) *time.Time {
		ts := now.AddDate(0, 0, -d)
		return &ts
	}

	tests := []struct {
		name    string
		signals PageSignals
		want    int
	}{
		{"nothing", PageSignals{}, 0},
		{"credentials only", PageSignals{AuthorCredentials: true}, 25},
		{"bylines only", PageSignals{AuthorBylines: true}, 20},
		{"citations scale by five", PageSignals{CitationSources: 3}, 15},
		{"citations cap at 25", PageSignals{CitationSources: 12}, 25},
		{"contact info", PageSignals{ContactInfoPresent: true}, 15},
		{"updated within 90 days", PageSignals{LastUpdated: daysAgo(30)}, 15},
		{"updated within a year", PageSignals{LastUpdated: daysAgo(200)}, 10},
		{"updated within two years", PageSignals{LastUpdated: daysAgo(600)}, 5},
		{"stale update contributes nothing", PageSignals{LastUpdated: daysAgo(1000)}, 0},
		{
			"everything together is clamped to 100",
			PageSignals{
				AuthorCredentials:  true,
				AuthorBylines:      true,
				CitationSources:    20,
				ContactInfoPresent: true,
				LastUpdated:        daysAgo(10),
			},
			100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrustScore(&tt.signals, now); got != tt.want {
				t.Errorf("TrustScore = %d, want %d", got, tt.want)
			}
		})
	}
}
