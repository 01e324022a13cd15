package seo

import "time"

// Paragraph is one content paragraph as extracted from the page.
type Paragraph struct {
	Text   string `json:"text"`
	Length int    `json:"length"`
}

// PageSignals holds every fact the engine needs about a single page.
// It is produced by the extraction collaborator and treated as read-only
// for the duration of an analysis. Optional metrics are pointers; a nil
// value means the signal was not measured and contributes nothing.
type PageSignals struct {
	Title                 string `json:"title"`
	TitleLength           int    `json:"titleLength"`
	MetaDescription       string `json:"metaDescription"`
	MetaDescriptionLength int    `json:"metaDescriptionLength"`

	H1Count int      `json:"h1Count"`
	H2Count int      `json:"h2Count"`
	H3Count int      `json:"h3Count"`
	H1Text  string   `json:"h1Text"`
	H2Texts []string `json:"h2Texts"`

	WordCount    int         `json:"wordCount"`
	Keyword      string      `json:"keyword"`
	KeywordCount int         `json:"keywordCount"`
	Paragraphs   []Paragraph `json:"paragraphs"`

	ImagesCount           int `json:"imagesCount"`
	MissingAltImagesCount int `json:"missingAltImagesCount"`

	HasCanonical            bool     `json:"hasCanonical"`
	HasSchemaMarkup         bool     `json:"hasSchemaMarkup"`
	SchemaTypes             []string `json:"schemaTypes"`
	SchemaErrors            []string `json:"schemaErrors"`
	BreadcrumbSchemaPresent bool     `json:"breadcrumbSchemaPresent"`

	InternalLinksCount int `json:"internalLinksCount"`
	ExternalLinksCount int `json:"externalLinksCount"`

	// Core Web Vitals. LCP and FID in milliseconds, CLS unitless.
	LargestContentfulPaint *float64 `json:"largestContentfulPaint,omitempty"`
	FirstInputDelay        *float64 `json:"firstInputDelay,omitempty"`
	CumulativeLayoutShift  *float64 `json:"cumulativeLayoutShift,omitempty"`

	MobileFriendly bool `json:"mobileFriendly"`
	HTTPS          bool `json:"https"`

	ContentReadabilityScore *float64   `json:"contentReadabilityScore,omitempty"`
	DuplicateContent        bool       `json:"duplicateContent"`
	ThinContent             bool       `json:"thinContent"`
	ContentFreshness        *time.Time `json:"contentFreshness,omitempty"`

	// E-E-A-T signals
	AuthorCredentials  bool       `json:"authorCredentials"`
	AuthorBylines      bool       `json:"authorBylines"`
	CitationSources    int        `json:"citationSources"`
	LastUpdated        *time.Time `json:"lastUpdated,omitempty"`
	ContactInfoPresent bool       `json:"contactInfoPresent"`

	RobotsTxtStatus bool     `json:"robotsTxtStatus"`
	SitemapStatus   bool     `json:"sitemapStatus"`
	PageLoadTime    *float64 `json:"pageLoadTime,omitempty"` // seconds
}
