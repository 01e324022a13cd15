// Package extractor fetches a page and turns its HTML into the structured
// signals the scoring engine consumes.
package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"github.com/pagepulse/backend/seo"
)

const userAgent = "PagePulse/1.0"

// Extractor fetches URLs and extracts PageSignals from them.
type Extractor struct {
	client *http.Client
}

// New creates an Extractor with a pooled, keep-alive HTTP client.
func New() *Extractor {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &Extractor{
		client: &http.Client{
			Timeout:   15 * time.Second,
			Transport: transport,
		},
	}
}

// Extract fetches pageURL and derives the full signal set, including the
// robots.txt and sitemap.xml probes and the measured load time.
func (e *Extractor) Extract(ctx context.Context, pageURL, keyword string) (*seo.PageSignals, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", pageURL, resp.StatusCode)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	loadTime := time.Since(start).Seconds()

	signals, err := ExtractFromHTML(buf.String(), pageURL, keyword)
	if err != nil {
		return nil, err
	}
	signals.PageLoadTime = &loadTime
	signals.RobotsTxtStatus = e.probe(ctx, pageURL, "/robots.txt")
	signals.SitemapStatus = e.probe(ctx, pageURL, "/sitemap.xml")
	return signals, nil
}

// probe issues a HEAD request against a site-root path.
func (e *Extractor) probe(ctx context.Context, pageURL, path string) bool {
	u, err := url.Parse(pageURL)
	if err != nil {
		return false
	}
	target := u.Scheme + "://" + u.Host + path

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 400
}

// ExtractFromHTML derives PageSignals from raw HTML without touching the
// network. Load time and the robots/sitemap probes stay unset.
func ExtractFromHTML(html, pageURL, keyword string) (*seo.PageSignals, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	s := &seo.PageSignals{Keyword: keyword}

	s.Title = strings.TrimSpace(doc.Find("title").First().Text())
	s.TitleLength = len(s.Title)

	if desc, ok := doc.Find("meta[name='description']").Attr("content"); ok {
		s.MetaDescription = strings.TrimSpace(desc)
		s.MetaDescriptionLength = len(s.MetaDescription)
	}

	s.H1Count = doc.Find("h1").Length()
	s.H2Count = doc.Find("h2").Length()
	s.H3Count = doc.Find("h3").Length()
	s.H1Text = strings.TrimSpace(doc.Find("h1").First().Text())
	doc.Find("h2").Each(func(_ int, sel *goquery.Selection) {
		s.H2Texts = append(s.H2Texts, strings.TrimSpace(sel.Text()))
	})

	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}
		s.Paragraphs = append(s.Paragraphs, seo.Paragraph{Text: text, Length: len(text)})
	})

	images := doc.Find("img")
	s.ImagesCount = images.Length()
	images.Each(func(_ int, sel *goquery.Selection) {
		if alt, ok := sel.Attr("alt"); !ok || strings.TrimSpace(alt) == "" {
			s.MissingAltImagesCount++
		}
	})

	s.HasCanonical = doc.Find("link[rel='canonical']").Length() > 0
	if viewport, ok := doc.Find("meta[name='viewport']").Attr("content"); ok {
		s.MobileFriendly = strings.Contains(strings.ToLower(viewport), "width=device-width")
	}
	s.HTTPS = strings.HasPrefix(strings.ToLower(pageURL), "https://")

	extractLinks(doc, pageURL, s)
	extractSchema(doc, s)
	extractTrustSignals(doc, s)
	extractContent(doc, html, pageURL, s)

	return s, nil
}

func extractLinks(doc *goquery.Document, pageURL string, s *seo.PageSignals) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return
	}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href := strings.TrimSpace(sel.AttrOr("href", ""))
		if href == "" || href == "#" {
			return
		}
		switch {
		case strings.HasPrefix(href, "http://"), strings.HasPrefix(href, "https://"):
			target, err := url.Parse(href)
			if err != nil {
				return
			}
			if target.Host == base.Host {
				s.InternalLinksCount++
			} else {
				s.ExternalLinksCount++
			}
		case strings.HasPrefix(href, "mailto:"), strings.HasPrefix(href, "tel:"), strings.HasPrefix(href, "#"):
			// not navigation
		default:
			s.InternalLinksCount++
		}
	})
}

// extractSchema collects schema.org types from JSON-LD blocks and microdata
// itemtype attributes, recording malformed blocks as schema errors.
func extractSchema(doc *goquery.Document, s *seo.PageSignals) {
	seen := make(map[string]bool)
	addType := func(t string) {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			return
		}
		seen[t] = true
		s.SchemaTypes = append(s.SchemaTypes, t)
	}

	doc.Find("script[type='application/ld+json']").Each(func(i int, sel *goquery.Selection) {
		var payload any
		if err := json.Unmarshal([]byte(sel.Text()), &payload); err != nil {
			s.SchemaErrors = append(s.SchemaErrors, fmt.Sprintf("JSON-LD block %d is not valid JSON", i+1))
			return
		}
		types := collectSchemaTypes(payload)
		if len(types) == 0 {
			s.SchemaErrors = append(s.SchemaErrors, fmt.Sprintf("JSON-LD block %d has no @type", i+1))
			return
		}
		for _, t := range types {
			addType(t)
		}
	})

	doc.Find("[itemtype]").Each(func(_ int, sel *goquery.Selection) {
		itemtype := sel.AttrOr("itemtype", "")
		if strings.Contains(itemtype, "schema.org") {
			parts := strings.Split(itemtype, "/")
			addType(parts[len(parts)-1])
		}
	})

	s.HasSchemaMarkup = doc.Find("script[type='application/ld+json']").Length() > 0 || len(s.SchemaTypes) > 0
	for _, t := range s.SchemaTypes {
		if strings.EqualFold(t, "BreadcrumbList") {
			s.BreadcrumbSchemaPresent = true
		}
	}
}

// collectSchemaTypes walks a decoded JSON-LD value for @type entries,
// including @graph containers and arrays of entities.
func collectSchemaTypes(payload any) []string {
	var types []string
	switch v := payload.(type) {
	case map[string]any:
		switch t := v["@type"].(type) {
		case string:
			types = append(types, t)
		case []any:
			for _, item := range t {
				if name, ok := item.(string); ok {
					types = append(types, name)
				}
			}
		}
		if graph, ok := v["@graph"]; ok {
			types = append(types, collectSchemaTypes(graph)...)
		}
	case []any:
		for _, item := range v {
			types = append(types, collectSchemaTypes(item)...)
		}
	}
	return types
}

func extractTrustSignals(doc *goquery.Document, s *seo.PageSignals) {
	s.AuthorCredentials = doc.Find("a[rel='author'], [itemprop='author'], .author-bio").Length() > 0

	citations := doc.Find("cite").Length()
	doc.Find("blockquote[cite]").Each(func(_ int, _ *goquery.Selection) { citations++ })
	s.CitationSources = citations

	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href := strings.ToLower(sel.AttrOr("href", ""))
		if strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "tel:") ||
			strings.Contains(href, "/contact") {
			s.ContactInfoPresent = true
			return false
		}
		return true
	})
}

// extractContent runs the readability pass over the page: word count,
// keyword occurrences, byline, timestamps and the reading-ease estimate all
// come from the distilled article text, not the raw DOM.
func extractContent(doc *goquery.Document, html, pageURL string, s *seo.PageSignals) {
	text := ""
	parsedURL, err := url.Parse(pageURL)
	if err == nil {
		parser := readability.NewParser()
		if article, err := parser.Parse(strings.NewReader(html), parsedURL); err == nil {
			text = article.TextContent
			if strings.TrimSpace(article.Byline) != "" {
				s.AuthorBylines = true
			}
			if article.ModifiedTime != nil {
				s.LastUpdated = article.ModifiedTime
			} else if article.PublishedTime != nil {
				s.LastUpdated = article.PublishedTime
			}
			if article.PublishedTime != nil {
				s.ContentFreshness = article.PublishedTime
			}
		}
	}
	if strings.TrimSpace(text) == "" {
		// Readability found no article; fall back to the body text.
		text = doc.Find("body").Text()
	}

	s.WordCount = len(strings.Fields(text))
	if s.Keyword != "" {
		s.KeywordCount = strings.Count(strings.ToLower(text), strings.ToLower(s.Keyword))
	}
	if score, ok := fleschReadingEase(text); ok {
		s.ContentReadabilityScore = &score
	}
}
