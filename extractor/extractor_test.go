package extractor

import (
	"strings"
	"testing"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
<title>Practical SEO for Small Sites</title>
<meta name="description" content="A short guide to practical SEO.">
<meta name="viewport" content="width=device-width, initial-scale=1">
<link rel="canonical" href="https://example.com/guide">
<script type="application/ld+json">{"@context":"https://schema.org","@type":"Article","headline":"Practical SEO"}</script>
<script type="application/ld+json">{"@type":"BreadcrumbList"}</script>
</head>
<body>
<h1>Practical SEO</h1>
<h2>Why it matters</h2>
<h2>Getting started</h2>
<h3>Tools</h3>
<p>Search engines reward pages that answer a question clearly. This guide covers seo basics for small sites.</p>
<p>Start with titles and descriptions. Then look at headings and content depth. Good seo takes patience.</p>
<p>   </p>
<img src="/a.png" alt="diagram">
<img src="/b.png">
<img src="/c.png" alt="  ">
<a href="https://example.com/about">About</a>
<a href="/pricing">Pricing</a>
<a href="https://other.example.org/ref">Reference</a>
<a href="mailto:team@example.com">Email us</a>
<a href="#">top</a>
<cite>Search Quality Guidelines</cite>
</body>
</html>`

func TestExtractFromHTML(t *testing.T) {
	s, err := ExtractFromHTML(samplePage, "https://example.com/guide", "seo")
	if err != nil {
		t.Fatalf("ExtractFromHTML: %v", err)
	}

	if s.Title != "Practical SEO for Small Sites" {
		t.Errorf("Title = %q", s.Title)
	}
	if s.TitleLength != len(s.Title) {
		t.Errorf("TitleLength = %d, want %d", s.TitleLength, len(s.Title))
	}
	if s.MetaDescription != "A short guide to practical SEO." {
		t.Errorf("MetaDescription = %q", s.MetaDescription)
	}

	if s.H1Count != 1 || s.H2Count != 2 || s.H3Count != 1 {
		t.Errorf("heading counts = %d/%d/%d, want 1/2/1", s.H1Count, s.H2Count, s.H3Count)
	}
	if s.H1Text != "Practical SEO" {
		t.Errorf("H1Text = %q", s.H1Text)
	}
	if len(s.H2Texts) != 2 || s.H2Texts[0] != "Why it matters" {
		t.Errorf("H2Texts = %+v", s.H2Texts)
	}

	if len(s.Paragraphs) != 2 {
		t.Fatalf("Paragraphs = %d, want 2 (empty paragraph skipped)", len(s.Paragraphs))
	}
	if s.Paragraphs[0].Length != len(s.Paragraphs[0].Text) {
		t.Errorf("paragraph length mismatch: %+v", s.Paragraphs[0])
	}

	if s.ImagesCount != 3 {
		t.Errorf("ImagesCount = %d, want 3", s.ImagesCount)
	}
	if s.MissingAltImagesCount != 2 {
		t.Errorf("MissingAltImagesCount = %d, want 2 (blank alt counts as missing)", s.MissingAltImagesCount)
	}

	if !s.HasCanonical {
		t.Error("HasCanonical = false")
	}
	if !s.MobileFriendly {
		t.Error("MobileFriendly = false")
	}
	if !s.HTTPS {
		t.Error("HTTPS = false")
	}

	if s.InternalLinksCount != 2 {
		t.Errorf("InternalLinksCount = %d, want 2", s.InternalLinksCount)
	}
	if s.ExternalLinksCount != 1 {
		t.Errorf("ExternalLinksCount = %d, want 1", s.ExternalLinksCount)
	}

	if !s.HasSchemaMarkup {
		t.Error("HasSchemaMarkup = false")
	}
	if !containsType(s.SchemaTypes, "Article") || !containsType(s.SchemaTypes, "BreadcrumbList") {
		t.Errorf("SchemaTypes = %+v", s.SchemaTypes)
	}
	if !s.BreadcrumbSchemaPresent {
		t.Error("BreadcrumbSchemaPresent = false")
	}
	if len(s.SchemaErrors) != 0 {
		t.Errorf("SchemaErrors = %+v, want none", s.SchemaErrors)
	}

	if !s.ContactInfoPresent {
		t.Error("ContactInfoPresent = false (mailto link present)")
	}
	if s.CitationSources != 1 {
		t.Errorf("CitationSources = %d, want 1", s.CitationSources)
	}

	if s.WordCount == 0 {
		t.Error("WordCount = 0")
	}
	if s.KeywordCount < 2 {
		t.Errorf("KeywordCount = %d, want at least 2", s.KeywordCount)
	}
}

func containsType(types []string, want string) bool {
	for _, t := range types {
		if t == want {
			return true
		}
	}
	return false
}

func TestExtractFromHTMLSchemaErrors(t *testing.T) {
	page := `<html><head>
<script type="application/ld+json">{not json at all</script>
<script type="application/ld+json">{"name":"untyped"}</script>
</head><body><h1>x</h1></body></html>`

	s, err := ExtractFromHTML(page, "https://example.com/", "")
	if err != nil {
		t.Fatalf("ExtractFromHTML: %v", err)
	}
	if len(s.SchemaErrors) != 2 {
		t.Errorf("SchemaErrors = %+v, want 2", s.SchemaErrors)
	}
	if !s.HasSchemaMarkup {
		t.Error("HasSchemaMarkup should be true when JSON-LD blocks exist")
	}
	if len(s.SchemaTypes) != 0 {
		t.Errorf("SchemaTypes = %+v, want none", s.SchemaTypes)
	}
}

func TestExtractFromHTMLPlainHTTP(t *testing.T) {
	s, err := ExtractFromHTML("<html><body><h1>x</h1></body></html>", "http://example.com/", "")
	if err != nil {
		t.Fatalf("ExtractFromHTML: %v", err)
	}
	if s.HTTPS {
		t.Error("HTTPS = true for an http URL")
	}
}

func TestExtractFromHTMLGraphSchema(t *testing.T) {
	page := `<html><head>
<script type="application/ld+json">{"@context":"https://schema.org","@graph":[{"@type":"WebPage"},{"@type":"Organization"}]}</script>
</head><body><h1>x</h1></body></html>`

	s, err := ExtractFromHTML(page, "https://example.com/", "")
	if err != nil {
		t.Fatalf("ExtractFromHTML: %v", err)
	}
	if !containsType(s.SchemaTypes, "WebPage") || !containsType(s.SchemaTypes, "Organization") {
		t.Errorf("SchemaTypes = %+v, want WebPage and Organization from @graph", s.SchemaTypes)
	}
}

func TestFleschReadingEase(t *testing.T) {
	t.Run("too short to score", func(t *testing.T) {
		if _, ok := fleschReadingEase("Just a few words."); ok {
			t.Error("short text should not be scored")
		}
	})

	t.Run("simple text scores higher than dense text", func(t *testing.T) {
		simple := strings.Repeat("The cat sat on the mat. The dog ran to the park. ", 5)
		dense := strings.Repeat("Institutional prioritization necessitates comprehensive organizational restructuring initiatives. ", 10)

		simpleScore, ok := fleschReadingEase(simple)
		if !ok {
			t.Fatal("simple text should be scorable")
		}
		denseScore, ok := fleschReadingEase(dense)
		if !ok {
			t.Fatal("dense text should be scorable")
		}
		if simpleScore <= denseScore {
			t.Errorf("simple (%.1f) should outscore dense (%.1f)", simpleScore, denseScore)
		}
	})

	t.Run("bounded", func(t *testing.T) {
		score, ok := fleschReadingEase(strings.Repeat("word ", 100))
		if !ok {
			t.Fatal("should be scorable")
		}
		if score < 0 || score > 100 {
			t.Errorf("score = %v, want within [0, 100]", score)
		}
	})
}
