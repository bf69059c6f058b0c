package extract

import (
	"strings"
	"testing"
	"unicode/utf8"

	"contentiq/fetch"
)

const articleHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<title>Site Name - Page</title>
<meta property="og:title" content="Rate Limiting Strategies">
<meta name="author" content="Dana Field">
<meta property="article:published_time" content="2024-03-18T09:00:00Z">
</head>
<body>
<nav><a href="/">Home</a><a href="/blog">Blog</a></nav>
<article>
<h1>Rate Limiting Strategies</h1>
<p>Every public API eventually needs rate limiting, and the choice of
algorithm shapes client behavior more than most teams expect. Token buckets
allow short bursts while enforcing a long-term average, which matches how
real clients actually behave during retries and batch jobs.</p>
<p>Sliding-window counters trade burst tolerance for smoother enforcement.
They cost more memory per client but produce far fewer spurious rejections
at window boundaries, which keeps support tickets down and dashboards honest.
<a href="https://example.org/further">Further reading</a> covers the
implementation details.</p>
<img src="/diagrams/bucket.png" alt="token bucket diagram">
</article>
<footer>Copyright 2024</footer>
</body>
</html>`

func rawDoc(html string) *fetch.RawDocument {
	return &fetch.RawDocument{
		HTML:        html,
		FinalURL:    "https://example.com/rate-limiting",
		StatusCode:  200,
		ContentType: "text/html; charset=utf-8",
	}
}

func TestExtractArticle(t *testing.T) {
	e := New(50000)
	doc, err := e.Extract(rawDoc(articleHTML), Options{})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if doc.Title != "Rate Limiting Strategies" {
		t.Errorf("Title = %q", doc.Title)
	}
	if doc.Author != "Dana Field" {
		t.Errorf("Author = %q", doc.Author)
	}
	if doc.PublishedDate == "" {
		t.Error("PublishedDate missing")
	}
	if doc.Language != "en" {
		t.Errorf("Language = %q, want en", doc.Language)
	}
	if !strings.Contains(doc.Text, "token bucket") && !strings.Contains(doc.Text, "Token buckets") {
		t.Errorf("main text missing article content: %q", doc.Text[:min(len(doc.Text), 200)])
	}
	if strings.Contains(doc.Text, "Copyright 2024") {
		t.Error("boilerplate footer leaked into extracted text")
	}
	if doc.WordCount < 50 {
		t.Errorf("WordCount = %d, want a full article", doc.WordCount)
	}
	if len(doc.Excerpt) > 303 {
		t.Errorf("Excerpt length = %d, want at most 300 plus ellipsis", len(doc.Excerpt))
	}
	if doc.Readability == nil {
		t.Fatal("Readability missing for a 50+ word document")
	}
	if doc.Readability.WordCount != doc.WordCount {
		t.Errorf("readability word count %d != document word count %d",
			doc.Readability.WordCount, doc.WordCount)
	}
	if doc.Markdown != "" {
		t.Error("Markdown present without markdown output format")
	}
	if doc.Images != nil || doc.Links != nil {
		t.Error("images/links present without being requested")
	}
}

func TestExtractMarkdownOutput(t *testing.T) {
	e := New(50000)

	withLinks, err := e.Extract(rawDoc(articleHTML), Options{OutputFormat: "markdown", IncludeLinks: true})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if withLinks.Markdown == "" {
		t.Fatal("Markdown missing")
	}
	if !strings.Contains(withLinks.Markdown, "https://example.org/further") {
		t.Error("markdown dropped a link despite include_links")
	}

	withoutLinks, err := e.Extract(rawDoc(articleHTML), Options{OutputFormat: "markdown"})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if strings.Contains(withoutLinks.Markdown, "https://example.org/further") {
		t.Error("markdown kept a link reference without include_links")
	}
	if !strings.Contains(withoutLinks.Markdown, "Further reading") {
		t.Error("unwrapping a link should keep its text")
	}
}

func TestExtractCollectsImagesAndLinks(t *testing.T) {
	e := New(50000)
	doc, err := e.Extract(rawDoc(articleHTML), Options{IncludeImages: true, IncludeLinks: true})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	found := false
	for _, img := range doc.Images {
		if img == "https://example.com/diagrams/bucket.png" {
			found = true
		}
	}
	if !found {
		t.Errorf("Images = %v, want resolved diagram URL", doc.Images)
	}
	for _, link := range doc.Links {
		if !strings.HasPrefix(link, "http") {
			t.Errorf("non-absolute link collected: %q", link)
		}
	}
}

func TestExtractFallbackWithoutArticle(t *testing.T) {
	html := `<!DOCTYPE html><html><head><title>Plain Page</title></head><body>
<div><p>This page has no article element at all, just a handful of paragraphs
sitting in plain divs. The extractor should still harvest this text rather
than reporting the page as empty, because plenty of real pages are built
exactly like this one.</p></div></body></html>`

	e := New(50000)
	doc, err := e.Extract(rawDoc(html), Options{})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !strings.Contains(doc.Text, "harvest this text") {
		t.Errorf("fallback harvest missed paragraph text: %q", doc.Text)
	}
	if doc.Title != "Plain Page" {
		t.Errorf("Title = %q", doc.Title)
	}
}

func TestExtractEmptyPage(t *testing.T) {
	e := New(50000)
	_, err := e.Extract(rawDoc("<html><body></body></html>"), Options{})
	if err == nil {
		t.Fatal("empty page extracted without error")
	}
}

func TestExtractTruncatesLongContent(t *testing.T) {
	paragraph := "<p>" + strings.Repeat("each of these words pads the body out considerably. ", 40) + "</p>"
	html := "<html><head><title>Long</title></head><body><article>" +
		strings.Repeat(paragraph, 10) + "</article></body></html>"

	e := New(500)
	doc, err := e.Extract(rawDoc(html), Options{})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(doc.Text) > 503 {
		t.Errorf("text length = %d, want capped at 500 plus ellipsis", len(doc.Text))
	}
	if !strings.HasSuffix(doc.Text, "...") {
		t.Error("truncated text missing ellipsis")
	}
}

func TestTruncationNeverSplitsRunes(t *testing.T) {
	body := strings.Repeat("café ", 200)
	html := "<html><head><title>Café</title></head><body><article><p>" +
		body + "</p></article></body></html>"

	// A byte-blind cut at 502 would land inside a two-byte rune.
	e := New(502)
	doc, err := e.Extract(rawDoc(html), Options{})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !utf8.ValidString(doc.Text) {
		t.Error("truncated text is not valid UTF-8")
	}
	if !utf8.ValidString(doc.Excerpt) {
		t.Error("excerpt is not valid UTF-8")
	}

	if got := cutAtRune("ééé", 3); got != "é" {
		t.Errorf("cutAtRune = %q, want backed up to rune boundary", got)
	}
	if got := cutAtRune("plain", 99); got != "plain" {
		t.Errorf("under-limit input changed: %q", got)
	}
}
