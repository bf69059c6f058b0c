package extract

import (
	"testing"
)

const seoHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Choosing a Message Broker</title>
<meta name="description" content="Kafka, RabbitMQ and NATS compared.">
<meta name="robots" content="index, follow">
<meta name="viewport" content="width=device-width, initial-scale=1">
<link rel="canonical" href="https://example.com/brokers">
<meta property="og:title" content="Choosing a Message Broker">
<meta property="og:description" content="A comparison of message brokers.">
<meta property="og:image" content="https://example.com/brokers.png">
<meta property="og:type" content="article">
<meta name="twitter:card" content="summary_large_image">
<meta name="twitter:title" content="Choosing a Message Broker">
<meta name="twitter:site" content="@example">
<script type="application/ld+json">
{"@context": "https://schema.org", "@type": "Article", "headline": "Choosing a Message Broker"}
</script>
<script type="application/ld+json">
[{"@type": "BreadcrumbList"}, {"@type": ["FAQPage", "WebPage"]}]
</script>
</head>
<body>
<h1>Choosing a Message Broker</h1>
<h2>Throughput</h2>
<h2>Delivery guarantees</h2>
<p>Throughput numbers dominate broker marketing, but delivery guarantees
decide architectures. At-least-once delivery pushes deduplication onto
consumers, while exactly-once semantics cost coordination on every publish.</p>
<a href="/pricing">Pricing</a>
<a href="https://example.com/docs">Docs</a>
<a href="https://other.example.net/benchmarks">Benchmarks</a>
<img src="/a.png" alt="architecture diagram">
<img src="/b.png">
<img src="/c.png" alt="">
</body>
</html>`

func TestExtractSEO(t *testing.T) {
	seo, err := ExtractSEO(seoHTML, "https://example.com/brokers")
	if err != nil {
		t.Fatalf("ExtractSEO: %v", err)
	}

	if seo.Title != "Choosing a Message Broker" {
		t.Errorf("Title = %q", seo.Title)
	}
	if seo.MetaDescription != "Kafka, RabbitMQ and NATS compared." {
		t.Errorf("MetaDescription = %q", seo.MetaDescription)
	}
	if seo.CanonicalURL != "https://example.com/brokers" {
		t.Errorf("CanonicalURL = %q", seo.CanonicalURL)
	}
	if seo.Robots != "index, follow" {
		t.Errorf("Robots = %q", seo.Robots)
	}
	if seo.Viewport == "" || seo.Charset == "" {
		t.Errorf("Viewport = %q, Charset = %q", seo.Viewport, seo.Charset)
	}
	if seo.Language != "en" {
		t.Errorf("Language = %q", seo.Language)
	}

	if len(seo.H1Tags) != 1 || seo.H1Tags[0] != "Choosing a Message Broker" {
		t.Errorf("H1Tags = %v", seo.H1Tags)
	}
	if len(seo.H2Tags) != 2 {
		t.Errorf("H2Tags = %v", seo.H2Tags)
	}

	if seo.OpenGraph.Title != "Choosing a Message Broker" || seo.OpenGraph.Image == "" {
		t.Errorf("OpenGraph = %+v", seo.OpenGraph)
	}
	if seo.TwitterCard.Card != "summary_large_image" || seo.TwitterCard.Site != "@example" {
		t.Errorf("TwitterCard = %+v", seo.TwitterCard)
	}

	// Two JSON-LD blocks: one single object, one array (with a multi-type item).
	wantTypes := map[string]bool{"Article": true, "BreadcrumbList": true, "FAQPage": true}
	for _, typ := range seo.SchemaMarkup.Types {
		delete(wantTypes, typ)
	}
	if len(wantTypes) != 0 {
		t.Errorf("SchemaMarkup.Types = %v, missing %v", seo.SchemaMarkup.Types, wantTypes)
	}

	if seo.InternalLinks != 2 {
		t.Errorf("InternalLinks = %d, want 2 (relative plus same-host)", seo.InternalLinks)
	}
	if seo.ExternalLinks != 1 {
		t.Errorf("ExternalLinks = %d, want 1", seo.ExternalLinks)
	}

	if seo.TotalImages != 3 {
		t.Errorf("TotalImages = %d, want 3", seo.TotalImages)
	}
	if seo.ImagesWithoutAlt != 2 {
		t.Errorf("ImagesWithoutAlt = %d, want 2 (missing and empty alt)", seo.ImagesWithoutAlt)
	}

	if seo.WordCount < 20 {
		t.Errorf("WordCount = %d, want visible text counted", seo.WordCount)
	}
}

func TestExtractSEOMinimalPage(t *testing.T) {
	seo, err := ExtractSEO("<html><head><title>Bare</title></head><body><p>Nothing else.</p></body></html>",
		"https://example.com/bare")
	if err != nil {
		t.Fatalf("ExtractSEO: %v", err)
	}
	if seo.Title != "Bare" {
		t.Errorf("Title = %q", seo.Title)
	}
	if seo.MetaDescription != "" || seo.CanonicalURL != "" {
		t.Errorf("unexpected metadata on a bare page: %+v", seo)
	}
	if len(seo.SchemaMarkup.Types) != 0 {
		t.Errorf("SchemaMarkup.Types = %v, want empty", seo.SchemaMarkup.Types)
	}
}
