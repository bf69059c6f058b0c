// Package extract turns raw fetched HTML into a normalized document:
// title, main text, metadata and an optional markdown rendering.
package extract

import (
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"contentiq/analytics"
	"contentiq/fetch"
	"contentiq/types"
)

// Options control optional parts of the extraction output.
type Options struct {
	IncludeImages bool
	IncludeLinks  bool
	OutputFormat  string // "text" or "markdown"
}

const (
	maxImages     = 50
	maxLinks      = 100
	excerptLength = 300
)

// Extractor produces ExtractedDocuments from raw pages.
type Extractor struct {
	maxContentChars int
}

// New builds an Extractor with the given content length cap.
func New(maxContentChars int) *Extractor {
	return &Extractor{maxContentChars: maxContentChars}
}

// Extract parses raw HTML, strips boilerplate via readability heuristics and
// falls back to paragraph harvesting when those yield near-empty output.
// Readability metrics are always attached for documents of 20+ words.
func (e *Extractor) Extract(raw *fetch.RawDocument, opts Options) (*types.ExtractedDocument, error) {
	start := time.Now()

	pageURL, err := url.Parse(raw.FinalURL)
	if err != nil {
		return nil, types.WrapError(types.KindUnextractable, "final URL could not be parsed", err)
	}

	soup, err := goquery.NewDocumentFromReader(strings.NewReader(raw.HTML))
	if err != nil {
		return nil, types.WrapError(types.KindUnextractable, "HTML could not be parsed", err)
	}

	parser := readability.NewParser()
	article, artErr := parser.Parse(strings.NewReader(raw.HTML), pageURL)

	text := ""
	contentHTML := ""
	if artErr == nil {
		text = strings.TrimSpace(article.TextContent)
		contentHTML = article.Content
	}
	if wordCount(text) < 10 {
		// Readability produced near-empty output; harvest paragraphs instead.
		text = fallbackText(soup)
		contentHTML = ""
	}
	if text == "" {
		return nil, types.NewError(types.KindUnextractable, "no content could be extracted from the page")
	}

	if len(text) > e.maxContentChars {
		text = cutAtRune(text, e.maxContentChars) + "..."
	}

	title := ""
	if artErr == nil {
		title = strings.TrimSpace(article.Title)
	}
	if title == "" {
		title = metaProperty(soup, "og:title")
	}
	if title == "" {
		title = strings.TrimSpace(soup.Find("title").First().Text())
	}

	author := extractAuthor(soup)
	if author == "" && artErr == nil {
		author = strings.TrimSpace(article.Byline)
	}

	language := strings.TrimSpace(soup.Find("html").AttrOr("lang", ""))
	if language == "" {
		language = DetectLanguage(text)
	}

	doc := &types.ExtractedDocument{
		URL:           raw.FinalURL,
		Title:         title,
		Author:        author,
		PublishedDate: extractDate(soup),
		Text:          text,
		WordCount:     wordCount(text),
		Excerpt:       excerpt(text),
		Language:      language,
	}

	if opts.OutputFormat == "markdown" {
		md := e.renderMarkdown(contentHTML, text, opts)
		if len(md) > e.maxContentChars {
			md = cutAtRune(md, e.maxContentChars) + "..."
		}
		doc.Markdown = md
	}

	if doc.WordCount >= 20 {
		r := analytics.ComputeReadability(text)
		doc.Readability = &r
	}

	if opts.IncludeImages {
		doc.Images = collectImages(soup, pageURL)
	}
	if opts.IncludeLinks {
		doc.Links = collectLinks(soup, pageURL)
	}

	doc.ExtractionTimeMs = time.Since(start).Milliseconds()
	return doc, nil
}

// fallbackText pulls paragraph text out of the likeliest content container
// after dropping script/style/nav boilerplate.
func fallbackText(soup *goquery.Document) string {
	clone := goquery.CloneDocument(soup)
	clone.Find("script, style, nav, header, footer, aside, noscript").Remove()

	container := clone.Find("article").First()
	if container.Length() == 0 {
		container = clone.Find("main").First()
	}
	if container.Length() == 0 {
		container = clone.Find("[role=main]").First()
	}
	if container.Length() == 0 {
		container = clone.Find("body").First()
	}

	var paragraphs []string
	container.Find("p").Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			paragraphs = append(paragraphs, t)
		}
	})
	if len(paragraphs) > 0 {
		return strings.Join(paragraphs, "\n\n")
	}

	return strings.Join(strings.Fields(container.Text()), " ")
}

func extractAuthor(soup *goquery.Document) string {
	if v := metaName(soup, "author"); v != "" {
		return v
	}
	return metaProperty(soup, "article:author")
}

func extractDate(soup *goquery.Document) string {
	if v := metaProperty(soup, "article:published_time"); v != "" {
		return v
	}
	if v, ok := soup.Find("time[datetime]").First().Attr("datetime"); ok {
		return strings.TrimSpace(v)
	}
	return metaName(soup, "date")
}

func collectImages(soup *goquery.Document, base *url.URL) []string {
	seen := make(map[string]struct{})
	var images []string
	soup.Find("img[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src, _ := s.Attr("src")
		abs := resolveRef(base, src)
		if abs == "" {
			return true
		}
		if _, dup := seen[abs]; dup {
			return true
		}
		seen[abs] = struct{}{}
		images = append(images, abs)
		return len(images) < maxImages
	})
	return images
}

func collectLinks(soup *goquery.Document, base *url.URL) []string {
	seen := make(map[string]struct{})
	var links []string
	soup.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		abs := resolveRef(base, href)
		if abs == "" || (!strings.HasPrefix(abs, "http://") && !strings.HasPrefix(abs, "https://")) {
			return true
		}
		if _, dup := seen[abs]; dup {
			return true
		}
		seen[abs] = struct{}{}
		links = append(links, abs)
		return len(links) < maxLinks
	})
	return links
}

func resolveRef(base *url.URL, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	u, err := base.Parse(ref)
	if err != nil {
		return ""
	}
	return u.String()
}

func metaName(soup *goquery.Document, name string) string {
	v, _ := soup.Find(`meta[name="` + name + `"]`).First().Attr("content")
	return strings.TrimSpace(v)
}

func metaProperty(soup *goquery.Document, prop string) string {
	v, _ := soup.Find(`meta[property="` + prop + `"]`).First().Attr("content")
	return strings.TrimSpace(v)
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}

func excerpt(text string) string {
	text = strings.TrimSpace(text)
	if len(text) > excerptLength {
		return strings.TrimSpace(cutAtRune(text, excerptLength)) + "..."
	}
	return text
}

// cutAtRune truncates s at limit bytes, backing up so a multi-byte rune is
// never split in half.
func cutAtRune(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
