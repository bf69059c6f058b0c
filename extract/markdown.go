package extract

import (
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
)

// renderMarkdown converts the readability content HTML to markdown,
// preserving heading hierarchy and paragraph breaks. Links and images are
// kept only when the caller asked for them. Falls back to the plain text
// when there is no content HTML or conversion fails.
func (e *Extractor) renderMarkdown(contentHTML, plainText string, opts Options) string {
	if strings.TrimSpace(contentHTML) == "" {
		return plainText
	}

	html := contentHTML
	if !opts.IncludeLinks || !opts.IncludeImages {
		if stripped, err := stripRefs(contentHTML, opts); err == nil {
			html = stripped
		}
	}

	md, err := htmltomarkdown.ConvertString(html)
	if err != nil || strings.TrimSpace(md) == "" {
		return plainText
	}
	return strings.TrimSpace(md)
}

// stripRefs removes image tags and unwraps anchors so the markdown renderer
// never sees references the caller did not request.
func stripRefs(contentHTML string, opts Options) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contentHTML))
	if err != nil {
		return "", err
	}
	if !opts.IncludeImages {
		doc.Find("img, picture, figure").Remove()
	}
	if !opts.IncludeLinks {
		doc.Find("a").Each(func(_ int, s *goquery.Selection) {
			s.ReplaceWithHtml(s.Text())
		})
	}
	return doc.Find("body").Html()
}
