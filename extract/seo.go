package extract

import (
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"contentiq/types"
)

const (
	maxH1Tags      = 10
	maxH2Tags      = 20
	maxSchemaItems = 10
)

// ExtractSEO pulls the full SEO metadata snapshot out of a page: meta tags,
// Open Graph, Twitter Card, JSON-LD, heading structure and link/image audits.
func ExtractSEO(html, finalURL string) (*types.SEOData, error) {
	start := time.Now()

	soup, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, types.WrapError(types.KindUnextractable, "HTML could not be parsed", err)
	}
	pageURL, err := url.Parse(finalURL)
	if err != nil {
		return nil, types.WrapError(types.KindUnextractable, "final URL could not be parsed", err)
	}

	seo := &types.SEOData{
		URL:             finalURL,
		Title:           strings.TrimSpace(soup.Find("title").First().Text()),
		MetaDescription: metaName(soup, "description"),
		Robots:          metaName(soup, "robots"),
		Viewport:        metaName(soup, "viewport"),
		Language:        strings.TrimSpace(soup.Find("html").AttrOr("lang", "")),
		OpenGraph:       extractOpenGraph(soup),
		TwitterCard:     extractTwitterCard(soup),
		SchemaMarkup:    extractSchemaMarkup(soup),
	}

	if v, ok := soup.Find(`link[rel="canonical"]`).First().Attr("href"); ok {
		seo.CanonicalURL = strings.TrimSpace(v)
	}
	if v, ok := soup.Find("meta[charset]").First().Attr("charset"); ok {
		seo.Charset = strings.TrimSpace(v)
	}

	soup.Find("h1").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		seo.H1Tags = append(seo.H1Tags, strings.TrimSpace(s.Text()))
		return len(seo.H1Tags) < maxH1Tags
	})
	soup.Find("h2").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		seo.H2Tags = append(seo.H2Tags, strings.TrimSpace(s.Text()))
		return len(seo.H2Tags) < maxH2Tags
	})
	if seo.H1Tags == nil {
		seo.H1Tags = []string{}
	}
	if seo.H2Tags == nil {
		seo.H2Tags = []string{}
	}

	// Word count over visible body text, not raw markup.
	body := goquery.CloneDocument(soup)
	body.Find("script, style, noscript").Remove()
	seo.WordCount = len(strings.Fields(body.Find("body").Text()))

	soup.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		link, err := pageURL.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}
		if link.Host == "" || link.Host == pageURL.Host {
			seo.InternalLinks++
		} else {
			seo.ExternalLinks++
		}
	})

	soup.Find("img").Each(func(_ int, s *goquery.Selection) {
		seo.TotalImages++
		if alt, ok := s.Attr("alt"); !ok || strings.TrimSpace(alt) == "" {
			seo.ImagesWithoutAlt++
		}
	})

	seo.ExtractionTimeMs = time.Since(start).Milliseconds()
	return seo, nil
}

func extractOpenGraph(soup *goquery.Document) types.OpenGraphTags {
	return types.OpenGraphTags{
		Title:       metaProperty(soup, "og:title"),
		Description: metaProperty(soup, "og:description"),
		Image:       metaProperty(soup, "og:image"),
		URL:         metaProperty(soup, "og:url"),
		Type:        metaProperty(soup, "og:type"),
		SiteName:    metaProperty(soup, "og:site_name"),
	}
}

func extractTwitterCard(soup *goquery.Document) types.TwitterCard {
	get := func(name string) string {
		if v := metaName(soup, "twitter:"+name); v != "" {
			return v
		}
		return metaProperty(soup, "twitter:"+name)
	}
	return types.TwitterCard{
		Card:        get("card"),
		Title:       get("title"),
		Description: get("description"),
		Image:       get("image"),
		Site:        get("site"),
	}
}

func extractSchemaMarkup(soup *goquery.Document) types.SchemaMarkup {
	markup := types.SchemaMarkup{Types: []string{}}

	soup.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		raw := strings.TrimSpace(s.Text())
		if raw == "" {
			return
		}

		var items []map[string]any
		var single map[string]any
		if err := json.Unmarshal([]byte(raw), &single); err == nil {
			items = append(items, single)
		} else if err := json.Unmarshal([]byte(raw), &items); err != nil {
			return
		}

		for _, item := range items {
			if len(markup.Data) >= maxSchemaItems {
				return
			}
			t := "Unknown"
			switch v := item["@type"].(type) {
			case string:
				t = v
			case []any:
				if len(v) > 0 {
					if s, ok := v[0].(string); ok {
						t = s
					}
				}
			}
			markup.Types = append(markup.Types, t)
			markup.Data = append(markup.Data, item)
		}
	})

	return markup
}
