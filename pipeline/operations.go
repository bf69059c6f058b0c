package pipeline

import (
	"context"
	"strconv"
	"strings"

	"contentiq/ai"
	"contentiq/cache"
	"contentiq/extract"
	"contentiq/types"
)

// ExtractRequest selects a URL and the optional parts of extraction output.
type ExtractRequest struct {
	URL           string
	IncludeImages bool
	IncludeLinks  bool
	OutputFormat  string // "text" (default) or "markdown"
}

// SummarizeRequest targets either a URL or raw text, never both.
type SummarizeRequest struct {
	URL       string
	Text      string
	Format    types.SummaryFormat
	MaxLength int
	Language  string
}

// SentimentRequest targets either a URL or raw text, never both.
type SentimentRequest struct {
	URL  string
	Text string
}

// Extract fetches and extracts a URL into a normalized document.
func (o *Orchestrator) Extract(ctx context.Context, req ExtractRequest) (*types.ExtractedDocument, bool, error) {
	if strings.TrimSpace(req.URL) == "" {
		return nil, false, types.NewError(types.KindMissingInput, "url is required")
	}
	format := req.OutputFormat
	if format == "" {
		format = "text"
	}
	if format != "text" && format != "markdown" {
		return nil, false, types.NewError(types.KindMissingInput, "output_format must be \"text\" or \"markdown\"")
	}

	key := cache.Key("extract", urlIdentity(req.URL),
		strconv.FormatBool(req.IncludeImages), strconv.FormatBool(req.IncludeLinks), format)

	doc, cached, err := viaCache(ctx, o, key, o.extractTTL, func(ctx context.Context) (*types.ExtractedDocument, error) {
		raw, err := o.fetcher.Fetch(ctx, req.URL)
		if err != nil {
			return nil, err
		}
		return o.extractor.Extract(raw, extract.Options{
			IncludeImages: req.IncludeImages,
			IncludeLinks:  req.IncludeLinks,
			OutputFormat:  format,
		})
	})
	return doc, cached, boundary(err)
}

// SEO fetches a URL and reports its SEO metadata snapshot.
func (o *Orchestrator) SEO(ctx context.Context, rawURL string) (*types.SEOData, bool, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, false, types.NewError(types.KindMissingInput, "url is required")
	}

	key := cache.Key("seo", urlIdentity(rawURL))
	data, cached, err := viaCache(ctx, o, key, o.extractTTL, func(ctx context.Context) (*types.SEOData, error) {
		raw, err := o.fetcher.Fetch(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		return extract.ExtractSEO(raw.HTML, raw.FinalURL)
	})
	return data, cached, boundary(err)
}

// Summarize produces an AI summary for a URL's content or caller-supplied text.
func (o *Orchestrator) Summarize(ctx context.Context, req SummarizeRequest) (*types.SummaryData, bool, error) {
	identity, err := targetIdentity(req.URL, req.Text)
	if err != nil {
		return nil, false, err
	}
	format := req.Format
	if format == "" {
		format = types.FormatTLDR
	}
	if !types.ValidSummaryFormat(format) {
		return nil, false, types.NewError(types.KindMissingInput,
			"format must be one of tldr, bullets, key_takeaways, paragraph")
	}
	if o.oracle == nil {
		return nil, false, types.NewError(types.KindAIError, "no AI provider is configured")
	}

	maxLength := req.MaxLength
	if maxLength <= 0 {
		maxLength = ai.DefaultSummaryWords
	}

	key := cache.Key("summary", identity, string(format), strconv.Itoa(maxLength), req.Language)
	data, cached, err := viaCache(ctx, o, key, o.aiTTL, func(ctx context.Context) (*types.SummaryData, error) {
		text := req.Text
		language := req.Language
		sourceURL := ""
		if req.URL != "" {
			doc, err := o.resolveDocument(ctx, req.URL)
			if err != nil {
				return nil, err
			}
			text = doc.Text
			sourceURL = doc.URL
			if language == "" {
				language = doc.Language
			}
		}
		if language == "" {
			language = "en"
		}
		return o.oracle.Summarize(ctx, ai.SummarizeRequest{
			Text:      text,
			Format:    format,
			MaxLength: maxLength,
			Language:  language,
			SourceURL: sourceURL,
		})
	})
	return data, cached, boundary(err)
}

// Sentiment classifies the sentiment of a URL's content or caller-supplied text.
func (o *Orchestrator) Sentiment(ctx context.Context, req SentimentRequest) (*types.SentimentData, bool, error) {
	identity, err := targetIdentity(req.URL, req.Text)
	if err != nil {
		return nil, false, err
	}
	if o.oracle == nil {
		return nil, false, types.NewError(types.KindAIError, "no AI provider is configured")
	}

	key := cache.Key("sentiment", identity)
	data, cached, err := viaCache(ctx, o, key, o.aiTTL, func(ctx context.Context) (*types.SentimentData, error) {
		text := req.Text
		sourceURL := ""
		if req.URL != "" {
			doc, err := o.resolveDocument(ctx, req.URL)
			if err != nil {
				return nil, err
			}
			text = doc.Text
			sourceURL = doc.URL
		}
		return o.oracle.Sentiment(ctx, text, sourceURL)
	})
	return data, cached, boundary(err)
}

// resolveDocument runs the cached extract path for AI operations that take a
// URL target, so a summarize after an extract reuses the fetched document.
func (o *Orchestrator) resolveDocument(ctx context.Context, rawURL string) (*types.ExtractedDocument, error) {
	doc, _, err := o.Extract(ctx, ExtractRequest{URL: rawURL})
	return doc, err
}

// targetIdentity validates url/text mutual exclusivity and returns the cache
// identity of whichever was provided.
func targetIdentity(rawURL, text string) (string, error) {
	hasURL := strings.TrimSpace(rawURL) != ""
	hasText := strings.TrimSpace(text) != ""
	switch {
	case hasURL && hasText:
		return "", types.NewError(types.KindMissingInput, "provide either url or text, not both")
	case hasURL:
		return urlIdentity(rawURL), nil
	case hasText:
		return textIdentity(text), nil
	default:
		return "", types.NewError(types.KindMissingInput, "either url or text is required")
	}
}
