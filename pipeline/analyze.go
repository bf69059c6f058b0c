package pipeline

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"contentiq/ai"
	"contentiq/analytics"
	"contentiq/cache"
	"contentiq/extract"
	"contentiq/types"
)

// AnalyzeRequest selects a URL for full analysis plus the summary parameters.
type AnalyzeRequest struct {
	URL              string
	SummaryFormat    types.SummaryFormat
	SummaryMaxLength int
}

// Analyze runs the full pipeline on one URL: extraction, SEO, deterministic
// analytics and both AI augmentations. The deterministic sections always
// succeed or fail the whole request; the two AI sections degrade
// independently, reported per section in the payload.
func (o *Orchestrator) Analyze(ctx context.Context, req AnalyzeRequest) (*types.AnalyzeData, bool, error) {
	if strings.TrimSpace(req.URL) == "" {
		return nil, false, types.NewError(types.KindMissingInput, "url is required")
	}
	format := req.SummaryFormat
	if format == "" {
		format = types.FormatTLDR
	}
	if !types.ValidSummaryFormat(format) {
		return nil, false, types.NewError(types.KindMissingInput,
			"summary_format must be one of tldr, bullets, key_takeaways, paragraph")
	}
	maxLength := req.SummaryMaxLength
	if maxLength <= 0 {
		maxLength = ai.DefaultSummaryWords
	}

	key := cache.Key("analyze", urlIdentity(req.URL), string(format), strconv.Itoa(maxLength))
	data, cached, err := viaCache(ctx, o, key, o.analyzeTTL, func(ctx context.Context) (*types.AnalyzeData, error) {
		ctx, cancel := context.WithTimeout(ctx, o.analyzeDeadline)
		defer cancel()
		return o.analyzeOne(ctx, req.URL, format, maxLength)
	})
	return data, cached, boundary(err)
}

func (o *Orchestrator) analyzeOne(ctx context.Context, rawURL string, format types.SummaryFormat, maxLength int) (*types.AnalyzeData, error) {
	start := time.Now()

	raw, err := o.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	doc, err := o.extractor.Extract(raw, extract.Options{OutputFormat: "text"})
	if err != nil {
		return nil, err
	}
	seo, err := extract.ExtractSEO(raw.HTML, raw.FinalURL)
	if err != nil {
		return nil, err
	}

	keywords := analytics.KeywordsFor(doc.Text)

	readability := doc.Readability
	if readability == nil {
		r := analytics.ComputeReadability(doc.Text)
		readability = &r
	}
	quality := analytics.ComputeQuality(qualityInput(doc, seo, readability))

	result := &types.AnalyzeData{
		Content:  doc,
		SEO:      seo,
		Keywords: &keywords,
		Quality:  &quality,
		Sections: map[string]types.SectionStatus{
			"content":  {State: types.SectionPresent},
			"seo":      {State: types.SectionPresent},
			"keywords": {State: types.SectionPresent},
			"quality":  {State: types.SectionPresent},
		},
	}

	// The two oracle calls run concurrently and fail independently; a
	// failure degrades its section instead of the request.
	var wg sync.WaitGroup
	var summary *types.SummaryData
	var sentiment *types.SentimentData
	var summaryErr, sentimentErr error

	if o.oracle != nil {
		wg.Add(2)
		go func() {
			defer wg.Done()
			summary, summaryErr = o.oracle.Summarize(ctx, ai.SummarizeRequest{
				Text:      doc.Text,
				Format:    format,
				MaxLength: maxLength,
				Language:  doc.Language,
				SourceURL: doc.URL,
			})
		}()
		go func() {
			defer wg.Done()
			sentiment, sentimentErr = o.oracle.Sentiment(ctx, doc.Text, doc.URL)
		}()
		wg.Wait()
	} else {
		noProvider := types.NewError(types.KindAIError, "no AI provider is configured")
		summaryErr, sentimentErr = noProvider, noProvider
	}

	if summaryErr != nil {
		o.logger.Warn("summary section degraded", "url", doc.URL, "error", summaryErr)
		result.Sections["summary"] = degradedStatus(summaryErr)
		result.Partial = true
	} else {
		result.Summary = summary
		result.Sections["summary"] = types.SectionStatus{State: types.SectionPresent}
	}
	if sentimentErr != nil {
		o.logger.Warn("sentiment section degraded", "url", doc.URL, "error", sentimentErr)
		result.Sections["sentiment"] = degradedStatus(sentimentErr)
		result.Partial = true
	} else {
		result.Sentiment = sentiment
		result.Sections["sentiment"] = types.SectionStatus{State: types.SectionPresent}
	}

	result.TotalProcessingTimeMs = time.Since(start).Milliseconds()
	return result, nil
}

// degradedStatus reports a section failure without leaking internal detail.
func degradedStatus(err error) types.SectionStatus {
	reason := "upstream AI failure"
	var reqErr *types.RequestError
	if errors.As(err, &reqErr) {
		reason = string(reqErr.Kind)
	}
	return types.SectionStatus{State: types.SectionDegraded, Reason: reason}
}

// qualityInput maps a document and its SEO snapshot onto the quality signals.
func qualityInput(doc *types.ExtractedDocument, seo *types.SEOData, r *types.ReadabilityMetrics) analytics.QualityInput {
	og := seo.OpenGraph
	return analytics.QualityInput{
		WordCount:          doc.WordCount,
		SentenceCount:      r.SentenceCount,
		FleschReadingEase:  r.FleschReadingEase,
		H1Count:            len(seo.H1Tags),
		H2Count:            len(seo.H2Tags),
		TotalImages:        seo.TotalImages,
		ImagesWithoutAlt:   seo.ImagesWithoutAlt,
		InternalLinks:      seo.InternalLinks,
		ExternalLinks:      seo.ExternalLinks,
		HasMetaDescription: seo.MetaDescription != "",
		HasCanonical:       seo.CanonicalURL != "",
		HasOpenGraph:       og.Title != "" || og.Description != "" || og.Image != "",
		HasSchemaMarkup:    len(seo.SchemaMarkup.Types) > 0,
	}
}
