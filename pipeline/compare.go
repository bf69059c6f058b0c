package pipeline

import (
	"context"
	"math"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"contentiq/analytics"
	"contentiq/cache"
	"contentiq/types"
)

const maxCompareKeywords = 20

// CompareRequest names the two URLs to compare.
type CompareRequest struct {
	URL1 string
	URL2 string
}

// Compare analyzes two URLs and reports keyword similarity plus word-count
// and readability deltas. Each document comes through the cached extract
// path, so comparing against an already-extracted URL costs one fetch.
func (o *Orchestrator) Compare(ctx context.Context, req CompareRequest) (*types.CompareData, bool, error) {
	if strings.TrimSpace(req.URL1) == "" || strings.TrimSpace(req.URL2) == "" {
		return nil, false, types.NewError(types.KindMissingInput, "url1 and url2 are both required")
	}
	if urlIdentity(req.URL1) == urlIdentity(req.URL2) {
		return nil, false, types.NewError(types.KindMissingInput, "url1 and url2 must be different pages")
	}

	key := cache.Key("compare", urlIdentity(req.URL1), urlIdentity(req.URL2))
	data, cached, err := viaCache(ctx, o, key, o.compareTTL, func(ctx context.Context) (*types.CompareData, error) {
		start := time.Now()

		var doc1, doc2 *types.ExtractedDocument
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			doc1, err = o.resolveDocument(gctx, req.URL1)
			return err
		})
		g.Go(func() error {
			var err error
			doc2, err = o.resolveDocument(gctx, req.URL2)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

		p1 := analytics.Profile(doc1.Text)
		p2 := analytics.Profile(doc2.Text)

		result := &types.CompareData{
			URL1:            doc1.URL,
			URL2:            doc2.URL,
			SimilarityScore: analytics.Similarity(p1, p2),
			SharedKeywords:  capKeywords(analytics.SharedKeywords(p1, p2)),
			UniqueToURL1:    capKeywords(analytics.UniqueKeywords(p1, p2)),
			UniqueToURL2:    capKeywords(analytics.UniqueKeywords(p2, p1)),
			WordCountDiff:   doc1.WordCount - doc2.WordCount,
		}

		if doc1.Readability != nil && doc2.Readability != nil {
			r1, r2 := doc1.Readability, doc2.Readability
			result.ReadabilityDiff = map[string]float64{
				"flesch_reading_ease":  roundDiff(r1.FleschReadingEase - r2.FleschReadingEase),
				"flesch_kincaid_grade": roundDiff(r1.FleschKincaidGrade - r2.FleschKincaidGrade),
				"avg_grade_level":      roundDiff(r1.AvgGradeLevel - r2.AvgGradeLevel),
			}
			result.ReadingLevel1 = r1.ReadingLevel
			result.ReadingLevel2 = r2.ReadingLevel
		}

		result.ProcessingTimeMs = time.Since(start).Milliseconds()
		return result, nil
	})
	return data, cached, boundary(err)
}

func capKeywords(kws []string) []string {
	if len(kws) > maxCompareKeywords {
		return kws[:maxCompareKeywords]
	}
	return kws
}

// roundDiff keeps deltas at the same one-decimal precision as the scores.
func roundDiff(v float64) float64 {
	return math.Round(v*10) / 10
}
