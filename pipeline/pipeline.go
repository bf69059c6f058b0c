// Package pipeline composes validation, fetching, extraction, analytics and
// AI augmentation into the six cached operations: extract, seo, summarize,
// sentiment, analyze and compare. Every operation is memoized under a request
// fingerprint with at most one concurrent computation per fingerprint.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"contentiq/ai"
	"contentiq/cache"
	"contentiq/config"
	"contentiq/extract"
	"contentiq/fetch"
	"contentiq/types"
	"contentiq/urlcheck"
)

// Fetcher retrieves a raw page for a target URL, enforcing target policy.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*fetch.RawDocument, error)
}

// Orchestrator runs the pipeline operations. The AI oracle may be nil, in
// which case summarize/sentiment fail typed and analyze degrades those
// sections.
type Orchestrator struct {
	fetcher   Fetcher
	extractor *extract.Extractor
	oracle    ai.Oracle
	cache     *cache.Cache
	logger    *slog.Logger

	analyzeDeadline time.Duration
	extractTTL      time.Duration
	analyzeTTL      time.Duration
	aiTTL           time.Duration
	compareTTL      time.Duration
}

// New wires an orchestrator from its components.
func New(fetcher Fetcher, extractor *extract.Extractor, oracle ai.Oracle, c *cache.Cache, cfg config.Config, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		fetcher:         fetcher,
		extractor:       extractor,
		oracle:          oracle,
		cache:           c,
		logger:          logger,
		analyzeDeadline: cfg.AnalyzeDeadline,
		extractTTL:      cfg.ExtractTTL,
		analyzeTTL:      cfg.AnalyzeTTL,
		aiTTL:           cfg.AITTL,
		compareTTL:      cfg.CompareTTL,
	}
}

// boundary converts unexpected internal failures to an opaque error so
// implementation detail never leaks to callers. Typed request errors pass
// through unchanged.
func boundary(err error) error {
	if err == nil {
		return nil
	}
	var reqErr *types.RequestError
	if errors.As(err, &reqErr) {
		return reqErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return types.WrapError(types.KindFetchTimeout, "operation deadline exceeded", err)
	}
	return types.WrapError(types.KindInternal, "internal error", err)
}

// urlIdentity is the canonical cache identity of a URL target.
func urlIdentity(rawURL string) string {
	return urlcheck.Canonicalize(rawURL)
}

// textIdentity is the cache identity of a raw-text target. The prefix keeps
// text inputs from ever colliding with URL inputs.
func textIdentity(text string) string {
	return "text:" + text
}

// viaCache memoizes fn's JSON-encoded result under key. A corrupt cached
// payload is dropped and recomputed rather than failing the request.
func viaCache[T any](ctx context.Context, o *Orchestrator, key string, ttl time.Duration, fn func(context.Context) (*T, error)) (*T, bool, error) {
	payload, cached, err := o.cache.GetOrCompute(ctx, key, ttl, func(ctx context.Context) ([]byte, error) {
		v, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(v)
	})
	if err != nil {
		return nil, false, err
	}

	out := new(T)
	if err := json.Unmarshal(payload, out); err != nil {
		o.logger.Warn("dropping corrupt cache payload", "key", key, "error", err)
		v, err := fn(ctx)
		if err != nil {
			return nil, false, err
		}
		return v, false, nil
	}
	return out, cached, nil
}
