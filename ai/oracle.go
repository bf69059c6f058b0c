// Package ai talks to the language-model provider for the two augmentation
// operations: summarization and sentiment analysis. The provider is treated
// as an opaque oracle; everything it returns is validated before it reaches
// a caller, and every failure maps to a typed error so the pipeline can
// degrade instead of guessing.
package ai

import (
	"context"

	"contentiq/types"
)

// SummarizeRequest carries one summarization call's inputs.
type SummarizeRequest struct {
	Text      string
	Format    types.SummaryFormat
	MaxLength int
	Language  string
	SourceURL string
}

// Oracle is the language-model provider abstraction.
type Oracle interface {
	Summarize(ctx context.Context, req SummarizeRequest) (*types.SummaryData, error)
	Sentiment(ctx context.Context, text, sourceURL string) (*types.SentimentData, error)
}

// DefaultSummaryWords is the word budget used when a request does not set one.
const DefaultSummaryWords = 200
