package ai

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
	"github.com/cohere-ai/cohere-go/v2/core"

	"contentiq/types"
)

// Input truncation limits, in characters. Sentiment needs far less text
// than summarization to produce a stable verdict.
const sentimentInputLimit = 10000

// CohereOracle implements Oracle against the Cohere Chat API.
type CohereOracle struct {
	client   *cohereclient.Client
	model    string
	timeout  time.Duration
	maxChars int
}

// NewCohere builds a Cohere-backed oracle. The HTTP client forces HTTP/1.1;
// the Cohere edge intermittently resets HTTP/2 streams on long requests.
func NewCohere(apiKey, model string, timeout time.Duration, maxChars int) *CohereOracle {
	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
			ForceAttemptHTTP2: false,
		},
	}
	client := cohereclient.NewClient(
		cohereclient.WithToken(apiKey),
		cohereclient.WithHTTPClient(httpClient),
	)
	return &CohereOracle{client: client, model: model, timeout: timeout, maxChars: maxChars}
}

// Summarize generates a summary in the requested format.
func (o *CohereOracle) Summarize(ctx context.Context, req SummarizeRequest) (*types.SummaryData, error) {
	if !types.ValidSummaryFormat(req.Format) {
		return nil, types.NewError(types.KindMissingInput, "unsupported summary format "+quoteLabel(string(req.Format)))
	}
	maxWords := req.MaxLength
	if maxWords <= 0 {
		maxWords = DefaultSummaryWords
	}

	text := req.Text
	if o.maxChars > 0 && len(text) > o.maxChars {
		text = truncateAtRune(text, o.maxChars)
	}

	start := time.Now()
	out, err := o.chat(ctx, summaryPreamble(req.Format, maxWords, req.Language), text, 0.3)
	if err != nil {
		return nil, err
	}

	summary := strings.TrimSpace(out)
	if summary == "" {
		return nil, types.NewError(types.KindAIError, "model returned an empty summary")
	}

	return &types.SummaryData{
		OriginalURL:       req.SourceURL,
		Format:            req.Format,
		Summary:           summary,
		WordCount:         len(strings.Fields(summary)),
		OriginalWordCount: len(strings.Fields(req.Text)),
		Language:          req.Language,
		ModelUsed:         o.model,
		ProcessingTimeMs:  time.Since(start).Milliseconds(),
	}, nil
}

// Sentiment classifies the text's sentiment via a strict-JSON prompt.
func (o *CohereOracle) Sentiment(ctx context.Context, text, sourceURL string) (*types.SentimentData, error) {
	if len(text) > sentimentInputLimit {
		text = truncateAtRune(text, sentimentInputLimit)
	}

	start := time.Now()
	out, err := o.chat(ctx, sentimentPreamble, text, 0.1)
	if err != nil {
		return nil, err
	}

	data, err := parseSentiment(out)
	if err != nil {
		return nil, err
	}
	data.OriginalURL = sourceURL
	data.ModelUsed = o.model
	data.ProcessingTimeMs = time.Since(start).Milliseconds()
	return data, nil
}

func (o *CohereOracle) chat(ctx context.Context, preamble, message string, temperature float64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	resp, err := o.client.Chat(ctx, &cohere.ChatRequest{
		Message:     message,
		Model:       cohere.String(o.model),
		Preamble:    cohere.String(preamble),
		Temperature: cohere.Float64(temperature),
	})
	if err != nil {
		return "", classifyChatError(err)
	}
	if resp == nil || resp.Text == "" {
		return "", types.NewError(types.KindAIError, "model returned an empty response")
	}
	return resp.Text, nil
}

// classifyChatError maps transport and provider failures to typed errors.
func classifyChatError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return types.WrapError(types.KindAITimeout, "model call timed out", err)
	}
	var apiErr *core.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusTooManyRequests {
			return types.WrapError(types.KindAIRateLimited, "model provider rate limit exceeded", err)
		}
		return types.WrapError(types.KindAIError, "model provider request failed", err)
	}
	return types.WrapError(types.KindAIError, "model call failed", err)
}

// truncateAtRune cuts s at limit bytes without splitting a multi-byte rune,
// so truncated input stays valid UTF-8 for the provider payload.
func truncateAtRune(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
