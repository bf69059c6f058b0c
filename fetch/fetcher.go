// Package fetch performs the outbound HTTP retrieval for the pipeline.
// Redirects are followed by an explicit loop so every hop is re-validated
// against the SSRF rules; a validated URL that redirects into a private
// network aborts the fetch.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"contentiq/types"
)

const userAgent = "ContentIQBot/1.0 (+content intelligence fetcher)"

// TargetValidator approves the initial URL and every redirect hop.
// *urlcheck.Validator is the production implementation.
type TargetValidator interface {
	Validate(ctx context.Context, raw string) (*url.URL, error)
}

// RawDocument is the body of a successfully fetched page.
type RawDocument struct {
	HTML        string
	FinalURL    string
	StatusCode  int
	ContentType string
}

// Client fetches pages with timeouts, a redirect cap and a streaming
// response-size cap.
type Client struct {
	httpClient   *http.Client
	validator    TargetValidator
	maxBodyBytes int64
	maxRedirects int
}

// NewClient builds a fetch client. The underlying http.Client never follows
// redirects itself; the loop in Fetch owns that.
func NewClient(validator TargetValidator, timeout time.Duration, maxBodyBytes int64, maxRedirects int) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		validator:    validator,
		maxBodyBytes: maxBodyBytes,
		maxRedirects: maxRedirects,
	}
}

// Fetch retrieves the page at raw, validating the target at the first hop
// and again at every redirect. Failures are typed; the fetcher itself never
// retries.
func (c *Client) Fetch(ctx context.Context, raw string) (*RawDocument, error) {
	current := raw

	for redirects := 0; ; redirects++ {
		if redirects > c.maxRedirects {
			return nil, types.NewError(types.KindTooManyRedirects,
				fmt.Sprintf("more than %d redirects", c.maxRedirects))
		}

		target, err := c.validator.Validate(ctx, current)
		if err != nil {
			return nil, err
		}

		resp, err := c.do(ctx, target)
		if err != nil {
			return nil, err
		}

		if isRedirect(resp.StatusCode) {
			loc := resp.Header.Get("Location")
			resp.Body.Close()
			if loc == "" {
				return nil, types.NewError(types.KindFetchHTTPError,
					fmt.Sprintf("redirect response %d without a Location header", resp.StatusCode))
			}
			next, err := target.Parse(loc)
			if err != nil {
				return nil, types.WrapError(types.KindInvalidTarget, "redirect target could not be parsed", err)
			}
			current = next.String()
			continue
		}

		return c.readBody(resp, target)
	}
}

func (c *Client) do(ctx context.Context, target *url.URL) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, types.WrapError(types.KindInvalidTarget, "request could not be built", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, types.WrapError(types.KindFetchTimeout, "the target URL took too long to respond", err)
		}
		return nil, types.WrapError(types.KindFetchHTTPError, "could not connect to the target URL", err)
	}
	return resp, nil
}

func (c *Client) readBody(resp *http.Response, target *url.URL) (*RawDocument, error) {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, types.NewError(types.KindFetchHTTPError,
			fmt.Sprintf("the target URL returned HTTP %d", resp.StatusCode))
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != "" {
		lower := strings.ToLower(contentType)
		if !strings.Contains(lower, "html") && !strings.Contains(lower, "text") {
			return nil, types.NewError(types.KindInvalidContent,
				fmt.Sprintf("URL returned unsupported content type %q, only HTML pages are supported", contentType))
		}
	}

	// Stream with a hard cap instead of buffering first; one byte past the
	// limit aborts the read.
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes+1))
	if err != nil {
		if isTimeout(err) {
			return nil, types.WrapError(types.KindFetchTimeout, "reading the response body timed out", err)
		}
		return nil, types.WrapError(types.KindFetchHTTPError, "reading the response body failed", err)
	}
	if int64(len(body)) > c.maxBodyBytes {
		return nil, types.NewError(types.KindFetchTooLarge,
			fmt.Sprintf("response exceeds the %d byte limit", c.maxBodyBytes))
	}

	return &RawDocument{
		HTML:        string(body),
		FinalURL:    target.String(),
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
	}, nil
}

func isRedirect(status int) bool {
	switch status {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		return true
	}
	return false
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
