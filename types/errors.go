package types

import "fmt"

// Kind is the machine-readable classification of a request failure.
type Kind string

const (
	KindInvalidTarget    Kind = "INVALID_TARGET"
	KindMissingInput     Kind = "MISSING_INPUT"
	KindNoContent        Kind = "NO_CONTENT"
	KindFetchTimeout     Kind = "FETCH_TIMEOUT"
	KindFetchTooLarge    Kind = "FETCH_TOO_LARGE"
	KindFetchHTTPError   Kind = "FETCH_HTTP_ERROR"
	KindTooManyRedirects Kind = "TOO_MANY_REDIRECTS"
	KindInvalidContent   Kind = "INVALID_CONTENT"
	KindUnextractable    Kind = "UNEXTRACTABLE_CONTENT"
	KindAITimeout        Kind = "AI_TIMEOUT"
	KindAIError          Kind = "AI_ERROR"
	KindAIRateLimited    Kind = "AI_RATE_LIMITED"
	KindInternal         Kind = "INTERNAL_ERROR"
)

// RequestError carries a failure kind plus a human-readable message.
// The message is safe to return to callers; wrapped internal detail is not.
type RequestError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *RequestError) Unwrap() error { return e.Err }

// NewError builds a RequestError without an underlying cause.
func NewError(kind Kind, message string) *RequestError {
	return &RequestError{Kind: kind, Message: message}
}

// WrapError builds a RequestError around an underlying cause.
func WrapError(kind Kind, message string, err error) *RequestError {
	return &RequestError{Kind: kind, Message: message, Err: err}
}
