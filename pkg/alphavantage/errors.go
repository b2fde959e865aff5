package alphavantage

import (
	"errors"
	"fmt"
)

// Transport classification sentinels. Match with errors.Is.
var (
	// ErrRateLimited reports an HTTP 429 from the API.
	ErrRateLimited = errors.New("Rate limit exceeded")
	// ErrInvalidAPIKey reports an HTTP 401 from the API.
	ErrInvalidAPIKey = errors.New("Invalid API key")
)

// Structural parse failures. These indicate a request mistake or an untrustworthy
// response, never ordinary upstream data noise, so they surface as errors instead
// of degrading into a soft envelope.
var (
	// ErrSymbolMismatch reports a time-series response whose metadata names a
	// different symbol than the one requested.
	ErrSymbolMismatch = errors.New("symbol does not match response metadata")
	// ErrInvalidMetadata reports required response metadata that is missing or
	// unparsable, such as the last-refreshed date of a time series.
	ErrInvalidMetadata = errors.New("invalid response metadata")
	// ErrUnsupportedInterval reports a time-series interval the parser does not
	// handle. Only daily, weekly, and monthly series are supported.
	ErrUnsupportedInterval = errors.New("unsupported time series interval")
)

var errBlankSymbol = errors.New("symbol or keywords cannot be blank")

// APIError is a classified transport failure: rate limiting, authentication,
// or any other non-success HTTP exchange.
type APIError struct {
	Message    string
	StatusCode int
	Err        error
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Unwrap() error { return e.Err }

func rateLimitError(status int) *APIError {
	return &APIError{Message: ErrRateLimited.Error(), StatusCode: status, Err: ErrRateLimited}
}

func authError(status int) *APIError {
	return &APIError{Message: ErrInvalidAPIKey.Error(), StatusCode: status, Err: ErrInvalidAPIKey}
}

func transportError(fn Function, target string, status int, cause error) *APIError {
	msg := fmt.Sprintf("failed to fetch function '%s' for query '%s'", fn, target)
	if status > 0 {
		msg = fmt.Sprintf("%s: status %d", msg, status)
	}
	if cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, cause)
	}
	return &APIError{Message: msg, StatusCode: status, Err: cause}
}
