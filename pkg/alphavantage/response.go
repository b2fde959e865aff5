package alphavantage

import (
	"strings"

	"github.com/tudormobile/alphavantage-go/internal/jsonval"
)

// Response is the uniform envelope returned by every typed operation. A lookup
// either produced a Result or an ErrorMessage, never both.
type Response[T any] struct {
	Result       *T
	ErrorMessage string
}

// IsSuccess reports whether the lookup produced usable data.
func (r *Response[T]) IsSuccess() bool {
	return r.ErrorMessage == "" && r.Result != nil
}

// newResponse wraps a parsed entity, or its absence, into an envelope. When the
// entity is nil the error message is pulled from the response document itself
// where possible, falling back to defaultMsg.
func newResponse[T any](result *T, doc jsonval.Object, defaultMsg string) *Response[T] {
	if result != nil {
		return &Response[T]{Result: result}
	}
	return &Response[T]{ErrorMessage: findErrorMessage(doc, defaultMsg)}
}

// findErrorMessage picks the most specific error text the API offered. The
// "Information" field carries throttling and demo-key notices and wins over
// "Error Message"; blank or whitespace-only values fall through.
func findErrorMessage(doc jsonval.Object, defaultMsg string) string {
	if msg := doc.String("Information", ""); strings.TrimSpace(msg) != "" {
		return msg
	}
	if msg := doc.String("Error Message", ""); strings.TrimSpace(msg) != "" {
		return msg
	}
	return defaultMsg
}
