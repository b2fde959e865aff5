// Package alphavantage is a typed client for the Alpha Vantage financial-data
// web service: quotes, time series, symbol search, dividends, earnings
// estimates, and treasury yields.
//
// Every typed operation performs one HTTP GET, parses the JSON body into an
// entity, and wraps it in a Response envelope. "Not found" and malformed-field
// conditions degrade into the envelope; transport failures and structural
// problems (symbol mismatch, bad metadata) come back as errors.
package alphavantage

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/tudormobile/alphavantage-go/internal/jsonval"
)

const defaultBaseURL = "https://www.alphavantage.co"

// Config carries everything needed to construct a Client. Only APIKey is
// required.
type Config struct {
	// APIKey authenticates requests. Must not be blank.
	APIKey string
	// BaseURL overrides the production endpoint, mainly for tests.
	BaseURL string
	// HTTPClient, when set, is used as the underlying transport. A fresh
	// client is created otherwise.
	HTTPClient *http.Client
	// Timeout applies per request. Zero means no client-side timeout.
	Timeout time.Duration
	// Logger receives request/response diagnostics. Defaults to a no-op.
	Logger *zerolog.Logger
}

// Client calls the Alpha Vantage API. It is safe for concurrent use; each call
// is an independent request with no shared mutable state.
type Client struct {
	http   *resty.Client
	apiKey string
	log    zerolog.Logger
}

// NewClient validates cfg and builds a Client.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, &APIError{Message: "API key cannot be blank", Err: ErrInvalidAPIKey}
	}

	var rc *resty.Client
	if cfg.HTTPClient != nil {
		rc = resty.NewWithClient(cfg.HTTPClient)
	} else {
		rc = resty.New()
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	rc.SetBaseURL(baseURL)
	if cfg.Timeout > 0 {
		rc.SetTimeout(cfg.Timeout)
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}
	logger.Debug().Msg("alphavantage client initialized")

	return &Client{http: rc, apiKey: cfg.APIKey, log: logger}, nil
}

// QueryJSON fetches the raw JSON body for fn with the given query parameters.
// The function and apikey parameters are supplied by the client.
func (c *Client) QueryJSON(ctx context.Context, fn Function, params map[string]string) ([]byte, error) {
	target := paramsString(params)
	c.log.Debug().Str("function", fn.String()).Str("query", target).Msg("requesting json data")

	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("function", fn.String()).
		SetQueryParam("apikey", c.apiKey).
		SetQueryParams(params).
		Get("/query")
	if err != nil {
		c.log.Error().Err(err).Str("function", fn.String()).Str("query", target).Msg("request failed")
		return nil, transportError(fn, target, 0, err)
	}

	switch status := resp.StatusCode(); {
	case status == http.StatusTooManyRequests:
		c.log.Warn().Str("function", fn.String()).Str("query", target).Msg("rate limit hit")
		return nil, rateLimitError(status)
	case status == http.StatusUnauthorized:
		return nil, authError(status)
	case status < 200 || status > 299:
		c.log.Error().Int("status", status).Str("function", fn.String()).Str("query", target).Msg("request failed")
		return nil, transportError(fn, target, status, nil)
	}

	c.log.Info().
		Str("function", fn.String()).
		Str("query", target).
		Dur("elapsed", time.Since(start)).
		Msg("fetched json data")
	return resp.Body(), nil
}

// QueryDocument fetches and decodes the JSON document for fn.
func (c *Client) QueryDocument(ctx context.Context, fn Function, params map[string]string) (jsonval.Object, error) {
	body, err := c.QueryJSON(ctx, fn, params)
	if err != nil {
		return nil, err
	}
	doc, err := jsonval.Parse(body)
	if err != nil {
		return nil, transportError(fn, paramsString(params), 0, err)
	}
	return doc, nil
}

// symbolDocument fetches the document for a single-symbol (or keywords)
// operation.
func (c *Client) symbolDocument(ctx context.Context, fn Function, symbolOrKeywords string) (jsonval.Object, error) {
	if strings.TrimSpace(symbolOrKeywords) == "" {
		return nil, errBlankSymbol
	}
	return c.QueryDocument(ctx, fn, map[string]string{fn.symbolParam(): symbolOrKeywords})
}

func paramsString(params map[string]string) string {
	if len(params) == 0 {
		return "(none)"
	}
	parts := make([]string, 0, len(params))
	for k, v := range params {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}
