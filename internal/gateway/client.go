package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/carry9637/cryptocurrency-dashboard/pkg/config"
)

// Behavioral constants of the retry policy. These are fixed for
// compatibility with the upstream rate budget, not configuration.
const (
	requestTimeout = 15 * time.Second
	retryBackoff   = 2 * time.Second
	maxAttempts    = 3
)

// Client wraps outbound calls to the upstream pricing service with timeout,
// classification, and a bounded constant-backoff retry policy. It holds no
// UI state; the only per-call state is the attempt counter.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *logrus.Entry
	backoff    time.Duration
}

// NewClient creates a new gateway client.
func NewClient(cfg *config.APIConfig, logger *logrus.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.Key,
		logger:  logger.WithField("component", "gateway"),
		backoff: retryBackoff,
	}
}

// Request performs a GET against the upstream endpoint and returns the raw
// JSON payload. RateLimited and NetworkUnavailable failures are retried up
// to maxAttempts total tries with a constant backoff between them; any other
// failure class propagates immediately. The terminal error carries the
// number of attempts made.
func (c *Client) Request(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error) {
	requestID := uuid.NewString()

	var lastErr *Error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		raw, gerr := c.do(ctx, endpoint, params)
		if gerr == nil {
			return raw, nil
		}
		gerr.Attempts = attempt
		lastErr = gerr

		if !gerr.Kind.Retryable() || attempt == maxAttempts {
			break
		}

		// Diagnostic only: retries are observable but do not change the
		// caller-visible contract.
		c.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"endpoint":   endpoint,
			"attempt":    attempt,
			"max":        maxAttempts,
			"cause":      gerr.Kind.String(),
		}).Warn("Upstream call failed, backing off before retry")

		select {
		case <-time.After(c.backoff):
		case <-ctx.Done():
			return nil, &Error{Kind: KindTimeout, Endpoint: endpoint, Attempts: attempt, Err: ctx.Err()}
		}
	}

	return nil, lastErr
}

// do executes a single attempt.
func (c *Client) do(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, *Error) {
	fullURL := c.baseURL + endpoint
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, &Error{Kind: KindMalformedResponse, Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-cg-demo-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: classifyTransport(err), Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &Error{Kind: KindRateLimited, Endpoint: endpoint, Status: resp.StatusCode}
	case resp.StatusCode == http.StatusNotFound:
		return nil, &Error{Kind: KindNotFound, Endpoint: endpoint, Status: resp.StatusCode}
	case resp.StatusCode != http.StatusOK:
		return nil, &Error{Kind: KindServerError, Endpoint: endpoint, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindNetworkUnavailable, Endpoint: endpoint, Err: err}
	}
	if !json.Valid(body) {
		return nil, &Error{Kind: KindMalformedResponse, Endpoint: endpoint, Status: resp.StatusCode}
	}

	return json.RawMessage(body), nil
}

// classifyTransport distinguishes a timed-out request from one that never
// reached the upstream at all.
func classifyTransport(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Timeout() {
		return KindTimeout
	}
	return KindNetworkUnavailable
}
