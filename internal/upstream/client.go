// Package upstream contains typed HTTP clients for the remote hotel API.
// Every client is stateless: the bearer token is passed per call, supplied
// by the session layer. All errors surface either as *StatusError (the
// upstream answered with a non-2xx status) or wrap ErrUnavailable (the
// request never completed).
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/grandhorizon/booking-gateway/internal/api/metrics"
)

const defaultTimeout = 30 * time.Second

// ErrUnavailable marks transport-level failures: connection refused, DNS,
// timeouts outside the caller's own deadline.
var ErrUnavailable = errors.New("upstream unavailable")

// StatusError carries a non-2xx upstream response. Message is taken from
// the response body's error envelope when one is present.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.Code, e.Message)
}

// Client is the shared HTTP core the per-resource clients are built on.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// New creates a Client for the given base URL. A default timeout is
// applied when none is provided.
func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// call names a single upstream request. Endpoint is the logical name used
// as the metrics label.
type call struct {
	endpoint string
	method   string
	path     string
	query    url.Values
	token    string
	body     any
}

// errorEnvelope is the upstream's error body. Some endpoints use
// {"message": ...}, older ones {"error": ...}.
type errorEnvelope struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do performs a request and decodes a JSON response into out (may be nil).
func (c *Client) do(ctx context.Context, req call, out any) error {
	var body io.Reader
	if req.body != nil {
		raw, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", req.endpoint, err)
		}
		body = bytes.NewReader(raw)
	}

	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", req.endpoint, err)
	}
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	metrics.UpstreamRequestDuration.WithLabelValues(req.endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(req.endpoint, "transport_error").Inc()
		if ctxErr := ctx.Err(); ctxErr != nil {
			// The caller's deadline or cancellation, not an upstream fault.
			return ctxErr
		}
		c.log.Warn().Err(err).Str("endpoint", req.endpoint).Msg("upstream request failed")
		return fmt.Errorf("%s: %w", req.endpoint, ErrUnavailable)
	}
	defer resp.Body.Close()

	metrics.UpstreamRequestsTotal.WithLabelValues(req.endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Message: readErrorMessage(resp)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", req.endpoint, err)
	}
	return nil
}

// readErrorMessage extracts a human-readable message from an error
// response: the JSON envelope when the body is JSON, the raw text
// otherwise, a generic fallback when the body is empty.
func readErrorMessage(resp *http.Response) string {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(raw) == 0 {
		return http.StatusText(resp.StatusCode)
	}

	var env errorEnvelope
	if json.Unmarshal(raw, &env) == nil {
		if env.Message != "" {
			return env.Message
		}
		if env.Error != "" {
			return env.Error
		}
	}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 {
		return string(trimmed)
	}
	return http.StatusText(resp.StatusCode)
}
