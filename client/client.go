// Package client implements the Blaaiz request layer: one authenticated
// HTTP exchange per call, with retry, backoff and uniform error
// classification.
package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	fastshot "github.com/opus-domini/fast-shot"

	"github.com/Blaaiz/blaaiz-go/config"
	"github.com/Blaaiz/blaaiz-go/types"
	"github.com/Blaaiz/blaaiz-go/utils"
	"github.com/Blaaiz/blaaiz-go/utils/logger"
)

// UserAgent identifies the SDK on every outbound request.
const UserAgent = "blaaiz-go-sdk/1.0.0"

// Client issues authenticated requests against the Blaaiz API. It holds no
// mutable state beyond its immutable configuration and is safe for
// concurrent use.
//
// Retry semantics: transport failures, 429 and 5xx responses are retried
// with exponential backoff and jitter, for every verb. The gateway documents
// retried requests carrying the same logical payload as idempotent-safe;
// that is an assumption the client cannot verify, so integrators who cannot
// tolerate a duplicate side effect should cap a call with WithMaxAttempts(1).
type Client struct {
	config *config.ClientConfiguration
	pool   *http.Client
}

// New validates cfg and builds a client. The API key is mandatory; every
// zero field falls back to the SDK default.
func New(cfg *config.ClientConfiguration) (*Client, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, types.NewValidationError("API key is required")
	}

	defaults := config.ClientConfig()
	resolved := *cfg
	if resolved.BaseURL == "" {
		resolved.BaseURL = defaults.BaseURL
	}
	resolved.BaseURL = strings.TrimRight(resolved.BaseURL, "/")
	if resolved.Timeout <= 0 {
		resolved.Timeout = defaults.Timeout
	}
	if resolved.MaxRetries <= 0 {
		resolved.MaxRetries = defaults.MaxRetries
	}
	if resolved.RetryBackoff <= 0 {
		resolved.RetryBackoff = defaults.RetryBackoff
	}
	if resolved.RetryBackoffCap <= 0 {
		resolved.RetryBackoffCap = defaults.RetryBackoffCap
	}
	if resolved.UploadConcurrency <= 0 {
		resolved.UploadConcurrency = defaults.UploadConcurrency
	}

	return &Client{
		config: &resolved,
		pool:   utils.NewPooledHTTPClient(resolved.Timeout),
	}, nil
}

// Config exposes the resolved immutable configuration.
func (c *Client) Config() config.ClientConfiguration {
	return *c.config
}

// Close releases idle pooled connections.
func (c *Client) Close() {
	utils.CloseIdleConnections(c.pool)
}

// Do performs one logical API call: build, send, retry, classify. body is
// serialized as JSON unless the call is declared multipart via
// WithMultipart. On success the parsed response envelope is returned; every
// failure is a *types.APIError.
func (c *Client) Do(ctx context.Context, method, path string, body interface{}, opts ...RequestOption) (*types.APIResponse, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	ro := requestOptions{
		timeout:     c.config.Timeout,
		maxAttempts: c.config.MaxRetries,
	}
	for _, opt := range opts {
		opt(&ro)
	}
	if ro.maxAttempts < 1 {
		ro.maxAttempts = 1
	}

	method = strings.ToUpper(method)
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
	default:
		return nil, &types.APIError{
			Message:    fmt.Sprintf("unsupported HTTP method: %s", method),
			StatusCode: 0,
			Code:       types.CodeRequestError,
		}
	}
	requestID := uuid.New().String()

	var lastErr *types.APIError
	for attempt := 0; attempt < ro.maxAttempts; attempt++ {
		if attempt > 0 {
			delay := utils.BackoffDelay(attempt-1, c.config.RetryBackoff, c.config.RetryBackoffCap)
			logger.WithFields(logger.Fields{
				"method":     method,
				"path":       path,
				"request_id": requestID,
				"attempt":    attempt + 1,
				"delay":      delay.String(),
			}).Debug("retrying request")
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, &types.APIError{
					Message:    fmt.Sprintf("request canceled: %v", ctx.Err()),
					StatusCode: 0,
					Code:       types.CodeRequestError,
				}
			}
		}
		if err := ctx.Err(); err != nil {
			return nil, &types.APIError{
				Message:    fmt.Sprintf("request canceled: %v", err),
				StatusCode: 0,
				Code:       types.CodeRequestError,
			}
		}

		res, apiErr := c.send(method, path, body, &ro, requestID)
		if apiErr == nil {
			return res, nil
		}
		lastErr = apiErr

		if !apiErr.IsTransport() && !utils.IsRetryableStatus(apiErr.StatusCode) {
			return nil, apiErr
		}
	}

	return nil, lastErr
}

// send performs a single attempt and classifies its outcome.
func (c *Client) send(method, path string, body interface{}, ro *requestOptions, requestID string) (*types.APIResponse, *types.APIError) {
	if ro.multipart != nil {
		return c.sendMultipart(method, path, ro, requestID)
	}

	headers := map[string]string{
		"x-blaaiz-api-key": c.config.APIKey,
		"Accept":           "application/json",
		"User-Agent":       UserAgent,
		"x-request-id":     requestID,
	}
	if body != nil {
		headers["Content-Type"] = "application/json"
	}

	cli := fastshot.NewClient(c.config.BaseURL).
		Config().SetTimeout(ro.timeout).
		Header().AddAll(headers).
		Build()

	var res fastshot.Response
	var sendErr error

	switch method {
	case http.MethodGet:
		if len(ro.query) > 0 {
			res, sendErr = cli.GET(path).Query().AddParams(ro.query).Send()
		} else {
			res, sendErr = cli.GET(path).Send()
		}
	case http.MethodPost:
		if body != nil {
			res, sendErr = cli.POST(path).Body().AsJSON(body).Send()
		} else {
			res, sendErr = cli.POST(path).Send()
		}
	case http.MethodPut:
		if body != nil {
			res, sendErr = cli.PUT(path).Body().AsJSON(body).Send()
		} else {
			res, sendErr = cli.PUT(path).Send()
		}
	case http.MethodPatch:
		if body != nil {
			res, sendErr = cli.PATCH(path).Body().AsJSON(body).Send()
		} else {
			res, sendErr = cli.PATCH(path).Send()
		}
	default:
		// Do validated the method; anything left is DELETE.
		res, sendErr = cli.DELETE(path).Send()
	}

	if sendErr != nil {
		return nil, &types.APIError{
			Message:    fmt.Sprintf("request failed: %v", sendErr),
			StatusCode: 0,
			Code:       types.CodeRequestError,
		}
	}

	return classify(res.RawResponse)
}

// classify turns a raw HTTP response into either a response envelope or an
// API error built from the body's error fields.
func classify(raw *http.Response) (*types.APIResponse, *types.APIError) {
	data, err := utils.ParseJSONResponse(raw)
	if err != nil {
		return nil, &types.APIError{
			Message:    fmt.Sprintf("failed to read response: %v", err),
			StatusCode: 0,
			Code:       types.CodeRequestError,
		}
	}

	if raw.StatusCode < 200 || raw.StatusCode >= 300 {
		message := fmt.Sprintf("HTTP %d error", raw.StatusCode)
		if m, ok := data["message"].(string); ok && m != "" {
			message = m
		}
		code := types.CodeHTTPError
		if cd, ok := data["code"].(string); ok && cd != "" {
			code = cd
		}
		return nil, &types.APIError{
			Message:    message,
			StatusCode: raw.StatusCode,
			Code:       code,
		}
	}

	return &types.APIResponse{
		Data:    data,
		Status:  raw.StatusCode,
		Headers: raw.Header,
	}, nil
}
