// Package api implements the backend ports over HTTP.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/infra/metrics"

	"github.com/pkg/errors"
)

const (
	headerAuthorization = "Authorization"
	headerAccept        = "Accept"
	headerContentType   = "Content-Type"

	mimeJSON = "application/json"

	// maxLoggedBody caps how much of an error body ends up in the log.
	maxLoggedBody = 2048
)

// TokenSource yields the bearer token for the next request. An empty token sends no Authorization header.
type TokenSource interface {
	Token() string
}

// Client is the single shared sender for every backend call.
// It never retries; callers decide what to do with a failure.
type Client struct {
	baseURL   string
	origin    string
	mediaFrom string
	headers   map[string]string

	httpClient *http.Client
	tokens     TokenSource
	files      service.FileResolver
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// NewClient creates a Client from the api config section.
func NewClient(
	cfg config.APIConfig,
	tokens TokenSource,
	files service.FileResolver,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")

	headers := make(map[string]string, len(cfg.Headers))
	for k, v := range cfg.Headers {
		headers[http.CanonicalHeaderKey(k)] = v
	}

	return &Client{
		baseURL:    baseURL,
		origin:     originOf(baseURL),
		mediaFrom:  strings.TrimRight(cfg.MediaRewriteFrom, "/"),
		headers:    headers,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		tokens:     tokens,
		files:      files,
		metrics:    m,
		logger:     logger,
	}
}

// DoJSON sends body encoded as JSON (no body when nil) and decodes a 2xx response into out when out is not nil.
func (c *Client) DoJSON(ctx context.Context, method, path string, body, out any) error {
	var (
		payload     []byte
		contentType string
	)
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to marshal request body")
		}
		payload = data
		contentType = mimeJSON
	}

	return c.send(ctx, method, path, payload, contentType, out)
}

// DoMultipart sends form as multipart/form-data through the same path as DoJSON.
func (c *Client) DoMultipart(ctx context.Context, method, path string, form *Form, out any) error {
	payload, contentType, err := form.encode(ctx, c.files)
	if err != nil {
		return err
	}

	return c.send(ctx, method, path, payload, contentType, out)
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte, contentType string, out any) error {
	var body io.Reader = http.NoBody
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	req.Header.Set(headerAccept, mimeJSON)
	if contentType != "" {
		req.Header.Set(headerContentType, contentType)
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set(headerAuthorization, "Bearer "+token)
	}
	if requestID := deliverycontext.RequestIDFrom(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	logger := deliverycontext.LoggerFrom(ctx, c.logger)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveAPI(method, 0, time.Since(start))
		logger.Error("API request failed without response",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)

		return &domainerrors.TransportError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	c.metrics.ObserveAPI(method, resp.StatusCode, time.Since(start))
	if err != nil {
		logger.Error("API response body unreadable",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.Any("error", err),
		)

		return &domainerrors.TransportError{Method: method, Path: path, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.Warn("API error response",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("body", truncate(data, maxLoggedBody)),
		)

		return domainerrors.NewAPIError(method, path, resp.StatusCode, decodeErrorBody(data))
	}

	logger.Debug("API request completed",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(domainerrors.ErrUnexpectedShape.WithDetails(err.Error()), "%s %s", method, path)
	}

	return nil
}

// ResolveMediaURL rewrites media URLs pointing at the backend's development origin,
// and relative upload paths, onto the configured API origin.
func (c *Client) ResolveMediaURL(raw string) string {
	if raw == "" {
		return ""
	}
	if c.mediaFrom != "" && c.origin != "" && strings.HasPrefix(raw, c.mediaFrom) {
		return c.origin + strings.TrimPrefix(raw, c.mediaFrom)
	}
	if strings.HasPrefix(raw, "/") && c.origin != "" {
		return c.origin + raw
	}

	return raw
}

func decodeErrorBody(data []byte) *domainerrors.ErrorBody {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	var body domainerrors.ErrorBody
	if err := json.Unmarshal(data, &body); err != nil {
		return nil
	}

	return &body
}

func originOf(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}

	return u.Scheme + "://" + u.Host
}

func truncate(data []byte, n int) string {
	if len(data) <= n {
		return string(data)
	}

	return string(data[:n]) + "..."
}
