// Package rest holds the JSON-over-HTTP plumbing shared by the backend
// clients: base URL handling, bearer token forwarding and status mapping.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"training-courses/internal/core/port"
	"training-courses/internal/requestctx"
)

// maxErrorBody caps how much of an error response is kept in StatusError.
const maxErrorBody = 2048

// StatusError is returned when a backend answers with a non-2xx status.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
	// AlreadyExists is set when the client was configured to read
	// StatusCode as a duplicate.
	AlreadyExists bool
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// Is makes a 409 Conflict, or any status flagged AlreadyExists, match
// port.ErrAlreadyExists, and a 404 match port.ErrNotFound.
func (e *StatusError) Is(target error) bool {
	switch target {
	case port.ErrAlreadyExists:
		return e.AlreadyExists || e.StatusCode == http.StatusConflict
	case port.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	default:
		return false
	}
}

// StatusCode extracts the HTTP status from err, or 0 if err is not a
// StatusError.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}

// Client issues JSON requests against one backend.
type Client struct {
	baseURL        string
	http           *http.Client
	logger         *slog.Logger
	existsStatuses []int
}

// NewClient returns a client rooted at baseURL. A zero timeout leaves the
// http.Client without deadline.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// WithExistsStatuses makes the listed statuses read as "already exists" in
// addition to 409 Conflict.
func (c *Client) WithExistsStatuses(codes ...int) *Client {
	c.existsStatuses = slices.Clone(codes)
	return c
}

// Do sends body as JSON to path and decodes the response into out when out is
// not nil. The caller's bearer token is taken from ctx.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	url := c.baseURL + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, url, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, url, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := requestctx.CallerFromContext(ctx).Token; token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	c.logger.Debug("backend call", slog.String("method", method), slog.String("url", url))
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method:        method,
			URL:           url,
			StatusCode:    resp.StatusCode,
			Body:          string(msg),
			AlreadyExists: slices.Contains(c.existsStatuses, resp.StatusCode),
		}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, url, err)
	}
	return nil
}
