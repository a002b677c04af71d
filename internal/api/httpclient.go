package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dznutri/dznutri/internal/logging"
)

// SessionStore is the slice of the session manager the transport needs: the
// current token for outgoing requests and a way to destroy the session when
// the backend says it is no longer valid.
type SessionStore interface {
	Token() string
	Clear(ctx context.Context) error
}

// HTTPClient implements Client over net/http.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	session SessionStore
	logger  logging.Logger
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, timeout time.Duration, session SessionStore, logger logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		session: session,
		logger:  logger,
	}
}

// do issues one request and decodes the JSON response into out (skipped when
// out is nil or the body is empty). Every backend call in this package goes
// through here, so the auth header, request id, and error mapping are
// uniform across endpoints.
func (c *HTTPClient) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.transportError(ctx, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// The token is dead. Destroy the stored session here so every
		// caller observes the same logged-out state, then report the
		// sentinel; screens never see a field-level 401.
		if cerr := c.session.Clear(ctx); cerr != nil {
			c.logger.Error(ctx, "failed to clear session after 401", "error", cerr)
		}
		return ErrUnauthorized
	}
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return &StatusError{Status: resp.StatusCode, Message: readDetail(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) transportError(ctx context.Context, method, path string, err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.Canceled):
		return context.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return ErrTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		return ErrTimeout
	default:
		c.logger.Debug(ctx, "request failed", "method", method, "path", path, "error", err)
		return ErrUnavailable
	}
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out)
}

// sendJSON marshals in as the request body; a nil in sends an empty body.
func (c *HTTPClient) sendJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	return c.do(ctx, method, path, "application/json", body, out)
}

// readDetail extracts the backend's {"detail": "..."} error message, if the
// body carries one. Anything unparseable yields an empty message.
func readDetail(r io.Reader) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(io.LimitReader(r, 1<<16)).Decode(&body); err != nil {
		return ""
	}
	return body.Detail
}
