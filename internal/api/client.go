// ABOUTME: HTTP client for the Tourbase booking platform API
// ABOUTME: Shared request plumbing with bearer auth and strict status checks

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// TokenSource provides the current bearer token, or "" when signed out. The
// session store satisfies this.
type TokenSource interface {
	Token() string
}

// Client is the API client for the Tourbase backend. One method per resource
// operation; all of them go through the same request path.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// New creates a new API client with the given base URL and token source.
// A nil token source means every request goes out unauthenticated.
func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		tokens: tokens,
	}
}

// SetTimeout overrides the transport timeout.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.httpClient.Timeout = d
	}
}

// errorPayload is the backend's error body shape. Some handlers use "error",
// a few use "message".
type errorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// get issues a GET and decodes the body into out when the status matches.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, http.StatusOK, out)
}

// send issues a mutating request with a JSON body.
func (c *Client) send(ctx context.Context, method, path string, body any, wantStatus int, out any) error {
	return c.do(ctx, method, path, nil, body, wantStatus, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, wantStatus int, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return c.handleErrorResponse(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return newError(KindServerError, resp.StatusCode, "invalid response from backend")
		}
	}
	return nil
}

// handleRequestError classifies transport failures. No response means the
// network is unavailable as far as the UI is concerned.
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return newError(KindNetworkUnavailable, 0, "request canceled")
	}
	if ctx.Err() == context.DeadlineExceeded {
		return newError(KindNetworkUnavailable, 0, "request timed out")
	}
	return newError(KindNetworkUnavailable, 0,
		fmt.Sprintf("cannot connect to backend at %s", c.baseURL))
}

// handleErrorResponse maps a non-success status to the error taxonomy,
// carrying the server's message when one was provided. An unexpected success
// status lands here too and comes out as a server error.
func (c *Client) handleErrorResponse(resp *http.Response) error {
	var payload errorPayload
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	message := payload.Error
	if message == "" {
		message = payload.Message
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if message == "" {
			message = "authentication required"
		}
		return newError(KindUnauthorized, resp.StatusCode, message)
	case http.StatusForbidden:
		if message == "" {
			message = "insufficient privileges"
		}
		return newError(KindForbidden, resp.StatusCode, message)
	case http.StatusNotFound:
		if message == "" {
			message = "not found"
		}
		return newError(KindNotFound, resp.StatusCode, message)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if message == "" {
			message = "invalid request"
		}
		return newError(KindValidationFailed, resp.StatusCode, message)
	default:
		return newError(KindServerError, resp.StatusCode, message)
	}
}

func intQuery(key string, value int) url.Values {
	if value == 0 {
		return nil
	}
	q := url.Values{}
	q.Set(key, fmt.Sprintf("%d", value))
	return q
}
