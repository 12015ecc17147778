// Package backend is the HTTP client for the user-account backend
// service. Every operation the UI performs goes through one typed
// function here; the shared request helper owns bearer-token
// attachment, 401 detection, and error-message extraction so the
// handlers never repeat that logic.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds a single backend call when the config does not
// override it.
const DefaultTimeout = 15 * time.Second

// Client talks to the backend REST surface under baseURL
// (e.g. http://localhost:8080).
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

// New constructs a Client for the backend at baseURL.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		log: logger,
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Ping reports whether the backend answers HTTP at all. Used by the
// health endpoint; any response, including an error status, counts as
// reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/users/all", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// errorBody is the backend's error envelope. Some endpoints use
// "message", others "error"; absence of both falls back to raw text.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do issues one backend call and normalizes the outcome.
//
// token may be empty only for the unauthenticated endpoints (login,
// register); authenticated calls fail fast with ErrUnauthenticated so
// the caller can redirect without a round trip. A 401 response becomes
// ErrSessionExpired. Any other non-2xx becomes a *RequestError with
// the message extracted from the error body, falling back to the raw
// response text. On success the JSON body is decoded into out (out may
// be nil for empty responses such as delete acks).
func (c *Client) do(ctx context.Context, method, path, token string, body, out any, authRequired bool) error {
	if authRequired && token == "" {
		return ErrUnauthenticated
	}

	var bodyReader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &RequestError{Message: "The request could not be encoded."}
		}
		bodyReader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return &RequestError{Message: "The request could not be created."}
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("backend call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return &RequestError{Message: "The backend could not be reached. Please try again."}
	}
	defer resp.Body.Close()

	c.log.Debug("backend call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrSessionExpired
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		msg := fmt.Sprintf("HTTP error! status: %d", resp.StatusCode)
		var eb errorBody
		if err := json.Unmarshal(raw, &eb); err == nil {
			switch {
			case eb.Message != "":
				msg = eb.Message
			case eb.Error != "":
				msg = eb.Error
			}
		} else if text := strings.TrimSpace(string(raw)); text != "" {
			msg = text
		}
		return &RequestError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Warn("backend response decode failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return &RequestError{Message: "The backend returned an unreadable response."}
	}
	return nil
}
