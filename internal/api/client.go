// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Configuration constants for the gateway client.
const (
	// DefaultTimeout is the default timeout for API requests.
	DefaultTimeout = 60 * time.Second

	// DefaultUploadTimeout is the timeout for document uploads, which can
	// carry multi-megabyte PDFs through server-side processing.
	DefaultUploadTimeout = 5 * time.Minute

	// MaxResponseSize is the maximum allowed response body size.
	// SECURITY: Response size limit prevents memory exhaustion.
	MaxResponseSize = 10 * 1024 * 1024 // 10MB

	// requestsPerSecond paces outgoing calls so a stuck UI loop cannot
	// hammer the gateway.
	requestsPerSecond = 10
	requestBurst      = 20
)

// sharedHTTPClient is used for all gateway requests.
// PERFORMANCE: Connection pooling reduces TCP handshake overhead.
var sharedHTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	},
	Timeout: DefaultTimeout,
}

// Error variables for common gateway failures.
var (
	// ErrNotAuthenticated indicates no bearer token is set on the client.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrUnauthorized indicates the server rejected the bearer token.
	ErrUnauthorized = errors.New("unauthorized")
)

// Error represents an error response from the gateway.
// The server reports failures as a JSON body {"detail": "..."}.
type Error struct {
	Status int
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("gateway error (HTTP %d): %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("gateway error (HTTP %d)", e.Status)
}

// IsNotFound reports whether err is a gateway 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsUnauthorized reports whether err means the session token is invalid
// or expired.
func IsUnauthorized(err error) bool {
	if errors.Is(err, ErrUnauthorized) {
		return true
	}
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// detailResponse is the gateway's error body shape.
type detailResponse struct {
	Detail string `json:"detail"`
}

// Client is a client for the PrivateGxT gateway API.
//
// The zero value is not usable; construct with NewClient. A single Client
// is shared by every part of the dashboard, so token access is guarded.
type Client struct {
	baseURL    string
	locale     string
	httpClient *http.Client
	limiter    *rate.Limiter

	mu    sync.RWMutex
	token string
}

// NewClient creates a gateway client for the given base URL.
//
// The base URL should include the scheme and host, e.g.
// "https://gxt.example.com". A trailing slash is stripped.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: sharedHTTPClient,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
	}
}

// WithLocale sets the locale sent as Accept-Language on every request.
// The server localizes error detail strings with it.
func (c *Client) WithLocale(locale string) *Client {
	c.locale = locale
	return c
}

// WithHTTPClient sets a custom HTTP client. Used by tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// BaseURL returns the configured gateway base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetToken installs the bearer token used for authenticated requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = strings.TrimSpace(token)
	c.mu.Unlock()
}

// ClearToken removes the bearer token.
func (c *Client) ClearToken() {
	c.SetToken("")
}

// Token returns the current bearer token, empty when logged out.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// IsAuthenticated returns true if a bearer token is set.
func (c *Client) IsAuthenticated() bool {
	return c.Token() != ""
}

// ===== REQUEST PLUMBING =====

// setHeaders sets the common headers on a gateway request.
func (c *Client) setHeaders(req *http.Request, authed bool) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "privategxt-tui/1.0")
	if c.locale != "" {
		req.Header.Set("Accept-Language", c.locale)
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.Token())
	}
}

// logRequest logs an API request without exposing sensitive data.
// Headers (auth) and bodies (user content) are never logged.
func (c *Client) logRequest(req *http.Request) {
	log.Printf("API request: %s %s", req.Method, req.URL.Path)
}

// logResponse logs an API response with duration, never the body.
func (c *Client) logResponse(resp *http.Response, duration time.Duration) {
	log.Printf("API response: %d %s (%v)", resp.StatusCode, resp.Status, duration)
}

// readResponse reads the response body with a size limit.
// SECURITY: Response size limit prevents memory exhaustion.
func readResponse(resp *http.Response) ([]byte, error) {
	limited := io.LimitReader(resp.Body, MaxResponseSize)
	body, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(body)) == MaxResponseSize {
		return nil, fmt.Errorf("response exceeded maximum size of %d bytes", MaxResponseSize)
	}
	return body, nil
}

// errorFromResponse converts a non-2xx gateway response into an *Error,
// pulling the localized detail string out of the body when present.
func errorFromResponse(statusCode int, body []byte) error {
	var dr detailResponse
	if err := json.Unmarshal(body, &dr); err == nil && dr.Detail != "" {
		return &Error{Status: statusCode, Detail: dr.Detail}
	}
	return &Error{Status: statusCode, Detail: strings.TrimSpace(string(body))}
}

// do performs a single gateway request. Requests are paced by the rate
// limiter, issued exactly once, and never retried.
func (c *Client) do(ctx context.Context, method, path string, reqBody, out any, authed bool) error {
	if authed && !c.IsAuthenticated() {
		return ErrNotAuthenticated
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var bodyReader io.Reader
	if reqBody != nil {
		bodyBytes, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setHeaders(req, authed)
	c.logRequest(req)

	start := time.Now()
	resp, err := c.httpClient.Do(req)

	// SECURITY: Clear the auth header immediately after the request so a
	// retained *http.Request can never leak the token into logs.
	req.Header.Del("Authorization")

	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	c.logResponse(resp, time.Since(start))

	body, err := readResponse(resp)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if resp.StatusCode == http.StatusUnauthorized {
			return fmt.Errorf("%w: %s", ErrUnauthorized, detailOf(body))
		}
		return errorFromResponse(resp.StatusCode, body)
	}

	if out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

// detailOf extracts the detail string from an error body, falling back to
// the raw text.
func detailOf(body []byte) string {
	var dr detailResponse
	if err := json.Unmarshal(body, &dr); err == nil && dr.Detail != "" {
		return dr.Detail
	}
	return strings.TrimSpace(string(body))
}

// get issues an authenticated GET and decodes the response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out, true)
}

// post issues an authenticated POST with a JSON body.
func (c *Client) post(ctx context.Context, path string, reqBody, out any) error {
	return c.do(ctx, http.MethodPost, path, reqBody, out, true)
}

// del issues an authenticated DELETE.
func (c *Client) del(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, true)
}
