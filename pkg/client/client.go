// Package client is the Go API client for the marketplace backend. It owns
// the checkout handoff to the payment gateway and the reconciliation of the
// return leg; everything else is a thin call-through to the REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// ErrUnauthorized is returned once the backend rejects the stored token. The
// token is cleared before returning, so the caller must send the user back
// through sign-in; there is no silent recovery path.
var ErrUnauthorized = errors.New("session expired, sign in again")

// APIError is a non-2xx backend response. Message carries the backend's
// wording verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// TokenStore holds the bearer token with an explicit lifecycle: loaded on
// start, set on login, cleared on logout or rejection.
type TokenStore interface {
	Token() string
	SetToken(token string)
	Clear()
}

// MemoryTokenStore keeps the token in memory only.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemoryTokenStore) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *MemoryTokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// Client talks to the backend API. Safe for concurrent use.
type Client struct {
	baseURL     string
	callbackURL string
	httpClient  *http.Client
	tokens      TokenStore

	mu   sync.RWMutex
	user *User
}

// New builds a client for the API at baseURL. callbackURL is where the
// payment gateway returns the buyer after authorization.
func New(baseURL, callbackURL string, tokens TokenStore) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		callbackURL: callbackURL,
		tokens:      tokens,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// SignedIn reports whether a token is stored. It does not validate the token;
// a stale one surfaces as ErrUnauthorized on the next call.
func (c *Client) SignedIn() bool {
	return c.tokens.Token() != ""
}

// CurrentUser returns the profile cached by the last Login or Me call.
func (c *Client) CurrentUser() *User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user
}

func (c *Client) setUser(u *User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = u
}

// Logout clears the token and the cached profile.
func (c *Client) Logout() {
	c.tokens.Clear()
	c.setUser(nil)
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if t := c.tokens.Token(); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.Logout()
		return ErrUnauthorized
	}
	if resp.StatusCode >= 400 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func errorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(raw))
}
