package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/wadoud17/maktabati-pos/internal/domain/entity"
	"github.com/wadoud17/maktabati-pos/pkg/apperror"
)

// TokenFunc returns the bearer token to attach to requests, or "" when the
// session is anonymous.
type TokenFunc func() string

// Client issues JSON requests against the remote backend. No timeout is
// applied to any call; cancellation comes from the caller's context.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenFunc
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, token TokenFunc) *Client {
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		token:   token,
	}
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

// Do issues a request with the given method and optional JSON body, decoding
// the response into out when out is non-nil.
func (c *Client) Do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperror.NewAppError(resp.StatusCode, errorMessage(resp))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// SignIn submits credentials to the authentication endpoint and returns the
// identity record on success.
func (c *Client) SignIn(ctx context.Context, login, password string) (*entity.User, error) {
	creds := map[string]string{"login": login, "password": password}
	var user entity.User
	if err := c.Do(ctx, http.MethodPost, "/api/Auth/signin", creds, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// errorMessage extracts a human-readable message from an error response.
func errorMessage(resp *http.Response) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		return body.Message
	}
	return http.StatusText(resp.StatusCode)
}
