package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// TokenSource supplies the current access token for the Authorization header.
// An empty string means the request goes out unauthenticated.
type TokenSource interface {
	AccessToken() string
}

// TokenSourceFunc adapts a function to the TokenSource interface.
type TokenSourceFunc func() string

func (f TokenSourceFunc) AccessToken() string { return f() }

// Config holds gateway client configuration.
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	CacheDir string
	Debug    bool
}

// DefaultConfig returns a default client configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:8000/api",
		Timeout: 30 * time.Second,
	}
}

// Client is the single HTTP client all feature calls go through. GET requests
// ride a caching transport and retry transient transport failures; mutating
// requests use a plain client and are never retried.
type Client struct {
	baseURL    string
	httpClient *http.Client
	getClient  *http.Client
	tokens     TokenSource
	maxTries   uint
}

// NewClient creates a gateway client. tokens may be nil for a client that only
// calls public endpoints.
func NewClient(cfg Config, tokens TokenSource) *Client {
	getClient := NewCachingHTTPClient(cfg.CacheDir)
	getClient.Timeout = cfg.Timeout

	log.Debug().
		Str("baseURL", cfg.BaseURL).
		Str("cacheDir", cfg.CacheDir).
		Msg("initialized API client")

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		getClient:  getClient,
		tokens:     tokens,
		maxTries:   3,
	}
}

// get issues a GET with retry on transport failures. Non-network errors are
// permanent and returned as-is.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		err := c.do(ctx, c.getClient, http.MethodGet, path, params, nil, out)
		if err != nil {
			var netErr *NetworkError
			if errors.As(err, &netErr) {
				return struct{}{}, err
			}
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, nil
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(c.maxTries))
	return err
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, c.httpClient, http.MethodPost, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, c.httpClient, http.MethodPatch, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, c.httpClient, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, client *http.Client, method, path string, params url.Values, body, out any) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("method", method).Str("url", reqURL).Msg("request transport failure")
		return &NetworkError{URL: reqURL, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{URL: reqURL, Err: err}
	}

	log.Debug().
		Str("method", method).
		Str("url", reqURL).
		Int("status", resp.StatusCode).
		Msg("API request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp.StatusCode, respBody)
	}

	if out == nil || len(respBody) == 0 || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// listParams builds the shared pagination query values.
func listParams(page, pageSize int) url.Values {
	params := url.Values{}
	if page > 0 {
		params.Set("page", fmt.Sprintf("%d", page))
	}
	if pageSize > 0 {
		params.Set("page_size", fmt.Sprintf("%d", pageSize))
	}
	return params
}
