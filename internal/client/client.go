package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"radioai/internal/cache"
	"radioai/internal/validation"
)

const defaultQueryTTL = 5 * time.Minute

// APIError is a non-2xx answer from the server
type APIError struct {
	Status  int
	Message string
	Errors  []validation.FieldError
}

func (e *APIError) Error() string {
	return fmt.Sprintf("radioai api: %d %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a 404 from the server
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

type Options struct {
	HTTPClient *http.Client
	QueryTTL   time.Duration
	// UserID is sent as X-User-ID when non-zero
	UserID int64
	Logger *slog.Logger
}

// Client talks to the RadioAI REST API. GET responses are cached by path
// until a mutation invalidates them.
type Client struct {
	baseURL string
	http    *http.Client
	queries *cache.Manager
	userID  int64
	logger  *slog.Logger

	mu          sync.Mutex
	subscribers map[int]func(invalidated []string)
	nextSub     int
}

func New(baseURL string, opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	ttl := opts.QueryTTL
	if ttl <= 0 {
		ttl = defaultQueryTTL
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		http:        httpClient,
		queries:     cache.NewManager(ttl),
		userID:      opts.UserID,
		logger:      logger,
		subscribers: make(map[int]func([]string)),
	}
}

// Subscribe registers fn to be told which path prefixes a mutation
// invalidated. The returned function removes it.
func (c *Client) Subscribe(fn func(invalidated []string)) func() {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subscribers[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subscribers, id)
		c.mu.Unlock()
	}
}

// Invalidate drops every cached query under the given path prefixes
func (c *Client) Invalidate(prefixes ...string) {
	if len(prefixes) == 0 {
		return
	}
	for _, p := range prefixes {
		c.queries.DeletePrefix(p)
	}

	c.mu.Lock()
	subs := make([]func([]string), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(prefixes)
	}
}

// AudioURL is the narration endpoint of an article
func (c *Client) AudioURL(articleID int64) string {
	return c.baseURL + "/api/articles/" + strconv.FormatInt(articleID, 10) + "/audio"
}

// get decodes GET path into out, serving repeated calls from the cache
func (c *Client) get(ctx context.Context, path string, out any) error {
	if cached, ok := c.queries.Get(path); ok {
		if body, ok := cached.([]byte); ok {
			return json.Unmarshal(body, out)
		}
	}

	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	c.queries.Set(path, body, 0)
	return nil
}

// send performs a mutation, decodes the answer into out when non-nil and
// invalidates the given prefixes on success
func (c *Client) send(ctx context.Context, method, path string, payload, out any, invalidate ...string) error {
	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	body, err := c.do(ctx, method, path, reader)
	if err != nil {
		return err
	}
	c.Invalidate(invalidate...)

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.userID != 0 {
		req.Header.Set("X-User-ID", strconv.FormatInt(c.userID, 10))
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	c.logger.Debug("api request", "method", method, "path", path, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Message string                  `json:"message"`
			Errors  []validation.FieldError `json:"errors"`
		}
		if json.Unmarshal(data, &payload) == nil {
			apiErr.Message = payload.Message
			apiErr.Errors = payload.Errors
		}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return nil, apiErr
	}
	return data, nil
}
