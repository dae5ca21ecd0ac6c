package mlc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"crosswalk/internal/registry"
)

// ProviderName tags compositions fetched from the MLC public search API.
const ProviderName = "MLC"

// searchResponse models the MLC paginated works search payload. Older API
// revisions used "works" instead of "content".
type searchResponse struct {
	Content []map[string]any `json:"content"`
	Works   []map[string]any `json:"works"`
}

// Client searches the Mechanical Licensing Collective public works database.
type Client struct {
	baseURL    string
	pageSize   int
	maxRetries int
	backoff    time.Duration
	httpClient *http.Client
}

var _ registry.Provider = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithPageSize overrides the candidate page size requested per search.
func WithPageSize(size int) Option {
	return func(c *Client) {
		if size > 0 {
			c.pageSize = size
		}
	}
}

// WithRetry overrides the retry count and initial backoff for failed requests.
func WithRetry(retries int, backoff time.Duration) Option {
	return func(c *Client) {
		if retries >= 0 {
			c.maxRetries = retries
		}
		if backoff > 0 {
			c.backoff = backoff
		}
	}
}

// New creates an MLC client.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("mlc base url required")
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		pageSize:   20,
		maxRetries: 3,
		backoff:    time.Second,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Name returns the provider tag applied to fetched compositions.
func (c *Client) Name() string {
	return ProviderName
}

// LookupByCode searches the works index by industry recording code. A code
// with no registered work returns an empty slice and a nil error.
func (c *Client) LookupByCode(ctx context.Context, code string) ([]registry.Composition, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil
	}
	return c.search(ctx, code)
}

// SearchByTitle performs a textual works search with the performer name as a
// disambiguation hint. The server ranks and bounds the candidate set.
func (c *Client) SearchByTitle(ctx context.Context, title, performerHint string) ([]registry.Composition, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, nil
	}
	query := title
	if hint := strings.TrimSpace(performerHint); hint != "" {
		query = title + " " + hint
	}
	return c.search(ctx, query)
}

func (c *Client) search(ctx context.Context, query string) ([]registry.Composition, error) {
	endpoint, err := url.Parse(c.baseURL + "/api2v/public/search/works")
	if err != nil {
		return nil, fmt.Errorf("parse mlc url: %w", err)
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("page", "0")
	params.Set("size", strconv.Itoa(c.pageSize))
	endpoint.RawQuery = params.Encode()

	payload, err := c.post(ctx, endpoint.String())
	if err != nil {
		return nil, err
	}

	raw := payload.Content
	if len(raw) == 0 {
		raw = payload.Works
	}
	works := make([]registry.Composition, 0, len(raw))
	for _, entry := range raw {
		works = append(works, parseWork(entry))
	}
	return works, nil
}

// post issues the search request with retry on transient failures. The MLC
// endpoint requires POST with an empty JSON body; query terms travel in the
// URL parameters.
func (c *Client) post(ctx context.Context, endpoint string) (*searchResponse, error) {
	backoff := c.backoff
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader([]byte("{}")))
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("execute request: %w", err)
			continue
		}

		if retryableStatus(resp.StatusCode) {
			resp.Body.Close()
			lastErr = fmt.Errorf("mlc search returned %d", resp.StatusCode)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("mlc search returned %d", resp.StatusCode)
		}

		var payload searchResponse
		err = json.NewDecoder(resp.Body).Decode(&payload)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("decode mlc response: %w", err)
		}
		return &payload, nil
	}
	return nil, lastErr
}

func retryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}
