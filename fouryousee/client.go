package fouryousee

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the production API root
	DefaultBaseURL = "https://api.4yousee.com.br/v1/"
	// DefaultRequestDelay is the pause taken before each request
	DefaultRequestDelay = time.Second

	contentTypeJSON = "application/json"
)

// Client represents a 4YouSee API client.
//
// A Client issues one request at a time and keeps the last full listing of
// each resource; it must not be shared between goroutines.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     zerolog.Logger
	delay      time.Duration
	limiter    *rate.Limiter
	account    Account
	cache      *listCache
}

// NewClient creates a new 4YouSee client. Unlike the connection helpers of
// other services it does not contact the API; call TestConnection for that.
func NewClient(token string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	baseURL, err := url.Parse(o.baseURL)
	if err != nil || baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("invalid 4yousee base URL %q", o.baseURL)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.timeout}
	}

	return &Client{
		// Endpoints are appended to the base URL, so it must end with a slash
		baseURL:    strings.TrimRight(o.baseURL, "/") + "/",
		token:      token,
		httpClient: httpClient,
		logger:     logger,
		delay:      o.requestDelay,
		limiter:    o.limiter,
		account:    o.account,
		cache:      newListCache(),
	}, nil
}

// Account returns the account metadata given at construction
func (c *Client) Account() Account {
	return c.account
}

// TestConnection checks that the token is accepted by the API
func (c *Client) TestConnection(ctx context.Context) error {
	_, err := c.doRequest(ctx, http.MethodGet, string(ResourceUserGroups), nil, nil, contentTypeJSON)
	if err != nil {
		return fmt.Errorf("failed to connect to 4YouSee: %w", err)
	}
	return nil
}

// Cached returns a copy of the last full listing fetched for res, if any
func (c *Client) Cached(res Resource) ([]Record, bool) {
	return c.cache.get(res)
}

// pace waits before a request: first for the shared limiter, then for the
// fixed delay
func (c *Client) pace(ctx context.Context) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
	}
	if c.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(c.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// doRequest performs an authenticated request and returns the response body
func (c *Client) doRequest(ctx context.Context, method, endpoint string, params url.Values, body io.Reader, contentType string) ([]byte, error) {
	if err := c.pace(ctx); err != nil {
		return nil, err
	}

	reqURL := c.baseURL + strings.TrimPrefix(endpoint, "/")
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	if body == nil {
		body = http.NoBody
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Secret-Token", c.token)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", contentTypeJSON)

	c.logger.Debug().
		Str("method", method).
		Str("endpoint", endpoint).
		Str("query", params.Encode()).
		Msg("Making 4YouSee API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Method:     method,
			Endpoint:   endpoint,
			Body:       string(data),
		}
	}

	return data, nil
}
