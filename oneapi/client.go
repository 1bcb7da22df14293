package oneapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// Client is a One API client bound to a single API key.
// It holds no mutable state after NewClient returns.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
	logger     zerolog.Logger

	fetch      Operation
	fetchAsync AsyncOperation
}

// NewClient creates a new One API client
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	c := &Client{
		baseURL: BaseURL,
		apiKey:  apiKey,
		timeout: DefaultTimeout,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}

	c.fetch = Safe(c.get)
	c.fetchAsync = SafeAsync(c.getScoped)

	return c, nil
}

// BaseURL returns the root URL requests are built from.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// get performs a blocking GET on the client's shared HTTP client.
func (c *Client) get(ctx context.Context, req Request) (any, error) {
	if isBlank(req.Endpoint) {
		return nil, ErrMissingEndpoint
	}
	return c.do(ctx, c.httpClient, ComposeURL(c.baseURL, req))
}

// getScoped performs a GET inside a session owned by this call alone.
func (c *Client) getScoped(ctx context.Context, req Request) (any, error) {
	if isBlank(req.Endpoint) {
		return nil, ErrMissingEndpoint
	}

	url := ComposeURL(c.baseURL, req)
	c.logger.Info().Str("url", url).Msg("Making request")

	s := c.openSession()
	defer s.Close()

	return c.do(ctx, s.client, url)
}

// do sends the request and decodes the body, whatever the status code.
func (c *Client) do(ctx context.Context, hc *http.Client, url string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.authorize(req)

	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse response (status %d): %w", resp.StatusCode, err)
	}

	c.logger.Debug().
		Str("url", url).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Msg("Received One API response")

	return payload, nil
}

// authorize sets the only header the API needs.
func (c *Client) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
}

// session is a request-scoped HTTP client. When it owns its transport,
// Close drops the pooled connections.
type session struct {
	client *http.Client
	owned  *http.Transport
}

func (c *Client) openSession() *session {
	base := c.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	t, ok := base.(*http.Transport)
	if !ok {
		// Custom round trippers (recorders, test doubles) are shared as-is.
		return &session{client: c.httpClient}
	}

	owned := t.Clone()
	return &session{
		client: &http.Client{
			Transport:     owned,
			Timeout:       c.httpClient.Timeout,
			CheckRedirect: c.httpClient.CheckRedirect,
			Jar:           c.httpClient.Jar,
		},
		owned: owned,
	}
}

func (s *session) Close() {
	if s.owned != nil {
		s.owned.CloseIdleConnections()
	}
}
