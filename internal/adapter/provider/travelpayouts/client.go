package travelpayouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/travelix/travel-search-proxy/internal/domain"
)

// userAgent identifies this proxy to the upstream API.
const userAgent = "Travelpayouts-Cached-Flights-API/1.0"

// Client fetches cached flight prices from the Travelpayouts API.
// A single request is attempted per call; there are no retries.
type Client struct {
	token      string
	httpClient *http.Client
	baseURL    string // overrides the catalog host when non-empty (tests)
	log        zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL redirects every endpoint to the given base URL, keeping the
// endpoint path. Used to point the client at a test server.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = base
	}
}

// WithLogger sets the client logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a Client with the given access token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		token:      token,
		httpClient: &http.Client{},
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch issues a single bounded request against the endpoint selected by
// kind and returns the provider's raw JSON body untouched. The caller bounds
// the call through ctx; exceeding the bound yields domain.ErrUpstreamTimeout.
func (c *Client) Fetch(ctx context.Context, kind domain.EndpointKind, params *domain.FlightSearchParams) (json.RawMessage, error) {
	target := BuildURL(kind, params, c.token)
	if c.baseURL != "" {
		redirected, err := c.redirect(target)
		if err != nil {
			return nil, err
		}
		target = redirected
	}

	c.log.Debug().
		Str("endpoint", string(kind)).
		Str("url", RedactURL(target)).
		Msg("Fetching cached flight prices")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Access-Token", c.token)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, domain.ErrUpstreamTimeout
		}
		return nil, fmt.Errorf("fetch %s prices: %w", kind, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Error().
			Str("endpoint", string(kind)).
			Int("status", resp.StatusCode).
			Str("body", string(body)).
			Msg("Travelpayouts error response")
		return nil, domain.NewUpstreamError(string(kind), resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, domain.ErrUpstreamTimeout
		}
		return nil, fmt.Errorf("read %s response: %w", kind, err)
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("fetch %s prices: provider returned invalid JSON", kind)
	}

	return json.RawMessage(data), nil
}

// redirect rewrites the scheme and host of target to the configured base URL.
func (c *Client) redirect(target string) (string, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	u, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("invalid target URL: %w", err)
	}
	u.Scheme = base.Scheme
	u.Host = base.Host
	return u.String(), nil
}
