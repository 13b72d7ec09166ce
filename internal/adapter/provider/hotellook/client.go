package hotellook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cast"

	"github.com/travelix/travel-search-proxy/internal/domain"
)

// Default upstream hosts. The engine host serves lookup and price cache
// queries; the widget host serves per-location popularity dumps.
const (
	defaultEngineBaseURL = "http://engine.hotellook.com"
	defaultWidgetBaseURL = "http://yasen.hotellook.com"
)

// LookForBoth and LookForHotel select what the lookup endpoint matches.
const (
	LookForBoth  = "both"
	LookForHotel = "hotel"
)

// DefaultLookupLimit bounds the number of lookup matches requested.
const DefaultLookupLimit = 10

// SelectionLimit bounds the number of hotels in a popularity listing.
const SelectionLimit = 8

// Client queries the Hotellook API. Calls are single-attempt; the caller
// bounds each call through its context.
type Client struct {
	token         string
	httpClient    *http.Client
	engineBaseURL string
	widgetBaseURL string
	log           zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithEngineBaseURL overrides the engine host (tests).
func WithEngineBaseURL(base string) Option {
	return func(c *Client) {
		c.engineBaseURL = base
	}
}

// WithWidgetBaseURL overrides the widget host (tests).
func WithWidgetBaseURL(base string) Option {
	return func(c *Client) {
		c.widgetBaseURL = base
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
		token:         token,
		httpClient:    &http.Client{},
		engineBaseURL: defaultEngineBaseURL,
		widgetBaseURL: defaultWidgetBaseURL,
		log:           zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup resolves a free-text query to location and/or hotel matches.
func (c *Client) Lookup(ctx context.Context, query, lookFor string, limit int) (*LookupResponse, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("lang", "en")
	params.Set("lookFor", lookFor)
	params.Set("limit", cast.ToString(limit))
	params.Set("token", c.token)

	var result LookupResponse
	if err := c.getJSON(ctx, c.engineBaseURL+"/api/v2/lookup.json", params, "lookup", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// LocationHotels fetches the popularity listing for a location, bounded to
// SelectionLimit entries.
func (c *Client) LocationHotels(ctx context.Context, locationID string, stay Stay) ([]HotelSelection, error) {
	params := url.Values{}
	params.Set("currency", strings.ToLower(stay.Currency))
	params.Set("language", "en")
	params.Set("limit", cast.ToString(SelectionLimit))
	params.Set("id", locationID)
	params.Set("type", "popularity")
	params.Set("check_in", stay.CheckIn)
	params.Set("check_out", stay.CheckOut)
	params.Set("token", c.token)

	var result selectionResponse
	if err := c.getJSON(ctx, c.widgetBaseURL+"/tp/public/widget_location_dump.json", params, "selections", &result); err != nil {
		return nil, err
	}

	hotels := result.Popularity
	if len(hotels) > SelectionLimit {
		hotels = hotels[:SelectionLimit]
	}
	return hotels, nil
}

// HotelPrices fetches the cached price snapshot for a specific hotel.
func (c *Client) HotelPrices(ctx context.Context, locationID, hotelID string, stay Stay) (*CacheSnapshot, error) {
	params := url.Values{}
	params.Set("locationId", locationID)
	params.Set("hotelId", hotelID)
	params.Set("checkIn", stay.CheckIn)
	params.Set("checkOut", stay.CheckOut)
	params.Set("adults", cast.ToString(stay.Adults))
	params.Set("children", cast.ToString(stay.Children))
	params.Set("currency", strings.ToLower(stay.Currency))
	params.Set("limit", "1")
	params.Set("token", c.token)

	var result CacheSnapshot
	if err := c.getJSON(ctx, c.engineBaseURL+"/api/v2/cache.json", params, "cache", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// getJSON issues a GET request and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, baseURL string, params url.Values, operation string, out interface{}) error {
	target := baseURL + "?" + params.Encode()

	c.log.Debug().
		Str("operation", operation).
		Str("url", redactToken(target)).
		Msg("Fetching hotel data")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("create %s request: %w", operation, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return domain.ErrUpstreamTimeout
		}
		return fmt.Errorf("%s request failed: %w", operation, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s API failed with status: %d", operation, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parse %s response: %w", operation, err)
	}
	return nil
}

// redactToken hides the token value in a URL so it can be logged.
func redactToken(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<unparseable url>"
	}
	q := u.Query()
	if q.Has("token") {
		q.Set("token", "REDACTED")
	}
	u.RawQuery = q.Encode()
	return u.String()
}
