// Package mock provides test doubles for the travel search proxy.
// The mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/travelix/travel-search-proxy/internal/adapter/provider/hotellook"
	"github.com/travelix/travel-search-proxy/internal/domain"
	"github.com/travelix/travel-search-proxy/internal/usecase"
)

// FlightClient is a configurable mock implementation of usecase.FlightClient.
// It supports configurable delays, errors, and responses for testing
// timeouts and upstream failure scenarios.
type FlightClient struct {
	data      json.RawMessage
	err       error
	delay     time.Duration
	callCount int
	lastKind  domain.EndpointKind
	mu        sync.Mutex
}

// NewFlightClient creates a mock flight client. By default it returns an
// empty JSON object; configure it with the builder methods.
func NewFlightClient() *FlightClient {
	return &FlightClient{data: json.RawMessage(`{}`)}
}

// WithData configures the client to return the given raw JSON body.
func (c *FlightClient) WithData(data json.RawMessage) *FlightClient {
	c.data = data
	return c
}

// WithError configures the client to return the given error.
func (c *FlightClient) WithError(err error) *FlightClient {
	c.err = err
	return c
}

// WithDelay configures the client to wait before responding. Useful for
// testing timeout behavior.
func (c *FlightClient) WithDelay(d time.Duration) *FlightClient {
	c.delay = d
	return c
}

// Fetch implements usecase.FlightClient. It respects context cancellation,
// applies the configured delay, and returns the configured body or error.
func (c *FlightClient) Fetch(ctx context.Context, kind domain.EndpointKind, params *domain.FlightSearchParams) (json.RawMessage, error) {
	c.mu.Lock()
	c.callCount++
	c.lastKind = kind
	c.mu.Unlock()

	if c.delay > 0 {
		select {
		case <-ctx.Done():
			if ctx.Err() == context.DeadlineExceeded {
				return nil, domain.ErrUpstreamTimeout
			}
			return nil, ctx.Err()
		case <-time.After(c.delay):
		}
	}

	if c.err != nil {
		return nil, c.err
	}
	return c.data, nil
}

// CallCount returns the number of times Fetch was called.
func (c *FlightClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.callCount
}

// LastKind returns the endpoint kind of the most recent Fetch call.
func (c *FlightClient) LastKind() domain.EndpointKind {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastKind
}

var _ usecase.FlightClient = (*FlightClient)(nil)

// HotelClient is a configurable mock implementation of usecase.HotelClient.
// Each step of the two-step search can be configured independently.
type HotelClient struct {
	lookup     *hotellook.LookupResponse
	lookupErr  error
	selections []hotellook.HotelSelection
	listErr    error
	snapshot   *hotellook.CacheSnapshot
	pricesErr  error
	delay      time.Duration

	lookupCalls int
	listCalls   int
	pricesCalls int
	mu          sync.Mutex
}

// NewHotelClient creates a mock hotel client that matches nothing by default.
func NewHotelClient() *HotelClient {
	return &HotelClient{lookup: &hotellook.LookupResponse{Status: "ok"}}
}

// WithLookup configures the lookup step's response.
func (c *HotelClient) WithLookup(resp *hotellook.LookupResponse) *HotelClient {
	c.lookup = resp
	return c
}

// WithLookupError configures the lookup step to fail.
func (c *HotelClient) WithLookupError(err error) *HotelClient {
	c.lookupErr = err
	return c
}

// WithSelections configures the location listing step's response.
func (c *HotelClient) WithSelections(selections []hotellook.HotelSelection) *HotelClient {
	c.selections = selections
	return c
}

// WithLocationHotelsError configures the location listing step to fail.
func (c *HotelClient) WithLocationHotelsError(err error) *HotelClient {
	c.listErr = err
	return c
}

// WithSnapshot configures the price cache step's response.
func (c *HotelClient) WithSnapshot(snapshot *hotellook.CacheSnapshot) *HotelClient {
	c.snapshot = snapshot
	return c
}

// WithHotelPricesError configures the price cache step to fail.
func (c *HotelClient) WithHotelPricesError(err error) *HotelClient {
	c.pricesErr = err
	return c
}

// WithDelay configures every step to wait before responding.
func (c *HotelClient) WithDelay(d time.Duration) *HotelClient {
	c.delay = d
	return c
}

func (c *HotelClient) wait(ctx context.Context) error {
	if c.delay == 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		if ctx.Err() == context.DeadlineExceeded {
			return domain.ErrUpstreamTimeout
		}
		return ctx.Err()
	case <-time.After(c.delay):
		return nil
	}
}

// Lookup implements usecase.HotelClient.
func (c *HotelClient) Lookup(ctx context.Context, query, lookFor string, limit int) (*hotellook.LookupResponse, error) {
	c.mu.Lock()
	c.lookupCalls++
	c.mu.Unlock()

	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	if c.lookupErr != nil {
		return nil, c.lookupErr
	}
	return c.lookup, nil
}

// LocationHotels implements usecase.HotelClient.
func (c *HotelClient) LocationHotels(ctx context.Context, locationID string, stay hotellook.Stay) ([]hotellook.HotelSelection, error) {
	c.mu.Lock()
	c.listCalls++
	c.mu.Unlock()

	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	if c.listErr != nil {
		return nil, c.listErr
	}
	return c.selections, nil
}

// HotelPrices implements usecase.HotelClient.
func (c *HotelClient) HotelPrices(ctx context.Context, locationID, hotelID string, stay hotellook.Stay) (*hotellook.CacheSnapshot, error) {
	c.mu.Lock()
	c.pricesCalls++
	c.mu.Unlock()

	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	if c.pricesErr != nil {
		return nil, c.pricesErr
	}
	return c.snapshot, nil
}

// LookupCalls returns how many times Lookup was called.
func (c *HotelClient) LookupCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lookupCalls
}

// LocationHotelsCalls returns how many times LocationHotels was called.
func (c *HotelClient) LocationHotelsCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.listCalls
}

// HotelPricesCalls returns how many times HotelPrices was called.
func (c *HotelClient) HotelPricesCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pricesCalls
}

var _ usecase.HotelClient = (*HotelClient)(nil)
