// Package usecase contains the business logic for the travel search proxy.
// It orchestrates validation, outbound provider calls, and result shaping.
package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/travelix/travel-search-proxy/internal/domain"
	"github.com/travelix/travel-search-proxy/internal/infrastructure/timeutil"
)

// DefaultFlightsTimeout bounds the outbound flights call when no explicit
// timeout is configured.
const DefaultFlightsTimeout = 30 * time.Second

// FlightClient fetches raw cached price data from the travel data provider.
type FlightClient interface {
	Fetch(ctx context.Context, kind domain.EndpointKind, params *domain.FlightSearchParams) (json.RawMessage, error)
}

// FlightSearchResult is a successful flight search outcome. Data is the
// provider's JSON body passed through unmodified; the handler wraps it in
// the response envelope.
type FlightSearchResult struct {
	Data      json.RawMessage
	Endpoint  domain.EndpointKind
	Timestamp time.Time
}

// FlightSearchUseCase defines the flight search proxy operation.
type FlightSearchUseCase interface {
	// Search validates params, issues a single bounded provider call, and
	// returns the raw result. Per-request lifecycle:
	// Validating -> BuildingURL -> Fetching -> (Success | Failure).
	Search(ctx context.Context, params domain.FlightSearchParams) (*FlightSearchResult, error)
}

// flightSearchUseCase implements FlightSearchUseCase.
type flightSearchUseCase struct {
	client         FlightClient
	tokenAvailable bool
	timeout        time.Duration
	clock          timeutil.Clock
	log            zerolog.Logger
}

// FlightSearchConfig contains configuration options for the flight search use case.
type FlightSearchConfig struct {
	// TokenAvailable reports whether the provider token is configured.
	// Searches fail with a configuration error when it is not.
	TokenAvailable bool

	// Timeout bounds the outbound call. Zero means DefaultFlightsTimeout.
	Timeout time.Duration

	// Clock supplies the envelope timestamp. Nil means the real clock.
	Clock timeutil.Clock

	// Logger is the use case logger. Zero value disables logging.
	Logger zerolog.Logger
}

// NewFlightSearchUseCase creates a FlightSearchUseCase with the given client
// and configuration.
func NewFlightSearchUseCase(client FlightClient, cfg FlightSearchConfig) FlightSearchUseCase {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultFlightsTimeout
	}
	clock := cfg.Clock
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &flightSearchUseCase{
		client:         client,
		tokenAvailable: cfg.TokenAvailable,
		timeout:        timeout,
		clock:          clock,
		log:            cfg.Logger,
	}
}

// Search implements FlightSearchUseCase.Search.
func (uc *flightSearchUseCase) Search(ctx context.Context, params domain.FlightSearchParams) (*FlightSearchResult, error) {
	if !uc.tokenAvailable {
		uc.log.Error().Msg("Travelpayouts API token not configured")
		return nil, domain.ErrTokenNotConfigured
	}

	params.Normalize()
	if err := params.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	data, err := uc.client.Fetch(ctx, params.Type, &params)
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("endpoint", string(params.Type)).
		Str("origin", params.Origin).
		Str("destination", params.Destination).
		Int("bytes", len(data)).
		Msg("Fetched cached flight prices")

	return &FlightSearchResult{
		Data:      data,
		Endpoint:  params.Type,
		Timestamp: uc.clock.Now().UTC(),
	}, nil
}
