package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/travelix/travel-search-proxy/internal/adapter/provider/hotellook"
	"github.com/travelix/travel-search-proxy/internal/domain"
)

// DefaultHotelsTimeout bounds the whole two-step hotel search when no
// explicit timeout is configured.
const DefaultHotelsTimeout = 15 * time.Second

// HotelClient is the two-step hotel data client: name resolution, then
// either a location popularity listing or a per-hotel price snapshot.
type HotelClient interface {
	Lookup(ctx context.Context, query, lookFor string, limit int) (*hotellook.LookupResponse, error)
	LocationHotels(ctx context.Context, locationID string, stay hotellook.Stay) ([]hotellook.HotelSelection, error)
	HotelPrices(ctx context.Context, locationID, hotelID string, stay hotellook.Stay) (*hotellook.CacheSnapshot, error)
}

// HotelNormalizer converts provider hotel shapes into HotelResult records.
type HotelNormalizer interface {
	FromSelections(selections []hotellook.HotelSelection, fallbackLocation string) []domain.HotelResult
	FromHotelPrice(hotel *hotellook.LookupHotel, snapshot *hotellook.CacheSnapshot, query string) domain.HotelResult
}

// HotelSearchUseCase defines the hotel search proxy operation.
type HotelSearchUseCase interface {
	// Search runs the pipeline Validating -> Lookup -> (LocationBranch |
	// HotelBranch) -> Normalize. A lookup with no matches returns an empty
	// slice and nil error; any outbound failure returns an error and no
	// partial results.
	Search(ctx context.Context, params domain.HotelSearchParams) ([]domain.HotelResult, error)
}

// hotelSearchUseCase implements HotelSearchUseCase.
type hotelSearchUseCase struct {
	client         HotelClient
	normalizer     HotelNormalizer
	tokenAvailable bool
	timeout        time.Duration
	log            zerolog.Logger
}

// HotelSearchConfig contains configuration options for the hotel search use case.
type HotelSearchConfig struct {
	// TokenAvailable reports whether the provider token is configured.
	TokenAvailable bool

	// Timeout bounds the full two-step search. Zero means DefaultHotelsTimeout.
	Timeout time.Duration

	// Normalizer converts provider shapes. Nil means the default normalizer.
	Normalizer HotelNormalizer

	// Logger is the use case logger. Zero value disables logging.
	Logger zerolog.Logger
}

// NewHotelSearchUseCase creates a HotelSearchUseCase with the given client
// and configuration.
func NewHotelSearchUseCase(client HotelClient, cfg HotelSearchConfig) HotelSearchUseCase {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultHotelsTimeout
	}
	normalizer := cfg.Normalizer
	if normalizer == nil {
		normalizer = hotellook.NewNormalizer()
	}
	return &hotelSearchUseCase{
		client:         client,
		normalizer:     normalizer,
		tokenAvailable: cfg.TokenAvailable,
		timeout:        timeout,
		log:            cfg.Logger,
	}
}

// resolvedTarget is the typed intermediate between the lookup step and the
// branch fetch: either a location to list, a hotel to price, or nothing.
type resolvedTarget struct {
	location *hotellook.LookupLocation
	hotel    *hotellook.LookupHotel
}

// Search implements HotelSearchUseCase.Search.
func (uc *hotelSearchUseCase) Search(ctx context.Context, params domain.HotelSearchParams) ([]domain.HotelResult, error) {
	if !uc.tokenAvailable {
		uc.log.Error().Msg("Hotellook API token not configured")
		return nil, domain.ErrTokenNotConfigured
	}

	params.Normalize()
	if err := params.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	lookFor := hotellook.LookForBoth
	if params.WantsHotel() {
		lookFor = hotellook.LookForHotel
	}

	lookup, err := uc.client.Lookup(ctx, params.Query, lookFor, hotellook.DefaultLookupLimit)
	if err != nil {
		return nil, err
	}

	target := resolve(&params, &lookup.Results)
	stay := hotellook.Stay{
		CheckIn:  params.CheckIn,
		CheckOut: params.CheckOut,
		Adults:   params.Adults,
		Children: params.Children,
		Currency: params.Currency,
	}

	switch {
	case target.location != nil:
		return uc.searchLocation(ctx, &params, target.location, stay)
	case target.hotel != nil:
		return uc.searchHotel(ctx, &params, target.hotel, stay)
	default:
		// No matches is a valid outcome, not an error.
		uc.log.Info().Str("query", params.Query).Msg("Hotel lookup matched nothing")
		return []domain.HotelResult{}, nil
	}
}

// resolve selects the branch target from the lookup results. Hotel-style
// searches prefer a hotel match; everything else prefers a location match,
// falling back to whichever kind matched.
func resolve(params *domain.HotelSearchParams, results *hotellook.LookupResults) resolvedTarget {
	if params.WantsHotel() && len(results.Hotels) > 0 {
		return resolvedTarget{hotel: &results.Hotels[0]}
	}
	if len(results.Locations) > 0 {
		return resolvedTarget{location: &results.Locations[0]}
	}
	if len(results.Hotels) > 0 {
		return resolvedTarget{hotel: &results.Hotels[0]}
	}
	return resolvedTarget{}
}

// searchLocation fetches the popularity listing for the resolved location
// and normalizes it.
func (uc *hotelSearchUseCase) searchLocation(ctx context.Context, params *domain.HotelSearchParams, loc *hotellook.LookupLocation, stay hotellook.Stay) ([]domain.HotelResult, error) {
	selections, err := uc.client.LocationHotels(ctx, loc.ID, stay)
	if err != nil {
		return nil, err
	}

	fallbackLocation := loc.FullName
	if fallbackLocation == "" {
		fallbackLocation = params.Query
	}

	results := uc.normalizer.FromSelections(selections, fallbackLocation)

	uc.log.Info().
		Str("query", params.Query).
		Str("location_id", loc.ID).
		Int("hotels", len(results)).
		Msg("Fetched location hotels")

	return results, nil
}

// searchHotel fetches the cached price snapshot for the resolved hotel and
// normalizes it into a single-element result.
func (uc *hotelSearchUseCase) searchHotel(ctx context.Context, params *domain.HotelSearchParams, hotel *hotellook.LookupHotel, stay hotellook.Stay) ([]domain.HotelResult, error) {
	snapshot, err := uc.client.HotelPrices(ctx, hotel.LocationID, hotel.ID, stay)
	if err != nil {
		return nil, err
	}

	result := uc.normalizer.FromHotelPrice(hotel, snapshot, params.Query)

	uc.log.Info().
		Str("query", params.Query).
		Str("hotel_id", hotel.ID).
		Msg("Fetched hotel price snapshot")

	return []domain.HotelResult{result}, nil
}
