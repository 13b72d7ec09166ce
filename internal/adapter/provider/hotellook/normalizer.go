package hotellook

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/travelix/travel-search-proxy/internal/domain"
)

// Placeholder price bounds for hotels with no price data. A synthesized
// price keeps every result displayable; it is presentation data, not a
// quote (see DESIGN.md).
const (
	placeholderPriceMin  = 50
	placeholderPriceSpan = 200
)

// Normalizer converts provider hotel shapes into domain.HotelResult records.
// A single Normalizer is shared by all requests; the mutex serializes access
// to the random source, which is not safe for concurrent use.
type Normalizer struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewNormalizer creates a Normalizer with a time-seeded random source for
// placeholder prices.
func NewNormalizer() *Normalizer {
	return NewNormalizerWithSeed(time.Now().UnixNano())
}

// NewNormalizerWithSeed creates a Normalizer with a fixed seed, making
// placeholder prices deterministic in tests.
func NewNormalizerWithSeed(seed int64) *Normalizer {
	return &Normalizer{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// FromSelections normalizes a popularity listing. fallbackLocation is used
// for entries without their own location name (typically the resolved
// location's full name, or the caller's query).
func (n *Normalizer) FromSelections(selections []HotelSelection, fallbackLocation string) []domain.HotelResult {
	results := make([]domain.HotelResult, 0, len(selections))
	for i, sel := range selections {
		results = append(results, n.fromSelection(sel, fallbackLocation, i))
	}
	return results
}

func (n *Normalizer) fromSelection(sel HotelSelection, fallbackLocation string, index int) domain.HotelResult {
	id := fmt.Sprintf("hotel-%d", index)
	if sel.HotelID != 0 {
		id = fmt.Sprintf("%d", sel.HotelID)
	}

	name := sel.Name
	if name == "" {
		name = fmt.Sprintf("Hotel %d", index+1)
	}

	// Price fallback order: last observed price, then synthesized placeholder.
	price := n.placeholderPrice()
	if sel.LastPrice != nil && sel.LastPrice.Price > 0 {
		price = sel.LastPrice.Price
	}

	result := domain.HotelResult{
		ID:          id,
		Name:        name,
		Location:    fallbackLocation,
		Price:       price,
		Stars:       sel.Stars,
		Rating:      sel.Rating,
		Distance:    sel.Distance,
		Amenities:   []string{},
		Description: fmt.Sprintf("%s located in %s.", name, fallbackLocation),
		Contact:     "Contact information available on booking",
	}
	if sel.HasWifi {
		result.Amenities = []string{"Free WiFi"}
	}
	applyDefaults(&result)
	return result
}

// FromHotelPrice normalizes a resolved hotel match with its cached price
// snapshot. snapshot may be nil when the price cache had no entry.
func (n *Normalizer) FromHotelPrice(hotel *LookupHotel, snapshot *CacheSnapshot, query string) domain.HotelResult {
	id := hotel.ID
	if id == "" {
		id = "hotel-0"
	}

	name := hotel.Label
	if name == "" {
		name = "Hotel 1"
	}

	location := hotel.LocationName
	if location == "" {
		location = query
	}

	// Price fallback order: cached priceFrom, then synthesized placeholder.
	price := n.placeholderPrice()
	if snapshot != nil && snapshot.PriceFrom > 0 {
		price = snapshot.PriceFrom
	}

	result := domain.HotelResult{
		ID:          id,
		Name:        name,
		Location:    location,
		Price:       price,
		Amenities:   []string{},
		Description: fmt.Sprintf("%s located in %s.", name, location),
		Contact:     "Contact information available on booking",
	}
	applyDefaults(&result)
	return result
}

// applyDefaults fills presentation defaults so no field renders blank.
func applyDefaults(r *domain.HotelResult) {
	if r.Stars == 0 {
		r.Stars = domain.DefaultHotelStars
	}
	if r.Rating == 0 {
		r.Rating = domain.DefaultHotelRating
	}
	if r.Distance == 0 {
		r.Distance = domain.DefaultHotelDistance
	}
}

// placeholderPrice synthesizes a displayable price in [50, 250).
func (n *Normalizer) placeholderPrice() float64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return float64(n.rnd.Intn(placeholderPriceSpan) + placeholderPriceMin)
}
