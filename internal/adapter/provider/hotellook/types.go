// Package hotellook implements the outbound client for the Hotellook hotel
// data API: free-text lookup, per-location popularity listings, and cached
// price snapshots, plus normalization into the proxy's hotel result shape.
package hotellook

// LookupResponse is the shape returned by the lookup endpoint. The result may
// contain location matches, hotel matches, both, or neither.
type LookupResponse struct {
	Results LookupResults `json:"results"`
	Status  string        `json:"status"`
}

// LookupResults holds the matched locations and hotels.
type LookupResults struct {
	Locations []LookupLocation `json:"locations,omitempty"`
	Hotels    []LookupHotel    `json:"hotels,omitempty"`
}

// Empty reports whether the lookup matched nothing. An empty lookup is a
// valid outcome, not an error.
func (r *LookupResults) Empty() bool {
	return len(r.Locations) == 0 && len(r.Hotels) == 0
}

// LookupLocation is a resolved location (city) match.
type LookupLocation struct {
	ID          string   `json:"id"`
	CityName    string   `json:"cityName"`
	FullName    string   `json:"fullName"`
	CountryCode string   `json:"countryCode"`
	CountryName string   `json:"countryName"`
	IATA        []string `json:"iata"`
	HotelsCount string   `json:"hotelsCount"`
	Location    GeoPoint `json:"location"`
	Score       float64  `json:"_score"`
}

// LookupHotel is a resolved hotel (property) match.
type LookupHotel struct {
	Label        string   `json:"label"`
	LocationName string   `json:"locationName"`
	LocationID   string   `json:"locationId"`
	ID           string   `json:"id"`
	FullName     string   `json:"fullName"`
	Location     GeoPoint `json:"location"`
}

// GeoPoint holds coordinates as the lookup endpoint returns them (strings).
type GeoPoint struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// selectionResponse wraps the popularity listing for a location.
type selectionResponse struct {
	Popularity []HotelSelection `json:"popularity"`
}

// HotelSelection is one hotel entry from a location's popularity listing.
type HotelSelection struct {
	HotelID      int64          `json:"hotel_id"`
	Distance     float64        `json:"distance"`
	Name         string         `json:"name"`
	Stars        int            `json:"stars"`
	Rating       float64        `json:"rating"`
	PropertyType string         `json:"property_type"`
	HotelType    []string       `json:"hotel_type"`
	LastPrice    *LastPriceInfo `json:"last_price_info,omitempty"`
	HasWifi      bool           `json:"has_wifi"`
}

// LastPriceInfo is the most recent observed price for a selection entry.
type LastPriceInfo struct {
	Price         float64 `json:"price"`
	OldPrice      float64 `json:"old_price"`
	Discount      float64 `json:"discount"`
	InsertionTime int64   `json:"insertion_time"`
	Nights        int     `json:"nights"`
	PricePerNight float64 `json:"price_pn"`
}

// CacheSnapshot is a cached price record for a specific hotel.
type CacheSnapshot struct {
	Stars      int           `json:"stars"`
	LocationID int64         `json:"locationId"`
	PriceFrom  float64       `json:"priceFrom"`
	PriceAvg   float64       `json:"priceAvg"`
	HotelName  string        `json:"hotelName"`
	Location   CacheLocation `json:"location"`
	HotelID    int64         `json:"hotelId"`
}

// CacheLocation describes where a cached hotel is.
type CacheLocation struct {
	Country string   `json:"country"`
	Geo     GeoCoord `json:"geo"`
	State   *string  `json:"state"`
	Name    string   `json:"name"`
}

// GeoCoord holds numeric coordinates as the cache endpoint returns them.
type GeoCoord struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Stay holds the stay parameters forwarded on price queries.
type Stay struct {
	CheckIn  string
	CheckOut string
	Adults   int
	Children int
	Currency string
}
