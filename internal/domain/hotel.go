package domain

// HotelSearchType selects the hotel search flow.
type HotelSearchType string

// Supported hotel search types. Location-style searches resolve a free-text
// query to a location and list popular hotels there; hotel-style searches
// resolve to a specific property and fetch its cached price.
const (
	HotelSearchLocation HotelSearchType = "location"
	HotelSearchHotel    HotelSearchType = "hotel"
	HotelSearchLookup   HotelSearchType = "lookup"
	HotelSearchCache    HotelSearchType = "cache"
	HotelSearchStatic   HotelSearchType = "static-hotels"
)

// HotelSearchParams is the parameter bag for a hotel search.
type HotelSearchParams struct {
	Type     HotelSearchType `json:"type"`
	Query    string          `json:"query"`
	CheckIn  string          `json:"checkIn,omitempty"`
	CheckOut string          `json:"checkOut,omitempty"`
	Adults   int             `json:"adults,omitempty"`
	Children int             `json:"children,omitempty"`
	Currency string          `json:"currency,omitempty"`
}

// WantsHotel reports whether the search targets a specific property rather
// than a location listing.
func (p *HotelSearchParams) WantsHotel() bool {
	return p.Type == HotelSearchHotel || p.Type == HotelSearchCache
}

// Normalize fills in the documented defaults for omitted fields.
func (p *HotelSearchParams) Normalize() {
	if p.Type == "" {
		p.Type = HotelSearchLocation
	}
	if p.Adults == 0 {
		p.Adults = 2
	}
	if p.Currency == "" {
		p.Currency = "USD"
	}
}

// Validate checks the hotel search parameters.
func (p *HotelSearchParams) Validate() error {
	// Static browsing has no free-text query; every other flow needs one.
	if p.Query == "" && p.Type != HotelSearchStatic {
		return WrapInvalidRequest("Missing required parameter: query")
	}
	if err := ValidateDate("checkIn", p.CheckIn); err != nil {
		return err
	}
	if err := ValidateDate("checkOut", p.CheckOut); err != nil {
		return err
	}
	if p.CheckIn != "" && p.CheckOut != "" && p.CheckOut < p.CheckIn {
		return WrapInvalidRequest("checkOut must not precede checkIn")
	}
	if p.Adults < 0 {
		return WrapInvalidRequest("adults must be a non-negative number")
	}
	if p.Children < 0 {
		return WrapInvalidRequest("children must be a non-negative number")
	}
	return nil
}

// Default presentation values for hotels whose provider records omit a field.
const (
	DefaultHotelStars    = 3
	DefaultHotelRating   = 70
	DefaultHotelDistance = 5
)

// HotelResult is the normalized hotel shape returned to clients regardless of
// which provider endpoint produced it.
type HotelResult struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Price       float64  `json:"price"`
	Stars       int      `json:"stars"`
	Rating      float64  `json:"rating"`
	Distance    float64  `json:"distance"`
	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`
	Contact     string   `json:"contact"`
}
