package domain

import (
	"regexp"
	"time"
)

// EndpointKind selects which cached-price query shape to issue against the
// travel data provider. Each kind maps to a distinct upstream endpoint with
// its own accepted parameter subset.
type EndpointKind string

// Supported endpoint kinds.
const (
	KindCheap               EndpointKind = "cheap"
	KindDirect              EndpointKind = "direct"
	KindCalendar            EndpointKind = "calendar"
	KindMonthly             EndpointKind = "monthly"
	KindLatest              EndpointKind = "latest"
	KindWeekMatrix          EndpointKind = "week-matrix"
	KindMonthMatrix         EndpointKind = "month-matrix"
	KindNearestPlacesMatrix EndpointKind = "nearest-places-matrix"
	KindAirlineDirections   EndpointKind = "airline-directions"
	KindCityDirections      EndpointKind = "city-directions"
)

// knownKinds enumerates every supported endpoint kind.
var knownKinds = map[EndpointKind]bool{
	KindCheap:               true,
	KindDirect:              true,
	KindCalendar:            true,
	KindMonthly:             true,
	KindLatest:              true,
	KindWeekMatrix:          true,
	KindMonthMatrix:         true,
	KindNearestPlacesMatrix: true,
	KindAirlineDirections:   true,
	KindCityDirections:      true,
}

// IsKnown reports whether k is a supported endpoint kind.
func (k EndpointKind) IsKnown() bool {
	return knownKinds[k]
}

// FlightSearchParams is the parameter bag for a cached flight price search.
// Field names mirror the wire contract exactly; optional booleans and
// trip_class are pointers so that an explicit false/0 from the caller is
// distinguishable from an omitted field.
type FlightSearchParams struct {
	Type             EndpointKind `json:"type"`
	Origin           string       `json:"origin"`
	Destination      string       `json:"destination,omitempty"`
	DepartDate       string       `json:"depart_date,omitempty"`
	ReturnDate       string       `json:"return_date,omitempty"`
	Currency         string       `json:"currency,omitempty"`
	Limit            int          `json:"limit,omitempty"`
	Page             int          `json:"page,omitempty"`
	ShowToAffiliates *bool        `json:"show_to_affiliates,omitempty"`
	PeriodType       string       `json:"period_type,omitempty"`
	CalendarType     string       `json:"calendar_type,omitempty"`
	AirlineCode      string       `json:"airline_code,omitempty"`
	Flexibility      int          `json:"flexibility,omitempty"`
	Distance         int          `json:"distance,omitempty"`
	Length           int          `json:"length,omitempty"`
	TripClass        *int         `json:"trip_class,omitempty"`
	OneWay           *bool        `json:"one_way,omitempty"`
	Sorting          string       `json:"sorting,omitempty"`
	TripDuration     int          `json:"trip_duration,omitempty"`
	Month            string       `json:"month,omitempty"`
}

// iataCodeRegex matches IATA airport, city, and airline codes (2-3 letters).
var iataCodeRegex = regexp.MustCompile(`^[A-Za-z]{2,3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Normalize fills in the documented defaults for omitted fields.
// It must be called before Validate and BuildURL.
func (p *FlightSearchParams) Normalize() {
	if p.Type == "" {
		p.Type = KindCheap
	}
	if p.Currency == "" {
		p.Currency = "USD"
	}
	if p.Limit == 0 {
		p.Limit = 50
	}
	if p.ShowToAffiliates == nil {
		v := true
		p.ShowToAffiliates = &v
	}
	if p.PeriodType == "" {
		p.PeriodType = "year"
	}
	if p.CalendarType == "" {
		p.CalendarType = "departure_date"
	}
	if p.TripClass == nil {
		v := 0
		p.TripClass = &v
	}
	if p.OneWay == nil {
		v := false
		p.OneWay = &v
	}
	if p.Sorting == "" {
		p.Sorting = "price"
	}
}

// Validate checks the search parameters. Checks run in a fixed order and the
// first failure short-circuits; no outbound call is attempted on failure.
func (p *FlightSearchParams) Validate() error {
	if p.Origin == "" {
		return WrapInvalidRequest("Missing required parameter: origin")
	}
	if !iataCodeRegex.MatchString(p.Origin) {
		return WrapInvalidRequest("Origin must be a valid 2-3 letter IATA code")
	}
	if p.Destination != "" && !iataCodeRegex.MatchString(p.Destination) {
		return WrapInvalidRequest("Destination must be a valid 2-3 letter IATA code")
	}
	if p.AirlineCode != "" && !iataCodeRegex.MatchString(p.AirlineCode) {
		return WrapInvalidRequest("Airline code must be a valid 2-3 letter IATA code")
	}
	if p.TripClass != nil && (*p.TripClass < 0 || *p.TripClass > 3) {
		return WrapInvalidRequest("trip_class must be between 0 and 3")
	}
	if err := ValidateDate("depart_date", p.DepartDate); err != nil {
		return err
	}
	if err := ValidateDate("return_date", p.ReturnDate); err != nil {
		return err
	}
	return nil
}

// ValidateDate checks an optional YYYY-MM-DD date field. Empty is valid.
func ValidateDate(field, value string) error {
	if value == "" {
		return nil
	}
	if !dateRegex.MatchString(value) {
		return WrapInvalidRequest("%s must be in YYYY-MM-DD format", field)
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return WrapInvalidRequest("%s is not a valid date", field)
	}
	return nil
}
