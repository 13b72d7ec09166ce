// Package travelpayouts implements the outbound client for the Travelpayouts
// cached flight price API. It owns the endpoint catalog, the request builder,
// and the classification of upstream failures.
package travelpayouts

import (
	"strings"

	"github.com/spf13/cast"

	"github.com/travelix/travel-search-proxy/internal/domain"
)

// Endpoint describes one upstream price endpoint: its base URL and the
// ordered subset of query parameters it accepts. Parameters outside the
// subset are silently dropped, never forwarded.
type Endpoint struct {
	BaseURL string
	Params  []string
}

// Query parameter names accepted across the endpoint catalog.
const (
	paramOrigin           = "origin"
	paramDestination      = "destination"
	paramDepartDate       = "depart_date"
	paramReturnDate       = "return_date"
	paramCurrency         = "currency"
	paramPage             = "page"
	paramLimit            = "limit"
	paramCalendarType     = "calendar_type"
	paramLength           = "length"
	paramPeriodType       = "period_type"
	paramShowToAffiliates = "show_to_affiliates"
	paramOneWay           = "one_way"
	paramSorting          = "sorting"
	paramTripClass        = "trip_class"
	paramFlexibility      = "flexibility"
	paramAirlineCode      = "airline_code"
	paramMonth            = "month"
)

// endpointTable is the exhaustive catalog of supported endpoint kinds.
// It is immutable at runtime; the per-kind parameter lists define exactly
// what may appear in the outbound query string.
var endpointTable = map[domain.EndpointKind]Endpoint{
	domain.KindCheap: {
		BaseURL: "https://api.travelpayouts.com/v1/prices/cheap",
		Params:  []string{paramOrigin, paramDestination, paramDepartDate, paramReturnDate, paramCurrency, paramPage},
	},
	domain.KindDirect: {
		BaseURL: "https://api.travelpayouts.com/v1/prices/direct",
		Params:  []string{paramOrigin, paramDestination, paramDepartDate, paramReturnDate, paramCurrency},
	},
	domain.KindCalendar: {
		BaseURL: "https://api.travelpayouts.com/v1/prices/calendar",
		Params:  []string{paramOrigin, paramDestination, paramDepartDate, paramReturnDate, paramCalendarType, paramLength, paramCurrency},
	},
	domain.KindMonthly: {
		BaseURL: "https://api.travelpayouts.com/v1/prices/monthly",
		Params:  []string{paramOrigin, paramDestination, paramCurrency},
	},
	domain.KindLatest: {
		BaseURL: "https://api.travelpayouts.com/v2/prices/latest",
		Params: []string{paramOrigin, paramDestination, paramCurrency, paramPeriodType, paramPage, paramLimit,
			paramShowToAffiliates, paramOneWay, paramSorting, paramTripClass},
	},
	domain.KindWeekMatrix: {
		BaseURL: "https://api.travelpayouts.com/v2/prices/week-matrix",
		Params:  []string{paramOrigin, paramDestination, paramCurrency, paramShowToAffiliates, paramDepartDate, paramReturnDate},
	},
	domain.KindMonthMatrix: {
		BaseURL: "https://api.travelpayouts.com/v2/prices/month-matrix",
		Params:  []string{paramOrigin, paramDestination, paramCurrency, paramShowToAffiliates, paramMonth},
	},
	domain.KindNearestPlacesMatrix: {
		BaseURL: "https://api.travelpayouts.com/v2/prices/nearest-places-matrix",
		Params: []string{paramOrigin, paramDestination, paramCurrency, paramLimit, paramShowToAffiliates,
			paramDepartDate, paramReturnDate, paramFlexibility},
	},
	domain.KindAirlineDirections: {
		BaseURL: "https://api.travelpayouts.com/v1/airline-directions",
		Params:  []string{paramAirlineCode, paramLimit},
	},
	domain.KindCityDirections: {
		BaseURL: "https://api.travelpayouts.com/v1/city-directions",
		Params:  []string{paramOrigin, paramCurrency},
	},
}

// Resolve maps an endpoint kind to its catalog entry. Unknown kinds fall back
// to the cheap endpoint. This leniency is a deliberate policy: an unrecognized
// type behaves identically to "cheap" rather than producing an error.
func Resolve(kind domain.EndpointKind) Endpoint {
	if ep, ok := endpointTable[kind]; ok {
		return ep
	}
	return endpointTable[domain.KindCheap]
}

// paramValue resolves the value of one query parameter from the parameter
// bag. The second return reports whether the parameter should be included:
// string fields are included when non-empty, numeric fields when non-zero,
// and pointer-typed booleans/ints whenever the caller (or Normalize) set them.
func paramValue(p *domain.FlightSearchParams, name string) (string, bool) {
	switch name {
	case paramOrigin:
		return strings.ToUpper(p.Origin), p.Origin != ""
	case paramDestination:
		return strings.ToUpper(p.Destination), p.Destination != ""
	case paramAirlineCode:
		return strings.ToUpper(p.AirlineCode), p.AirlineCode != ""
	case paramCurrency:
		return strings.ToUpper(p.Currency), p.Currency != ""
	case paramDepartDate:
		return p.DepartDate, p.DepartDate != ""
	case paramReturnDate:
		return p.ReturnDate, p.ReturnDate != ""
	case paramCalendarType:
		return p.CalendarType, p.CalendarType != ""
	case paramPeriodType:
		return p.PeriodType, p.PeriodType != ""
	case paramSorting:
		return p.Sorting, p.Sorting != ""
	case paramMonth:
		return p.Month, p.Month != ""
	case paramPage:
		return cast.ToString(p.Page), p.Page != 0
	case paramLimit:
		return cast.ToString(p.Limit), p.Limit != 0
	case paramLength:
		return cast.ToString(p.Length), p.Length != 0
	case paramFlexibility:
		return cast.ToString(p.Flexibility), p.Flexibility != 0
	case paramShowToAffiliates:
		if p.ShowToAffiliates == nil {
			return "", false
		}
		return cast.ToString(*p.ShowToAffiliates), true
	case paramOneWay:
		if p.OneWay == nil {
			return "", false
		}
		return cast.ToString(*p.OneWay), true
	case paramTripClass:
		if p.TripClass == nil {
			return "", false
		}
		return cast.ToString(*p.TripClass), true
	default:
		return "", false
	}
}
