package usecase

import (
	"net/url"
	"strings"

	"github.com/spf13/cast"

	"github.com/travelix/travel-search-proxy/internal/domain"
)

// bookingBaseURL is the affiliate booking site search page.
const bookingBaseURL = "https://www.aviasales.com/search"

// BookingLinkParams are the search parameters embedded in an affiliate
// booking deep link.
type BookingLinkParams struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	DepartDate  string `json:"depart_date,omitempty"`
	Adults      int    `json:"adults,omitempty"`
	Children    int    `json:"children,omitempty"`
	Infants     int    `json:"infants,omitempty"`
	Currency    string `json:"currency,omitempty"`
}

// Normalize fills in defaults for omitted fields.
func (p *BookingLinkParams) Normalize() {
	if p.Adults == 0 {
		p.Adults = 1
	}
	if p.Currency == "" {
		p.Currency = "USD"
	}
}

// Validate checks the deep link parameters.
func (p *BookingLinkParams) Validate() error {
	if p.Origin == "" {
		return domain.WrapInvalidRequest("Missing required parameter: origin")
	}
	if p.Destination == "" {
		return domain.WrapInvalidRequest("Missing required parameter: destination")
	}
	return domain.ValidateDate("depart_date", p.DepartDate)
}

// BookingLinkBuilder constructs affiliate deep links to the booking site.
// The parameter names are part of the affiliate tracking contract and must
// not change.
type BookingLinkBuilder struct {
	marker string
}

// NewBookingLinkBuilder creates a builder with the given affiliate marker.
func NewBookingLinkBuilder(marker string) *BookingLinkBuilder {
	return &BookingLinkBuilder{marker: marker}
}

// Build returns the deep link URL for the given (normalized, validated)
// parameters. No network call is involved; this is pure URL construction.
func (b *BookingLinkBuilder) Build(p *BookingLinkParams) string {
	pairs := [][2]string{
		{"marker", b.marker},
		{"origin", strings.ToUpper(p.Origin)},
		{"destination", strings.ToUpper(p.Destination)},
		{"depart_date", p.DepartDate},
		{"adults", cast.ToString(p.Adults)},
		{"children", cast.ToString(p.Children)},
		{"infants", cast.ToString(p.Infants)},
		{"currency", p.Currency},
		{"with_request", "true"},
	}

	var sb strings.Builder
	sb.WriteString(bookingBaseURL)
	for i, pair := range pairs {
		if i == 0 {
			sb.WriteByte('?')
		} else {
			sb.WriteByte('&')
		}
		sb.WriteString(pair[0])
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(pair[1]))
	}
	return sb.String()
}
