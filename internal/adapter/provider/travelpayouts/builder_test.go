package travelpayouts

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelix/travel-search-proxy/internal/domain"
	"github.com/travelix/travel-search-proxy/test/testutil"
)

func normalized(p domain.FlightSearchParams) *domain.FlightSearchParams {
	p.Normalize()
	return &p
}

func TestBuildURL_TokenIsAlwaysFirst(t *testing.T) {
	p := normalized(domain.FlightSearchParams{Origin: "led", Destination: "hkt"})

	built := BuildURL(domain.KindCheap, p, "secret-token")

	require.True(t, strings.HasPrefix(built, "https://api.travelpayouts.com/v1/prices/cheap?token=secret-token"))
}

func TestBuildURL_PerKindParameterSubsets(t *testing.T) {
	// A fully populated bag: every kind must forward exactly its own subset
	// and drop the rest.
	full := domain.FlightSearchParams{
		Type:             domain.KindCheap,
		Origin:           "led",
		Destination:      "hkt",
		DepartDate:       "2025-03",
		ReturnDate:       "2025-04",
		Currency:         "eur",
		Limit:            30,
		Page:             2,
		ShowToAffiliates: testutil.Ptr(true),
		PeriodType:       "year",
		CalendarType:     "departure_date",
		AirlineCode:      "sU",
		Flexibility:      3,
		Length:           7,
		TripClass:        testutil.Ptr(1),
		OneWay:           testutil.Ptr(false),
		Sorting:          "price",
		Month:            "2025-03-01",
	}

	tests := []struct {
		kind       domain.EndpointKind
		baseURL    string
		wantParams []string
	}{
		{
			kind:       domain.KindCheap,
			baseURL:    "https://api.travelpayouts.com/v1/prices/cheap",
			wantParams: []string{"origin", "destination", "depart_date", "return_date", "currency", "page"},
		},
		{
			kind:       domain.KindDirect,
			baseURL:    "https://api.travelpayouts.com/v1/prices/direct",
			wantParams: []string{"origin", "destination", "depart_date", "return_date", "currency"},
		},
		{
			kind:       domain.KindCalendar,
			baseURL:    "https://api.travelpayouts.com/v1/prices/calendar",
			wantParams: []string{"origin", "destination", "depart_date", "return_date", "calendar_type", "length", "currency"},
		},
		{
			kind:       domain.KindMonthly,
			baseURL:    "https://api.travelpayouts.com/v1/prices/monthly",
			wantParams: []string{"origin", "destination", "currency"},
		},
		{
			kind:    domain.KindLatest,
			baseURL: "https://api.travelpayouts.com/v2/prices/latest",
			wantParams: []string{"origin", "destination", "currency", "period_type", "page", "limit",
				"show_to_affiliates", "one_way", "sorting", "trip_class"},
		},
		{
			kind:       domain.KindWeekMatrix,
			baseURL:    "https://api.travelpayouts.com/v2/prices/week-matrix",
			wantParams: []string{"origin", "destination", "currency", "show_to_affiliates", "depart_date", "return_date"},
		},
		{
			kind:       domain.KindMonthMatrix,
			baseURL:    "https://api.travelpayouts.com/v2/prices/month-matrix",
			wantParams: []string{"origin", "destination", "currency", "show_to_affiliates", "month"},
		},
		{
			kind:    domain.KindNearestPlacesMatrix,
			baseURL: "https://api.travelpayouts.com/v2/prices/nearest-places-matrix",
			wantParams: []string{"origin", "destination", "currency", "limit", "show_to_affiliates",
				"depart_date", "return_date", "flexibility"},
		},
		{
			kind:       domain.KindAirlineDirections,
			baseURL:    "https://api.travelpayouts.com/v1/airline-directions",
			wantParams: []string{"airline_code", "limit"},
		},
		{
			kind:       domain.KindCityDirections,
			baseURL:    "https://api.travelpayouts.com/v1/city-directions",
			wantParams: []string{"origin", "currency"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			built := BuildURL(tt.kind, &full, "tok")

			parsed, err := url.Parse(built)
			require.NoError(t, err)
			assert.Equal(t, tt.baseURL, parsed.Scheme+"://"+parsed.Host+parsed.Path)

			query := parsed.Query()
			assert.Equal(t, "tok", query.Get("token"))
			assert.Len(t, query, len(tt.wantParams)+1, "query: %s", parsed.RawQuery)
			for _, name := range tt.wantParams {
				assert.True(t, query.Has(name), "expected parameter %q in %s", name, parsed.RawQuery)
			}
		})
	}
}

func TestBuildURL_PreservesCatalogOrder(t *testing.T) {
	p := normalized(domain.FlightSearchParams{
		Origin:      "LED",
		Destination: "HKT",
		DepartDate:  "2025-03",
		ReturnDate:  "2025-04",
		Page:        2,
	})

	built := BuildURL(domain.KindCheap, p, "tok")

	assert.Equal(t,
		"https://api.travelpayouts.com/v1/prices/cheap?token=tok&origin=LED&destination=HKT&depart_date=2025-03&return_date=2025-04&currency=USD&page=2",
		built)
}

func TestBuildURL_UppercasesCodesAndCurrency(t *testing.T) {
	p := normalized(domain.FlightSearchParams{Origin: "led", Destination: "hkt", Currency: "eur"})

	built := BuildURL(domain.KindCheap, p, "tok")

	assert.Contains(t, built, "origin=LED")
	assert.Contains(t, built, "destination=HKT")
	assert.Contains(t, built, "currency=EUR")
}

func TestBuildURL_OmitsUnsetOptionalParams(t *testing.T) {
	p := &domain.FlightSearchParams{Origin: "LED"}

	built := BuildURL(domain.KindLatest, p, "tok")

	assert.NotContains(t, built, "show_to_affiliates")
	assert.NotContains(t, built, "one_way")
	assert.NotContains(t, built, "trip_class")
	assert.NotContains(t, built, "limit")
	assert.NotContains(t, built, "page")
}

func TestBuildURL_IncludesExplicitFalseAndZeroPointers(t *testing.T) {
	p := &domain.FlightSearchParams{
		Origin:           "LED",
		ShowToAffiliates: testutil.Ptr(false),
		TripClass:        testutil.Ptr(0),
	}

	built := BuildURL(domain.KindLatest, p, "tok")

	assert.Contains(t, built, "show_to_affiliates=false")
	assert.Contains(t, built, "trip_class=0")
}

func TestBuildURL_UnknownKindFallsBackToCheap(t *testing.T) {
	p := normalized(domain.FlightSearchParams{Origin: "LED", Destination: "HKT"})

	unknown := BuildURL(domain.EndpointKind("bogus"), p, "tok")
	cheap := BuildURL(domain.KindCheap, p, "tok")

	assert.Equal(t, cheap, unknown)
}

func TestBuildURL_EscapesToken(t *testing.T) {
	p := normalized(domain.FlightSearchParams{Origin: "LED"})

	built := BuildURL(domain.KindCheap, p, "a b&c")

	assert.Contains(t, built, "token=a+b%26c")
}

func TestRedactURL(t *testing.T) {
	built := "https://api.travelpayouts.com/v1/prices/cheap?token=secret&origin=LED"

	redacted := RedactURL(built)

	assert.NotContains(t, redacted, "secret")
	assert.Contains(t, redacted, "token=REDACTED")
	assert.Contains(t, redacted, "origin=LED")
}

func TestRedactURL_Unparseable(t *testing.T) {
	assert.Equal(t, "<unparseable url>", RedactURL("://missing-scheme"))
}
