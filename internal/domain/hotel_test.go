package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHotelSearchParams_Normalize_Defaults(t *testing.T) {
	p := HotelSearchParams{Query: "Vancouver"}
	p.Normalize()

	assert.Equal(t, HotelSearchLocation, p.Type)
	assert.Equal(t, 2, p.Adults)
	assert.Equal(t, 0, p.Children)
	assert.Equal(t, "USD", p.Currency)
}

func TestHotelSearchParams_WantsHotel(t *testing.T) {
	tests := []struct {
		searchType HotelSearchType
		want       bool
	}{
		{HotelSearchHotel, true},
		{HotelSearchCache, true},
		{HotelSearchLocation, false},
		{HotelSearchLookup, false},
		{HotelSearchStatic, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.searchType), func(t *testing.T) {
			p := HotelSearchParams{Type: tt.searchType}
			assert.Equal(t, tt.want, p.WantsHotel())
		})
	}
}

func TestHotelSearchParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  HotelSearchParams
		wantErr string
	}{
		{
			name:   "valid location search",
			params: HotelSearchParams{Type: HotelSearchLocation, Query: "Vancouver"},
		},
		{
			name: "valid with stay dates",
			params: HotelSearchParams{
				Type: HotelSearchHotel, Query: "Hotel Vancouver",
				CheckIn: "2025-01-01", CheckOut: "2025-01-04",
			},
		},
		{
			name:   "static browsing needs no query",
			params: HotelSearchParams{Type: HotelSearchStatic},
		},
		{
			name:    "missing query",
			params:  HotelSearchParams{Type: HotelSearchLocation},
			wantErr: "Missing required parameter: query",
		},
		{
			name: "checkOut before checkIn",
			params: HotelSearchParams{
				Type: HotelSearchLocation, Query: "Vancouver",
				CheckIn: "2025-01-04", CheckOut: "2025-01-01",
			},
			wantErr: "checkOut must not precede checkIn",
		},
		{
			name: "same-day stay is allowed",
			params: HotelSearchParams{
				Type: HotelSearchLocation, Query: "Vancouver",
				CheckIn: "2025-01-01", CheckOut: "2025-01-01",
			},
		},
		{
			name:    "bad checkIn format",
			params:  HotelSearchParams{Query: "Vancouver", CheckIn: "Jan 1"},
			wantErr: "checkIn must be in YYYY-MM-DD format",
		},
		{
			name:    "negative adults",
			params:  HotelSearchParams{Query: "Vancouver", Adults: -1},
			wantErr: "adults must be a non-negative number",
		},
		{
			name:    "negative children",
			params:  HotelSearchParams{Query: "Vancouver", Children: -1},
			wantErr: "children must be a non-negative number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, IsInvalidRequest(err))
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
