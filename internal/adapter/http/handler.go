// Package http provides the HTTP handler layer for the travel search proxy.
// It handles request parsing, validation dispatch, response envelopes, and
// error-to-status mapping.
package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/travelix/travel-search-proxy/internal/adapter/http/response"
	"github.com/travelix/travel-search-proxy/internal/domain"
	"github.com/travelix/travel-search-proxy/internal/usecase"
)

// SearchHandler handles HTTP requests for the search proxy endpoints.
type SearchHandler struct {
	flights usecase.FlightSearchUseCase
	hotels  usecase.HotelSearchUseCase
	booking *usecase.BookingLinkBuilder
}

// NewSearchHandler creates a SearchHandler with the given use cases.
func NewSearchHandler(flights usecase.FlightSearchUseCase, hotels usecase.HotelSearchUseCase, booking *usecase.BookingLinkBuilder) *SearchHandler {
	return &SearchHandler{
		flights: flights,
		hotels:  hotels,
		booking: booking,
	}
}

// SearchFlights handles POST /api/cached-flights
//
// @Summary Search cached flight prices
// @Description Proxies a cached flight price query to the travel data provider and returns the raw result in a uniform envelope
// @Tags flights
// @Accept json
// @Produce json
// @Param request body domain.FlightSearchParams true "Search parameters"
// @Success 200 {object} response.FlightEnvelope
// @Failure 400 {object} response.FlightEnvelope "Validation error"
// @Failure 408 {object} response.FlightEnvelope "Upstream timeout"
// @Failure 500 {object} response.FlightEnvelope "Configuration or upstream error"
// @Router /api/cached-flights [post]
func (h *SearchHandler) SearchFlights(c echo.Context) error {
	var params domain.FlightSearchParams
	if err := c.Bind(&params); err != nil {
		return response.FlightFailure(c, http.StatusBadRequest, "Failed to parse request body")
	}

	result, err := h.flights.Search(c.Request().Context(), params)
	if err != nil {
		return h.handleFlightError(c, err)
	}

	return response.FlightSuccess(c, result.Data, string(result.Endpoint), result.Timestamp)
}

// SearchHotels handles POST /api/cached-hotels
//
// @Summary Search hotels
// @Description Resolves a free-text query to a location or hotel and returns normalized hotel results
// @Tags hotels
// @Accept json
// @Produce json
// @Param request body domain.HotelSearchParams true "Search parameters"
// @Success 200 {object} response.HotelEnvelope
// @Failure 400 {object} response.HotelErrorEnvelope "Validation error"
// @Failure 408 {object} response.HotelErrorEnvelope "Upstream timeout"
// @Failure 500 {object} response.HotelErrorEnvelope "Configuration or upstream error"
// @Router /api/cached-hotels [post]
func (h *SearchHandler) SearchHotels(c echo.Context) error {
	var params domain.HotelSearchParams
	if err := c.Bind(&params); err != nil {
		return response.HotelFailure(c, http.StatusBadRequest, "Failed to parse request body", "")
	}

	results, err := h.hotels.Search(c.Request().Context(), params)
	if err != nil {
		return h.handleHotelError(c, err)
	}

	return response.HotelSuccess(c, results)
}

// BookingLink handles POST /api/booking-link
//
// @Summary Build an affiliate booking deep link
// @Description Constructs a deep link to the affiliate booking site embedding the affiliate marker; no network call is made
// @Tags booking
// @Accept json
// @Produce json
// @Param request body usecase.BookingLinkParams true "Link parameters"
// @Success 200 {object} response.BookingLinkEnvelope
// @Failure 400 {object} response.FlightEnvelope "Validation error"
// @Router /api/booking-link [post]
func (h *SearchHandler) BookingLink(c echo.Context) error {
	var params usecase.BookingLinkParams
	if err := c.Bind(&params); err != nil {
		return response.FlightFailure(c, http.StatusBadRequest, "Failed to parse request body")
	}

	params.Normalize()
	if err := params.Validate(); err != nil {
		return response.FlightFailure(c, http.StatusBadRequest, validationMessage(err))
	}

	return response.BookingLink(c, h.booking.Build(&params))
}

// Health handles GET /health
// Simple health check endpoint.
func (h *SearchHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleFlightError maps taxonomy errors to flight failure envelopes.
func (h *SearchHandler) handleFlightError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrTokenNotConfigured):
		return response.FlightFailure(c, http.StatusInternalServerError,
			"API token not configured. Please set TRAVELPAYOUTS_API_TOKEN environment variable.")
	case domain.IsInvalidRequest(err):
		return response.FlightFailure(c, http.StatusBadRequest, validationMessage(err))
	case domain.IsTimeout(err):
		return response.FlightFailure(c, http.StatusRequestTimeout, "Request timeout. Please try again.")
	default:
		// Upstream auth, rate limit, unavailable, and unknown errors all
		// surface with their taxonomy message.
		return response.FlightFailure(c, http.StatusInternalServerError, err.Error())
	}
}

// handleHotelError maps taxonomy errors to hotel failure envelopes.
func (h *SearchHandler) handleHotelError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrTokenNotConfigured):
		return response.HotelFailure(c, http.StatusInternalServerError,
			"TravelPayouts token not configured", "")
	case domain.IsInvalidRequest(err):
		return response.HotelFailure(c, http.StatusBadRequest, validationMessage(err), "")
	case domain.IsTimeout(err):
		return response.HotelFailure(c, http.StatusRequestTimeout, "Failed to search hotels", err.Error())
	default:
		return response.HotelFailure(c, http.StatusInternalServerError, "Failed to search hotels", err.Error())
	}
}

// validationMessage strips the sentinel prefix from a validation error so
// the caller sees only the specific message.
func validationMessage(err error) string {
	return strings.TrimPrefix(err.Error(), domain.ErrInvalidRequest.Error()+": ")
}
