// Package http provides the HTTP handler layer for the travel search proxy.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/travelix/travel-search-proxy/internal/adapter/http/response"
)

// RegisterRoutes registers all proxy routes. The /api/cached-* paths are the
// published contract consumed by the marketing site and must not change.
func RegisterRoutes(e *echo.Echo, h *SearchHandler) {
	// Health check endpoint (root level for load balancers)
	e.GET("/health", h.Health)

	api := e.Group("/api")
	api.POST("/cached-flights", h.SearchFlights)
	api.POST("/cached-hotels", h.SearchHotels)
	api.POST("/booking-link", h.BookingLink)
}

// ErrorHandler returns an echo HTTPErrorHandler that renders framework-level
// errors in the proxy's envelope shape. Non-POST calls to the API paths get
// the documented 405 message.
func ErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			switch httpErr.Code {
			case http.StatusMethodNotAllowed:
				_ = response.MethodNotAllowed(c)
				return
			case http.StatusNotFound:
				_ = response.FlightFailure(c, http.StatusNotFound, "Not found")
				return
			}
		}

		log.Error().Err(err).Str("path", c.Request().URL.Path).Msg("Unhandled HTTP error")
		_ = response.FlightFailure(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
