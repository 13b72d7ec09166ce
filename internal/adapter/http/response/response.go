// Package response provides the response envelopes for the travel search
// proxy. Both proxy handlers return a uniform {success, ...} wrapper
// regardless of which provider endpoint was queried.
package response

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/travelix/travel-search-proxy/internal/domain"
)

// timestampFormat renders envelope timestamps as ISO 8601 with millisecond
// precision in UTC, matching the wire contract.
const timestampFormat = "2006-01-02T15:04:05.000Z"

// FlightEnvelope is the uniform response for the flights proxy.
type FlightEnvelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     string          `json:"error,omitempty"`
	Endpoint  string          `json:"endpoint,omitempty"`
	Timestamp string          `json:"timestamp,omitempty"`
}

// HotelEnvelope is the success response for the hotels proxy.
type HotelEnvelope struct {
	Success bool                 `json:"success"`
	Data    []domain.HotelResult `json:"data"`
}

// HotelErrorEnvelope is the failure response for the hotels proxy.
type HotelErrorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// BookingLinkEnvelope carries an affiliate booking deep link.
type BookingLinkEnvelope struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// FlightSuccess writes a 200 response wrapping the raw provider payload.
func FlightSuccess(c echo.Context, data json.RawMessage, endpoint string, timestamp time.Time) error {
	return c.JSON(http.StatusOK, &FlightEnvelope{
		Success:   true,
		Data:      data,
		Endpoint:  endpoint,
		Timestamp: timestamp.UTC().Format(timestampFormat),
	})
}

// FlightFailure writes a failure envelope with the given status and message.
func FlightFailure(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, &FlightEnvelope{
		Success: false,
		Error:   message,
	})
}

// HotelSuccess writes a 200 response with the normalized hotel results.
// A nil slice is rendered as an empty array, never null.
func HotelSuccess(c echo.Context, results []domain.HotelResult) error {
	if results == nil {
		results = []domain.HotelResult{}
	}
	return c.JSON(http.StatusOK, &HotelEnvelope{
		Success: true,
		Data:    results,
	})
}

// HotelFailure writes a hotels failure envelope.
func HotelFailure(c echo.Context, statusCode int, message, details string) error {
	return c.JSON(statusCode, &HotelErrorEnvelope{
		Success: false,
		Error:   message,
		Details: details,
	})
}

// BookingLink writes a 200 response with the constructed deep link.
func BookingLink(c echo.Context, url string) error {
	return c.JSON(http.StatusOK, &BookingLinkEnvelope{
		Success: true,
		URL:     url,
	})
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
	})
}

// MethodNotAllowed writes the proxy's 405 envelope.
func MethodNotAllowed(c echo.Context) error {
	return c.JSON(http.StatusMethodNotAllowed, &FlightEnvelope{
		Success: false,
		Error:   "Method not allowed. Use POST.",
	})
}
