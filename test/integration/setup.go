// Package integration provides helpers and integration tests for the travel
// search proxy. Integration tests exercise the full chain: HTTP handlers,
// use cases, and the real provider clients pointed at stub upstreams.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	proxyhttp "github.com/travelix/travel-search-proxy/internal/adapter/http"
	"github.com/travelix/travel-search-proxy/internal/adapter/http/middleware"
	"github.com/travelix/travel-search-proxy/internal/adapter/provider/hotellook"
	"github.com/travelix/travel-search-proxy/internal/adapter/provider/travelpayouts"
	"github.com/travelix/travel-search-proxy/internal/infrastructure/timeutil"
	"github.com/travelix/travel-search-proxy/internal/usecase"
)

// FixedTimestamp is the envelope timestamp produced by test servers.
const FixedTimestamp = "2025-06-15T12:00:00.000Z"

// TestServer wraps an Echo instance wired exactly like the production server,
// with the provider clients pointed at stub upstreams.
type TestServer struct {
	Echo *echo.Echo
}

// Upstreams holds the stub upstream servers for one test.
type Upstreams struct {
	Flights *httptest.Server
	Engine  *httptest.Server
	Widget  *httptest.Server
}

// Close shuts down all stub upstreams.
func (u *Upstreams) Close() {
	if u.Flights != nil {
		u.Flights.Close()
	}
	if u.Engine != nil {
		u.Engine.Close()
	}
	if u.Widget != nil {
		u.Widget.Close()
	}
}

// NewTestServer assembles the full proxy against the given stub upstreams.
// Nil upstream fields leave the corresponding client on its default host,
// which no integration test should reach.
func NewTestServer(up *Upstreams) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = proxyhttp.ErrorHandler(zerolog.Nop())
	middleware.Setup(e, zerolog.Nop())

	var flightOpts []travelpayouts.Option
	if up.Flights != nil {
		flightOpts = append(flightOpts, travelpayouts.WithBaseURL(up.Flights.URL))
	}
	flightClient := travelpayouts.NewClient("test-token", flightOpts...)

	var hotelOpts []hotellook.Option
	if up.Engine != nil {
		hotelOpts = append(hotelOpts, hotellook.WithEngineBaseURL(up.Engine.URL))
	}
	if up.Widget != nil {
		hotelOpts = append(hotelOpts, hotellook.WithWidgetBaseURL(up.Widget.URL))
	}
	hotelClient := hotellook.NewClient("test-token", hotelOpts...)

	flights := usecase.NewFlightSearchUseCase(flightClient, usecase.FlightSearchConfig{
		TokenAvailable: true,
		Clock:          timeutil.NewMockClockFromString("2025-06-15T12:00:00Z"),
	})
	hotels := usecase.NewHotelSearchUseCase(hotelClient, usecase.HotelSearchConfig{
		TokenAvailable: true,
		Normalizer:     hotellook.NewNormalizerWithSeed(1),
	})

	handler := proxyhttp.NewSearchHandler(flights, hotels, usecase.NewBookingLinkBuilder("297036"))
	proxyhttp.RegisterRoutes(e, handler)

	return &TestServer{Echo: e}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Post executes a JSON POST against the test server.
func (ts *TestServer) Post(path string, body interface{}) Response {
	bodyBytes, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(bodyBytes))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)

	return Response{Code: rec.Code, Body: rec.Body.Bytes(), Headers: rec.Header()}
}

// Get executes a GET against the test server.
func (ts *TestServer) Get(path string) Response {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)

	return Response{Code: rec.Code, Body: rec.Body.Bytes(), Headers: rec.Header()}
}

// ParseEnvelope parses the response body into a generic envelope map.
func (r *Response) ParseEnvelope() (map[string]interface{}, error) {
	var envelope map[string]interface{}
	if err := json.Unmarshal(r.Body, &envelope); err != nil {
		return nil, err
	}
	return envelope, nil
}
