// Package main is the entry point for the travel search proxy.
//
//	@title						Travelix Search Proxy API
//	@version					1.0.0
//	@description				Proxy endpoints for cached flight prices and hotel search, backed by the Travelpayouts travel data APIs.
//
//	@host						localhost:8080
//	@BasePath					/api
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/travelix/travel-search-proxy/docs"

	proxyhttp "github.com/travelix/travel-search-proxy/internal/adapter/http"
	"github.com/travelix/travel-search-proxy/internal/adapter/http/middleware"
	"github.com/travelix/travel-search-proxy/internal/adapter/provider/hotellook"
	"github.com/travelix/travel-search-proxy/internal/adapter/provider/travelpayouts"
	"github.com/travelix/travel-search-proxy/internal/config"
	"github.com/travelix/travel-search-proxy/internal/infrastructure/logger"
	"github.com/travelix/travel-search-proxy/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "travel-search-proxy",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.HTTPErrorHandler = proxyhttp.ErrorHandler(log.Logger)

	middleware.Setup(e, log.Logger)
	setupRoutes(e, cfg, log.Logger)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// setupRoutes wires the provider clients, use cases, and HTTP handler.
func setupRoutes(e *echo.Echo, cfg *config.Config, log zerolog.Logger) {
	tokenAvailable := cfg.Provider.Token != ""

	flightsClient := travelpayouts.NewClient(cfg.Provider.Token,
		travelpayouts.WithLogger(log))
	hotelsClient := hotellook.NewClient(cfg.Provider.Token,
		hotellook.WithLogger(log))

	flightsUseCase := usecase.NewFlightSearchUseCase(flightsClient, usecase.FlightSearchConfig{
		TokenAvailable: tokenAvailable,
		Timeout:        cfg.Timeouts.FlightsFetch,
		Logger:         log,
	})
	hotelsUseCase := usecase.NewHotelSearchUseCase(hotelsClient, usecase.HotelSearchConfig{
		TokenAvailable: tokenAvailable,
		Timeout:        cfg.Timeouts.HotelsFetch,
		Logger:         log,
	})
	bookingBuilder := usecase.NewBookingLinkBuilder(cfg.Provider.Marker)

	handler := proxyhttp.NewSearchHandler(flightsUseCase, hotelsUseCase, bookingBuilder)
	proxyhttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
