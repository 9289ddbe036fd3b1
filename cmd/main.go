package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/ijalalfrz/a2a-flight-agent/internal/app/config"
	"github.com/ijalalfrz/a2a-flight-agent/internal/app/dto"
	"github.com/ijalalfrz/a2a-flight-agent/internal/app/endpoints"
	"github.com/ijalalfrz/a2a-flight-agent/internal/app/service"
	"github.com/ijalalfrz/a2a-flight-agent/internal/app/transport"
	"github.com/ijalalfrz/a2a-flight-agent/internal/pkg/flightprovider"
	"github.com/ijalalfrz/a2a-flight-agent/internal/pkg/flightprovider/custom"
	"github.com/ijalalfrz/a2a-flight-agent/internal/pkg/flightprovider/flightapi"
	"github.com/ijalalfrz/a2a-flight-agent/internal/pkg/geo"
	"github.com/ijalalfrz/a2a-flight-agent/internal/pkg/iata"
	"github.com/ijalalfrz/a2a-flight-agent/internal/pkg/logger"
)

// @title           A2A Flight Agent API
// @version         0.1.0
// @description     a2a-flight-agent
// @host      localhost:8000
// @BasePath  /
func main() {
	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	endpts := makeEndpoints(ctx, &cfg)
	router := transport.MakeHTTPRouter(&cfg, endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	if err := server.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config) endpoints.Endpoints {
	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	// init factory
	providerFactory := initFlightProviderFactory(cfg)

	// geolocation fallback for queries with no origin
	geoClient := geo.NewClient(cfg.Agent.GeoLookupURL, cfg.Agent.GeoTimeout)
	resolver := iata.NewResolver(geoClient)

	agentService := service.NewAgentService(
		resolver,
		providerFactory,
		cfg.Agent.ProviderIdentifier(),
		cfg.Agent.APIKey,
		cfg.Agent.DefaultCurrency,
	)

	// init service endpoint
	return endpoints.Endpoints{
		FlightEndpoint: endpoints.MakeFlightEndpoint(agentService),
	}
}

// register flight provider clients: the structured client for the named
// service and the heuristic client for custom URLs
func initFlightProviderFactory(cfg *config.Config) *flightprovider.FlightProviderFactory {
	factory := flightprovider.NewFlightProviderFactory()

	factory.AddProvider(flightapi.ProviderName, flightapi.NewProvider(flightprovider.FlightProviderConfig{
		APIKey:  cfg.Agent.APIKey,
		Timeout: cfg.Agent.ProviderTimeout,
	}))

	factory.AddProvider(custom.ProviderName, custom.NewProvider(flightprovider.FlightProviderConfig{
		SearchAPIURL: cfg.Agent.ProviderIdentifier(),
		APIKey:       cfg.Agent.APIKey,
		Timeout:      cfg.Agent.ProviderTimeout,
	}))

	return factory
}
