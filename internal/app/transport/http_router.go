package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/ijalalfrz/a2a-flight-agent/internal/app/config"
	"github.com/ijalalfrz/a2a-flight-agent/internal/app/dto"
	"github.com/ijalalfrz/a2a-flight-agent/internal/app/endpoints"
	httptransport "github.com/ijalalfrz/a2a-flight-agent/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, dto.HealthResponse{
			Status:  "healthy",
			Version: config.Version,
		})
	})

	router.Route("/a2a", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Post("/flight", httptransport.MakeHandlerFunc(
			endpts.FlightEndpoint.Search,
			httptransport.DecodeA2ARequest,
			httptransport.ResponseWithBody,
		))
	})

	return router
}
