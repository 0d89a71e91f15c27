// Package api exposes the scoring and lineup operations over HTTP for the
// scorer client. Requests go straight to the services; the eventbus surface
// stays the source of published facts.
package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	lineupservice "github.com/sandlot-league/scorebook/app/modules/lineup/application"
	scoringservice "github.com/sandlot-league/scorebook/app/modules/scoring/application"
)

// Server holds the HTTP surface's dependencies.
type Server struct {
	logger  *slog.Logger
	scoring scoringservice.Service
	lineup  lineupservice.Service
	limiter *ipRateLimiter
}

// NewServer creates a new Server.
func NewServer(logger *slog.Logger, scoring scoringservice.Service, lineup lineupservice.Service) *Server {
	return &Server{
		logger:  logger,
		scoring: scoring,
		lineup:  lineup,
		limiter: newIPRateLimiter(defaultRequestsPerSecond, defaultBurst),
	}
}

// Routes builds the router with middleware and all endpoints registered.
func (s *Server) Routes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(
		chimiddleware.RequestID,
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		s.limiter.Middleware,
	)

	r.Route("/games/{gameID}", func(r chi.Router) {
		r.Post("/events", s.handleRecordEvent)
		r.Post("/events/{eventID}/correct", s.handleCorrectEvent)
		r.Get("/state", s.handleGameState)

		r.Get("/lineup", s.handleGetLineup)
		r.Put("/lineup", s.handleSaveLineup)
		r.Post("/lineup/import", s.handleImportLineup)
	})
	r.Get("/teams/{teamID}/lineup-template", s.handleGetTemplate)

	return r
}
