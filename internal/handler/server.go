// Package handler implements the HTTP handlers for the event hashtag API.
// Handlers are methods on Server, split into endpoint-specific files
// (generate.go, hashtag.go, etc.) but all sharing the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/nspatel/eventtags/internal/domain"
)

// GenerateServicer defines the business operation the generate handler
// depends on. Defining the interface here (in the consumer package) follows
// the Go convention: "accept interfaces, return concrete types". It lets
// handler tests inject a mock without touching the database or service layer.
type GenerateServicer interface {
	Generate(ctx context.Context, req domain.GenerateRequest) ([]string, error)
}

// HashtagServicer defines the read operations the hashtag handler depends on.
type HashtagServicer interface {
	ListPopular(ctx context.Context, limit int) ([]domain.PopularHashtag, error)
}

// EventTypeServicer defines the read operations the event type handler depends on.
type EventTypeServicer interface {
	List(ctx context.Context) ([]domain.EventType, error)
}

// Server holds the dependencies shared by all API endpoints.
type Server struct {
	generator  GenerateServicer
	hashtags   HashtagServicer
	eventTypes EventTypeServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(generator GenerateServicer, hashtags HashtagServicer, eventTypes EventTypeServicer) *Server {
	return &Server{generator: generator, hashtags: hashtags, eventTypes: eventTypes}
}

// Routes returns a router with every endpoint registered.
// Mount it at "/" in main.go.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Post("/api/generate", s.Generate)
	r.Get("/api/hashtags/popular", s.ListPopularHashtags)
	r.Get("/api/event-types", s.ListEventTypes)

	r.Get("/", s.GetIndex)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	return r
}
