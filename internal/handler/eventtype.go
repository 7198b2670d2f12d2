package handler

import (
	"net/http"
	"time"

	"github.com/nspatel/eventtags/internal/domain"
)

// eventType is the wire shape of one event category.
type eventType struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// eventTypesResponse is the success body for GET /api/event-types.
type eventTypesResponse struct {
	EventTypes []eventType `json:"eventTypes"`
}

// ListEventTypes handles GET /api/event-types.
// Returns every category seen so far, ordered by name.
func (s *Server) ListEventTypes(w http.ResponseWriter, r *http.Request) {
	types, err := s.eventTypes.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := eventTypesResponse{EventTypes: make([]eventType, len(types))}
	for i, et := range types {
		resp.EventTypes[i] = toEventType(et)
	}
	writeJSON(w, http.StatusOK, resp)
}

// toEventType converts a domain.EventType to its wire shape.
func toEventType(et domain.EventType) eventType {
	return eventType{
		ID:        et.ID.String(),
		Name:      et.Name,
		CreatedAt: et.CreatedAt,
	}
}
