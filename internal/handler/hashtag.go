package handler

import (
	"net/http"
	"strconv"

	"github.com/nspatel/eventtags/internal/domain"
)

// popularHashtag is the wire shape of one popularity listing row.
type popularHashtag struct {
	Text       string `json:"text"`
	EventType  string `json:"eventType"`
	UsageCount int64  `json:"usageCount"`
}

// popularResponse is the success body for GET /api/hashtags/popular.
type popularResponse struct {
	Hashtags []popularHashtag `json:"hashtags"`
}

// ListPopularHashtags handles GET /api/hashtags/popular.
// The optional ?limit= query parameter bounds the result size; the service
// applies the default and the cap, so a missing or garbage value simply
// falls back rather than erroring.
func (s *Server) ListPopularHashtags(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	popular, err := s.hashtags.ListPopular(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := popularResponse{Hashtags: make([]popularHashtag, len(popular))}
	for i, p := range popular {
		resp.Hashtags[i] = toPopularHashtag(p)
	}
	writeJSON(w, http.StatusOK, resp)
}

// toPopularHashtag converts a domain row to its wire shape.
func toPopularHashtag(p domain.PopularHashtag) popularHashtag {
	return popularHashtag{
		Text:       p.Text,
		EventType:  p.EventType,
		UsageCount: p.UsageCount,
	}
}
