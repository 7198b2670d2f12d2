package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/nspatel/eventtags/internal/domain"
)

// generateResponse is the success body for POST /api/generate.
type generateResponse struct {
	Hashtags []string `json:"hashtags"`
}

// Generate handles POST /api/generate.
// Every failure class — malformed body, validation, date parsing, storage —
// collapses to 400 with the same generic message. Storage failures are
// logged server-side before being folded in; validation failures are the
// client's problem and only logged at debug.
func (s *Server) Generate(w http.ResponseWriter, r *http.Request) {
	var req domain.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, genericGenerateError)
		return
	}

	hashtags, err := s.generator.Generate(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			slog.DebugContext(r.Context(), "generate request rejected", "error", err)
		} else {
			slog.ErrorContext(r.Context(), "generate request failed", "error", err)
		}
		writeError(w, http.StatusBadRequest, genericGenerateError)
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{Hashtags: hashtags})
}
