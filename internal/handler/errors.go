package handler

import (
	"encoding/json"
	"net/http"
)

// errorResponse is the single error shape this API returns. No structured
// error codes are distinguished to the client; field-level detail stays in
// the server logs.
type errorResponse struct {
	Error string `json:"error"`
}

// genericGenerateError is the catch-all message for any generate failure —
// validation, date parsing, or a storage write. Clients see no more than this.
const genericGenerateError = "failed to generate hashtags"

// writeJSON encodes v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the uniform error body with the given status code.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
