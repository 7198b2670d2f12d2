package handler

import (
	"net/http"

	"github.com/nspatel/eventtags/spec"
	"github.com/nspatel/eventtags/web"
)

// GetIndex handles GET /.
// Serves the embedded browser form UI. Serving it from the binary means the
// form's field set and the API are always deployed together.
func (s *Server) GetIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(web.Index)
}

// GetOpenAPI handles GET /openapi.yaml.
// Serves the embedded OpenAPI document describing this API.
func (s *Server) GetOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}
