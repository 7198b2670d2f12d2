package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nspatel/eventtags/internal/domain"
	"github.com/nspatel/eventtags/internal/handler"
)

// ---- mock GenerateServicer --------------------------------------------------

type mockGenerateServicer struct {
	generate func(ctx context.Context, req domain.GenerateRequest) ([]string, error)
}

func (m *mockGenerateServicer) Generate(ctx context.Context, req domain.GenerateRequest) ([]string, error) {
	return m.generate(ctx, req)
}

// compile-time check: mockGenerateServicer must satisfy handler.GenerateServicer.
var _ handler.GenerateServicer = (*mockGenerateServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with service mocks.
// Pass nil for mocks that the test does not use.
func newHTTPHandler(gen handler.GenerateServicer, tags handler.HashtagServicer, types handler.EventTypeServicer) http.Handler {
	return handler.NewServer(gen, tags, types).Routes()
}

// ---- POST /api/generate ----------------------------------------------------

func TestGenerate_200(t *testing.T) {
	tags := []string{"#weddingJaneJohn", "#weddingCelebration", "#WeddingDay"}
	svc := &mockGenerateServicer{
		generate: func(_ context.Context, req domain.GenerateRequest) ([]string, error) {
			assert.Equal(t, "wedding", req.EventType)
			assert.Equal(t, "Jane", req.BrideName)
			assert.Equal(t, "John", req.GroomName)
			return tags, nil
		},
	}

	body := `{"eventType":"wedding","brideName":"Jane","groomName":"John"}`
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newHTTPHandler(svc, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp struct {
		Hashtags []string `json:"hashtags"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, tags, resp.Hashtags)
}

func TestGenerate_400_MalformedBody(t *testing.T) {
	svc := &mockGenerateServicer{
		generate: func(_ context.Context, _ domain.GenerateRequest) ([]string, error) {
			t.Fatal("service must not be called for a malformed body")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	newHTTPHandler(svc, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assertGenericError(t, rec)
}

func TestGenerate_400_ValidationError(t *testing.T) {
	svc := &mockGenerateServicer{
		generate: func(_ context.Context, _ domain.GenerateRequest) ([]string, error) {
			return nil, fmt.Errorf("service.GenerateService.Generate: %w: eventType is required", domain.ErrValidation)
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	newHTTPHandler(svc, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assertGenericError(t, rec)
}

func TestGenerate_400_StoreFailure(t *testing.T) {
	svc := &mockGenerateServicer{
		generate: func(_ context.Context, _ domain.GenerateRequest) ([]string, error) {
			return nil, errors.New("connection refused")
		},
	}

	body := `{"eventType":"wedding","brideName":"Jane","groomName":"John"}`
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newHTTPHandler(svc, nil, nil).ServeHTTP(rec, req)

	// Storage failures collapse into the same generic 400 as validation —
	// the client cannot tell them apart.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assertGenericError(t, rec)
}

// assertGenericError checks the uniform error body: a single generic message
// with no field-level detail or error codes.
func assertGenericError(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "failed to generate hashtags", resp.Error)
}
