package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dtr-engine/internal/entity"
	"dtr-engine/internal/events"
	"dtr-engine/internal/format"
	"dtr-engine/internal/repository"
	"dtr-engine/internal/review"
)

func newTestRouter(t *testing.T) (*gin.Engine, *review.Service, *format.Registry) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := repository.NewMemoryStore()
	registry := format.NewRegistry(store, nil)
	reviewSvc := review.NewService(store.Intakes(), events.NewEmitter(), nil)
	return NewRouter(registry, reviewSvc, nil), reviewSvc, registry
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r, _, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateAndListFormats(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/formats",
		`{"name":"Compact","pattern":"(\\d{2}:\\d{2})","extraction_rules":{"timeIn":"1"}}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/formats", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []entity.DtrFormat `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Compact", resp.Data[0].Name)
}

func TestCreateFormatRejectsMissingFields(t *testing.T) {
	r, _, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/formats", `{"name":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApproveIntakeFlow(t *testing.T) {
	r, reviewSvc, registry := newTestRouter(t)

	rec, err := reviewSvc.Intake(t.Context(), "IN 08:00", nil, nil, nil)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/api/intakes", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), rec.ID.String())

	w = doJSON(t, r, http.MethodPost, "/api/intakes/"+rec.ID.String()+"/approve",
		`{"name":"Punch","pattern":"IN (\\d{2}:\\d{2})","extraction_rules":{"timeIn":"1"}}`)
	require.Equal(t, http.StatusCreated, w.Code)

	formats, err := registry.ListActive(t.Context(), nil)
	require.NoError(t, err)
	require.Len(t, formats, 1)
	assert.Equal(t, "Punch", formats[0].Name)

	// queue is empty once approved
	w = doJSON(t, r, http.MethodGet, "/api/intakes", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), rec.ID.String())
}

func TestApproveIntakeBadPattern(t *testing.T) {
	r, reviewSvc, _ := newTestRouter(t)
	rec, err := reviewSvc.Intake(t.Context(), "sample", nil, nil, nil)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/api/intakes/"+rec.ID.String()+"/approve",
		`{"name":"Bad","pattern":"([unclosed","extraction_rules":{"timeIn":"1"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetFormatActive(t *testing.T) {
	r, _, registry := newTestRouter(t)
	f, err := registry.Create(t.Context(), entity.FormatDraft{
		Name: "Toggle", Pattern: `x`, ExtractionRules: entity.ExtractionRules{"date": "1"},
	})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPatch, "/api/formats/"+f.ID.String()+"/active", `{"is_active":false}`)
	require.Equal(t, http.StatusOK, w.Code)

	formats, err := registry.ListActive(t.Context(), nil)
	require.NoError(t, err)
	assert.Empty(t, formats)
}

func TestGetIntakeNotFound(t *testing.T) {
	r, _, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/intakes/00000000-0000-0000-0000-000000000000", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
