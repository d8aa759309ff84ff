package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-checker/internal/analyses"
	"resume-checker/internal/shared/config"
)

func TestAddr(t *testing.T) {
	assert.Equal(t, ":8080", Addr(""))
	assert.Equal(t, ":9000", Addr("9000"))
	assert.Equal(t, ":9000", Addr(":9000"))
}

func TestRouterHealthAndMetrics(t *testing.T) {
	svc := &analyses.Service{Repo: analyses.NewMemoryRepo()}
	r := NewRouter(RouterDeps{
		Config:          config.Config{},
		AnalysisHandler: &analyses.Handler{Service: svc},
	})

	health := httptest.NewRecorder()
	r.ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, health.Code)
	assert.JSONEq(t, `{"ok": true}`, health.Body.String())

	metrics := httptest.NewRecorder()
	r.ServeHTTP(metrics, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, metrics.Code)
}

func TestRouterAnalyzeHasTighterRateLimit(t *testing.T) {
	svc := &analyses.Service{Repo: analyses.NewMemoryRepo()}
	r := NewRouter(RouterDeps{
		Config:          config.Config{},
		AnalysisHandler: &analyses.Handler{Service: svc},
	})

	// The upload bucket holds 10 tokens; bodyless POSTs fail with 400 but
	// still consume one each.
	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/analyze", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "request %d", i)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/analyze", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	// The read endpoints draw from the wider bucket and stay available.
	read := httptest.NewRecorder()
	r.ServeHTTP(read, httptest.NewRequest(http.MethodGet, "/api/results/missing", nil))
	assert.Equal(t, http.StatusNotFound, read.Code)
}

func TestRouterUnknownResultReturns404(t *testing.T) {
	svc := &analyses.Service{Repo: analyses.NewMemoryRepo()}
	r := NewRouter(RouterDeps{
		Config:          config.Config{},
		AnalysisHandler: &analyses.Handler{Service: svc},
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/results/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "Analysis not found"}`, rec.Body.String())
}
