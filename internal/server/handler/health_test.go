package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/codevision-kit/internal/server/dto"
)

func TestHealthHandler(t *testing.T) {
	get := func(h *HealthHandler, path string) (*httptest.ResponseRecorder, dto.HealthResponse) {
		engine := newTestEngine()
		engine.GET("/health", h.Health)
		engine.GET("/ready", h.Ready)
		rec := serve(engine, httptest.NewRequest(http.MethodGet, path, nil))

		var resp dto.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return rec, resp
	}

	t.Run("health は常に ok", func(t *testing.T) {
		rec, resp := get(NewHealthHandler(nil), "/health")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", resp.Status)
	})

	t.Run("既定のキーがあれば ready", func(t *testing.T) {
		rec, resp := get(NewHealthHandler(func() bool { return true }), "/ready")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", resp.Checks["gemini"])
	})

	t.Run("既定のキーがなければ not_ready", func(t *testing.T) {
		rec, resp := get(NewHealthHandler(func() bool { return false }), "/ready")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "not_ready", resp.Status)
	})
}
