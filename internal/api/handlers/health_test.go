package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobconnect-backend/internal/store"
	"jobconnect-backend/pkg/models"
)

func TestHealthHandler(t *testing.T) {
	c, rec := newTestContext(httptest.NewRequest(http.MethodGet, "/health", nil))

	require.NoError(t, HealthHandler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
}

func TestReadinessHandlerReportsChecks(t *testing.T) {
	st := &fakeStore{}
	llm := &fakeLLM{healthy: true}
	c, rec := newTestContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	require.NoError(t, ReadinessHandler(st, llm, newFakeObjectStore())(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ready", resp.Status)
	assert.Equal(t, "ok", resp.Checks["store"])
	assert.Equal(t, "ok", resp.Checks["llm"])
	assert.Equal(t, "ok", resp.Checks["object_storage"])
}

func TestReadinessHandlerDegradedDependencies(t *testing.T) {
	st := &fakeStore{fail: true}
	llm := &fakeLLM{healthy: false}
	c, rec := newTestContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	require.NoError(t, ReadinessHandler(st, llm, nil)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "unreachable", resp.Checks["store"])
	assert.Equal(t, "not_configured", resp.Checks["llm"])
	assert.Equal(t, "not_configured", resp.Checks["object_storage"])
}

func TestReadinessHandlerUnconfiguredStore(t *testing.T) {
	llm := &fakeLLM{healthy: true}
	c, rec := newTestContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	require.NoError(t, ReadinessHandler(store.Unconfigured(), llm, newFakeObjectStore())(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "not_configured", resp.Checks["store"])
}

func TestStatusHandler(t *testing.T) {
	llm := &fakeLLM{healthy: true}
	c, rec := newTestContext(httptest.NewRequest(http.MethodGet, "/status", nil))

	require.NoError(t, StatusHandler(llm)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "running", resp["status"])
	assert.Equal(t, "claude", resp["llm_provider"])
	assert.Equal(t, true, resp["llm_healthy"])
}
