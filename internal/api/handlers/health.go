package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"jobconnect-backend/internal/logging"
	"jobconnect-backend/internal/storage"
	"jobconnect-backend/internal/store"
	"jobconnect-backend/pkg/models"
)

var startTime = time.Now()

const serviceVersion = "1.0.0"

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	logging.GetGlobalLogger().Debug("Health check requested", map[string]interface{}{
		"request_id": requestID(c),
	})

	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   serviceVersion,
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	})
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   serviceVersion,
		Uptime:    time.Since(startTime),
	})
}

// ReadinessHandler reports whether the external dependencies are usable.
// Absent handles show up as "not_configured" rather than failing the probe;
// the matching endpoints degrade per call.
func ReadinessHandler(st store.Store, llm LLMService, objects storage.ObjectStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		checks := map[string]string{"api": "ok"}

		switch err := pingStore(c, st); {
		case st == nil || errors.Is(err, store.ErrNotConfigured):
			checks["store"] = "not_configured"
		case err != nil:
			checks["store"] = "unreachable"
		default:
			checks["store"] = "ok"
		}

		if llm == nil || !llm.IsHealthy() {
			checks["llm"] = "not_configured"
		} else {
			checks["llm"] = "ok"
		}

		switch {
		case objects == nil:
			checks["object_storage"] = "not_configured"
		case !objects.IsHealthy():
			checks["object_storage"] = "unreachable"
		default:
			checks["object_storage"] = "ok"
		}

		return c.JSON(http.StatusOK, models.HealthResponse{
			Status:    "ready",
			Timestamp: time.Now(),
			Version:   serviceVersion,
			Uptime:    time.Since(startTime),
			Checks:    checks,
		})
	}
}

// StatusHandler reports the service status plus the active LLM provider.
func StatusHandler(llm LLMService) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"service":      "jobconnect-backend",
			"version":      serviceVersion,
			"status":       "running",
			"uptime":       time.Since(startTime).String(),
			"llm_provider": llm.GetProviderName(),
			"llm_healthy":  llm.IsHealthy(),
			"timestamp":    time.Now(),
		})
	}
}

func pingStore(c echo.Context, st store.Store) error {
	if st == nil {
		return nil
	}
	return st.Ping(c.Request().Context())
}

// RootHandler answers the liveness probe on /.
func RootHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "Job Connect Hub API is running!",
	})
}
