package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func timeoutTestServer(defaultTimeout, llmTimeout time.Duration) *echo.Echo {
	e := echo.New()
	e.Use(SelectiveTimeoutConfig(defaultTimeout, llmTimeout))

	slow := func(c echo.Context) error {
		time.Sleep(150 * time.Millisecond)
		return c.String(http.StatusOK, "done")
	}
	e.GET("/jobs", slow)
	e.POST("/chat", slow)
	e.POST("/resume/enhance", slow)
	return e
}

func TestSelectiveTimeoutCutsOffStandardPaths(t *testing.T) {
	e := timeoutTestServer(50*time.Millisecond, time.Second)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jobs", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSelectiveTimeoutGrantsLLMPathsTheLongBudget(t *testing.T) {
	e := timeoutTestServer(50*time.Millisecond, time.Second)

	for _, path := range []string{"/chat", "/resume/enhance"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))

		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestSelectiveTimeoutStillBoundsLLMPaths(t *testing.T) {
	e := timeoutTestServer(time.Second, 50*time.Millisecond)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/chat", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
