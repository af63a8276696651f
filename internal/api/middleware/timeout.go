package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// TimeoutConfig returns timeout middleware configuration
func TimeoutConfig(timeout time.Duration) echo.MiddlewareFunc {
	return middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: timeout,
	})
}

// llmPaths are the endpoints that wait on the hosted model and need the
// longer budget.
var llmPaths = []string{"/chat", "/resume/enhance"}

func isLLMPath(path string) bool {
	for _, p := range llmPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// SelectiveTimeoutConfig applies the default timeout to most endpoints and
// the longer LLM budget to the model-backed paths. Each request passes
// through exactly one of the two timeout wrappers.
func SelectiveTimeoutConfig(defaultTimeout, llmTimeout time.Duration) echo.MiddlewareFunc {
	standard := middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: defaultTimeout,
		Skipper: func(c echo.Context) bool {
			return isLLMPath(c.Request().URL.Path)
		},
	})
	long := middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: llmTimeout,
		Skipper: func(c echo.Context) bool {
			return !isLLMPath(c.Request().URL.Path)
		},
	})
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return standard(long(next))
	}
}
