package middleware

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"jobconnect-backend/pkg/models"
)

// AllowedHosts rejects requests whose Host header matches none of the
// configured patterns. Patterns support a single leading wildcard label,
// e.g. "*.example.com". An empty pattern list disables the check.
func AllowedHosts(patterns []string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(patterns) == 0 {
				return next(c)
			}

			host := c.Request().Host
			if h, _, err := net.SplitHostPort(host); err == nil {
				host = h
			}

			for _, pattern := range patterns {
				if hostMatches(host, pattern) {
					return next(c)
				}
			}

			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_host",
				Message:   "Host header not allowed",
				RequestID: requestID(c),
				Timestamp: time.Now(),
			})
		}
	}
}

func hostMatches(host, pattern string) bool {
	if pattern == "*" {
		return true
	}
	if suffix, ok := strings.CutPrefix(pattern, "*."); ok {
		return host == suffix || strings.HasSuffix(host, "."+suffix)
	}
	return strings.EqualFold(host, pattern)
}
