package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"jobconnect-backend/internal/auth"
	"jobconnect-backend/internal/logging"
	"jobconnect-backend/pkg/models"
)

// identityContextKey is where the verified caller identity lives on the
// echo context.
const identityContextKey = "identity"

// bearerToken extracts the bearer token from the Authorization header,
// returning "" when absent or malformed.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireAuth verifies the bearer token and stores the decoded identity on
// the context. Requests without a valid token get 401.
func RequireAuth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:     "unauthenticated",
					Message:   "Missing or malformed Authorization header",
					RequestID: requestID(c),
					Timestamp: time.Now(),
				})
			}

			identity, err := auth.VerifyToken(token, jwtSecret)
			if err != nil {
				logging.GetGlobalLogger().Warn("Token verification failed", map[string]interface{}{
					"request_id": requestID(c),
					"error":      err.Error(),
				})
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:     "unauthenticated",
					Message:   "Invalid or expired token",
					RequestID: requestID(c),
					Timestamp: time.Now(),
				})
			}

			c.Set(identityContextKey, identity)
			return next(c)
		}
	}
}

// OptionalAuth decodes the identity when a valid bearer token is present
// but lets anonymous requests through.
func OptionalAuth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token := bearerToken(c); token != "" {
				if identity, err := auth.VerifyToken(token, jwtSecret); err == nil {
					c.Set(identityContextKey, identity)
				}
			}
			return next(c)
		}
	}
}

// CurrentIdentity returns the verified identity for the request, if any.
func CurrentIdentity(c echo.Context) (*auth.Identity, bool) {
	identity, ok := c.Get(identityContextKey).(*auth.Identity)
	return identity, ok && identity != nil
}

func requestID(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok {
		return id
	}
	return ""
}
