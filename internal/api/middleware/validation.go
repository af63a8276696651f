package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"jobconnect-backend/pkg/models"
	"jobconnect-backend/pkg/utils"
)

// maxJSONBodySize caps JSON request bodies. Multipart uploads are validated
// separately against the resume size limit.
const maxJSONBodySize = 1024 * 1024

// RequestValidation middleware tags every request with an id and rejects
// oversized JSON bodies before binding.
func RequestValidation() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := utils.GenerateRequestID()
			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			if c.Request().Method == http.MethodPost || c.Request().Method == http.MethodPatch {
				contentType := c.Request().Header.Get(echo.HeaderContentType)
				if contentType == "" || contentType == echo.MIMEApplicationJSON ||
					len(contentType) >= len(echo.MIMEApplicationJSON) && contentType[:len(echo.MIMEApplicationJSON)] == echo.MIMEApplicationJSON {
					if c.Request().ContentLength > maxJSONBodySize {
						return c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
							Error:     "request_too_large",
							Message:   "Request body too large",
							RequestID: requestID,
							Timestamp: time.Now(),
						})
					}
				}
			}

			return next(c)
		}
	}
}
