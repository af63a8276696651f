package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"jobconnect-backend/internal/api/validation"
	"jobconnect-backend/internal/store"
	"jobconnect-backend/pkg/models"
)

// LLMService is the slice of the LLM manager the handlers use.
type LLMService interface {
	Chat(ctx context.Context, message string) (string, error)
	EnhanceResume(ctx context.Context, resumeText, jobDescription string) (*models.ResumeEnhancement, error)
	ListModels(ctx context.Context) ([]string, error)
	IsHealthy() bool
	GetProviderName() string
}

// requestValidator is shared across handlers; custom validators are
// registered once at package load.
var requestValidator = validator.New()

func init() {
	validation.RegisterJobBoardValidators(requestValidator)
}

// requestID returns the id the validation middleware set for this request.
func requestID(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok {
		return id
	}
	return ""
}

// errorJSON writes the standard error envelope.
func errorJSON(c echo.Context, status int, code, message string) error {
	return c.JSON(status, models.ErrorResponse{
		Error:     code,
		Message:   message,
		RequestID: requestID(c),
		Timestamp: time.Now(),
	})
}

// storeErrorJSON writes the envelope for a store failure, surfacing the
// not-configured degrade distinctly from a genuine store error.
func storeErrorJSON(c echo.Context, err error, message string) error {
	if errors.Is(err, store.ErrNotConfigured) {
		return errorJSON(c, http.StatusInternalServerError, "store_not_configured", "Database is not configured")
	}
	return errorJSON(c, http.StatusInternalServerError, "store_error", message)
}

// ErrorHandler converts errors raised by echo itself (unknown route,
// method not allowed, oversized body) into the standard envelope.
func ErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "Internal server error"
		if he, ok := err.(*echo.HTTPError); ok {
			status = he.Code
			if msg, ok := he.Message.(string); ok {
				message = msg
			} else {
				message = http.StatusText(status)
			}
		}

		code := "internal_error"
		switch status {
		case http.StatusNotFound:
			code = "not_found"
		case http.StatusMethodNotAllowed:
			code = "method_not_allowed"
		case http.StatusRequestEntityTooLarge:
			code = "payload_too_large"
		}

		_ = errorJSON(c, status, code, message)
	}
}
