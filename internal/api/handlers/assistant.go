package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobconnect-backend/internal/api/validation"
	"jobconnect-backend/internal/llm/providers"
	"jobconnect-backend/internal/logging"
	"jobconnect-backend/pkg/models"
	"jobconnect-backend/pkg/utils"
)

// ChatHandler serves POST /chat. The reply comes from the configured LLM
// provider; when a session id accompanies the request the exchange is
// recorded in Redis best effort.
func ChatHandler(llm LLMService, history *utils.ChatHistoryClient) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := logging.GetGlobalLogger()

		var req models.ChatRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request body")
		}
		if err := requestValidator.Struct(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "validation_failed", validation.FormatErrors(err))
		}

		ctx := c.Request().Context()

		reply, err := llm.Chat(ctx, req.Message)
		if err != nil {
			logger.Error("Chat request failed", map[string]interface{}{
				"request_id": requestID(c),
				"error":      err.Error(),
			})
			return errorJSON(c, http.StatusInternalServerError, "llm_error", err.Error())
		}

		if req.SessionID != "" && history != nil {
			if histErr := history.AppendExchange(ctx, req.SessionID, req.Message, reply); histErr != nil {
				logger.Warn("Failed to record chat history", map[string]interface{}{
					"request_id": requestID(c),
					"session_id": req.SessionID,
					"error":      histErr.Error(),
				})
			}
		}

		return c.JSON(http.StatusOK, models.ChatResponse{
			Response: reply,
			Model:    utils.GetStringOrDefault(req.Model, llm.GetProviderName()),
		})
	}
}

// ChatHistoryHandler serves GET /chat/history/:session_id.
func ChatHistoryHandler(history *utils.ChatHistoryClient) echo.HandlerFunc {
	return func(c echo.Context) error {
		if history == nil {
			return errorJSON(c, http.StatusServiceUnavailable, "history_unavailable", "Chat history is not configured")
		}

		sessionID := c.Param("session_id")
		entries, err := history.GetHistory(c.Request().Context(), sessionID)
		if err != nil {
			logging.GetGlobalLogger().Error("Failed to load chat history", map[string]interface{}{
				"request_id": requestID(c),
				"session_id": sessionID,
				"error":      err.Error(),
			})
			return errorJSON(c, http.StatusInternalServerError, "history_error", "Failed to load chat history")
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"session_id": sessionID,
			"history":    entries,
		})
	}
}

// ModelsHandler serves GET /models. A provider listing failure degrades to
// the static fallback set with the error flag raised, never a 5xx.
func ModelsHandler(llm LLMService) echo.HandlerFunc {
	return func(c echo.Context) error {
		names, err := llm.ListModels(c.Request().Context())
		if err != nil {
			logging.GetGlobalLogger().Warn("Model listing failed, serving fallback set", map[string]interface{}{
				"request_id": requestID(c),
				"error":      err.Error(),
			})
			return c.JSON(http.StatusOK, models.ModelsResponse{
				Models: append([]string(nil), providers.FallbackModels...),
				Error:  "live model listing unavailable",
			})
		}

		return c.JSON(http.StatusOK, models.ModelsResponse{Models: names})
	}
}

// EnhanceResumeHandler serves POST /resume/enhance.
func EnhanceResumeHandler(llm LLMService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.EnhanceResumeRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request body")
		}
		if err := requestValidator.Struct(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "validation_failed", validation.FormatErrors(err))
		}

		enhancement, err := llm.EnhanceResume(c.Request().Context(), req.ResumeText, req.JobDescription)
		if err != nil {
			logging.GetGlobalLogger().Error("Resume enhancement failed", map[string]interface{}{
				"request_id": requestID(c),
				"error":      err.Error(),
			})
			return errorJSON(c, http.StatusInternalServerError, "llm_error", err.Error())
		}

		return c.JSON(http.StatusOK, enhancement)
	}
}
