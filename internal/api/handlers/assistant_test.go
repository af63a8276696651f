package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobconnect-backend/internal/llm/providers"
	"jobconnect-backend/pkg/models"
)

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestChatHandler(t *testing.T) {
	llm := &fakeLLM{chatReply: "Consider highlighting your Go experience.", healthy: true}
	c, rec := newTestContext(jsonRequest(http.MethodPost, "/chat", `{"message":"How do I improve my resume?"}`))

	require.NoError(t, ChatHandler(llm, nil)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Consider highlighting your Go experience.", resp.Response)
	assert.Equal(t, "claude", resp.Model)
}

func TestChatHandlerEchoesRequestedModel(t *testing.T) {
	llm := &fakeLLM{chatReply: "ok", healthy: true}
	c, rec := newTestContext(jsonRequest(http.MethodPost, "/chat", `{"message":"hi","model":"claude-3-opus-latest"}`))

	require.NoError(t, ChatHandler(llm, nil)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "claude-3-opus-latest", resp.Model)
}

func TestChatHandlerRequiresMessage(t *testing.T) {
	c, rec := newTestContext(jsonRequest(http.MethodPost, "/chat", `{}`))

	require.NoError(t, ChatHandler(&fakeLLM{}, nil)(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatHandlerProviderError(t *testing.T) {
	llm := &fakeLLM{err: errors.New("LLM provider is not available")}
	c, rec := newTestContext(jsonRequest(http.MethodPost, "/chat", `{"message":"hi"}`))

	require.NoError(t, ChatHandler(llm, nil)(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "llm_error", errResp.Error)
	assert.Contains(t, errResp.Message, "not available")
}

func TestModelsHandlerDegradesToFallback(t *testing.T) {
	llm := &fakeLLM{err: errors.New("upstream down")}
	c, rec := newTestContext(httptest.NewRequest(http.MethodGet, "/models", nil))

	require.NoError(t, ModelsHandler(llm)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ModelsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, providers.FallbackModels, resp.Models)
	assert.NotEmpty(t, resp.Error)
}

func TestModelsHandler(t *testing.T) {
	llm := &fakeLLM{modelNames: []string{"claude-3-haiku-20240307"}, healthy: true}
	c, rec := newTestContext(httptest.NewRequest(http.MethodGet, "/models", nil))

	require.NoError(t, ModelsHandler(llm)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ModelsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"claude-3-haiku-20240307"}, resp.Models)
	assert.Empty(t, resp.Error)
}

func TestEnhanceResumeHandler(t *testing.T) {
	llm := &fakeLLM{enhancement: &models.ResumeEnhancement{
		EnhancedResume:  "Improved resume text",
		Suggestions:     []string{"Add metrics"},
		MatchPercentage: 82.5,
	}}
	body := `{"resume_text":"My old resume","job_description":"Go engineer role"}`
	c, rec := newTestContext(jsonRequest(http.MethodPost, "/resume/enhance", body))

	require.NoError(t, EnhanceResumeHandler(llm)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ResumeEnhancement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Improved resume text", resp.EnhancedResume)
	assert.Equal(t, 82.5, resp.MatchPercentage)
}

func TestEnhanceResumeHandlerMissingFields(t *testing.T) {
	c, rec := newTestContext(jsonRequest(http.MethodPost, "/resume/enhance", `{"resume_text":"only half"}`))

	require.NoError(t, EnhanceResumeHandler(&fakeLLM{})(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
