package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"jobconnect-backend/internal/config"
	"jobconnect-backend/internal/logging"
	"jobconnect-backend/pkg/models"
)

// ClaudeProvider implements the LLM provider interface using Anthropic's Claude
type ClaudeProvider struct {
	client anthropic.Client
	config *config.Config
	logger logging.Logger
}

// FallbackModels is served when the provider's model listing fails.
var FallbackModels = []string{
	"claude-3-haiku-20240307",
	"claude-3-5-sonnet-latest",
	"claude-3-opus-latest",
}

// fallbackSuggestions is returned when the model reply cannot be parsed as
// the requested JSON shape.
var fallbackSuggestions = []string{
	"Tailor your resume keywords to match the job description",
	"Quantify achievements with concrete numbers where possible",
	"Lead with a summary that addresses the role's key requirements",
}

// fallbackMatchPercentage accompanies an unparseable enhancement reply.
const fallbackMatchPercentage = 75.0

// NewClaudeProvider creates a new Claude provider instance
func NewClaudeProvider(cfg *config.Config) *ClaudeProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.LLM.APIKey),
	)

	return &ClaudeProvider{
		client: client,
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// Chat wraps the caller's message in the career-advice preamble and returns
// the model text verbatim.
func (cp *ClaudeProvider) Chat(ctx context.Context, message string) (string, error) {
	startTime := time.Now()

	prompt := fmt.Sprintf(`You are a helpful assistant for job searching and career advice.
Please provide helpful, professional advice for career-related questions.

User question: %s`, message)

	response, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(cp.config.LLM.Model),
		MaxTokens:   int64(cp.config.LLM.MaxTokens),
		Temperature: anthropic.Float(float64(cp.config.LLM.Temperature)),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to call Claude API: %w", err)
	}

	text, err := extractResponseText(response)
	if err != nil {
		return "", err
	}

	cp.logger.Info("Chat completion finished", map[string]interface{}{
		"provider":        "claude",
		"processing_time": time.Since(startTime),
	})

	return text, nil
}

// EnhanceResume asks the model to rewrite the resume for the target job and
// reply in a fixed JSON shape. An unparseable reply degrades to the raw text
// plus fixed suggestions rather than failing.
func (cp *ClaudeProvider) EnhanceResume(ctx context.Context, resumeText, jobDescription string) (*models.ResumeEnhancement, error) {
	prompt := cp.buildEnhancementPrompt(resumeText, jobDescription)

	response, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(cp.config.LLM.Model),
		MaxTokens:   int64(cp.config.LLM.MaxTokens),
		Temperature: anthropic.Float(float64(cp.config.LLM.Temperature)),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call Claude API: %w", err)
	}

	text, err := extractResponseText(response)
	if err != nil {
		return nil, err
	}

	return parseEnhancementText(text), nil
}

// buildEnhancementPrompt creates the structured-rewrite instruction.
func (cp *ClaudeProvider) buildEnhancementPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`You are an expert resume writer. Improve the resume below so it better targets the given job description.

Respond with ONLY a valid JSON object with exactly these fields:

{
  "enhanced_resume": "string - The full revised resume text",
  "suggestions": ["array of strings - Specific improvement suggestions"],
  "match_percentage": number - How well the revised resume matches the job, 0-100
}

IMPORTANT RULES:
1. Return ONLY valid JSON, no additional text or explanation
2. Keep the candidate's real experience; never invent employers, titles or dates
3. Reword and reorder content to emphasize what the job description asks for

RESUME:
%s

JOB DESCRIPTION:
%s`, resumeText, jobDescription)
}

// parseEnhancementText parses the model reply as the requested JSON shape,
// falling back to the raw text with fixed suggestions and a 75%% match when
// the reply is not valid JSON.
func parseEnhancementText(text string) *models.ResumeEnhancement {
	cleaned := stripCodeFences(text)

	var result models.ResumeEnhancement
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil || result.EnhancedResume == "" {
		return &models.ResumeEnhancement{
			EnhancedResume:  text,
			Suggestions:     append([]string(nil), fallbackSuggestions...),
			MatchPercentage: fallbackMatchPercentage,
		}
	}

	if result.Suggestions == nil {
		result.Suggestions = []string{}
	}

	return &result
}

// stripCodeFences removes markdown code blocks the model sometimes wraps
// JSON replies in.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}
	return text
}

// extractResponseText pulls the first text block out of a Claude response.
func extractResponseText(response *anthropic.Message) (string, error) {
	if len(response.Content) == 0 {
		return "", fmt.Errorf("empty response from Claude")
	}

	var responseText string
	for _, content := range response.Content {
		textContent := content.AsText()
		responseText = textContent.Text
		break
	}

	if responseText == "" {
		return "", fmt.Errorf("no text content in Claude response")
	}

	return responseText, nil
}

// ListModels lists the Claude models visible to the configured key. A
// provider error degrades to the static fallback list.
func (cp *ClaudeProvider) ListModels(ctx context.Context) ([]string, error) {
	page, err := cp.client.Models.List(ctx, anthropic.ModelListParams{})
	if err != nil {
		cp.logger.Warn("Model listing failed, serving fallback list", map[string]interface{}{
			"error": err.Error(),
		})
		return append([]string(nil), FallbackModels...), nil
	}

	names := make([]string, 0, len(page.Data))
	for _, m := range page.Data {
		names = append(names, m.ID)
	}

	if len(names) == 0 {
		return append([]string(nil), FallbackModels...), nil
	}

	return names, nil
}

// IsHealthy checks if the Claude provider is healthy and available
func (cp *ClaudeProvider) IsHealthy(ctx context.Context) error {
	if cp.config.LLM.APIKey == "" {
		return fmt.Errorf("Claude API key not configured - set LLM_API_KEY environment variable")
	}

	// Create a simple test request to check if the API is accessible
	_, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(cp.config.LLM.Model),
		MaxTokens: 16,
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: "Hello"},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})

	if err != nil {
		return fmt.Errorf("Claude API health check failed: %w", err)
	}

	return nil
}

// GetProviderName returns the name of the LLM provider
func (cp *ClaudeProvider) GetProviderName() string {
	return "claude"
}
