package llm

import (
	"context"

	"jobconnect-backend/pkg/models"
)

// LLMProvider defines the interface for LLM providers
type LLMProvider interface {
	// Chat answers a career-advice question and returns the raw model text
	Chat(ctx context.Context, message string) (string, error)

	// EnhanceResume rewrites resume text against a target job description
	EnhanceResume(ctx context.Context, resumeText, jobDescription string) (*models.ResumeEnhancement, error)

	// ListModels returns the model names usable through this provider
	ListModels(ctx context.Context) ([]string, error)

	// IsHealthy checks if the LLM provider is healthy and available
	IsHealthy(ctx context.Context) error

	// GetProviderName returns the name of the LLM provider
	GetProviderName() string
}
