package llm

import (
	"context"
	"fmt"
	"sync"

	"jobconnect-backend/internal/config"
	"jobconnect-backend/internal/llm/providers"
	"jobconnect-backend/internal/logging"
	"jobconnect-backend/pkg/models"
)

// Manager manages LLM providers and their lifecycle
type Manager struct {
	config   *config.Config
	provider LLMProvider
	logger   logging.Logger
	mu       sync.RWMutex
	healthy  bool
}

// NewManager creates a new LLM manager instance
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// newProvider builds the provider named in the configuration. Claude is the
// only provider wired today.
func newProvider(cfg *config.Config) (LLMProvider, error) {
	switch cfg.LLM.Provider {
	case "claude":
		return providers.NewClaudeProvider(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s (supported: claude)", cfg.LLM.Provider)
	}
}

// Start initializes the LLM manager and creates the provider. A missing or
// bad API key leaves the manager unhealthy but never blocks startup; the
// failure surfaces per call instead.
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Starting LLM manager", map[string]interface{}{
		"provider": m.config.LLM.Provider,
	})

	provider, err := newProvider(m.config)
	if err != nil {
		return fmt.Errorf("failed to create LLM provider: %w", err)
	}

	m.provider = provider

	ctx, cancel := context.WithTimeout(context.Background(), m.config.LLM.Timeout)
	defer cancel()

	if err := m.provider.IsHealthy(ctx); err != nil {
		m.logger.Warn("LLM provider health check failed - LLM features will be disabled", map[string]interface{}{
			"error": err.Error(),
		})
		m.healthy = false
	} else {
		m.healthy = true
		m.logger.Info("LLM manager started successfully", map[string]interface{}{
			"provider": m.provider.GetProviderName(),
		})
	}

	return nil
}

// Stop shuts down the LLM manager
func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Stopping LLM manager")
	m.provider = nil
	m.healthy = false
	return nil
}

func (m *Manager) activeProvider() (LLMProvider, error) {
	m.mu.RLock()
	provider := m.provider
	healthy := m.healthy
	m.mu.RUnlock()

	if provider == nil {
		return nil, fmt.Errorf("LLM manager not started or provider not available")
	}
	if !healthy {
		return nil, fmt.Errorf("LLM provider is not available - check API key configuration (set LLM_API_KEY environment variable)")
	}
	return provider, nil
}

// Chat forwards a career-advice question to the configured provider.
func (m *Manager) Chat(ctx context.Context, message string) (string, error) {
	provider, err := m.activeProvider()
	if err != nil {
		return "", err
	}
	return provider.Chat(ctx, message)
}

// EnhanceResume rewrites the given resume text against a job description.
func (m *Manager) EnhanceResume(ctx context.Context, resumeText, jobDescription string) (*models.ResumeEnhancement, error) {
	provider, err := m.activeProvider()
	if err != nil {
		return nil, err
	}
	return provider.EnhanceResume(ctx, resumeText, jobDescription)
}

// ListModels returns the usable model names from the provider.
func (m *Manager) ListModels(ctx context.Context) ([]string, error) {
	provider, err := m.activeProvider()
	if err != nil {
		return nil, err
	}
	return provider.ListModels(ctx)
}

// IsHealthy checks if the LLM manager and provider are healthy
func (m *Manager) IsHealthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.healthy && m.provider != nil
}

// GetProviderName returns the name of the current LLM provider
func (m *Manager) GetProviderName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.provider != nil {
		return m.provider.GetProviderName()
	}
	return "none"
}

// CheckHealth performs a health check on the LLM provider
func (m *Manager) CheckHealth(ctx context.Context) error {
	m.mu.RLock()
	provider := m.provider
	m.mu.RUnlock()

	if provider == nil {
		return fmt.Errorf("LLM provider not available")
	}

	err := provider.IsHealthy(ctx)

	m.mu.Lock()
	m.healthy = (err == nil)
	m.mu.Unlock()

	return err
}
