package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"jobconnect-backend/internal/config"
	"jobconnect-backend/internal/logging"
)

// Client talks to the external identity provider's REST surface. Two realms
// (jobseeker, employer) are independent provider projects; the realm decides
// which base URL and API key a call uses.
type Client struct {
	config     *config.Config
	httpClient *http.Client
	logger     logging.Logger
}

// ProviderUser is the identity minted by the provider on registration.
type ProviderUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ProviderSession is the provider's successful login payload.
type ProviderSession struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        ProviderUser `json:"user"`
}

type providerError struct {
	Message          string `json:"msg"`
	ErrorDescription string `json:"error_description"`
}

// NewClient creates a new identity-provider client.
func NewClient(cfg *config.Config) *Client {
	timeout := cfg.Auth.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		config:     cfg,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logging.GetGlobalLogger(),
	}
}

// Configured reports whether the given realm has a provider URL set.
func (c *Client) Configured(userType string) bool {
	url, _ := c.config.AuthRealm(userType)
	return url != ""
}

// SignUp registers a new account with the realm's provider project,
// forwarding email/password plus profile metadata.
func (c *Client) SignUp(ctx context.Context, userType, email, password string, metadata map[string]string) (*ProviderUser, error) {
	payload := map[string]interface{}{
		"email":    email,
		"password": password,
	}
	if len(metadata) > 0 {
		payload["data"] = metadata
	}

	var user ProviderUser
	if err := c.post(ctx, userType, "/auth/v1/signup", payload, &user); err != nil {
		return nil, err
	}

	c.logger.Info("Registered user with identity provider", map[string]interface{}{
		"user_id":   user.ID,
		"user_type": userType,
	})

	return &user, nil
}

// SignIn exchanges credentials for a provider-minted bearer token.
func (c *Client) SignIn(ctx context.Context, userType, email, password string) (*ProviderSession, error) {
	payload := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	var session ProviderSession
	if err := c.post(ctx, userType, "/auth/v1/token?grant_type=password", payload, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

func (c *Client) post(ctx context.Context, userType, path string, payload interface{}, out interface{}) error {
	baseURL, apiKey := c.config.AuthRealm(userType)
	if baseURL == "" {
		return fmt.Errorf("identity provider not configured for %s realm", userType)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal provider request: %w", err)
	}

	url := strings.TrimRight(baseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build provider request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("apikey", apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("identity provider request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var provErr providerError
		if json.Unmarshal(respBody, &provErr) == nil {
			if provErr.Message != "" {
				return fmt.Errorf("%s", provErr.Message)
			}
			if provErr.ErrorDescription != "" {
				return fmt.Errorf("%s", provErr.ErrorDescription)
			}
		}
		return fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode provider response: %w", err)
		}
	}

	return nil
}
