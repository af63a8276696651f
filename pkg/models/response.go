package models

import "time"

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// MessageResponse is the generic success envelope for delete/update calls.
type MessageResponse struct {
	Message string `json:"message"`
}

// ChatResponse is the payload returned by POST /chat. Model echoes the
// requested model name, not necessarily the one invoked.
type ChatResponse struct {
	Response string `json:"response"`
	Model    string `json:"model"`
}

// ModelsResponse is the payload returned by GET /models.
type ModelsResponse struct {
	Models []string `json:"models"`
	Error  string   `json:"error,omitempty"`
}

// AuthUserResponse is the projected identity returned by the auth endpoints.
type AuthUserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
	Name     string `json:"name,omitempty"`
	Company  string `json:"company,omitempty"`
}

// LoginResponse carries the provider-minted bearer token plus the projected
// identity.
type LoginResponse struct {
	AccessToken string           `json:"access_token"`
	TokenType   string           `json:"token_type"`
	User        AuthUserResponse `json:"user"`
}
