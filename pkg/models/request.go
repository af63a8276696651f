package models

import "strings"

// CreateJobRequest is the payload for POST /jobs.
type CreateJobRequest struct {
	Title       string `json:"title" validate:"required,trimmed_min=3"`
	Description string `json:"description" validate:"required,trimmed_min=10"`
	Salary      int    `json:"salary" validate:"min=0"`
	JobType     string `json:"job_type" validate:"required,job_type"`
}

// Normalize trims free-text fields and lowercases the job type before
// validation so mixed-case valid types are accepted.
func (r *CreateJobRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.JobType = strings.ToLower(strings.TrimSpace(r.JobType))
}

// ApplyRequest is the payload for POST /applications.
type ApplyRequest struct {
	JobID       string `json:"job_id" validate:"required"`
	CoverLetter string `json:"cover_letter" validate:"omitempty,trimmed_min=10"`
	ResumeID    string `json:"resume_id"`
}

// Normalize collapses whitespace-only cover letters to absent.
func (r *ApplyRequest) Normalize() {
	r.CoverLetter = strings.TrimSpace(r.CoverLetter)
}

// UpdateApplicationStatusRequest is the payload for
// PATCH /applications/:id/status.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,application_status"`
}

// ChatRequest is the payload for POST /chat. SessionID is optional; when
// present the exchange is recorded in the conversation history.
type ChatRequest struct {
	Message   string `json:"message" validate:"required"`
	Model     string `json:"model"`
	MaxTokens int    `json:"max_tokens"`
	SessionID string `json:"session_id"`
}

// EnhanceResumeRequest is the payload for POST /resume/enhance.
type EnhanceResumeRequest struct {
	ResumeText     string `json:"resume_text" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
}

// RegisterRequest is the payload for POST /auth/register and /auth/signup.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	UserType string `json:"user_type" validate:"required,user_type"`
	Name     string `json:"name"`
	Company  string `json:"company"`
}

// Normalize lowercases the realm selector.
func (r *RegisterRequest) Normalize() {
	r.UserType = strings.ToLower(strings.TrimSpace(r.UserType))
	r.Email = strings.TrimSpace(r.Email)
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	UserType string `json:"user_type" validate:"required,user_type"`
}

// Normalize lowercases the realm selector.
func (r *LoginRequest) Normalize() {
	r.UserType = strings.ToLower(strings.TrimSpace(r.UserType))
	r.Email = strings.TrimSpace(r.Email)
}
