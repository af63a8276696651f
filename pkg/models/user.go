package models

import "time"

// User realms. The realm decides which identity-provider project and which
// backing store a caller is served from.
const (
	UserTypeJobseeker = "jobseeker"
	UserTypeEmployer  = "employer"
)

// IsValidUserType reports whether t names a known realm.
func IsValidUserType(t string) bool {
	return t == UserTypeJobseeker || t == UserTypeEmployer
}

// UserProfile is the profile row persisted alongside a delegated identity.
// Credentials never touch this table; the identity provider owns them.
type UserProfile struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	Email     string    `json:"email" gorm:"not null;index"`
	UserType  string    `json:"user_type" gorm:"not null"`
	Name      string    `json:"name,omitempty"`
	Company   string    `json:"company,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
