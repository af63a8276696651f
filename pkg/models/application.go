package models

import "time"

// Application status values. Every application starts out pending; reviewed
// applications can still move to accepted or rejected.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusReviewed = "reviewed"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// ValidApplicationStatuses lists every status an application may hold.
var ValidApplicationStatuses = []string{
	ApplicationStatusPending,
	ApplicationStatusReviewed,
	ApplicationStatusAccepted,
	ApplicationStatusRejected,
}

// IsValidApplicationStatus reports whether s is a known application status.
func IsValidApplicationStatus(s string) bool {
	for _, v := range ValidApplicationStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// JobApplication represents a jobseeker's application to a posting.
type JobApplication struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	JobID       string    `json:"job_id" gorm:"not null;index"`
	UserID      string    `json:"user_id" gorm:"not null;index"`
	CoverLetter string    `json:"cover_letter,omitempty" gorm:"type:text"`
	ResumeID    string    `json:"resume_id,omitempty"`
	Status      string    `json:"status" gorm:"not null;default:pending"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}
