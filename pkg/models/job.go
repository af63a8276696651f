package models

import "time"

// JobPost represents a single job posting as stored and served by the API.
type JobPost struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Salary      int       `json:"salary"`
	JobType     string    `json:"job_type" gorm:"not null;index"`
	UserID      string    `json:"user_id,omitempty" gorm:"index"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}

// ValidJobTypes is the fixed set of accepted job types. Incoming values are
// lowercased before membership is checked.
var ValidJobTypes = []string{
	"full-time",
	"part-time",
	"contract",
	"internship",
	"freelance",
	"temporary",
	"volunteer",
	"other",
}

// IsValidJobType reports whether t (already normalized to lowercase) is one
// of the accepted job types.
func IsValidJobType(t string) bool {
	for _, v := range ValidJobTypes {
		if t == v {
			return true
		}
	}
	return false
}

// PlatformStats is the aggregate payload served by GET /stats.
type PlatformStats struct {
	TotalJobs  int64            `json:"total_jobs"`
	JobsByType map[string]int64 `json:"jobs_by_type"`
	Error      string           `json:"error,omitempty"`
}
