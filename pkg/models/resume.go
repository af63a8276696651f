package models

import "time"

// MaxResumeSize is the upload cap for resume files (10 MiB).
const MaxResumeSize = 10 * 1024 * 1024

// AllowedResumeContentTypes is the upload content-type allow-list.
var AllowedResumeContentTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"text/plain",
}

// IsAllowedResumeContentType reports whether ct is an accepted resume
// content type.
func IsAllowedResumeContentType(ct string) bool {
	for _, v := range AllowedResumeContentTypes {
		if ct == v {
			return true
		}
	}
	return false
}

// Resume is the stored metadata for an uploaded resume file. The bytes
// themselves live in object storage under FileURL.
type Resume struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid"`
	UserID     string    `json:"user_id" gorm:"not null;index"`
	Filename   string    `json:"filename" gorm:"not null"`
	FileURL    string    `json:"file_url" gorm:"not null"`
	FileSize   int64     `json:"file_size"`
	UploadedAt time.Time `json:"uploaded_at" gorm:"index"`
}

// ResumeEnhancement is the structured result of an AI resume rewrite.
type ResumeEnhancement struct {
	EnhancedResume  string   `json:"enhanced_resume"`
	Suggestions     []string `json:"suggestions"`
	MatchPercentage float64  `json:"match_percentage"`
}
