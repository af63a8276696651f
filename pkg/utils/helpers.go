package utils

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
)

// GenerateRequestID generates a unique request ID for tracking
func GenerateRequestID() string {
	return uuid.New().String()
}

// GenerateEntityID mints an opaque identifier used as the external row key.
func GenerateEntityID() string {
	return uuid.New().String()
}

// GenerateResumeObjectKey derives a collision-resistant object-storage key
// for an uploaded resume from the owner id, a fresh random token and the
// original file extension.
func GenerateResumeObjectKey(userID, originalFilename string) string {
	ext := filepath.Ext(originalFilename)
	return fmt.Sprintf("resumes/files/%s_%s%s", userID, uuid.New().String(), ext)
}

// Contains checks if a string slice contains a specific string
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// GetStringOrDefault returns the value if not empty, otherwise returns the default
func GetStringOrDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
