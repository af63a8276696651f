package store

import (
	"context"

	"gorm.io/gorm"

	"jobconnect-backend/pkg/models"
)

// CreateResume persists uploaded-resume metadata.
func (s *PostgresStore) CreateResume(ctx context.Context, resume *models.Resume) error {
	return s.db.WithContext(ctx).Create(resume).Error
}

// ListResumesByUser returns the caller's resumes, newest first.
func (s *PostgresStore) ListResumesByUser(ctx context.Context, userID string) ([]models.Resume, error) {
	var resumes []models.Resume
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("uploaded_at DESC").
		Find(&resumes).Error
	return resumes, err
}

// GetResumeOwned fetches a resume only when it belongs to the given user,
// returning nil when absent or owned by someone else.
func (s *PostgresStore) GetResumeOwned(ctx context.Context, id, userID string) (*models.Resume, error) {
	var resume models.Resume
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&resume).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

// DeleteResume removes the metadata row only when it exists and is owned by
// the caller, and reports whether a row was removed.
func (s *PostgresStore) DeleteResume(ctx context.Context, id, userID string) (bool, error) {
	tx := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Resume{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
