package store

import (
	"context"

	"jobconnect-backend/pkg/models"
)

// CreateApplication inserts an application row. Duplicate prevention is a
// caller-side existence check; there is no store-level uniqueness guard, so
// concurrent submissions can still race.
func (s *PostgresStore) CreateApplication(ctx context.Context, app *models.JobApplication) error {
	return s.db.WithContext(ctx).Create(app).Error
}

// HasApplication reports whether the user already applied to the job.
func (s *PostgresStore) HasApplication(ctx context.Context, jobID, userID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.JobApplication{}).
		Where("job_id = ? AND user_id = ?", jobID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListApplicationsByUser returns the caller's applications, newest first.
func (s *PostgresStore) ListApplicationsByUser(ctx context.Context, userID string) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

// ListApplicationsByJob returns every application for a posting, newest
// first.
func (s *PostgresStore) ListApplicationsByJob(ctx context.Context, jobID string) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := s.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

// UpdateApplicationStatus transitions an application and reports whether a
// row matched.
func (s *PostgresStore) UpdateApplicationStatus(ctx context.Context, id, status string) (bool, error) {
	tx := s.db.WithContext(ctx).
		Model(&models.JobApplication{}).
		Where("id = ?", id).
		Update("status", status)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
