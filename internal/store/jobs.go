package store

import (
	"context"

	"jobconnect-backend/pkg/models"

	"gorm.io/gorm"
)

// ListJobs returns every posting, newest first.
func (s *PostgresStore) ListJobs(ctx context.Context) ([]models.JobPost, error) {
	var jobs []models.JobPost
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

// CreateJob inserts a posting. The id and timestamp are minted by the
// caller before insert; the store never generates them.
func (s *PostgresStore) CreateJob(ctx context.Context, job *models.JobPost) error {
	return s.db.WithContext(ctx).Create(job).Error
}

// DeleteJob removes a posting by id and reports whether a row was actually
// removed.
func (s *PostgresStore) DeleteJob(ctx context.Context, id string) (bool, error) {
	tx := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.JobPost{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// GetJob fetches a single posting, returning nil when it does not exist.
func (s *PostgresStore) GetJob(ctx context.Context, id string) (*models.JobPost, error) {
	var job models.JobPost
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&job).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// SearchJobs applies the composable filters: case-insensitive substring on
// title or description, exact type, minimum salary. Results come back
// newest first.
func (s *PostgresStore) SearchJobs(ctx context.Context, filter JobSearchFilter) ([]models.JobPost, error) {
	q := s.db.WithContext(ctx).Model(&models.JobPost{})

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.JobType != "" {
		q = q.Where("job_type = ?", filter.JobType)
	}
	if filter.MinSalary != nil {
		q = q.Where("salary >= ?", *filter.MinSalary)
	}

	var jobs []models.JobPost
	err := q.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

type typeCount struct {
	JobType string
	Count   int64
}

// JobStats aggregates the total posting count and a per-type histogram.
func (s *PostgresStore) JobStats(ctx context.Context) (*models.PlatformStats, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.JobPost{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var counts []typeCount
	err := s.db.WithContext(ctx).
		Model(&models.JobPost{}).
		Select("job_type, count(*) as count").
		Group("job_type").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	stats := &models.PlatformStats{
		TotalJobs:  total,
		JobsByType: make(map[string]int64, len(counts)),
	}
	for _, c := range counts {
		stats.JobsByType[c.JobType] = c.Count
	}

	return stats, nil
}
