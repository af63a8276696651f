package store

import (
	"context"

	"jobconnect-backend/pkg/models"
)

// unconfiguredStore stands in for the Postgres store when no database URL
// is present. Every operation fails with ErrNotConfigured, mirroring how
// the LLM manager surfaces a missing API key per call.
type unconfiguredStore struct{}

// Unconfigured returns the degraded store used when no database URL is set.
func Unconfigured() Store {
	return unconfiguredStore{}
}

func (unconfiguredStore) ListJobs(context.Context) ([]models.JobPost, error) {
	return nil, ErrNotConfigured
}

func (unconfiguredStore) CreateJob(context.Context, *models.JobPost) error {
	return ErrNotConfigured
}

func (unconfiguredStore) DeleteJob(context.Context, string) (bool, error) {
	return false, ErrNotConfigured
}

func (unconfiguredStore) SearchJobs(context.Context, JobSearchFilter) ([]models.JobPost, error) {
	return nil, ErrNotConfigured
}

func (unconfiguredStore) GetJob(context.Context, string) (*models.JobPost, error) {
	return nil, ErrNotConfigured
}

func (unconfiguredStore) JobStats(context.Context) (*models.PlatformStats, error) {
	return nil, ErrNotConfigured
}

func (unconfiguredStore) CreateApplication(context.Context, *models.JobApplication) error {
	return ErrNotConfigured
}

func (unconfiguredStore) HasApplication(context.Context, string, string) (bool, error) {
	return false, ErrNotConfigured
}

func (unconfiguredStore) ListApplicationsByUser(context.Context, string) ([]models.JobApplication, error) {
	return nil, ErrNotConfigured
}

func (unconfiguredStore) ListApplicationsByJob(context.Context, string) ([]models.JobApplication, error) {
	return nil, ErrNotConfigured
}

func (unconfiguredStore) UpdateApplicationStatus(context.Context, string, string) (bool, error) {
	return false, ErrNotConfigured
}

func (unconfiguredStore) CreateResume(context.Context, *models.Resume) error {
	return ErrNotConfigured
}

func (unconfiguredStore) ListResumesByUser(context.Context, string) ([]models.Resume, error) {
	return nil, ErrNotConfigured
}

func (unconfiguredStore) GetResumeOwned(context.Context, string, string) (*models.Resume, error) {
	return nil, ErrNotConfigured
}

func (unconfiguredStore) DeleteResume(context.Context, string, string) (bool, error) {
	return false, ErrNotConfigured
}

func (unconfiguredStore) SaveProfile(context.Context, *models.UserProfile) error {
	return ErrNotConfigured
}

func (unconfiguredStore) Ping(context.Context) error {
	return ErrNotConfigured
}
