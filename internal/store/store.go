package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"jobconnect-backend/internal/config"
	"jobconnect-backend/internal/logging"
	"jobconnect-backend/pkg/models"
)

// ErrNotConfigured is returned by every operation when the service started
// without a database URL. The process keeps serving; store-backed endpoints
// fail per call instead.
var ErrNotConfigured = errors.New("data store not configured")

// JobSearchFilter carries the composable search parameters for postings.
type JobSearchFilter struct {
	Query     string
	JobType   string
	MinSalary *int
}

// Store is the data-store surface the handlers depend on. The production
// implementation talks to the managed Postgres instance; tests substitute
// fakes.
type Store interface {
	ListJobs(ctx context.Context) ([]models.JobPost, error)
	CreateJob(ctx context.Context, job *models.JobPost) error
	DeleteJob(ctx context.Context, id string) (bool, error)
	SearchJobs(ctx context.Context, filter JobSearchFilter) ([]models.JobPost, error)
	GetJob(ctx context.Context, id string) (*models.JobPost, error)
	JobStats(ctx context.Context) (*models.PlatformStats, error)

	CreateApplication(ctx context.Context, app *models.JobApplication) error
	HasApplication(ctx context.Context, jobID, userID string) (bool, error)
	ListApplicationsByUser(ctx context.Context, userID string) ([]models.JobApplication, error)
	ListApplicationsByJob(ctx context.Context, jobID string) ([]models.JobApplication, error)
	UpdateApplicationStatus(ctx context.Context, id, status string) (bool, error)

	CreateResume(ctx context.Context, resume *models.Resume) error
	ListResumesByUser(ctx context.Context, userID string) ([]models.Resume, error)
	GetResumeOwned(ctx context.Context, id, userID string) (*models.Resume, error)
	DeleteResume(ctx context.Context, id, userID string) (bool, error)

	SaveProfile(ctx context.Context, profile *models.UserProfile) error
	Ping(ctx context.Context) error
}

// PostgresStore implements Store on top of two gorm handles: the default
// realm and an optional employer realm. Both are constructed once at startup
// and shared read-only across requests.
type PostgresStore struct {
	db         *gorm.DB
	employerDB *gorm.DB
	logger     logging.Logger
}

// New connects to the configured database(s) and runs migrations. A missing
// default DSN yields the unconfigured store rather than an error, so startup
// proceeds and each store-backed call reports the misconfiguration. A missing
// employer DSN falls back to the default handle.
func New(cfg *config.Config) (Store, error) {
	logger := logging.GetGlobalLogger()

	if cfg.Database.URL == "" {
		logger.Warn("Database URL not configured, store-backed endpoints will fail per call")
		return Unconfigured(), nil
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.URL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.JobPost{},
		&models.JobApplication{},
		&models.Resume{},
		&models.UserProfile{},
	); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	employerDB := db
	if cfg.Database.EmployerURL != "" && cfg.Database.EmployerURL != cfg.Database.URL {
		employerDB, err = gorm.Open(postgres.Open(cfg.Database.EmployerURL), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to employer database: %w", err)
		}
		if err := employerDB.AutoMigrate(&models.UserProfile{}); err != nil {
			return nil, fmt.Errorf("failed to run employer migrations: %w", err)
		}
	}

	logger.Info("Database connection established", map[string]interface{}{
		"employer_realm": cfg.Database.EmployerURL != "",
	})

	return &PostgresStore{
		db:         db,
		employerDB: employerDB,
		logger:     logger,
	}, nil
}

// realmDB picks the handle backing the given realm. Postings, applications
// and resumes always live in the default realm; only profile rows are
// realm-scoped.
func (s *PostgresStore) realmDB(userType string) *gorm.DB {
	if userType == models.UserTypeEmployer {
		return s.employerDB
	}
	return s.db
}

// SaveProfile persists the profile row for a delegated identity in its
// realm's store.
func (s *PostgresStore) SaveProfile(ctx context.Context, profile *models.UserProfile) error {
	return s.realmDB(profile.UserType).WithContext(ctx).Create(profile).Error
}

// Ping verifies the default database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.WithContext(ctx).DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
