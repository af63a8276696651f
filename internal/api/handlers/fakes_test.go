package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"jobconnect-backend/internal/auth"
	"jobconnect-backend/internal/store"
	"jobconnect-backend/pkg/models"
)

// fakeStore is an in-memory Store for handler tests. Setting fail makes
// every call return an error.
type fakeStore struct {
	jobs         []models.JobPost
	applications []models.JobApplication
	resumes      []models.Resume
	profiles     []models.UserProfile
	fail         bool
}

var errStoreDown = errors.New("store unavailable")

func (f *fakeStore) ListJobs(ctx context.Context) ([]models.JobPost, error) {
	if f.fail {
		return nil, errStoreDown
	}
	return f.jobs, nil
}

func (f *fakeStore) CreateJob(ctx context.Context, job *models.JobPost) error {
	if f.fail {
		return errStoreDown
	}
	f.jobs = append(f.jobs, *job)
	return nil
}

func (f *fakeStore) DeleteJob(ctx context.Context, id string) (bool, error) {
	if f.fail {
		return false, errStoreDown
	}
	for i, job := range f.jobs {
		if job.ID == id {
			f.jobs = append(f.jobs[:i], f.jobs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) SearchJobs(ctx context.Context, filter store.JobSearchFilter) ([]models.JobPost, error) {
	if f.fail {
		return nil, errStoreDown
	}
	var out []models.JobPost
	for _, job := range f.jobs {
		if filter.Query != "" &&
			!strings.Contains(strings.ToLower(job.Title), strings.ToLower(filter.Query)) &&
			!strings.Contains(strings.ToLower(job.Description), strings.ToLower(filter.Query)) {
			continue
		}
		if filter.JobType != "" && job.JobType != filter.JobType {
			continue
		}
		if filter.MinSalary != nil && job.Salary < *filter.MinSalary {
			continue
		}
		out = append(out, job)
	}
	return out, nil
}

func (f *fakeStore) GetJob(ctx context.Context, id string) (*models.JobPost, error) {
	if f.fail {
		return nil, errStoreDown
	}
	for i := range f.jobs {
		if f.jobs[i].ID == id {
			return &f.jobs[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) JobStats(ctx context.Context) (*models.PlatformStats, error) {
	if f.fail {
		return nil, errStoreDown
	}
	byType := make(map[string]int64)
	for _, job := range f.jobs {
		byType[job.JobType]++
	}
	return &models.PlatformStats{TotalJobs: int64(len(f.jobs)), JobsByType: byType}, nil
}

func (f *fakeStore) CreateApplication(ctx context.Context, app *models.JobApplication) error {
	if f.fail {
		return errStoreDown
	}
	f.applications = append(f.applications, *app)
	return nil
}

func (f *fakeStore) HasApplication(ctx context.Context, jobID, userID string) (bool, error) {
	if f.fail {
		return false, errStoreDown
	}
	for _, app := range f.applications {
		if app.JobID == jobID && app.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) ListApplicationsByUser(ctx context.Context, userID string) ([]models.JobApplication, error) {
	if f.fail {
		return nil, errStoreDown
	}
	var out []models.JobApplication
	for _, app := range f.applications {
		if app.UserID == userID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (f *fakeStore) ListApplicationsByJob(ctx context.Context, jobID string) ([]models.JobApplication, error) {
	if f.fail {
		return nil, errStoreDown
	}
	var out []models.JobApplication
	for _, app := range f.applications {
		if app.JobID == jobID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateApplicationStatus(ctx context.Context, id, status string) (bool, error) {
	if f.fail {
		return false, errStoreDown
	}
	for i := range f.applications {
		if f.applications[i].ID == id {
			f.applications[i].Status = status
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) CreateResume(ctx context.Context, resume *models.Resume) error {
	if f.fail {
		return errStoreDown
	}
	f.resumes = append(f.resumes, *resume)
	return nil
}

func (f *fakeStore) ListResumesByUser(ctx context.Context, userID string) ([]models.Resume, error) {
	if f.fail {
		return nil, errStoreDown
	}
	var out []models.Resume
	for _, r := range f.resumes {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) GetResumeOwned(ctx context.Context, id, userID string) (*models.Resume, error) {
	if f.fail {
		return nil, errStoreDown
	}
	for i := range f.resumes {
		if f.resumes[i].ID == id && f.resumes[i].UserID == userID {
			return &f.resumes[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) DeleteResume(ctx context.Context, id, userID string) (bool, error) {
	if f.fail {
		return false, errStoreDown
	}
	for i, r := range f.resumes {
		if r.ID == id && r.UserID == userID {
			f.resumes = append(f.resumes[:i], f.resumes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) SaveProfile(ctx context.Context, profile *models.UserProfile) error {
	if f.fail {
		return errStoreDown
	}
	f.profiles = append(f.profiles, *profile)
	return nil
}

func (f *fakeStore) Ping(ctx context.Context) error {
	if f.fail {
		return errStoreDown
	}
	return nil
}

// fakeLLM is a canned LLMService for handler tests.
type fakeLLM struct {
	chatReply   string
	enhancement *models.ResumeEnhancement
	modelNames  []string
	err         error
	healthy     bool
}

func (f *fakeLLM) Chat(ctx context.Context, message string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.chatReply, nil
}

func (f *fakeLLM) EnhanceResume(ctx context.Context, resumeText, jobDescription string) (*models.ResumeEnhancement, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.enhancement, nil
}

func (f *fakeLLM) ListModels(ctx context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.modelNames, nil
}

func (f *fakeLLM) IsHealthy() bool { return f.healthy }

func (f *fakeLLM) GetProviderName() string { return "claude" }

// fakeObjectStore records uploads and deletes in memory.
type fakeObjectStore struct {
	uploads   map[string][]byte
	deleted   []string
	uploadErr error
	deleteErr error
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{uploads: make(map[string][]byte)}
}

func (f *fakeObjectStore) Upload(objectKey string, data []byte, contentType string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploads[objectKey] = data
	return "https://cdn.example.com/" + objectKey, nil
}

func (f *fakeObjectStore) Delete(objectKey string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, objectKey)
	return nil
}

func (f *fakeObjectStore) IsHealthy() bool { return true }

// newTestContext builds an echo context around the given request.
func newTestContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

// asUser attaches a verified identity, the way the auth middleware would.
func asUser(c echo.Context, id string) {
	c.Set("identity", &auth.Identity{ID: id, Email: id + "@example.com", UserType: "jobseeker"})
}
