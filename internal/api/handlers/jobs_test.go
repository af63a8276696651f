package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobconnect-backend/internal/store"
	"jobconnect-backend/pkg/models"
)

func TestCreateJobHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantInMsg  string
	}{
		{
			name:       "valid posting",
			body:       `{"title":"Backend Engineer","description":"Build and run Go services for the hiring platform","salary":90000,"job_type":"full-time"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "mixed case job type accepted",
			body:       `{"title":"Backend Engineer","description":"Build and run Go services for the hiring platform","salary":90000,"job_type":"Full-Time"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "title too short",
			body:       `{"title":"Go","description":"Build and run Go services for the hiring platform","salary":90000,"job_type":"full-time"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantInMsg:  "title must be at least 3 characters",
		},
		{
			name:       "whitespace only title",
			body:       `{"title":"    ","description":"Build and run Go services for the hiring platform","salary":90000,"job_type":"full-time"}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "unknown job type",
			body:       `{"title":"Backend Engineer","description":"Build and run Go services for the hiring platform","salary":90000,"job_type":"gig"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantInMsg:  "job_type must be one of",
		},
		{
			name:       "negative salary",
			body:       `{"title":"Backend Engineer","description":"Build and run Go services for the hiring platform","salary":-1,"job_type":"full-time"}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "missing description",
			body:       `{"title":"Backend Engineer","salary":90000,"job_type":"full-time"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantInMsg:  "description is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &fakeStore{}
			req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			c, rec := newTestContext(req)

			require.NoError(t, CreateJobHandler(st)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				var job models.JobPost
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
				assert.NotEmpty(t, job.ID)
				assert.Equal(t, "full-time", job.JobType)
				assert.False(t, job.CreatedAt.IsZero())
				assert.Len(t, st.jobs, 1)
			} else {
				var errResp models.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
				assert.Equal(t, "validation_failed", errResp.Error)
				if tt.wantInMsg != "" {
					assert.Contains(t, errResp.Message, tt.wantInMsg)
				}
				assert.Empty(t, st.jobs)
			}
		})
	}
}

func TestCreateJobHandlerAttributesOwner(t *testing.T) {
	st := &fakeStore{}
	body := `{"title":"Backend Engineer","description":"Build and run Go services for the hiring platform","salary":90000,"job_type":"contract"}`
	req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newTestContext(req)
	asUser(c, "emp-1")

	require.NoError(t, CreateJobHandler(st)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "emp-1", st.jobs[0].UserID)
}

func TestListJobsHandler(t *testing.T) {
	st := &fakeStore{jobs: []models.JobPost{
		{ID: "j2", Title: "Newer", JobType: "contract", CreatedAt: time.Now()},
		{ID: "j1", Title: "Older", JobType: "full-time", CreatedAt: time.Now().Add(-time.Hour)},
	}}

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	c, rec := newTestContext(req)

	require.NoError(t, ListJobsHandler(st)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var jobs []models.JobPost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &jobs))
	require.Len(t, jobs, 2)
	assert.Equal(t, "j2", jobs[0].ID)
}

func TestDeleteJobHandler(t *testing.T) {
	st := &fakeStore{jobs: []models.JobPost{{ID: "j1", Title: "Gone soon"}}}

	req := httptest.NewRequest(http.MethodDelete, "/jobs/j1", nil)
	c, rec := newTestContext(req)
	c.SetParamNames("id")
	c.SetParamValues("j1")

	require.NoError(t, DeleteJobHandler(st)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, st.jobs)

	req = httptest.NewRequest(http.MethodDelete, "/jobs/missing", nil)
	c, rec = newTestContext(req)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	require.NoError(t, DeleteJobHandler(st)(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchJobsHandler(t *testing.T) {
	st := &fakeStore{jobs: []models.JobPost{
		{ID: "j1", Title: "Go Engineer", Description: "Backend services", JobType: "full-time", Salary: 90000},
		{ID: "j2", Title: "Designer", Description: "Product design", JobType: "contract", Salary: 50000},
	}}

	req := httptest.NewRequest(http.MethodGet, "/jobs/search?q=go&min_salary=60000", nil)
	c, rec := newTestContext(req)

	require.NoError(t, SearchJobsHandler(st)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var jobs []models.JobPost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &jobs))
	require.Len(t, jobs, 1)
	assert.Equal(t, "j1", jobs[0].ID)
}

func TestSearchJobsHandlerRejectsBadParams(t *testing.T) {
	st := &fakeStore{}

	req := httptest.NewRequest(http.MethodGet, "/jobs/search?min_salary=lots", nil)
	c, rec := newTestContext(req)
	require.NoError(t, SearchJobsHandler(st)(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/jobs/search?job_type=gig", nil)
	c, rec = newTestContext(req)
	require.NoError(t, SearchJobsHandler(st)(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListJobsHandlerStoreNotConfigured(t *testing.T) {
	st := store.Unconfigured()

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	c, rec := newTestContext(req)

	require.NoError(t, ListJobsHandler(st)(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "store_not_configured", errResp.Error)
	assert.Equal(t, "Database is not configured", errResp.Message)
}

func TestStatsHandlerDegradesOnFailure(t *testing.T) {
	st := &fakeStore{fail: true}

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	c, rec := newTestContext(req)

	require.NoError(t, StatsHandler(st)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var stats models.PlatformStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Zero(t, stats.TotalJobs)
	assert.NotEmpty(t, stats.Error)
	assert.NotNil(t, stats.JobsByType)
}

func TestStatsHandler(t *testing.T) {
	st := &fakeStore{jobs: []models.JobPost{
		{ID: "j1", JobType: "full-time"},
		{ID: "j2", JobType: "full-time"},
		{ID: "j3", JobType: "contract"},
	}}

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	c, rec := newTestContext(req)

	require.NoError(t, StatsHandler(st)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var stats models.PlatformStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, int64(3), stats.TotalJobs)
	assert.Equal(t, int64(2), stats.JobsByType["full-time"])
	assert.Empty(t, stats.Error)
}
