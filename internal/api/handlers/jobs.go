package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"jobconnect-backend/internal/api/middleware"
	"jobconnect-backend/internal/api/validation"
	"jobconnect-backend/internal/logging"
	"jobconnect-backend/internal/store"
	"jobconnect-backend/pkg/models"
	"jobconnect-backend/pkg/utils"
)

// ListJobsHandler serves GET /jobs, newest first.
func ListJobsHandler(st store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		jobs, err := st.ListJobs(c.Request().Context())
		if err != nil {
			logging.GetGlobalLogger().Error("Failed to list jobs", map[string]interface{}{
				"request_id": requestID(c),
				"error":      err.Error(),
			})
			return storeErrorJSON(c, err, "Failed to load job postings")
		}
		return c.JSON(http.StatusOK, jobs)
	}
}

// CreateJobHandler serves POST /jobs. Validation failures return 422 with
// the per-field messages joined into one string. The posting is attributed
// to the caller when a valid bearer token accompanied the request.
func CreateJobHandler(st store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := logging.GetGlobalLogger()

		var req models.CreateJobRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request body")
		}

		req.Normalize()
		if err := requestValidator.Struct(&req); err != nil {
			return errorJSON(c, http.StatusUnprocessableEntity, "validation_failed", validation.FormatErrors(err))
		}

		job := &models.JobPost{
			ID:          utils.GenerateEntityID(),
			Title:       req.Title,
			Description: req.Description,
			Salary:      req.Salary,
			JobType:     req.JobType,
			CreatedAt:   time.Now().UTC(),
		}
		if identity, ok := middleware.CurrentIdentity(c); ok {
			job.UserID = identity.ID
		}

		if err := st.CreateJob(c.Request().Context(), job); err != nil {
			logger.Error("Failed to create job", map[string]interface{}{
				"request_id": requestID(c),
				"error":      err.Error(),
			})
			return storeErrorJSON(c, err, "Failed to create job posting")
		}

		logger.Info("Job posting created", map[string]interface{}{
			"request_id": requestID(c),
			"job_id":     job.ID,
			"job_type":   job.JobType,
		})
		return c.JSON(http.StatusOK, job)
	}
}

// DeleteJobHandler serves DELETE /jobs/:id. Applications referencing the
// job are left in place; their job_id simply stops resolving.
func DeleteJobHandler(st store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")

		deleted, err := st.DeleteJob(c.Request().Context(), id)
		if err != nil {
			logging.GetGlobalLogger().Error("Failed to delete job", map[string]interface{}{
				"request_id": requestID(c),
				"job_id":     id,
				"error":      err.Error(),
			})
			return storeErrorJSON(c, err, "Failed to delete job posting")
		}
		if !deleted {
			return errorJSON(c, http.StatusNotFound, "not_found", "Job posting not found")
		}

		return c.JSON(http.StatusOK, models.MessageResponse{Message: "Job deleted successfully"})
	}
}

// SearchJobsHandler serves GET /jobs/search with the composable q,
// job_type and min_salary filters. An unparsable min_salary is rejected
// rather than ignored.
func SearchJobsHandler(st store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		filter := store.JobSearchFilter{
			Query:   strings.TrimSpace(c.QueryParam("q")),
			JobType: strings.ToLower(strings.TrimSpace(c.QueryParam("job_type"))),
		}

		if filter.JobType != "" && !models.IsValidJobType(filter.JobType) {
			return errorJSON(c, http.StatusBadRequest, "invalid_request",
				"job_type must be one of: "+strings.Join(models.ValidJobTypes, ", "))
		}

		if raw := strings.TrimSpace(c.QueryParam("min_salary")); raw != "" {
			minSalary, err := strconv.Atoi(raw)
			if err != nil || minSalary < 0 {
				return errorJSON(c, http.StatusBadRequest, "invalid_request", "min_salary must be a non-negative integer")
			}
			filter.MinSalary = &minSalary
		}

		jobs, err := st.SearchJobs(c.Request().Context(), filter)
		if err != nil {
			logging.GetGlobalLogger().Error("Job search failed", map[string]interface{}{
				"request_id": requestID(c),
				"error":      err.Error(),
			})
			return storeErrorJSON(c, err, "Job search failed")
		}
		return c.JSON(http.StatusOK, jobs)
	}
}

// StatsHandler serves GET /stats. Aggregation failures degrade to a zeroed
// payload carrying the error flag instead of a 5xx, so dashboards keep
// rendering.
func StatsHandler(st store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		stats, err := st.JobStats(c.Request().Context())
		if err != nil {
			logging.GetGlobalLogger().Error("Stats aggregation failed", map[string]interface{}{
				"request_id": requestID(c),
				"error":      err.Error(),
			})
			return c.JSON(http.StatusOK, models.PlatformStats{
				TotalJobs:  0,
				JobsByType: map[string]int64{},
				Error:      "stats temporarily unavailable",
			})
		}
		return c.JSON(http.StatusOK, stats)
	}
}
