package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"jobconnect-backend/internal/api/middleware"
	"jobconnect-backend/internal/api/validation"
	"jobconnect-backend/internal/logging"
	"jobconnect-backend/internal/store"
	"jobconnect-backend/pkg/models"
	"jobconnect-backend/pkg/utils"
)

// CreateApplicationHandler serves POST /applications. Checks run in a
// fixed order: authentication, validation, job existence, duplicate. The
// duplicate check is check-then-insert and can race under concurrent
// submissions from the same caller.
func CreateApplicationHandler(st store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := logging.GetGlobalLogger()

		identity, ok := middleware.CurrentIdentity(c)
		if !ok {
			return errorJSON(c, http.StatusUnauthorized, "unauthenticated", "Authentication required to apply")
		}

		var req models.ApplyRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request body")
		}

		req.Normalize()
		if err := requestValidator.Struct(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "validation_failed", validation.FormatErrors(err))
		}

		ctx := c.Request().Context()

		job, err := st.GetJob(ctx, req.JobID)
		if err != nil {
			logger.Error("Failed to look up job for application", map[string]interface{}{
				"request_id": requestID(c),
				"job_id":     req.JobID,
				"error":      err.Error(),
			})
			return storeErrorJSON(c, err, "Failed to process application")
		}
		if job == nil {
			return errorJSON(c, http.StatusNotFound, "not_found", "Job posting not found")
		}

		exists, err := st.HasApplication(ctx, req.JobID, identity.ID)
		if err != nil {
			logger.Error("Duplicate check failed", map[string]interface{}{
				"request_id": requestID(c),
				"job_id":     req.JobID,
				"error":      err.Error(),
			})
			return storeErrorJSON(c, err, "Failed to process application")
		}
		if exists {
			return errorJSON(c, http.StatusBadRequest, "duplicate_application", "You have already applied to this job")
		}

		app := &models.JobApplication{
			ID:          utils.GenerateEntityID(),
			JobID:       req.JobID,
			UserID:      identity.ID,
			CoverLetter: req.CoverLetter,
			ResumeID:    req.ResumeID,
			Status:      models.ApplicationStatusPending,
			CreatedAt:   time.Now().UTC(),
		}

		if err := st.CreateApplication(ctx, app); err != nil {
			logger.Error("Failed to create application", map[string]interface{}{
				"request_id": requestID(c),
				"job_id":     req.JobID,
				"error":      err.Error(),
			})
			return storeErrorJSON(c, err, "Failed to submit application")
		}

		logger.Info("Application submitted", map[string]interface{}{
			"request_id":     requestID(c),
			"application_id": app.ID,
			"job_id":         app.JobID,
		})
		return c.JSON(http.StatusOK, app)
	}
}

// ListMyApplicationsHandler serves GET /applications, scoped to the
// authenticated caller, newest first.
func ListMyApplicationsHandler(st store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := middleware.CurrentIdentity(c)
		if !ok {
			return errorJSON(c, http.StatusUnauthorized, "unauthenticated", "Authentication required")
		}

		apps, err := st.ListApplicationsByUser(c.Request().Context(), identity.ID)
		if err != nil {
			logging.GetGlobalLogger().Error("Failed to list applications", map[string]interface{}{
				"request_id": requestID(c),
				"error":      err.Error(),
			})
			return storeErrorJSON(c, err, "Failed to load applications")
		}
		return c.JSON(http.StatusOK, apps)
	}
}

// ListJobApplicationsHandler serves GET /jobs/:id/applications. Any
// authenticated caller may list once the job exists; the owner mismatch is
// logged so the gap is visible in traffic, not silently accepted.
func ListJobApplicationsHandler(st store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := middleware.CurrentIdentity(c)
		if !ok {
			return errorJSON(c, http.StatusUnauthorized, "unauthenticated", "Authentication required")
		}

		jobID := c.Param("id")
		ctx := c.Request().Context()

		job, err := st.GetJob(ctx, jobID)
		if err != nil {
			logging.GetGlobalLogger().Error("Failed to look up job", map[string]interface{}{
				"request_id": requestID(c),
				"job_id":     jobID,
				"error":      err.Error(),
			})
			return storeErrorJSON(c, err, "Failed to load applications")
		}
		if job == nil {
			return errorJSON(c, http.StatusNotFound, "not_found", "Job posting not found")
		}

		if job.UserID != "" && job.UserID != identity.ID {
			logging.GetGlobalLogger().Warn("Applications listed by non-owner", map[string]interface{}{
				"request_id": requestID(c),
				"job_id":     jobID,
				"owner_id":   job.UserID,
				"caller_id":  identity.ID,
			})
		}

		apps, err := st.ListApplicationsByJob(ctx, jobID)
		if err != nil {
			logging.GetGlobalLogger().Error("Failed to list job applications", map[string]interface{}{
				"request_id": requestID(c),
				"job_id":     jobID,
				"error":      err.Error(),
			})
			return storeErrorJSON(c, err, "Failed to load applications")
		}
		return c.JSON(http.StatusOK, apps)
	}
}

// UpdateApplicationStatusHandler serves PATCH /applications/:id/status.
// Pending applications can move to reviewed, accepted or rejected; reviewed
// ones can still be accepted or rejected later.
func UpdateApplicationStatusHandler(st store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := middleware.CurrentIdentity(c); !ok {
			return errorJSON(c, http.StatusUnauthorized, "unauthenticated", "Authentication required")
		}

		var req models.UpdateApplicationStatusRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request body")
		}
		if err := requestValidator.Struct(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "validation_failed", validation.FormatErrors(err))
		}

		id := c.Param("id")
		updated, err := st.UpdateApplicationStatus(c.Request().Context(), id, req.Status)
		if err != nil {
			logging.GetGlobalLogger().Error("Failed to update application status", map[string]interface{}{
				"request_id":     requestID(c),
				"application_id": id,
				"error":          err.Error(),
			})
			return storeErrorJSON(c, err, "Failed to update application")
		}
		if !updated {
			return errorJSON(c, http.StatusNotFound, "not_found", "Application not found")
		}

		logging.GetGlobalLogger().Info("Application status updated", map[string]interface{}{
			"request_id":     requestID(c),
			"application_id": id,
			"status":         req.Status,
		})
		return c.JSON(http.StatusOK, models.MessageResponse{Message: "Application status updated"})
	}
}
