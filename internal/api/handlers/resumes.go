package handlers

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"jobconnect-backend/internal/api/middleware"
	"jobconnect-backend/internal/logging"
	"jobconnect-backend/internal/storage"
	"jobconnect-backend/internal/store"
	"jobconnect-backend/pkg/models"
	"jobconnect-backend/pkg/utils"
)

// placeholderURLPrefix marks resume rows whose bytes never reached object
// storage. The metadata row is kept so the upload can be retried or
// cleaned up out of band.
const placeholderURLPrefix = "pending://"

// UploadResumeHandler serves POST /resumes/upload. The file rides in the
// multipart field "file"; type and size are checked before any bytes are
// pushed to object storage. A storage write failure still records the
// metadata row, with a placeholder URL.
func UploadResumeHandler(st store.Store, objects storage.ObjectStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := logging.GetGlobalLogger()

		identity, ok := middleware.CurrentIdentity(c)
		if !ok {
			return errorJSON(c, http.StatusUnauthorized, "unauthenticated", "Authentication required to upload a resume")
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Multipart field 'file' is required")
		}

		contentType := fileHeader.Header.Get("Content-Type")
		if !models.IsAllowedResumeContentType(contentType) {
			return errorJSON(c, http.StatusBadRequest, "unsupported_file_type",
				"Allowed file types: "+strings.Join(models.AllowedResumeContentTypes, ", "))
		}
		if fileHeader.Size > models.MaxResumeSize {
			return errorJSON(c, http.StatusBadRequest, "file_too_large", "Resume files are limited to 10 MiB")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Failed to read uploaded file")
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, models.MaxResumeSize+1))
		if err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Failed to read uploaded file")
		}
		if int64(len(data)) > models.MaxResumeSize {
			return errorJSON(c, http.StatusBadRequest, "file_too_large", "Resume files are limited to 10 MiB")
		}

		objectKey := utils.GenerateResumeObjectKey(identity.ID, fileHeader.Filename)

		fileURL := placeholderURLPrefix + objectKey
		if objects != nil {
			uploadedURL, uploadErr := objects.Upload(objectKey, data, contentType)
			if uploadErr != nil {
				logger.Error("Resume upload to object storage failed", map[string]interface{}{
					"request_id": requestID(c),
					"object_key": objectKey,
					"error":      uploadErr.Error(),
				})
			} else {
				fileURL = uploadedURL
			}
		} else {
			logger.Warn("Object storage not configured, recording placeholder URL", map[string]interface{}{
				"request_id": requestID(c),
				"object_key": objectKey,
			})
		}

		resume := &models.Resume{
			ID:         utils.GenerateEntityID(),
			UserID:     identity.ID,
			Filename:   fileHeader.Filename,
			FileURL:    fileURL,
			FileSize:   int64(len(data)),
			UploadedAt: time.Now().UTC(),
		}

		if err := st.CreateResume(c.Request().Context(), resume); err != nil {
			logger.Error("Failed to record resume metadata", map[string]interface{}{
				"request_id": requestID(c),
				"resume_id":  resume.ID,
				"error":      err.Error(),
			})
			return storeErrorJSON(c, err, "Failed to save resume")
		}

		logger.Info("Resume uploaded", map[string]interface{}{
			"request_id": requestID(c),
			"resume_id":  resume.ID,
			"file_size":  resume.FileSize,
		})
		return c.JSON(http.StatusOK, resume)
	}
}

// ListResumesHandler serves GET /resumes, scoped to the caller.
func ListResumesHandler(st store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := middleware.CurrentIdentity(c)
		if !ok {
			return errorJSON(c, http.StatusUnauthorized, "unauthenticated", "Authentication required")
		}

		resumes, err := st.ListResumesByUser(c.Request().Context(), identity.ID)
		if err != nil {
			logging.GetGlobalLogger().Error("Failed to list resumes", map[string]interface{}{
				"request_id": requestID(c),
				"error":      err.Error(),
			})
			return storeErrorJSON(c, err, "Failed to load resumes")
		}
		return c.JSON(http.StatusOK, resumes)
	}
}

// DeleteResumeHandler serves DELETE /resumes/:id. Only the owner can
// delete; the stored object is removed best effort before the metadata
// row, and a storage failure does not block the delete.
func DeleteResumeHandler(st store.Store, objects storage.ObjectStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := logging.GetGlobalLogger()

		identity, ok := middleware.CurrentIdentity(c)
		if !ok {
			return errorJSON(c, http.StatusUnauthorized, "unauthenticated", "Authentication required")
		}

		id := c.Param("id")
		ctx := c.Request().Context()

		resume, err := st.GetResumeOwned(ctx, id, identity.ID)
		if err != nil {
			logger.Error("Failed to look up resume", map[string]interface{}{
				"request_id": requestID(c),
				"resume_id":  id,
				"error":      err.Error(),
			})
			return storeErrorJSON(c, err, "Failed to delete resume")
		}
		if resume == nil {
			return errorJSON(c, http.StatusNotFound, "not_found", "Resume not found")
		}

		if objects != nil {
			if key := objectKeyFromURL(resume.FileURL); key != "" {
				if delErr := objects.Delete(key); delErr != nil {
					logger.Warn("Failed to delete resume object, continuing", map[string]interface{}{
						"request_id": requestID(c),
						"resume_id":  id,
						"object_key": key,
						"error":      delErr.Error(),
					})
				}
			}
		}

		deleted, err := st.DeleteResume(ctx, id, identity.ID)
		if err != nil {
			logger.Error("Failed to delete resume metadata", map[string]interface{}{
				"request_id": requestID(c),
				"resume_id":  id,
				"error":      err.Error(),
			})
			return storeErrorJSON(c, err, "Failed to delete resume")
		}
		if !deleted {
			return errorJSON(c, http.StatusNotFound, "not_found", "Resume not found")
		}

		return c.JSON(http.StatusOK, models.MessageResponse{Message: "Resume deleted successfully"})
	}
}

// objectKeyFromURL recovers the storage key from a stored file URL. Both
// real object URLs and placeholder URLs resolve to the same key.
func objectKeyFromURL(fileURL string) string {
	if key, ok := strings.CutPrefix(fileURL, placeholderURLPrefix); ok {
		return key
	}
	parsed, err := url.Parse(fileURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(parsed.Path, "/")
}
