package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"jobconnect-backend/internal/api/middleware"
	"jobconnect-backend/internal/api/validation"
	"jobconnect-backend/internal/auth"
	"jobconnect-backend/internal/logging"
	"jobconnect-backend/internal/store"
	"jobconnect-backend/pkg/models"
)

// RegisterHandler serves POST /auth/register (and its /auth/signup alias).
// Credentials are forwarded to the realm's identity provider; only the
// profile projection is persisted locally, in the realm's store.
func RegisterHandler(client *auth.Client, st store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := logging.GetGlobalLogger()

		var req models.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request body")
		}

		req.Normalize()
		if err := requestValidator.Struct(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "validation_failed", validation.FormatErrors(err))
		}

		if !client.Configured(req.UserType) {
			return errorJSON(c, http.StatusInternalServerError, "auth_not_configured",
				"Identity provider is not configured for the "+req.UserType+" realm")
		}

		metadata := map[string]string{"user_type": req.UserType}
		if req.Name != "" {
			metadata["name"] = req.Name
		}
		if req.Company != "" {
			metadata["company"] = req.Company
		}

		ctx := c.Request().Context()
		user, err := client.SignUp(ctx, req.UserType, req.Email, req.Password, metadata)
		if err != nil {
			logger.Warn("Registration rejected by identity provider", map[string]interface{}{
				"request_id": requestID(c),
				"user_type":  req.UserType,
				"error":      err.Error(),
			})
			return errorJSON(c, http.StatusBadRequest, "registration_failed", err.Error())
		}

		if st != nil {
			profile := &models.UserProfile{
				ID:        user.ID,
				Email:     user.Email,
				UserType:  req.UserType,
				Name:      req.Name,
				Company:   req.Company,
				CreatedAt: time.Now().UTC(),
			}
			if saveErr := st.SaveProfile(ctx, profile); saveErr != nil {
				logger.Warn("Failed to persist profile, account still created", map[string]interface{}{
					"request_id": requestID(c),
					"user_id":    user.ID,
					"error":      saveErr.Error(),
				})
			}
		}

		return c.JSON(http.StatusOK, models.AuthUserResponse{
			ID:       user.ID,
			Email:    user.Email,
			UserType: req.UserType,
			Name:     req.Name,
			Company:  req.Company,
		})
	}
}

// LoginHandler serves POST /auth/login. The provider mints the bearer
// token; invalid credentials come back as 401 with the provider's message.
func LoginHandler(client *auth.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.LoginRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request body")
		}

		req.Normalize()
		if err := requestValidator.Struct(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "validation_failed", validation.FormatErrors(err))
		}

		if !client.Configured(req.UserType) {
			return errorJSON(c, http.StatusInternalServerError, "auth_not_configured",
				"Identity provider is not configured for the "+req.UserType+" realm")
		}

		session, err := client.SignIn(c.Request().Context(), req.UserType, req.Email, req.Password)
		if err != nil {
			logging.GetGlobalLogger().Warn("Login rejected by identity provider", map[string]interface{}{
				"request_id": requestID(c),
				"user_type":  req.UserType,
				"error":      err.Error(),
			})
			return errorJSON(c, http.StatusUnauthorized, "login_failed", err.Error())
		}

		return c.JSON(http.StatusOK, models.LoginResponse{
			AccessToken: session.AccessToken,
			TokenType:   session.TokenType,
			User: models.AuthUserResponse{
				ID:       session.User.ID,
				Email:    session.User.Email,
				UserType: req.UserType,
			},
		})
	}
}

// ProfileHandler serves GET /auth/profile. The identity comes entirely from
// the verified token; no caller-supplied realm selector is consulted.
func ProfileHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := middleware.CurrentIdentity(c)
		if !ok {
			return errorJSON(c, http.StatusUnauthorized, "unauthenticated", "Authentication required")
		}

		return c.JSON(http.StatusOK, models.AuthUserResponse{
			ID:       identity.ID,
			Email:    identity.Email,
			UserType: identity.UserType,
		})
	}
}
