package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/easymenu/internal/api/middleware"
	"github.com/aaravmahajanofficial/easymenu/internal/errors"
	"github.com/aaravmahajanofficial/easymenu/internal/models"
	service "github.com/aaravmahajanofficial/easymenu/internal/services"
	"github.com/aaravmahajanofficial/easymenu/internal/utils"
	"github.com/aaravmahajanofficial/easymenu/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type SessionHandler struct {
	sessionService service.SessionService
	validator      *validator.Validate
}

func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService, validator: validator.New()}
}

// Login godoc
//	@Summary		Start an operator session
//	@Description	Exchanges the operator credentials for a bearer token. Attempts are rate limited per email.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		models.LoginRequest		true	"Operator credentials"
//	@Success		200			{object}	models.LoginResponse	"Session token"
//	@Failure		400			{object}	response.ErrorResponse	"Validation error"
//	@Failure		401			{object}	response.ErrorResponse	"Invalid credentials"
//	@Failure		429			{object}	response.ErrorResponse	"Too many attempts"
//	@Failure		500			{object}	response.ErrorResponse	"Internal server error"
//	@Router			/session [post]
func (h *SessionHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid login input")
			return
		}

		logger = logger.With(slog.String("email", req.Email))

		resp, err := h.sessionService.Login(r.Context(), &req)
		if err != nil {
			logger.Error("Login failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		if !resp.Success {
			if resp.RetryAfter > 0 {
				logger.Warn("Login rate limited", slog.Int("retryAfter", resp.RetryAfter))
				w.Header().Set("Retry-After", strconv.Itoa(resp.RetryAfter))
				response.Error(w, errors.TooManyRequestsError(resp.Message).
					WithDetail(fmt.Sprintf("retry after %d seconds", resp.RetryAfter)))
				return
			}

			logger.Warn("Invalid credentials")
			response.Error(w, errors.UnauthorizedError(resp.Message).
				WithDetail(fmt.Sprintf("%d attempts remaining", resp.RemainingTries)))
			return
		}

		logger.Info("Operator logged in")
		response.Success(w, http.StatusOK, resp)
	}
}

// Logout godoc
//	@Summary		End the operator session
//	@Description	Revokes the session token used for this request.
//	@Tags			Session
//	@Produce		json
//	@Success		200	{object}	response.APIResponse	"Session ended"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/session [delete]
func (h *SessionHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized logout attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		if err := h.sessionService.Logout(r.Context(), claims); err != nil {
			logger.Error("Logout failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, nil)
	}
}
