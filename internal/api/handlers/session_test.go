package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/easymenu/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/easymenu/internal/errors"
	"github.com/aaravmahajanofficial/easymenu/internal/models"
	"github.com/aaravmahajanofficial/easymenu/internal/services/mocks"
	"github.com/aaravmahajanofficial/easymenu/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLogin(t *testing.T) {
	credentials := models.LoginRequest{Email: "dono@pizzariabella.com", Password: "s3nha"}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockSessionService := mocks.NewMockSessionService(t)
		sessionHandler := handlers.NewSessionHandler(mockSessionService)
		mockSessionService.On("Login", mock.Anything, &credentials).Return(&models.LoginResponse{Success: true, Token: "token", ExpiresIn: 3600}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/session", jsonBody(t, credentials), nil)
		rr := httptest.NewRecorder()

		// Act
		sessionHandler.Login().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		var got models.LoginResponse
		decodeEnvelope(t, rr, &got)
		assert.Equal(t, "token", got.Token)
		assert.Equal(t, 3600, got.ExpiresIn)
	})

	t.Run("Invalid credentials", func(t *testing.T) {
		mockSessionService := mocks.NewMockSessionService(t)
		sessionHandler := handlers.NewSessionHandler(mockSessionService)
		mockSessionService.On("Login", mock.Anything, mock.Anything).
			Return(&models.LoginResponse{Success: false, Message: "Invalid email or password", RemainingTries: 2}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/session", jsonBody(t, credentials), nil)
		rr := httptest.NewRecorder()

		sessionHandler.Login().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		resp := decodeEnvelope(t, rr, nil)
		assert.Equal(t, appErrors.ErrCodeUnauthorized, resp.Error.Code)
		assert.Equal(t, []string{"2 attempts remaining"}, resp.Error.Details)
	})

	t.Run("Rate limited", func(t *testing.T) {
		mockSessionService := mocks.NewMockSessionService(t)
		sessionHandler := handlers.NewSessionHandler(mockSessionService)
		mockSessionService.On("Login", mock.Anything, mock.Anything).
			Return(&models.LoginResponse{Success: false, Message: "Too many login attempts. Please try again later.", RetryAfter: 12}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/session", jsonBody(t, credentials), nil)
		rr := httptest.NewRecorder()

		sessionHandler.Login().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.Equal(t, "12", rr.Header().Get("Retry-After"))
	})

	t.Run("Invalid email", func(t *testing.T) {
		mockSessionService := mocks.NewMockSessionService(t)
		sessionHandler := handlers.NewSessionHandler(mockSessionService)

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/session", jsonBody(t, models.LoginRequest{Email: "dono", Password: "x"}), nil)
		rr := httptest.NewRecorder()

		sessionHandler.Login().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockSessionService.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})
}

func TestLogout(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSessionService := mocks.NewMockSessionService(t)
		sessionHandler := handlers.NewSessionHandler(mockSessionService)
		mockSessionService.On("Logout", mock.Anything, mock.MatchedBy(func(c *models.Claims) bool {
			return c.ID == "session-1"
		})).Return(nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/session", nil, "session-1", nil)
		rr := httptest.NewRecorder()

		sessionHandler.Logout().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		resp := decodeEnvelope(t, rr, nil)
		assert.True(t, resp.Success)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		mockSessionService := mocks.NewMockSessionService(t)
		sessionHandler := handlers.NewSessionHandler(mockSessionService)

		req := testutils.CreateTestRequestWithoutContext(http.MethodDelete, "/api/v1/session", nil, nil)
		rr := httptest.NewRecorder()

		sessionHandler.Logout().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockSessionService.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything)
	})
}
