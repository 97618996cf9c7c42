package service_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/easymenu/internal/config"
	appErrors "github.com/aaravmahajanofficial/easymenu/internal/errors"
	"github.com/aaravmahajanofficial/easymenu/internal/models"
	"github.com/aaravmahajanofficial/easymenu/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/easymenu/internal/services"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testJWTKey   = "test-signing-key"
	testEmail    = "dono@pizzariabella.com"
	testPassword = "s3nha-forte"
)

func testSecurity(t *testing.T) config.Security {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	return config.Security{JWTKey: testJWTKey, OperatorPasswordHash: string(hash), SessionTTL: time.Hour}
}

func TestSessionService_Login(t *testing.T) {
	ctx := t.Context()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo := mocks.NewSessionRepository(t)
		repo.On("CheckLoginRateLimit", mock.Anything, testEmail).Return(true, 4, 0, nil).Once()
		sessionService := service.NewSessionService(repo, testSecurity(t))

		// Act
		resp, err := sessionService.Login(ctx, &models.LoginRequest{Email: testEmail, Password: testPassword})

		// Assert
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, 3600, resp.ExpiresIn)

		claims := &models.Claims{}
		token, err := jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (any, error) {
			return []byte(testJWTKey), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		require.NoError(t, err)
		assert.True(t, token.Valid)
		assert.Equal(t, testEmail, claims.Email)
		assert.Equal(t, testEmail, claims.Subject)
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("Wrong password", func(t *testing.T) {
		repo := mocks.NewSessionRepository(t)
		repo.On("CheckLoginRateLimit", mock.Anything, testEmail).Return(true, 2, 0, nil).Once()
		sessionService := service.NewSessionService(repo, testSecurity(t))

		resp, err := sessionService.Login(ctx, &models.LoginRequest{Email: testEmail, Password: "errada"})

		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Empty(t, resp.Token)
		assert.Equal(t, 2, resp.RemainingTries)
		assert.Equal(t, "Invalid email or password", resp.Message)
	})

	t.Run("Rate limited", func(t *testing.T) {
		repo := mocks.NewSessionRepository(t)
		repo.On("CheckLoginRateLimit", mock.Anything, testEmail).Return(false, 0, 12, nil).Once()
		sessionService := service.NewSessionService(repo, testSecurity(t))

		resp, err := sessionService.Login(ctx, &models.LoginRequest{Email: testEmail, Password: testPassword})

		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, 12, resp.RetryAfter)
	})

	t.Run("Rate limit store failure", func(t *testing.T) {
		repo := mocks.NewSessionRepository(t)
		repo.On("CheckLoginRateLimit", mock.Anything, testEmail).Return(false, 0, 0, errors.New("connection refused")).Once()
		sessionService := service.NewSessionService(repo, testSecurity(t))

		resp, err := sessionService.Login(ctx, &models.LoginRequest{Email: testEmail, Password: testPassword})

		assert.Nil(t, resp)
		assertAppError(t, err, appErrors.ErrCodeThirdPartyError, http.StatusInternalServerError)
	})

	t.Run("No configured hash accepts any password", func(t *testing.T) {
		repo := mocks.NewSessionRepository(t)
		repo.On("CheckLoginRateLimit", mock.Anything, testEmail).Return(true, 4, 0, nil).Once()
		sessionService := service.NewSessionService(repo, config.Security{JWTKey: testJWTKey, SessionTTL: time.Hour})

		resp, err := sessionService.Login(ctx, &models.LoginRequest{Email: testEmail, Password: "qualquer"})

		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Token)
	})
}

func TestSessionService_Logout(t *testing.T) {
	ctx := t.Context()

	claims := func() *models.Claims {
		return &models.Claims{
			Email: testEmail,
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        "session-1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
	}

	t.Run("Revokes until expiry", func(t *testing.T) {
		repo := mocks.NewSessionRepository(t)
		repo.On("RevokeSession", mock.Anything, "session-1", mock.MatchedBy(func(ttl time.Duration) bool {
			return ttl > 59*time.Minute && ttl <= time.Hour
		})).Return(nil).Once()
		sessionService := service.NewSessionService(repo, testSecurity(t))

		require.NoError(t, sessionService.Logout(ctx, claims()))
	})

	t.Run("Missing claims", func(t *testing.T) {
		sessionService := service.NewSessionService(mocks.NewSessionRepository(t), testSecurity(t))

		err := sessionService.Logout(ctx, nil)

		assertAppError(t, err, appErrors.ErrCodeUnauthorized, http.StatusUnauthorized)
	})

	t.Run("Revocation store failure", func(t *testing.T) {
		repo := mocks.NewSessionRepository(t)
		repo.On("RevokeSession", mock.Anything, "session-1", mock.Anything).Return(errors.New("timeout")).Once()
		sessionService := service.NewSessionService(repo, testSecurity(t))

		err := sessionService.Logout(ctx, claims())

		assertAppError(t, err, appErrors.ErrCodeThirdPartyError, http.StatusInternalServerError)
	})
}
