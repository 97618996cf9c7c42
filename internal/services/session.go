package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/easymenu/internal/api/middleware"
	"github.com/aaravmahajanofficial/easymenu/internal/config"
	"github.com/aaravmahajanofficial/easymenu/internal/errors"
	"github.com/aaravmahajanofficial/easymenu/internal/models"
	repository "github.com/aaravmahajanofficial/easymenu/internal/repositories"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SessionService issues and revokes operator session tokens. There is no user
// directory: a configured bcrypt hash guards the dashboard, and without one
// any non-empty credentials are accepted.
type SessionService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	Logout(ctx context.Context, claims *models.Claims) error
}

type sessionService struct {
	repo         repository.SessionRepository
	jwtKey       []byte
	passwordHash []byte
	ttl          time.Duration
	now          func() time.Time
}

func NewSessionService(repo repository.SessionRepository, security config.Security) SessionService {
	return &sessionService{
		repo:         repo,
		jwtKey:       []byte(security.JWTKey),
		passwordHash: []byte(security.OperatorPasswordHash),
		ttl:          security.SessionTTL,
		now:          time.Now,
	}
}

func (s *sessionService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	logger := middleware.LoggerFromContext(ctx)

	// check rate limit
	allowed, remaining, retryAfter, err := s.repo.CheckLoginRateLimit(ctx, req.Email)
	if err != nil {
		return nil, errors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		return &models.LoginResponse{
			Success:    false,
			Message:    "Too many login attempts. Please try again later.",
			RetryAfter: retryAfter,
		}, nil
	}

	if len(s.passwordHash) > 0 && bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password)) != nil {
		logger.Warn("Operator login rejected", slog.String("email", req.Email))
		return &models.LoginResponse{
			Success:        false,
			Message:        "Invalid email or password",
			RemainingTries: remaining,
		}, nil
	}

	now := s.now()
	claims := &models.Claims{
		Email: req.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   req.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return nil, errors.InternalError("Failed to generate authentication token").WithError(err)
	}

	return &models.LoginResponse{
		Success:   true,
		Token:     tokenString,
		ExpiresIn: int(s.ttl.Seconds()),
	}, nil
}

// Logout revokes the session id until the token would have expired anyway.
func (s *sessionService) Logout(ctx context.Context, claims *models.Claims) error {
	if claims == nil || claims.ID == "" {
		return errors.UnauthorizedError("Authentication required")
	}

	var ttl time.Duration
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Sub(s.now())
	}

	if err := s.repo.RevokeSession(ctx, claims.ID, ttl); err != nil {
		return errors.ThirdPartyError("Failed to end session").WithError(err)
	}

	middleware.LoggerFromContext(ctx).Info("Operator session ended", slog.String("sessionId", claims.ID))

	return nil
}
