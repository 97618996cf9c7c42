package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/easymenu/internal/errors"
	"github.com/aaravmahajanofficial/easymenu/internal/models"
	"github.com/aaravmahajanofficial/easymenu/internal/utils/response"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey uuid.UUID

var SessionContextKey = contextKey(uuid.New())

// RevocationChecker reports whether a session id was revoked by logout.
type RevocationChecker interface {
	IsSessionRevoked(ctx context.Context, sessionID string) (bool, error)
}

type AuthMiddleware struct {
	jwtKey  []byte
	revoked RevocationChecker
}

func NewAuthMiddleware(jwtKey []byte, revoked RevocationChecker) *AuthMiddleware {

	return &AuthMiddleware{jwtKey: jwtKey, revoked: revoked}

}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		authHeader := r.Header.Get("Authorization")

		if authHeader == "" {
			logger.Warn("Missing authorization header")
			response.Error(w, errors.UnauthorizedError("Authorization header is required"))
			return
		}

		// Token is of format : "Bearer <token>"
		tokenParts := strings.Split(authHeader, " ")

		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			logger.Warn("Invalid authorization header format")
			response.Error(w, errors.UnauthorizedError("Invalid authorization format"))
			return
		}

		claims := &models.Claims{}

		token, err := jwt.ParseWithClaims(tokenParts[1], claims, func(t *jwt.Token) (any, error) {
			return m.jwtKey, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())

		if err != nil || !token.Valid {
			logger.Warn("JWT parsing failed", slog.Any("error", err))
			response.Error(w, errors.UnauthorizedError("Invalid or expired token"))
			return
		}

		if m.revoked != nil && claims.ID != "" {
			revoked, err := m.revoked.IsSessionRevoked(r.Context(), claims.ID)
			if err != nil {
				logger.Error("Session revocation check failed", slog.Any("error", err))
				response.Error(w, errors.ThirdPartyError("Session check failed").WithError(err))
				return
			}

			if revoked {
				logger.Warn("Revoked session used", slog.String("sessionId", claims.ID))
				response.Error(w, errors.UnauthorizedError("Session has ended"))
				return
			}
		}

		ctx := context.WithValue(r.Context(), SessionContextKey, claims)

		requestScopedLogger := logger.With(slog.String("operator", claims.Email))
		ctx = WithLogger(ctx, requestScopedLogger)

		requestScopedLogger.Debug("Operator authenticated")

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func ClaimsFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(SessionContextKey).(*models.Claims)
	return claims, ok
}
