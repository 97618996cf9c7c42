package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/aaravmahajanofficial/easymenu/internal/api/middleware"
	"github.com/aaravmahajanofficial/easymenu/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

const OperatorEmail = "operator@example.com"

// CreateTestRequestWithContext builds a request carrying an operator session.
func CreateTestRequestWithContext(method, target string, body io.Reader, sessionID string, pathParams map[string]string) *http.Request {
	req := CreateTestRequestWithoutContext(method, target, body, pathParams)

	claims := &models.Claims{
		Email:            OperatorEmail,
		RegisteredClaims: jwt.RegisteredClaims{ID: sessionID, Subject: OperatorEmail},
	}

	ctx := context.WithValue(req.Context(), middleware.SessionContextKey, claims)

	return req.WithContext(ctx)
}

func CreateTestRequestWithoutContext(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := middleware.WithLogger(req.Context(), logger)

	return req.WithContext(ctx)
}
