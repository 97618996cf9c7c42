package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/easymenu/internal/api/middleware"
	"github.com/go-playground/validator/v10"
)

// a full catalog document with images as URLs stays well below this
const maxBodyBytes = 1 << 20

var (
	errEmptyBody    = errors.New("request body cannot be empty")
	errBodyTooLarge = fmt.Errorf("request body exceeds %d bytes", maxBodyBytes)
	errTrailingData = errors.New("request body must contain a single JSON value")
)

func DecodeJSONBody(r *http.Request, dest any) error {

	defer r.Body.Close()

	logger := middleware.LoggerFromContext(r.Context()).With(slog.String("endpoint", r.URL.Path))

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		logger.Error("Failed to read request body", slog.String("error", err.Error()))
		return fmt.Errorf("failed to read request body: %w", err)
	}

	switch {
	case len(bytes.TrimSpace(body)) == 0:
		logger.Warn("Empty request body")
		return errEmptyBody
	case len(body) > maxBodyBytes:
		logger.Warn("Request body too large")
		return errBodyTooLarge
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(dest); err != nil {
		logger.Warn("Failed to parse request JSON", slog.String("error", err.Error()))
		return fmt.Errorf("invalid JSON format: %w", err)
	}

	if dec.More() {
		logger.Warn("Trailing data after request JSON")
		return errTrailingData
	}

	return nil
}

func ValidateStruct(validate *validator.Validate, data any) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		slog.Warn("Request validation failed", slog.Int("violations", len(validationErrs)))
		return fmt.Errorf("validation error: %w", validationErrs)
	}

	slog.Error("Unexpected validation error", slog.String("error", err.Error()))
	return fmt.Errorf("unexpected validation error: %w", err)
}
