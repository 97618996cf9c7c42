package utils

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	appErrors "github.com/aaravmahajanofficial/easymenu/internal/errors"
	"github.com/aaravmahajanofficial/easymenu/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {

	if err := DecodeJSONBody(r, dest); err != nil {
		slog.Warn("Invalid request", slog.String("error", err.Error()))
		response.Error(w, appErrors.BadRequestError("Invalid request body").WithDetail(err.Error()))
		return false
	}

	if err := ValidateStruct(validate, dest); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			response.ValidationError(w, validationErrs)
			return false
		}

		response.Error(w, appErrors.ValidationError("Invalid input data"))
		return false
	}

	return true

}

// ParseIndex reads a non-negative integer path value such as a cart line index.
func ParseIndex(r *http.Request, name string) (int, error) {
	raw := r.PathValue(name)

	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		return 0, appErrors.BadRequestError(fmt.Sprintf("Invalid %s", name)).WithDetail(raw)
	}

	return index, nil
}

func ParseID(r *http.Request, name string) (string, error) {
	id := strings.TrimSpace(r.PathValue(name))
	if id == "" {
		return "", appErrors.BadRequestError(fmt.Sprintf("Missing %s", name))
	}

	return id, nil
}
