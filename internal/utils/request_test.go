package utils_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appErrors "github.com/aaravmahajanofficial/easymenu/internal/errors"
	"github.com/aaravmahajanofficial/easymenu/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIndex(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected int
		wantErr  bool
	}{
		{name: "Zero", value: "0", expected: 0},
		{name: "Positive", value: "12", expected: 12},
		{name: "Negative", value: "-1", wantErr: true},
		{name: "Not a number", value: "abc", wantErr: true},
		{name: "Empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/", nil)
			req.SetPathValue("index", tt.value)

			index, err := utils.ParseIndex(req, "index")

			if tt.wantErr {
				appErr, ok := appErrors.IsAppError(err)
				require.True(t, ok)
				assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, index)
		})
	}
}

func TestParseID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/", nil)
	req.SetPathValue("id", " c1 ")

	id, err := utils.ParseID(req, "id")
	require.NoError(t, err)
	assert.Equal(t, "c1", id)

	req.SetPathValue("id", "")
	_, err = utils.ParseID(req, "id")
	assert.Error(t, err)
}

type loginBody struct {
	Email string `json:"email" validate:"required,email"`
}

func TestParseAndValidate(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name       string
		body       string
		ok         bool
		statusCode int
	}{
		{name: "Valid", body: `{"email":"dono@loja.com"}`, ok: true},
		{name: "Empty body", body: "", statusCode: http.StatusBadRequest},
		{name: "Bad JSON", body: `{"email":`, statusCode: http.StatusBadRequest},
		{name: "Whitespace only", body: "  \n ", statusCode: http.StatusBadRequest},
		{name: "Trailing data", body: `{"email":"dono@loja.com"} {"email":"x@y.com"}`, statusCode: http.StatusBadRequest},
		{name: "Too large", body: `{"email":"` + strings.Repeat("a", 1<<20) + `@loja.com"}`, statusCode: http.StatusBadRequest},
		{name: "Validation failure", body: `{"email":"nope"}`, statusCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var dest loginBody
			ok := utils.ParseAndValidate(req, rr, &dest, validate)

			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				assert.Equal(t, tt.statusCode, rr.Code)
			}
		})
	}
}
