package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/easymenu/internal/utils/response"
	"github.com/stretchr/testify/require"
)

const slug = "pizzaria-bella"

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)

	return bytes.NewReader(b)
}

// decodeEnvelope unmarshals the response envelope and, when data is non-nil, its data field.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, data any) response.APIResponse {
	t.Helper()

	var raw struct {
		Success bool                    `json:"success"`
		Data    json.RawMessage         `json:"data"`
		Error   *response.ErrorResponse `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))

	if data != nil {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}

	return response.APIResponse{Success: raw.Success, Error: raw.Error}
}
