package transport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, http.StatusBadRequest, "Invalid email", "Please provide a valid email address")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	require.Equal(t, ErrorResponse{Error: "Invalid email", Message: "Please provide a valid email address"}, decodeError(t, rec))
}

func TestWriteInternalError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteInternalError(rec)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, ErrorResponse{Error: "Internal Server Error", Message: "Something went wrong!"}, decodeError(t, rec))
}

func TestWriteRouteNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteRouteNotFound(rec)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, ErrorResponse{Error: "Not Found", Message: "The requested endpoint does not exist"}, decodeError(t, rec))
}

func TestWriteJSONKeepsAmpersand(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusOK, map[string]string{"title": "Model Training & Optimization"})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Model Training & Optimization")
}
