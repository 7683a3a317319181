package transport

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every client-facing error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

const (
	internalErrorTitle   = "Internal Server Error"
	internalErrorMessage = "Something went wrong!"
)

// Encode marshals payload without HTML escaping, so "&" in catalog text stays
// literal.
func Encode(payload interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	raw, err := Encode(payload)
	if err != nil {
		raw = []byte(`{"error":"Internal Server Error","message":"Something went wrong!"}` + "\n")
		status = http.StatusInternalServerError
	}
	WriteRaw(w, status, raw)
}

// WriteRaw writes an already encoded JSON payload.
func WriteRaw(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

func WriteError(w http.ResponseWriter, status int, title, message string) {
	WriteJSON(w, status, ErrorResponse{
		Error:   title,
		Message: message,
	})
}

// WriteInternalError writes the fixed 500 body. Failure detail belongs in
// server logs only.
func WriteInternalError(w http.ResponseWriter) {
	WriteError(w, http.StatusInternalServerError, internalErrorTitle, internalErrorMessage)
}

func WriteRouteNotFound(w http.ResponseWriter) {
	WriteError(w, http.StatusNotFound, "Not Found", "The requested endpoint does not exist")
}
