package api

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Envelope) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

// writeError renders err as an error envelope. Errors that are not an
// HTTPError become a 500 without leaking their text.
func writeError(w http.ResponseWriter, r *http.Request, err error) int {
	httpErr := ErrInternalServerError
	var target HTTPError
	if errors.As(err, &target) {
		httpErr = target
	}

	meta := map[string]any{}
	if id := RequestIDFromContext(r.Context()); id != "" {
		meta["request_id"] = id
	}
	if len(meta) == 0 {
		meta = nil
	}

	_ = writeJSON(w, httpErr.Code, Envelope{
		Meta:  meta,
		Error: &ErrorDetail{Code: httpErr.Key, Message: httpErr.Message()},
	})
	return httpErr.Code
}
