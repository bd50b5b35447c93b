package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/p-gag/grapegeek-sub001/internal/domain"
)

// ErrorResponse is the body of every JSON error.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// validationBody returns an ErrorResponse for a request rejected before
// reaching the service layer (e.g. a malformed query parameter).
func validationBody(err error) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "validation_error", Message: unwrapMessage(err)}}
}

// internalBody never leaks the underlying error to the client.
func internalBody() ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "internal_error", Message: "internal server error"}}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "handler.bindQuery: validation error: page: invalid syntax" → "page: invalid syntax"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	marker := domain.ErrValidation.Error() + ": "
	if i := strings.Index(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}

// statusFor maps domain sentinels to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeJSON encodes v with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.ErrorContext(r.Context(), "encode response", "error", err)
	}
}

// failJSON writes the JSON error matching err. Server errors are logged.
func (s *Server) failJSON(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	switch status {
	case http.StatusBadRequest:
		s.writeJSON(w, r, status, validationBody(err))
	case http.StatusNotFound:
		s.writeJSON(w, r, status, ErrorResponse{Error: ErrorDetail{Code: "not_found", Message: "not found"}})
	default:
		s.log.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		s.writeJSON(w, r, status, internalBody())
	}
}
