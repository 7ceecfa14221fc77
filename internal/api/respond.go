package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"hunterline/internal/engine"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrorCode(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: msg}})
}

// writeError maps engine errors onto HTTP statuses. Storage failures are
// logged in full but reported to the client without detail.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var corrupt engine.CorruptProfileError
	switch {
	case engine.IsNotFound(err):
		writeErrorCode(w, http.StatusNotFound, "not_found", err.Error())
	case engine.IsValidation(err):
		writeErrorCode(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
	case errors.As(err, &corrupt):
		s.logger.Error("corrupt profile", "path", r.URL.Path, "error", err)
		writeErrorCode(w, http.StatusInternalServerError, "corrupt_profile", "stored hunter profile is corrupt")
	default:
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
		writeErrorCode(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeErrorCode(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return false
	}
	return true
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
