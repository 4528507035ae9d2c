// Package response writes the flat JSON bodies this API speaks: a resource,
// {"token": ...}, {"message": ...} or {"error": ...}. Handler failures are
// always mapped here; nothing propagates past a controller.
package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// Message sends a 200 with {"message": msg}.
func Message(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusOK, map[string]string{"message": msg})
}

// Token sends a 200 with {"token": token}.
func Token(w http.ResponseWriter, token string) {
	JSON(w, http.StatusOK, map[string]string{"token": token})
}

// Error sends {"error": msg} with the given status code.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"error": msg})
}

// Internal sends a 500 carrying the error's message; store failures
// surface verbatim.
func Internal(w http.ResponseWriter, err error) {
	Error(w, http.StatusInternalServerError, err.Error())
}

// ValidationError sends a 422 with a field-level error map.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
		"error":  "Validation failed",
		"fields": errs,
	})
}
