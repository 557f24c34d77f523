package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"arendaBack/internal/models"
)

// getParam returns a path or query parameter value regardless of whether
// the router stores it with a leading colon or not. It also supports the
// standard net/http PathValue API available in recent Go versions.
func getParam(r *http.Request, name string) string {
	if r == nil {
		return ""
	}

	if val := r.URL.Query().Get(":" + name); val != "" {
		return val
	}

	if val := r.URL.Query().Get(name); val != "" {
		return val
	}

	return r.PathValue(name)
}

// identityFromContext reads the user id and role the JWT middleware stored
// on the request. Handlers never consult any global auth state.
func identityFromContext(r *http.Request) (int, string) {
	userID, _ := r.Context().Value("user_id").(int)
	role, _ := r.Context().Value("role").(string)
	return userID, role
}

func isStaff(role string) bool {
	return role == "admin"
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeFieldError(w http.ResponseWriter, status int, field, message string) {
	writeJSON(w, status, map[string]map[string]string{"errors": {field: message}})
}

// writeValidationError renders a models.ValidationError as a field-level
// 400 response; anything else falls through to false.
func writeValidationError(w http.ResponseWriter, err error) bool {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		writeFieldError(w, http.StatusBadRequest, validationErr.Field, validationErr.Message)
		return true
	}
	return false
}
