package post_http

import (
	"encoding/json"
	"errors"
	"net/http"

	"inkwell-post-service/internal/custom_errors"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, custom_errors.ErrPostNotFound),
		errors.Is(err, custom_errors.ErrAuthorNotFound),
		errors.Is(err, custom_errors.ErrNoPostsFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, custom_errors.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, custom_errors.ErrTitleAlreadyExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, custom_errors.ErrNoUpdateRows):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
