package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"notes_share_go/data"
)

// noteNotFoundMsg is the single 404 body. A note that never existed, a note
// owned by someone else on a share operation, and an invalid share token all
// produce this exact response, so the status leaks no existence information.
const noteNotFoundMsg = "Note not found"

func respondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if payload != nil {
		// Headers are already out; an encode failure here has no recovery.
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func respondError(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, map[string]string{"error": message})
}

// respondStoreError maps the data layer's typed failures onto the HTTP error
// taxonomy. Anything unrecognized becomes an opaque 500.
func respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case data.IsValidation(err):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, data.ErrNotFound):
		respondError(w, http.StatusNotFound, noteNotFoundMsg)
	case errors.Is(err, data.ErrForbidden):
		respondError(w, http.StatusForbidden, "You do not have permission to modify this note")
	case errors.Is(err, data.ErrConflict):
		respondError(w, http.StatusConflict, "Note was modified concurrently, refetch and retry")
	case errors.Is(err, data.ErrDuplicate):
		respondError(w, http.StatusConflict, "Username already taken")
	default:
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
