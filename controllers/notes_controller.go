package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"notes_share_go/access"
	"notes_share_go/data"
	"notes_share_go/middleware"
	"notes_share_go/models"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// NotesController serves the owner-scoped CRUD surface.
type NotesController struct {
	store *data.Store
	log   zerolog.Logger
}

func NewNotesController(store *data.Store, log zerolog.Logger) *NotesController {
	return &NotesController{store: store, log: log}
}

func noteID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

// List handles GET /notes/.
func (c *NotesController) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Missing user identity")
		return
	}

	notes, err := c.store.ListNotesByOwner(userID)
	if err != nil {
		c.log.Error().Err(err).Int64("user_id", userID).Msg("failed to list notes")
		respondError(w, http.StatusInternalServerError, "Failed to list notes")
		return
	}
	respondJSON(w, http.StatusOK, notes)
}

// Create handles POST /notes/.
func (c *NotesController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Missing user identity")
		return
	}

	var req models.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	defer r.Body.Close()

	note, err := c.store.CreateNote(userID, req.Title, req.Content)
	if err != nil {
		if data.IsValidation(err) {
			respondStoreError(w, err)
			return
		}
		c.log.Error().Err(err).Int64("user_id", userID).Msg("failed to create note")
		respondError(w, http.StatusInternalServerError, "Failed to create note")
		return
	}
	respondJSON(w, http.StatusCreated, note)
}

// Get handles GET /notes/{id}. Only the owner reads through this route;
// non-owners get the same 404 as a missing note, so nothing about note
// existence leaks. Token holders read via /shared/{token} instead.
func (c *NotesController) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Missing user identity")
		return
	}
	id, err := noteID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid note ID")
		return
	}

	note, err := c.store.GetNoteByID(id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if access.AuthorizeRead(note, userID, 0) != access.Allow {
		respondError(w, http.StatusNotFound, noteNotFoundMsg)
		return
	}
	respondJSON(w, http.StatusOK, note)
}

// Update handles PUT /notes/{id}. The update is partial: absent fields stay
// untouched. Writes are authorized by resolved identity only.
func (c *NotesController) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Missing user identity")
		return
	}
	id, err := noteID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid note ID")
		return
	}

	var req models.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	defer r.Body.Close()

	note, err := c.store.GetNoteByID(id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if access.AuthorizeWrite(note, userID) != access.Allow {
		respondError(w, http.StatusForbidden, "You do not have permission to modify this note")
		return
	}

	updated, err := c.store.UpdateNote(id, userID, req)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /notes/{id}. Hard delete; there is no undo.
func (c *NotesController) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Missing user identity")
		return
	}
	id, err := noteID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid note ID")
		return
	}

	note, err := c.store.GetNoteByID(id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if access.AuthorizeWrite(note, userID) != access.Allow {
		respondError(w, http.StatusForbidden, "You do not have permission to modify this note")
		return
	}

	if err := c.store.DeleteNote(id, userID); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Note deleted"})
}
