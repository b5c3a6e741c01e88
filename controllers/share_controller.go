package controllers

import (
	"net/http"

	"notes_share_go/access"
	"notes_share_go/data"
	"notes_share_go/middleware"
	"notes_share_go/models"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// ShareController manages the public sharing surface. Token resolution is a
// path of its own, separate from the session machinery: resolving a token
// yields read access to one note and nothing else.
type ShareController struct {
	store   *data.Store
	baseURL string
	log     zerolog.Logger
}

func NewShareController(store *data.Store, baseURL string, log zerolog.Logger) *ShareController {
	return &ShareController{store: store, baseURL: baseURL, log: log}
}

// Share handles POST /notes/{id}/share. Issuing is idempotent: sharing an
// already shared note returns its existing token.
func (c *ShareController) Share(w http.ResponseWriter, r *http.Request) {
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

	note, err := c.store.IssueShareToken(id, userID)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, models.ShareNoteResponse{
		Note:     *note,
		ShareURL: c.baseURL + "/shared/" + *note.ShareToken,
	})
}

// Revoke handles DELETE /notes/{id}/share. After this, the old token never
// resolves again.
func (c *ShareController) Revoke(w http.ResponseWriter, r *http.Request) {
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

	note, err := c.store.RevokeShareToken(id, userID)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, note)
}

// SharedNote handles GET /shared/{token} with no authentication: possession
// of the token is the whole credential, and it grants read only.
func (c *ShareController) SharedNote(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	note, err := c.store.ResolveShareToken(token)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if access.AuthorizeRead(note, access.Anonymous, note.ID) != access.Allow {
		respondError(w, http.StatusNotFound, noteNotFoundMsg)
		return
	}

	respondJSON(w, http.StatusOK, models.SharedNoteResponse{
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	})
}
