package models

import "time"

// MaxTitleLength caps note titles, counted in runes.
const MaxTitleLength = 200

// Note is the core record. IsShared and ShareToken move together: a note is
// shared exactly when it holds a live token, and that token resolves back to
// this note and no other.
type Note struct {
	ID         int64     `json:"id" db:"id"`
	OwnerID    int64     `json:"user_id" db:"owner_id"`
	Title      string    `json:"title" db:"title"`
	Content    string    `json:"content" db:"content"`
	IsShared   bool      `json:"is_shared" db:"is_shared"`
	ShareToken *string   `json:"share_token" db:"share_token"`
	Version    int64     `json:"version" db:"version"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// CreateNoteRequest is the POST /notes/ body.
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateNoteRequest carries a partial update; nil fields are left untouched.
// Version, when set, must match the stored note or the update is rejected
// with a conflict.
type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Version *int64  `json:"version"`
}

// ShareNoteResponse extends the note with the absolute link the client
// hands out after POST /notes/{id}/share.
type ShareNoteResponse struct {
	Note
	ShareURL string `json:"share_url"`
}

// SharedNoteResponse is what an anonymous token holder sees. Owner identity,
// the token itself and the version counter stay private.
type SharedNoteResponse struct {
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
