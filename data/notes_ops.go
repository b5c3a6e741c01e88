package data

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"notes_share_go/models"

	sq "github.com/Masterminds/squirrel"
)

const noteColumns = `id, owner_id, title, content, is_shared, share_token, version, created_at, updated_at`

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if utf8.RuneCountInString(title) > models.MaxTitleLength {
		return &ValidationError{Field: "title", Reason: fmt.Sprintf("must be at most %d characters", models.MaxTitleLength)}
	}
	return nil
}

// CreateNote validates the title and inserts a note owned by ownerID.
func (s *Store) CreateNote(ownerID int64, title, content string) (*models.Note, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	res, err := s.db.Exec(
		`INSERT INTO notes (owner_id, title, content, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		ownerID, title, content, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert note: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert ID for note: %w", err)
	}
	return s.GetNoteByID(id)
}

// GetNoteByID fetches a note regardless of owner; access decisions belong to
// the caller.
func (s *Store) GetNoteByID(id int64) (*models.Note, error) {
	note := &models.Note{}
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = ?`
	if err := s.db.Get(note, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("note %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get note %d: %w", id, err)
	}
	return note, nil
}

// ListNotesByOwner returns the owner's notes, most recently updated first.
func (s *Store) ListNotesByOwner(ownerID int64) ([]models.Note, error) {
	notes := []models.Note{}
	query := `SELECT ` + noteColumns + ` FROM notes WHERE owner_id = ? ORDER BY updated_at DESC, id DESC`
	if err := s.db.Select(&notes, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list notes for owner %d: %w", ownerID, err)
	}
	return notes, nil
}

// UpdateNote applies a partial update to the owner's note. When
// patch.Version is set it must match the stored version or the update fails
// with ErrConflict; with no version, last-writer-wins applies. The version
// counter and updated_at advance on every successful update, in the same
// statement, so concurrent edits serialize on SQLite's writer lock.
func (s *Store) UpdateNote(id, ownerID int64, patch models.UpdateNoteRequest) (*models.Note, error) {
	if patch.Title == nil && patch.Content == nil {
		return nil, &ValidationError{Field: "body", Reason: "nothing to update"}
	}
	if patch.Title != nil {
		if err := validateTitle(*patch.Title); err != nil {
			return nil, err
		}
	}

	uq := sq.Update("notes").
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id, "owner_id": ownerID})
	if patch.Title != nil {
		uq = uq.Set("title", *patch.Title)
	}
	if patch.Content != nil {
		uq = uq.Set("content", *patch.Content)
	}
	if patch.Version != nil {
		uq = uq.Where(sq.Eq{"version": *patch.Version})
	}

	query, args, err := uq.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build note update: %w", err)
	}
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update note %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected for note %d: %w", id, err)
	}
	if affected == 0 {
		return nil, s.explainMiss(id, ownerID, patch.Version)
	}
	return s.GetNoteByID(id)
}

// DeleteNote hard-deletes the owner's note. There is no undo.
func (s *Store) DeleteNote(id, ownerID int64) error {
	res, err := s.db.Exec(`DELETE FROM notes WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete note %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected for note %d: %w", id, err)
	}
	if affected == 0 {
		return s.explainMiss(id, ownerID, nil)
	}
	return nil
}

// explainMiss turns a zero-row mutation into the right typed error: the note
// is gone, it belongs to someone else, or the caller's version is stale.
func (s *Store) explainMiss(id, ownerID int64, expectedVersion *int64) error {
	current, err := s.GetNoteByID(id)
	if err != nil {
		return err
	}
	if current.OwnerID != ownerID {
		return fmt.Errorf("note %d: %w", id, ErrForbidden)
	}
	if expectedVersion != nil {
		return fmt.Errorf("note %d at version %d, expected %d: %w", id, current.Version, *expectedVersion, ErrConflict)
	}
	return fmt.Errorf("note %d: %w", id, ErrConflict)
}
