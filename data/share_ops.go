package data

import (
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"notes_share_go/models"
)

// shareTokenBytes gives 256 bits of entropy. The token is the only gate on
// the public read path, so it must be unguessable and unenumerable.
const shareTokenBytes = 32

func generateShareToken() (string, error) {
	buf := make([]byte, shareTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// IssueShareToken marks the note shared and returns it with its token.
// Re-issuing is idempotent: an already shared note keeps its existing token,
// so there is never more than one live token per note. A note owned by
// someone else reports ErrNotFound, same as a missing one, to avoid leaking
// existence.
func (s *Store) IssueShareToken(noteID, ownerID int64) (*models.Note, error) {
	note, err := s.GetNoteByID(noteID)
	if err != nil {
		return nil, err
	}
	if note.OwnerID != ownerID {
		return nil, fmt.Errorf("note %d: %w", noteID, ErrNotFound)
	}
	if note.IsShared && note.ShareToken != nil {
		return note, nil
	}

	token, err := generateShareToken()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	// The share_token IS NULL guard makes racing issues settle on a single
	// winner; the loser rereads and returns the winner's token.
	res, err := s.db.Exec(
		`UPDATE notes SET is_shared = 1, share_token = ?, version = version + 1, updated_at = ?
		 WHERE id = ? AND owner_id = ? AND share_token IS NULL`,
		token, now, noteID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue share token for note %d: %w", noteID, err)
	}
	if _, err := res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("failed to get rows affected for note %d: %w", noteID, err)
	}
	return s.GetNoteByID(noteID)
}

// ResolveShareToken maps a live token to its note. Malformed, unknown and
// revoked tokens all fail the same way: one indexed lookup and ErrNotFound,
// with no hint of a near match.
func (s *Store) ResolveShareToken(token string) (*models.Note, error) {
	if token == "" {
		return nil, fmt.Errorf("share token: %w", ErrNotFound)
	}
	note := &models.Note{}
	query := `SELECT ` + noteColumns + ` FROM notes WHERE share_token = ? AND is_shared = 1`
	if err := s.db.Get(note, query, token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("share token: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to resolve share token: %w", err)
	}
	return note, nil
}

// RevokeShareToken withdraws public access: is_shared is cleared and the
// token column NULLed, so the old token never resolves again. Revoking an
// unshared note is a no-op; errors mirror IssueShareToken.
func (s *Store) RevokeShareToken(noteID, ownerID int64) (*models.Note, error) {
	note, err := s.GetNoteByID(noteID)
	if err != nil {
		return nil, err
	}
	if note.OwnerID != ownerID {
		return nil, fmt.Errorf("note %d: %w", noteID, ErrNotFound)
	}
	if !note.IsShared && note.ShareToken == nil {
		return note, nil
	}

	now := time.Now().UTC()
	if _, err := s.db.Exec(
		`UPDATE notes SET is_shared = 0, share_token = NULL, version = version + 1, updated_at = ?
		 WHERE id = ? AND owner_id = ?`,
		now, noteID, ownerID); err != nil {
		return nil, fmt.Errorf("failed to revoke share token for note %d: %w", noteID, err)
	}
	return s.GetNoteByID(noteID)
}
