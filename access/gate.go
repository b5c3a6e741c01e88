// Package access decides whether a caller may read or mutate a note. It is
// kept apart from the session machinery on purpose: a share token is a
// bearer capability with exactly one right, reading one note, and must never
// pick up write rights through shared code paths.
package access

import "notes_share_go/models"

// Decision is a terminal result. Deny is not retryable; the caller has to
// present different credentials.
type Decision int

const (
	Deny Decision = iota
	Allow
)

// Anonymous marks a caller with no resolved identity.
const Anonymous int64 = 0

// AuthorizeRead allows the note's owner, or any caller whose presented share
// token resolved to this note. tokenNoteID is zero when no token was
// presented or it did not resolve.
func AuthorizeRead(note *models.Note, callerID int64, tokenNoteID int64) Decision {
	if note == nil {
		return Deny
	}
	if callerID != Anonymous && callerID == note.OwnerID {
		return Allow
	}
	if tokenNoteID != 0 && tokenNoteID == note.ID {
		return Allow
	}
	return Deny
}

// AuthorizeWrite trusts resolved identity only. Token possession never
// grants mutation, re-sharing included, even when the holder happens to be
// the owner browsing anonymously.
func AuthorizeWrite(note *models.Note, callerID int64) Decision {
	if note == nil || callerID == Anonymous {
		return Deny
	}
	if callerID == note.OwnerID {
		return Allow
	}
	return Deny
}
