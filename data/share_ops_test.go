package data_test

import (
	"testing"

	"notes_share_go/data"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueShareToken(t *testing.T) {
	store := newTestStore(t)
	owner := seedUser(t, store, "alice")
	note, err := store.CreateNote(owner, "A", "x")
	require.NoError(t, err)

	shared, err := store.IssueShareToken(note.ID, owner)
	require.NoError(t, err)
	assert.True(t, shared.IsShared)
	require.NotNil(t, shared.ShareToken)
	// 32 random bytes, base64url without padding.
	assert.Len(t, *shared.ShareToken, 43)

	resolved, err := store.ResolveShareToken(*shared.ShareToken)
	require.NoError(t, err)
	assert.Equal(t, note.ID, resolved.ID)
	assert.Equal(t, "A", resolved.Title)
}

func TestIssueShareTokenIdempotent(t *testing.T) {
	store := newTestStore(t)
	owner := seedUser(t, store, "alice")
	note, err := store.CreateNote(owner, "A", "x")
	require.NoError(t, err)

	first, err := store.IssueShareToken(note.ID, owner)
	require.NoError(t, err)
	second, err := store.IssueShareToken(note.ID, owner)
	require.NoError(t, err)

	// One live token per note, ever.
	assert.Equal(t, *first.ShareToken, *second.ShareToken)
	assert.Equal(t, first.Version, second.Version)
}

func TestIssueShareTokenNotOwner(t *testing.T) {
	store := newTestStore(t)
	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")
	note, err := store.CreateNote(alice, "A", "x")
	require.NoError(t, err)

	// Same failure as a missing note: existence must not leak.
	_, err = store.IssueShareToken(note.ID, bob)
	assert.ErrorIs(t, err, data.ErrNotFound)

	_, err = store.IssueShareToken(99999, alice)
	assert.ErrorIs(t, err, data.ErrNotFound)
}

func TestResolveShareTokenUnknown(t *testing.T) {
	store := newTestStore(t)

	_, err := store.ResolveShareToken("")
	assert.ErrorIs(t, err, data.ErrNotFound)

	_, err = store.ResolveShareToken("definitely-not-a-token")
	assert.ErrorIs(t, err, data.ErrNotFound)
}

func TestRevokeShareToken(t *testing.T) {
	store := newTestStore(t)
	owner := seedUser(t, store, "alice")
	note, err := store.CreateNote(owner, "A", "x")
	require.NoError(t, err)

	shared, err := store.IssueShareToken(note.ID, owner)
	require.NoError(t, err)
	oldToken := *shared.ShareToken

	revoked, err := store.RevokeShareToken(note.ID, owner)
	require.NoError(t, err)
	assert.False(t, revoked.IsShared)
	assert.Nil(t, revoked.ShareToken)

	// The old token never resolves again, no matter how often it is tried.
	for i := 0; i < 3; i++ {
		_, err = store.ResolveShareToken(oldToken)
		assert.ErrorIs(t, err, data.ErrNotFound)
	}
}

func TestRevokeShareTokenErrors(t *testing.T) {
	store := newTestStore(t)
	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")
	note, err := store.CreateNote(alice, "A", "x")
	require.NoError(t, err)

	_, err = store.RevokeShareToken(note.ID, bob)
	assert.ErrorIs(t, err, data.ErrNotFound)

	_, err = store.RevokeShareToken(99999, alice)
	assert.ErrorIs(t, err, data.ErrNotFound)

	// Revoking an unshared note is a no-op.
	unshared, err := store.RevokeShareToken(note.ID, alice)
	require.NoError(t, err)
	assert.False(t, unshared.IsShared)
}

func TestReissueAfterRevokeRotatesToken(t *testing.T) {
	store := newTestStore(t)
	owner := seedUser(t, store, "alice")
	note, err := store.CreateNote(owner, "A", "x")
	require.NoError(t, err)

	first, err := store.IssueShareToken(note.ID, owner)
	require.NoError(t, err)
	oldToken := *first.ShareToken

	_, err = store.RevokeShareToken(note.ID, owner)
	require.NoError(t, err)

	second, err := store.IssueShareToken(note.ID, owner)
	require.NoError(t, err)
	assert.NotEqual(t, oldToken, *second.ShareToken)

	_, err = store.ResolveShareToken(oldToken)
	assert.ErrorIs(t, err, data.ErrNotFound)
}

// Shared state and token presence always move together.
func TestSharedIffTokenPresent(t *testing.T) {
	store := newTestStore(t)
	owner := seedUser(t, store, "alice")
	note, err := store.CreateNote(owner, "A", "x")
	require.NoError(t, err)

	check := func(id int64) {
		n, err := store.GetNoteByID(id)
		require.NoError(t, err)
		assert.Equal(t, n.IsShared, n.ShareToken != nil)
		if n.ShareToken != nil {
			resolved, err := store.ResolveShareToken(*n.ShareToken)
			require.NoError(t, err)
			assert.Equal(t, n.ID, resolved.ID)
		}
	}

	check(note.ID)
	_, err = store.IssueShareToken(note.ID, owner)
	require.NoError(t, err)
	check(note.ID)
	_, err = store.RevokeShareToken(note.ID, owner)
	require.NoError(t, err)
	check(note.ID)
}

// Driver failures must surface as real errors, never be folded into the
// not-found shape.
func TestResolveShareTokenQueryError(t *testing.T) {
	dbsql, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(dbsql, "sqlite3")
	defer sqlxDB.Close()
	store := data.NewStore(sqlxDB)

	mock.ExpectQuery("SELECT").WillReturnError(assert.AnError)

	_, err = store.ResolveShareToken("some-token")
	require.Error(t, err)
	assert.NotErrorIs(t, err, data.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
