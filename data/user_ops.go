package data

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"notes_share_go/models"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword generates a bcrypt hash for the password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password against its hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CreateUser registers a new account. The password is hashed here; the
// plaintext is never stored.
func (s *Store) CreateUser(username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, &ValidationError{Field: "username", Reason: "must not be empty"}
	}
	if password == "" {
		return nil, &ValidationError{Field: "password", Reason: "must not be empty"}
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return s.insertUser(username, hash, false)
}

// CreateGuestUser issues an ephemeral identity with no password and no owned
// notes. It exists so anonymous visitors of shared notes go through the same
// bearer model as everyone else.
func (s *Store) CreateGuestUser() (*models.User, error) {
	username := "guest_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return s.insertUser(username, "", true)
}

func (s *Store) insertUser(username, hash string, guest bool) (*models.User, error) {
	now := time.Now().UTC()
	res, err := s.db.Exec(
		`INSERT INTO users (username, password_hash, is_guest, created_at) VALUES (?, ?, ?, ?)`,
		username, hash, guest, now)
	if err != nil {
		var serr sqlite3.Error
		if errors.As(err, &serr) && serr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return nil, fmt.Errorf("username %q: %w", username, ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert ID for user: %w", err)
	}
	return &models.User{ID: id, Username: username, PasswordHash: hash, IsGuest: guest, CreatedAt: now}, nil
}

// GetUserByUsername returns nil, nil when no such user exists, so the login
// path can treat "unknown user" and "wrong password" identically.
func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, password_hash, is_guest, created_at FROM users WHERE username = ?`
	if err := s.db.Get(user, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

// GetUserByID returns nil, nil when no such user exists.
func (s *Store) GetUserByID(id int64) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, password_hash, is_guest, created_at FROM users WHERE id = ?`
	if err := s.db.Get(user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return user, nil
}
