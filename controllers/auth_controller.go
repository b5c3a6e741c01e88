package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"notes_share_go/auth"
	"notes_share_go/data"
	"notes_share_go/models"

	"github.com/rs/zerolog"
)

// invalidCredentialsMsg is shared by every login failure so the response
// cannot distinguish an unknown user from a wrong password.
const invalidCredentialsMsg = "Incorrect username or password"

// AuthController issues credentials for registered users and guests.
type AuthController struct {
	store *data.Store
	jwt   *auth.Service
	log   zerolog.Logger
}

func NewAuthController(store *data.Store, jwt *auth.Service, log zerolog.Logger) *AuthController {
	return &AuthController{store: store, jwt: jwt, log: log}
}

// Signup handles POST /auth/signup. Expects a JSON body with username and
// password, creates the account and returns a credential.
func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	defer r.Body.Close()

	user, err := c.store.CreateUser(req.Username, req.Password)
	if err != nil {
		if data.IsValidation(err) || errors.Is(err, data.ErrDuplicate) {
			respondStoreError(w, err)
			return
		}
		c.log.Error().Err(err).Msg("signup failed")
		respondError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	c.respondToken(w, http.StatusCreated, user)
}

// Login handles POST /auth/login. The body is form-encoded with username and
// password fields, matching the OAuth2 password flow the web client speaks.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid form body")
		return
	}
	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		respondError(w, http.StatusBadRequest, "Username and password must not be empty")
		return
	}

	user, err := c.store.GetUserByUsername(username)
	if err != nil {
		c.log.Error().Err(err).Msg("login lookup failed")
		respondError(w, http.StatusInternalServerError, "Failed to look up user")
		return
	}
	// Unknown user and wrong password take the same exit. Guests have an
	// empty hash, which bcrypt rejects, so they cannot log in either.
	if user == nil || !data.CheckPasswordHash(password, user.PasswordHash) {
		respondError(w, http.StatusUnauthorized, invalidCredentialsMsg)
		return
	}

	c.respondToken(w, http.StatusOK, user)
}

// GuestLogin handles POST /auth/guest. Always succeeds: it mints an
// ephemeral identity owning nothing, so anonymous visitors of shared notes
// use the same bearer model as everyone else.
func (c *AuthController) GuestLogin(w http.ResponseWriter, r *http.Request) {
	user, err := c.store.CreateGuestUser()
	if err != nil {
		c.log.Error().Err(err).Msg("guest login failed")
		respondError(w, http.StatusInternalServerError, "Failed to create guest session")
		return
	}

	c.respondToken(w, http.StatusOK, user)
}

// Logout handles POST /auth/logout. Credentials are self-contained
// short-lived JWTs, so there is no server-side session to destroy; the
// client discards its copy and this endpoint only acknowledges.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func (c *AuthController) respondToken(w http.ResponseWriter, status int, user *models.User) {
	token, _, err := c.jwt.GenerateToken(user.ID, user.Username, user.IsGuest)
	if err != nil {
		c.log.Error().Err(err).Int64("user_id", user.ID).Msg("failed to sign token")
		respondError(w, http.StatusInternalServerError, "Failed to generate access token")
		return
	}
	respondJSON(w, status, models.TokenResponse{AccessToken: token, TokenType: "bearer"})
}
