package models

// SignupRequest represents the JSON body of POST /auth/signup.
type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse mirrors the OAuth2 password-flow token payload the web
// client stores and replays as a bearer header.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
