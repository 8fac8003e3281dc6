package dto

import "github.com/golang-jwt/jwt/v5"

// LoginRequest carries the credentials of a login attempt.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse returns the signed session token after a successful login.
// The same token is also set as an HTTP-only cookie.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Username    string `json:"username"`
	Name        string `json:"name,omitempty"`
}

// AuthClaims defines the custom claims for session tokens.
type AuthClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
