package handler

import "time"

// LoginRequest is the login request body
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries an issued token pair
type TokenResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// AuthUserResponse is the user info returned by auth endpoints
type AuthUserResponse struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// LoginResponse is the login response body
type LoginResponse struct {
	Token TokenResponse    `json:"token"`
	User  AuthUserResponse `json:"user"`
}

// RefreshTokenRequest is the token refresh request body
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshTokenResponse is the token refresh response body
type RefreshTokenResponse struct {
	Token TokenResponse `json:"token"`
}

// LogoutRequest is the optional logout request body. Clients that send
// their refresh token get it revoked along with the access token.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// LogoutResponse is the logout response body
type LogoutResponse struct {
	Message string `json:"message"`
}

// ChangePasswordRequest is the password change request body
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// CurrentUserResponse is the /auth/me response body
type CurrentUserResponse struct {
	User AuthUserResponse `json:"user"`
}
