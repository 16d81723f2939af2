package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/identity"
)

// LoginInput contains the input for user login
type LoginInput struct {
	Username string
	Password string
	IP       string // Client IP for login tracking
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
	User                  UserInfo
}

// UserInfo contains basic user information returned after login
type UserInfo struct {
	ID          uuid.UUID
	Username    string
	Email       string
	Role        identity.Role
	Status      identity.UserStatus
	LastLoginAt *time.Time
	CreatedAt   time.Time
}

// RefreshTokenInput contains the input for token refresh
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenResult contains the result of a token refresh
type RefreshTokenResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
}

// LogoutInput contains the input for user logout
type LogoutInput struct {
	UserID       uuid.UUID
	TokenJTI     string        // JWT ID of the access token to blacklist
	TokenTTL     time.Duration // Remaining lifetime of the access token
	RefreshToken string        // Optional refresh token to revoke alongside the access token
}

// ChangePasswordInput contains the input for password change
type ChangePasswordInput struct {
	UserID      uuid.UUID
	OldPassword string
	NewPassword string
}

// GetCurrentUserInput contains the input for getting current user info
type GetCurrentUserInput struct {
	UserID uuid.UUID
}

// CurrentUserResult contains the current user's information
type CurrentUserResult struct {
	User UserInfo
}

// CreateUserInput contains the input for creating a user
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Role     identity.Role
}

// UpdateUserInput contains the input for updating a user
type UpdateUserInput struct {
	UserID uuid.UUID
	Email  *string
	Role   *identity.Role
}

// DeleteUserInput contains the input for deleting a user
type DeleteUserInput struct {
	ActorID uuid.UUID // Admin performing the action
	UserID  uuid.UUID // User to delete
}

// ResetPasswordInput contains the input for an admin password reset
type ResetPasswordInput struct {
	UserID      uuid.UUID
	NewPassword string
}

// ListUsersInput contains the input for listing users
type ListUsersInput struct {
	Keyword   string
	Role      *identity.Role
	Status    *identity.UserStatus
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

// ListUsersResult contains a page of users
type ListUsersResult struct {
	Users    []UserInfo
	Total    int64
	Page     int
	PageSize int
}

func toUserInfo(user *identity.User) UserInfo {
	return UserInfo{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		Role:        user.Role,
		Status:      user.Status,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}
