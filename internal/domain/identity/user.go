// Package identity holds the User aggregate: account credentials, roles
// and the login lockout policy.
package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Role is an account's authorization level.
type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return true
	}
	return false
}

// UserStatus is an account's lifecycle state.
type UserStatus string

const (
	UserStatusActive      UserStatus = "active"
	UserStatusLocked      UserStatus = "locked"      // too many failed logins
	UserStatusDeactivated UserStatus = "deactivated" // switched off by an admin
)

const bcryptCost = 12

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_\-.]+$`)
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	letterPattern   = regexp.MustCompile(`[a-zA-Z]`)
	digitPattern    = regexp.MustCompile(`[0-9]`)
)

// User is the aggregate root for accounts. Username and email are stored
// lowercased; the password is stored as a bcrypt hash only.
type User struct {
	shared.BaseAggregateRoot
	Username          string
	Email             string
	PasswordHash      string
	Role              Role
	Status            UserStatus
	LastLoginAt       *time.Time
	LastLoginIP       string
	FailedAttempts    int
	LockedUntil       *time.Time
	PasswordChangedAt *time.Time
}

// NewUser creates an active account and raises UserCreatedEvent.
func NewUser(username, email, password string, role Role) (*User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Role must be student, faculty, or admin")
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	now := time.Now()
	user := &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Username:          normalize(username),
		Email:             normalize(email),
		PasswordHash:      hash,
		Role:              role,
		Status:            UserStatusActive,
		PasswordChangedAt: &now,
	}
	user.AddDomainEvent(NewUserCreatedEvent(user))
	return user, nil
}

// touch bumps the optimistic-lock version and the updated timestamp.
func (u *User) touch() {
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}

// SetEmail replaces the account email.
func (u *User) SetEmail(email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	u.Email = normalize(email)
	u.touch()
	return nil
}

// SetRole changes the authorization level and raises UserRoleChangedEvent
// when the role actually changes.
func (u *User) SetRole(role Role) error {
	if !role.IsValid() {
		return shared.NewDomainError("INVALID_ROLE", "Role must be student, faculty, or admin")
	}
	if u.Role != role {
		u.AddDomainEvent(NewUserRoleChangedEvent(u, u.Role, role))
	}
	u.Role = role
	u.touch()
	return nil
}

// ChangePassword verifies the current password before setting a new one.
func (u *User) ChangePassword(oldPassword, newPassword string) error {
	if !u.VerifyPassword(oldPassword) {
		return shared.NewDomainError("INVALID_PASSWORD", "Current password is incorrect")
	}
	return u.SetPassword(newPassword)
}

// SetPassword replaces the password without checking the current one.
// Used for admin resets. Raises UserPasswordChangedEvent.
func (u *User) SetPassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	now := time.Now()
	u.PasswordHash = hash
	u.PasswordChangedAt = &now
	u.touch()
	u.AddDomainEvent(NewUserPasswordChangedEvent(u))
	return nil
}

// VerifyPassword reports whether password matches the stored hash.
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// Activate re-enables a locked or deactivated account and clears the
// failed-login counters.
func (u *User) Activate() error {
	if u.Status == UserStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "User is already active")
	}

	old := u.Status
	u.Status = UserStatusActive
	u.FailedAttempts = 0
	u.LockedUntil = nil
	u.touch()
	u.AddDomainEvent(NewUserStatusChangedEvent(u, old, UserStatusActive))
	return nil
}

// Deactivate switches the account off until an admin reactivates it.
func (u *User) Deactivate() error {
	if u.Status == UserStatusDeactivated {
		return shared.NewDomainError("ALREADY_DEACTIVATED", "User is already deactivated")
	}

	old := u.Status
	u.Status = UserStatusDeactivated
	u.touch()
	u.AddDomainEvent(NewUserStatusChangedEvent(u, old, UserStatusDeactivated))
	return nil
}

// Lock blocks logins until the lock expires. LockedUntil is always set, so
// a non-positive duration produces a lock that has already lapsed.
func (u *User) Lock(duration time.Duration) error {
	if u.Status == UserStatusDeactivated {
		return shared.NewDomainError("USER_DEACTIVATED", "Cannot lock a deactivated user")
	}

	old := u.Status
	until := time.Now().Add(duration)
	u.Status = UserStatusLocked
	u.LockedUntil = &until
	u.touch()
	u.AddDomainEvent(NewUserStatusChangedEvent(u, old, UserStatusLocked))
	return nil
}

// Unlock clears an active lock ahead of its expiry.
func (u *User) Unlock() error {
	if u.Status != UserStatusLocked {
		return shared.NewDomainError("NOT_LOCKED", "User is not locked")
	}

	u.Status = UserStatusActive
	u.FailedAttempts = 0
	u.LockedUntil = nil
	u.touch()
	u.AddDomainEvent(NewUserStatusChangedEvent(u, UserStatusLocked, UserStatusActive))
	return nil
}

// RecordLoginSuccess stores the login time and source IP and resets the
// failed-attempt counter.
func (u *User) RecordLoginSuccess(ip string) {
	now := time.Now()
	u.LastLoginAt = &now
	u.LastLoginIP = ip
	u.FailedAttempts = 0
	u.touch()
}

// RecordLoginFailure counts a failed attempt and locks the account once
// maxAttempts is reached. Returns true when the account was locked.
func (u *User) RecordLoginFailure(maxAttempts int, lockDuration time.Duration) bool {
	u.FailedAttempts++
	u.touch()

	if u.FailedAttempts >= maxAttempts {
		_ = u.Lock(lockDuration)
		return true
	}
	return false
}

// IsActive reports whether the account is in the active state.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// IsLocked reports whether a lock is currently in force. An expired lock
// no longer counts even before the status is reset.
func (u *User) IsLocked() bool {
	if u.Status != UserStatusLocked {
		return false
	}
	if u.LockedUntil != nil && time.Now().After(*u.LockedUntil) {
		return false
	}
	return true
}

// IsDeactivated reports whether the account was switched off.
func (u *User) IsDeactivated() bool {
	return u.Status == UserStatusDeactivated
}

// IsAdmin reports whether the account has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanLogin reports whether a login attempt may proceed.
func (u *User) CanLogin() bool {
	return u.Status != UserStatusDeactivated && !u.IsLocked()
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func validateUsername(username string) error {
	username = strings.TrimSpace(username)
	switch {
	case username == "":
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	case len(username) < 3:
		return shared.NewDomainError("INVALID_USERNAME", "Username must be at least 3 characters")
	case len(username) > 100:
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot exceed 100 characters")
	case !usernamePattern.MatchString(username):
		return shared.NewDomainError("INVALID_USERNAME", "Username can only contain letters, numbers, underscores, hyphens, and dots")
	}
	return nil
}

func validatePassword(password string) error {
	switch {
	case password == "":
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	case len(password) < 8:
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	case len(password) > 128:
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	case !letterPattern.MatchString(password) || !digitPattern.MatchString(password):
		return shared.NewDomainError("INVALID_PASSWORD", "Password must contain at least one letter and one number")
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	switch {
	case email == "":
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	case len(email) > 200:
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	case !emailPattern.MatchString(email):
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
