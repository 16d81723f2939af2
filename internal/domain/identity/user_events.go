package identity

import (
	"time"

	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/shared"
)

const AggregateTypeUser = "User"

// Event types raised by the User aggregate.
const (
	EventTypeUserCreated         = "UserCreated"
	EventTypeUserPasswordChanged = "UserPasswordChanged"
	EventTypeUserRoleChanged     = "UserRoleChanged"
	EventTypeUserStatusChanged   = "UserStatusChanged"
)

// UserCreatedEvent is raised when an account is provisioned.
type UserCreatedEvent struct {
	shared.BaseDomainEvent
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

func NewUserCreatedEvent(user *User) *UserCreatedEvent {
	return &UserCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserCreated, AggregateTypeUser, user.ID),
		Username:        user.Username,
		Email:           user.Email,
		Role:            user.Role,
	}
}

// UserPasswordChangedEvent is raised on password change or admin reset.
// Subscribers use it to invalidate outstanding sessions.
type UserPasswordChangedEvent struct {
	shared.BaseDomainEvent
	Username  string    `json:"username"`
	ChangedAt time.Time `json:"changed_at"`
}

func NewUserPasswordChangedEvent(user *User) *UserPasswordChangedEvent {
	ev := &UserPasswordChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserPasswordChanged, AggregateTypeUser, user.ID),
		Username:        user.Username,
		ChangedAt:       time.Now(),
	}
	if user.PasswordChangedAt != nil {
		ev.ChangedAt = *user.PasswordChangedAt
	}
	return ev
}

// UserRoleChangedEvent is raised when an admin changes an account's role.
type UserRoleChangedEvent struct {
	shared.BaseDomainEvent
	Username string `json:"username"`
	OldRole  Role   `json:"old_role"`
	NewRole  Role   `json:"new_role"`
}

func NewUserRoleChangedEvent(user *User, oldRole, newRole Role) *UserRoleChangedEvent {
	return &UserRoleChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserRoleChanged, AggregateTypeUser, user.ID),
		Username:        user.Username,
		OldRole:         oldRole,
		NewRole:         newRole,
	}
}

// UserStatusChangedEvent is raised on activate, deactivate, lock and unlock.
type UserStatusChangedEvent struct {
	shared.BaseDomainEvent
	Username  string     `json:"username"`
	OldStatus UserStatus `json:"old_status"`
	NewStatus UserStatus `json:"new_status"`
}

func NewUserStatusChangedEvent(user *User, oldStatus, newStatus UserStatus) *UserStatusChangedEvent {
	return &UserStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserStatusChanged, AggregateTypeUser, user.ID),
		Username:        user.Username,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}
