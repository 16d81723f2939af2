package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/identity"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/shared"
	"go.uber.org/zap"
)

// UserService handles user management operations
type UserService struct {
	userRepo identity.UserRepository
	eventBus shared.EventPublisher
	logger   *zap.Logger
}

// NewUserService creates a new user management service
func NewUserService(
	userRepo identity.UserRepository,
	eventBus shared.EventPublisher,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		eventBus: eventBus,
		logger:   logger,
	}
}

// CreateUser creates a new user account
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*UserInfo, error) {
	if exists, err := s.userRepo.ExistsByUsername(ctx, input.Username); err != nil {
		return nil, err
	} else if exists {
		return nil, shared.NewDomainError("USERNAME_EXISTS", "Username is already taken")
	}

	if exists, err := s.userRepo.ExistsByEmail(ctx, input.Email); err != nil {
		return nil, err
	} else if exists {
		return nil, shared.NewDomainError("EMAIL_EXISTS", "Email is already registered")
	}

	user, err := identity.NewUser(input.Username, input.Email, input.Password, input.Role)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create user")
	}

	s.publishEvents(ctx, user)

	s.logger.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)))

	info := toUserInfo(user)
	return &info, nil
}

// UpdateUser updates a user's email and role
func (s *UserService) UpdateUser(ctx context.Context, input UpdateUserInput) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}

	if input.Email != nil && *input.Email != user.Email {
		if exists, err := s.userRepo.ExistsByEmail(ctx, *input.Email); err != nil {
			return nil, err
		} else if exists {
			return nil, shared.NewDomainError("EMAIL_EXISTS", "Email is already registered")
		}
		if err := user.SetEmail(*input.Email); err != nil {
			return nil, err
		}
	}

	if input.Role != nil {
		if err := user.SetRole(*input.Role); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to update user", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update user")
	}

	s.publishEvents(ctx, user)

	info := toUserInfo(user)
	return &info, nil
}

// DeleteUser deletes a user account. Admins cannot delete themselves.
func (s *UserService) DeleteUser(ctx context.Context, input DeleteUserInput) error {
	if input.ActorID == input.UserID {
		return shared.NewDomainError("SELF_DELETE", "You cannot delete your own account")
	}

	if _, err := s.userRepo.FindByID(ctx, input.UserID); err != nil {
		return shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}

	if err := s.userRepo.Delete(ctx, input.UserID); err != nil {
		s.logger.Error("Failed to delete user", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete user")
	}

	s.logger.Info("User deleted",
		zap.String("user_id", input.UserID.String()),
		zap.String("actor_id", input.ActorID.String()))

	return nil
}

// ResetPassword sets a new password without requiring the old one
func (s *UserService) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}

	if err := user.SetPassword(input.NewPassword); err != nil {
		return err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to reset password", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to reset password")
	}

	s.publishEvents(ctx, user)

	s.logger.Info("Password reset", zap.String("user_id", input.UserID.String()))
	return nil
}

// GetUser returns a single user by ID
func (s *UserService) GetUser(ctx context.Context, userID uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}

	info := toUserInfo(user)
	return &info, nil
}

// ListUsers returns a page of users matching the filter
func (s *UserService) ListUsers(ctx context.Context, input ListUsersInput) (*ListUsersResult, error) {
	filter := identity.NewUserFilter().
		WithKeyword(input.Keyword).
		WithPagination(input.Page, input.PageSize)
	if input.Role != nil {
		filter = filter.WithRole(*input.Role)
	}
	if input.Status != nil {
		filter = filter.WithStatus(*input.Status)
	}
	if input.SortBy != "" {
		filter.SortBy = input.SortBy
	}
	if input.SortOrder != "" {
		filter.SortOrder = input.SortOrder
	}

	users, total, err := s.userRepo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list users", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list users")
	}

	infos := make([]UserInfo, len(users))
	for i, user := range users {
		infos[i] = toUserInfo(user)
	}

	return &ListUsersResult{
		Users:    infos,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.Limit(),
	}, nil
}

// publishEvents publishes and clears the aggregate's pending domain events
func (s *UserService) publishEvents(ctx context.Context, user *identity.User) {
	if s.eventBus == nil {
		return
	}
	events := user.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.eventBus.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish user events", zap.Error(err))
	}
	user.ClearDomainEvents()
}
