package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/identity"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/shared"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthServiceConfig tunes the login lockout policy.
type AuthServiceConfig struct {
	MaxLoginAttempts int
	LockDuration     time.Duration
}

// DefaultAuthServiceConfig locks an account for 15 minutes after 5 failed
// logins.
func DefaultAuthServiceConfig() AuthServiceConfig {
	return AuthServiceConfig{
		MaxLoginAttempts: 5,
		LockDuration:     15 * time.Minute,
	}
}

// AuthService implements login, token refresh, logout and password change
// over the user repository, the JWT service and the revocation blacklist.
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	config     AuthServiceConfig
	logger     *zap.Logger
}

func NewAuthService(
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	config AuthServiceConfig,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		config:     config,
		logger:     logger,
	}
}

// loginBarrier returns the domain error blocking a login, or nil when the
// account may proceed.
func (s *AuthService) loginBarrier(user *identity.User) error {
	switch {
	case user.CanLogin():
		return nil
	case user.IsLocked():
		return shared.NewDomainError("ACCOUNT_LOCKED", "Account is locked. Please try again later or contact support")
	case user.IsDeactivated():
		return shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account has been deactivated")
	}
	return shared.NewDomainError("ACCOUNT_INACTIVE", "Account is not active")
}

// mintPair issues a fresh token pair for the user.
func (s *AuthService) mintPair(user *identity.User) (*auth.TokenPair, error) {
	pair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}
	return pair, nil
}

// Login verifies the credentials, applies the lockout policy and returns a
// token pair plus the user's profile.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	s.logger.Info("Login attempt", zap.String("username", input.Username))

	user, err := s.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		// Same error as a wrong password, so usernames cannot be probed.
		s.logger.Warn("User not found during login", zap.String("username", input.Username))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}

	if err := s.loginBarrier(user); err != nil {
		s.logger.Warn("Login blocked", zap.String("username", input.Username))
		return nil, err
	}

	if !user.VerifyPassword(input.Password) {
		return nil, s.recordFailedLogin(ctx, user)
	}

	pair, err := s.mintPair(user)
	if err != nil {
		return nil, err
	}

	user.RecordLoginSuccess(input.IP)
	if err := s.userRepo.Update(ctx, user); err != nil {
		// The login still succeeded.
		s.logger.Error("Failed to update user after successful login", zap.Error(err))
	}

	s.logger.Info("User logged in successfully",
		zap.String("username", input.Username),
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))

	return &LoginResult{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
		TokenType:             pair.TokenType,
		User:                  toUserInfo(user),
	}, nil
}

// recordFailedLogin bumps the failure counter, possibly locking the
// account, and returns the error the caller should surface.
func (s *AuthService) recordFailedLogin(ctx context.Context, user *identity.User) error {
	locked := user.RecordLoginFailure(s.config.MaxLoginAttempts, s.config.LockDuration)
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to update user after login failure", zap.Error(err))
	}

	if locked {
		s.logger.Warn("Account locked after too many failed attempts",
			zap.String("username", user.Username),
			zap.Int("attempts", s.config.MaxLoginAttempts))
		return shared.NewDomainError("ACCOUNT_LOCKED", "Too many failed login attempts. Account has been locked")
	}

	s.logger.Warn("Invalid password attempt",
		zap.String("username", user.Username),
		zap.Int("failed_attempts", user.FailedAttempts))
	return shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
}

// RefreshToken rotates a valid refresh token into a new pair. Each refresh
// token works once: the consumed token is blacklisted for the rest of its
// lifetime.
func (s *AuthService) RefreshToken(ctx context.Context, input RefreshTokenInput) (*RefreshTokenResult, error) {
	claims, err := s.jwtService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		s.logger.Warn("Refresh token validation failed", zap.Error(err))
		return nil, mapTokenError(err)
	}

	if revoked, err := s.blacklist.IsBlacklisted(ctx, claims.ID); err == nil && revoked {
		return nil, shared.NewDomainError("TOKEN_REVOKED", "Refresh token has been revoked")
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		s.logger.Error("Invalid user ID in refresh token", zap.Error(err))
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid user ID in token")
	}

	if dead, err := s.blacklist.IsUserTokenInvalidated(ctx, userID.String(), claims.GetIssuedAtTime()); err == nil && dead {
		return nil, shared.NewDomainError("TOKEN_REVOKED", "Session has been revoked. Please log in again")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		s.logger.Warn("User not found during token refresh", zap.String("user_id", userID.String()))
		return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}
	if !user.CanLogin() {
		s.logger.Warn("Token refresh for inactive user", zap.String("user_id", userID.String()))
		return nil, shared.NewDomainError("ACCOUNT_INACTIVE", "Account is no longer active")
	}

	pair, err := s.jwtService.RefreshTokenPair(input.RefreshToken, user.Username, string(user.Role))
	if err != nil {
		s.logger.Warn("Token refresh failed", zap.Error(err))
		return nil, mapTokenError(err)
	}

	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
		s.logger.Warn("Failed to blacklist consumed refresh token", zap.Error(err))
	}

	s.logger.Info("Token refreshed successfully", zap.String("user_id", userID.String()))

	return &RefreshTokenResult{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
		TokenType:             pair.TokenType,
	}, nil
}

// Logout revokes the current access token and, when the client supplies
// one, the session's refresh token.
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	s.logger.Info("User logout", zap.String("user_id", input.UserID.String()))

	if input.TokenJTI != "" {
		if err := s.blacklist.AddToBlacklist(ctx, input.TokenJTI, input.TokenTTL); err != nil {
			s.logger.Error("Failed to blacklist token on logout", zap.Error(err))
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to revoke token")
		}
	}

	if input.RefreshToken == "" {
		return nil
	}

	claims, err := s.jwtService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		// An already-dead refresh token needs no revocation.
		s.logger.Warn("Ignoring invalid refresh token on logout", zap.Error(err))
		return nil
	}
	if claims.UserID != input.UserID.String() {
		// Only the caller's own session can be revoked here.
		s.logger.Warn("Refresh token user mismatch on logout",
			zap.String("user_id", input.UserID.String()))
		return nil
	}

	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
		s.logger.Error("Failed to blacklist refresh token on logout", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to revoke token")
	}
	return nil
}

// ForceLogout invalidates every outstanding token of a user.
func (s *AuthService) ForceLogout(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}

	ttl := s.jwtService.GetRefreshTokenExpiration()
	if err := s.blacklist.AddUserTokensToBlacklist(ctx, user.ID.String(), ttl); err != nil {
		s.logger.Error("Failed to invalidate user tokens", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to revoke user sessions")
	}

	s.logger.Info("All sessions revoked for user", zap.String("user_id", userID.String()))
	return nil
}

// GetCurrentUser returns the authenticated user's profile.
func (s *AuthService) GetCurrentUser(ctx context.Context, input GetCurrentUserInput) (*CurrentUserResult, error) {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}
	return &CurrentUserResult{User: toUserInfo(user)}, nil
}

// ChangePassword verifies the current password, stores the new one and
// revokes every session issued before the change.
func (s *AuthService) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}

	if err := user.ChangePassword(input.OldPassword, input.NewPassword); err != nil {
		return err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to update user after password change", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update password")
	}

	ttl := s.jwtService.GetRefreshTokenExpiration()
	if err := s.blacklist.AddUserTokensToBlacklist(ctx, user.ID.String(), ttl); err != nil {
		s.logger.Warn("Failed to revoke sessions after password change", zap.Error(err))
	}

	s.logger.Info("User password changed", zap.String("user_id", input.UserID.String()))
	return nil
}

// mapTokenError converts JWT validation failures into domain errors.
func mapTokenError(err error) error {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return shared.NewDomainError("TOKEN_EXPIRED", "Refresh token has expired")
	case errors.Is(err, auth.ErrMaxRefreshExceeded):
		return shared.NewDomainError("TOKEN_MAX_REFRESH", "Maximum token refresh count exceeded. Please log in again")
	case errors.Is(err, auth.ErrInvalidToken):
		return shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
	}
	return shared.NewDomainError("TOKEN_ERROR", "Failed to validate refresh token")
}
