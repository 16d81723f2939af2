package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/application/identity"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/infrastructure/auth"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/interfaces/http/middleware"
)

// AuthHandler serves the /auth endpoints: login, refresh, logout, profile
// and password change.
type AuthHandler struct {
	BaseHandler
	authService *identity.AuthService
}

func NewAuthHandler(authService *identity.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// authedUserID parses the user ID out of the validated JWT claims. When it
// returns ok=false a response has already been written.
func (h *AuthHandler) authedUserID(c *gin.Context) (*auth.Claims, uuid.UUID, bool) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return nil, uuid.Nil, false
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		h.BadRequest(c, "Invalid user ID in token")
		return nil, uuid.Nil, false
	}
	return claims, userID, true
}

func toAuthUserResponse(user identity.UserInfo) AuthUserResponse {
	return AuthUserResponse{
		ID:          user.ID.String(),
		Username:    user.Username,
		Email:       user.Email,
		Role:        string(user.Role),
		Status:      string(user.Status),
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}

// Login authenticates with username or email plus password and returns a
// token pair and the user's profile.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), identity.LoginInput{
		Username: req.Username,
		Password: req.Password,
		IP:       c.ClientIP(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, LoginResponse{
		Token: TokenResponse{
			AccessToken:           result.AccessToken,
			RefreshToken:          result.RefreshToken,
			AccessTokenExpiresAt:  result.AccessTokenExpiresAt,
			RefreshTokenExpiresAt: result.RefreshTokenExpiresAt,
			TokenType:             result.TokenType,
		},
		User: toAuthUserResponse(result.User),
	})
}

// RefreshToken exchanges a valid refresh token for a new pair.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.RefreshToken(c.Request.Context(), identity.RefreshTokenInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, RefreshTokenResponse{Token: TokenResponse{
		AccessToken:           result.AccessToken,
		RefreshToken:          result.RefreshToken,
		AccessTokenExpiresAt:  result.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: result.RefreshTokenExpiresAt,
		TokenType:             result.TokenType,
	}})
}

// Logout revokes the current access token, and the refresh token too when
// the client includes one in the body.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, userID, ok := h.authedUserID(c)
	if !ok {
		return
	}

	// The body is optional, an empty body just skips refresh revocation.
	var req LogoutRequest
	_ = c.ShouldBindJSON(&req)

	err := h.authService.Logout(c.Request.Context(), identity.LogoutInput{
		UserID:       userID,
		TokenJTI:     claims.ID,
		TokenTTL:     claims.GetRemainingTTL(),
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, LogoutResponse{Message: "Logged out successfully"})
}

// GetCurrentUser returns the authenticated user's profile.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	_, userID, ok := h.authedUserID(c)
	if !ok {
		return
	}

	result, err := h.authService.GetCurrentUser(c.Request.Context(), identity.GetCurrentUserInput{
		UserID: userID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, CurrentUserResponse{User: toAuthUserResponse(result.User)})
}

// ChangePassword changes the caller's password and revokes every session
// issued before the change.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	_, userID, ok := h.authedUserID(c)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	err := h.authService.ChangePassword(c.Request.Context(), identity.ChangePasswordInput{
		UserID:      userID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Password changed successfully"})
}
