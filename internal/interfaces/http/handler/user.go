package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/application/identity"
	domainidentity "github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/identity"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/interfaces/http/dto"
)

// UserHandler handles admin-only user management requests
type UserHandler struct {
	BaseHandler
	userService *identity.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *identity.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers returns a paginated list of user accounts
func (h *UserHandler) ListUsers(c *gin.Context) {
	var req ListUsersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	input := identity.ListUsersInput{
		Keyword:   req.Search,
		Page:      req.Page,
		PageSize:  req.PageSize,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}
	if req.Role != "" {
		role := domainidentity.Role(req.Role)
		input.Role = &role
	}
	if req.Status != "" {
		status := domainidentity.UserStatus(req.Status)
		input.Status = &status
	}

	result, err := h.userService.ListUsers(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	users := make([]AuthUserResponse, 0, len(result.Users))
	for _, u := range result.Users {
		users = append(users, toAuthUserResponse(u))
	}

	h.SuccessWithMeta(c, users, result.Total, result.Page, result.PageSize)
}

// CreateUser creates a new user account
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), identity.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     domainidentity.Role(req.Role),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toAuthUserResponse(*user))
}

// GetUser returns a single user account by ID
func (h *UserHandler) GetUser(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), req.UUID())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toAuthUserResponse(*user))
}

// UpdateUser updates a user's email or role
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var uriReq dto.IDRequest
	if err := c.ShouldBindUri(&uriReq); err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	input := identity.UpdateUserInput{
		UserID: uriReq.UUID(),
		Email:  req.Email,
	}
	if req.Role != nil {
		role := domainidentity.Role(*req.Role)
		input.Role = &role
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toAuthUserResponse(*user))
}

// DeleteUser deletes a user account. Admins cannot delete their own account.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	err = h.userService.DeleteUser(c.Request.Context(), identity.DeleteUserInput{
		ActorID: actorID,
		UserID:  req.UUID(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, DeleteUserResponse{
		Message: "User deleted successfully",
	})
}

// ResetPassword sets a new password for a user and revokes their sessions
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var uriReq dto.IDRequest
	if err := c.ShouldBindUri(&uriReq); err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	err := h.userService.ResetPassword(c.Request.Context(), identity.ResetPasswordInput{
		UserID:      uriReq.UUID(),
		NewPassword: req.NewPassword,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{
		"message": "Password reset successfully",
	})
}
