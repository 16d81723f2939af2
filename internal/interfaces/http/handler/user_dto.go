package handler

// CreateUserRequest is the request body for creating a user account
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=student faculty admin"`
}

// UpdateUserRequest is the request body for updating a user account.
// Fields are pointers so that omitted fields are left unchanged.
type UpdateUserRequest struct {
	Email *string `json:"email" binding:"omitempty,email"`
	Role  *string `json:"role" binding:"omitempty,oneof=student faculty admin"`
}

// ResetPasswordRequest is the request body for an admin password reset
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// ListUsersRequest holds the query parameters for listing users
type ListUsersRequest struct {
	Search    string `form:"search"`
	Role      string `form:"role" binding:"omitempty,oneof=student faculty admin"`
	Status    string `form:"status" binding:"omitempty,oneof=active locked deactivated"`
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

// DeleteUserResponse confirms a user deletion
type DeleteUserResponse struct {
	Message string `json:"message"`
}
