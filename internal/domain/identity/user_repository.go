package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository is the persistence port for the User aggregate. Lookups
// return shared.ErrNotFound when no user matches.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uuid.UUID) error

	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindAll returns the matching page of users and the total match count.
	FindAll(ctx context.Context, filter UserFilter) ([]*User, int64, error)

	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// UserFilter narrows and paginates user queries. Keyword matches against
// username and email.
type UserFilter struct {
	Keyword string
	Role    *Role
	Status  *UserStatus

	Page     int
	PageSize int

	SortBy    string
	SortOrder string // "asc" or "desc"
}

// NewUserFilter returns a filter for the first page of 20 users, newest first.
func NewUserFilter() UserFilter {
	return UserFilter{
		Page:      1,
		PageSize:  20,
		SortBy:    "created_at",
		SortOrder: "desc",
	}
}

// WithKeyword returns a copy of the filter searching for keyword.
func (f UserFilter) WithKeyword(keyword string) UserFilter {
	f.Keyword = keyword
	return f
}

// WithRole returns a copy of the filter restricted to one role.
func (f UserFilter) WithRole(role Role) UserFilter {
	f.Role = &role
	return f
}

// WithStatus returns a copy of the filter restricted to one status.
func (f UserFilter) WithStatus(status UserStatus) UserFilter {
	f.Status = &status
	return f
}

// WithPagination returns a copy of the filter at the given page.
func (f UserFilter) WithPagination(page, pageSize int) UserFilter {
	f.Page = page
	f.PageSize = pageSize
	return f
}

// Offset converts the 1-based page into a row offset.
func (f UserFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}

// Limit returns the page size clamped to [1, 100].
func (f UserFilter) Limit() int {
	switch {
	case f.PageSize <= 0:
		return 20
	case f.PageSize > 100:
		return 100
	}
	return f.PageSize
}
