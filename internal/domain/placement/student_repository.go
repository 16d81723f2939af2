package placement

import (
	"context"

	"github.com/google/uuid"
)

// CascadeResult summarizes the side effects of removing a student
type CascadeResult struct {
	CompaniesAffected int `json:"companiesAffected"`
	RoundsDeleted     int `json:"roundsDeleted"`
	PlacementsDeleted int `json:"placementsDeleted"`
	YearsAffected     int `json:"yearsAffected"`
}

// StudentFilter contains filter options for querying students
type StudentFilter struct {
	// Case-insensitive substring search over name, roll number, and email
	Search string

	// "placed", "not_placed", or "all"
	Status string

	// Optional cap on the number of students returned (0 means no cap)
	Limit int
}

// StudentRepository defines the interface for student persistence
type StudentRepository interface {
	// Create creates a new student
	Create(ctx context.Context, student *Student) error

	// Update updates an existing student
	Update(ctx context.Context, student *Student) error

	// FindByID finds a student by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Student, error)

	// FindAll returns students matching the filter, sorted by name
	FindAll(ctx context.Context, filter StudentFilter) ([]*Student, error)

	// Count returns the total number of students
	Count(ctx context.Context) (int64, error)

	// ExistsByRollNumber checks if a roll number is already registered
	ExistsByRollNumber(ctx context.Context, rollNumber string) (bool, error)

	// ExistsByEmail checks if an email is already registered
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// DeleteCascade removes the student together with their placements,
	// round entries, and applications, decrementing the affected company
	// and year counters. The whole cascade runs in a single transaction.
	DeleteCascade(ctx context.Context, id uuid.UUID) (*CascadeResult, error)
}
