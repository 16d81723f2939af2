package placement

import (
	"context"

	"github.com/google/uuid"
)

// CompanyRepository defines the interface for company drive persistence
type CompanyRepository interface {
	// Create creates a new company drive
	Create(ctx context.Context, company *Company) error

	// Update updates an existing company drive
	Update(ctx context.Context, company *Company) error

	// FindByID finds a company drive by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Company, error)

	// FindAll returns all company drives sorted by year and name descending
	FindAll(ctx context.Context) ([]*Company, error)

	// FindByYear returns all company drives for a specific year
	FindByYear(ctx context.Context, year int) ([]*Company, error)

	// FindRecent returns the most recently updated company drives
	FindRecent(ctx context.Context, limit int) ([]*Company, error)

	// FindRounds returns the rounds of a drive sorted by round number
	FindRounds(ctx context.Context, companyID uuid.UUID) ([]*Round, error)

	// FindRoundEntries returns the per-student entries of a round
	FindRoundEntries(ctx context.Context, roundID uuid.UUID) ([]*RoundEntry, error)

	// FindPlacements returns all final selections recorded for a drive
	FindPlacements(ctx context.Context, companyID uuid.UUID) ([]*Placement, error)

	// Count returns the total number of company drives
	Count(ctx context.Context) (int64, error)

	// CountByStatus returns the number of drives with the given status
	CountByStatus(ctx context.Context, status CompanyStatus) (int64, error)
}
