package placement

import "context"

// YearRepository defines the interface for year analytics persistence
type YearRepository interface {
	// Save creates or updates a year's analytics
	Save(ctx context.Context, year *Year) error

	// FindByYear finds analytics for a specific year
	FindByYear(ctx context.Context, year int) (*Year, error)

	// FindAll returns all years sorted descending
	FindAll(ctx context.Context) ([]*Year, error)

	// Count returns the number of tracked years
	Count(ctx context.Context) (int64, error)
}
