package placement

import (
	"context"
	"time"
)

// SystemStats is the dashboard counter singleton. Counters are maintained
// incrementally by the services and can be rebuilt from the source tables.
type SystemStats struct {
	TotalYears         int        `json:"totalYears"`
	TotalCompanies     int        `json:"totalCompanies"`
	CompletedCompanies int        `json:"completedCompanies"`
	RunningCompanies   int        `json:"runningCompanies"`
	TotalStudents      int        `json:"totalStudents"`
	TotalPlaced        int        `json:"totalPlaced"`
	TotalNotPlaced     int        `json:"totalNotPlaced"`
	TotalOffers        int        `json:"totalOffers"`
	LastUpdated        *time.Time `json:"lastUpdated"`
	InitializedAt      *time.Time `json:"initializedAt,omitempty"`
}

// SystemStatsDelta is a set of counter adjustments. Negative deltas never
// push a counter below zero.
type SystemStatsDelta struct {
	TotalYears         int
	TotalCompanies     int
	CompletedCompanies int
	RunningCompanies   int
	TotalStudents      int
	TotalPlaced        int
	TotalNotPlaced     int
	TotalOffers        int
}

// Apply applies a delta to the stats, flooring every counter at zero
func (s *SystemStats) Apply(delta SystemStatsDelta) {
	s.TotalYears = clampZero(s.TotalYears + delta.TotalYears)
	s.TotalCompanies = clampZero(s.TotalCompanies + delta.TotalCompanies)
	s.CompletedCompanies = clampZero(s.CompletedCompanies + delta.CompletedCompanies)
	s.RunningCompanies = clampZero(s.RunningCompanies + delta.RunningCompanies)
	s.TotalStudents = clampZero(s.TotalStudents + delta.TotalStudents)
	s.TotalPlaced = clampZero(s.TotalPlaced + delta.TotalPlaced)
	s.TotalNotPlaced = clampZero(s.TotalNotPlaced + delta.TotalNotPlaced)
	s.TotalOffers = clampZero(s.TotalOffers + delta.TotalOffers)

	now := time.Now()
	s.LastUpdated = &now
}

func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// SystemStatsRepository persists the dashboard counter singleton
type SystemStatsRepository interface {
	// Get returns the current stats. A missing row yields zeroed stats,
	// not an error.
	Get(ctx context.Context) (*SystemStats, error)

	// Save writes the stats row, creating it when absent
	Save(ctx context.Context, stats *SystemStats) error

	// Adjust atomically applies a delta to the stored counters
	Adjust(ctx context.Context, delta SystemStatsDelta) error
}
